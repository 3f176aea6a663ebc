package risk

import (
	"github.com/seclens/israkit/collection"
	"github.com/seclens/israkit/opt"
	"github.com/seclens/israkit/validate"
)

// AttackPath is one attack path of a risk: a named chain of vulnerability
// references with a composite score. riskAttackPathId is a per-risk sequence
// restarting at 1, distinct from the collection key assigned by the risk.
type AttackPath struct {
	riskIDRef *int
	pathID    *int
	name      string
	score     *float64
	vulns     *collection.Map[*VulnerabilityRef]
}

// AttackPathProps is the plain snapshot of an AttackPath.
type AttackPathProps struct {
	RiskIDRef        *int                          `json:"riskIdRef"`
	RiskAttackPathID *int                          `json:"riskAttackPathId"`
	AttackPathName   string                        `json:"attackPathName"`
	AttackPathScore  *float64                      `json:"attackPathScore"`
	VulnerabilityRef map[int]VulnerabilityRefProps `json:"vulnerabilityRef"`
}

// NewAttackPath returns an empty attack path.
func NewAttackPath() *AttackPath {
	return &AttackPath{vulns: collection.New[*VulnerabilityRef]()}
}

// SetRiskIDRef sets the owning risk id: nil or an integer >= 1.
func (a *AttackPath) SetRiskIDRef(v *int) error {
	if v != nil && !validate.PositiveInt(*v) {
		return &validate.ValidationError{Field: "riskIdRef", Message: "invalid risk id ref"}
	}
	a.riskIDRef = v
	return nil
}

// SetPathID sets the per-risk attack path id: nil or an integer >= 1.
func (a *AttackPath) SetPathID(v *int) error {
	if v != nil && !validate.PositiveInt(*v) {
		return &validate.ValidationError{Field: "riskAttackPathId", Message: "invalid attack path id"}
	}
	a.pathID = v
	return nil
}

// SetName sets the attack path name.
func (a *AttackPath) SetName(v string) error {
	a.name = v
	return nil
}

// SetScore sets the attack path score: nil or 0..10 with one decimal.
func (a *AttackPath) SetScore(v *float64) error {
	if v != nil && !validate.TenthStep(*v, 0, 10) {
		return &validate.ValidationError{Field: "attackPathScore", Message: "score must be 0 to 10 with one decimal"}
	}
	a.score = v
	return nil
}

// AddVulnerability appends a vulnerability reference at the next dense key.
func (a *AttackPath) AddVulnerability(v *VulnerabilityRef) error {
	if v == nil {
		return &validate.ValidationError{Field: "vulnerabilityRef", Message: "not a VulnerabilityRef record"}
	}
	a.vulns.Add(v)
	return nil
}

// DeleteVulnerability removes the reference at key; missing keys are a no-op.
func (a *AttackPath) DeleteVulnerability(key int) {
	a.vulns.Delete(key)
}

// Properties returns a snapshot of the attack path.
func (a *AttackPath) Properties() AttackPathProps {
	return AttackPathProps{
		RiskIDRef:        opt.CopyInt(a.riskIDRef),
		RiskAttackPathID: opt.CopyInt(a.pathID),
		AttackPathName:   a.name,
		AttackPathScore:  opt.CopyFloat(a.score),
		VulnerabilityRef: collection.Snapshot(a.vulns, (*VulnerabilityRef).Properties),
	}
}

// VulnerabilityRef points an attack path at a vulnerability entry: the
// referenced id plus the score and name copied from the source document's
// metadata attributes.
type VulnerabilityRef struct {
	idRef *int
	score *float64
	name  string
}

// VulnerabilityRefProps is the plain snapshot of a VulnerabilityRef.
type VulnerabilityRefProps struct {
	VulnerabilityIDRef *int     `json:"vulnerabilityIdRef"`
	Score              *float64 `json:"score"`
	Name               string   `json:"name"`
}

// NewVulnerabilityRef returns an empty vulnerability reference.
func NewVulnerabilityRef() *VulnerabilityRef {
	return &VulnerabilityRef{}
}

// SetIDRef sets the referenced vulnerability id: nil or an integer >= 1.
func (v *VulnerabilityRef) SetIDRef(id *int) error {
	if id != nil && !validate.PositiveInt(*id) {
		return &validate.ValidationError{Field: "vulnerabilityIdRef", Message: "invalid vulnerability id ref"}
	}
	v.idRef = id
	return nil
}

// SetScore sets the referenced vulnerability score: nil or 0..10.
func (v *VulnerabilityRef) SetScore(s *float64) error {
	if s != nil && !validate.Decimal(*s, 0, 10) {
		return &validate.ValidationError{Field: "score", Message: "score must be 0 to 10"}
	}
	v.score = s
	return nil
}

// SetName sets the referenced vulnerability name.
func (v *VulnerabilityRef) SetName(n string) error {
	v.name = n
	return nil
}

// Properties returns a snapshot of the reference.
func (v *VulnerabilityRef) Properties() VulnerabilityRefProps {
	return VulnerabilityRefProps{
		VulnerabilityIDRef: opt.CopyInt(v.idRef),
		Score:              opt.CopyFloat(v.score),
		Name:               v.name,
	}
}

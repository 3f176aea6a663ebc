package risk

import (
	"github.com/seclens/israkit/collection"
	"github.com/seclens/israkit/opt"
	"github.com/seclens/israkit/schema"
	"github.com/seclens/israkit/validate"
)

// Risk is one identified risk of a project: its threat statement, likelihood
// and impact evaluations, attack paths, mitigations and management decision.
// Score fields are computed outside the model and merely validated and
// stored here.
type Risk struct {
	id                  *int
	projectNameRef      string
	projectVersionRef   string
	name                *Name
	likelihood          *Likelihood
	impact              *Impact
	attackPaths         *collection.Map[*AttackPath]
	allAttackPathsName  string
	allAttackPathsScore *float64
	inherentRiskScore   *float64
	mitigations         *collection.Map[*Mitigation]
	mitigatedRiskScore  *float64
	managementDecision  string
	managementDetail    string
	residualRiskScore   *float64
	residualRiskLevel   string
}

// Props is the plain snapshot of a Risk, nested sub-record snapshots
// included.
type Props struct {
	RiskID                 *int                    `json:"riskId"`
	ProjectNameRef         string                  `json:"projectNameRef"`
	ProjectVersionRef      string                  `json:"projectVersionRef"`
	RiskName               *NameProps              `json:"riskName,omitempty"`
	RiskLikelihood         *LikelihoodProps        `json:"riskLikelihood,omitempty"`
	RiskImpact             *ImpactProps            `json:"riskImpact,omitempty"`
	RiskAttackPaths        map[int]AttackPathProps `json:"riskAttackPaths"`
	AllAttackPathsName     string                  `json:"allAttackPathsName"`
	AllAttackPathsScore    *float64                `json:"allAttackPathsScore"`
	InherentRiskScore      *float64                `json:"inherentRiskScore"`
	RiskMitigation         map[int]MitigationProps `json:"riskMitigation"`
	MitigatedRiskScore     *float64                `json:"mitigatedRiskScore"`
	RiskManagementDecision string                  `json:"riskManagementDecision"`
	RiskManagementDetail   string                  `json:"riskManagementDetail"`
	ResidualRiskScore      *float64                `json:"residualRiskScore"`
	ResidualRiskLevel      string                  `json:"residualRiskLevel"`
}

// New returns an empty risk; the nested attack path and mitigation
// collections start empty.
func New() *Risk {
	return &Risk{
		attackPaths: collection.New[*AttackPath](),
		mitigations: collection.New[*Mitigation](),
	}
}

// SetID sets the risk id: nil or an integer >= 1. The aggregate's collection
// key is related to this id by convention only.
func (r *Risk) SetID(v *int) error {
	if v != nil && !validate.PositiveInt(*v) {
		return &validate.ValidationError{Field: "riskId", Message: "invalid risk id"}
	}
	r.id = v
	return nil
}

// SetProjectNameRef copies the owning project's name onto the risk.
func (r *Risk) SetProjectNameRef(v string) error {
	r.projectNameRef = v
	return nil
}

// SetProjectVersionRef copies the owning project's version onto the risk.
func (r *Risk) SetProjectVersionRef(v string) error {
	r.projectVersionRef = v
	return nil
}

// SetName attaches the threat statement record. Its riskIdRef is not
// synchronized automatically.
func (r *Risk) SetName(n *Name) error {
	if n == nil {
		return &validate.ValidationError{Field: "riskName", Message: "not a Name record"}
	}
	r.name = n
	return nil
}

// SetLikelihood attaches the likelihood evaluation record.
func (r *Risk) SetLikelihood(l *Likelihood) error {
	if l == nil {
		return &validate.ValidationError{Field: "riskLikelihood", Message: "not a Likelihood record"}
	}
	r.likelihood = l
	return nil
}

// SetImpact attaches the impact evaluation record.
func (r *Risk) SetImpact(i *Impact) error {
	if i == nil {
		return &validate.ValidationError{Field: "riskImpact", Message: "not an Impact record"}
	}
	r.impact = i
	return nil
}

// Name returns the attached threat statement record, nil when unset.
func (r *Risk) Name() *Name { return r.name }

// Likelihood returns the attached likelihood record, nil when unset.
func (r *Risk) Likelihood() *Likelihood { return r.likelihood }

// Impact returns the attached impact record, nil when unset.
func (r *Risk) Impact() *Impact { return r.impact }

// AddAttackPath inserts an attack path at the next dense collection key and
// returns the key.
func (r *Risk) AddAttackPath(a *AttackPath) (int, error) {
	if a == nil {
		return 0, &validate.ValidationError{Field: "riskAttackPaths", Message: "not an AttackPath record"}
	}
	return r.attackPaths.Add(a), nil
}

// DeleteAttackPath removes the attack path at key; missing keys are a no-op.
func (r *Risk) DeleteAttackPath(key int) {
	r.attackPaths.Delete(key)
}

// AttackPath returns the attack path at key.
func (r *Risk) AttackPath(key int) (*AttackPath, bool) {
	return r.attackPaths.Get(key)
}

// AddMitigation inserts a mitigation at the next dense collection key and
// returns the key.
func (r *Risk) AddMitigation(m *Mitigation) (int, error) {
	if m == nil {
		return 0, &validate.ValidationError{Field: "riskMitigation", Message: "not a Mitigation record"}
	}
	return r.mitigations.Add(m), nil
}

// DeleteMitigation removes the mitigation at key; missing keys are a no-op.
func (r *Risk) DeleteMitigation(key int) {
	r.mitigations.Delete(key)
}

// Mitigation returns the mitigation at key.
func (r *Risk) Mitigation(key int) (*Mitigation, bool) {
	return r.mitigations.Get(key)
}

// SetAllAttackPathsName sets the combined attack path name.
func (r *Risk) SetAllAttackPathsName(v string) error {
	r.allAttackPathsName = v
	return nil
}

// SetAllAttackPathsScore sets the combined attack path score: nil or 0..10.
func (r *Risk) SetAllAttackPathsScore(v *float64) error {
	if v != nil && !validate.Decimal(*v, 0, 10) {
		return &validate.ValidationError{Field: "allAttackPathsScore", Message: "score must be 0 to 10"}
	}
	r.allAttackPathsScore = v
	return nil
}

func setScore(field string, dst **float64, v *float64) error {
	if v != nil && !validate.NonNegative(*v) {
		return &validate.ValidationError{Field: field, Message: "score must be a finite non-negative number"}
	}
	*dst = v
	return nil
}

// SetInherentRiskScore stores the externally computed inherent risk score.
func (r *Risk) SetInherentRiskScore(v *float64) error {
	return setScore("inherentRiskScore", &r.inherentRiskScore, v)
}

// SetMitigatedRiskScore stores the externally computed mitigated risk score.
func (r *Risk) SetMitigatedRiskScore(v *float64) error {
	return setScore("mitigatedRiskScore", &r.mitigatedRiskScore, v)
}

// SetResidualRiskScore stores the externally computed residual risk score.
func (r *Risk) SetResidualRiskScore(v *float64) error {
	return setScore("residualRiskScore", &r.residualRiskScore, v)
}

// SetManagementDecision sets the risk management decision from the closed
// decision set.
func (r *Risk) SetManagementDecision(v string) error {
	if !validate.OneOf(v, schema.ManagementDecisions()) {
		return &validate.ValidationError{Field: "riskManagementDecision", Message: "invalid risk management decision"}
	}
	r.managementDecision = v
	return nil
}

// SetManagementDetail sets the rich-text management detail.
func (r *Risk) SetManagementDetail(v string) error {
	if !validate.HTML(v) {
		return &validate.ValidationError{Field: "riskManagementDetail", Message: "invalid html string"}
	}
	r.managementDetail = v
	return nil
}

// SetResidualRiskLevel sets the residual risk level from the closed level
// set.
func (r *Risk) SetResidualRiskLevel(v string) error {
	if !validate.OneOf(v, schema.RiskLevels()) {
		return &validate.ValidationError{Field: "residualRiskLevel", Message: "invalid residual risk level"}
	}
	r.residualRiskLevel = v
	return nil
}

// Properties returns a snapshot of the risk and all its sub-records.
func (r *Risk) Properties() Props {
	props := Props{
		RiskID:                 opt.CopyInt(r.id),
		ProjectNameRef:         r.projectNameRef,
		ProjectVersionRef:      r.projectVersionRef,
		RiskAttackPaths:        collection.Snapshot(r.attackPaths, (*AttackPath).Properties),
		AllAttackPathsName:     r.allAttackPathsName,
		AllAttackPathsScore:    opt.CopyFloat(r.allAttackPathsScore),
		InherentRiskScore:      opt.CopyFloat(r.inherentRiskScore),
		RiskMitigation:         collection.Snapshot(r.mitigations, (*Mitigation).Properties),
		MitigatedRiskScore:     opt.CopyFloat(r.mitigatedRiskScore),
		RiskManagementDecision: r.managementDecision,
		RiskManagementDetail:   r.managementDetail,
		ResidualRiskScore:      opt.CopyFloat(r.residualRiskScore),
		ResidualRiskLevel:      r.residualRiskLevel,
	}
	if r.name != nil {
		n := r.name.Properties()
		props.RiskName = &n
	}
	if r.likelihood != nil {
		l := r.likelihood.Properties()
		props.RiskLikelihood = &l
	}
	if r.impact != nil {
		i := r.impact.Properties()
		props.RiskImpact = &i
	}
	return props
}

package risk

import (
	"github.com/seclens/israkit/opt"
	"github.com/seclens/israkit/schema"
	"github.com/seclens/israkit/validate"
)

// Name is the threat statement of a risk: which agent does what to which
// asset, and why. The businessAssetRef/supportingAssetRef fields point at
// asset ids; the model tolerates dangling references by design.
type Name struct {
	riskIDRef          *int
	name               string
	threatAgent        string
	threatAgentDetail  string
	threatVerb         string
	threatVerbDetail   string
	motivation         string
	motivationDetail   string
	businessAssetRef   *int
	supportingAssetRef *int
}

// NameProps is the plain snapshot of a risk Name.
type NameProps struct {
	RiskIDRef          *int   `json:"riskIdRef"`
	RiskName           string `json:"riskName"`
	ThreatAgent        string `json:"threatAgent"`
	ThreatAgentDetail  string `json:"threatAgentDetail"`
	ThreatVerb         string `json:"threatVerb"`
	ThreatVerbDetail   string `json:"threatVerbDetail"`
	Motivation         string `json:"motivation"`
	MotivationDetail   string `json:"motivationDetail"`
	BusinessAssetRef   *int   `json:"businessAssetRef"`
	SupportingAssetRef *int   `json:"supportingAssetRef"`
}

// NewName returns an empty risk name record.
func NewName() *Name {
	return &Name{}
}

// SetRiskIDRef sets the owning risk id: nil or an integer >= 1.
func (n *Name) SetRiskIDRef(v *int) error {
	if v != nil && !validate.PositiveInt(*v) {
		return &validate.ValidationError{Field: "riskIdRef", Message: "invalid risk id ref"}
	}
	n.riskIDRef = v
	return nil
}

// SetName sets the full risk name.
func (n *Name) SetName(v string) error {
	n.name = v
	return nil
}

// SetThreatAgent sets the threat agent from the closed agent set.
func (n *Name) SetThreatAgent(v string) error {
	if !validate.OneOf(v, schema.ThreatAgents()) {
		return &validate.ValidationError{Field: "threatAgent", Message: "invalid threat agent"}
	}
	n.threatAgent = v
	return nil
}

// SetThreatAgentDetail sets the rich-text agent detail.
func (n *Name) SetThreatAgentDetail(v string) error {
	if !validate.HTML(v) {
		return &validate.ValidationError{Field: "threatAgentDetail", Message: "invalid html string"}
	}
	n.threatAgentDetail = v
	return nil
}

// SetThreatVerb sets the threat action from the closed verb set.
func (n *Name) SetThreatVerb(v string) error {
	if !validate.OneOf(v, schema.ThreatVerbs()) {
		return &validate.ValidationError{Field: "threatVerb", Message: "invalid threat verb"}
	}
	n.threatVerb = v
	return nil
}

// SetThreatVerbDetail sets the rich-text verb detail.
func (n *Name) SetThreatVerbDetail(v string) error {
	if !validate.HTML(v) {
		return &validate.ValidationError{Field: "threatVerbDetail", Message: "invalid html string"}
	}
	n.threatVerbDetail = v
	return nil
}

// SetMotivation sets the motivation text.
func (n *Name) SetMotivation(v string) error {
	n.motivation = v
	return nil
}

// SetMotivationDetail sets the rich-text motivation detail.
func (n *Name) SetMotivationDetail(v string) error {
	if !validate.HTML(v) {
		return &validate.ValidationError{Field: "motivationDetail", Message: "invalid html string"}
	}
	n.motivationDetail = v
	return nil
}

// SetBusinessAssetRef sets the targeted business asset id: nil or >= 1.
func (n *Name) SetBusinessAssetRef(v *int) error {
	if v != nil && !validate.PositiveInt(*v) {
		return &validate.ValidationError{Field: "businessAssetRef", Message: "invalid business asset ref"}
	}
	n.businessAssetRef = v
	return nil
}

// SetSupportingAssetRef sets the targeted supporting asset id: nil or >= 1.
func (n *Name) SetSupportingAssetRef(v *int) error {
	if v != nil && !validate.PositiveInt(*v) {
		return &validate.ValidationError{Field: "supportingAssetRef", Message: "invalid supporting asset ref"}
	}
	n.supportingAssetRef = v
	return nil
}

// Properties returns a snapshot of the record.
func (n *Name) Properties() NameProps {
	return NameProps{
		RiskIDRef:          opt.CopyInt(n.riskIDRef),
		RiskName:           n.name,
		ThreatAgent:        n.threatAgent,
		ThreatAgentDetail:  n.threatAgentDetail,
		ThreatVerb:         n.threatVerb,
		ThreatVerbDetail:   n.threatVerbDetail,
		Motivation:         n.motivation,
		MotivationDetail:   n.motivationDetail,
		BusinessAssetRef:   opt.CopyInt(n.businessAssetRef),
		SupportingAssetRef: opt.CopyInt(n.supportingAssetRef),
	}
}

package risk

import (
	"math"

	"github.com/seclens/israkit/opt"
	"github.com/seclens/israkit/schema"
	"github.com/seclens/israkit/validate"
)

// Mitigation is one mitigation of a risk: what to do, what was decided about
// it, and its benefit/cost figures. riskMitigationId is a per-risk sequence
// restarting at 1.
type Mitigation struct {
	riskIDRef      *int
	mitigationID   *int
	description    string
	decision       string
	decisionDetail string
	benefits       *float64
	cost           *int
}

// MitigationProps is the plain snapshot of a Mitigation.
type MitigationProps struct {
	RiskIDRef        *int     `json:"riskIdRef"`
	RiskMitigationID *int     `json:"riskMitigationId"`
	Description      string   `json:"description"`
	Decision         string   `json:"decision"`
	DecisionDetail   string   `json:"decisionDetail"`
	Benefits         *float64 `json:"benefits"`
	Cost             *int     `json:"cost"`
}

// NewMitigation returns an empty mitigation record.
func NewMitigation() *Mitigation {
	return &Mitigation{}
}

// SetRiskIDRef sets the owning risk id: nil or an integer >= 1.
func (m *Mitigation) SetRiskIDRef(v *int) error {
	if v != nil && !validate.PositiveInt(*v) {
		return &validate.ValidationError{Field: "riskIdRef", Message: "invalid risk id ref"}
	}
	m.riskIDRef = v
	return nil
}

// SetMitigationID sets the per-risk mitigation id: nil or an integer >= 1.
func (m *Mitigation) SetMitigationID(v *int) error {
	if v != nil && !validate.PositiveInt(*v) {
		return &validate.ValidationError{Field: "riskMitigationId", Message: "invalid mitigation id"}
	}
	m.mitigationID = v
	return nil
}

// SetDescription sets the rich-text mitigation description.
func (m *Mitigation) SetDescription(v string) error {
	if !validate.HTML(v) {
		return &validate.ValidationError{Field: "description", Message: "invalid html string"}
	}
	m.description = v
	return nil
}

// SetDecision sets the mitigation decision from the closed decision set.
func (m *Mitigation) SetDecision(v string) error {
	if !validate.OneOf(v, schema.MitigationDecisions()) {
		return &validate.ValidationError{Field: "decision", Message: "invalid mitigation decision"}
	}
	m.decision = v
	return nil
}

// SetDecisionDetail sets the rich-text decision detail.
func (m *Mitigation) SetDecisionDetail(v string) error {
	if !validate.HTML(v) {
		return &validate.ValidationError{Field: "decisionDetail", Message: "invalid html string"}
	}
	m.decisionDetail = v
	return nil
}

// SetBenefits sets the mitigation benefit: nil or one of the discrete benefit
// steps.
func (m *Mitigation) SetBenefits(v *float64) error {
	if v != nil && !benefitStep(*v) {
		return &validate.ValidationError{Field: "benefits", Message: "invalid benefit value"}
	}
	m.benefits = v
	return nil
}

// SetCost sets the mitigation cost: nil or any integer.
func (m *Mitigation) SetCost(v *int) error {
	m.cost = v
	return nil
}

// Properties returns a snapshot of the record.
func (m *Mitigation) Properties() MitigationProps {
	return MitigationProps{
		RiskIDRef:        opt.CopyInt(m.riskIDRef),
		RiskMitigationID: opt.CopyInt(m.mitigationID),
		Description:      m.description,
		Decision:         m.decision,
		DecisionDetail:   m.decisionDetail,
		Benefits:         opt.CopyFloat(m.benefits),
		Cost:             opt.CopyInt(m.cost),
	}
}

func benefitStep(v float64) bool {
	for _, step := range schema.BenefitSteps() {
		if math.Abs(v-step) < 1e-9 {
			return true
		}
	}
	return false
}

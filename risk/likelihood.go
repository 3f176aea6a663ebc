package risk

import (
	"github.com/seclens/israkit/opt"
	"github.com/seclens/israkit/schema"
	"github.com/seclens/israkit/validate"
)

// Likelihood is the likelihood evaluation of a risk. The base fields are the
// likelihood value and its rich-text detail; when the OWASP threat-factor
// method was used, the five factor scores and the derived factor/occurrence
// fields are populated as well, otherwise they stay nil.
type Likelihood struct {
	riskIDRef          *int
	likelihood         *int
	likelihoodDetail   string
	skillLevel         *int
	reward             *int
	accessResources    *int
	size               *int
	intrusionDetection *int
	threatFactorScore  *float64
	threatFactorLevel  string
	occurrence         *int
	occurrenceLevel    string
}

// LikelihoodProps is the plain snapshot of a Likelihood record.
type LikelihoodProps struct {
	RiskIDRef            *int     `json:"riskIdRef"`
	RiskLikelihood       *int     `json:"riskLikelihood"`
	RiskLikelihoodDetail string   `json:"riskLikelihoodDetail"`
	SkillLevel           *int     `json:"skillLevel"`
	Reward               *int     `json:"reward"`
	AccessResources      *int     `json:"accessResources"`
	Size                 *int     `json:"size"`
	IntrusionDetection   *int     `json:"intrusionDetection"`
	ThreatFactorScore    *float64 `json:"threatFactorScore"`
	ThreatFactorLevel    string   `json:"threatFactorLevel"`
	Occurrence           *int     `json:"occurrence"`
	OccurrenceLevel      string   `json:"occurrenceLevel"`
}

// NewLikelihood returns an empty likelihood record.
func NewLikelihood() *Likelihood {
	return &Likelihood{}
}

// SetRiskIDRef sets the owning risk id: nil or an integer >= 1.
func (l *Likelihood) SetRiskIDRef(v *int) error {
	if v != nil && !validate.PositiveInt(*v) {
		return &validate.ValidationError{Field: "riskIdRef", Message: "invalid risk id ref"}
	}
	l.riskIDRef = v
	return nil
}

// SetLikelihood sets the likelihood value: nil or a member of the closed
// likelihood set.
func (l *Likelihood) SetLikelihood(v *int) error {
	if v != nil && !validate.OneOfInt(*v, schema.RiskLikelihoods()) {
		return &validate.ValidationError{Field: "riskLikelihood", Message: "invalid risk likelihood"}
	}
	l.likelihood = v
	return nil
}

// SetLikelihoodDetail sets the rich-text likelihood detail.
func (l *Likelihood) SetLikelihoodDetail(v string) error {
	if !validate.HTML(v) {
		return &validate.ValidationError{Field: "riskLikelihoodDetail", Message: "invalid html string"}
	}
	l.likelihoodDetail = v
	return nil
}

func setBand(field string, dst **int, v *int, band []int) error {
	if v != nil && !validate.OneOfInt(*v, band) {
		return &validate.ValidationError{Field: field, Message: "value outside the factor band"}
	}
	*dst = v
	return nil
}

// SetSkillLevel sets the OWASP skill level factor.
func (l *Likelihood) SetSkillLevel(v *int) error {
	return setBand("skillLevel", &l.skillLevel, v, schema.SkillLevels())
}

// SetReward sets the OWASP reward factor.
func (l *Likelihood) SetReward(v *int) error {
	return setBand("reward", &l.reward, v, schema.Rewards())
}

// SetAccessResources sets the OWASP opportunity factor.
func (l *Likelihood) SetAccessResources(v *int) error {
	return setBand("accessResources", &l.accessResources, v, schema.AccessResourceLevels())
}

// SetSize sets the OWASP threat-agent size factor.
func (l *Likelihood) SetSize(v *int) error {
	return setBand("size", &l.size, v, schema.Sizes())
}

// SetIntrusionDetection sets the OWASP intrusion detection factor.
func (l *Likelihood) SetIntrusionDetection(v *int) error {
	return setBand("intrusionDetection", &l.intrusionDetection, v, schema.IntrusionDetections())
}

// SetThreatFactorScore sets the computed threat factor score, any finite
// number. The score is supplied externally and merely stored.
func (l *Likelihood) SetThreatFactorScore(v *float64) error {
	if v != nil && !validate.Finite(*v) {
		return &validate.ValidationError{Field: "threatFactorScore", Message: "score must be a finite number"}
	}
	l.threatFactorScore = v
	return nil
}

// SetThreatFactorLevel sets the derived threat factor level.
func (l *Likelihood) SetThreatFactorLevel(v string) error {
	if !validate.OneOf(v, schema.FactorLevels()) {
		return &validate.ValidationError{Field: "threatFactorLevel", Message: "invalid threat factor level"}
	}
	l.threatFactorLevel = v
	return nil
}

// SetOccurrence sets the occurrence value: nil or a member of the closed
// occurrence set.
func (l *Likelihood) SetOccurrence(v *int) error {
	if v != nil && !validate.OneOfInt(*v, schema.Occurrences()) {
		return &validate.ValidationError{Field: "occurrence", Message: "invalid occurrence"}
	}
	l.occurrence = v
	return nil
}

// SetOccurrenceLevel sets the derived occurrence level.
func (l *Likelihood) SetOccurrenceLevel(v string) error {
	if !validate.OneOf(v, schema.FactorLevels()) {
		return &validate.ValidationError{Field: "occurrenceLevel", Message: "invalid occurrence level"}
	}
	l.occurrenceLevel = v
	return nil
}

// Properties returns a snapshot of the record.
func (l *Likelihood) Properties() LikelihoodProps {
	return LikelihoodProps{
		RiskIDRef:            opt.CopyInt(l.riskIDRef),
		RiskLikelihood:       opt.CopyInt(l.likelihood),
		RiskLikelihoodDetail: l.likelihoodDetail,
		SkillLevel:           opt.CopyInt(l.skillLevel),
		Reward:               opt.CopyInt(l.reward),
		AccessResources:      opt.CopyInt(l.accessResources),
		Size:                 opt.CopyInt(l.size),
		IntrusionDetection:   opt.CopyInt(l.intrusionDetection),
		ThreatFactorScore:    opt.CopyFloat(l.threatFactorScore),
		ThreatFactorLevel:    l.threatFactorLevel,
		Occurrence:           opt.CopyInt(l.occurrence),
		OccurrenceLevel:      l.occurrenceLevel,
	}
}

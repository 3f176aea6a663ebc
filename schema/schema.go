package schema

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed domains.yaml
var domainsYAML []byte

// Domains holds every closed value set of the document model. One instance is
// loaded from the embedded definition at package init; entity setters consult
// it through the package-level accessors below.
type Domains struct {
	Organizations         []string  `yaml:"organizations"`
	BusinessAssetTypes    []string  `yaml:"businessAssetTypes"`
	SupportingAssetTypes  []string  `yaml:"supportingAssetTypes"`
	ThreatAgents          []string  `yaml:"threatAgents"`
	ThreatVerbs           []string  `yaml:"threatVerbs"`
	RiskLikelihoods       []int     `yaml:"riskLikelihoods"`
	SkillLevels           []int     `yaml:"skillLevels"`
	Rewards               []int     `yaml:"rewards"`
	AccessResources       []int     `yaml:"accessResources"`
	Sizes                 []int     `yaml:"sizes"`
	IntrusionDetections   []int     `yaml:"intrusionDetections"`
	Occurrences           []int     `yaml:"occurrences"`
	FactorLevels          []string  `yaml:"factorLevels"`
	MitigationDecisions   []string  `yaml:"mitigationDecisions"`
	Benefits              []float64 `yaml:"benefits"`
	ManagementDecisions   []string  `yaml:"managementDecisions"`
	RiskLevels            []string  `yaml:"riskLevels"`
	VulnerabilityFamilies []string  `yaml:"vulnerabilityFamilies"`
}

var domains Domains

func init() {
	if err := yaml.Unmarshal(domainsYAML, &domains); err != nil {
		panic(fmt.Sprintf("schema: malformed embedded domain definition: %v", err))
	}
}

// Default returns the embedded value domains.
func Default() *Domains { return &domains }

// Organizations returns the closed set of project organizations.
func Organizations() []string { return domains.Organizations }

// BusinessAssetTypes returns the closed set of business asset types.
func BusinessAssetTypes() []string { return domains.BusinessAssetTypes }

// SupportingAssetTypes returns the closed set of supporting asset types.
func SupportingAssetTypes() []string { return domains.SupportingAssetTypes }

// ThreatAgents returns the closed set of threat agents.
func ThreatAgents() []string { return domains.ThreatAgents }

// ThreatVerbs returns the closed set of threat verbs.
func ThreatVerbs() []string { return domains.ThreatVerbs }

// RiskLikelihoods returns the valid risk likelihood values.
func RiskLikelihoods() []int { return domains.RiskLikelihoods }

// SkillLevels returns the OWASP threat-factor skill level band.
func SkillLevels() []int { return domains.SkillLevels }

// Rewards returns the OWASP threat-factor reward band.
func Rewards() []int { return domains.Rewards }

// AccessResourceLevels returns the OWASP opportunity band.
func AccessResourceLevels() []int { return domains.AccessResources }

// Sizes returns the OWASP threat-agent size band.
func Sizes() []int { return domains.Sizes }

// IntrusionDetections returns the OWASP intrusion detection band.
func IntrusionDetections() []int { return domains.IntrusionDetections }

// Occurrences returns the valid occurrence values.
func Occurrences() []int { return domains.Occurrences }

// FactorLevels returns the threat factor / occurrence level names.
func FactorLevels() []string { return domains.FactorLevels }

// MitigationDecisions returns the mitigation decision states.
func MitigationDecisions() []string { return domains.MitigationDecisions }

// BenefitSteps returns the discrete mitigation benefit values.
func BenefitSteps() []float64 { return domains.Benefits }

// ManagementDecisions returns the risk management decision states.
func ManagementDecisions() []string { return domains.ManagementDecisions }

// RiskLevels returns the residual/overall risk level names.
func RiskLevels() []string { return domains.RiskLevels }

// VulnerabilityFamilies returns the vulnerability classification families.
func VulnerabilityFamilies() []string { return domains.VulnerabilityFamilies }

package transform

// Records carry field values exactly as the document serialized them, as
// strings. Conversion and validation happen later, when a record is loaded
// into the model; the pipeline only reshapes.

// NameRecord is the flattened threat statement of one risk.
type NameRecord struct {
	RiskIDRef          string `json:"riskIdRef"`
	RiskName           string `json:"riskName"`
	ThreatAgent        string `json:"threatAgent"`
	ThreatAgentDetail  string `json:"threatAgentDetail"`
	ThreatVerb         string `json:"threatVerb"`
	ThreatVerbDetail   string `json:"threatVerbDetail"`
	Motivation         string `json:"motivation"`
	MotivationDetail   string `json:"motivationDetail"`
	BusinessAssetRef   string `json:"businessAssetRef"`
	SupportingAssetRef string `json:"supportingAssetRef"`
}

// LikelihoodRecord is the flattened likelihood evaluation of one risk. The
// threat-factor and occurrence fields are only present when the source
// document carries an OWASP-style sub-evaluation; without one the record
// holds exactly the three base fields.
type LikelihoodRecord struct {
	RiskIDRef            string  `json:"riskIdRef"`
	RiskLikelihood       string  `json:"riskLikelihood"`
	RiskLikelihoodDetail string  `json:"riskLikelihoodDetail"`
	SkillLevel           *string `json:"skillLevel,omitempty"`
	Reward               *string `json:"reward,omitempty"`
	AccessResources      *string `json:"accessResources,omitempty"`
	Size                 *string `json:"size,omitempty"`
	IntrusionDetection   *string `json:"intrusionDetection,omitempty"`
	ThreatFactorScore    *string `json:"threatFactorScore,omitempty"`
	ThreatFactorLevel    *string `json:"threatFactorLevel,omitempty"`
	Occurrence           *string `json:"occurrence,omitempty"`
	OccurrenceLevel      *string `json:"occurrenceLevel,omitempty"`
}

// ImpactRecord is the flattened impact evaluation of one risk.
type ImpactRecord struct {
	RiskIDRef                        string `json:"riskIdRef"`
	RiskImpact                       string `json:"riskImpact"`
	BusinessAssetPropertiesRef       string `json:"businessAssetPropertiesRef"`
	BusinessAssetConfidentialityFlag string `json:"businessAssetConfidentialityFlag"`
	BusinessAssetIntegrityFlag       string `json:"businessAssetIntegrityFlag"`
	BusinessAssetAvailabilityFlag    string `json:"businessAssetAvailabilityFlag"`
	BusinessAssetAuthenticityFlag    string `json:"businessAssetAuthenticityFlag"`
	BusinessAssetAuthorizationFlag   string `json:"businessAssetAuthorizationFlag"`
	BusinessAssetNonRepudiationFlag  string `json:"businessAssetNonRepudiationFlag"`
}

// VulnerabilityRefRecord is one vulnerability reference of an attack path.
// The id falls back to "" when the reference element is empty; score and
// name come from the element's attributes.
type VulnerabilityRefRecord struct {
	VulnerabilityIDRef string `json:"vulnerabilityIdRef"`
	Score              string `json:"score"`
	Name               string `json:"name"`
}

// AttackPathRecord is one attack path of a risk, numbered per risk starting
// at 1.
type AttackPathRecord struct {
	RiskIDRef        string                   `json:"riskIdRef"`
	RiskAttackPathID int                      `json:"riskAttackPathId"`
	AttackPathName   string                   `json:"attackPathName"`
	AttackPathScore  string                   `json:"attackPathScore"`
	VulnerabilityRef []VulnerabilityRefRecord `json:"vulnerabilityRef"`
}

// MitigationRecord is one mitigation of a risk, numbered per risk starting
// at 1. Its description and decisionDetail bodies are positioned by the
// document-wide mitigation counter.
type MitigationRecord struct {
	RiskIDRef               string `json:"riskIdRef"`
	RiskMitigationID        int    `json:"riskMitigationId"`
	Description             string `json:"description"`
	DecisionDetail          string `json:"decisionDetail"`
	Decision                string `json:"decision"`
	Benefits                string `json:"benefits"`
	Cost                    string `json:"cost"`
	MitigationsBenefits     string `json:"mitigationsBenefits"`
	MitigationsDoneBenefits string `json:"mitigationsDoneBenefits"`
}

// RiskRecord is the reshaped form of one raw risk node, flat and
// id-referenced, ready to be loaded into the model.
type RiskRecord struct {
	RiskID                  string             `json:"riskId"`
	ProjectNameRef          string             `json:"projectNameRef"`
	ProjectVersionRef       string             `json:"projectVersionRef"`
	RiskName                NameRecord         `json:"riskName"`
	RiskLikelihood          LikelihoodRecord   `json:"riskLikelihood"`
	RiskImpact              ImpactRecord       `json:"riskImpact"`
	RiskAttackPaths         []AttackPathRecord `json:"riskAttackPaths"`
	AllAttackPathsName      string             `json:"allAttackPathsName"`
	AllAttackPathsScore     string             `json:"allAttackPathsScore"`
	InherentRiskScore       string             `json:"inherentRiskScore"`
	RiskMitigation          []MitigationRecord `json:"riskMitigation"`
	MitigatedRiskScore      string             `json:"mitigatedRiskScore"`
	RiskManagementDecision  string             `json:"riskManagementDecision"`
	RiskManagementDetail    string             `json:"riskManagementDetail"`
	ResidualRiskScore       string             `json:"residualRiskScore"`
	ResidualRiskLevel       string             `json:"residualRiskLevel"`
	MitigationsBenefits     string             `json:"mitigationsBenefits"`
	MitigationsDoneBenefits string             `json:"mitigationsDoneBenefits"`
}

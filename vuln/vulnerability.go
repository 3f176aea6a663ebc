package vuln

import (
	"github.com/seclens/israkit/opt"
	"github.com/seclens/israkit/schema"
	"github.com/seclens/israkit/validate"
)

// Vulnerability is a project-level vulnerability entry. Risk attack paths
// reference vulnerabilities by id; as everywhere in the model, those
// references are never checked against this collection and may dangle.
type Vulnerability struct {
	id                    *int
	projectNameRef        string
	projectVersionRef     string
	name                  string
	family                string
	trackingID            string
	trackingURI           string
	description           string
	descriptionAttachment string
	cve                   string
	cveScore              *float64
	overallScore          *int
	overallLevel          string
	supportingAssetRefs   []int
}

// Props is the plain snapshot of a Vulnerability.
type Props struct {
	VulnerabilityID                    *int    `json:"vulnerabilityId"`
	ProjectNameRef                     string  `json:"projectNameRef"`
	ProjectVersionRef                  string  `json:"projectVersionRef"`
	VulnerabilityName                  string  `json:"vulnerabilityName"`
	VulnerabilityFamily                string  `json:"vulnerabilityFamily"`
	VulnerabilityTrackingID            string  `json:"vulnerabilityTrackingID"`
	VulnerabilityTrackingURI           string  `json:"vulnerabilityTrackingURI"`
	VulnerabilityDescription           string  `json:"vulnerabilityDescription"`
	VulnerabilityDescriptionAttachment string  `json:"vulnerabilityDescriptionAttachment"`
	VulnerabilityCVE                   string  `json:"vulnerabilityCVE"`
	CVEScore                           *float64 `json:"cveScore"`
	OverallScore                       *int    `json:"overallScore"`
	OverallLevel                       string  `json:"overallLevel"`
	SupportingAssetRefs                []int   `json:"supportingAssetRef"`
}

// New returns an empty vulnerability.
func New() *Vulnerability {
	return &Vulnerability{}
}

// SetID sets the vulnerability id: nil or an integer >= 1.
func (v *Vulnerability) SetID(id *int) error {
	if id != nil && !validate.PositiveInt(*id) {
		return &validate.ValidationError{Field: "vulnerabilityId", Message: "invalid vulnerability id"}
	}
	v.id = id
	return nil
}

// SetProjectNameRef copies the owning project's name onto the entry.
func (v *Vulnerability) SetProjectNameRef(s string) error {
	v.projectNameRef = s
	return nil
}

// SetProjectVersionRef copies the owning project's version onto the entry.
func (v *Vulnerability) SetProjectVersionRef(s string) error {
	v.projectVersionRef = s
	return nil
}

// SetName sets the vulnerability name.
func (v *Vulnerability) SetName(s string) error {
	v.name = s
	return nil
}

// SetFamily sets the classification family from the closed family set.
func (v *Vulnerability) SetFamily(s string) error {
	if !validate.OneOf(s, schema.VulnerabilityFamilies()) {
		return &validate.ValidationError{Field: "vulnerabilityFamily", Message: "invalid vulnerability family"}
	}
	v.family = s
	return nil
}

// SetTrackingID sets the external tracker identifier.
func (v *Vulnerability) SetTrackingID(s string) error {
	v.trackingID = s
	return nil
}

// SetTrackingURI sets the external tracker link.
func (v *Vulnerability) SetTrackingURI(s string) error {
	if !validate.URL(s) {
		return &validate.ValidationError{Field: "vulnerabilityTrackingURI", Message: "invalid url string"}
	}
	v.trackingURI = s
	return nil
}

// SetDescription sets the rich-text description.
func (v *Vulnerability) SetDescription(s string) error {
	if !validate.HTML(s) {
		return &validate.ValidationError{Field: "vulnerabilityDescription", Message: "invalid html string"}
	}
	v.description = s
	return nil
}

// SetDescriptionAttachment sets the base64 attachment.
func (v *Vulnerability) SetDescriptionAttachment(s string) error {
	if !validate.Attachment(s) {
		return &validate.ValidationError{Field: "vulnerabilityDescriptionAttachment", Message: "invalid base64 string"}
	}
	v.descriptionAttachment = s
	return nil
}

// SetCVE sets the CVE identifier, free-form.
func (v *Vulnerability) SetCVE(s string) error {
	v.cve = s
	return nil
}

// SetCVEScore sets the CVSS score: nil or 0..10.
func (v *Vulnerability) SetCVEScore(s *float64) error {
	if s != nil && !validate.Decimal(*s, 0, 10) {
		return &validate.ValidationError{Field: "cveScore", Message: "score must be 0 to 10"}
	}
	v.cveScore = s
	return nil
}

// SetOverallScore sets the overall score: nil or an integer 0..10.
func (v *Vulnerability) SetOverallScore(s *int) error {
	if s != nil && !validate.IntRange(*s, 0, 10) {
		return &validate.ValidationError{Field: "overallScore", Message: "score must be an integer 0 to 10"}
	}
	v.overallScore = s
	return nil
}

// SetOverallLevel sets the overall level from the closed level set.
func (v *Vulnerability) SetOverallLevel(s string) error {
	if !validate.OneOf(s, schema.RiskLevels()) {
		return &validate.ValidationError{Field: "overallLevel", Message: "invalid overall level"}
	}
	v.overallLevel = s
	return nil
}

// AddSupportingAssetRef records a reference to a supporting asset id.
// Duplicates collapse.
func (v *Vulnerability) AddSupportingAssetRef(id int) {
	for _, r := range v.supportingAssetRefs {
		if r == id {
			return
		}
	}
	v.supportingAssetRefs = append(v.supportingAssetRefs, id)
}

// DeleteSupportingAssetRef drops a reference; missing ids are a no-op.
func (v *Vulnerability) DeleteSupportingAssetRef(id int) {
	for i, r := range v.supportingAssetRefs {
		if r == id {
			v.supportingAssetRefs = append(v.supportingAssetRefs[:i], v.supportingAssetRefs[i+1:]...)
			return
		}
	}
}

// Properties returns a snapshot of the vulnerability.
func (v *Vulnerability) Properties() Props {
	refs := make([]int, len(v.supportingAssetRefs))
	copy(refs, v.supportingAssetRefs)
	return Props{
		VulnerabilityID:                    opt.CopyInt(v.id),
		ProjectNameRef:                     v.projectNameRef,
		ProjectVersionRef:                  v.projectVersionRef,
		VulnerabilityName:                  v.name,
		VulnerabilityFamily:                v.family,
		VulnerabilityTrackingID:            v.trackingID,
		VulnerabilityTrackingURI:           v.trackingURI,
		VulnerabilityDescription:           v.description,
		VulnerabilityDescriptionAttachment: v.descriptionAttachment,
		VulnerabilityCVE:                   v.cve,
		CVEScore:                           opt.CopyFloat(v.cveScore),
		OverallScore:                       opt.CopyInt(v.overallScore),
		OverallLevel:                       v.overallLevel,
		SupportingAssetRefs:                refs,
	}
}

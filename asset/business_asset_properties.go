package asset

import (
	"github.com/seclens/israkit/opt"
	"github.com/seclens/israkit/validate"
)

// ciaMin and ciaMax bound the six CIA-style security ratings.
const (
	ciaMin = 0
	ciaMax = 4
)

// BusinessAssetProperties carries the six security ratings of one business
// asset. Each rating is nil (not evaluated) or an integer 0..4.
type BusinessAssetProperties struct {
	idRef           *int
	confidentiality *int
	integrity       *int
	availability    *int
	authenticity    *int
	authorization   *int
	nonRepudiation  *int
}

// BusinessAssetPropertiesProps is the plain snapshot of a
// BusinessAssetProperties record.
type BusinessAssetPropertiesProps struct {
	BusinessAssetIDRef          *int `json:"businessAssetIdRef"`
	BusinessAssetConfidentiality *int `json:"businessAssetConfidentiality"`
	BusinessAssetIntegrity      *int `json:"businessAssetIntegrity"`
	BusinessAssetAvailability   *int `json:"businessAssetAvailability"`
	BusinessAssetAuthenticity   *int `json:"businessAssetAuthenticity"`
	BusinessAssetAuthorization  *int `json:"businessAssetAuthorization"`
	BusinessAssetNonRepudiation *int `json:"businessAssetNonRepudiation"`
}

// NewBusinessAssetProperties returns an empty security properties record.
func NewBusinessAssetProperties() *BusinessAssetProperties {
	return &BusinessAssetProperties{}
}

// SetIDRef sets the owning business asset id: nil or an integer >= 1. It must
// equal the owning asset's businessAssetId; the model does not enforce this.
func (p *BusinessAssetProperties) SetIDRef(v *int) error {
	if v != nil && !validate.PositiveInt(*v) {
		return &validate.ValidationError{Field: "businessAssetIdRef", Message: "invalid business asset id ref"}
	}
	p.idRef = v
	return nil
}

func (p *BusinessAssetProperties) setRating(field string, dst **int, v *int) error {
	if v != nil && !validate.IntRange(*v, ciaMin, ciaMax) {
		return &validate.ValidationError{Field: field, Message: "rating must be null or an integer 0 to 4"}
	}
	*dst = v
	return nil
}

// SetConfidentiality sets the confidentiality rating.
func (p *BusinessAssetProperties) SetConfidentiality(v *int) error {
	return p.setRating("businessAssetConfidentiality", &p.confidentiality, v)
}

// SetIntegrity sets the integrity rating.
func (p *BusinessAssetProperties) SetIntegrity(v *int) error {
	return p.setRating("businessAssetIntegrity", &p.integrity, v)
}

// SetAvailability sets the availability rating.
func (p *BusinessAssetProperties) SetAvailability(v *int) error {
	return p.setRating("businessAssetAvailability", &p.availability, v)
}

// SetAuthenticity sets the authenticity rating.
func (p *BusinessAssetProperties) SetAuthenticity(v *int) error {
	return p.setRating("businessAssetAuthenticity", &p.authenticity, v)
}

// SetAuthorization sets the authorization rating.
func (p *BusinessAssetProperties) SetAuthorization(v *int) error {
	return p.setRating("businessAssetAuthorization", &p.authorization, v)
}

// SetNonRepudiation sets the non-repudiation rating.
func (p *BusinessAssetProperties) SetNonRepudiation(v *int) error {
	return p.setRating("businessAssetNonRepudiation", &p.nonRepudiation, v)
}

// Properties returns a snapshot of the record.
func (p *BusinessAssetProperties) Properties() BusinessAssetPropertiesProps {
	return BusinessAssetPropertiesProps{
		BusinessAssetIDRef:          opt.CopyInt(p.idRef),
		BusinessAssetConfidentiality: opt.CopyInt(p.confidentiality),
		BusinessAssetIntegrity:      opt.CopyInt(p.integrity),
		BusinessAssetAvailability:   opt.CopyInt(p.availability),
		BusinessAssetAuthenticity:   opt.CopyInt(p.authenticity),
		BusinessAssetAuthorization:  opt.CopyInt(p.authorization),
		BusinessAssetNonRepudiation: opt.CopyInt(p.nonRepudiation),
	}
}

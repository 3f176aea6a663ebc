package risk

import (
	"github.com/seclens/israkit/opt"
	"github.com/seclens/israkit/validate"
)

// Impact is the impact evaluation of a risk: the impact value plus six flags
// marking which security properties of the targeted business asset the risk
// affects. businessAssetPropertiesRef mirrors the risk name's business asset
// reference; the model does not keep the two in sync.
type Impact struct {
	riskIDRef                  *int
	impact                     *int
	businessAssetPropertiesRef *int
	confidentialityFlag        *int
	integrityFlag              *int
	availabilityFlag           *int
	authenticityFlag           *int
	authorizationFlag          *int
	nonRepudiationFlag         *int
}

// ImpactProps is the plain snapshot of an Impact record.
type ImpactProps struct {
	RiskIDRef                        *int `json:"riskIdRef"`
	RiskImpact                       *int `json:"riskImpact"`
	BusinessAssetPropertiesRef       *int `json:"businessAssetPropertiesRef"`
	BusinessAssetConfidentialityFlag *int `json:"businessAssetConfidentialityFlag"`
	BusinessAssetIntegrityFlag       *int `json:"businessAssetIntegrityFlag"`
	BusinessAssetAvailabilityFlag    *int `json:"businessAssetAvailabilityFlag"`
	BusinessAssetAuthenticityFlag    *int `json:"businessAssetAuthenticityFlag"`
	BusinessAssetAuthorizationFlag   *int `json:"businessAssetAuthorizationFlag"`
	BusinessAssetNonRepudiationFlag  *int `json:"businessAssetNonRepudiationFlag"`
}

// NewImpact returns an empty impact record.
func NewImpact() *Impact {
	return &Impact{}
}

// SetRiskIDRef sets the owning risk id: nil or an integer >= 1.
func (i *Impact) SetRiskIDRef(v *int) error {
	if v != nil && !validate.PositiveInt(*v) {
		return &validate.ValidationError{Field: "riskIdRef", Message: "invalid risk id ref"}
	}
	i.riskIDRef = v
	return nil
}

// SetImpact sets the impact value: nil or an integer 0..4.
func (i *Impact) SetImpact(v *int) error {
	if v != nil && !validate.IntRange(*v, 0, 4) {
		return &validate.ValidationError{Field: "riskImpact", Message: "impact must be null or an integer 0 to 4"}
	}
	i.impact = v
	return nil
}

// SetBusinessAssetPropertiesRef sets the referenced business asset id:
// nil or an integer >= 1.
func (i *Impact) SetBusinessAssetPropertiesRef(v *int) error {
	if v != nil && !validate.PositiveInt(*v) {
		return &validate.ValidationError{Field: "businessAssetPropertiesRef", Message: "invalid business asset properties ref"}
	}
	i.businessAssetPropertiesRef = v
	return nil
}

func (i *Impact) setFlag(field string, dst **int, v *int) error {
	if v != nil && *v != 0 && *v != 1 {
		return &validate.ValidationError{Field: field, Message: "flag must be null, 0 or 1"}
	}
	*dst = v
	return nil
}

// SetConfidentialityFlag marks whether confidentiality is affected.
func (i *Impact) SetConfidentialityFlag(v *int) error {
	return i.setFlag("businessAssetConfidentialityFlag", &i.confidentialityFlag, v)
}

// SetIntegrityFlag marks whether integrity is affected.
func (i *Impact) SetIntegrityFlag(v *int) error {
	return i.setFlag("businessAssetIntegrityFlag", &i.integrityFlag, v)
}

// SetAvailabilityFlag marks whether availability is affected.
func (i *Impact) SetAvailabilityFlag(v *int) error {
	return i.setFlag("businessAssetAvailabilityFlag", &i.availabilityFlag, v)
}

// SetAuthenticityFlag marks whether authenticity is affected.
func (i *Impact) SetAuthenticityFlag(v *int) error {
	return i.setFlag("businessAssetAuthenticityFlag", &i.authenticityFlag, v)
}

// SetAuthorizationFlag marks whether authorization is affected.
func (i *Impact) SetAuthorizationFlag(v *int) error {
	return i.setFlag("businessAssetAuthorizationFlag", &i.authorizationFlag, v)
}

// SetNonRepudiationFlag marks whether non-repudiation is affected.
func (i *Impact) SetNonRepudiationFlag(v *int) error {
	return i.setFlag("businessAssetNonRepudiationFlag", &i.nonRepudiationFlag, v)
}

// Properties returns a snapshot of the record.
func (i *Impact) Properties() ImpactProps {
	return ImpactProps{
		RiskIDRef:                    opt.CopyInt(i.riskIDRef),
		RiskImpact:                   opt.CopyInt(i.impact),
		BusinessAssetPropertiesRef:   opt.CopyInt(i.businessAssetPropertiesRef),
		BusinessAssetConfidentialityFlag: opt.CopyInt(i.confidentialityFlag),
		BusinessAssetIntegrityFlag:   opt.CopyInt(i.integrityFlag),
		BusinessAssetAvailabilityFlag: opt.CopyInt(i.availabilityFlag),
		BusinessAssetAuthenticityFlag: opt.CopyInt(i.authenticityFlag),
		BusinessAssetAuthorizationFlag: opt.CopyInt(i.authorizationFlag),
		BusinessAssetNonRepudiationFlag: opt.CopyInt(i.nonRepudiationFlag),
	}
}

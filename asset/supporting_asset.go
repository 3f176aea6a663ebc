package asset

import (
	"github.com/seclens/israkit/opt"
	"github.com/seclens/israkit/schema"
	"github.com/seclens/israkit/validate"
)

// Security level bounds for supporting assets.
const (
	securityLevelMin = -2
	securityLevelMax = 2
)

// SupportingAsset is a technical asset (database, server, API...) supporting
// one or more business assets. The business-asset references are kept as an
// insertion-ordered set; the model never checks that they resolve to a live
// BusinessAsset, and deleting a referenced asset leaves them dangling.
type SupportingAsset struct {
	id            *int
	hldID         string
	name          string
	assetType     string
	securityLevel *int
	refs          []int
}

// SupportingAssetProps is the plain snapshot of a SupportingAsset.
type SupportingAssetProps struct {
	SupportingAssetID            *int   `json:"supportingAssetId"`
	SupportingAssetHLDID         string `json:"supportingAssetHLDId"`
	SupportingAssetName          string `json:"supportingAssetName"`
	SupportingAssetType          string `json:"supportingAssetType"`
	SupportingAssetSecurityLevel *int   `json:"supportingAssetSecurityLevel"`
	BusinessAssetRefs            []int  `json:"businessAssetRef"`
}

// NewSupportingAsset returns an empty supporting asset.
func NewSupportingAsset() *SupportingAsset {
	return &SupportingAsset{}
}

// SetID sets the asset id: nil or an integer >= 1.
func (s *SupportingAsset) SetID(v *int) error {
	if v != nil && !validate.PositiveInt(*v) {
		return &validate.ValidationError{Field: "supportingAssetId", Message: "invalid supporting asset id"}
	}
	s.id = v
	return nil
}

// SetHLDID sets the high-level-design identifier, a free-form string.
func (s *SupportingAsset) SetHLDID(v string) error {
	s.hldID = v
	return nil
}

// SetName sets the asset name.
func (s *SupportingAsset) SetName(v string) error {
	s.name = v
	return nil
}

// SetType sets the asset type from the closed supporting asset type set.
func (s *SupportingAsset) SetType(v string) error {
	if !validate.OneOf(v, schema.SupportingAssetTypes()) {
		return &validate.ValidationError{Field: "supportingAssetType", Message: "invalid supporting asset type"}
	}
	s.assetType = v
	return nil
}

// SetSecurityLevel sets the security level: nil or an integer -2..2.
func (s *SupportingAsset) SetSecurityLevel(v *int) error {
	if v != nil && !validate.IntRange(*v, securityLevelMin, securityLevelMax) {
		return &validate.ValidationError{Field: "supportingAssetSecurityLevel", Message: "security level must be null or an integer -2 to 2"}
	}
	s.securityLevel = v
	return nil
}

// AddBusinessAssetRef records a reference to a business asset id. Duplicate
// refs collapse; referential integrity is not checked.
func (s *SupportingAsset) AddBusinessAssetRef(id int) {
	for _, r := range s.refs {
		if r == id {
			return
		}
	}
	s.refs = append(s.refs, id)
}

// DeleteBusinessAssetRef drops a reference; missing ids are a no-op.
func (s *SupportingAsset) DeleteBusinessAssetRef(id int) {
	for i, r := range s.refs {
		if r == id {
			s.refs = append(s.refs[:i], s.refs[i+1:]...)
			return
		}
	}
}

// HasBusinessAssetRef reports whether id is referenced.
func (s *SupportingAsset) HasBusinessAssetRef(id int) bool {
	for _, r := range s.refs {
		if r == id {
			return true
		}
	}
	return false
}

// Properties returns a snapshot of the asset.
func (s *SupportingAsset) Properties() SupportingAssetProps {
	refs := make([]int, len(s.refs))
	copy(refs, s.refs)
	return SupportingAssetProps{
		SupportingAssetID:            opt.CopyInt(s.id),
		SupportingAssetHLDID:         s.hldID,
		SupportingAssetName:          s.name,
		SupportingAssetType:          s.assetType,
		SupportingAssetSecurityLevel: opt.CopyInt(s.securityLevel),
		BusinessAssetRefs:            refs,
	}
}

package asset

import (
	"github.com/seclens/israkit/opt"
	"github.com/seclens/israkit/schema"
	"github.com/seclens/israkit/validate"
)

// BusinessAsset is an asset of value to the business: data handled or a
// service provided. Risks reference business assets by id.
type BusinessAsset struct {
	id          *int
	name        string
	assetType   string
	description string
	properties  *BusinessAssetProperties
}

// BusinessAssetProps is the plain snapshot of a BusinessAsset.
type BusinessAssetProps struct {
	BusinessAssetID          *int                          `json:"businessAssetId"`
	BusinessAssetName        string                        `json:"businessAssetName"`
	BusinessAssetType        string                        `json:"businessAssetType"`
	BusinessAssetDescription string                        `json:"businessAssetDescription"`
	BusinessAssetProperties  *BusinessAssetPropertiesProps `json:"businessAssetProperties,omitempty"`
}

// NewBusinessAsset returns an empty business asset; every field starts unset.
func NewBusinessAsset() *BusinessAsset {
	return &BusinessAsset{}
}

// SetID sets the asset id: nil or an integer >= 1.
func (b *BusinessAsset) SetID(v *int) error {
	if v != nil && !validate.PositiveInt(*v) {
		return &validate.ValidationError{Field: "businessAssetId", Message: "invalid business asset id"}
	}
	b.id = v
	return nil
}

// SetName sets the asset name.
func (b *BusinessAsset) SetName(v string) error {
	b.name = v
	return nil
}

// SetType sets the asset type from the closed business asset type set.
func (b *BusinessAsset) SetType(v string) error {
	if !validate.OneOf(v, schema.BusinessAssetTypes()) {
		return &validate.ValidationError{Field: "businessAssetType", Message: "invalid business asset type"}
	}
	b.assetType = v
	return nil
}

// SetDescription sets the rich-text description.
func (b *BusinessAsset) SetDescription(v string) error {
	if !validate.HTML(v) {
		return &validate.ValidationError{Field: "businessAssetDescription", Message: "invalid html string"}
	}
	b.description = v
	return nil
}

// SetProperties attaches the CIA security properties record. The record's
// businessAssetIdRef is not synchronized automatically; callers set it to the
// owning asset's id.
func (b *BusinessAsset) SetProperties(p *BusinessAssetProperties) error {
	if p == nil {
		return &validate.ValidationError{Field: "businessAssetProperties", Message: "not a BusinessAssetProperties record"}
	}
	b.properties = p
	return nil
}

// Properties returns a snapshot of the asset, nested security properties
// included.
func (b *BusinessAsset) Properties() BusinessAssetProps {
	props := BusinessAssetProps{
		BusinessAssetID:          opt.CopyInt(b.id),
		BusinessAssetName:        b.name,
		BusinessAssetType:        b.assetType,
		BusinessAssetDescription: b.description,
	}
	if b.properties != nil {
		p := b.properties.Properties()
		props.BusinessAssetProperties = &p
	}
	return props
}

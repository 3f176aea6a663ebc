package project

import (
	"github.com/seclens/israkit/asset"
	"github.com/seclens/israkit/collection"
	"github.com/seclens/israkit/opt"
	"github.com/seclens/israkit/risk"
	"github.com/seclens/israkit/schema"
	"github.com/seclens/israkit/validate"
	"github.com/seclens/israkit/vuln"
)

// EntityTypeError reports an Add call that did not receive a usable entity
// record.
type EntityTypeError struct {
	Entity string
}

func (e *EntityTypeError) Error() string {
	return "not a " + e.Entity + " record"
}

// Project is the root aggregate of one ISRA document. It owns the ordered
// collections of every entity family, assigns their dense 1-based collection
// keys and tracks the per-family counts.
//
// The aggregate deliberately does not validate cross-collection references:
// a supporting asset may point at a deleted business asset, an attack path
// at a missing vulnerability. Deletion never cascades. The editing shell is
// expected to surface such states; the model just stores them.
type Project struct {
	appVersion           *int
	name                 string
	organization         string
	version              string
	tracking             *collection.Map[*MetaTracking]
	context              *Context
	businessAssets       *collection.Map[*asset.BusinessAsset]
	supportingAssetsDesc string
	supportingAssets     *collection.Map[*asset.SupportingAsset]
	risks                *collection.Map[*risk.Risk]
	vulnerabilities      *collection.Map[*vuln.Vulnerability]
}

// MetaProps is the ISRAmeta section of the aggregate snapshot.
type MetaProps struct {
	AppVersion            *int                      `json:"appVersion"`
	ProjectName           string                    `json:"projectName"`
	ProjectOrganization   string                    `json:"projectOrganization"`
	ProjectVersion        string                    `json:"projectVersion"`
	ISRATracking          map[int]MetaTrackingProps `json:"ISRAtracking"`
	BusinessAssetsCount   int                       `json:"businessAssetsCount"`
	SupportingAssetsCount int                       `json:"supportingAssetsCount"`
	RisksCount            int                       `json:"risksCount"`
	VulnerabilitiesCount  int                       `json:"vulnerabilitiesCount"`
}

// Props is the aggregate snapshot: everything the document holds, as plain
// records keyed by collection key, suitable for JSON serialization or UI
// binding.
type Props struct {
	ISRAMeta             MetaProps                          `json:"ISRAmeta"`
	ProjectContext       *ContextProps                      `json:"ProjectContext,omitempty"`
	BusinessAsset        map[int]asset.BusinessAssetProps   `json:"BusinessAsset"`
	SupportingAssetsDesc string                             `json:"SupportingAssetsDesc"`
	SupportingAsset      map[int]asset.SupportingAssetProps `json:"SupportingAsset"`
	Risk                 map[int]risk.Props                 `json:"Risk"`
	Vulnerability        map[int]vuln.Props                 `json:"Vulnerability"`
}

// New returns an empty project aggregate.
func New() *Project {
	return &Project{
		tracking:         collection.New[*MetaTracking](),
		businessAssets:   collection.New[*asset.BusinessAsset](),
		supportingAssets: collection.New[*asset.SupportingAsset](),
		risks:            collection.New[*risk.Risk](),
		vulnerabilities:  collection.New[*vuln.Vulnerability](),
	}
}

// SetAppVersion sets the authoring application version: nil or >= 1.
func (p *Project) SetAppVersion(v *int) error {
	if v != nil && !validate.PositiveInt(*v) {
		return &validate.ValidationError{Field: "appVersion", Message: "invalid app version"}
	}
	p.appVersion = v
	return nil
}

// SetName sets the project name.
func (p *Project) SetName(v string) error {
	p.name = v
	return nil
}

// SetOrganization sets the owning organization from the closed organization
// set.
func (p *Project) SetOrganization(v string) error {
	if !validate.OneOf(v, schema.Organizations()) {
		return &validate.ValidationError{Field: "projectOrganization", Message: "invalid project organization"}
	}
	p.organization = v
	return nil
}

// SetVersion sets the project version string.
func (p *Project) SetVersion(v string) error {
	p.version = v
	return nil
}

// SetContext attaches the project context record.
func (p *Project) SetContext(c *Context) error {
	if c == nil {
		return &EntityTypeError{Entity: "Context"}
	}
	p.context = c
	return nil
}

// Context returns the attached context record, nil when unset.
func (p *Project) Context() *Context { return p.context }

// SetSupportingAssetsDesc sets the rich-text description of the supporting
// asset landscape.
func (p *Project) SetSupportingAssetsDesc(v string) error {
	if !validate.HTML(v) {
		return &validate.ValidationError{Field: "supportingAssetsDesc", Message: "invalid html string"}
	}
	p.supportingAssetsDesc = v
	return nil
}

// AddMetaTracking inserts a tracking row at the next dense key, stamps the
// row's iteration with that key, and returns it.
func (p *Project) AddMetaTracking(m *MetaTracking) (int, error) {
	if m == nil {
		return 0, &EntityTypeError{Entity: "MetaTracking"}
	}
	key := p.tracking.Add(m)
	// the iteration mirrors the collection key at insert; later edits may
	// diverge and that is tolerated
	_ = m.SetIteration(opt.Int(key))
	return key, nil
}

// DeleteMetaTracking removes the row at key; missing keys are a no-op.
func (p *Project) DeleteMetaTracking(key int) {
	p.tracking.Delete(key)
}

// MetaTracking returns the tracking row at key.
func (p *Project) MetaTracking(key int) (*MetaTracking, bool) {
	return p.tracking.Get(key)
}

// AddBusinessAsset inserts a business asset at the next dense key and
// returns the key.
func (p *Project) AddBusinessAsset(b *asset.BusinessAsset) (int, error) {
	if b == nil {
		return 0, &EntityTypeError{Entity: "BusinessAsset"}
	}
	return p.businessAssets.Add(b), nil
}

// DeleteBusinessAsset removes the entry at key. Removal does not cascade:
// supporting assets and risks keep whatever references they hold.
func (p *Project) DeleteBusinessAsset(key int) {
	p.businessAssets.Delete(key)
}

// BusinessAsset returns the business asset at key.
func (p *Project) BusinessAsset(key int) (*asset.BusinessAsset, bool) {
	return p.businessAssets.Get(key)
}

// AddSupportingAsset inserts a supporting asset at the next dense key and
// returns the key.
func (p *Project) AddSupportingAsset(s *asset.SupportingAsset) (int, error) {
	if s == nil {
		return 0, &EntityTypeError{Entity: "SupportingAsset"}
	}
	return p.supportingAssets.Add(s), nil
}

// DeleteSupportingAsset removes the entry at key; missing keys are a no-op.
func (p *Project) DeleteSupportingAsset(key int) {
	p.supportingAssets.Delete(key)
}

// SupportingAsset returns the supporting asset at key.
func (p *Project) SupportingAsset(key int) (*asset.SupportingAsset, bool) {
	return p.supportingAssets.Get(key)
}

// AddRisk inserts a risk at the next dense key and returns the key.
func (p *Project) AddRisk(r *risk.Risk) (int, error) {
	if r == nil {
		return 0, &EntityTypeError{Entity: "Risk"}
	}
	return p.risks.Add(r), nil
}

// DeleteRisk removes the entry at key; missing keys are a no-op.
func (p *Project) DeleteRisk(key int) {
	p.risks.Delete(key)
}

// Risk returns the risk at key.
func (p *Project) Risk(key int) (*risk.Risk, bool) {
	return p.risks.Get(key)
}

// AddVulnerability inserts a vulnerability at the next dense key and returns
// the key.
func (p *Project) AddVulnerability(v *vuln.Vulnerability) (int, error) {
	if v == nil {
		return 0, &EntityTypeError{Entity: "Vulnerability"}
	}
	return p.vulnerabilities.Add(v), nil
}

// DeleteVulnerability removes the entry at key; missing keys are a no-op.
func (p *Project) DeleteVulnerability(key int) {
	p.vulnerabilities.Delete(key)
}

// Vulnerability returns the vulnerability at key.
func (p *Project) Vulnerability(key int) (*vuln.Vulnerability, bool) {
	return p.vulnerabilities.Get(key)
}

// Properties returns the aggregate snapshot.
func (p *Project) Properties() Props {
	props := Props{
		ISRAMeta: MetaProps{
			AppVersion:            opt.CopyInt(p.appVersion),
			ProjectName:           p.name,
			ProjectOrganization:   p.organization,
			ProjectVersion:        p.version,
			ISRATracking:          collection.Snapshot(p.tracking, (*MetaTracking).Properties),
			BusinessAssetsCount:   p.businessAssets.Len(),
			SupportingAssetsCount: p.supportingAssets.Len(),
			RisksCount:            p.risks.Len(),
			VulnerabilitiesCount:  p.vulnerabilities.Len(),
		},
		BusinessAsset:        collection.Snapshot(p.businessAssets, (*asset.BusinessAsset).Properties),
		SupportingAssetsDesc: p.supportingAssetsDesc,
		SupportingAsset:      collection.Snapshot(p.supportingAssets, (*asset.SupportingAsset).Properties),
		Risk:                 collection.Snapshot(p.risks, (*risk.Risk).Properties),
		Vulnerability:        collection.Snapshot(p.vulnerabilities, (*vuln.Vulnerability).Properties),
	}
	if p.context != nil {
		c := p.context.Properties()
		props.ProjectContext = &c
	}
	return props
}

package israkit

import (
	"github.com/seclens/israkit/asset"
	"github.com/seclens/israkit/project"
	"github.com/seclens/israkit/risk"
	"github.com/seclens/israkit/vuln"
)

// The editor surface is what an editing shell calls in response to user
// actions: each add operation creates an empty entity, wires it into the
// aggregate and returns its snapshot; each delete operation removes a batch
// of collection keys. The shell is responsible for presenting returned
// errors to the user; nothing here logs or displays anything.

// AddRisk appends an empty risk to the project and returns its snapshot.
func AddRisk(p *project.Project) (risk.Props, error) {
	r := risk.New()
	if _, err := p.AddRisk(r); err != nil {
		return risk.Props{}, &ModelError{Op: "Editor.AddRisk", Kind: KindEntityType, Err: err}
	}
	return r.Properties(), nil
}

// DeleteRisks removes the risks at the given collection keys. Keys that do
// not resolve are skipped; deletion never cascades into other collections.
func DeleteRisks(p *project.Project, keys []int) {
	for _, k := range keys {
		p.DeleteRisk(k)
	}
}

// AddBusinessAsset appends an empty business asset and returns its snapshot.
func AddBusinessAsset(p *project.Project) (asset.BusinessAssetProps, error) {
	b := asset.NewBusinessAsset()
	if _, err := p.AddBusinessAsset(b); err != nil {
		return asset.BusinessAssetProps{}, &ModelError{Op: "Editor.AddBusinessAsset", Kind: KindEntityType, Err: err}
	}
	return b.Properties(), nil
}

// DeleteBusinessAssets removes the business assets at the given keys.
// References held by supporting assets or risks are left untouched.
func DeleteBusinessAssets(p *project.Project, keys []int) {
	for _, k := range keys {
		p.DeleteBusinessAsset(k)
	}
}

// AddSupportingAsset appends an empty supporting asset and returns its
// snapshot.
func AddSupportingAsset(p *project.Project) (asset.SupportingAssetProps, error) {
	s := asset.NewSupportingAsset()
	if _, err := p.AddSupportingAsset(s); err != nil {
		return asset.SupportingAssetProps{}, &ModelError{Op: "Editor.AddSupportingAsset", Kind: KindEntityType, Err: err}
	}
	return s.Properties(), nil
}

// DeleteSupportingAssets removes the supporting assets at the given keys.
func DeleteSupportingAssets(p *project.Project, keys []int) {
	for _, k := range keys {
		p.DeleteSupportingAsset(k)
	}
}

// AddVulnerability appends an empty vulnerability and returns its snapshot.
func AddVulnerability(p *project.Project) (vuln.Props, error) {
	v := vuln.New()
	if _, err := p.AddVulnerability(v); err != nil {
		return vuln.Props{}, &ModelError{Op: "Editor.AddVulnerability", Kind: KindEntityType, Err: err}
	}
	return v.Properties(), nil
}

// DeleteVulnerabilities removes the vulnerabilities at the given keys.
// Attack-path references to them go dangling and are tolerated.
func DeleteVulnerabilities(p *project.Project, keys []int) {
	for _, k := range keys {
		p.DeleteVulnerability(k)
	}
}

// AddMetaTracking appends a tracking row prefilled with the current user and
// date, stamped with its collection key as iteration, and returns its
// snapshot.
func AddMetaTracking(p *project.Project) (project.MetaTrackingProps, error) {
	m := project.NewMetaTracking()
	if _, err := p.AddMetaTracking(m); err != nil {
		return project.MetaTrackingProps{}, &ModelError{Op: "Editor.AddMetaTracking", Kind: KindEntityType, Err: err}
	}
	return m.Properties(), nil
}

// DeleteMetaTrackings removes the tracking rows at the given keys.
func DeleteMetaTrackings(p *project.Project, keys []int) {
	for _, k := range keys {
		p.DeleteMetaTracking(k)
	}
}

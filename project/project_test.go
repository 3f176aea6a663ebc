package project

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclens/israkit/asset"
	"github.com/seclens/israkit/opt"
	"github.com/seclens/israkit/risk"
	"github.com/seclens/israkit/vuln"
)

func TestProjectMeta(t *testing.T) {
	p := New()

	require.NoError(t, p.SetAppVersion(opt.Int(5)))
	require.NoError(t, p.SetAppVersion(nil))
	err := p.SetAppVersion(opt.Int(0))
	require.Error(t, err)

	require.NoError(t, p.SetName("CRM Platform"))
	require.NoError(t, p.SetVersion("1.2"))

	require.NoError(t, p.SetOrganization(""))
	err = p.SetOrganization("Not An Org")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "projectOrganization")

	props := p.Properties()
	assert.Nil(t, props.ISRAMeta.AppVersion)
	assert.Equal(t, "CRM Platform", props.ISRAMeta.ProjectName)
	assert.Equal(t, "1.2", props.ISRAMeta.ProjectVersion)
	// the rejected organization write kept the previous value
	assert.Equal(t, "", props.ISRAMeta.ProjectOrganization)
}

func TestProjectContext(t *testing.T) {
	p := New()

	err := p.SetContext(nil)
	require.Error(t, err)
	assert.Nil(t, p.Properties().ProjectContext)

	c := NewContext()
	require.NoError(t, c.SetDescription("<p>scope</p>"))
	require.NoError(t, p.SetContext(c))

	props := p.Properties()
	require.NotNil(t, props.ProjectContext)
	assert.Equal(t, "<p>scope</p>", props.ProjectContext.ProjectDescription)
}

func TestProjectSupportingAssetsDesc(t *testing.T) {
	p := New()

	require.NoError(t, p.SetSupportingAssetsDesc(""))
	require.NoError(t, p.SetSupportingAssetsDesc("<div>landscape</div>"))
	require.Error(t, p.SetSupportingAssetsDesc("plain text"))
	assert.Equal(t, "<div>landscape</div>", p.Properties().SupportingAssetsDesc)
}

func TestAddMetaTrackingStampsIteration(t *testing.T) {
	p := New()

	first := NewMetaTracking()
	key, err := p.AddMetaTracking(first)
	require.NoError(t, err)
	assert.Equal(t, 1, key)
	assert.Equal(t, 1, *first.Properties().TrackingIteration)

	second := NewMetaTracking()
	key, err = p.AddMetaTracking(second)
	require.NoError(t, err)
	assert.Equal(t, 2, key)
	assert.Equal(t, 2, *second.Properties().TrackingIteration)

	_, err = p.AddMetaTracking(nil)
	require.Error(t, err)

	p.DeleteMetaTracking(1)
	_, ok := p.MetaTracking(1)
	assert.False(t, ok)

	props := p.Properties()
	assert.Len(t, props.ISRAMeta.ISRATracking, 1)
	// the surviving row keeps its original iteration stamp
	assert.Equal(t, 2, *props.ISRAMeta.ISRATracking[2].TrackingIteration)
}

func TestCollectionCounts(t *testing.T) {
	p := New()

	for i := 0; i < 3; i++ {
		_, err := p.AddBusinessAsset(asset.NewBusinessAsset())
		require.NoError(t, err)
	}
	_, err := p.AddSupportingAsset(asset.NewSupportingAsset())
	require.NoError(t, err)
	_, err = p.AddRisk(risk.New())
	require.NoError(t, err)
	_, err = p.AddVulnerability(vuln.New())
	require.NoError(t, err)

	meta := p.Properties().ISRAMeta
	assert.Equal(t, 3, meta.BusinessAssetsCount)
	assert.Equal(t, 1, meta.SupportingAssetsCount)
	assert.Equal(t, 1, meta.RisksCount)
	assert.Equal(t, 1, meta.VulnerabilitiesCount)

	p.DeleteBusinessAsset(2)
	assert.Equal(t, 2, p.Properties().ISRAMeta.BusinessAssetsCount)
}

func TestAddRejectsNilEntities(t *testing.T) {
	p := New()

	_, err := p.AddBusinessAsset(nil)
	assert.Error(t, err)
	_, err = p.AddSupportingAsset(nil)
	assert.Error(t, err)
	_, err = p.AddRisk(nil)
	assert.Error(t, err)
	_, err = p.AddVulnerability(nil)
	assert.Error(t, err)
	assert.Equal(t, 0, p.Properties().ISRAMeta.BusinessAssetsCount)
}

func TestDeleteDoesNotCascade(t *testing.T) {
	p := New()

	ba := asset.NewBusinessAsset()
	require.NoError(t, ba.SetName("Customer data"))
	baKey, err := p.AddBusinessAsset(ba)
	require.NoError(t, err)

	sa := asset.NewSupportingAsset()
	sa.AddBusinessAssetRef(baKey)
	saKey, err := p.AddSupportingAsset(sa)
	require.NoError(t, err)

	p.DeleteBusinessAsset(baKey)

	// the reference survives the deletion; readers see it dangling
	got, ok := p.SupportingAsset(saKey)
	require.True(t, ok)
	assert.True(t, got.HasBusinessAssetRef(baKey))
	_, ok = p.BusinessAsset(baKey)
	assert.False(t, ok)
}

func TestSnapshotIsDetached(t *testing.T) {
	p := New()

	ba := asset.NewBusinessAsset()
	require.NoError(t, ba.SetName("before"))
	key, err := p.AddBusinessAsset(ba)
	require.NoError(t, err)

	snap := p.Properties()
	require.NoError(t, ba.SetName("after"))

	assert.Equal(t, "before", snap.BusinessAsset[key].BusinessAssetName)
	assert.Equal(t, "after", p.Properties().BusinessAsset[key].BusinessAssetName)
}

func TestProjectProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	properties.Property("adding n risks yields keys 1..n", prop.ForAll(
		func(n int) bool {
			p := New()
			for i := 0; i < n; i++ {
				key, err := p.AddRisk(risk.New())
				if err != nil || key != i+1 {
					return false
				}
			}
			return p.Properties().ISRAMeta.RisksCount == n
		},
		gen.IntRange(0, 40),
	))

	properties.Property("snapshot is stable across repeated reads", prop.ForAll(
		func(name string, n int) bool {
			p := New()
			if err := p.SetName(name); err != nil {
				return false
			}
			for i := 0; i < n; i++ {
				if _, err := p.AddVulnerability(vuln.New()); err != nil {
					return false
				}
			}
			a := p.Properties()
			b := p.Properties()
			return a.ISRAMeta.ProjectName == b.ISRAMeta.ProjectName &&
				a.ISRAMeta.VulnerabilitiesCount == b.ISRAMeta.VulnerabilitiesCount &&
				len(a.Vulnerability) == len(b.Vulnerability)
		},
		gen.AlphaString(),
		gen.IntRange(0, 10),
	))

	properties.TestingRun(t)
}

package vuln

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclens/israkit/opt"
)

func TestVulnerabilityDomains(t *testing.T) {
	v := New()

	require.NoError(t, v.SetID(opt.Int(1)))
	assert.Error(t, v.SetID(opt.Int(0)))

	require.NoError(t, v.SetFamily(""))
	require.NoError(t, v.SetFamily("Input Validation Vulnerability"))
	assert.Error(t, v.SetFamily("Invalid family"))

	require.NoError(t, v.SetTrackingURI("https://tracker.example.com/issues/42"))
	require.NoError(t, v.SetTrackingURI(""))
	assert.Error(t, v.SetTrackingURI("tracker.example.com"))

	require.NoError(t, v.SetDescription("<p>heap overflow in parser</p>"))
	assert.Error(t, v.SetDescription("heap overflow in parser"))

	require.NoError(t, v.SetDescriptionAttachment("YWJjZA=="))
	assert.Error(t, v.SetDescriptionAttachment("nkjh8whNknj"))

	require.NoError(t, v.SetCVEScore(opt.Float(9.8)))
	assert.Error(t, v.SetCVEScore(opt.Float(10.1)))
	assert.Equal(t, 9.8, *v.Properties().CVEScore)

	require.NoError(t, v.SetOverallScore(opt.Int(10)))
	assert.Error(t, v.SetOverallScore(opt.Int(11)))

	require.NoError(t, v.SetOverallLevel("Critical"))
	assert.Error(t, v.SetOverallLevel("Very High"))
}

func TestVulnerabilitySupportingAssetRefs(t *testing.T) {
	v := New()
	v.AddSupportingAssetRef(1)
	v.AddSupportingAssetRef(2)
	v.AddSupportingAssetRef(1)
	assert.Equal(t, []int{1, 2}, v.Properties().SupportingAssetRefs)

	v.DeleteSupportingAssetRef(1)
	assert.Equal(t, []int{2}, v.Properties().SupportingAssetRefs)
	v.DeleteSupportingAssetRef(99)
	assert.Equal(t, []int{2}, v.Properties().SupportingAssetRefs)
}

package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclens/israkit/rawxml"
)

// Two risks: the first carries an OWASP likelihood sub-evaluation, one
// attack path and one mitigation; the second carries neither sub-evaluation
// nor attack paths and two mitigations. Rich-text bodies are marked so the
// document-wide fragment alignment is observable.
const twoRiskDoc = `<ISRA>
  <Risks>
    <Risk>
      <riskId>1</riskId>
      <projectName>CRM</projectName>
      <projectVersion>1.0</projectVersion>
      <riskName>As a result, data could be stolen</riskName>
      <threatAgent>Criminal</threatAgent>
      <threatAgentDetail>&lt;p&gt;agent-1&lt;/p&gt;</threatAgentDetail>
      <threatVerb>steals</threatVerb>
      <threatVerbDetail>&lt;p&gt;verb-1&lt;/p&gt;</threatVerbDetail>
      <motivation>profit</motivation>
      <motivationDetail>&lt;p&gt;motive-1&lt;/p&gt;</motivationDetail>
      <businessAssetRef>1</businessAssetRef>
      <supportingAssetRef>2</supportingAssetRef>
      <riskManagmentDetail>&lt;p&gt;mgmt-1&lt;/p&gt;</riskManagmentDetail>
      <riskManagementDecision>Mitigate</riskManagementDecision>
      <residualRiskScore>4.2</residualRiskScore>
      <residualRiskLevel>Medium</residualRiskLevel>
      <mitigationsBenefits>0.33</mitigationsBenefits>
      <mitigationsDoneBenefits>0</mitigationsDoneBenefits>
      <LikelihoodRiskEvaluation>
        <riskLikelihood>2</riskLikelihood>
        <riskLikelihoodDetail>&lt;p&gt;likely-1&lt;/p&gt;</riskLikelihoodDetail>
        <LikelihoodRiskEvaluationMethod>
          <OWASPLikelihoodEvaluation>
            <OWASPLikelihoodScore>5.4</OWASPLikelihoodScore>
            <ThreatFactor>
              <skillLevel>3</skillLevel>
              <reward>4</reward>
              <accessResources>7</accessResources>
              <size>5</size>
              <intrusionDetection>8</intrusionDetection>
            </ThreatFactor>
            <threatFactorScore>5.4</threatFactorScore>
            <threatFactorLevel>Medium</threatFactorLevel>
            <occurrence>3</occurrence>
            <occurrenceLevel>Medium</occurrenceLevel>
          </OWASPLikelihoodEvaluation>
        </LikelihoodRiskEvaluationMethod>
      </LikelihoodRiskEvaluation>
      <ImpactRiskEvaluation>
        <riskImpact>3</riskImpact>
        <BusinessAssetSelectedProperties>
          <businessAssetConfidentialityFlag>1</businessAssetConfidentialityFlag>
          <businessAssetIntegrityFlag>0</businessAssetIntegrityFlag>
          <businessAssetAvailabilityFlag>1</businessAssetAvailabilityFlag>
          <businessAssetAuthenticityFlag>0</businessAssetAuthenticityFlag>
          <businessAssetAuthorizationFlag>0</businessAssetAuthorizationFlag>
          <businessAssetNonRepudiationFlag>1</businessAssetNonRepudiationFlag>
        </BusinessAssetSelectedProperties>
      </ImpactRiskEvaluation>
      <VulnerabilityRiskEvaluation>
        <attackPathName>phishing</attackPathName>
        <attackPathScore>6.5</attackPathScore>
        <vulnerabilityRef score="7" name="Weak credentials">1</vulnerabilityRef>
        <vulnerabilityRef score="4" name="Unpatched host"></vulnerabilityRef>
      </VulnerabilityRiskEvaluation>
      <Mitigation>
        <description>&lt;p&gt;mitigation-1&lt;/p&gt;</description>
        <decisionDetail>&lt;p&gt;decision-1&lt;/p&gt;</decisionDetail>
        <mitigationDecision>
          <decision>Accepted</decision>
        </mitigationDecision>
        <benefits>0.33</benefits>
        <cost>50</cost>
      </Mitigation>
    </Risk>
    <Risk>
      <riskId>2</riskId>
      <projectName>CRM</projectName>
      <projectVersion>1.0</projectVersion>
      <riskName>As a result, service could be disrupted</riskName>
      <threatAgent>Activist</threatAgent>
      <threatAgentDetail>&lt;p&gt;agent-2&lt;/p&gt;</threatAgentDetail>
      <threatVerb>disrupts</threatVerb>
      <threatVerbDetail>&lt;p&gt;verb-2&lt;/p&gt;</threatVerbDetail>
      <motivation>publicity</motivation>
      <motivationDetail>&lt;p&gt;motive-2&lt;/p&gt;</motivationDetail>
      <businessAssetRef>3</businessAssetRef>
      <supportingAssetRef>4</supportingAssetRef>
      <riskManagmentDetail>&lt;p&gt;mgmt-2&lt;/p&gt;</riskManagmentDetail>
      <mitigationsBenefits>0.66</mitigationsBenefits>
      <mitigationsDoneBenefits>0.33</mitigationsDoneBenefits>
      <LikelihoodRiskEvaluation>
        <riskLikelihood>4</riskLikelihood>
        <riskLikelihoodDetail>&lt;p&gt;likely-2&lt;/p&gt;</riskLikelihoodDetail>
        <LikelihoodRiskEvaluationMethod></LikelihoodRiskEvaluationMethod>
      </LikelihoodRiskEvaluation>
      <ImpactRiskEvaluation>
        <riskImpact>2</riskImpact>
        <BusinessAssetSelectedProperties>
          <businessAssetConfidentialityFlag>0</businessAssetConfidentialityFlag>
          <businessAssetIntegrityFlag>1</businessAssetIntegrityFlag>
          <businessAssetAvailabilityFlag>1</businessAssetAvailabilityFlag>
          <businessAssetAuthenticityFlag>0</businessAssetAuthenticityFlag>
          <businessAssetAuthorizationFlag>0</businessAssetAuthorizationFlag>
          <businessAssetNonRepudiationFlag>0</businessAssetNonRepudiationFlag>
        </BusinessAssetSelectedProperties>
      </ImpactRiskEvaluation>
      <Mitigation>
        <description>&lt;p&gt;mitigation-2&lt;/p&gt;</description>
        <decisionDetail>&lt;p&gt;decision-2&lt;/p&gt;</decisionDetail>
        <mitigationDecision>
          <decision>Done</decision>
        </mitigationDecision>
        <benefits>1</benefits>
        <cost>10</cost>
      </Mitigation>
      <Mitigation>
        <description>&lt;p&gt;mitigation-3&lt;/p&gt;</description>
        <decisionDetail>&lt;p&gt;decision-3&lt;/p&gt;</decisionDetail>
        <mitigationDecision>
          <decision>Postponed</decision>
        </mitigationDecision>
        <benefits>0</benefits>
        <cost>200</cost>
      </Mitigation>
    </Risk>
  </Risks>
</ISRA>`

func parseTwoRiskDoc(t *testing.T) (*rawxml.Node, []*rawxml.Node) {
	t.Helper()
	doc, err := rawxml.Parse(strings.NewReader(twoRiskDoc))
	require.NoError(t, err)
	risksGroup, ok := doc.First("Risks")
	require.True(t, ok)
	nodes := risksGroup.All("Risk")
	require.Len(t, nodes, 2)
	return doc, nodes
}

func TestRisksBaseFields(t *testing.T) {
	doc, nodes := parseTwoRiskDoc(t)
	records := Risks(doc, nodes)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "1", first.RiskID)
	assert.Equal(t, "CRM", first.ProjectNameRef)
	assert.Equal(t, "1.0", first.ProjectVersionRef)
	assert.Equal(t, "<p>mgmt-1</p>", first.RiskManagementDetail)
	assert.Equal(t, "Mitigate", first.RiskManagementDecision)
	assert.Equal(t, "4.2", first.ResidualRiskScore)
	assert.Equal(t, "Medium", first.ResidualRiskLevel)

	second := records[1]
	assert.Equal(t, "2", second.RiskID)
	assert.Equal(t, "<p>mgmt-2</p>", second.RiskManagementDetail)
	assert.Equal(t, "", second.RiskManagementDecision)
}

func TestRisksNameGroup(t *testing.T) {
	doc, nodes := parseTwoRiskDoc(t)
	records := Risks(doc, nodes)

	name := records[1].RiskName
	assert.Equal(t, "2", name.RiskIDRef)
	assert.Equal(t, "Activist", name.ThreatAgent)
	assert.Equal(t, "<p>agent-2</p>", name.ThreatAgentDetail)
	assert.Equal(t, "disrupts", name.ThreatVerb)
	assert.Equal(t, "<p>verb-2</p>", name.ThreatVerbDetail)
	assert.Equal(t, "publicity", name.Motivation)
	assert.Equal(t, "<p>motive-2</p>", name.MotivationDetail)
	assert.Equal(t, "3", name.BusinessAssetRef)
	assert.Equal(t, "4", name.SupportingAssetRef)
}

func TestRisksLikelihoodConditionalShape(t *testing.T) {
	doc, nodes := parseTwoRiskDoc(t)
	records := Risks(doc, nodes)

	with := records[0].RiskLikelihood
	assert.Equal(t, "1", with.RiskIDRef)
	assert.Equal(t, "2", with.RiskLikelihood)
	assert.Equal(t, "<p>likely-1</p>", with.RiskLikelihoodDetail)
	require.NotNil(t, with.SkillLevel)
	assert.Equal(t, "3", *with.SkillLevel)
	assert.Equal(t, "4", *with.Reward)
	assert.Equal(t, "7", *with.AccessResources)
	assert.Equal(t, "5", *with.Size)
	assert.Equal(t, "8", *with.IntrusionDetection)
	assert.Equal(t, "5.4", *with.ThreatFactorScore)
	assert.Equal(t, "Medium", *with.ThreatFactorLevel)
	assert.Equal(t, "3", *with.Occurrence)
	assert.Equal(t, "Medium", *with.OccurrenceLevel)

	without := records[1].RiskLikelihood
	assert.Equal(t, "2", without.RiskIDRef)
	assert.Equal(t, "4", without.RiskLikelihood)
	assert.Equal(t, "<p>likely-2</p>", without.RiskLikelihoodDetail)
	assert.Nil(t, without.SkillLevel)
	assert.Nil(t, without.Reward)
	assert.Nil(t, without.AccessResources)
	assert.Nil(t, without.Size)
	assert.Nil(t, without.IntrusionDetection)
	assert.Nil(t, without.ThreatFactorScore)
	assert.Nil(t, without.ThreatFactorLevel)
	assert.Nil(t, without.Occurrence)
	assert.Nil(t, without.OccurrenceLevel)
}

func TestRisksImpactGroup(t *testing.T) {
	doc, nodes := parseTwoRiskDoc(t)
	records := Risks(doc, nodes)

	impact := records[0].RiskImpact
	assert.Equal(t, "1", impact.RiskIDRef)
	assert.Equal(t, "3", impact.RiskImpact)
	assert.Equal(t, "1", impact.BusinessAssetPropertiesRef)
	assert.Equal(t, "1", impact.BusinessAssetConfidentialityFlag)
	assert.Equal(t, "0", impact.BusinessAssetIntegrityFlag)
	assert.Equal(t, "1", impact.BusinessAssetAvailabilityFlag)
	assert.Equal(t, "1", impact.BusinessAssetNonRepudiationFlag)
}

func TestRisksAttackPaths(t *testing.T) {
	doc, nodes := parseTwoRiskDoc(t)
	records := Risks(doc, nodes)

	paths := records[0].RiskAttackPaths
	require.Len(t, paths, 1)
	assert.Equal(t, "1", paths[0].RiskIDRef)
	assert.Equal(t, 1, paths[0].RiskAttackPathID)
	assert.Equal(t, "phishing", paths[0].AttackPathName)
	assert.Equal(t, "6.5", paths[0].AttackPathScore)

	refs := paths[0].VulnerabilityRef
	require.Len(t, refs, 2)
	assert.Equal(t, "1", refs[0].VulnerabilityIDRef)
	assert.Equal(t, "7", refs[0].Score)
	assert.Equal(t, "Weak credentials", refs[0].Name)
	// an empty reference element yields an empty id, not an error
	assert.Equal(t, "", refs[1].VulnerabilityIDRef)
	assert.Equal(t, "4", refs[1].Score)
	assert.Equal(t, "Unpatched host", refs[1].Name)

	// a risk with no vulnerability evaluations yields an empty, non-nil slice
	require.NotNil(t, records[1].RiskAttackPaths)
	assert.Len(t, records[1].RiskAttackPaths, 0)
}

func TestRisksMitigationCounterAlignment(t *testing.T) {
	doc, nodes := parseTwoRiskDoc(t)
	records := Risks(doc, nodes)

	first := records[0].RiskMitigation
	require.Len(t, first, 1)
	assert.Equal(t, 1, first[0].RiskMitigationID)
	assert.Equal(t, "<p>mitigation-1</p>", first[0].Description)
	assert.Equal(t, "<p>decision-1</p>", first[0].DecisionDetail)
	assert.Equal(t, "Accepted", first[0].Decision)
	assert.Equal(t, "0.33", first[0].Benefits)
	assert.Equal(t, "50", first[0].Cost)
	assert.Equal(t, "0.33", first[0].MitigationsBenefits)
	assert.Equal(t, "0", first[0].MitigationsDoneBenefits)

	// the id restarts at 1 per risk while the body lookups keep advancing
	// across the whole document
	second := records[1].RiskMitigation
	require.Len(t, second, 2)
	assert.Equal(t, 1, second[0].RiskMitigationID)
	assert.Equal(t, "<p>mitigation-2</p>", second[0].Description)
	assert.Equal(t, "<p>decision-2</p>", second[0].DecisionDetail)
	assert.Equal(t, "Done", second[0].Decision)
	assert.Equal(t, 2, second[1].RiskMitigationID)
	assert.Equal(t, "<p>mitigation-3</p>", second[1].Description)
	assert.Equal(t, "<p>decision-3</p>", second[1].DecisionDetail)
	assert.Equal(t, "Postponed", second[1].Decision)
	assert.Equal(t, "0.66", second[0].MitigationsBenefits)
	assert.Equal(t, "0.33", second[1].MitigationsDoneBenefits)
}

func TestRisksEmptyInput(t *testing.T) {
	doc, err := rawxml.Parse(strings.NewReader("<ISRA><Risks></Risks></ISRA>"))
	require.NoError(t, err)

	records := Risks(doc, nil)
	require.NotNil(t, records)
	assert.Len(t, records, 0)
}

func TestRisksMissingRequiredGroupPanics(t *testing.T) {
	const broken = `<ISRA>
  <Risks>
    <Risk>
      <riskId>1</riskId>
    </Risk>
  </Risks>
</ISRA>`
	doc, err := rawxml.Parse(strings.NewReader(broken))
	require.NoError(t, err)
	risksGroup, ok := doc.First("Risks")
	require.True(t, ok)

	assert.Panics(t, func() {
		Risks(doc, risksGroup.All("Risk"))
	})
}

func TestCounter(t *testing.T) {
	var c Counter
	assert.Equal(t, 0, c.Count())
	c.Increment()
	assert.Equal(t, 1, c.Count())
	c.Increment()
	c.Increment()
	assert.Equal(t, 3, c.Count())
}

package transform

import (
	"fmt"

	"github.com/seclens/israkit/rawxml"
)

// Fragment element names used by the export format. The misspelled
// management tag is part of the wire format.
const (
	tagRiskManagementDetail = "riskManagmentDetail"
	tagThreatAgentDetail    = "threatAgentDetail"
	tagThreatVerbDetail     = "threatVerbDetail"
	tagMotivationDetail     = "motivationDetail"
	tagRiskLikelihoodDetail = "riskLikelihoodDetail"
	tagDescription          = "description"
	tagDecisionDetail       = "decisionDetail"
)

// mustFirst returns the first child with the given tag and panics when the
// group is missing. The pipeline assumes schema-conformant input and does
// no schema validation of its own; a missing required group is not a
// recoverable condition.
func mustFirst(n *rawxml.Node, tag string) *rawxml.Node {
	k, ok := n.First(tag)
	if !ok {
		panic(fmt.Sprintf("transform: missing required group %q under <%s>", tag, n.Tag))
	}
	return k
}

func fragment(doc *rawxml.Node, tag string, index int) string {
	s, _ := rawxml.HTMLString(doc, tag, index)
	return s
}

// Risks reshapes the raw risk nodes of one document into flat records, in
// document order. doc is the whole parsed document; the rich-text bodies of
// the risks live in it flatly, by kind, and are re-associated here purely by
// occurrence position. The risk counter and the mitigation counter both span
// the whole document and are never reset; the attack-path and mitigation id
// counters restart at 1 for every risk.
func Risks(doc *rawxml.Node, riskNodes []*rawxml.Node) []RiskRecord {
	records := make([]RiskRecord, 0, len(riskNodes))

	var riskCounter, mitigationCounter Counter
	for _, node := range riskNodes {
		riskCounter.Increment()

		riskID := node.Text("riskId")
		rec := RiskRecord{
			RiskID:                  riskID,
			ProjectNameRef:          node.Text("projectName"),
			ProjectVersionRef:       node.Text("projectVersion"),
			AllAttackPathsName:      node.Text("allAttackPathsName"),
			AllAttackPathsScore:     node.Text("allAttackPathsScore"),
			InherentRiskScore:       node.Text("inherentRiskScore"),
			MitigatedRiskScore:      node.Text("mitigatedRiskScore"),
			RiskManagementDecision:  node.Text("riskManagementDecision"),
			RiskManagementDetail:    fragment(doc, tagRiskManagementDetail, riskCounter.Count()),
			ResidualRiskScore:       node.Text("residualRiskScore"),
			ResidualRiskLevel:       node.Text("residualRiskLevel"),
			MitigationsBenefits:     node.Text("mitigationsBenefits"),
			MitigationsDoneBenefits: node.Text("mitigationsDoneBenefits"),
		}

		rec.RiskName = NameRecord{
			RiskIDRef:          riskID,
			RiskName:           node.Text("riskName"),
			ThreatAgent:        node.Text("threatAgent"),
			ThreatAgentDetail:  fragment(doc, tagThreatAgentDetail, riskCounter.Count()),
			ThreatVerb:         node.Text("threatVerb"),
			ThreatVerbDetail:   fragment(doc, tagThreatVerbDetail, riskCounter.Count()),
			Motivation:         node.Text("motivation"),
			MotivationDetail:   fragment(doc, tagMotivationDetail, riskCounter.Count()),
			BusinessAssetRef:   node.Text("businessAssetRef"),
			SupportingAssetRef: node.Text("supportingAssetRef"),
		}

		likelihoodEval := mustFirst(node, "LikelihoodRiskEvaluation")
		rec.RiskLikelihood = LikelihoodRecord{
			RiskIDRef:            riskID,
			RiskLikelihood:       likelihoodEval.Text("riskLikelihood"),
			RiskLikelihoodDetail: fragment(doc, tagRiskLikelihoodDetail, riskCounter.Count()),
		}
		method := mustFirst(likelihoodEval, "LikelihoodRiskEvaluationMethod")
		if owasp, ok := method.First("OWASPLikelihoodEvaluation"); ok {
			// the precomputed OWASPLikelihoodScore is deliberately dropped
			factor := mustFirst(owasp, "ThreatFactor")
			rec.RiskLikelihood.SkillLevel = ptr(factor.Text("skillLevel"))
			rec.RiskLikelihood.Reward = ptr(factor.Text("reward"))
			rec.RiskLikelihood.AccessResources = ptr(factor.Text("accessResources"))
			rec.RiskLikelihood.Size = ptr(factor.Text("size"))
			rec.RiskLikelihood.IntrusionDetection = ptr(factor.Text("intrusionDetection"))
			rec.RiskLikelihood.ThreatFactorScore = ptr(owasp.Text("threatFactorScore"))
			rec.RiskLikelihood.ThreatFactorLevel = ptr(owasp.Text("threatFactorLevel"))
			rec.RiskLikelihood.Occurrence = ptr(owasp.Text("occurrence"))
			rec.RiskLikelihood.OccurrenceLevel = ptr(owasp.Text("occurrenceLevel"))
		}

		impactEval := mustFirst(node, "ImpactRiskEvaluation")
		selected := mustFirst(impactEval, "BusinessAssetSelectedProperties")
		rec.RiskImpact = ImpactRecord{
			RiskIDRef:                        riskID,
			RiskImpact:                       impactEval.Text("riskImpact"),
			BusinessAssetPropertiesRef:       node.Text("businessAssetRef"),
			BusinessAssetConfidentialityFlag: selected.Text("businessAssetConfidentialityFlag"),
			BusinessAssetIntegrityFlag:       selected.Text("businessAssetIntegrityFlag"),
			BusinessAssetAvailabilityFlag:    selected.Text("businessAssetAvailabilityFlag"),
			BusinessAssetAuthenticityFlag:    selected.Text("businessAssetAuthenticityFlag"),
			BusinessAssetAuthorizationFlag:   selected.Text("businessAssetAuthorizationFlag"),
			BusinessAssetNonRepudiationFlag:  selected.Text("businessAssetNonRepudiationFlag"),
		}

		rec.RiskAttackPaths = attackPaths(riskID, node.All("VulnerabilityRiskEvaluation"))
		rec.RiskMitigation = mitigations(doc, riskID, rec, node.All("Mitigation"), &mitigationCounter)

		records = append(records, rec)
	}
	return records
}

func attackPaths(riskID string, evals []*rawxml.Node) []AttackPathRecord {
	paths := make([]AttackPathRecord, 0, len(evals))
	var idCounter Counter
	for _, eval := range evals {
		idCounter.Increment()

		refNodes := eval.All("vulnerabilityRef")
		refs := make([]VulnerabilityRefRecord, 0, len(refNodes))
		for _, ref := range refNodes {
			refs = append(refs, VulnerabilityRefRecord{
				VulnerabilityIDRef: ref.Char,
				Score:              ref.Attr["score"],
				Name:               ref.Attr["name"],
			})
		}

		paths = append(paths, AttackPathRecord{
			RiskIDRef:        riskID,
			RiskAttackPathID: idCounter.Count(),
			AttackPathName:   eval.Text("attackPathName"),
			AttackPathScore:  eval.Text("attackPathScore"),
			VulnerabilityRef: refs,
		})
	}
	return paths
}

func mitigations(doc *rawxml.Node, riskID string, rec RiskRecord, nodes []*rawxml.Node, docCounter *Counter) []MitigationRecord {
	out := make([]MitigationRecord, 0, len(nodes))
	var idCounter Counter
	for _, node := range nodes {
		docCounter.Increment()
		idCounter.Increment()

		decision := mustFirst(node, "mitigationDecision")
		out = append(out, MitigationRecord{
			RiskIDRef:        riskID,
			RiskMitigationID: idCounter.Count(),
			// the inline description is ignored; the rich-text body lives
			// out-of-line and is positioned by the document-wide counter
			Description:             fragment(doc, tagDescription, docCounter.Count()),
			DecisionDetail:          fragment(doc, tagDecisionDetail, docCounter.Count()),
			Decision:                decision.Text("decision"),
			Benefits:                node.Text("benefits"),
			Cost:                    node.Text("cost"),
			MitigationsBenefits:     rec.MitigationsBenefits,
			MitigationsDoneBenefits: rec.MitigationsDoneBenefits,
		})
	}
	return out
}

func ptr(s string) *string { return &s }

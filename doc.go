// Package israkit models an information security risk assessment document:
// a validated project aggregate of business assets, supporting assets, risks
// and vulnerabilities, plus the pipeline that reshapes exported XML
// documents into the flat records the model consumes.
//
// The root package exposes the shell-facing editor surface. The model itself
// lives in the sub-packages:
//
//   - project: the root aggregate and its metadata
//   - asset, risk, vuln: the entity records with validated setters
//   - validate, schema: field predicates and the closed value domains
//   - rawxml, transform: document parsing and the risk reshaping pipeline
//
// Entity setters reject out-of-domain writes with a ValidationError and keep
// the previous value. Collection keys are dense and 1-based; deletion leaves
// holes and never cascades, so dangling cross-references are a normal,
// tolerated state.
package israkit

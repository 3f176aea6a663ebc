// Package project holds the root aggregate of an information security risk
// assessment document: the project metadata, the audit tracking rows, the
// project context, and the ordered collections of business assets,
// supporting assets, risks and vulnerabilities.
//
// Collection keys are dense and 1-based at insert time. Deleting an entry
// leaves a hole, and no reference held by another entity is rewritten or
// checked when that happens.
package project

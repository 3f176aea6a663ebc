// Package transform reshapes raw exported documents into the flat,
// id-referenced records the model consumes. The export format serializes
// rich-text bodies flatly, by kind, separate from the structured fields that
// own them; the pipeline re-associates them purely by occurrence position,
// so the counters here must advance in exactly document order.
//
// The pipeline assumes schema-conformant input. Absent optional groups
// become empty collections; a missing required group panics.
package transform

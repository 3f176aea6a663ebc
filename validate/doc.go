// Package validate provides the field-level predicates behind every entity
// accessor in the ISRA document model: HTML/URL/base64 shape checks, ISO date
// checks, closed-set membership and numeric range checks.
//
// Each predicate is pure and side-effect free. Entity setters combine a
// predicate with a ValidationError describing the rejected field:
//
//	if !validate.HTML(v) {
//	    return &validate.ValidationError{Field: "businessAssetDescription", Message: "invalid html string"}
//	}
//
// The empty string is accepted by every string-shape predicate; it is the
// universal "unset" member of the model's closed enumerations.
package validate

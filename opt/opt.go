// Package opt provides pointer constructors for nullable field writes.
// Model fields that accept an explicit null take a pointer; nil is the null
// write, opt.Int(3) the value write.
package opt

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// CopyInt returns an independent copy of v, preserving nil.
func CopyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// CopyFloat returns an independent copy of v, preserving nil.
func CopyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

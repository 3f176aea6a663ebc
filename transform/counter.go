package transform

// Counter is a 1-based occurrence counter. The pipeline keeps two kinds
// alive at once: document-scoped counters that align fragment lookups with
// the flat rich-text blocks, and per-risk counters that number nested
// records. Keeping them as separate named values makes the alignment
// auditable.
type Counter struct {
	n int
}

// Increment advances the counter by one.
func (c *Counter) Increment() {
	c.n++
}

// Count returns the current count; zero before the first Increment.
func (c *Counter) Count() int {
	return c.n
}

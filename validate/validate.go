package validate

import (
	"math"
	"net/url"
	"regexp"
	"strings"

	v10 "github.com/go-playground/validator/v10"
)

// ValidationError reports a field write rejected by its predicate. The field
// keeps its previous value; the error is returned synchronously to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// shape checks delegated to go-playground/validator
var shape = v10.New()

// tagPattern matches one tag-like construct, which is all the model requires
// of a rich-text field. Content between tags is not inspected.
var tagPattern = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)

// mailtoPattern matches the target of a mailto: URL.
var mailtoPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// HTML reports whether s is empty or contains at least one tag-like
// construct. Plain prose without markup is rejected.
func HTML(s string) bool {
	return s == "" || tagPattern.MatchString(s)
}

// URL reports whether s is empty, a well-formed http/https/ftp URL with a
// non-empty authority, or a mailto: URL with a plausible address. Bare
// hostnames and empty authorities are rejected, as is a bare root path on a
// dotless host ("ftp://server/").
func URL(s string) bool {
	if s == "" {
		return true
	}
	if rest, ok := strings.CutPrefix(s, "mailto:"); ok {
		return mailtoPattern.MatchString(rest)
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https", "ftp":
	default:
		return false
	}
	if u.Host == "" {
		return false
	}
	if strings.Contains(u.Host, ".") {
		return true
	}
	return u.Path != "" && u.Path != "/"
}

// Attachment reports whether s is empty or a valid base64 string, padding
// included.
func Attachment(s string) bool {
	return s == "" || shape.Var(s, "base64") == nil
}

// Date reports whether s is empty or a calendar-valid YYYY-MM-DD date.
func Date(s string) bool {
	return s == "" || shape.Var(s, "datetime=2006-01-02") == nil
}

// OneOf reports whether s is a member of the closed set. Whether the empty
// string is accepted depends solely on its presence in the set.
func OneOf(s string, set []string) bool {
	for _, m := range set {
		if s == m {
			return true
		}
	}
	return false
}

// OneOfInt reports whether v is a member of the closed integer set.
func OneOfInt(v int, set []int) bool {
	for _, m := range set {
		if v == m {
			return true
		}
	}
	return false
}

// IntRange reports whether lo <= v <= hi.
func IntRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}

// PositiveInt reports whether v >= 1. Identifier fields use this; zero is
// never a valid id.
func PositiveInt(v int) bool {
	return v >= 1
}

// Decimal reports whether v is a finite number with lo <= v <= hi.
func Decimal(v, lo, hi float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= lo && v <= hi
}

// Finite reports whether v is a finite number, any magnitude.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NonNegative reports whether v is finite and >= 0.
func NonNegative(v float64) bool {
	return Finite(v) && v >= 0
}

// TenthStep reports whether v is finite, within [lo, hi] and expressible with
// a single decimal place. Attack-path scores carry one decimal on the wire.
func TenthStep(v, lo, hi float64) bool {
	if !Decimal(v, lo, hi) {
		return false
	}
	scaled := v * 10
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}

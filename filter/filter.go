// Package filter decides whether an assembled message is emitted.
//
// A Filter is an ordered list of keywords. Matching uses OR logic over
// exact tokens: a message passes when any keyword equals one of its
// tokens (severity tag, prefix or argument). The keyword "*" matches
// everything, and so does an empty Filter. Keywords are case-sensitive
// and never interpreted as patterns, so no filter can be malformed.
package filter

import "strings"

// Wildcard matches every message
const Wildcard = "*"

// Filter is an immutable list of keywords
type Filter []string

// Parse splits spec on whitespace. A blank spec yields an empty Filter.
func Parse(spec string) Filter {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil
	}
	return Filter(fields)
}

// IsEmpty reports whether the filter has no keywords
func (f Filter) IsEmpty() bool {
	return len(f) == 0
}

// Match reports whether a message made of tokens passes the filter
func (f Filter) Match(tokens []string) bool {
	if len(f) == 0 {
		return true
	}
	for _, kw := range f {
		if kw == Wildcard {
			return true
		}
		for _, tok := range tokens {
			if tok == kw {
				return true
			}
		}
	}
	return false
}

// String returns the filter in the form accepted by Parse
func (f Filter) String() string {
	return strings.Join(f, " ")
}

// Clone returns a copy that shares no backing array with f
func (f Filter) Clone() Filter {
	if f == nil {
		return nil
	}
	out := make(Filter, len(f))
	copy(out, f)
	return out
}

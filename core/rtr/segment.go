package rtr

import (
	"strings"

	"github.com/rohanthewiz/sweb/consts"
)

// Segment is one component of a route pattern.
// A literal segment matches a path component exactly.
// A capture segment matches any path component and binds it to a name.
//
// Example:
//   Pattern: /users/:id
//   Segments: [{Value: "users"}, {Value: "id", Capture: true}]
type Segment struct {
	Value   string // literal text, or the capture name when Capture is true
	Capture bool
}

// ParsePattern splits a path pattern into its ordered segments.
// One leading slash is stripped; an empty remainder is the root path and
// yields no segments. Components prefixed with ':' become captures.
//
// The split is verbatim - "/a//b" keeps the empty literal between "a" and "b",
// and a bare ":" yields a capture with an empty name. Neither is corrected
// here; they simply register as routes that real request paths rarely hit.
func ParsePattern(pattern string) []Segment {
	pattern = strings.TrimPrefix(pattern, "/")

	if pattern == "" {
		return nil
	}

	pieces := strings.Split(pattern, "/")
	segments := make([]Segment, len(pieces))

	for i, piece := range pieces {
		if len(piece) > 0 && piece[0] == consts.RuneColon {
			segments[i] = Segment{Value: piece[1:], Capture: true}
		} else {
			segments[i] = Segment{Value: piece}
		}
	}

	return segments
}

// String renders the segment the way it would appear in a pattern.
func (seg Segment) String() string {
	if seg.Capture {
		return string(consts.RuneColon) + seg.Value
	}
	return seg.Value
}

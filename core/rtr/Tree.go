package rtr

import "errors"

// ErrRouteConflict is returned when a route table cannot be built:
// either two routes compile to an identical segment sequence, or two routes
// require different capture names at the same trie position.
//
// The error deliberately carries no detail about which routes clashed.
// Conflicts are static configuration mistakes - the caller treats the whole
// table as unusable and aborts startup, so a single generic sentinel is the
// entire contract.
var ErrRouteConflict = errors.New("conflicting routes in route table")

// Tree is a segment trie for route storage and lookup.
// Unlike a radix tree it never splits path components - every edge consumes
// exactly one segment, which keeps literal/capture precedence local to each
// level and makes conflicts detectable at insert time.
//
// A Tree is populated once during startup and never mutated afterwards, so
// any number of lookups may run concurrently without synchronization.
//
// Zero value is ready to use - the root node is embedded, not a pointer.
type Tree[T any] struct {
	root treeNode[T]
}

// Add inserts a route's segment sequence into the tree.
//
// For each segment the walk descends through an existing or freshly created
// edge: literal edges are keyed by their text, capture edges are shared only
// when the bound name matches. A capture-name mismatch or a duplicate
// terminal returns ErrRouteConflict and leaves the caller to discard the
// whole tree - partially applied route tables must never serve traffic.
func (tree *Tree[T]) Add(segments []Segment, data T) error {
	node := &tree.root

	for _, segment := range segments {
		if segment.Capture {
			child, err := node.captureChild(segment.Value)
			if err != nil {
				return err
			}
			node = child
			continue
		}

		node = node.literalChild(segment.Value)
	}

	return node.setData(data)
}

// Lookup finds the data for the given path segments.
// This is a convenience wrapper around LookupNoAlloc that collects the
// capture bindings into a slice. The allocation only occurs if the matched
// route actually has captures.
func (tree *Tree[T]) Lookup(segments []string) (T, []Parameter, bool) {
	var params []Parameter

	data, found := tree.LookupNoAlloc(segments, func(key string, value string) {
		params = append(params, Parameter{key, value})
	})

	return data, params, found
}

// LookupNoAlloc finds the data for the given path segments without
// allocating, reporting capture bindings through the callback.
//
// At every level the literal edge is tried first; only when no literal
// matches is the capture edge taken. That single precedence rule is applied
// independently per level, so it composes for paths mixing literal and
// capturing siblings at different depths.
//
// The callback fires only for fully matched lookups - a walk that dead-ends
// or lands on a node without a handler reports nothing. The tree verifies
// the match first and replays the (deterministic) walk for the bindings.
func (tree *Tree[T]) LookupNoAlloc(segments []string, addParameter func(key string, value string)) (T, bool) {
	node := tree.root.walk(segments, nil)

	if node == nil || !node.hasData {
		var empty T
		return empty, false
	}

	if addParameter != nil {
		tree.root.walk(segments, addParameter)
	}

	return node.data, true
}

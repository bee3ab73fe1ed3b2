package rtr

// treeNode is one position in the segment trie, reached by consuming a prefix
// of segments. Each node owns its literal edges (a map keyed by segment text),
// at most one capture edge, and an optional terminal handler.
//
// Example structure for GET /users/active and GET /users/:id:
//
//   root
//    └── "GET"
//         └── "users"
//              ├── "active" (data: handler2)
//              └── :id      (data: handler1)
//
// The map gives constant-time literal lookup per level, so a full lookup is
// linear in path depth regardless of how many routes are registered.
type treeNode[T any] struct {
	children    map[string]*treeNode[T] // literal edges
	capture     *treeNode[T]            // capture edge (at most one)
	captureName string                  // bound name for the capture edge
	data        T                       // terminal handler, valid only when hasData
	hasData     bool
}

// literalChild returns the child for the given literal segment,
// creating it if it does not exist yet.
func (node *treeNode[T]) literalChild(key string) *treeNode[T] {
	if child, ok := node.children[key]; ok {
		return child
	}

	if node.children == nil {
		node.children = make(map[string]*treeNode[T])
	}

	child := &treeNode[T]{}
	node.children[key] = child
	return child
}

// captureChild returns the capture child, creating it bound to the given name
// if none exists. Two routes may share a capture edge only under the same
// name - a different name at the same position is a registration conflict
// with no sensible runtime resolution.
func (node *treeNode[T]) captureChild(name string) (*treeNode[T], error) {
	if node.capture == nil {
		node.capture = &treeNode[T]{}
		node.captureName = name
		return node.capture, nil
	}

	if node.captureName != name {
		return nil, ErrRouteConflict
	}

	return node.capture, nil
}

// setData marks the node as a route endpoint. A node whose handler slot is
// already occupied means two routes compiled to the same segment sequence.
func (node *treeNode[T]) setData(data T) error {
	if node.hasData {
		return ErrRouteConflict
	}

	node.data = data
	node.hasData = true
	return nil
}

// walk descends from the node along the given path segments, trying the
// literal edge first and falling back to the capture edge at every level.
// It returns the landed node, or nil if the descent dead-ends.
//
// When addParameter is non-nil, each capture edge taken reports its binding.
// The descent is deterministic (no backtracking), so walking the same
// segments twice takes the identical path - callers exploit this to replay
// a known-good walk purely for its bindings.
func (node *treeNode[T]) walk(segments []string, addParameter func(key string, value string)) *treeNode[T] {
	for _, segment := range segments {
		if child, ok := node.children[segment]; ok {
			node = child
			continue
		}

		if node.capture != nil {
			if addParameter != nil {
				addParameter(node.captureName, segment)
			}
			node = node.capture
			continue
		}

		return nil
	}

	return node
}

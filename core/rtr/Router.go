package rtr

// Route is one registration triple supplied by the application.
// The handler is opaque to the router - it is stored at the matched trie
// position and handed back on lookup, never inspected or invoked here.
type Route[T any] struct {
	Method  string
	Path    string
	Handler T
}

// Router resolves (method, path segments) to a registered handler.
//
// All methods share a single trie: each route is compiled to its path
// segments with the method prepended as an ordinary literal first segment,
// and lookups prepend the method the same way. Keeping the method inside the
// key means method dispatch and path dispatch are one mechanism with one
// precedence rule.
//
// A Router is immutable after Build and safe for concurrent lookups.
type Router[T any] struct {
	tree Tree[T]
}

// Build compiles an ordered route table into a ready-to-use Router.
//
// Any conflict - duplicate routes or disagreeing capture names at the same
// position - fails the entire build with ErrRouteConflict; no partial router
// is returned. Conflict detection is symmetric in registration order, and
// for a non-conflicting table the order has no effect on matching behavior.
func Build[T any](routes []Route[T]) (*Router[T], error) {
	router := &Router[T]{}

	for _, route := range routes {
		segments := make([]Segment, 0, 8)
		segments = append(segments, Segment{Value: route.Method})
		segments = append(segments, ParsePattern(route.Path)...)

		if err := router.tree.Add(segments, route.Handler); err != nil {
			return nil, err
		}
	}

	return router, nil
}

// Lookup finds the handler and captured parameters for the given request.
// The path must arrive pre-split into percent-decoded segments.
func (router *Router[T]) Lookup(method string, segments []string) (T, []Parameter, bool) {
	var params []Parameter

	data, found := router.LookupNoAlloc(method, segments, func(key string, value string) {
		params = append(params, Parameter{key, value})
	})

	return data, params, found
}

// LookupNoAlloc finds the handler for the given request without allocating,
// reporting capture bindings through the callback. The callback fires only
// when the lookup fully matches.
func (router *Router[T]) LookupNoAlloc(method string, segments []string, addParameter func(key string, value string)) (T, bool) {
	// Every route pattern leads with its method literal, so the root can
	// never hold a capture edge - the first hop is a plain map lookup.
	start, ok := router.tree.root.children[method]
	if !ok {
		var empty T
		return empty, false
	}

	node := start.walk(segments, nil)
	if node == nil || !node.hasData {
		var empty T
		return empty, false
	}

	if addParameter != nil {
		start.walk(segments, addParameter)
	}

	return node.data, true
}

package rtr

import "fmt"

// RouteList represents a registered route for debugging and inspection.
// HandlerRef is a string rendering of the stored handler - useful for route
// table visualization and API doc generation, nothing more.
type RouteList struct {
	Method     string
	Path       string
	HandlerRef string
}

// ListRoutes reconstructs the registered route table from the trie.
// Patterns come back in trie order (method edges first), with captures
// rendered in their ":name" form. The root path renders as "/".
func (router *Router[T]) ListRoutes() (routes []RouteList) {
	for method, node := range router.tree.root.children {
		routes = collectRoutes(node, method, "", routes)
	}
	return routes
}

// collectRoutes walks the subtree below a method edge, rebuilding the
// pattern string for every node that terminates a route.
func collectRoutes[T any](node *treeNode[T], method string, pattern string, routes []RouteList) []RouteList {
	if node.hasData {
		path := pattern
		if path == "" {
			path = "/"
		}
		routes = append(routes, RouteList{
			Method:     method,
			Path:       path,
			HandlerRef: fmt.Sprintf("%v", node.data),
		})
	}

	for key, child := range node.children {
		routes = collectRoutes(child, method, pattern+"/"+key, routes)
	}

	if node.capture != nil {
		routes = collectRoutes(node.capture, method, pattern+"/:"+node.captureName, routes)
	}

	return routes
}

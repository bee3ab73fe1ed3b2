package rtr

// Parameter represents a URL parameter captured from a dynamic route segment.
// The segment trie returns these for routes like /users/:id.
//
// Example:
//   Route: /users/:id/posts/:postId
//   URL:   /users/123/posts/456
//   Result: []Parameter{{Key: "id", Value: "123"}, {Key: "postId", Value: "456"}}
//
// An ordered slice is used instead of map[string]string - it avoids the map
// allocation and preserves the capture order from the route definition.
type Parameter struct {
	Key   string
	Value string
}

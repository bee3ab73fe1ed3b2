package sweb

import (
	"path"

	"github.com/rohanthewiz/sweb/consts"
)

// Group represents a route group with a common prefix and middleware.
// This allows organizing routes under a common URL prefix (e.g., /api/v1)
// and applying middleware that only affects routes within this group.
// Groups can be nested to create hierarchical route structures.
type Group struct {
	// prefix is the URL path prefix for all routes in this group
	prefix string
	// server is a reference to the main server instance for route registration
	server *Server
	// handlers contains middleware functions applied to all routes in this group
	handlers []Handler
}

// Group creates a sub-group with additional prefix and optional middleware.
// The new group inherits all middleware from the parent group and can add its own.
// Example: apiGroup.Group("/users", authMiddleware) creates /api/users with auth.
func (g *Group) Group(prefix string, handlers ...Handler) *Group {
	return &Group{
		prefix:   path.Join(g.prefix, prefix),
		server:   g.server,
		handlers: append(g.handlers, handlers...),
	}
}

// Use adds middleware to the group.
// These middleware functions will be executed for all routes registered after this call.
// Middleware is executed in the order it was added.
func (g *Group) Use(handlers ...Handler) {
	g.handlers = append(g.handlers, handlers...)
}

// Get registers a GET route with the group prefix
func (g *Group) Get(path string, handler Handler) {
	g.addRoute(consts.MethodGet, path, handler)
}

// Post registers a POST route with the group prefix
func (g *Group) Post(path string, handler Handler) {
	g.addRoute(consts.MethodPost, path, handler)
}

// Put registers a PUT route with the group prefix
func (g *Group) Put(path string, handler Handler) {
	g.addRoute(consts.MethodPut, path, handler)
}

// Patch registers a PATCH route with the group prefix
func (g *Group) Patch(path string, handler Handler) {
	g.addRoute(consts.MethodPatch, path, handler)
}

// Delete registers a DELETE route with the group prefix
func (g *Group) Delete(path string, handler Handler) {
	g.addRoute(consts.MethodDelete, path, handler)
}

// Head registers a HEAD route with the group prefix
func (g *Group) Head(path string, handler Handler) {
	g.addRoute(consts.MethodHead, path, handler)
}

// Options registers an OPTIONS route with the group prefix
func (g *Group) Options(path string, handler Handler) {
	g.addRoute(consts.MethodOptions, path, handler)
}

// Connect registers a CONNECT route with the group prefix
func (g *Group) Connect(path string, handler Handler) {
	g.addRoute(consts.MethodConnect, path, handler)
}

// Trace registers a TRACE route with the group prefix
func (g *Group) Trace(path string, handler Handler) {
	g.addRoute(consts.MethodTrace, path, handler)
}

// addRoute is a helper that adds a route with the group prefix and middleware.
// It constructs the full path by combining the group prefix with the route path,
// then wraps the handler with all group middleware before registering it.
func (g *Group) addRoute(method, routePath string, handler Handler) {
	fullPath := path.Join("/", g.prefix, routePath)

	// Build the middleware chain - the route handler is the final link.
	// Wrap in reverse order so handlers execute in the order they were added.
	finalHandler := handler

	for i := len(g.handlers) - 1; i >= 0; i-- {
		middleware := g.handlers[i]
		nextHandler := finalHandler

		finalHandler = func(ctx Context) error {
			// Track whether the middleware called Next() to continue the chain.
			// This allows middleware to optionally stop the chain (e.g., for auth failures)
			nextCalled := false

			wrapper := &contextWrapper{
				Context: ctx,
				next: func() error {
					nextCalled = true
					return nextHandler(ctx)
				},
			}

			err := middleware(wrapper)

			// If middleware didn't call Next(), didn't error, and didn't complete
			// the request, automatically continue to the next handler.
			if err == nil && !nextCalled && !ctx.Completed() {
				err = nextHandler(ctx)
			}

			return err
		}
	}

	g.server.AddMethod(method, fullPath, finalHandler)
}

// contextWrapper wraps a Context to intercept Next() calls, so group
// middleware can track and control its own execution chain.
type contextWrapper struct {
	Context
	next func() error
}

// Next overrides the Context's Next method to advance the group chain
// instead of the server chain.
func (w *contextWrapper) Next() error {
	if w.Completed() {
		return nil
	}
	return w.next()
}

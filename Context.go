package sweb

import (
	"errors"

	"github.com/rohanthewiz/sweb/consts"
)

// Context is the interface for a request and its response.
type Context interface {
	Bytes([]byte) error
	Complete()
	Completed() bool
	Error(...any) error
	Get(key string) any
	GetCookie(name string) (string, bool)
	Has(key string) bool
	HasCookie(name string) bool
	Next() error
	Redirect(status int, location string) error
	Request() Request
	Response() Response
	Set(key string, value any)
	SetCookie(cookie Cookie)
	Status(status int) Context
	String(body string) error
	WriteHTML(html string) error
	WriteString(body string) (int, error)
}

// context contains the request and response data.
// One context serves exactly one request at a time; it is pooled and reused
// across requests, never shared between concurrent ones, so plain fields
// suffice - no locking.
type context struct {
	request
	response
	server       *Server
	handlerCount uint8
	completed    bool
	data         map[string]any
}

// Bytes adds the raw byte slice to the response body.
func (ctx *context) Bytes(body []byte) error {
	ctx.response.body = append(ctx.response.body, body...)
	return nil
}

// Complete marks the request as finished. Any remaining handlers in the
// chain are skipped - an explicit short-circuit rather than a panic-based
// escape.
func (ctx *context) Complete() {
	ctx.completed = true
}

// Completed reports whether a handler has marked the request finished.
func (ctx *context) Completed() bool {
	return ctx.completed
}

// clean resets all per-request state so the context can serve another
// request. Must run before the context returns to the pool - a connection
// that errors out mid-parse may have already accumulated headers or body.
func (ctx *context) clean() {
	ctx.request.headers = ctx.request.headers[:0]
	ctx.request.body = ctx.request.body[:0]
	ctx.request.segments = ctx.request.segments[:0]
	ctx.request.params = ctx.request.params[:0]
	ctx.response.headers = ctx.response.headers[:0]
	ctx.response.body = ctx.response.body[:0]
	ctx.handlerCount = 0
	ctx.completed = false
	clear(ctx.data)
	ctx.status = consts.StatusOK
}

// Error provides a convenient way to wrap multiple errors.
func (ctx *context) Error(messages ...any) error {
	var combined []error

	for _, msg := range messages {
		switch err := msg.(type) {
		case error:
			combined = append(combined, err)
		case string:
			combined = append(combined, errors.New(err))
		}
	}

	return errors.Join(combined...)
}

// Get returns a value stored on the context, or nil.
func (ctx *context) Get(key string) any {
	return ctx.data[key]
}

// Has reports whether a value is stored on the context for the key.
func (ctx *context) Has(key string) bool {
	_, ok := ctx.data[key]
	return ok
}

// Next executes the next handler in the middleware chain,
// unless a handler has already completed the request.
func (ctx *context) Next() error {
	if ctx.completed {
		return nil
	}

	ctx.handlerCount++
	return ctx.server.handlers[ctx.handlerCount](ctx)
}

// Redirect redirects the client to a different location
// with the specified status code.
func (ctx *context) Redirect(status int, location string) error {
	ctx.response.SetStatus(status)
	ctx.response.SetHeader(consts.HeaderLocation, location)
	return nil
}

// Request returns the HTTP request.
func (ctx *context) Request() Request {
	return &ctx.request
}

// Response returns the HTTP response.
func (ctx *context) Response() Response {
	return &ctx.response
}

// Set stores a value on the context for later handlers in the chain.
func (ctx *context) Set(key string, value any) {
	if ctx.data == nil {
		ctx.data = make(map[string]any, 4)
	}
	ctx.data[key] = value
}

// Status sets the HTTP status of the response
// and returns the context for method chaining.
func (ctx *context) Status(status int) Context {
	ctx.response.SetStatus(status)
	return ctx
}

// String adds the given string to the response body.
func (ctx *context) String(body string) error {
	ctx.response.body = append(ctx.response.body, body...)
	return nil
}

// WriteHTML adds the given HTML to the response body
// and sets the content type accordingly.
func (ctx *context) WriteHTML(html string) error {
	ctx.response.SetHeader(consts.HeaderContentType, consts.MIMEHTML)
	return ctx.String(html)
}

package sweb

import (
	"bufio"

	"github.com/rohanthewiz/sweb/core/rtr"
)

// Request is the interface for HTTP requests.
type Request interface {
	Body() []byte
	Header(string) string
	Host() string
	Method() string
	Param(string) string
	Path() string
	Query() string
	Scheme() string
}

// request represents the HTTP request used in the given context.
// The segments slice holds the percent-decoded path components handed to the
// router; params receives the capture bindings from a successful lookup.
// Both are reused across requests on the same connection.
type request struct {
	reader *bufio.Reader

	scheme string
	host   string
	method string
	path   string
	query  string

	headers  []Header
	body     []byte
	segments []string
	params   []rtr.Parameter
}

// Body returns the raw request body.
func (req *request) Body() []byte {
	return req.body
}

// Header returns the header value for the given key.
func (req *request) Header(key string) string {
	for _, header := range req.headers {
		if header.Key == key {
			return header.Value
		}
	}

	return ""
}

// Host returns the requested host.
func (req *request) Host() string {
	return req.host
}

// Method returns the request method.
func (req *request) Method() string {
	return req.method
}

// Param retrieves a captured route parameter.
func (req *request) Param(name string) string {
	for i := range len(req.params) {
		p := req.params[i]

		if p.Key == name {
			return p.Value
		}
	}

	return ""
}

// Path returns the requested path.
func (req *request) Path() string {
	return req.path
}

// Query returns the raw query string.
func (req *request) Query() string {
	return req.query
}

// Scheme returns either `http`, `https` or an empty string.
func (req *request) Scheme() string {
	return req.scheme
}

// addParameter adds a new parameter to the request.
// Handed to the router as its capture-binding callback.
func (req *request) addParameter(key string, value string) {
	req.params = append(req.params, rtr.Parameter{
		Key:   key,
		Value: value,
	})
}

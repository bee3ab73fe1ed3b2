package sweb

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/rohanthewiz/serr"
	"github.com/rohanthewiz/sweb/consts"
	"github.com/rohanthewiz/sweb/core/rtr"
)

// Handler responds to one request.
type Handler func(ctx Context) error

// Server is the HTTP Server.
//
// Routes are collected into an ordered table during setup and compiled into
// an immutable segment trie exactly once, before any traffic is accepted.
// An ambiguous route table (rtr.ErrRouteConflict) aborts startup - the
// server refuses to listen with a table it cannot resolve deterministically.
type Server struct {
	handlers     []Handler
	contextPool  sync.Pool
	routes       []rtr.Route[Handler]
	router       *rtr.Router[Handler]
	buildOnce    sync.Once
	buildErr     error
	errorHandler func(Context, error)
}

// NewServer creates a new HTTP server.
func NewServer() *Server {
	s := &Server{}

	s.handlers = []Handler{
		func(c Context) error { // dispatch handler - always last in the chain
			ctx := c.(*context)

			hdlr, found := s.router.LookupNoAlloc(ctx.request.method, ctx.request.segments, ctx.request.addParameter)
			if !found {
				ctx.response.SetStatus(consts.StatusNotFound)
				return nil
			}

			return hdlr(c)
		},
	}

	s.errorHandler = func(ctx Context, err error) {
		log.Println(ctx.Request().Path(), err)
	}

	s.contextPool.New = func() any { return s.newContext() }
	return s
}

// Get registers your function to be called when the given GET path has been requested.
func (s *Server) Get(path string, handler Handler) {
	s.AddMethod(consts.MethodGet, path, handler)
}

// Post registers your function to be called when the given POST path has been requested.
func (s *Server) Post(path string, handler Handler) {
	s.AddMethod(consts.MethodPost, path, handler)
}

// Put registers your function to be called when the given PUT path has been requested.
func (s *Server) Put(path string, handler Handler) {
	s.AddMethod(consts.MethodPut, path, handler)
}

// Patch registers your function to be called when the given PATCH path has been requested.
func (s *Server) Patch(path string, handler Handler) {
	s.AddMethod(consts.MethodPatch, path, handler)
}

// Delete registers your function to be called when the given DELETE path has been requested.
func (s *Server) Delete(path string, handler Handler) {
	s.AddMethod(consts.MethodDelete, path, handler)
}

// Head registers your function to be called when the given HEAD path has been requested.
func (s *Server) Head(path string, handler Handler) {
	s.AddMethod(consts.MethodHead, path, handler)
}

// Options registers your function to be called when the given OPTIONS path has been requested.
func (s *Server) Options(path string, handler Handler) {
	s.AddMethod(consts.MethodOptions, path, handler)
}

// Connect registers your function to be called when the given CONNECT path has been requested.
func (s *Server) Connect(path string, handler Handler) {
	s.AddMethod(consts.MethodConnect, path, handler)
}

// Trace registers your function to be called when the given TRACE path has been requested.
func (s *Server) Trace(path string, handler Handler) {
	s.AddMethod(consts.MethodTrace, path, handler)
}

// AddMethod appends a route to the table. Nothing is compiled here - the
// whole table is validated together when the trie is built at startup.
func (s *Server) AddMethod(method string, path string, handler Handler) {
	s.routes = append(s.routes, rtr.Route[Handler]{Method: method, Path: path, Handler: handler})
}

// Group creates a route group with the given prefix and optional middleware.
func (s *Server) Group(prefix string, handlers ...Handler) *Group {
	return &Group{
		prefix:   prefix,
		server:   s,
		handlers: handlers,
	}
}

// Use adds handlers to your handlers chain.
func (s *Server) Use(handlers ...Handler) {
	last := s.handlers[len(s.handlers)-1]
	// Re-slice to exclude last and append the incoming handlers
	s.handlers = append(s.handlers[:len(s.handlers)-1], handlers...)
	s.handlers = append(s.handlers, last) // add back the last
}

// Router returns the compiled router, building it if necessary.
// Useful for inspection (ListRoutes); returns the construction error
// if the route table is ambiguous.
func (s *Server) Router() (*rtr.Router[Handler], error) {
	if err := s.build(); err != nil {
		return nil, err
	}
	return s.router, nil
}

// build compiles the route table into the lookup trie, once.
// Every later call returns the same outcome.
func (s *Server) build() error {
	s.buildOnce.Do(func() {
		router, err := rtr.Build(s.routes)
		if err != nil {
			s.buildErr = serr.Wrap(err, "route table failed to build")
			return
		}
		s.router = router
	})

	return s.buildErr
}

// Request performs a synthetic request and returns the response.
// This function keeps the response in memory so it's slightly slower than a real request.
// However it is very useful inside tests where you don't want to spin up a real web server.
func (s *Server) Request(method string, url string, headers []Header, body io.Reader) Response {
	ctx := s.newContext()
	ctx.request.headers = headers

	if err := s.build(); err != nil {
		ctx.response.SetStatus(consts.StatusInternalServerError)
		s.errorHandler(ctx, err)
		return ctx.Response()
	}

	if body != nil {
		if b, err := io.ReadAll(body); err == nil {
			ctx.request.body = b
		}
	}

	s.handleRequest(ctx, method, url, io.Discard)
	return ctx.Response()
}

type RunOpts struct {
	Verbose bool
	// StatusChan is a channel signalling that the server is about to enter its listen loop
	// It should be a buffered chan (cap 1 is all that is needed), so the server will not hang
	StatusChan chan struct{}
}

// Run builds the routing trie and starts the server on the given address.
// A conflicting route table fails here, before the listener is opened.
func (s *Server) Run(address string, runOpts ...RunOpts) error {
	opts := RunOpts{}

	if len(runOpts) == 1 {
		opts.Verbose = runOpts[0].Verbose

		if runOpts[0].StatusChan != nil && cap(runOpts[0].StatusChan) < 1 && opts.Verbose {
			fmt.Println("Status channel capacity should be at least 1, or we may hang")
		}
		// Assign even if it is nil as we will do nil check on use
		opts.StatusChan = runOpts[0].StatusChan
	}

	if err := s.build(); err != nil {
		return err
	}

	listener, err := net.Listen(consts.ProtocolTCP, address)
	if err != nil {
		return serr.Wrap(err, "unable to listen on "+address)
	}

	defer listener.Close()

	go func() {
		if opts.StatusChan != nil { // don't forget nil check!
			opts.StatusChan <- struct{}{} // Let the caller know we are running
		}

		if opts.Verbose {
			fmt.Printf("Server is running at %s\n", address)
		}

		for {
			conn, err := listener.Accept()
			if err != nil {
				continue
			}

			go s.handleConnection(conn)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	return nil
}

// handleConnection handles an accepted connection.
func (s *Server) handleConnection(conn net.Conn) {
	var (
		ctx    = s.contextPool.Get().(*context)
		method string
		url    string
	)

	ctx.reader.Reset(conn)

	defer conn.Close()
	defer func() {
		// The early error returns below leave partially parsed state behind
		ctx.clean()
		s.contextPool.Put(ctx)
	}()

	for {
		// Read the HTTP request line
		message, err := ctx.reader.ReadString(consts.RuneNewLine)
		if err != nil {
			return
		}

		space := strings.IndexByte(message, consts.RuneSingleSpace)

		if space <= 0 {
			_, _ = io.WriteString(conn, consts.HTTPBadRequest)
			return
		}

		method = message[:space]

		if !isValidRequestMethod(method) {
			_, _ = io.WriteString(conn, consts.HTTPBadMethod)
			return
		}

		lastSpace := strings.LastIndexByte(message, consts.RuneSingleSpace)

		if lastSpace == space {
			lastSpace = len(message) - len(consts.CRLF)
		}

		url = message[space+1 : lastSpace]

		var contentLen int64
		var isChunked bool

		// Add headers until we meet an empty line
		for {
			message, err = ctx.reader.ReadString(consts.RuneNewLine)
			if err != nil {
				return
			}

			if message == consts.CRLF { // end of headers
				break
			}

			colon := strings.IndexByte(message, consts.RuneColon)

			if colon <= 0 {
				continue // header should include a colon
			}

			key := message[:colon]
			value := message[colon+2 : len(message)-2]

			ctx.request.headers = append(ctx.request.headers, Header{
				Key:   key,
				Value: value,
			})

			if strings.EqualFold(key, consts.HeaderContentLength) {
				contentLen, err = strconv.ParseInt(value, 10, 64)
				if err != nil {
					_, _ = io.WriteString(conn, consts.HTTPBadRequest)
					return
				}
			} else if strings.EqualFold(key, "Transfer-Encoding") && strings.Contains(strings.ToLower(value), "chunked") {
				isChunked = true
			}
		}

		// Read the request body if present
		if contentLen > 0 {
			// Fixed-length body
			body := make([]byte, contentLen)
			_, err = io.ReadFull(ctx.reader, body)
			if err != nil {
				return
			}
			ctx.request.body = append(ctx.request.body, body...)

		} else if isChunked {
			if !s.readChunkedBody(ctx, conn) {
				return
			}
		}

		s.handleRequest(ctx, method, url, conn)

		// Clean up the context for the next request on this connection
		ctx.clean()
	}
}

// readChunkedBody consumes a chunked transfer-encoded body into the request.
// Returns false if the connection should be dropped.
func (s *Server) readChunkedBody(ctx *context, conn net.Conn) bool {
	for {
		// Read chunk size (hex)
		chunkSize, err := ctx.reader.ReadString(consts.RuneNewLine)
		if err != nil {
			return false
		}

		size, err := strconv.ParseInt(strings.TrimSpace(chunkSize), 16, 64)
		if err != nil {
			_, _ = io.WriteString(conn, consts.HTTPBadRequest)
			return false
		}

		// Zero size chunk means end of body
		if size == 0 {
			// Read final CRLF
			_, err = ctx.reader.ReadString(consts.RuneNewLine)
			return err == nil
		}

		chunk := make([]byte, size)
		_, err = io.ReadFull(ctx.reader, chunk)
		if err != nil {
			return false
		}
		ctx.request.body = append(ctx.request.body, chunk...)

		// Read chunk CRLF
		_, err = ctx.reader.ReadString(consts.RuneNewLine)
		if err != nil {
			return false
		}
	}
}

// handleRequest handles the given request.
func (s *Server) handleRequest(ctx *context, method string, url string, writer io.Writer) {
	ctx.request.method = method
	ctx.request.scheme, ctx.request.host, ctx.request.path, ctx.request.query = parseURL(url)
	ctx.request.segments = appendPathSegments(ctx.request.segments[:0], ctx.request.path)

	// Call the request handler chain
	err := s.handlers[0](ctx)
	if err != nil {
		s.errorHandler(ctx, err)
	}

	tmp := bytes.Buffer{}
	tmp.WriteString("HTTP/1.1 ")
	tmp.WriteString(strconv.Itoa(ctx.response.Status()))
	tmp.WriteString("\r\nContent-Length: ")
	tmp.WriteString(strconv.Itoa(len(ctx.response.body)))
	tmp.WriteString(consts.CRLF)

	for _, header := range ctx.response.headers {
		tmp.WriteString(header.Key)
		tmp.WriteString(": ")
		tmp.WriteString(header.Value)
		tmp.WriteString(consts.CRLF)
	}

	tmp.WriteString(consts.CRLF)
	tmp.Write(ctx.response.body)
	_, _ = writer.Write(tmp.Bytes())
}

// newContext allocates a new context with the default state.
func (s *Server) newContext() *context {
	return &context{
		server: s,
		request: request{
			reader:   bufio.NewReader(nil),
			body:     make([]byte, 0),
			headers:  make([]Header, 0, 8),
			segments: make([]string, 0, 8),
			params:   make([]rtr.Parameter, 0, 8),
		},
		response: response{
			body:    make([]byte, 0, 1024),
			headers: make([]Header, 0, 8),
			status:  consts.StatusOK,
		},
	}
}

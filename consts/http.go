package consts

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodHead    = "HEAD"
	MethodOptions = "OPTIONS"
	MethodConnect = "CONNECT"
	MethodTrace   = "TRACE"
)

const (
	HTTP  = "http"
	HTTPS = "https"
	HTTP1 = "HTTP/1.1"

	ProtocolTCP = "tcp"

	SchemeDelimiter = "://"
	Localhost       = "localhost"

	CRLF = "\r\n"

	HTTPBadRequest = "HTTP/1.1 400 Bad Request\r\n\r\n"
	HTTPBadMethod  = "HTTP/1.1 405 Method Not Allowed\r\n\r\n"
)

const (
	RuneColon       byte = ':'
	RuneFwdSlash    byte = '/'
	RuneNewLine     byte = '\n'
	RuneSingleSpace byte = ' '
	RuneQuestion    byte = '?'
)

const (
	StatusOK                  = 200
	StatusMovedPermanently    = 301
	StatusFound               = 302
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusInternalServerError = 500
)

const (
	HeaderContentType        = "Content-Type"
	HeaderContentLength      = "Content-Length"
	HeaderContentDisposition = "Content-Disposition"
	HeaderCacheControl       = "Cache-Control"
	HeaderCookie             = "Cookie"
	HeaderDate               = "Date"
	HeaderExpires            = "Expires"
	HeaderLocation           = "Location"
	HeaderPragma             = "Pragma"
	HeaderSetCookie          = "Set-Cookie"

	HeaderAccessControlExposeHeaders = "Access-Control-Expose-Headers"
)

package sweb

import (
	"net/http"
	"strings"
	"time"

	"github.com/rohanthewiz/sweb/consts"
)

// SameSiteMode represents the SameSite cookie attribute for CSRF protection.
// This attribute controls when cookies are sent with cross-site requests.
type SameSiteMode int

const (
	// SameSiteDefaultMode leaves the SameSite attribute unset (browser-dependent behavior)
	SameSiteDefaultMode SameSiteMode = iota + 1
	// SameSiteLaxMode allows cookies on top-level navigation (recommended default)
	SameSiteLaxMode
	// SameSiteStrictMode prevents cookies on all cross-site requests
	SameSiteStrictMode
	// SameSiteNoneMode allows cookies on all cross-site requests (requires Secure=true)
	SameSiteNoneMode
)

// Cookie represents an HTTP cookie with the standard attributes.
// It is kept compatible with net/http.Cookie so the stdlib handles the
// fiddly Set-Cookie serialization rules.
type Cookie struct {
	Name     string
	Value    string
	Path     string
	Domain   string
	Expires  time.Time
	MaxAge   int
	Secure   bool
	HttpOnly bool
	SameSite SameSiteMode
}

// ToStdCookie converts the Cookie to a standard net/http.Cookie.
func (c *Cookie) ToStdCookie() *http.Cookie {
	cookie := &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Domain:   c.Domain,
		Expires:  c.Expires,
		MaxAge:   c.MaxAge,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
	}

	switch c.SameSite {
	case SameSiteLaxMode:
		cookie.SameSite = http.SameSiteLaxMode
	case SameSiteStrictMode:
		cookie.SameSite = http.SameSiteStrictMode
	case SameSiteNoneMode:
		cookie.SameSite = http.SameSiteNoneMode
	default:
		cookie.SameSite = http.SameSiteDefaultMode
	}

	return cookie
}

// SetCookie adds a Set-Cookie header for the given cookie.
// Multiple cookies produce multiple Set-Cookie headers.
func (ctx *context) SetCookie(cookie Cookie) {
	ctx.response.addHeader(consts.HeaderSetCookie, cookie.ToStdCookie().String())
}

// GetCookie returns the value of the named cookie from the request.
func (ctx *context) GetCookie(name string) (string, bool) {
	header := ctx.request.Header(consts.HeaderCookie)
	if header == "" {
		return "", false
	}

	for _, pair := range strings.Split(header, ";") {
		pair = strings.TrimSpace(pair)

		equals := strings.IndexByte(pair, '=')
		if equals <= 0 {
			continue
		}

		if pair[:equals] == name {
			return pair[equals+1:], true
		}
	}

	return "", false
}

// HasCookie reports whether the named cookie is present on the request.
func (ctx *context) HasCookie(name string) bool {
	_, ok := ctx.GetCookie(name)
	return ok
}

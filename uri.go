package sweb

import (
	"net/url"
	"strings"

	"github.com/rohanthewiz/sweb/consts"
)

// parseURL parses a URL and returns the scheme, host, path and query.
// The URL is expected to be in the format "scheme://host/path?query".
// Though we could have used the standard URL package we wanted to maintain fine control.
func parseURL(rawURL string) (scheme string, host string, path string, query string) {
	schemeEndPos := strings.Index(rawURL, consts.SchemeDelimiter)
	if schemeEndPos != -1 {
		scheme = rawURL[:schemeEndPos]
		rawURL = rawURL[schemeEndPos+len(consts.SchemeDelimiter):]
	}

	pathStartPos := strings.IndexByte(rawURL, consts.RuneFwdSlash)
	if pathStartPos != -1 {
		host = rawURL[:pathStartPos]
		rawURL = rawURL[pathStartPos:]
	} else if scheme != "" {
		// "scheme://host" with no path at all
		host = rawURL
		rawURL = ""
	}

	queryPos := strings.IndexByte(rawURL, consts.RuneQuestion)
	if queryPos != -1 {
		path = rawURL[:queryPos]
		query = rawURL[queryPos+1:]
	} else {
		path = rawURL
	}

	// FIXUPS

	if lnPath := len(path); lnPath == 0 {
		path = "/"
	} else { // Trailing slash removal
		if lnPath > 1 && strings.HasSuffix(path, "/") {
			path = path[:lnPath-1]
		}
	}

	if host == "" {
		host = consts.Localhost
	}

	return
}

// appendPathSegments splits the path into its components, appending them to
// dst (pass dst[:0] to reuse a buffer across requests).
//
// One leading slash is stripped and an empty remainder yields no segments,
// mirroring how route patterns are compiled so request keys and route keys
// line up. Each component is percent-decoded here - the router itself does
// no decoding. A component that fails to decode is kept raw.
func appendPathSegments(dst []string, path string) []string {
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		return dst
	}

	for {
		var segment string

		slash := strings.IndexByte(path, consts.RuneFwdSlash)
		if slash == -1 {
			segment = path
		} else {
			segment = path[:slash]
		}

		if decoded, err := url.PathUnescape(segment); err == nil {
			segment = decoded
		}

		dst = append(dst, segment)

		if slash == -1 {
			return dst
		}
		path = path[slash+1:]
	}
}

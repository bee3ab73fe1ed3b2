package send_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/sweb"
	"github.com/rohanthewiz/sweb/consts"
	"github.com/rohanthewiz/sweb/send"
)

func TestText(t *testing.T) {
	s := sweb.NewServer()

	s.Get("/", func(ctx sweb.Context) error {
		return send.Text(ctx, "plain words")
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, response.Header(consts.HeaderContentType), consts.MIMETextPlain)
	assert.Equal(t, string(response.Body()), "plain words")
}

func TestHTML(t *testing.T) {
	s := sweb.NewServer()

	s.Get("/", func(ctx sweb.Context) error {
		return send.HTML(ctx, "<p>hi</p>")
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, response.Header(consts.HeaderContentType), consts.MIMEHTML)
	assert.Equal(t, string(response.Body()), "<p>hi</p>")
}

func TestJSON(t *testing.T) {
	s := sweb.NewServer()

	s.Get("/", func(ctx sweb.Context) error {
		return send.JSON(ctx, map[string]string{"status": "up"})
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, response.Header(consts.HeaderContentType), consts.MIMEJSON)
	assert.Equal(t, string(response.Body()), "{\"status\":\"up\"}\n")
}

func TestCSS(t *testing.T) {
	s := sweb.NewServer()

	s.Get("/style.css", func(ctx sweb.Context) error {
		return send.CSS(ctx, "body { margin: 0 }")
	})

	response := s.Request(consts.MethodGet, "/style.css", nil, nil)
	assert.Equal(t, response.Header(consts.HeaderContentType), consts.MIMECSS)
}

func TestFile(t *testing.T) {
	s := sweb.NewServer()

	s.Get("/download", func(ctx sweb.Context) error {
		return send.File(ctx, "report.csv", []byte("a,b\n1,2\n"))
	})

	response := s.Request(consts.MethodGet, "/download", nil, nil)
	assert.Equal(t, response.Header(consts.HeaderContentType), consts.MIMEOctetStream)
	assert.Equal(t, response.Header(consts.HeaderContentDisposition), "attachment; filename=report.csv")
	assert.Equal(t, string(response.Body()), "a,b\n1,2\n")
}

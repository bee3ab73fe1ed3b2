package sweb_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/sweb"
	"github.com/rohanthewiz/sweb/consts"
)

func TestSetCookie(t *testing.T) {
	s := sweb.NewServer()

	s.Get("/", func(ctx sweb.Context) error {
		ctx.SetCookie(sweb.Cookie{
			Name:     "session",
			Value:    "abc123",
			Path:     "/",
			HttpOnly: true,
			SameSite: sweb.SameSiteLaxMode,
		})
		return ctx.String("ok")
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	header := response.Header(consts.HeaderSetCookie)
	assert.Contains(t, header, "session=abc123")
	assert.Contains(t, header, "Path=/")
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "SameSite=Lax")
}

func TestGetCookie(t *testing.T) {
	s := sweb.NewServer()

	s.Get("/", func(ctx sweb.Context) error {
		value, ok := ctx.GetCookie("session")
		assert.True(t, ok)
		assert.Equal(t, value, "abc123")

		_, ok = ctx.GetCookie("missing")
		assert.False(t, ok)

		assert.True(t, ctx.HasCookie("theme"))
		return ctx.String(value)
	})

	headers := []sweb.Header{{Key: consts.HeaderCookie, Value: "session=abc123; theme=dark"}}
	response := s.Request(consts.MethodGet, "/", headers, nil)
	assert.Equal(t, string(response.Body()), "abc123")
}

func TestGetCookieNoHeader(t *testing.T) {
	s := sweb.NewServer()

	s.Get("/", func(ctx sweb.Context) error {
		assert.False(t, ctx.HasCookie("session"))
		return nil
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, response.Status(), 200)
}

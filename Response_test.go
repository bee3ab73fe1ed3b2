package sweb_test

import (
	"io"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/sweb"
	"github.com/rohanthewiz/sweb/consts"
)

func TestResponseHeader(t *testing.T) {
	s := sweb.NewServer()

	s.Get("/", func(ctx sweb.Context) error {
		ctx.Response().SetHeader("X-Custom", "one")
		ctx.Response().SetHeader("X-Custom", "two") // replaces
		return ctx.String("ok")
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, response.Header("X-Custom"), "two")
	assert.Equal(t, response.Header("X-Missing"), "")
}

func TestResponseSetBody(t *testing.T) {
	s := sweb.NewServer()

	s.Get("/", func(ctx sweb.Context) error {
		ctx.Response().SetBody([]byte("replaced"))
		return nil
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, string(response.Body()), "replaced")
}

func TestResponseWriters(t *testing.T) {
	s := sweb.NewServer()

	s.Get("/", func(ctx sweb.Context) error {
		_, err := ctx.Response().Write([]byte("Hello "))
		if err != nil {
			return err
		}
		_, err = io.WriteString(ctx.Response(), "World")
		return err
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, string(response.Body()), "Hello World")
}

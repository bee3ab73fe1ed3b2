package sweb_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/sweb"
	"github.com/rohanthewiz/sweb/consts"
)

func TestGroupPrefix(t *testing.T) {
	s := sweb.NewServer()
	api := s.Group("/api")

	api.Get("/ping", func(ctx sweb.Context) error {
		return ctx.String("pong")
	})

	response := s.Request(consts.MethodGet, "/api/ping", nil, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, string(response.Body()), "pong")

	// the bare path is not registered
	response = s.Request(consts.MethodGet, "/ping", nil, nil)
	assert.Equal(t, response.Status(), 404)
}

func TestGroupMiddlewareOrder(t *testing.T) {
	s := sweb.NewServer()
	order := ""

	api := s.Group("/api", func(ctx sweb.Context) error {
		order += "a"
		return ctx.Next()
	})

	api.Use(func(ctx sweb.Context) error {
		order += "b"
		return ctx.Next()
	})

	api.Get("/users", func(ctx sweb.Context) error {
		order += "h"
		return ctx.String("users")
	})

	response := s.Request(consts.MethodGet, "/api/users", nil, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, order, "abh")
}

func TestGroupMiddlewareAutoContinue(t *testing.T) {
	s := sweb.NewServer()

	// middleware that neither calls Next nor errors still continues the chain
	api := s.Group("/api", func(ctx sweb.Context) error {
		ctx.Set("seen", true)
		return nil
	})

	api.Get("/users", func(ctx sweb.Context) error {
		assert.True(t, ctx.Has("seen"))
		return ctx.String("users")
	})

	response := s.Request(consts.MethodGet, "/api/users", nil, nil)
	assert.Equal(t, string(response.Body()), "users")
}

func TestGroupMiddlewareStopsChain(t *testing.T) {
	s := sweb.NewServer()
	reached := false

	api := s.Group("/api", func(ctx sweb.Context) error {
		ctx.Status(consts.StatusUnauthorized)
		ctx.Complete()
		return nil
	})

	api.Get("/secret", func(ctx sweb.Context) error {
		reached = true
		return ctx.String("secret")
	})

	response := s.Request(consts.MethodGet, "/api/secret", nil, nil)
	assert.Equal(t, response.Status(), 401)
	assert.False(t, reached)
}

func TestNestedGroups(t *testing.T) {
	s := sweb.NewServer()
	order := ""

	api := s.Group("/api", func(ctx sweb.Context) error {
		order += "a"
		return ctx.Next()
	})

	v1 := api.Group("/v1", func(ctx sweb.Context) error {
		order += "v"
		return ctx.Next()
	})

	v1.Get("/users/:id", func(ctx sweb.Context) error {
		order += "h"
		return ctx.String(ctx.Request().Param("id"))
	})

	response := s.Request(consts.MethodGet, "/api/v1/users/42", nil, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, string(response.Body()), "42")
	assert.Equal(t, order, "avh")
}

func TestGroupMethods(t *testing.T) {
	s := sweb.NewServer()
	api := s.Group("/api")

	echoMethod := func(ctx sweb.Context) error {
		return ctx.String(ctx.Request().Method())
	}

	api.Post("/items", echoMethod)
	api.Put("/items", echoMethod)
	api.Delete("/items", echoMethod)

	for _, method := range []string{consts.MethodPost, consts.MethodPut, consts.MethodDelete} {
		response := s.Request(method, "/api/items", nil, nil)
		assert.Equal(t, string(response.Body()), method)
	}
}

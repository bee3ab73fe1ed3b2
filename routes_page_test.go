package sweb_test

import (
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/sweb"
)

func TestRoutesOverview(t *testing.T) {
	s := sweb.NewServer()

	s.Get("/users/:id", func(ctx sweb.Context) error { return nil })
	s.Post("/users", func(ctx sweb.Context) error { return nil })

	html, err := s.RoutesOverview()
	assert.Nil(t, err)
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "/users/:id")
	assert.Contains(t, html, "GET")
	assert.Contains(t, html, "POST")

	// sorted by path, so /users comes before /users/:id
	assert.True(t, strings.Index(html, "<td>/users</td>") < strings.Index(html, "<td>/users/:id</td>"))
}

func TestRoutesOverviewConflict(t *testing.T) {
	s := sweb.NewServer()

	s.Get("/a/:x", func(ctx sweb.Context) error { return nil })
	s.Get("/a/:y", func(ctx sweb.Context) error { return nil })

	_, err := s.RoutesOverview()
	assert.True(t, err != nil)
}

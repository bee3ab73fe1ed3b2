package sweb

import (
	"sort"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/sweb/core/rtr"
)

// routesPage renders the registered route table as an HTML page.
type routesPage struct {
	routes []rtr.RouteList
}

func (p routesPage) Render(b *element.Builder) any {
	b.Html().R(
		b.Head().R(
			b.Title().T("Registered Routes"),
			b.Style().T(`
				body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
				table { border-collapse: collapse; width: 100%; }
				th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #ddd; }
				th { background: #e9ecef; }
			`),
		),
		b.Body().R(
			b.H1().T("Registered Routes"),
			b.Table().R(
				b.Tr().R(
					b.Th().T("Method"),
					b.Th().T("Path"),
					b.Th().T("Handler"),
				),
				func() (x any) {
					for _, route := range p.routes {
						b.Tr().R(
							b.Td().T(route.Method),
							b.Td().T(route.Path),
							b.Td().T(route.HandlerRef),
						)
					}
					return
				}(),
			),
		),
	)
	return nil
}

// RoutesOverview renders the compiled route table as an HTML page,
// sorted by path then method. Handy as a debug endpoint:
//
//	s.Get("/routes", func(ctx sweb.Context) error {
//		html, err := s.RoutesOverview()
//		if err != nil {
//			return err
//		}
//		return ctx.WriteHTML(html)
//	})
func (s *Server) RoutesOverview() (string, error) {
	router, err := s.Router()
	if err != nil {
		return "", err
	}

	routes := router.ListRoutes()
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})

	b := element.NewBuilder()
	element.RenderComponents(b, routesPage{routes: routes})
	return b.String(), nil
}

package routerhelper

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
)

// RouteGroup. groups routes under a common path prefix and middleware
// chain on top of httprouter.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
	chain  alice.Chain
}

func NewRouteGroup(router *httprouter.Router, prefix string, chain alice.Chain) *RouteGroup {
	return &RouteGroup{
		router: router,
		prefix: prefix,
		chain:  chain,
	}
}

func (g *RouteGroup) Group(prefix string, middlewares ...alice.Constructor) *RouteGroup {
	return &RouteGroup{
		router: g.router,
		prefix: g.prefix + prefix,
		chain:  g.chain.Append(middlewares...),
	}
}

func (g *RouteGroup) GET(path string, handler http.HandlerFunc) {
	g.router.Handler(http.MethodGet, g.prefix+path, g.chain.ThenFunc(handler))
}

func (g *RouteGroup) POST(path string, handler http.HandlerFunc) {
	g.router.Handler(http.MethodPost, g.prefix+path, g.chain.ThenFunc(handler))
}

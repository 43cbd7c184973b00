package app

// pkg/app/kernel.go — builds the http.Handler from the wired application.

import (
	"net/http"

	"github.com/shashiranjanraj/quickstationery/app/routes"
	"github.com/shashiranjanraj/quickstationery/config"
	"github.com/shashiranjanraj/quickstationery/pkg/metrics"
	"github.com/shashiranjanraj/quickstationery/pkg/middleware"
	"github.com/shashiranjanraj/quickstationery/pkg/reqid"
	"github.com/shashiranjanraj/quickstationery/pkg/router"
	"github.com/shashiranjanraj/quickstationery/pkg/session"
)

// Handler builds the routed handler with the global middleware stack.
func (a *Application) Handler() http.Handler {
	return a.mount(router.New())
}

// Router exposes the populated route table without the middleware stack,
// for route:list and URL generation.
func (a *Application) Router() *router.Router {
	r := router.New()
	c := a.Controllers()
	routes.RegisterWeb(r, c)
	routes.RegisterAPI(r, c)
	return r
}

func (a *Application) mount(r *router.Router) http.Handler {
	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. Session           — load/create the flash-session cookie
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(session.Middleware(a.sessionOptions(), a.Sessions))

	// Prometheus /metrics endpoint — outside the page routes.
	r.HandleFunc("/metrics", metrics.Handler())

	c := a.Controllers()
	routes.RegisterWeb(r, c)
	routes.RegisterAPI(r, c)

	return r.Handler()
}

func (a *Application) sessionOptions() session.Options {
	opts := session.DefaultOptions()
	opts.TTL = config.SessionTTL()
	return opts
}

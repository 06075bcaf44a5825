package router

import (
	"github.com/go-chi/chi/v5"
)

// Handler is a domain handler that mounts its own routes.
type Handler interface {
	Router(router chi.Router)
}

type Router struct {
	Handlers []Handler
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		for _, handler := range r.Handlers {
			handler.Router(routerGroup)
		}
	})
}

func New(handlers ...Handler) Router {
	return Router{
		Handlers: handlers,
	}
}

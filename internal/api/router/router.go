package router

import (
	"github.com/219WD/jamrock-front-sub001/internal/api/handler"
	m "github.com/219WD/jamrock-front-sub001/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *handler.Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", server.CartHandler.Get)
			r.Delete("/", server.CartHandler.Clear)
			r.Post("/items", server.CartHandler.Add)
			r.Delete("/items/{productID}", server.CartHandler.Remove)
			r.Patch("/items/{productID}/quantity", server.CartHandler.UpdateQuantity)
		})

		r.Route("/turnos", func(r chi.Router) {
			r.Get("/", server.TurnoHandler.List)
			r.Post("/", server.TurnoHandler.Create)
			r.Put("/{turnoID}", server.TurnoHandler.Edit)
		})
		r.Get("/especialistas", server.TurnoHandler.Especialistas)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.CatalogHandler.Products)
			r.Get("/featured", server.CatalogHandler.Featured)
		})
	})

	return r
}

// Package httpapi exposes the wishlist service over HTTP. Routing, request
// parsing and status mapping live here; all authorization and consistency
// rules stay in the services layer.
package httpapi

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/soplanita/giftgenie/internal/logging"
	"github.com/soplanita/giftgenie/internal/server/metrics"
	"github.com/soplanita/giftgenie/internal/server/services"
)

// Server wires the fiber app over the core services.
type Server struct {
	app       *fiber.App
	logger    logging.Logger
	resolver  services.Resolver
	wishlists *services.Wishlists
	claims    *services.Claims
}

func NewServer(logger logging.Logger, resolver services.Resolver, wishlists *services.Wishlists, claims *services.Claims) *Server {
	s := &Server{
		logger:    logger,
		resolver:  resolver,
		wishlists: wishlists,
		claims:    claims,
	}

	app := fiber.New(fiber.Config{
		AppName:      "giftgenie",
		ServerHeader: "giftgenie",
	})
	app.Use(recover.New())
	app.Use(s.requestMetrics())

	s.app = app
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	api := s.app.Group("/api/v1", s.requireCaller())

	api.Post("/wishlists", s.createWishlist)
	api.Get("/wishlists", s.listWishlists)
	api.Get("/wishlists/:id", s.getWishlist)
	api.Patch("/wishlists/:id", s.updateWishlist)
	api.Delete("/wishlists/:id", s.deleteWishlist)

	api.Post("/wishlists/:id/items", s.addItem)
	api.Delete("/wishlists/:id/items/:itemId", s.removeItem)

	api.Get("/shared/:id", s.getSharedWishlist)
	api.Put("/shared/:id/items/:itemId/claim", s.setClaim)
}

func (s *Server) requestMetrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		metrics.HTTPRequests.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).Inc()
		return err
	}
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App { return s.app }

func (s *Server) Listen(addr string) error { return s.app.Listen(addr) }

func (s *Server) Shutdown() error { return s.app.Shutdown() }

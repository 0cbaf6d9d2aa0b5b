// Package httpapi exposes the JSON API: the auth routes, the item catalog,
// and the schema-validation pipeline every request passes through first.
package httpapi

import (
	"context"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"

	"github.com/givehub/givehub/internal/auth"
	"github.com/givehub/givehub/internal/model"
)

// ItemStore is the persistence surface of the item routes. Satisfied by
// store.Repository.
type ItemStore interface {
	Items(ctx context.Context) ([]model.Item, error)
	ItemByID(ctx context.Context, id int64) (*model.Item, error)
	CreateItem(ctx context.Context, item *model.Item) error
	UpdateOwnedItem(ctx context.Context, id, ownerID int64, patch model.ItemPatch) (*model.Item, error)
	DeleteOwnedItem(ctx context.Context, id, ownerID int64) (*model.Item, error)
	ItemCategories(ctx context.Context) ([]model.ItemCategory, error)
}

// Server owns the fiber app and the route table.
type Server struct {
	app    *fiber.App
	auth   *auth.Service
	store  auth.Store
	items  ItemStore
	tokens *auth.TokenService
	logger *slog.Logger
}

// New assembles the app: central error handler, request logging, and routes.
func New(authService *auth.Service, store auth.Store, items ItemStore, tokens *auth.TokenService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		auth:   authService,
		store:  store,
		items:  items,
		tokens: tokens,
		logger: logger,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "givehub",
		DisableStartupMessage: true,
		ErrorHandler:          newErrorHandler(logger),
	})
	s.app.Use(s.requestLogger())
	s.routes()
	return s
}

// App exposes the underlying fiber app, mainly for tests via app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until Shutdown is called.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) routes() {
	authGroup := s.app.Group("/auth")
	authGroup.Post("/signup",
		Validate(RequestSchema{
			Query:     func() validation.Validatable { return new(SignupQuery) },
			Body:      func() validation.Validatable { return new(SignupBody) },
			QueryKeys: []string{"role"},
		}),
		s.handleSignup,
	)
	authGroup.Post("/login",
		Validate(RequestSchema{
			Body: func() validation.Validatable { return new(LoginBody) },
		}),
		s.handleLogin,
	)
	authGroup.Get("/test",
		auth.RequireRole(s.store, s.tokens, model.RoleAccount),
		s.handleAuthTest,
	)
	authGroup.Delete("/:id",
		Validate(RequestSchema{
			Params: func() validation.Validatable { return new(IDParam) },
			Body:   func() validation.Validatable { return new(LoginBody) },
		}),
		s.handleDeleteAccount,
	)

	items := s.app.Group("/items")
	items.Get("/", s.handleListItems)
	items.Get("/categories", s.handleListCategories)
	items.Get("/:id",
		Validate(RequestSchema{
			Params: func() validation.Validatable { return new(IDParam) },
		}),
		s.handleGetItem,
	)
	items.Post("/",
		auth.RequireRole(s.store, s.tokens, model.RoleDonationCenter),
		Validate(RequestSchema{
			Body: func() validation.Validatable { return new(ItemBody) },
		}),
		s.handleCreateItem,
	)
	items.Patch("/:id",
		auth.RequireRole(s.store, s.tokens, model.RoleDonationCenter),
		Validate(RequestSchema{
			Params: func() validation.Validatable { return new(IDParam) },
			Body:   func() validation.Validatable { return new(ItemPatchBody) },
		}),
		s.handlePatchItem,
	)
	items.Delete("/:id",
		auth.RequireRole(s.store, s.tokens, model.RoleDonationCenter),
		Validate(RequestSchema{
			Params: func() validation.Validatable { return new(IDParam) },
		}),
		s.handleDeleteItem,
	)
}

// requestLogger logs method, path, status, and latency. Bodies and headers
// stay out of the log so credentials and tokens never land there.
func (s *Server) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The error handler has not run yet; it decides the final status.
			status = 0
		}

		s.logger.Debug("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", time.Since(start),
		)
		return err
	}
}

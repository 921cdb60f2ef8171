// Package server exposes trace generation over HTTP.
package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/meikuraledutech/iddfs"
)

// Options configures a Server.
type Options struct {
	Logger        *slog.Logger
	SearchTimeout time.Duration
	MaxNodes      int
}

// Server wires the HTTP routes to a run store.
type Server struct {
	app     *fiber.App
	store   iddfs.Store
	log     *slog.Logger
	timeout time.Duration
}

// structValidator adapts go-playground/validator to fiber's binder.
type structValidator struct {
	validate *validator.Validate
}

func (v *structValidator) Validate(out any) error {
	return v.validate.Struct(out)
}

func newValidator(maxNodes int) *structValidator {
	v := validator.New()
	_ = v.RegisterValidation("maxnodes", func(fl validator.FieldLevel) bool {
		return fl.Field().Len() <= maxNodes
	})
	return &structValidator{validate: v}
}

// New builds a Server around store.
func New(store iddfs.Store, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.SearchTimeout <= 0 {
		opts.SearchTimeout = 5 * time.Second
	}
	if opts.MaxNodes <= 0 {
		opts.MaxNodes = 500
	}

	s := &Server{
		store:   store,
		log:     opts.Logger,
		timeout: opts.SearchTimeout,
	}
	s.app = fiber.New(fiber.Config{
		AppName:         "iddfs",
		StructValidator: newValidator(opts.MaxNodes),
	})
	s.app.Use(recoverer.New())
	s.app.Use(cors.New())
	s.routes()
	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.log.Info("listening", slog.String("addr", addr))
	return s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

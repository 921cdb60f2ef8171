package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) routes() {
	app := s.app

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// ── Search ────────────────────────────────────────────────────────
	api.Post("/iddfs", s.handleSearch)
	api.Post("/search", s.handleSearch)
	api.Get("/pseudocode", s.handlePseudocode)

	// ── Graphs ────────────────────────────────────────────────────────
	api.Post("/generate-graph", s.handleGenerateGraph)
	api.Get("/presets", s.handleListPresets)
	api.Get("/presets/:name", s.handleGetPreset)

	// ── Saved runs ────────────────────────────────────────────────────
	api.Post("/runs", s.handleCreateRun)
	api.Get("/runs", s.handleListRuns)
	api.Get("/runs/:id", s.handleGetRun)
	api.Delete("/runs/:id", s.handleDeleteRun)
}

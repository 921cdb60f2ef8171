package server

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/meikuraledutech/iddfs"
)

var errSearchTimeout = errors.New("iddfs: search timed out")

// errorBody writes the JSON error payload used by every route.
func errorBody(c fiber.Ctx, status int, kind, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": kind, "message": msg})
}

// bindError maps a failed c.Bind() to a 400 response.
func bindError(c fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return errorBody(c, fiber.StatusBadRequest, "ValidationError", verrs.Error())
	}
	return errorBody(c, fiber.StatusBadRequest, "BadRequest", "invalid body")
}

// searchError maps a search failure to its response.
func (s *Server) searchError(c fiber.Ctx, err error) error {
	if kind := iddfs.Kind(err); kind != "" {
		searchTotal.WithLabelValues("rejected").Inc()
		s.log.Warn("search rejected", slog.String("kind", kind), slog.String("error", err.Error()))
		return errorBody(c, fiber.StatusUnprocessableEntity, kind, err.Error())
	}
	if errors.Is(err, errSearchTimeout) {
		searchTotal.WithLabelValues("timeout").Inc()
		s.log.Warn("search timed out", slog.Duration("timeout", s.timeout))
		return errorBody(c, fiber.StatusGatewayTimeout, "Timeout", err.Error())
	}
	s.log.Error("search failed", slog.String("error", err.Error()))
	return errorBody(c, fiber.StatusInternalServerError, "Internal", err.Error())
}

// search generates the trace for req off the request goroutine. If it takes
// longer than the configured timeout the result is discarded.
func (s *Server) search(ctx context.Context, req iddfs.Request) (iddfs.Trace, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type result struct {
		trace iddfs.Trace
		err   error
	}
	done := make(chan result, 1)
	started := time.Now()
	go func() {
		tr, err := req.Run()
		done <- result{trace: tr, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return nil, r.err
		}
		elapsed := time.Since(started)
		summary := iddfs.Summarize(r.trace)
		outcome := "not_found"
		if summary.Found {
			outcome = "found"
		}
		searchTotal.WithLabelValues(outcome).Inc()
		searchDuration.Observe(elapsed.Seconds())
		traceSteps.Observe(float64(len(r.trace)))
		s.log.Info("search",
			slog.String("start", req.StartNode),
			slog.String("goal", req.GoalNode),
			slog.Int("max_depth", *req.MaxDepth),
			slog.Int("steps", len(r.trace)),
			slog.Bool("found", summary.Found),
			slog.Duration("took", elapsed),
		)
		return r.trace, nil
	case <-ctx.Done():
		return nil, errors.Wrap(errSearchTimeout, ctx.Err().Error())
	}
}

func (s *Server) handleSearch(c fiber.Ctx) error {
	var req iddfs.Request
	if err := c.Bind().JSON(&req); err != nil {
		return bindError(c, err)
	}
	trace, err := s.search(c.Context(), req)
	if err != nil {
		return s.searchError(c, err)
	}
	return c.JSON(trace)
}

func (s *Server) handlePseudocode(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"lines": iddfs.Pseudocode()})
}

type generateRequest struct {
	NumNodes int     `json:"numNodes"`
	Seed     *uint64 `json:"seed,omitempty"`
}

func (s *Server) handleGenerateGraph(c fiber.Ctx) error {
	var req generateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return bindError(c, err)
	}
	seed := uint64(time.Now().UnixNano())
	if req.Seed != nil {
		seed = *req.Seed
	}
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return c.JSON(iddfs.RandomGraph(req.NumNodes, rnd))
}

func (s *Server) handleListPresets(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"presets": iddfs.PresetNames()})
}

func (s *Server) handleGetPreset(c fiber.Ctx) error {
	g, ok := iddfs.Preset(c.Params("name"))
	if !ok {
		return errorBody(c, fiber.StatusNotFound, "NotFound", "preset not found")
	}
	return c.JSON(g)
}

func (s *Server) handleCreateRun(c fiber.Ctx) error {
	var req iddfs.Request
	if err := c.Bind().JSON(&req); err != nil {
		return bindError(c, err)
	}
	trace, err := s.search(c.Context(), req)
	if err != nil {
		return s.searchError(c, err)
	}

	run := &iddfs.Run{Request: req, Steps: trace, Summary: iddfs.Summarize(trace)}
	if _, err := s.store.SaveRun(c.Context(), run); err != nil {
		s.log.Error("save run", slog.String("error", err.Error()))
		return errorBody(c, fiber.StatusInternalServerError, "Internal", err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(run)
}

func (s *Server) handleListRuns(c fiber.Ctx) error {
	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return errorBody(c, fiber.StatusBadRequest, "BadRequest", "invalid limit")
		}
		limit = n
	}
	runs, err := s.store.ListRuns(c.Context(), limit)
	if err != nil {
		s.log.Error("list runs", slog.String("error", err.Error()))
		return errorBody(c, fiber.StatusInternalServerError, "Internal", err.Error())
	}
	return c.JSON(runs)
}

func (s *Server) handleGetRun(c fiber.Ctx) error {
	run, err := s.store.GetRun(c.Context(), c.Params("id"))
	if err != nil {
		s.log.Error("get run", slog.String("error", err.Error()))
		return errorBody(c, fiber.StatusInternalServerError, "Internal", err.Error())
	}
	if run == nil {
		return errorBody(c, fiber.StatusNotFound, "NotFound", "run not found")
	}
	return c.JSON(run)
}

func (s *Server) handleDeleteRun(c fiber.Ctx) error {
	err := s.store.DeleteRun(c.Context(), c.Params("id"))
	if errors.Is(err, iddfs.ErrRunNotFound) {
		return errorBody(c, fiber.StatusNotFound, "NotFound", "run not found")
	}
	if err != nil {
		s.log.Error("delete run", slog.String("error", err.Error()))
		return errorBody(c, fiber.StatusInternalServerError, "Internal", err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

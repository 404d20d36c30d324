// Package api implements the REST API for evaluating expressions and
// browsing the evaluation history.
package api

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lemonberrylabs/stackcalc/pkg/calc"
	"github.com/lemonberrylabs/stackcalc/pkg/store"
)

// Server is the HTTP API server.
type Server struct {
	app   *fiber.App
	calc  *calc.Calculator
	store *store.Store
}

// New creates a new API server.
func New(c *calc.Calculator, s *store.Store) *Server {
	srv := &Server{
		calc:  c,
		store: s,
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})

	app.Get("/healthz", srv.healthz)

	// Evaluation API
	app.Post("/v1/evaluate", srv.evaluate)
	app.Post("/v1/postfix", srv.postfix)

	// History API
	app.Get("/v1/evaluations", srv.listEvaluations)
	app.Get("/v1/evaluations/:id", srv.getEvaluation)

	srv.app = app
	return srv
}

// Listen starts the HTTP server on the given address.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying Fiber app (useful for testing).
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) healthz(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// --- Evaluation Handlers ---

type expressionRequest struct {
	Expression string `json:"expression"`
}

func (s *Server) readExpression(c *fiber.Ctx) (string, error) {
	var req expressionRequest
	if err := c.BodyParser(&req); err != nil {
		return "", fmt.Errorf("invalid request body: %v", err)
	}
	if req.Expression == "" {
		return "", errors.New("expression is required")
	}
	return req.Expression, nil
}

func (s *Server) evaluate(c *fiber.Ctx) error {
	expr, err := s.readExpression(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
	}

	res, err := s.calc.EvalString(expr)
	ev := s.store.Record(expr, res, err)
	if err != nil {
		log.Printf("evaluation %s failed: %v", ev.ID, err)
		return calcErrorResponse(c, err, ev.ID)
	}
	return c.JSON(evaluationToJSON(ev))
}

func (s *Server) postfix(c *fiber.Ctx) error {
	expr, err := s.readExpression(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
	}

	p, err := s.calc.PostfixString(expr)
	if err != nil {
		return calcErrorResponse(c, err, "")
	}
	return c.JSON(fiber.Map{
		"expression": expr,
		"postfix":    p.String(),
	})
}

// --- History Handlers ---

func (s *Server) listEvaluations(c *fiber.Ctx) error {
	evals := s.store.List()
	result := make([]fiber.Map, len(evals))
	for i, ev := range evals {
		result[i] = evaluationToJSON(ev)
	}
	return c.JSON(fiber.Map{"evaluations": result})
}

func (s *Server) getEvaluation(c *fiber.Ctx) error {
	ev, err := s.store.Get(c.Params("id"))
	if err != nil {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	}
	return c.JSON(evaluationToJSON(ev))
}

// --- Helpers ---

func errorResponse(c *fiber.Ctx, code int, status, msg string) error {
	return c.Status(code).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": msg,
			"status":  status,
		},
	})
}

// calcErrorResponse reports a conversion or evaluation failure. Every such
// failure is the caller's input, so it maps to 400.
func calcErrorResponse(c *fiber.Ctx, err error, evalID string) error {
	body := fiber.Map{
		"code":    fiber.StatusBadRequest,
		"message": err.Error(),
		"status":  "INVALID_ARGUMENT",
	}
	var ce *calc.Error
	if errors.As(err, &ce) {
		body["kind"] = ce.Kind
		if ce.Pos > 0 {
			body["position"] = ce.Pos
		}
	}
	resp := fiber.Map{"error": body}
	if evalID != "" {
		resp["evaluation"] = evalID
	}
	return c.Status(fiber.StatusBadRequest).JSON(resp)
}

func evaluationToJSON(ev *store.Evaluation) fiber.Map {
	result := fiber.Map{
		"id":         ev.ID,
		"expression": ev.Expression,
		"state":      ev.State,
		"createTime": ev.CreateTime.Format(time.RFC3339),
	}

	if ev.Postfix != "" {
		result["postfix"] = ev.Postfix
	}
	if ev.Result != nil {
		result["result"] = *ev.Result
	}
	if ev.Error != nil {
		result["error"] = ev.Error
	}

	return result
}

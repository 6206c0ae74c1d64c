package graph

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/api/reqctx"
	"Recipe-Hub/internal/utils/logger"
	"Recipe-Hub/internal/utils/metrics"
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
)

const keepAliveInterval = 15 * time.Second

type (
	Handler interface {
		Query(c *fiber.Ctx) error
		Subscribe(c *fiber.Ctx) error
	}

	handler struct {
		schema    *graphql.Schema
		log       *logger.Logger
		keepAlive time.Duration
	}

	queryRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}
)

func NewHandler(schema *graphql.Schema, log *logger.Logger) Handler {
	return &handler{
		schema:    schema,
		log:       log.With("component", "graphql_handler"),
		keepAlive: keepAliveInterval,
	}
}

func errorBody(message, code string) fiber.Map {
	return fiber.Map{
		"errors": []fiber.Map{{
			"message":    message,
			"extensions": fiber.Map{"code": code},
		}},
	}
}

func (h *handler) Query(c *fiber.Ctx) error {
	var req queryRequest
	if err := c.BodyParser(&req); err != nil || req.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(domain.MessageFailedBodyRequest, domain.CodeBadRequest))
	}

	ctx := c.UserContext()
	start := time.Now()
	resp := h.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
	metrics.RecordOperation(req.OperationName, len(resp.Errors) > 0, time.Since(start))
	h.logErrors(ctx, req.OperationName, resp.Errors)

	return c.JSON(resp)
}

// logErrors reports each failed field once; internal failures carry the cause.
func (h *handler) logErrors(ctx context.Context, operation string, errs []*gqlerrors.QueryError) {
	if len(errs) == 0 {
		return
	}
	caller := reqctx.From(ctx)
	for _, qe := range errs {
		code := ErrorCode(qe.ResolverError)
		fields := []interface{}{
			"operation", operation,
			"user_id", caller.UserID,
			"request_id", caller.RequestID,
			"path", qe.Path,
			"code", code,
		}
		switch code {
		case domain.CodeInternal:
			h.log.Error("graphql operation failed", append(fields, "error", qe.ResolverError)...)
		case "":
			h.log.Debug("graphql request rejected", append(fields, "error", qe.Message)...)
		default:
			h.log.Info("graphql operation failed", append(fields, "error", qe.Message)...)
		}
	}
}

// Subscribe serves a subscription as a Server-Sent Events stream. The stream
// ends when the subscription channel closes or the client stops reading.
func (h *handler) Subscribe(c *fiber.Ctx) error {
	var vars map[string]interface{}
	if raw := c.Query("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &vars); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorBody(domain.MessageFailedBodyRequest, domain.CodeBadRequest))
		}
	}
	query := c.Query("query")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(domain.MessageFailedBodyRequest, domain.CodeBadRequest))
	}
	operation := c.Query("operationName")

	ctx, cancel := context.WithCancel(c.UserContext())
	stream, err := h.schema.Subscribe(ctx, query, operation, vars)
	if err != nil {
		cancel()
		h.log.Error("subscription failed to start", "operation", operation, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody(domain.MessageFailedProcessRequest, domain.CodeInternal))
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	metrics.ActiveSubscriptions.Inc()
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer metrics.ActiveSubscriptions.Dec()
		defer cancel()
		h.stream(w, operation, stream)
	})
	return nil
}

func (h *handler) stream(w *bufio.Writer, operation string, stream <-chan interface{}) {
	ping := time.NewTicker(h.keepAlive)
	defer ping.Stop()

	for {
		select {
		case payload, ok := <-stream:
			if !ok {
				return
			}
			data, err := json.Marshal(payload)
			if err != nil {
				h.log.Error("failed to encode subscription payload", "operation", operation, "error", err)
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
		case <-ping.C:
			fmt.Fprint(w, ": ping\n\n")
		}
		if err := w.Flush(); err != nil {
			h.log.Debug("subscriber went away", "operation", operation)
			return
		}
	}
}

package compare

import (
	"errors"

	"msforge/core/logger"
	"msforge/core/snapshot"
	"msforge/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const maxPageSize = 500

// Handler handles HTTP requests for snapshot comparisons.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the compare routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/compare")
	group.Post("/", h.HandleCompare)
	group.Get("/reports", h.HandleListReports)
	group.Get("/reports/:id", h.HandleGetReport)
}

// HandleCompare diffs two snapshots.
// The body is a Request; ?format=yaml switches the response encoding.
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	l.Info("Comparing snapshots", zap.String("a", req.A), zap.String("b", req.B))
	report, err := h.service.Compare(c.Context(), req)
	if err != nil {
		l.Error("Comparison failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return respond(c, report)
}

// HandleListReports lists stored reports, newest first.
func (h *Handler) HandleListReports(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	reports, err := h.service.ListReports(c.Context(), limit, offset)
	if err != nil {
		l.Error("Failed to list reports", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return respond(c, fiber.Map{
		"reports": reports,
		"limit":   limit,
		"offset":  offset,
	})
}

// HandleGetReport returns one stored report.
func (h *Handler) HandleGetReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.GetReport(c.Context(), c.Params("id"))
	if err != nil {
		l.Warn("Failed to get report", zap.String("id", c.Params("id")), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return respond(c, report)
}

func respond(c *fiber.Ctx, v any) error {
	if c.Query("format") != "yaml" {
		return c.JSON(v)
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/yaml")
	return c.Send(out)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, snapshot.ErrUnknownFormat):
		return fiber.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, ErrReportNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrNoDatabase):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

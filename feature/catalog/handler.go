package catalog

import (
	"context"
	"time"

	"guide-sync/core/logger"
	"guide-sync/feature/catalog/exclusions"
	"guide-sync/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation reports.
type Handler struct {
	service *Service
	logger  *zap.Logger
	timeout time.Duration
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, logger: logger, timeout: timeout}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconcile")
	group.Get("/exclusions", h.HandleListExclusions)
	group.Get("/:kind", h.HandleGetReport)
}

// HandleGetReport returns a dry-run reconciliation report.
// @Summary Get Reconciliation Report
// @Description Compare the guide with the codex for one kind, or all of them, without writing anything.
// @Tags reconcile
// @Produce json
// @Param kind path string true "Kind (items, monsters, skills, followers, all)"
// @Param refresh query bool false "Rebuild instead of reusing a recent report"
// @Success 200 {object} reconcile.Report "Report"
// @Failure 400 {object} map[string]string "Unknown kind"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconcile/{kind} [get]
func (h *Handler) HandleGetReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	kinds, err := models.ParseKinds([]string{c.Params("kind")})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if c.QueryBool("refresh") {
		h.service.Invalidate()
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	report, err := h.service.Report(ctx, kinds)
	if err != nil {
		l.Error("Reconciliation report failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleListExclusions returns the exclusion table.
// @Summary List Exclusions
// @Description Entities and fields left out of reconciliation, with the reason.
// @Tags reconcile
// @Produce json
// @Success 200 {array} exclusions.Rule "Rules"
// @Router /reconcile/exclusions [get]
func (h *Handler) HandleListExclusions(c *fiber.Ctx) error {
	return c.JSON(exclusions.Rules())
}

package snapshot

import (
	"errors"

	"xwing-inventory/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultListLimit = 20

// Handler handles HTTP requests for snapshots.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the snapshot routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/snapshots")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCapture)
	group.Get("/latest/diff", h.HandleDiffLatest)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	if errors.Is(err, ErrNoSnapshot) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// HandleList lists stored snapshots.
// @Summary List Snapshots
// @Description Lists stored inventory snapshots, newest first.
// @Tags snapshots
// @Produce json
// @Param limit query int false "Maximum number of snapshots" default(20)
// @Success 200 {array} snapshot.Snapshot "Snapshots"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultListLimit)
	if limit <= 0 {
		limit = defaultListLimit
	}
	snaps, err := h.service.store.List(c.Context(), limit)
	if err != nil {
		return h.fail(c, "Snapshot list failed", err)
	}
	return c.JSON(snaps)
}

// HandleCapture stores the current inventory.
// @Summary Capture Snapshot
// @Description Builds the current inventory and stores it as a new snapshot.
// @Tags snapshots
// @Produce json
// @Param label query string false "Snapshot label"
// @Success 201 {object} snapshot.Snapshot "Snapshot"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots [post]
func (h *Handler) HandleCapture(c *fiber.Ctx) error {
	snap, err := h.service.Capture(c.Context(), c.Query("label"))
	if err != nil {
		return h.fail(c, "Snapshot capture failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(snap)
}

// HandleDiffLatest compares the latest snapshot with the current inventory.
// @Summary Diff Against Latest Snapshot
// @Description Lists items whose owned count changed since the latest snapshot.
// @Tags snapshots
// @Produce json
// @Success 200 {object} map[string]interface{} "Changes"
// @Failure 404 {object} map[string]string "No Snapshot"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots/latest/diff [get]
func (h *Handler) HandleDiffLatest(c *fiber.Ctx) error {
	snap, changes, err := h.service.DiffLatest(c.Context())
	if err != nil {
		return h.fail(c, "Snapshot diff failed", err)
	}
	if changes == nil {
		changes = []Change{}
	}
	return c.JSON(fiber.Map{
		"snapshot": snap,
		"changes":  changes,
	})
}

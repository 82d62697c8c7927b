package integrity

import (
	"errors"

	"xwing-inventory/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleAll)
	group.Get("/sources", h.HandleSources)
	group.Get("/cards", h.HandleCardFiles)
	group.Get("/catalog", h.HandleCatalog)
	group.Get("/schema", h.HandleSchema)
}

// HandleAll runs all checks.
// @Summary Run All Integrity Checks
// @Description Runs the sources, card files, catalog and schema checks. A failing check is reported under "errors".
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Check results"
// @Router /integrity [get]
func (h *Handler) HandleAll(c *fiber.Ctx) error {
	log := logger.WithRayID(h.service.logger, c)
	ctx := c.Context()
	results := fiber.Map{}
	failures := fiber.Map{}

	record := func(name string, v any, err error) {
		if err != nil {
			if !errors.Is(err, ErrNoDatabase) {
				log.Error("Integrity check failed", zap.String("check", name), zap.Error(err))
			}
			failures[name] = err.Error()
			return
		}
		results[name] = v
	}

	sources, err := h.service.CheckSources(ctx)
	record("sources", sources, err)
	cardFiles, err := h.service.CheckCardFiles(ctx)
	record("cards", cardFiles, err)
	cat, err := h.service.CheckCatalog(ctx)
	record("catalog", cat, err)
	schema, err := h.service.CheckSchema(ctx)
	record("schema", schema, err)

	if len(failures) > 0 {
		results["errors"] = failures
	}
	return c.JSON(results)
}

// HandleSources checks the input documents.
// @Summary Check Sources
// @Description Verifies that the expansion catalog, the collection and the xwing-data2 manifest exist.
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.SourcesReport "Sources report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/sources [get]
func (h *Handler) HandleSources(c *fiber.Ctx) error {
	report, err := h.service.CheckSources(c.Context())
	if err != nil {
		return h.fail(c, "Sources check failed", err)
	}
	return c.JSON(report)
}

// HandleCardFiles checks the xwing-data2 files.
// @Summary Check Card Files
// @Description Verifies that every file listed in the xwing-data2 manifest exists.
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.CardFilesReport "Card files report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/cards [get]
func (h *Handler) HandleCardFiles(c *fiber.Ctx) error {
	report, err := h.service.CheckCardFiles(c.Context())
	if err != nil {
		return h.fail(c, "Card files check failed", err)
	}
	return c.JSON(report)
}

// HandleCatalog checks the catalog against the card data.
// @Summary Check Catalog
// @Description Verifies that every ship, pilot and upgrade listed by an expansion exists in the card data.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.CatalogReport "Catalog report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/catalog [get]
func (h *Handler) HandleCatalog(c *fiber.Ctx) error {
	report, err := h.service.CheckCatalog(c.Context())
	if err != nil {
		return h.fail(c, "Catalog check failed", err)
	}
	return c.JSON(report)
}

// HandleSchema checks the snapshot tables.
// @Summary Check Database Schema
// @Description Validates the snapshot tables against their models.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema report"
// @Failure 503 {object} map[string]string "No Database"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchema(c *fiber.Ctx) error {
	report, err := h.service.CheckSchema(c.Context())
	if errors.Is(err, ErrNoDatabase) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return h.fail(c, "Schema check failed", err)
	}
	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

package report

import (
	"bytes"

	"xwing-inventory/core/item"
	"xwing-inventory/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WorkbookFilename is the default name of the spreadsheet download.
const WorkbookFilename = "XWingTMG2_Inventory.xlsx"

// Handler handles HTTP requests for inventory reports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/", h.HandleRecords)
	group.Get("/diagnostics", h.HandleDiagnostics)
	group.Get("/expansions", h.HandleExpansions)
	group.Get("/sources/:kind/:id", h.HandleSources)
	group.Get("/workbook", h.HandleWorkbook)
	group.Post("/refresh", h.HandleRefresh)
}

func (h *Handler) report(c *fiber.Ctx) (*Report, error) {
	rep, err := h.service.Report(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Inventory build failed", zap.Error(err))
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return rep, nil
}

// HandleRecords returns the enriched inventory.
// @Summary Get Inventory
// @Description Reconciles the collection against the expansion catalog and returns ship, pilot and upgrade records.
// @Tags inventory
// @Produce json
// @Success 200 {object} report.Records "Inventory Records"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory [get]
func (h *Handler) HandleRecords(c *fiber.Ctx) error {
	rep, err := h.report(c)
	if rep == nil {
		return err
	}
	return c.JSON(rep.Records)
}

// HandleDiagnostics returns the non-fatal problems of the last build.
// @Summary Get Diagnostics
// @Description Lists unresolved expansion names, unknown SKUs, duplicate singles and cards missing from xwing-data2.
// @Tags inventory
// @Produce json
// @Success 200 {object} map[string]interface{} "Diagnostics and Summary"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/diagnostics [get]
func (h *Handler) HandleDiagnostics(c *fiber.Ctx) error {
	rep, err := h.report(c)
	if rep == nil {
		return err
	}
	return c.JSON(fiber.Map{
		"diagnostics": rep.Diagnostics,
		"summary":     rep.Summary,
	})
}

// HandleExpansions lists owned expansions.
// @Summary List Expansions
// @Description Lists owned expansions by SKU; with all=true every catalog expansion is listed.
// @Tags inventory
// @Produce json
// @Param all query boolean false "Include expansions that are not owned"
// @Success 200 {array} report.ExpansionRow "Expansions"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/expansions [get]
func (h *Handler) HandleExpansions(c *fiber.Ctx) error {
	rep, err := h.report(c)
	if rep == nil {
		return err
	}
	return c.JSON(rep.Expansions(c.QueryBool("all", false)))
}

// HandleSources returns the provenance of one item.
// @Summary Get Item Sources
// @Description Lists the expansions that contain an item and how many copies of each are owned.
// @Tags inventory
// @Produce json
// @Param kind path string true "Item kind (ship, pilot, upgrade, obstacle, damage)"
// @Param id path string true "xws id"
// @Success 200 {object} map[string]interface{} "Item Sources"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/sources/{kind}/{id} [get]
func (h *Handler) HandleSources(c *fiber.Ctx) error {
	kind, err := item.ParseKind(c.Params("kind"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	it := item.New(kind, c.Params("id"))

	rep, err := h.report(c)
	if rep == nil {
		return err
	}
	return c.JSON(fiber.Map{
		"item":    it,
		"count":   rep.Inventory[it],
		"sources": rep.Sources(it),
	})
}

// HandleWorkbook renders the inventory spreadsheet.
// @Summary Download Workbook
// @Description Renders the inventory as an xlsx workbook with lookup-driven totals.
// @Tags inventory
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param all query boolean false "List every catalog expansion in the lookup table"
// @Success 200 {file} file "Workbook"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/workbook [get]
func (h *Handler) HandleWorkbook(c *fiber.Ctx) error {
	rep, err := h.report(c)
	if rep == nil {
		return err
	}

	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, rep, WorkbookOptions{AllExpansions: c.QueryBool("all", false)}); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Workbook render failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Attachment(WorkbookFilename)
	c.Set(fiber.HeaderContentType, xlsxContentType)
	return c.Send(buf.Bytes())
}

// HandleRefresh drops the cached report so the next request rebuilds it.
// @Summary Refresh Inventory
// @Description Discards the cached report; the next request reloads every input.
// @Tags inventory
// @Produce json
// @Success 200 {object} map[string]string "Status"
// @Router /inventory/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	h.service.Refresh()
	logger.WithRayID(h.service.logger, c).Info("Inventory cache dropped")
	return c.JSON(fiber.Map{"status": "refreshed"})
}

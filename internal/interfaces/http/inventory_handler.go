package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retailflow-erp/internal/application/dto"
	appforecast "github.com/tu-usuario/retailflow-erp/internal/application/forecast"
	"github.com/tu-usuario/retailflow-erp/internal/infrastructure/excel"
	"github.com/tu-usuario/retailflow-erp/pkg/logger"
)

// InventoryHandler maneja las sugerencias de reposición.
type InventoryHandler struct {
	reorder *appforecast.ReorderUseCase
	log     *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(reorder *appforecast.ReorderUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{reorder: reorder, log: log}
}

// ReorderSuggestions godoc
// @Summary      Sugerencias inteligentes de reposición
// @Description  Evalúa los productos activos y sugiere qué reponer, cuánto y con
//
//	qué urgencia, según stock actual, velocidad de ventas y estacionalidad.
//
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.ReorderSuggestionsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/reorder-suggestions [get]
func (h *InventoryHandler) ReorderSuggestions(c *fiber.Ctx) error {
	start := time.Now()
	suggestions, err := h.reorder.Suggestions(c.Context())
	observeForecast("reorder", start, err)
	if err != nil {
		h.log.Error().Err(err).Msg("sugerencias de reposición")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "no se pudieron generar las sugerencias de reposición",
		})
	}
	return c.JSON(suggestions)
}

// ExportReorderSuggestions godoc
// @Summary      Exportar sugerencias de reposición a Excel
// @Tags         inventory
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/reorder-suggestions/export [get]
func (h *InventoryHandler) ExportReorderSuggestions(c *fiber.Ctx) error {
	start := time.Now()
	suggestions, err := h.reorder.Suggestions(c.Context())
	observeForecast("reorder", start, err)
	if err != nil {
		h.log.Error().Err(err).Msg("exportar sugerencias de reposición")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "no se pudieron generar las sugerencias de reposición",
		})
	}

	book, err := excel.BuildReorderWorkbook(suggestions)
	if err != nil {
		h.log.Error().Err(err).Msg("armar libro de reposición")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "no se pudo armar el archivo de exportación",
		})
	}
	defer func() { _ = book.Close() }()

	buf, err := book.WriteToBuffer()
	if err != nil {
		h.log.Error().Err(err).Msg("serializar libro de reposición")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "no se pudo serializar el archivo de exportación",
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reposicion.xlsx"`)
	return c.Send(buf.Bytes())
}

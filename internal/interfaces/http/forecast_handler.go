package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retailflow-erp/internal/application/dto"
	appforecast "github.com/tu-usuario/retailflow-erp/internal/application/forecast"
	"github.com/tu-usuario/retailflow-erp/internal/domain"
	"github.com/tu-usuario/retailflow-erp/pkg/logger"
)

// ForecastHandler maneja las peticiones del pronóstico de flujo de caja.
type ForecastHandler struct {
	cashFlow *appforecast.CashFlowUseCase
	log      *logger.Logger
}

// NewForecastHandler construye el handler.
func NewForecastHandler(cashFlow *appforecast.CashFlowUseCase, log *logger.Logger) *ForecastHandler {
	return &ForecastHandler{cashFlow: cashFlow, log: log}
}

// CashFlow godoc
// @Summary      Proyección de flujo de caja
// @Description  Proyecta el saldo diario para los próximos N días combinando
//
//	promedios históricos, transacciones recurrentes y eventos de caja conocidos.
//
// @Tags         forecast
// @Produce      json
// @Param        days  query  int  true  "Horizonte en días (7-180 inclusive)"
// @Success      200  {object}  dto.CashFlowForecastDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/forecast/cash-flow [get]
func (h *ForecastHandler) CashFlow(c *fiber.Ctx) error {
	raw := c.Query("days")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "el parámetro days es obligatorio",
		})
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "days debe ser un entero",
		})
	}

	start := time.Now()
	forecast, err := h.cashFlow.Forecast(c.Context(), days)
	observeForecast("cash_flow", start, err)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: err.Error(),
			})
		}
		h.log.Error().Err(err).Int("days", days).Msg("pronóstico de flujo de caja")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "no se pudo generar el pronóstico de flujo de caja",
		})
	}

	return c.JSON(forecast)
}

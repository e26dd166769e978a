package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retailflow-erp/internal/application/dto"
	appforecast "github.com/tu-usuario/retailflow-erp/internal/application/forecast"
	"github.com/tu-usuario/retailflow-erp/pkg/logger"
)

// CustomerHandler maneja el scoring de salud de clientes.
type CustomerHandler struct {
	health *appforecast.CustomerHealthUseCase
	log    *logger.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(health *appforecast.CustomerHealthUseCase, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{health: health, log: log}
}

// Health godoc
// @Summary      Salud de clientes y riesgo de fuga
// @Description  Puntaje 0-100 por cliente con clasificación, tendencia y
//
//	factores de riesgo; los clientes más en riesgo van primero.
//
// @Tags         customers
// @Produce      json
// @Success      200  {object}  dto.CustomerHealthResponseDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/customers/health [get]
func (h *CustomerHandler) Health(c *fiber.Ctx) error {
	start := time.Now()
	scores, err := h.health.ScoreAll(c.Context())
	observeForecast("customer_health", start, err)
	if err != nil {
		h.log.Error().Err(err).Msg("salud de clientes")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "no se pudo calcular la salud de clientes",
		})
	}
	return c.JSON(scores)
}

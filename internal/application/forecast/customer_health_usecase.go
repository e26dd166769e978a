package forecast

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/tu-usuario/retailflow-erp/internal/application/dto"
	domforecast "github.com/tu-usuario/retailflow-erp/internal/domain/forecast"
	"github.com/tu-usuario/retailflow-erp/internal/domain/repository"
)

// CustomerHealthUseCase calcula el puntaje de salud 0-100 de cada cliente a
// partir de su historial de órdenes, con clasificación, tendencia y factores
// de riesgo legibles. Los clientes más en riesgo van primero.
type CustomerHealthUseCase struct {
	customerRepo repository.CustomerRepository
	salesRepo    repository.SalesOrderRepository
	now          func() time.Time
}

// NewCustomerHealthUseCase construye el caso de uso.
func NewCustomerHealthUseCase(
	customerRepo repository.CustomerRepository,
	salesRepo repository.SalesOrderRepository,
) *CustomerHealthUseCase {
	return &CustomerHealthUseCase{
		customerRepo: customerRepo,
		salesRepo:    salesRepo,
		now:          time.Now,
	}
}

// ScoreAll puntúa todos los clientes y devuelve la lista ordenada ascendente
// por puntaje (el peor primero) con el resumen por estado.
func (uc *CustomerHealthUseCase) ScoreAll(ctx context.Context) (*dto.CustomerHealthResponseDTO, error) {
	now := uc.now()

	customers, err := uc.customerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("customer-health: clientes: %w", err)
	}

	scored := make([]dto.CustomerHealthDTO, 0, len(customers))
	summary := dto.CustomerHealthSummaryDTO{}

	for i := range customers {
		c := &customers[i]

		orders, err := uc.salesRepo.ListByCustomer(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("customer-health: órdenes de %s: %w", c.ID, err)
		}

		res := domforecast.ScoreCustomerHealth(orders, now)

		var lastOrderStr *string
		if res.LastOrderDate != nil {
			s := res.LastOrderDate.Format("2006-01-02")
			lastOrderStr = &s
		}

		riskFactors := res.RiskFactors
		if riskFactors == nil {
			riskFactors = []string{}
		}
		recommendations := res.Recommendations
		if recommendations == nil {
			recommendations = []string{}
		}

		scored = append(scored, dto.CustomerHealthDTO{
			CustomerID:         c.ID,
			CustomerName:       c.Name,
			Email:              c.Email,
			HealthScore:        res.Score,
			Status:             string(res.Status),
			LastOrderDate:      lastOrderStr,
			DaysSinceLastOrder: res.DaysSinceLastOrder,
			TotalOrders:        res.TotalOrders,
			TotalRevenue:       res.TotalRevenue,
			AverageOrderValue:  res.AverageOrderValue,
			OrderFrequency:     math.Round(res.OrderFrequency*100) / 100,
			Trend:              string(res.Trend),
			RiskFactors:        riskFactors,
			Recommendations:    recommendations,
		})

		switch res.Status {
		case domforecast.StatusHealthy:
			summary.Healthy++
		case domforecast.StatusAtRisk:
			summary.AtRisk++
		default:
			summary.Critical++
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].HealthScore < scored[j].HealthScore
	})

	return &dto.CustomerHealthResponseDTO{Customers: scored, Summary: summary}, nil
}

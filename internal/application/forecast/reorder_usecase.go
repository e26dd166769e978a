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

// seasonalHistoryLimit líneas históricas recientes usadas para estacionalidad.
const seasonalHistoryLimit = 100

// ReorderUseCase genera sugerencias de reposición para los productos activos,
// combinando el libro de inventario (stock actual) con la velocidad de ventas
// y el ajuste estacional. Solo los productos en riesgo producen sugerencia.
type ReorderUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.InventoryMovementRepository
	salesRepo    repository.SalesOrderRepository
	now          func() time.Time
}

// NewReorderUseCase construye el caso de uso.
func NewReorderUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.InventoryMovementRepository,
	salesRepo repository.SalesOrderRepository,
) *ReorderUseCase {
	return &ReorderUseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		salesRepo:    salesRepo,
		now:          time.Now,
	}
}

// Suggestions evalúa todos los productos activos y devuelve las sugerencias
// ordenadas por urgencia (critical → high → medium → low, estable dentro de
// cada nivel) con el resumen por nivel.
func (uc *ReorderUseCase) Suggestions(ctx context.Context) (*dto.ReorderSuggestionsDTO, error) {
	now := uc.now()

	products, err := uc.productRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("reorder: productos activos: %w", err)
	}

	suggestions := make([]dto.ReorderSuggestionDTO, 0)
	for i := range products {
		p := &products[i]

		movements, err := uc.movementRepo.ListByProduct(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("reorder: movimientos de %s: %w", p.SKU, err)
		}
		currentStock := domforecast.CurrentStock(movements)

		recentSales, err := uc.salesRepo.SalesSince(ctx, p.ID,
			now.AddDate(0, 0, -domforecast.DefaultLookbackDays))
		if err != nil {
			return nil, fmt.Errorf("reorder: ventas recientes de %s: %w", p.SKU, err)
		}
		velocity := domforecast.WeeklyVelocity(recentSales, now, domforecast.DefaultLookbackDays)

		history, err := uc.salesRepo.RecentSales(ctx, p.ID, seasonalHistoryLimit)
		if err != nil {
			return nil, fmt.Errorf("reorder: historial de %s: %w", p.SKU, err)
		}
		seasonalFactor := domforecast.SeasonalFactor(history, now)

		stockout := domforecast.PredictStockoutDate(currentStock, velocity, seasonalFactor, now)
		if !domforecast.NeedsReorder(currentStock, p.MinStock, stockout, now) {
			continue
		}

		urgency := domforecast.ClassifyUrgency(currentStock, p.MinStock, stockout, now)
		confidence := domforecast.ClassifyReorderConfidence(velocity, len(history))

		reasoning := buildReorderReasoning(currentStock, p.MinStock, velocity, seasonalFactor, stockout, confidence, now)

		var stockoutStr *string
		if stockout != nil {
			s := stockout.Format("2006-01-02")
			stockoutStr = &s
		}

		suggestions = append(suggestions, dto.ReorderSuggestionDTO{
			ProductID:             p.ID,
			ProductSKU:            p.SKU,
			ProductName:           p.Name,
			CurrentStock:          currentStock,
			MinStock:              p.MinStock,
			SalesVelocity:         math.Round(velocity*10) / 10,
			PredictedStockoutDate: stockoutStr,
			SuggestedQuantity:     domforecast.SuggestedQuantity(currentStock, p.MinStock, velocity, seasonalFactor),
			Reasoning:             reasoning,
			Urgency:               string(urgency),
			Confidence:            string(confidence),
			SeasonalFactor:        math.Round(seasonalFactor*100) / 100,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return domforecast.Urgency(suggestions[i].Urgency).Rank() <
			domforecast.Urgency(suggestions[j].Urgency).Rank()
	})

	summary := dto.ReorderSummaryDTO{}
	for _, s := range suggestions {
		switch domforecast.Urgency(s.Urgency) {
		case domforecast.UrgencyCritical:
			summary.Critical++
		case domforecast.UrgencyHigh:
			summary.High++
		case domforecast.UrgencyMedium:
			summary.Medium++
		default:
			summary.Low++
		}
	}

	return &dto.ReorderSuggestionsDTO{Suggestions: suggestions, Summary: summary}, nil
}

// buildReorderReasoning arma las razones legibles de la sugerencia, en orden
// fijo: stock bajo mínimo, quiebre previsto, velocidad, ajuste estacional
// (solo si difiere del neutro en más de 10%) y nota de historial limitado.
func buildReorderReasoning(
	currentStock, minStock int,
	velocity, seasonalFactor float64,
	stockout *time.Time,
	confidence domforecast.Confidence,
	now time.Time,
) []string {
	reasoning := make([]string, 0, 4)

	if currentStock < minStock {
		reasoning = append(reasoning,
			fmt.Sprintf("El stock (%d) está bajo el mínimo (%d)", currentStock, minStock))
	}
	if stockout != nil {
		days := int(math.Ceil(stockout.Sub(now).Hours() / 24))
		reasoning = append(reasoning,
			fmt.Sprintf("Quiebre de stock previsto en %d días", days))
	}
	if velocity > 0 {
		reasoning = append(reasoning,
			fmt.Sprintf("Se venden %.1f unidades por semana", velocity))
	}
	if seasonalFactor > 1.1 {
		reasoning = append(reasoning,
			fmt.Sprintf("Aumento estacional de demanda detectado (%.0f%% del promedio)", seasonalFactor*100))
	} else if seasonalFactor < 0.9 {
		reasoning = append(reasoning,
			fmt.Sprintf("Baja estacional de demanda (%.0f%% del promedio)", seasonalFactor*100))
	}
	if confidence == domforecast.ConfidenceLow {
		reasoning = append(reasoning,
			"Historial de ventas limitado: la sugerencia se basa en el stock mínimo")
	}
	return reasoning
}

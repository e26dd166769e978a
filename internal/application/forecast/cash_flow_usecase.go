package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/retailflow-erp/internal/application/dto"
	"github.com/tu-usuario/retailflow-erp/internal/domain"
	"github.com/tu-usuario/retailflow-erp/internal/domain/entity"
	domforecast "github.com/tu-usuario/retailflow-erp/internal/domain/forecast"
	"github.com/tu-usuario/retailflow-erp/internal/domain/repository"
)

// CashFlowUseCase proyecta el saldo diario de caja hacia adelante combinando
// promedios históricos, transacciones recurrentes detectadas y eventos de caja
// conocidos (cobros de órdenes de venta, pagos de órdenes de compra).
// Computación pura por petición: no guarda estado ni escribe nada.
type CashFlowUseCase struct {
	txRepo       repository.TransactionRepository
	salesRepo    repository.SalesOrderRepository
	purchaseRepo repository.PurchaseOrderRepository
	now          func() time.Time
}

// NewCashFlowUseCase construye el caso de uso.
func NewCashFlowUseCase(
	txRepo repository.TransactionRepository,
	salesRepo repository.SalesOrderRepository,
	purchaseRepo repository.PurchaseOrderRepository,
) *CashFlowUseCase {
	return &CashFlowUseCase{
		txRepo:       txRepo,
		salesRepo:    salesRepo,
		purchaseRepo: purchaseRepo,
		now:          time.Now,
	}
}

// Forecast genera la proyección para los próximos days días. days debe estar
// en [7, 180]; fuera de rango se rechaza antes de tocar la persistencia.
// Si alguna consulta falla, la computación completa aborta: nunca se
// devuelven resultados parciales.
func (uc *CashFlowUseCase) Forecast(ctx context.Context, days int) (*dto.CashFlowForecastDTO, error) {
	if days < domforecast.HorizonMinDays || days > domforecast.HorizonMaxDays {
		return nil, fmt.Errorf("%w: days debe estar entre %d y %d",
			domain.ErrInvalidInput, domforecast.HorizonMinDays, domforecast.HorizonMaxDays)
	}

	now := uc.now()

	balance, err := uc.txRepo.Balance(ctx)
	if err != nil {
		return nil, fmt.Errorf("cash-flow: saldo actual: %w", err)
	}

	historyDays := days
	if historyDays > 90 {
		historyDays = 90
	}
	history, err := uc.txRepo.ListSince(ctx, now.AddDate(0, 0, -historyDays))
	if err != nil {
		return nil, fmt.Errorf("cash-flow: transacciones históricas: %w", err)
	}

	pendingSales, err := uc.salesRepo.ListByStatuses(ctx,
		[]entity.OrderStatus{entity.OrderPending, entity.OrderConfirmed})
	if err != nil {
		return nil, fmt.Errorf("cash-flow: órdenes de venta pendientes: %w", err)
	}

	pendingPurchases, err := uc.purchaseRepo.ListByStatuses(ctx,
		[]entity.PurchaseOrderStatus{entity.PurchaseApproved, entity.PurchaseOrdered})
	if err != nil {
		return nil, fmt.Errorf("cash-flow: órdenes de compra pendientes: %w", err)
	}

	proj, err := domforecast.ProjectCashFlow(domforecast.CashFlowInput{
		CurrentBalance:   balance,
		History:          history,
		PendingSales:     pendingSales,
		PendingPurchases: pendingPurchases,
	}, now, days)
	if err != nil {
		return nil, err
	}

	out := &dto.CashFlowForecastDTO{
		CurrentBalance: proj.CurrentBalance,
		Forecast:       make([]dto.CashFlowDayDTO, 0, len(proj.Days)),
		Warnings: dto.CashFlowWarningsDTO{
			Critical: proj.CriticalCount,
			Warning:  proj.WarningCount,
		},
		Insights: proj.Insights,
	}
	for _, d := range proj.Days {
		alerts := d.Alerts
		if alerts == nil {
			alerts = []string{}
		}
		out.Forecast = append(out.Forecast, dto.CashFlowDayDTO{
			Date:             d.Date.Format("2006-01-02"),
			ProjectedBalance: d.ProjectedBalance,
			Income:           d.Income,
			Expenses:         d.Expenses,
			Confidence:       string(d.Confidence),
			Alerts:           alerts,
		})
	}
	return out, nil
}

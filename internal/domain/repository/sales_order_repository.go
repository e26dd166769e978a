package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/retailflow-erp/internal/domain/entity"
	"github.com/tu-usuario/retailflow-erp/internal/domain/forecast"
)

// SalesOrderRepository puerto de lectura de órdenes de venta y sus líneas.
type SalesOrderRepository interface {
	// ListByStatuses devuelve las órdenes (sin líneas) en cualquiera de los
	// estados dados. Lo usa el pronóstico de caja para cobros pendientes.
	ListByStatuses(ctx context.Context, statuses []entity.OrderStatus) ([]entity.SalesOrder, error)

	// ListByCustomer devuelve el historial completo de órdenes de un cliente,
	// más reciente primero.
	ListByCustomer(ctx context.Context, customerID string) ([]entity.SalesOrder, error)

	// SalesSince devuelve pares fecha/cantidad de las líneas de un producto
	// cuya orden está confirmada, embarcada o entregada, con orderDate >= since.
	SalesSince(ctx context.Context, productID string, since time.Time) ([]forecast.SalePoint, error)

	// RecentSales devuelve hasta limit pares fecha/cantidad de las líneas más
	// recientes de un producto en órdenes confirmadas, embarcadas o entregadas.
	// Alimenta la detección de estacionalidad.
	RecentSales(ctx context.Context, productID string, limit int) ([]forecast.SalePoint, error)
}

package repository

import (
	"context"

	"github.com/tu-usuario/retailflow-erp/internal/domain/entity"
)

// PurchaseOrderRepository puerto de lectura de órdenes de compra.
type PurchaseOrderRepository interface {
	// ListByStatuses devuelve las órdenes de compra en cualquiera de los
	// estados dados. Lo usa el pronóstico de caja para pagos pendientes.
	ListByStatuses(ctx context.Context, statuses []entity.PurchaseOrderStatus) ([]entity.PurchaseOrder, error)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/retailflow-erp/internal/domain/entity"
	"github.com/tu-usuario/retailflow-erp/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo adaptador de lectura de órdenes de compra.
type PurchaseOrderRepo struct {
	pool *pgxpool.Pool
}

// NewPurchaseOrderRepository construye el adaptador.
func NewPurchaseOrderRepository(pool *pgxpool.Pool) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{pool: pool}
}

// ListByStatuses devuelve las órdenes de compra en cualquiera de los estados dados.
func (r *PurchaseOrderRepo) ListByStatuses(ctx context.Context, statuses []entity.PurchaseOrderStatus) ([]entity.PurchaseOrder, error) {
	const query = `
	SELECT id, order_number, supplier_id, status, total,
	       order_date, expected_date, received_date, notes, created_at, updated_at
	FROM purchase_orders
	WHERE status = ANY($1)
	ORDER BY created_at`

	list := make([]string, len(statuses))
	for i, s := range statuses {
		list[i] = string(s)
	}

	rows, err := r.pool.Query(ctx, query, list)
	if err != nil {
		return nil, fmt.Errorf("purchaseOrders.ListByStatuses: %w", err)
	}
	defer rows.Close()

	var orders []entity.PurchaseOrder
	for rows.Next() {
		var po entity.PurchaseOrder
		if err := rows.Scan(
			&po.ID, &po.OrderNumber, &po.SupplierID, &po.Status, &po.Total,
			&po.OrderDate, &po.ExpectedDate, &po.ReceivedDate, &po.Notes,
			&po.CreatedAt, &po.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("purchaseOrders.ListByStatuses scan: %w", err)
		}
		orders = append(orders, po)
	}
	return orders, rows.Err()
}

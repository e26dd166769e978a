package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/retailflow-erp/internal/domain/entity"
	"github.com/tu-usuario/retailflow-erp/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo adaptador de lectura del libro de inventario.
type InventoryMovementRepo struct {
	pool *pgxpool.Pool
}

// NewInventoryMovementRepository construye el adaptador.
func NewInventoryMovementRepository(pool *pgxpool.Pool) *InventoryMovementRepo {
	return &InventoryMovementRepo{pool: pool}
}

// ListByProduct devuelve todos los movimientos de un producto.
func (r *InventoryMovementRepo) ListByProduct(ctx context.Context, productID string) ([]entity.InventoryMovement, error) {
	const query = `
	SELECT id, product_id, type, quantity, reason, created_by, created_at
	FROM inventory_movements
	WHERE product_id = $1`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("movements.ListByProduct: %w", err)
	}
	defer rows.Close()

	var movements []entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Reason, &m.CreatedBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("movements.ListByProduct scan: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

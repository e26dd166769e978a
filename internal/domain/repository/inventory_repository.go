package repository

import (
	"context"

	"github.com/tu-usuario/retailflow-erp/internal/domain/entity"
)

// InventoryMovementRepository puerto de lectura de movimientos de inventario.
type InventoryMovementRepository interface {
	// ListByProduct devuelve el historial completo de movimientos de un producto.
	// El orden no importa: el stock es una suma conmutativa.
	ListByProduct(ctx context.Context, productID string) ([]entity.InventoryMovement, error)
}

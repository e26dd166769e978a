package repository

import (
	"context"

	"github.com/tu-usuario/retailflow-erp/internal/domain/entity"
)

// ProductRepository puerto de lectura del catálogo de productos (DIP).
// El subsistema de pronósticos nunca escribe: solo consume snapshots.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// ListActive devuelve todos los productos activos, en orden estable por nombre.
	ListActive(ctx context.Context) ([]entity.Product, error)
}

package repository

import (
	"context"

	"github.com/tu-usuario/retailflow-erp/internal/domain/entity"
)

// CustomerRepository puerto de lectura de clientes.
type CustomerRepository interface {
	// ListAll devuelve todos los clientes en orden estable por nombre.
	ListAll(ctx context.Context) ([]entity.Customer, error)
}

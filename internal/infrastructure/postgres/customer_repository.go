package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/retailflow-erp/internal/domain/entity"
	"github.com/tu-usuario/retailflow-erp/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo adaptador de lectura de clientes.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

// ListAll devuelve todos los clientes ordenados por nombre.
func (r *CustomerRepo) ListAll(ctx context.Context) ([]entity.Customer, error) {
	const query = `
	SELECT id, name, email, phone, address, created_at, updated_at
	FROM customers
	ORDER BY name, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("customers.ListAll: %w", err)
	}
	defer rows.Close()

	var customers []entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("customers.ListAll scan: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

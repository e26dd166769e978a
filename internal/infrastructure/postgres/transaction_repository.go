package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retailflow-erp/internal/domain/entity"
	"github.com/tu-usuario/retailflow-erp/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo adaptador de lectura del libro financiero.
type TransactionRepo struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository construye el adaptador.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Balance suma con signo de todas las transacciones. COALESCE devuelve cero
// con el libro vacío.
func (r *TransactionRepo) Balance(ctx context.Context) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount ELSE -amount END), 0)
	FROM transactions`

	var balance decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("transactions.Balance: %w", err)
	}
	return balance, nil
}

// ListSince devuelve las transacciones con date >= since, ascendente.
func (r *TransactionRepo) ListSince(ctx context.Context, since time.Time) ([]entity.Transaction, error) {
	const query = `
	SELECT id, type, amount, category, description, COALESCE(order_id::TEXT, ''), date, created_at
	FROM transactions
	WHERE date >= $1
	ORDER BY date`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("transactions.ListSince: %w", err)
	}
	defer rows.Close()

	var transactions []entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(
			&t.ID, &t.Type, &t.Amount, &t.Category, &t.Description,
			&t.OrderID, &t.Date, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("transactions.ListSince scan: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

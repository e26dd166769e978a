package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retailflow-erp/internal/domain/entity"
)

// TransactionRepository puerto de lectura del libro financiero.
type TransactionRepository interface {
	// Balance devuelve la suma con signo de todas las transacciones
	// (+INCOME, -EXPENSE), sin límite temporal. Cero si el libro está vacío.
	Balance(ctx context.Context) (decimal.Decimal, error)

	// ListSince devuelve las transacciones con date >= since, ascendente.
	ListSince(ctx context.Context, since time.Time) ([]entity.Transaction, error)
}

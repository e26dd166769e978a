package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tipo cerrado de asiento financiero.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// Valid indica si el tipo es uno de los valores cerrados.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction asiento del libro financiero. Amount siempre es positivo;
// el signo sobre el saldo lo aporta el tipo.
type Transaction struct {
	ID          string
	Type        TransactionType
	Amount      decimal.Decimal
	Category    string
	Description string
	OrderID     string // opcional: orden de venta asociada
	Date        time.Time
	CreatedAt   time.Time
}

// SignedAmount devuelve el efecto sobre el saldo: +Amount para INCOME, -Amount para EXPENSE.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

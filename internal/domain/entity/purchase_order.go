package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus ciclo de vida cerrado de una orden de compra.
type PurchaseOrderStatus string

const (
	PurchaseDraft    PurchaseOrderStatus = "DRAFT"
	PurchasePending  PurchaseOrderStatus = "PENDING"
	PurchaseApproved PurchaseOrderStatus = "APPROVED"
	PurchaseOrdered  PurchaseOrderStatus = "ORDERED"
	PurchaseReceived PurchaseOrderStatus = "RECEIVED"
	PurchaseCancelled PurchaseOrderStatus = "CANCELLED"
)

// Valid indica si el estado es uno de los valores cerrados.
func (s PurchaseOrderStatus) Valid() bool {
	switch s {
	case PurchaseDraft, PurchasePending, PurchaseApproved,
		PurchaseOrdered, PurchaseReceived, PurchaseCancelled:
		return true
	}
	return false
}

// PurchaseOrder orden de compra a un proveedor.
// ExpectedDate es opcional; si es nil el pago se estima a CreatedAt + 14 días.
type PurchaseOrder struct {
	ID           string
	OrderNumber  string
	SupplierID   string
	Status       PurchaseOrderStatus
	Total        decimal.Decimal
	OrderDate    *time.Time
	ExpectedDate *time.Time
	ReceivedDate *time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus ciclo de vida cerrado de una orden de venta.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Valid indica si el estado es uno de los valores cerrados.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// FulfilledStatuses estados cuyas líneas cuentan como demanda real
// (velocidad de ventas y estacionalidad).
func FulfilledStatuses() []OrderStatus {
	return []OrderStatus{OrderConfirmed, OrderShipped, OrderDelivered}
}

// SalesOrder orden de venta de un cliente, con total a 2 decimales.
type SalesOrder struct {
	ID          string
	OrderNumber string
	CustomerID  string
	Status      OrderStatus
	Total       decimal.Decimal
	Notes       string
	OrderDate   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Lines       []SalesOrderLine
}

// SalesOrderLine línea de una orden de venta.
// Subtotal = Quantity × UnitPrice.
type SalesOrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

package entity

import "time"

// Customer representa un cliente de la empresa.
// Sus órdenes de venta se consultan por relación inversa (no las posee).
type Customer struct {
	ID        string
	Name      string
	Email     string // opcional; vacío si no se registró
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

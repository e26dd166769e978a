package entity

import "time"

// MovementType tipo cerrado de movimiento de inventario.
type MovementType string

const (
	MovementIn         MovementType = "IN"         // entrada
	MovementOut        MovementType = "OUT"        // salida
	MovementAdjustment MovementType = "ADJUSTMENT" // ajuste (aditivo neto)
)

// Valid indica si el tipo es uno de los valores cerrados.
func (t MovementType) Valid() bool {
	switch t {
	case MovementIn, MovementOut, MovementAdjustment:
		return true
	}
	return false
}

// InventoryMovement representa un movimiento de inventario de un producto.
// El stock actual de un producto es la suma de los efectos con signo de todos
// sus movimientos, independiente del orden.
type InventoryMovement struct {
	ID        string
	ProductID string
	Type      MovementType
	Quantity  int // siempre positivo; el signo lo aporta el tipo
	Reason    string
	CreatedBy string
	CreatedAt time.Time
}

// SignedQuantity devuelve el efecto del movimiento sobre el stock:
// +Quantity para IN y ADJUSTMENT, -Quantity para OUT.
func (m InventoryMovement) SignedQuantity() int {
	if m.Type == MovementOut {
		return -m.Quantity
	}
	return m.Quantity
}

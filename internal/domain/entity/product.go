package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// MinStock es el umbral mínimo configurado por el operador (siempre >= 0);
// el stock actual no se persiste: se deriva de los movimientos de inventario.
type Product struct {
	ID          string
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal // costo unitario
	Category    string
	MinStock    int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

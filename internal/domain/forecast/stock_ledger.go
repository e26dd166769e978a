package forecast

import "github.com/tu-usuario/retailflow-erp/internal/domain/entity"

// CurrentStock calcula la existencia actual de un producto como la suma de los
// efectos con signo de todos sus movimientos (+IN, +ADJUSTMENT, -OUT).
// La suma es conmutativa: el orden de los movimientos no altera el resultado.
// Sin movimientos devuelve 0; nunca es un error.
func CurrentStock(movements []entity.InventoryMovement) int {
	total := 0
	for _, m := range movements {
		total += m.SignedQuantity()
	}
	return total
}

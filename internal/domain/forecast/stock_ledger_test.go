package forecast_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/retailflow-erp/internal/domain/entity"
	"github.com/tu-usuario/retailflow-erp/internal/domain/forecast"
)

func mov(t entity.MovementType, qty int) entity.InventoryMovement {
	return entity.InventoryMovement{Type: t, Quantity: qty}
}

func TestCurrentStock_SinMovimientos(t *testing.T) {
	assert.Equal(t, 0, forecast.CurrentStock(nil),
		"sin movimientos el stock debe ser cero, no un error")
}

func TestCurrentStock_SumaConSigno(t *testing.T) {
	movements := []entity.InventoryMovement{
		mov(entity.MovementIn, 100),
		mov(entity.MovementOut, 30),
		mov(entity.MovementAdjustment, 5),
	}
	assert.Equal(t, 75, forecast.CurrentStock(movements))
}

// El stock puede quedar negativo si las salidas superan las entradas
// (ventas registradas antes que la recepción); no se recorta a cero.
func TestCurrentStock_PuedeSerNegativo(t *testing.T) {
	movements := []entity.InventoryMovement{
		mov(entity.MovementIn, 10),
		mov(entity.MovementOut, 25),
	}
	assert.Equal(t, -15, forecast.CurrentStock(movements))
}

// La suma es conmutativa: cualquier permutación del historial produce el
// mismo stock.
func TestCurrentStock_IndependienteDelOrden(t *testing.T) {
	movements := []entity.InventoryMovement{
		mov(entity.MovementIn, 40),
		mov(entity.MovementOut, 12),
		mov(entity.MovementAdjustment, 3),
		mov(entity.MovementOut, 7),
		mov(entity.MovementIn, 15),
	}
	want := forecast.CurrentStock(movements)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]entity.InventoryMovement, len(movements))
		copy(shuffled, movements)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, forecast.CurrentStock(shuffled),
			"el orden de los movimientos no debe alterar el stock")
	}
}

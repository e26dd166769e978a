// Comando seed: carga datos de demostración para probar los motores de
// pronóstico contra una base realista (productos, clientes, ventas de los
// últimos meses, compras pendientes y transacciones de caja).
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retailflow-erp/internal/infrastructure/postgres"
	"github.com/tu-usuario/retailflow-erp/pkg/config"
	"github.com/tu-usuario/retailflow-erp/pkg/logger"
)

type seedProduct struct {
	id       uuid.UUID
	sku      string
	name     string
	price    decimal.Decimal
	cost     decimal.Decimal
	category string
	minStock int
	// ventas semanales aproximadas para generar el historial
	weeklySales int
	// stock inicial recibido en la primera carga
	initialStock int
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones de base de datos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	rng := rand.New(rand.NewSource(42))
	now := time.Now()

	if err := seed(ctx, pool, rng, now); err != nil {
		log.Fatal().Err(err).Msg("carga de datos de demostración")
	}

	log.Info().Msg("datos de demostración cargados")
}

func seed(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, now time.Time) error {
	products := []seedProduct{
		{id: uuid.New(), sku: "CAF-001", name: "Café de origen 500g", price: dec("32000"), cost: dec("18000"), category: "Alimentos", minStock: 20, weeklySales: 25, initialStock: 140},
		{id: uuid.New(), sku: "CAF-002", name: "Café molido 250g", price: dec("18000"), cost: dec("9500"), category: "Alimentos", minStock: 15, weeklySales: 18, initialStock: 90},
		{id: uuid.New(), sku: "ACC-010", name: "Prensa francesa 600ml", price: dec("85000"), cost: dec("52000"), category: "Accesorios", minStock: 5, weeklySales: 3, initialStock: 30},
		{id: uuid.New(), sku: "ACC-011", name: "Molino manual", price: dec("120000"), cost: dec("74000"), category: "Accesorios", minStock: 4, weeklySales: 2, initialStock: 18},
		{id: uuid.New(), sku: "TEA-001", name: "Té verde 100g", price: dec("15000"), cost: dec("7000"), category: "Alimentos", minStock: 10, weeklySales: 0, initialStock: 40},
	}

	for _, p := range products {
		_, err := pool.Exec(ctx, `
			INSERT INTO products (id, sku, name, price, cost, category, min_stock, active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
			ON CONFLICT (sku) DO NOTHING`,
			p.id, p.sku, p.name, p.price, p.cost, p.category, p.minStock)
		if err != nil {
			return fmt.Errorf("producto %s: %w", p.sku, err)
		}
	}

	supplierID := uuid.New()
	if _, err := pool.Exec(ctx, `
		INSERT INTO suppliers (id, name, contact_name, email, phone, active)
		VALUES ($1, 'Tostadores del Valle', 'Marcela Ríos', 'ventas@tostadoresdelvalle.co', '+57 300 555 0101', TRUE)`,
		supplierID); err != nil {
		return fmt.Errorf("proveedor: %w", err)
	}

	customers := []struct {
		id   uuid.UUID
		name string
		// órdenes por mes aproximadas; 0 = cliente inactivo
		ordersPerMonth int
	}{
		{uuid.New(), "Cafetería La Esquina", 6},
		{uuid.New(), "Hotel Mirador", 3},
		{uuid.New(), "Restaurante Andino", 1},
		{uuid.New(), "Oficinas Nexo", 0},
	}
	for _, c := range customers {
		if _, err := pool.Exec(ctx, `
			INSERT INTO customers (id, name, email)
			VALUES ($1, $2, $3)`,
			c.id, c.name, emailFor(c.name)); err != nil {
			return fmt.Errorf("cliente %s: %w", c.name, err)
		}
	}

	// Stock inicial: un movimiento IN por producto hace 120 días.
	entryDate := now.AddDate(0, 0, -120)
	for _, p := range products {
		if _, err := pool.Exec(ctx, `
			INSERT INTO inventory_movements (id, product_id, type, quantity, reason, created_by, created_at)
			VALUES ($1, $2, 'IN', $3, 'Carga inicial', 'seed', $4)`,
			uuid.New(), p.id, p.initialStock, entryDate); err != nil {
			return fmt.Errorf("movimiento inicial %s: %w", p.sku, err)
		}
	}

	// Historial de ventas de los últimos 90 días: órdenes entregadas con sus
	// líneas, la salida de inventario y el ingreso de caja correspondiente.
	orderSeq := 1
	for day := 90; day >= 1; day-- {
		date := now.AddDate(0, 0, -day)
		for _, c := range customers {
			if c.ordersPerMonth == 0 {
				continue
			}
			// probabilidad diaria derivada de la frecuencia mensual
			if rng.Intn(30) >= c.ordersPerMonth {
				continue
			}

			orderID := uuid.New()
			total := decimal.Zero
			type line struct {
				p   seedProduct
				qty int
			}
			var lines []line
			for _, p := range products {
				if p.weeklySales == 0 {
					continue
				}
				qty := 1 + rng.Intn(maxInt(1, p.weeklySales/4))
				lines = append(lines, line{p: p, qty: qty})
				total = total.Add(p.price.Mul(decimal.NewFromInt(int64(qty))))
			}

			if _, err := pool.Exec(ctx, `
				INSERT INTO sales_orders (id, order_number, customer_id, status, total, order_date)
				VALUES ($1, $2, $3, 'DELIVERED', $4, $5)`,
				orderID, fmt.Sprintf("SO-%05d", orderSeq), c.id, total, date); err != nil {
				return fmt.Errorf("orden de venta %d: %w", orderSeq, err)
			}
			orderSeq++

			for _, l := range lines {
				subtotal := l.p.price.Mul(decimal.NewFromInt(int64(l.qty)))
				if _, err := pool.Exec(ctx, `
					INSERT INTO sales_order_lines (id, order_id, product_id, quantity, unit_price, subtotal)
					VALUES ($1, $2, $3, $4, $5, $6)`,
					uuid.New(), orderID, l.p.id, l.qty, l.p.price, subtotal); err != nil {
					return fmt.Errorf("línea de venta: %w", err)
				}
				if _, err := pool.Exec(ctx, `
					INSERT INTO inventory_movements (id, product_id, type, quantity, reason, created_by, created_at)
					VALUES ($1, $2, 'OUT', $3, 'Venta', 'seed', $4)`,
					uuid.New(), l.p.id, l.qty, date); err != nil {
					return fmt.Errorf("salida de inventario: %w", err)
				}
			}

			if _, err := pool.Exec(ctx, `
				INSERT INTO transactions (id, type, amount, category, description, order_id, date)
				VALUES ($1, 'INCOME', $2, 'Ventas', 'Cobro de orden', $3, $4)`,
				uuid.New(), total, orderID, date); err != nil {
				return fmt.Errorf("transacción de venta: %w", err)
			}
		}
	}

	// Gastos recurrentes: arriendo el día 1 y nómina el día 28 de cada mes.
	for m := 3; m >= 1; m-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location()).AddDate(0, -m, 0)
		if _, err := pool.Exec(ctx, `
			INSERT INTO transactions (id, type, amount, category, description, date)
			VALUES ($1, 'EXPENSE', $2, 'Arriendo', 'Arriendo del local', $3)`,
			uuid.New(), dec("2800000"), monthStart); err != nil {
			return fmt.Errorf("arriendo: %w", err)
		}
		payday := monthStart.AddDate(0, 0, 27)
		if _, err := pool.Exec(ctx, `
			INSERT INTO transactions (id, type, amount, category, description, date)
			VALUES ($1, 'EXPENSE', $2, 'Nómina', 'Pago de nómina', $3)`,
			uuid.New(), dec("4500000"), payday); err != nil {
			return fmt.Errorf("nómina: %w", err)
		}
	}

	// Órdenes abiertas que alimentan la proyección: ventas pendientes de
	// cobro y una compra aprobada por pagar.
	pendingSale := uuid.New()
	if _, err := pool.Exec(ctx, `
		INSERT INTO sales_orders (id, order_number, customer_id, status, total, order_date)
		VALUES ($1, $2, $3, 'CONFIRMED', $4, $5)`,
		pendingSale, fmt.Sprintf("SO-%05d", orderSeq), customers[0].id, dec("1250000"), now.AddDate(0, 0, -1)); err != nil {
		return fmt.Errorf("venta confirmada: %w", err)
	}
	orderSeq++
	if _, err := pool.Exec(ctx, `
		INSERT INTO sales_orders (id, order_number, customer_id, status, total, order_date)
		VALUES ($1, $2, $3, 'PENDING', $4, $5)`,
		uuid.New(), fmt.Sprintf("SO-%05d", orderSeq), customers[1].id, dec("640000"), now); err != nil {
		return fmt.Errorf("venta pendiente: %w", err)
	}

	expected := now.AddDate(0, 0, 10)
	if _, err := pool.Exec(ctx, `
		INSERT INTO purchase_orders (id, order_number, supplier_id, status, total, order_date, expected_date)
		VALUES ($1, 'PO-00001', $2, 'APPROVED', $3, $4, $5)`,
		uuid.New(), supplierID, dec("3200000"), now.AddDate(0, 0, -2), expected); err != nil {
		return fmt.Errorf("orden de compra: %w", err)
	}

	return nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("seed: monto inválido: " + s)
	}
	return d
}

func emailFor(name string) string {
	return fmt.Sprintf("contacto+%d@retailflow.demo", len(name))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

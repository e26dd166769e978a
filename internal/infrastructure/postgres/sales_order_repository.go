package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/retailflow-erp/internal/domain/entity"
	"github.com/tu-usuario/retailflow-erp/internal/domain/forecast"
	"github.com/tu-usuario/retailflow-erp/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo adaptador de lectura de órdenes de venta.
type SalesOrderRepo struct {
	pool *pgxpool.Pool
}

// NewSalesOrderRepository construye el adaptador.
func NewSalesOrderRepository(pool *pgxpool.Pool) *SalesOrderRepo {
	return &SalesOrderRepo{pool: pool}
}

const salesOrderColumns = `id, order_number, customer_id, status, total, notes, order_date, created_at, updated_at`

// ListByStatuses devuelve las órdenes (sin líneas) en cualquiera de los estados dados.
func (r *SalesOrderRepo) ListByStatuses(ctx context.Context, statuses []entity.OrderStatus) ([]entity.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders WHERE status = ANY($1) ORDER BY order_date`

	rows, err := r.pool.Query(ctx, query, statusStrings(statuses))
	if err != nil {
		return nil, fmt.Errorf("salesOrders.ListByStatuses: %w", err)
	}
	defer rows.Close()
	return scanSalesOrders(rows)
}

// ListByCustomer devuelve el historial completo de un cliente, más reciente primero.
func (r *SalesOrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]entity.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders WHERE customer_id = $1 ORDER BY order_date DESC`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("salesOrders.ListByCustomer: %w", err)
	}
	defer rows.Close()
	return scanSalesOrders(rows)
}

// SalesSince devuelve pares fecha/cantidad de líneas en órdenes confirmadas,
// embarcadas o entregadas con order_date >= since.
func (r *SalesOrderRepo) SalesSince(ctx context.Context, productID string, since time.Time) ([]forecast.SalePoint, error) {
	const query = `
	SELECT o.order_date, l.quantity
	FROM sales_order_lines l
	JOIN sales_orders o ON o.id = l.order_id
	WHERE l.product_id = $1
	  AND o.status = ANY($2)
	  AND o.order_date >= $3
	ORDER BY o.order_date`

	rows, err := r.pool.Query(ctx, query, productID, fulfilledStatusStrings(), since)
	if err != nil {
		return nil, fmt.Errorf("salesOrders.SalesSince: %w", err)
	}
	defer rows.Close()
	return scanSalePoints(rows)
}

// RecentSales devuelve hasta limit pares fecha/cantidad de las líneas más
// recientes en órdenes confirmadas, embarcadas o entregadas.
func (r *SalesOrderRepo) RecentSales(ctx context.Context, productID string, limit int) ([]forecast.SalePoint, error) {
	const query = `
	SELECT o.order_date, l.quantity
	FROM sales_order_lines l
	JOIN sales_orders o ON o.id = l.order_id
	WHERE l.product_id = $1
	  AND o.status = ANY($2)
	ORDER BY o.order_date DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, productID, fulfilledStatusStrings(), limit)
	if err != nil {
		return nil, fmt.Errorf("salesOrders.RecentSales: %w", err)
	}
	defer rows.Close()
	return scanSalePoints(rows)
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanSalesOrders(rows pgxRows) ([]entity.SalesOrder, error) {
	var orders []entity.SalesOrder
	for rows.Next() {
		var o entity.SalesOrder
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.CustomerID, &o.Status, &o.Total,
			&o.Notes, &o.OrderDate, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("salesOrders scan: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func scanSalePoints(rows pgxRows) ([]forecast.SalePoint, error) {
	var points []forecast.SalePoint
	for rows.Next() {
		var p forecast.SalePoint
		if err := rows.Scan(&p.Date, &p.Quantity); err != nil {
			return nil, fmt.Errorf("salePoints scan: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func statusStrings(statuses []entity.OrderStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func fulfilledStatusStrings() []string {
	return statusStrings(entity.FulfilledStatuses())
}

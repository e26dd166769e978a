package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appforecast "github.com/tu-usuario/retailflow-erp/internal/application/forecast"
	"github.com/tu-usuario/retailflow-erp/internal/domain/entity"
	domforecast "github.com/tu-usuario/retailflow-erp/internal/domain/forecast"
	apphttp "github.com/tu-usuario/retailflow-erp/internal/interfaces/http"
	"github.com/tu-usuario/retailflow-erp/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de repositorios: datos vacíos, suficientes para ejercitar las rutas
// ──────────────────────────────────────────────────────────────────────────────

type stubTxRepo struct{ balance decimal.Decimal }

func (s stubTxRepo) Balance(context.Context) (decimal.Decimal, error) { return s.balance, nil }
func (s stubTxRepo) ListSince(context.Context, time.Time) ([]entity.Transaction, error) {
	return nil, nil
}

type stubSalesRepo struct{}

func (stubSalesRepo) ListByStatuses(context.Context, []entity.OrderStatus) ([]entity.SalesOrder, error) {
	return nil, nil
}
func (stubSalesRepo) ListByCustomer(context.Context, string) ([]entity.SalesOrder, error) {
	return nil, nil
}
func (stubSalesRepo) SalesSince(context.Context, string, time.Time) ([]domforecast.SalePoint, error) {
	return nil, nil
}
func (stubSalesRepo) RecentSales(context.Context, string, int) ([]domforecast.SalePoint, error) {
	return nil, nil
}

type stubPurchaseRepo struct{}

func (stubPurchaseRepo) ListByStatuses(context.Context, []entity.PurchaseOrderStatus) ([]entity.PurchaseOrder, error) {
	return nil, nil
}

type stubProductRepo struct{}

func (stubProductRepo) GetByID(context.Context, string) (*entity.Product, error) { return nil, nil }
func (stubProductRepo) ListActive(context.Context) ([]entity.Product, error)     { return nil, nil }

type stubMovementRepo struct{}

func (stubMovementRepo) ListByProduct(context.Context, string) ([]entity.InventoryMovement, error) {
	return nil, nil
}

type stubCustomerRepo struct{}

func (stubCustomerRepo) ListAll(context.Context) ([]entity.Customer, error) { return nil, nil }

func buildTestApp() *fiber.App {
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CashFlowUC: appforecast.NewCashFlowUseCase(
			stubTxRepo{balance: decimal.NewFromInt(5000)}, stubSalesRepo{}, stubPurchaseRepo{}),
		ReorderUC: appforecast.NewReorderUseCase(
			stubProductRepo{}, stubMovementRepo{}, stubSalesRepo{}),
		CustomerHealthUC: appforecast.NewCustomerHealthUseCase(
			stubCustomerRepo{}, stubSalesRepo{}),
		Logger: log,
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NoError(t, resp.Body.Close())
	return resp, body
}

func TestRutaHealth(t *testing.T) {
	app := buildTestApp()
	resp, body := doGet(t, app, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestCashFlow_Respuesta(t *testing.T) {
	app := buildTestApp()
	resp, body := doGet(t, app, "/api/forecast/cash-flow?days=30")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	forecast, ok := body["forecast"].([]interface{})
	require.True(t, ok, "forecast debe ser una lista")
	assert.Len(t, forecast, 30, "un punto por día del horizonte")

	day := forecast[0].(map[string]interface{})
	assert.Contains(t, day, "projectedBalance")
	assert.Contains(t, day, "confidence")
	assert.NotNil(t, day["alerts"], "alerts nunca es null")
	assert.Contains(t, body, "warnings")
	assert.Contains(t, body, "insights")
}

func TestCashFlow_DaysObligatorio(t *testing.T) {
	app := buildTestApp()

	resp, body := doGet(t, app, "/api/forecast/cash-flow")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])

	resp, body = doGet(t, app, "/api/forecast/cash-flow?days=banana")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestCashFlow_HorizonteFueraDeRango(t *testing.T) {
	app := buildTestApp()
	for _, q := range []string{"days=6", "days=181"} {
		resp, body := doGet(t, app, "/api/forecast/cash-flow?"+q)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
		assert.Equal(t, "VALIDATION", body["code"], q)
	}
}

func TestReorderSuggestions_SinProductos(t *testing.T) {
	app := buildTestApp()
	resp, body := doGet(t, app, "/api/inventory/reorder-suggestions")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	suggestions, ok := body["suggestions"].([]interface{})
	require.True(t, ok, "suggestions debe ser una lista aunque esté vacía")
	assert.Empty(t, suggestions)
	assert.Contains(t, body, "summary")
}

func TestCustomerHealth_SinClientes(t *testing.T) {
	app := buildTestApp()
	resp, body := doGet(t, app, "/api/customers/health")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	customers, ok := body["customers"].([]interface{})
	require.True(t, ok, "customers debe ser una lista aunque esté vacía")
	assert.Empty(t, customers)
}

func TestExportReorder_DescargaXLSX(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(http.MethodGet, "/api/inventory/reorder-suggestions/export", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "reposicion.xlsx")
}

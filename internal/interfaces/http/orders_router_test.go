package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Axioma-api/internal/application/dto"
	"github.com/jhoicas/Axioma-api/internal/application/orders"
	"github.com/jhoicas/Axioma-api/internal/application/usecase"
	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/jhoicas/Axioma-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Axioma-api/internal/interfaces/http"
	"github.com/jhoicas/Axioma-api/pkg/logger"
)

const (
	testCustomerID = "00000000-0000-0000-0000-0000000000c1"
	testProductID  = "00000000-0000-0000-0000-0000000000b1"
)

// memSales almacén de ventas para las rutas de órdenes. Sin rollback: los casos de error fallan antes de escribir.
type memSales struct {
	products *memProducts
	entities map[string]entity.BusinessEntity
	orders   map[string]entity.Order
	items    []entity.OrderItem
	payments []entity.Payment
}

func newMemSales() *memSales {
	m := &memSales{
		products: &memProducts{byID: map[string]entity.Product{}},
		entities: map[string]entity.BusinessEntity{},
		orders:   map[string]entity.Order{},
	}
	m.entities[testCustomerID] = entity.BusinessEntity{ID: testCustomerID, OrganizationID: testOrgID, Type: entity.EntityTypeClient, CommercialName: "Cafetería Luna"}
	m.products.byID[testProductID] = entity.Product{ID: testProductID, OrganizationID: testOrgID, Name: "Pan de caja", Type: entity.ProductTypeProduct, Price: decimal.NewFromInt(100), Stock: decimal.NewFromInt(3)}
	return m
}

func (m *memSales) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	return fn(m.products, memOrders{m}, memPayments{m})
}

type memEntities struct{ m *memSales }

func (r memEntities) Create(_ context.Context, e *entity.BusinessEntity) error {
	r.m.entities[e.ID] = *e
	return nil
}

func (r memEntities) GetByID(_ context.Context, orgID, id string) (*entity.BusinessEntity, error) {
	e, ok := r.m.entities[id]
	if !ok || e.OrganizationID != orgID {
		return nil, nil
	}
	return &e, nil
}

func (r memEntities) ListByOrganization(context.Context, string, []string, int, int) ([]*entity.BusinessEntity, error) {
	return nil, nil
}

type memOrders struct{ m *memSales }

func (r memOrders) Create(_ context.Context, o *entity.Order) error {
	r.m.orders[o.ID] = *o
	return nil
}

func (r memOrders) CreateItem(_ context.Context, it *entity.OrderItem) error {
	r.m.items = append(r.m.items, *it)
	return nil
}

func (r memOrders) GetByID(_ context.Context, orgID, id string) (*entity.Order, error) {
	o, ok := r.m.orders[id]
	if !ok || o.OrganizationID != orgID {
		return nil, nil
	}
	o.EntityName = r.m.entities[o.EntityID].CommercialName
	return &o, nil
}

func (r memOrders) GetForUpdate(ctx context.Context, orgID, id string) (*entity.Order, error) {
	return r.GetByID(ctx, orgID, id)
}

func (r memOrders) GetItems(_ context.Context, orderID string) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, it := range r.m.items {
		if it.OrderID == orderID {
			it := it
			it.ProductName = r.m.products.byID[it.ProductID].Name
			out = append(out, &it)
		}
	}
	return out, nil
}

func (r memOrders) ListByOrganization(context.Context, string, int, int) ([]*entity.Order, error) {
	return nil, nil
}

func (r memOrders) UpdateTotal(_ context.Context, id string, total decimal.Decimal) error {
	o := r.m.orders[id]
	o.TotalAmount = total
	r.m.orders[id] = o
	return nil
}

func (r memOrders) UpdateStatus(_ context.Context, id, status string) error {
	o := r.m.orders[id]
	o.Status = status
	r.m.orders[id] = o
	return nil
}

func (r memOrders) UpdatePaymentStatus(_ context.Context, id, ps string) error {
	o := r.m.orders[id]
	o.PaymentStatus = ps
	r.m.orders[id] = o
	return nil
}

func (r memOrders) Delete(_ context.Context, id string) error {
	delete(r.m.orders, id)
	return nil
}

type memPayments struct{ m *memSales }

func (r memPayments) Create(_ context.Context, p *entity.Payment) error {
	r.m.payments = append(r.m.payments, *p)
	return nil
}

func (r memPayments) SumByOrder(_ context.Context, orderID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range r.m.payments {
		if p.OrderID == orderID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

func (r memPayments) CountByOrder(_ context.Context, orderID string) (int, error) {
	n := 0
	for _, p := range r.m.payments {
		if p.OrderID == orderID {
			n++
		}
	}
	return n, nil
}

func (r memPayments) ListByOrder(_ context.Context, orderID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.m.payments {
		if p.OrderID == orderID {
			p := p
			out = append(out, &p)
		}
	}
	return out, nil
}

func newSalesApp(m *memSales) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC: usecase.NewProductUseCase(m.products),
		OrderUC:   orders.NewOrderUseCase(m, memEntities{m}, m.products, memOrders{m}, memPayments{m}, nil, logger.Nop()),
		PaymentUC: orders.NewPaymentUseCase(m, nil, logger.Nop()),
		Resolver:  fakeResolver{},
		JWTSecret: testJWTSecret,
		LoginURL:  testLoginURL,
		Logger:    logger.Nop(),
	})
	return app
}

func orderBody(qty string) string {
	return fmt.Sprintf(`{"entity_id":%q,"items":[{"product_id":%q,"quantity":%q,"unit_price":"100"}]}`, testCustomerID, testProductID, qty)
}

func createOrder(t *testing.T, app *fiber.App, qty string) dto.OrderDetailResponse {
	t.Helper()
	resp := do(t, app, jsonRequest(t, http.MethodPost, "/api/orders", orderBody(qty)))
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.OrderDetailResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRouter_OrderLifecycle(t *testing.T) {
	m := newMemSales()
	app := newSalesApp(m)

	created := createOrder(t, app, "2")
	assert.True(t, created.TotalAmount.Equal(decimal.RequireFromString("232")))
	assert.True(t, m.products.byID[testProductID].Stock.Equal(decimal.NewFromInt(1)))

	resp := do(t, app, jsonRequest(t, http.MethodGet, "/api/orders/"+created.ID, ``))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var detail dto.OrderDetailResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
	resp.Body.Close()
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "Pan de caja", detail.Items[0].ProductName)

	resp = do(t, app, jsonRequest(t, http.MethodPatch, "/api/orders/"+created.ID+"/status", `{"status":"CANCELLED"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.True(t, m.products.byID[testProductID].Stock.Equal(decimal.NewFromInt(3)))

	resp = do(t, app, jsonRequest(t, http.MethodDelete, "/api/orders/"+created.ID, ``))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
	assert.True(t, m.products.byID[testProductID].Stock.Equal(decimal.NewFromInt(3)), "ya cancelada: no devuelve dos veces")
}

func TestRouter_OrderErrors(t *testing.T) {
	t.Run("stock insuficiente", func(t *testing.T) {
		m := newMemSales()
		resp := do(t, newSalesApp(m), jsonRequest(t, http.MethodPost, "/api/orders", orderBody("5")))
		defer resp.Body.Close()

		require.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "INSUFFICIENT_STOCK", decodeError(t, resp).Code)
		assert.Empty(t, m.orders)
	})

	t.Run("cantidad con tres decimales", func(t *testing.T) {
		m := newMemSales()
		resp := do(t, newSalesApp(m), jsonRequest(t, http.MethodPost, "/api/orders", orderBody("1.005")))
		defer resp.Body.Close()

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION", body.Code)
		assert.Contains(t, body.Fields, "items[0].quantity")
	})

	t.Run("destino DRAFT", func(t *testing.T) {
		m := newMemSales()
		app := newSalesApp(m)
		created := createOrder(t, app, "1")

		resp := do(t, app, jsonRequest(t, http.MethodPatch, "/api/orders/"+created.ID+"/status", `{"status":"DRAFT"}`))
		defer resp.Body.Close()

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION", body.Code)
		assert.Contains(t, body.Fields, "status")
	})

	t.Run("orden de otra organización", func(t *testing.T) {
		resp := do(t, newSalesApp(newMemSales()), jsonRequest(t, http.MethodGet, "/api/orders/00000000-0000-0000-0000-0000000000ff", ``))
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
	})
}

func TestRouter_Payments(t *testing.T) {
	m := newMemSales()
	app := newSalesApp(m)
	created := createOrder(t, app, "1") // total 116

	resp := do(t, app, jsonRequest(t, http.MethodPost, "/api/orders/"+created.ID+"/payments", `{"amount":"50","method":"CASH"}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var paid dto.RegisterPaymentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&paid))
	resp.Body.Close()
	assert.Equal(t, entity.PaymentStatusPartial, paid.PaymentStatus)
	assert.True(t, paid.Balance.Equal(decimal.NewFromInt(66)))

	resp = do(t, app, jsonRequest(t, http.MethodPost, "/api/orders/"+created.ID+"/payments", `{"amount":"70","method":"CASH"}`))
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "PAYMENT_EXCEEDS_BALANCE", decodeError(t, resp).Code)
	resp.Body.Close()
	assert.Len(t, m.payments, 1)
	assert.Equal(t, entity.PaymentStatusPartial, m.orders[created.ID].PaymentStatus)

	resp = do(t, app, jsonRequest(t, http.MethodPost, "/api/orders/"+created.ID+"/payments", `{"amount":"10","method":"CHEQUE"}`))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp)
	resp.Body.Close()
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Fields, "method")

	resp = do(t, app, jsonRequest(t, http.MethodPost, "/api/orders/"+created.ID+"/payments", `{"amount":"66","method":"TRANSFER","reference":"SPEI-1"}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, entity.PaymentStatusPaid, m.orders[created.ID].PaymentStatus)

	resp = do(t, app, jsonRequest(t, http.MethodPatch, "/api/orders/"+created.ID+"/status", `{"status":"CANCELLED"}`))
	defer resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", decodeError(t, resp).Code, "una orden pagada no se cancela")
}

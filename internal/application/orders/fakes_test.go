package orders_test

import (
	"context"
	"sort"

	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/jhoicas/Axioma-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// store base de datos en memoria. El fakeTx trabaja sobre una copia y solo la publica si fn no falla.
type store struct {
	entities map[string]entity.BusinessEntity
	products map[string]entity.Product
	orders   map[string]entity.Order
	items    []entity.OrderItem
	payments []entity.Payment
	orgs     map[string]entity.Organization

	// onLock se ejecuta al bloquear productos (simula cambios concurrentes entre lectura y bloqueo).
	onLock func(s *store)
}

func newStore() *store {
	return &store{
		entities: map[string]entity.BusinessEntity{},
		products: map[string]entity.Product{},
		orders:   map[string]entity.Order{},
		orgs:     map[string]entity.Organization{},
	}
}

func (s *store) clone() *store {
	c := newStore()
	for k, v := range s.entities {
		c.entities[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.orders {
		c.orders[k] = v
	}
	for k, v := range s.orgs {
		c.orgs[k] = v
	}
	c.items = append([]entity.OrderItem(nil), s.items...)
	c.payments = append([]entity.Payment(nil), s.payments...)
	c.onLock = s.onLock
	return c
}

type fakeTx struct {
	s *store
}

func (f *fakeTx) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	c := f.s.clone()
	if err := fn(&fakeProducts{c}, &fakeOrders{c}, &fakePayments{c}); err != nil {
		return err
	}
	*f.s = *c
	return nil
}

// ── entidades ────────────────────────────────────────────────────────────────

type fakeEntities struct{ s *store }

func (f *fakeEntities) Create(_ context.Context, e *entity.BusinessEntity) error {
	f.s.entities[e.ID] = *e
	return nil
}

func (f *fakeEntities) GetByID(_ context.Context, orgID, id string) (*entity.BusinessEntity, error) {
	e, ok := f.s.entities[id]
	if !ok || e.OrganizationID != orgID {
		return nil, nil
	}
	return &e, nil
}

func (f *fakeEntities) ListByOrganization(context.Context, string, []string, int, int) ([]*entity.BusinessEntity, error) {
	return nil, nil
}

// ── productos ────────────────────────────────────────────────────────────────

type fakeProducts struct{ s *store }

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) error {
	f.s.products[p.ID] = *p
	return nil
}

func (f *fakeProducts) GetByID(_ context.Context, orgID, id string) (*entity.Product, error) {
	p, ok := f.s.products[id]
	if !ok || p.OrganizationID != orgID {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProducts) GetForUpdate(_ context.Context, orgID string, ids []string) ([]*entity.Product, error) {
	if f.s.onLock != nil {
		f.s.onLock(f.s)
	}
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	var out []*entity.Product
	for _, id := range sorted {
		if p, ok := f.s.products[id]; ok && p.OrganizationID == orgID {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProducts) Update(_ context.Context, p *entity.Product, stock *decimal.Decimal) error {
	cp := *p
	cp.Stock = f.s.products[p.ID].Stock
	if stock != nil {
		cp.Stock = *stock
	}
	f.s.products[p.ID] = cp
	return nil
}

func (f *fakeProducts) UpdateStock(_ context.Context, id string, stock decimal.Decimal) error {
	p := f.s.products[id]
	p.Stock = stock
	f.s.products[id] = p
	return nil
}

func (f *fakeProducts) Archive(_ context.Context, orgID, id string) (bool, error) {
	p, ok := f.s.products[id]
	if !ok || p.OrganizationID != orgID {
		return false, nil
	}
	p.Archived = true
	f.s.products[id] = p
	return true, nil
}

func (f *fakeProducts) ListActive(context.Context, string, int, int) ([]*entity.Product, error) {
	return nil, nil
}

// ── órdenes ──────────────────────────────────────────────────────────────────

type fakeOrders struct{ s *store }

func (f *fakeOrders) Create(_ context.Context, o *entity.Order) error {
	f.s.orders[o.ID] = *o
	return nil
}

func (f *fakeOrders) CreateItem(_ context.Context, it *entity.OrderItem) error {
	f.s.items = append(f.s.items, *it)
	return nil
}

func (f *fakeOrders) GetByID(_ context.Context, orgID, id string) (*entity.Order, error) {
	o, ok := f.s.orders[id]
	if !ok || o.OrganizationID != orgID {
		return nil, nil
	}
	o.EntityName = f.s.entities[o.EntityID].CommercialName
	return &o, nil
}

func (f *fakeOrders) GetForUpdate(ctx context.Context, orgID, id string) (*entity.Order, error) {
	return f.GetByID(ctx, orgID, id)
}

func (f *fakeOrders) GetItems(_ context.Context, orderID string) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, it := range f.s.items {
		if it.OrderID == orderID {
			cp := it
			cp.ProductName = f.s.products[it.ProductID].Name
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrders) ListByOrganization(_ context.Context, orgID string, _, _ int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.s.orders {
		if o.OrganizationID == orgID {
			cp := o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrders) UpdateTotal(_ context.Context, id string, total decimal.Decimal) error {
	o := f.s.orders[id]
	o.TotalAmount = total
	f.s.orders[id] = o
	return nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id, status string) error {
	o := f.s.orders[id]
	o.Status = status
	f.s.orders[id] = o
	return nil
}

func (f *fakeOrders) UpdatePaymentStatus(_ context.Context, id, ps string) error {
	o := f.s.orders[id]
	o.PaymentStatus = ps
	f.s.orders[id] = o
	return nil
}

func (f *fakeOrders) Delete(_ context.Context, id string) error {
	kept := f.s.items[:0]
	for _, it := range f.s.items {
		if it.OrderID != id {
			kept = append(kept, it)
		}
	}
	f.s.items = kept
	delete(f.s.orders, id)
	return nil
}

// ── pagos ────────────────────────────────────────────────────────────────────

type fakePayments struct{ s *store }

func (f *fakePayments) Create(_ context.Context, p *entity.Payment) error {
	f.s.payments = append(f.s.payments, *p)
	return nil
}

func (f *fakePayments) SumByOrder(_ context.Context, orderID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range f.s.payments {
		if p.OrderID == orderID {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

func (f *fakePayments) CountByOrder(_ context.Context, orderID string) (int, error) {
	n := 0
	for _, p := range f.s.payments {
		if p.OrderID == orderID {
			n++
		}
	}
	return n, nil
}

func (f *fakePayments) ListByOrder(_ context.Context, orderID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.s.payments {
		if p.OrderID == orderID {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── organizaciones ───────────────────────────────────────────────────────────

type fakeOrgs struct{ s *store }

func (f *fakeOrgs) Create(_ context.Context, o *entity.Organization) error {
	f.s.orgs[o.ID] = *o
	return nil
}

func (f *fakeOrgs) GetByID(_ context.Context, id string) (*entity.Organization, error) {
	o, ok := f.s.orgs[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (f *fakeOrgs) Update(_ context.Context, o *entity.Organization) error {
	f.s.orgs[o.ID] = *o
	return nil
}

func (f *fakeOrgs) UpdateLogo(context.Context, string, string) error { return nil }

// ── caché ────────────────────────────────────────────────────────────────────

type fakeCache struct {
	invalidated map[string]int
}

func (f *fakeCache) Invalidate(_ context.Context, orgID string) error {
	if f.invalidated == nil {
		f.invalidated = map[string]int{}
	}
	f.invalidated[orgID]++
	return nil
}

package usecase_test

import (
	"context"
	"sort"

	"github.com/jhoicas/Axioma-api/internal/domain"
	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/jhoicas/Axioma-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ── organizaciones ───────────────────────────────────────────────────────────

type orgStore struct {
	users       map[string]entity.User
	orgs        map[string]entity.Organization
	memberships []entity.Membership
}

func newOrgStore() *orgStore {
	return &orgStore{users: map[string]entity.User{}, orgs: map[string]entity.Organization{}}
}

func (s *orgStore) clone() *orgStore {
	c := newOrgStore()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.orgs {
		c.orgs[k] = v
	}
	c.memberships = append([]entity.Membership(nil), s.memberships...)
	return c
}

type fakeOnboardingTx struct{ s *orgStore }

func (f *fakeOnboardingTx) RunOnboarding(_ context.Context, fn func(
	userRepo repository.UserRepository,
	orgRepo repository.OrganizationRepository,
	membershipRepo repository.MembershipRepository,
) error) error {
	c := f.s.clone()
	if err := fn(&fakeUsers{c}, &fakeOrgs{c}, &fakeMemberships{c}); err != nil {
		return err
	}
	*f.s = *c
	return nil
}

type fakeUsers struct{ s *orgStore }

func (f *fakeUsers) Create(_ context.Context, u *entity.User) error {
	for _, x := range f.s.users {
		if x.Email != "" && x.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	f.s.users[u.ID] = *u
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) EnsureExists(_ context.Context, id string) error {
	if _, ok := f.s.users[id]; !ok {
		f.s.users[id] = entity.User{ID: id}
	}
	return nil
}

type fakeOrgs struct{ s *orgStore }

func (f *fakeOrgs) Create(_ context.Context, o *entity.Organization) error {
	for _, x := range f.s.orgs {
		if x.Slug == o.Slug {
			return domain.ErrDuplicate
		}
	}
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
	for _, x := range f.s.orgs {
		if x.ID != o.ID && x.Slug == o.Slug {
			return domain.ErrDuplicate
		}
	}
	f.s.orgs[o.ID] = *o
	return nil
}

func (f *fakeOrgs) UpdateLogo(_ context.Context, id, logoURL string) error {
	o, ok := f.s.orgs[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.LogoURL = logoURL
	f.s.orgs[id] = o
	return nil
}

type fakeMemberships struct{ s *orgStore }

func (f *fakeMemberships) Create(_ context.Context, m *entity.Membership) error {
	for _, x := range f.s.memberships {
		if x.UserID == m.UserID && x.OrganizationID == m.OrganizationID {
			return domain.ErrDuplicate
		}
	}
	f.s.memberships = append(f.s.memberships, *m)
	return nil
}

func (f *fakeMemberships) ListByUser(_ context.Context, userID string) ([]*entity.Membership, error) {
	var out []*entity.Membership
	for _, m := range f.s.memberships {
		if m.UserID == userID {
			m := m
			o := f.s.orgs[m.OrganizationID]
			m.OrganizationName, m.OrganizationSlug = o.Name, o.Slug
			out = append(out, &m)
		}
	}
	return out, nil
}

func (f *fakeMemberships) GetByUserAndOrganization(_ context.Context, userID, orgID string) (*entity.Membership, error) {
	for _, m := range f.s.memberships {
		if m.UserID == userID && m.OrganizationID == orgID {
			m := m
			return &m, nil
		}
	}
	return nil, nil
}

func (f *fakeMemberships) ListByOrganization(_ context.Context, orgID string) ([]*entity.Membership, error) {
	var out []*entity.Membership
	for _, m := range f.s.memberships {
		if m.OrganizationID == orgID {
			m := m
			u := f.s.users[m.UserID]
			m.UserEmail, m.UserFullName = u.Email, u.FullName
			out = append(out, &m)
		}
	}
	return out, nil
}

type fakeStorage struct {
	keys        []string
	contentType string
	err         error
}

func (f *fakeStorage) Upload(_ context.Context, key, contentType string, _ []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	f.contentType = contentType
	return "https://cdn.test/" + key, nil
}

// ── catálogo ─────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products    map[string]entity.Product
	updateErr   error
	stockWrites int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	for _, x := range f.products {
		if p.SKU != "" && x.OrganizationID == p.OrganizationID && x.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	f.products[p.ID] = *p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, orgID, id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok || p.OrganizationID != orgID {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProductRepo) GetForUpdate(ctx context.Context, orgID string, ids []string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, _ := f.GetByID(ctx, orgID, id); p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product, stock *decimal.Decimal) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := *p
	cp.Stock = f.products[p.ID].Stock
	if stock != nil {
		cp.Stock = *stock
	}
	f.products[p.ID] = cp
	return nil
}

func (f *fakeProductRepo) UpdateStock(_ context.Context, id string, stock decimal.Decimal) error {
	f.stockWrites++
	p := f.products[id]
	p.Stock = stock
	f.products[id] = p
	return nil
}

func (f *fakeProductRepo) Archive(_ context.Context, orgID, id string) (bool, error) {
	p, ok := f.products[id]
	if !ok || p.OrganizationID != orgID || p.Archived {
		return false, nil
	}
	p.Archived = true
	f.products[id] = p
	return true, nil
}

func (f *fakeProductRepo) ListActive(_ context.Context, orgID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.OrganizationID == orgID && !p.Archived {
			p := p
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeEntityRepo struct {
	list      []entity.BusinessEntity
	lastTypes []string
	lastLimit int
}

func (f *fakeEntityRepo) Create(_ context.Context, e *entity.BusinessEntity) error {
	f.list = append(f.list, *e)
	return nil
}

func (f *fakeEntityRepo) GetByID(_ context.Context, orgID, id string) (*entity.BusinessEntity, error) {
	for _, e := range f.list {
		if e.ID == id && e.OrganizationID == orgID {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeEntityRepo) ListByOrganization(_ context.Context, orgID string, types []string, limit, _ int) ([]*entity.BusinessEntity, error) {
	f.lastTypes, f.lastLimit = types, limit
	var out []*entity.BusinessEntity
	for _, e := range f.list {
		if e.OrganizationID != orgID {
			continue
		}
		if len(types) > 0 && !contains(types, e.Type) {
			continue
		}
		e := e
		out = append(out, &e)
	}
	return out, nil
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

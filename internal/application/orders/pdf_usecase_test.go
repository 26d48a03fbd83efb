package orders_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jhoicas/Axioma-api/internal/application/dto"
	"github.com/jhoicas/Axioma-api/internal/application/orders"
	"github.com/jhoicas/Axioma-api/internal/domain"
	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureGenerator struct {
	doc *orders.OrderDocument
}

func (g *captureGenerator) GenerateOrderPDF(_ context.Context, doc *orders.OrderDocument) ([]byte, error) {
	g.doc = doc
	return []byte("%PDF-1.3"), nil
}

func TestDownloadOrderPDF(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created, err := f.orders.CreateOrder(ctx, tc, standardOrder())
	require.NoError(t, err)
	_, err = f.pay.RegisterPayment(ctx, tc, created.ID, dto.RegisterPaymentRequest{Amount: dec("90"), Method: entity.PaymentMethodCash})
	require.NoError(t, err)

	gen := &captureGenerator{}
	uc := orders.NewPDFUseCase(&fakeOrgs{f.s}, &fakeEntities{f.s}, &fakeOrders{f.s}, &fakePayments{f.s}, gen)
	data, filename, err := uc.DownloadOrderPDF(ctx, tc, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "%PDF-1.3", string(data))
	assert.Equal(t, "orden_"+strings.ToUpper(created.ID[:8])+".pdf", filename)
	require.NotNil(t, gen.doc)
	assert.Equal(t, "Cafetería Luna", gen.doc.Entity.CommercialName)
	assert.Equal(t, "Panadería Núñez", gen.doc.Organization.Name)
	assert.True(t, dec("290").Equal(gen.doc.Totals.Total))
	assert.True(t, dec("200").Equal(gen.doc.Balance))

	_, _, err = uc.DownloadOrderPDF(ctx, tc, "0b6a7c1e-9999-4999-8999-000000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/Axioma-api/internal/application/dto"
	"github.com/jhoicas/Axioma-api/internal/domain"
	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterPayment_Sequence(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created, err := f.orders.CreateOrder(ctx, tc, standardOrder())
	require.NoError(t, err)

	out, err := f.pay.RegisterPayment(ctx, tc, created.ID, dto.RegisterPaymentRequest{Amount: dec("100"), Method: entity.PaymentMethodCash})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPartial, out.PaymentStatus)
	assert.True(t, dec("190").Equal(out.Balance))

	_, err = f.pay.RegisterPayment(ctx, tc, created.ID, dto.RegisterPaymentRequest{Amount: dec("200"), Method: entity.PaymentMethodCash})
	assert.ErrorIs(t, err, domain.ErrPaymentExceedsBalance, "100 + 200 > 290")
	assert.Len(t, f.s.payments, 1, "el pago rechazado no se guarda")
	assert.Equal(t, entity.PaymentStatusPartial, f.s.orders[created.ID].PaymentStatus, "el estado de cobro no cambia")

	out, err = f.pay.RegisterPayment(ctx, tc, created.ID, dto.RegisterPaymentRequest{Amount: dec("190"), Method: entity.PaymentMethodCard})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, out.PaymentStatus)
	assert.Equal(t, entity.PaymentStatusPaid, f.s.orders[created.ID].PaymentStatus)
	assert.True(t, out.Balance.IsZero())
}

func TestRegisterPayment_FullAmountAtOnce(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created, err := f.orders.CreateOrder(ctx, tc, standardOrder())
	require.NoError(t, err)

	when := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	out, err := f.pay.RegisterPayment(ctx, tc, created.ID, dto.RegisterPaymentRequest{Amount: dec("290"), Method: entity.PaymentMethodTransfer, Date: &when})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, out.PaymentStatus)
	assert.True(t, when.Equal(out.Payment.Date), "respeta la fecha enviada")

	_, err = f.pay.RegisterPayment(ctx, tc, created.ID, dto.RegisterPaymentRequest{Amount: dec("0.01"), Method: entity.PaymentMethodCash})
	assert.ErrorIs(t, err, domain.ErrPaymentExceedsBalance, "sin tolerancia al validar el saldo")
}

func TestRegisterPayment_Rejects(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created, err := f.orders.CreateOrder(ctx, tc, standardOrder())
	require.NoError(t, err)

	_, err = f.pay.RegisterPayment(ctx, tc, created.ID, dto.RegisterPaymentRequest{Amount: dec("0"), Method: entity.PaymentMethodCash})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto debe ser > 0")

	_, err = f.pay.RegisterPayment(ctx, tc, created.ID, dto.RegisterPaymentRequest{Amount: dec("10"), Method: "CHEQUE"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "método fuera del catálogo")

	_, err = f.pay.RegisterPayment(ctx, tc, "0b6a7c1e-9999-4999-8999-000000000000", dto.RegisterPaymentRequest{Amount: dec("10"), Method: entity.PaymentMethodCash})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.orders.UpdateOrderStatus(ctx, tc, created.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusCancelled})
	require.NoError(t, err)
	_, err = f.pay.RegisterPayment(ctx, tc, created.ID, dto.RegisterPaymentRequest{Amount: dec("10"), Method: entity.PaymentMethodCash})
	assert.ErrorIs(t, err, domain.ErrConflict, "orden cancelada")
}

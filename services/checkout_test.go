package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abreai/abreai-api/models"
	"github.com/abreai/abreai-api/utils"
)

type recordingMailer struct {
	sent []models.Order
	err  error
}

func (m *recordingMailer) SendOrderConfirmation(order models.Order) error {
	m.sent = append(m.sent, order)
	return m.err
}

func newCheckoutFixture(t *testing.T) (*CheckoutService, *CartService, *OrderService) {
	t.Helper()
	cart := NewCartService(newMemStore())
	orders := NewOrderService(newMemStore())
	checkout := NewCheckoutService(cart, orders, nil, "5511999999999")
	return checkout, cart, orders
}

func fillCart(t *testing.T, cart *CartService) {
	t.Helper()
	_, _, err := cart.AddItem(testProducts[1], 1) // 129.90
	require.NoError(t, err)
}

func advanceToConfirmation(t *testing.T, checkout *CheckoutService, session *CheckoutSession) {
	t.Helper()
	require.NoError(t, checkout.Next(session, models.CustomerInfo{}))
	require.NoError(t, checkout.Next(session, models.CustomerInfo{
		Name: "Maria Silva", Email: "maria@example.com", Phone: "11987654321",
	}))
	require.NoError(t, checkout.Next(session, models.CustomerInfo{
		Address: "Rua das Flores, 123", PaymentMethod: PaymentMethodPix,
	}))
	require.Equal(t, StepConfirmation, session.Step)
}

func TestCheckoutStartsAtReviewStep(t *testing.T) {
	checkout, _, _ := newCheckoutFixture(t)
	session := checkout.NewSession()

	assert.Equal(t, StepReviewCart, session.Step)
	assert.Equal(t, utils.DeliveryTierMetropolitan, session.Info.DeliveryTier)
}

func TestCheckoutNextRejectsEmptyCart(t *testing.T) {
	checkout, _, _ := newCheckoutFixture(t)
	session := checkout.NewSession()

	err := checkout.Next(&session, models.CustomerInfo{})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, StepReviewCart, session.Step)
}

func TestCheckoutCustomerStepValidatesFields(t *testing.T) {
	checkout, cart, _ := newCheckoutFixture(t)
	fillCart(t, cart)
	session := checkout.NewSession()
	require.NoError(t, checkout.Next(&session, models.CustomerInfo{}))

	err := checkout.Next(&session, models.CustomerInfo{Name: "M", Email: "not-an-email", Phone: "123"})
	var fieldErrs utils.FieldValidationErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Len(t, fieldErrs, 3)
	assert.Equal(t, StepCustomerInfo, session.Step, "invalid input must not advance")
}

func TestCheckoutDeliveryStepValidatesFields(t *testing.T) {
	checkout, cart, _ := newCheckoutFixture(t)
	fillCart(t, cart)
	session := checkout.NewSession()
	require.NoError(t, checkout.Next(&session, models.CustomerInfo{}))
	require.NoError(t, checkout.Next(&session, models.CustomerInfo{
		Name: "Maria Silva", Email: "maria@example.com", Phone: "11987654321",
	}))

	err := checkout.Next(&session, models.CustomerInfo{PaymentMethod: "cash"})
	var fieldErrs utils.FieldValidationErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, StepDelivery, session.Step)
}

func TestCheckoutBackIsUnconditional(t *testing.T) {
	checkout, cart, _ := newCheckoutFixture(t)
	fillCart(t, cart)
	session := checkout.NewSession()
	advanceToConfirmation(t, checkout, &session)

	checkout.Back(&session)
	assert.Equal(t, StepDelivery, session.Step)
	checkout.Back(&session)
	checkout.Back(&session)
	assert.Equal(t, StepReviewCart, session.Step)
	checkout.Back(&session)
	assert.Equal(t, StepReviewCart, session.Step, "back at the first step stays put")
}

func TestApplyCouponReplacesPrevious(t *testing.T) {
	checkout, _, _ := newCheckoutFixture(t)
	session := checkout.NewSession()

	_, err := checkout.ApplyCoupon(&session, "abreai10")
	require.NoError(t, err)
	assert.Equal(t, "ABREAI10", session.CouponCode)

	_, err = checkout.ApplyCoupon(&session, "ABREAI20")
	require.NoError(t, err)
	assert.Equal(t, "ABREAI20", session.CouponCode)

	_, err = checkout.ApplyCoupon(&session, "NOPE")
	assert.ErrorIs(t, err, models.ErrUnknownCoupon)
	assert.Equal(t, "ABREAI20", session.CouponCode, "unknown codes leave the session untouched")

	checkout.RemoveCoupon(&session)
	assert.Empty(t, session.CouponCode)
}

func TestQuoteFifteenPercentCoversStandardShipping(t *testing.T) {
	checkout, cart, _ := newCheckoutFixture(t)
	_, _, err := cart.AddItem(models.Product{ID: 9, Name: "Kit", Price: 100.00}, 1)
	require.NoError(t, err)
	session := checkout.NewSession()
	_, err = checkout.ApplyCoupon(&session, "ABREAI15")
	require.NoError(t, err)

	quote := checkout.Quote(&session)
	assert.InDelta(t, 100.00, quote.Subtotal, 0.001)
	assert.InDelta(t, 15.00, quote.Shipping, 0.001)
	assert.InDelta(t, 15.00, quote.Discount, 0.001)
	assert.InDelta(t, 100.00, quote.Total, 0.001)
}

func TestQuoteFreeShippingCoupon(t *testing.T) {
	checkout, cart, _ := newCheckoutFixture(t)
	fillCart(t, cart)
	session := checkout.NewSession()
	_, err := checkout.ApplyCoupon(&session, "FRETEGRATIS")
	require.NoError(t, err)

	quote := checkout.Quote(&session)
	assert.Zero(t, quote.Shipping)
	assert.Zero(t, quote.Discount)
	assert.InDelta(t, 129.90, quote.Total, 0.001)
}

func TestQuoteDeliveryTierCharges(t *testing.T) {
	checkout, cart, _ := newCheckoutFixture(t)
	fillCart(t, cart)
	session := checkout.NewSession()

	session.Info.DeliveryTier = utils.DeliveryTierRemote
	quote := checkout.Quote(&session)
	assert.InDelta(t, 35.00, quote.Shipping, 0.001)

	session.Info.DeliveryTier = utils.DeliveryTierInterior
	quote = checkout.Quote(&session)
	assert.InDelta(t, 25.00, quote.Shipping, 0.001)
}

func TestSubmitCreatesOrderAndResetsEverything(t *testing.T) {
	cart := NewCartService(newMemStore())
	orders := NewOrderService(newMemStore())
	mailer := &recordingMailer{}
	checkout := NewCheckoutService(cart, orders, mailer, "5511999999999")

	_, _, err := cart.AddItem(testProducts[1], 1) // 129.90
	require.NoError(t, err)
	session := checkout.NewSession()
	advanceToConfirmation(t, checkout, &session)
	_, err = checkout.ApplyCoupon(&session, "PRIMEIRA")
	require.NoError(t, err)

	result, err := checkout.Submit(&session)
	require.NoError(t, err)

	// 129.90 + 15.00 - 12.99
	assert.InDelta(t, 131.91, result.Order.Total, 0.001)
	assert.Equal(t, "PRIMEIRA", result.Order.CouponCode)
	assert.Equal(t, models.OrderStatusPending, result.Order.Status)

	assert.Contains(t, result.Message, "Kit Boteco Clássico")
	assert.Contains(t, result.Message, result.Order.TrackingCode)
	assert.True(t, strings.HasPrefix(result.WhatsAppURL, "https://wa.me/5511999999999?text="))

	assert.Zero(t, cart.ItemCount(), "submit clears the cart")
	assert.Equal(t, StepReviewCart, session.Step, "submit resets the session")
	assert.Empty(t, session.CouponCode)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, result.Order.ID, mailer.sent[0].ID)
}

func TestSubmitRejectedBeforeConfirmation(t *testing.T) {
	checkout, cart, orders := newCheckoutFixture(t)
	fillCart(t, cart)

	// A non-empty cart alone must not be enough to place an order; the
	// session still sits on steps whose fields were never validated.
	for _, step := range []CheckoutStep{StepReviewCart, StepCustomerInfo, StepDelivery} {
		session := checkout.NewSession()
		session.Step = step

		_, err := checkout.Submit(&session)
		assert.ErrorIs(t, err, ErrCheckoutIncomplete)
		assert.Equal(t, step, session.Step, "failed submit leaves the session where it was")
	}

	assert.Zero(t, orders.Count(), "no blank-customer orders are created")
	assert.Equal(t, 1, cart.ItemCount(), "cart is left untouched")
}

func TestSubmitEmptyCartFailsWithoutSideEffects(t *testing.T) {
	checkout, _, orders := newCheckoutFixture(t)
	session := checkout.NewSession()

	_, err := checkout.Submit(&session)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, orders.Count())
}

func TestSubmitSurvivesMailerFailure(t *testing.T) {
	cart := NewCartService(newMemStore())
	orders := NewOrderService(newMemStore())
	mailer := &recordingMailer{err: errors.New("smtp down")}
	checkout := NewCheckoutService(cart, orders, mailer, "5511999999999")

	fillCart(t, cart)
	session := checkout.NewSession()
	advanceToConfirmation(t, checkout, &session)

	_, err := checkout.Submit(&session)
	require.NoError(t, err, "mail errors are best-effort")
	assert.Equal(t, 1, orders.Count())
}

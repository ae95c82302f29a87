package services

import (
	"errors"
	"strings"

	"github.com/abreai/abreai-api/models"
	"github.com/abreai/abreai-api/utils"
)

// CheckoutStep identifies a position in the linear checkout sequence
type CheckoutStep string

// Checkout steps, in order. The flow is strictly linear: each step gates
// the next on field validation, and back-navigation is unconditional.
const (
	StepReviewCart   CheckoutStep = "review"
	StepCustomerInfo CheckoutStep = "customer"
	StepDelivery     CheckoutStep = "delivery"
	StepConfirmation CheckoutStep = "confirmation"
)

var checkoutSteps = []CheckoutStep{StepReviewCart, StepCustomerInfo, StepDelivery, StepConfirmation}

// ErrCheckoutIncomplete is returned when submission is attempted before
// the session has passed every validated step.
var ErrCheckoutIncomplete = errors.New("checkout has not reached the confirmation step")

// Accepted payment methods
const (
	PaymentMethodPix  = "pix"
	PaymentMethodCard = "card"
	PaymentMethodLink = "link"
)

var validPaymentMethods = map[string]bool{
	PaymentMethodPix:  true,
	PaymentMethodCard: true,
	PaymentMethodLink: true,
}

// CheckoutSession is the transient per-session checkout state: the step
// cursor, the customer info entered so far and the applied coupon. It is
// not persisted across sessions.
type CheckoutSession struct {
	Step       CheckoutStep
	Info       models.CustomerInfo
	CouponCode string
}

// Quote is the priced summary of the live cart under the session's coupon
// and delivery tier.
type Quote struct {
	Subtotal     float64 `json:"subtotal"`
	Shipping     float64 `json:"shipping"`
	Discount     float64 `json:"discount"`
	Total        float64 `json:"total"`
	CouponCode   string  `json:"coupon_code,omitempty"`
	CouponLabel  string  `json:"coupon_label,omitempty"`
	FreeShipping bool    `json:"free_shipping,omitempty"`
}

// SubmitResult is what a successful checkout submission produces
type SubmitResult struct {
	Order       models.Order `json:"order"`
	Message     string       `json:"message"`
	WhatsAppURL string       `json:"whatsapp_url"`
}

// OrderMailer sends the order confirmation email. Implementations are
// best-effort; checkout never fails on a mail error.
type OrderMailer interface {
	SendOrderConfirmation(order models.Order) error
}

// CheckoutService drives the checkout step machine over the cart and order
// containers. Submission hands the formatted order off to a WhatsApp deep
// link; there is no payment gateway behind it.
type CheckoutService struct {
	cart          *CartService
	orders        *OrderService
	mailer        OrderMailer
	whatsAppPhone string
}

// NewCheckoutService wires the checkout flow. mailer may be nil to skip
// confirmation emails.
func NewCheckoutService(cart *CartService, orders *OrderService, mailer OrderMailer, whatsAppPhone string) *CheckoutService {
	return &CheckoutService{
		cart:          cart,
		orders:        orders,
		mailer:        mailer,
		whatsAppPhone: whatsAppPhone,
	}
}

// NewSession returns a session positioned at the first step
func (s *CheckoutService) NewSession() CheckoutSession {
	return CheckoutSession{Step: StepReviewCart, Info: models.CustomerInfo{DeliveryTier: utils.DeliveryTierMetropolitan}}
}

func stepIndex(step CheckoutStep) int {
	for i, st := range checkoutSteps {
		if st == step {
			return i
		}
	}
	return 0
}

// Next validates the current step against the submitted fields and, when
// valid, merges them into the session and advances one step. At the final
// step it is a no-op; submission is a separate action.
func (s *CheckoutService) Next(session *CheckoutSession, form models.CustomerInfo) error {
	switch session.Step {
	case StepReviewCart:
		if s.cart.ItemCount() == 0 {
			return ErrEmptyCart
		}

	case StepCustomerInfo:
		var fieldErrs utils.FieldValidationErrors
		if ok, msg := utils.ValidateName(form.Name); !ok {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "name", Message: msg})
		}
		if ok, msg := utils.ValidateEmail(form.Email); !ok {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "email", Message: msg})
		}
		if ok, msg := utils.ValidatePhone(form.Phone); !ok {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "phone", Message: msg})
		}
		if len(fieldErrs) > 0 {
			return fieldErrs
		}
		session.Info.Name = strings.TrimSpace(form.Name)
		session.Info.Email = strings.TrimSpace(form.Email)
		session.Info.Phone = strings.TrimSpace(form.Phone)

	case StepDelivery:
		var fieldErrs utils.FieldValidationErrors
		if strings.TrimSpace(form.Address) == "" {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "address", Message: "Delivery address is required"})
		}
		if !validPaymentMethods[form.PaymentMethod] {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "payment_method", Message: "Payment method must be one of: pix, card, link"})
		}
		if form.DeliveryTier != "" && !utils.IsValidDeliveryTier(form.DeliveryTier) {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "delivery_tier", Message: "Unknown delivery tier"})
		}
		if len(fieldErrs) > 0 {
			return fieldErrs
		}
		session.Info.Address = strings.TrimSpace(form.Address)
		session.Info.PaymentMethod = form.PaymentMethod
		if form.DeliveryTier != "" {
			session.Info.DeliveryTier = form.DeliveryTier
		}
		session.Info.Notes = strings.TrimSpace(form.Notes)

	case StepConfirmation:
		return nil
	}

	if idx := stepIndex(session.Step); idx < len(checkoutSteps)-1 {
		session.Step = checkoutSteps[idx+1]
	}
	return nil
}

// Back moves one step backward without re-validation
func (s *CheckoutService) Back(session *CheckoutSession) {
	if idx := stepIndex(session.Step); idx > 0 {
		session.Step = checkoutSteps[idx-1]
	}
}

// ApplyCoupon applies a coupon to the session, replacing any previous one.
// Unknown codes leave the session untouched.
func (s *CheckoutService) ApplyCoupon(session *CheckoutSession, code string) (models.Coupon, error) {
	coupon, err := models.LookupCoupon(code)
	if err != nil {
		return models.Coupon{}, err
	}
	session.CouponCode = coupon.Code
	utils.LogInfo("Applied coupon %s to checkout session", coupon.Code)
	return coupon, nil
}

// RemoveCoupon clears the session's applied coupon
func (s *CheckoutService) RemoveCoupon(session *CheckoutSession) {
	session.CouponCode = ""
}

// Quote prices the live cart under the session's coupon and delivery tier
func (s *CheckoutService) Quote(session *CheckoutSession) Quote {
	return s.quoteFor(s.cart.TotalPrice(), session)
}

func (s *CheckoutService) quoteFor(subtotal float64, session *CheckoutSession) Quote {
	quote := Quote{Subtotal: utils.Round2(subtotal)}

	shipping, err := utils.GetDeliveryCharge(session.Info.DeliveryTier)
	if err != nil {
		shipping = utils.StandardShippingCharge
	}

	if session.CouponCode != "" {
		if coupon, err := models.LookupCoupon(session.CouponCode); err == nil {
			quote.CouponCode = coupon.Code
			quote.CouponLabel = coupon.Label
			quote.FreeShipping = coupon.FreeShipping
			quote.Discount = utils.Round2(subtotal * coupon.DiscountPercent / 100)
			if coupon.FreeShipping {
				shipping = 0
			}
		}
	}

	quote.Shipping = utils.Round2(shipping)
	quote.Total = utils.Round2(quote.Subtotal + quote.Shipping - quote.Discount)
	if quote.Total < 0 {
		quote.Total = 0
	}
	return quote
}

// Submit is the terminal checkout action: create the order from a cart
// snapshot, clear the cart, format the WhatsApp hand-off and reset the
// session. An empty cart surfaces as ErrEmptyCart; nothing auto-retries.
// Only a session at the confirmation step may submit, otherwise the
// step-by-step field validation could be skipped entirely.
func (s *CheckoutService) Submit(session *CheckoutSession) (SubmitResult, error) {
	snapshot := s.cart.Items()
	if len(snapshot) == 0 {
		return SubmitResult{}, ErrEmptyCart
	}
	if session.Step != StepConfirmation {
		return SubmitResult{}, ErrCheckoutIncomplete
	}

	subtotal := 0.0
	for _, item := range snapshot {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	quote := s.quoteFor(subtotal, session)

	order, err := s.orders.Create(snapshot, session.Info, OrderCharges{
		Shipping:   quote.Shipping,
		Discount:   quote.Discount,
		CouponCode: quote.CouponCode,
	})
	if err != nil {
		return SubmitResult{}, err
	}

	s.cart.Clear()

	message := utils.BuildOrderMessage(order)
	result := SubmitResult{
		Order:       order,
		Message:     message,
		WhatsAppURL: utils.WhatsAppLink(s.whatsAppPhone, message),
	}

	if s.mailer != nil {
		if err := s.mailer.SendOrderConfirmation(order); err != nil {
			utils.LogError("Failed to send confirmation email for order %s: %v", order.ID, err)
		}
	}

	*session = s.NewSession()
	utils.LogInfo("Checkout submitted, order %s created", order.ID)
	return result, nil
}

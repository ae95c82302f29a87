package controllers

import (
	"errors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/abreai/abreai-api/models"
	"github.com/abreai/abreai-api/services"
	"github.com/abreai/abreai-api/utils"
)

const checkoutSessionKey = "checkout_session"

// CheckoutController drives the step-by-step checkout over the cookie
// session. The transient step state lives in the session; the cart and
// orders live in their containers.
type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

func (cc *CheckoutController) loadSession(c *gin.Context) services.CheckoutSession {
	if val := sessions.Default(c).Get(checkoutSessionKey); val != nil {
		if state, ok := val.(services.CheckoutSession); ok {
			return state
		}
	}
	return cc.checkout.NewSession()
}

func (cc *CheckoutController) saveSession(c *gin.Context, state services.CheckoutSession) {
	session := sessions.Default(c)
	session.Set(checkoutSessionKey, state)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save checkout session: %v", err)
	}
}

func (cc *CheckoutController) statePayload(state services.CheckoutSession) gin.H {
	return gin.H{
		"step":          state.Step,
		"customer_info": state.Info,
		"quote":         cc.checkout.Quote(&state),
	}
}

// State returns the current checkout step, the entered info and a fresh
// quote of the live cart.
func (cc *CheckoutController) State(c *gin.Context) {
	state := cc.loadSession(c)
	utils.Success(c, "Checkout state retrieved", cc.statePayload(state))
}

// Next validates the current step's fields and advances
func (cc *CheckoutController) Next(c *gin.Context) {
	// The review step takes no body; later steps carry their fields
	var form models.CustomerInfo
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&form); err != nil {
			utils.BadRequest(c, "Invalid request", err.Error())
			return
		}
	}

	state := cc.loadSession(c)
	if err := cc.checkout.Next(&state, form); err != nil {
		var fieldErrs utils.FieldValidationErrors
		switch {
		case errors.As(err, &fieldErrs):
			utils.ValidationError(c, "Please correct the highlighted fields", fieldErrs)
		case errors.Is(err, services.ErrEmptyCart):
			utils.BadRequest(c, "Your cart is empty", nil)
		default:
			utils.InternalServerError(c, "Failed to advance checkout", nil)
		}
		return
	}

	cc.saveSession(c, state)
	utils.Success(c, "Checkout advanced", cc.statePayload(state))
}

// Back moves one step backward; always allowed
func (cc *CheckoutController) Back(c *gin.Context) {
	state := cc.loadSession(c)
	cc.checkout.Back(&state)
	cc.saveSession(c, state)
	utils.Success(c, "Checkout moved back", cc.statePayload(state))
}

// ApplyCoupon applies a coupon code to the session
func (cc *CheckoutController) ApplyCoupon(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	state := cc.loadSession(c)
	coupon, err := cc.checkout.ApplyCoupon(&state, req.Code)
	if err != nil {
		utils.NotFound(c, "Unknown coupon code")
		return
	}

	cc.saveSession(c, state)
	payload := cc.statePayload(state)
	payload["coupon"] = coupon
	utils.Success(c, "Coupon applied successfully", payload)
}

// RemoveCoupon clears the applied coupon
func (cc *CheckoutController) RemoveCoupon(c *gin.Context) {
	state := cc.loadSession(c)
	cc.checkout.RemoveCoupon(&state)
	cc.saveSession(c, state)
	utils.Success(c, "Coupon removed", cc.statePayload(state))
}

// Submit places the order and returns the WhatsApp hand-off link
func (cc *CheckoutController) Submit(c *gin.Context) {
	state := cc.loadSession(c)
	result, err := cc.checkout.Submit(&state)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			utils.BadRequest(c, "Your cart is empty", nil)
		case errors.Is(err, services.ErrCheckoutIncomplete):
			utils.BadRequest(c, "Complete the checkout steps before placing the order", nil)
		default:
			utils.InternalServerError(c, "Failed to place order", nil)
		}
		return
	}

	cc.saveSession(c, state)
	utils.Created(c, "Order placed successfully", gin.H{
		"order":        result.Order,
		"message":      result.Message,
		"whatsapp_url": result.WhatsAppURL,
	})
}

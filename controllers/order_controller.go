package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abreai/abreai-api/models"
	"github.com/abreai/abreai-api/services"
	"github.com/abreai/abreai-api/utils"
)

// OrderController exposes the order container
type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// List returns orders, newest first, optionally filtered by customer
// email and paginated.
func (oc *OrderController) List(c *gin.Context) {
	orders := oc.orders.Orders()
	if email := c.Query("email"); email != "" {
		orders = oc.orders.ByCustomerEmail(email)
	}

	pagination := utils.NewPagination(c)
	pagination.SetTotal(int64(len(orders)))

	start := pagination.Offset
	if start > len(orders) {
		start = len(orders)
	}
	end := start + pagination.Limit
	if end > len(orders) {
		end = len(orders)
	}

	utils.SendPaginatedResponse(c, gin.H{"orders": orders[start:end]}, pagination)
}

// GetByID returns a single order
func (oc *OrderController) GetByID(c *gin.Context) {
	order, err := oc.orders.ByID(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Order not found")
		return
	}
	utils.Success(c, "Order retrieved successfully", gin.H{"order": order})
}

// Track looks an order up by its tracking code
func (oc *OrderController) Track(c *gin.Context) {
	order, err := oc.orders.ByTrackingCode(c.Param("code"))
	if err != nil {
		utils.NotFound(c, "No order found for this tracking code")
		return
	}
	utils.Success(c, "Order retrieved successfully", gin.H{
		"order":        order,
		"status_label": order.Status.Label(),
	})
}

// orderError translates order service failures into boundary errors
func orderError(err error, transitionMessage string) *utils.AppError {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		return utils.NotFoundError("Order not found", err)
	case errors.Is(err, services.ErrInvalidTransition):
		return utils.BadRequestError(transitionMessage, err)
	}
	return utils.NewAppError(http.StatusInternalServerError, "Order operation failed", err)
}

// Cancel cancels an order unless it already reached a terminal state
func (oc *OrderController) Cancel(c *gin.Context) {
	order, err := oc.orders.Cancel(c.Param("id"))
	if err != nil {
		utils.RespondError(c, orderError(err, "Order can no longer be cancelled"))
		return
	}
	utils.Success(c, "Order cancelled successfully", gin.H{"order": order})
}

// UpdateStatus moves an order along its lifecycle
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	status := models.OrderStatus(req.Status)
	if !status.IsValid() {
		utils.BadRequest(c, "Unknown order status", nil)
		return
	}

	order, err := oc.orders.UpdateStatus(c.Param("id"), status)
	if err != nil {
		utils.RespondError(c, orderError(err, "Illegal status transition"))
		return
	}
	utils.Success(c, "Order status updated", gin.H{
		"order":        order,
		"status_label": order.Status.Label(),
	})
}

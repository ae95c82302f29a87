package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abreai/abreai-api/models"
	"github.com/abreai/abreai-api/services"
	"github.com/abreai/abreai-api/utils"
)

// CartController exposes the cart state container
type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

func (cc *CartController) cartPayload() gin.H {
	return gin.H{
		"items":       cc.cart.Items(),
		"item_count":  cc.cart.ItemCount(),
		"total_price": utils.Round2(cc.cart.TotalPrice()),
	}
}

// Get returns the cart contents with derived totals
func (cc *CartController) Get(c *gin.Context) {
	utils.Success(c, "Cart retrieved successfully", cc.cartPayload())
}

// Add adds a catalog product to the cart
func (cc *CartController) Add(c *gin.Context) {
	var req struct {
		ProductID int `json:"product_id" binding:"required"`
		Quantity  int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, ok := models.ProductByID(req.ProductID)
	if !ok {
		utils.NotFound(c, "Product not found")
		return
	}

	line, created, err := cc.cart.AddItem(product, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrInvalidQuantity) {
			utils.BadRequest(c, "Quantity must be a positive integer", nil)
			return
		}
		utils.InternalServerError(c, "Failed to add product to cart", nil)
		return
	}

	payload := cc.cartPayload()
	payload["line"] = line
	if created {
		utils.Created(c, "Product added to cart", payload)
		return
	}
	utils.Success(c, "Cart quantity updated", payload)
}

// Update sets a line's quantity; zero removes the line
func (cc *CartController) Update(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := cc.cart.UpdateQuantity(productID, *req.Quantity); err != nil {
		utils.BadRequest(c, "Quantity cannot be negative", nil)
		return
	}
	utils.Success(c, "Cart updated successfully", cc.cartPayload())
}

// Remove deletes a line from the cart
func (cc *CartController) Remove(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	cc.cart.RemoveItem(productID)
	utils.Success(c, "Product removed from cart", cc.cartPayload())
}

// Clear empties the cart
func (cc *CartController) Clear(c *gin.Context) {
	cc.cart.Clear()
	utils.Success(c, "Cart cleared successfully", cc.cartPayload())
}

// Package controllers holds the thin HTTP handlers. Each controller is
// constructed with the services it needs; nothing here reaches into
// package-level state.
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abreai/abreai-api/models"
	"github.com/abreai/abreai-api/utils"
)

// ProductController serves the read-only gift kit catalog
type ProductController struct{}

func NewProductController() *ProductController {
	return &ProductController{}
}

// List returns the catalog, optionally filtered by category
func (pc *ProductController) List(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		products := models.ProductsByCategory(models.ProductCategory(category))
		utils.Success(c, "Products retrieved successfully", gin.H{
			"products": products,
			"total":    len(products),
		})
		return
	}

	products := models.Catalog()
	utils.Success(c, "Products retrieved successfully", gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GetByID returns a single product
func (pc *ProductController) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	product, ok := models.ProductByID(id)
	if !ok {
		utils.NotFound(c, "Product not found")
		return
	}
	utils.Success(c, "Product retrieved successfully", gin.H{"product": product})
}

// ListCoupons returns the static coupon table
func (pc *ProductController) ListCoupons(c *gin.Context) {
	utils.Success(c, "Coupons retrieved successfully", gin.H{"coupons": models.Coupons()})
}

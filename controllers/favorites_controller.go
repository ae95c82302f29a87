package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/abreai/abreai-api/models"
	"github.com/abreai/abreai-api/services"
	"github.com/abreai/abreai-api/utils"
)

// FavoritesController exposes the favorites set
type FavoritesController struct {
	favorites *services.FavoritesService
}

func NewFavoritesController(favorites *services.FavoritesService) *FavoritesController {
	return &FavoritesController{favorites: favorites}
}

// List returns the favorited products in insertion order
func (fc *FavoritesController) List(c *gin.Context) {
	utils.Success(c, "Favorites retrieved successfully", gin.H{
		"items": fc.favorites.Items(),
		"count": fc.favorites.Count(),
	})
}

// Toggle flips a product's favorite state
func (fc *FavoritesController) Toggle(c *gin.Context) {
	var req struct {
		ProductID int `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	product, ok := models.ProductByID(req.ProductID)
	if !ok {
		utils.NotFound(c, "Product not found")
		return
	}

	favorited := fc.favorites.Toggle(models.FavoriteItem{
		ProductID:   product.ID,
		Name:        product.Name,
		UnitPrice:   product.Price,
		Category:    product.Category,
		Description: product.Description,
	})

	message := "Product removed from favorites"
	if favorited {
		message = "Product added to favorites"
	}
	utils.Success(c, message, gin.H{
		"favorited": favorited,
		"count":     fc.favorites.Count(),
	})
}

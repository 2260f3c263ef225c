package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/services"
)

// AddToCartHandler snapshots a catalog product (plus selected additionals)
// into the caller's cart. A duplicate product title is rejected.
func AddToCartHandler(carts *services.CartService, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var body struct {
			ProductID   string   `json:"product_id" binding:"required"`
			Additionals []string `json:"additionals"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		productID, err := primitive.ObjectIDFromHex(strings.TrimSpace(body.ProductID))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid product ID format"))
			return
		}

		product, err := catalog.GetProduct(c.Request.Context(), productID)
		if err != nil {
			respondError(c, err)
			return
		}

		cart, err := carts.AddItem(c.Request.Context(), claims.Email, product, body.Additionals)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(cart, "Item added to cart"))
	}
}

func GetCartHandler(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		cart, err := carts.GetCart(c.Request.Context(), claims.Email)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(cart, ""))
	}
}

func RemoveCartItemHandler(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		productID := strings.TrimSpace(c.Param("product_id"))
		if productID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("product_id is required"))
			return
		}

		if err := carts.RemoveItem(c.Request.Context(), claims.Email, productID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Item removed from cart"))
	}
}

func ClearCartHandler(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		if err := carts.Clear(c.Request.Context(), claims.Email); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Cart cleared"))
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/services"
)

func CreateProductHandler(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		// Suppliers always own what they post; admins may post for anyone.
		if claims.IsSupplier() {
			product.SupplierID = claims.UserID()
			product.CompanyName = claims.CompanyName
		}

		created, err := cs.CreateProduct(c.Request.Context(), &product)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Product created successfully"))
	}
}

func GetProductHandler(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		product, err := cs.GetProduct(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(product, ""))
	}
}

func ListProductsHandler(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := parsePagination(c)
		if !ok {
			return
		}
		category := c.Query("category")
		supplierID := c.Query("supplier_id")

		products, total, err := cs.ListProducts(c.Request.Context(), category, supplierID, offset, limit)
		if err != nil {
			respondError(c, err)
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(products, page, limit, total))
	}
}

func UpdateProductHandler(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		if claims.IsSupplier() {
			existing, err := cs.GetProduct(c.Request.Context(), id)
			if err != nil {
				respondError(c, err)
				return
			}
			if existing.SupplierID != claims.UserID() {
				c.JSON(http.StatusForbidden, models.ErrorResponse("you can only update your own products"))
				return
			}
		}

		var update map[string]interface{}
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		product, err := cs.UpdateProduct(c.Request.Context(), id, update)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(product, "Product updated successfully"))
	}
}

func DeleteProductHandler(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		if claims.IsSupplier() {
			existing, err := cs.GetProduct(c.Request.Context(), id)
			if err != nil {
				respondError(c, err)
				return
			}
			if existing.SupplierID != claims.UserID() {
				c.JSON(http.StatusForbidden, models.ErrorResponse("you can only delete your own products"))
				return
			}
		}

		if err := cs.DeleteProduct(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Product deleted successfully"))
	}
}

func CreateCategoryHandler(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := c.ShouldBindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := cs.CreateCategory(c.Request.Context(), &category)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Category created successfully"))
	}
}

func ListCategoriesHandler(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := cs.ListCategories(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(categories, ""))
	}
}

func CreateEventTypeHandler(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var eventType models.EventType
		if err := c.ShouldBindJSON(&eventType); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := cs.CreateEventType(c.Request.Context(), &eventType)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Event type created successfully"))
	}
}

func ListEventTypesHandler(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventTypes, err := cs.ListEventTypes(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(eventTypes, ""))
	}
}

func CreatePromoHandler(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var promo models.Promo
		if err := c.ShouldBindJSON(&promo); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := cs.CreatePromo(c.Request.Context(), &promo)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Promo created successfully"))
	}
}

func ListPromosHandler(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.DefaultQuery("active", "false") == "true" {
			promos, err := cs.ListActivePromos(c.Request.Context())
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, models.SuccessResponse(promos, ""))
			return
		}

		promos, err := cs.ListPromos(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(promos, ""))
	}
}

func DeletePromoHandler(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		if err := cs.DeletePromo(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Promo deleted successfully"))
	}
}

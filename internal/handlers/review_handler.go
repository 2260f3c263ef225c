package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/services"
)

func CreateReviewHandler(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var review models.Review
		if err := c.ShouldBindJSON(&review); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		review.UserID = claims.UserID()
		if review.Name == "" {
			review.Name = claims.FullName
		}

		created, err := rs.CreateReview(c.Request.Context(), claims.Email, &review)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Review posted successfully"))
	}
}

func ListReviewsHandler(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if productID := strings.TrimSpace(c.Query("product_id")); productID != "" {
			reviews, err := rs.ListReviewsByProduct(c.Request.Context(), productID)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, models.SuccessResponse(reviews, ""))
			return
		}

		offset, limit, ok := parsePagination(c)
		if !ok {
			return
		}
		reviews, total, err := rs.ListReviews(c.Request.Context(), offset, limit)
		if err != nil {
			respondError(c, err)
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(reviews, page, limit, total))
	}
}

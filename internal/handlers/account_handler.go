package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/services"
)

func GetProfileHandler(as *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		userID, ok := parseClaimsUserID(c, claims.UserID())
		if !ok {
			return
		}

		account, err := as.GetProfile(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(account, ""))
	}
}

func UpdateProfileHandler(as *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		userID, ok := parseClaimsUserID(c, claims.UserID())
		if !ok {
			return
		}

		var update map[string]interface{}
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		if len(update) == 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("nothing to update"))
			return
		}

		account, err := as.UpdateProfile(c.Request.Context(), userID, update)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(account, "Profile updated successfully"))
	}
}

// ToggleMFAHandler enables or disables MFA after a password re-check.
func ToggleMFAHandler(as *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		userID, ok := parseClaimsUserID(c, claims.UserID())
		if !ok {
			return
		}

		var body struct {
			Password string `json:"password" binding:"required"`
			Enabled  *bool  `json:"enabled" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		account, err := as.ToggleMFA(c.Request.Context(), userID, body.Password, *body.Enabled)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(account, "MFA setting updated"))
	}
}

// SetAvailabilityHandler lets a supplier open or close their calendar.
func SetAvailabilityHandler(as *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		if !claims.IsSupplier() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("only suppliers can set availability"))
			return
		}
		userID, ok := parseClaimsUserID(c, claims.UserID())
		if !ok {
			return
		}

		var body struct {
			Available *bool `json:"available" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		account, err := as.SetAvailability(c.Request.Context(), userID, *body.Available)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(account, "Availability updated"))
	}
}

func ListSuppliersHandler(as *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		onlyAvailable := c.DefaultQuery("available", "false") == "true"

		suppliers, err := as.ListSuppliers(c.Request.Context(), onlyAvailable)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(suppliers, ""))
	}
}

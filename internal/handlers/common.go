package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/helpers"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
)

// currentClaims pulls the session claims stored by the auth middleware.
func currentClaims(c *gin.Context) (*helpers.SessionClaims, bool) {
	value, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
		return nil, false
	}
	claims, ok := value.(*helpers.SessionClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
		return nil, false
	}
	return claims, true
}

// statusFromError maps domain sentinels onto HTTP statuses.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
}

func parseIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	raw := strings.TrimSpace(c.Param(name))
	raw = strings.Trim(raw, "\"'")
	if raw == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(name+" is required"))
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid "+name+" format"))
		return primitive.NilObjectID, false
	}
	return id, true
}

func parseClaimsUserID(c *gin.Context, raw string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid user ID in token"))
		return primitive.NilObjectID, false
	}
	return id, true
}

func parsePagination(c *gin.Context) (offset, limit int, ok bool) {
	limitInt, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limitInt <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid limit parameter"))
		return 0, 0, false
	}
	offsetInt, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offsetInt < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid offset parameter"))
		return 0, 0, false
	}
	return offsetInt, limitInt, true
}

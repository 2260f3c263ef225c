package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/services"
)

// FeedHandler returns the aggregated notification feed for the session owner.
func FeedHandler(ns *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		query := services.FeedQuery{
			Email:       claims.Email,
			FullName:    claims.FullName,
			Role:        models.Role(claims.GetSafeRole()),
			CompanyName: claims.CompanyName,
			Window:      c.DefaultQuery("window", "1week"),
		}
		if claims.IsSupplier() {
			query.SupplierID = claims.UserID()
		}

		feed, err := ns.Feed(c.Request.Context(), query)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(feed, ""))
	}
}

func ListNotificationsHandler(ns *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		notifications, err := ns.ListStored(c.Request.Context(), claims.Email)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(notifications, ""))
	}
}

func MarkNotificationReadHandler(ns *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		if err := ns.MarkRead(c.Request.Context(), id, claims.Email); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Notification marked as read"))
	}
}

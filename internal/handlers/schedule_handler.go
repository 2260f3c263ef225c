package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/services"
)

func CreateScheduleHandler(ss *services.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var schedule models.Schedule
		if err := c.ShouldBindJSON(&schedule); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := ss.CreateSchedule(c.Request.Context(), &schedule)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Schedule created successfully"))
	}
}

func ListSchedulesHandler(ss *services.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		schedules, err := ss.ListSchedules(c.Request.Context(), c.Query("status"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(schedules, ""))
	}
}

// RespondScheduleHandler records a supplier's accept or decline on their own
// pending schedule item.
func RespondScheduleHandler(ss *services.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		if !claims.IsSupplier() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("only suppliers can respond to schedules"))
			return
		}
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var body struct {
			Accept *bool `json:"accept" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		schedule, err := ss.Respond(c.Request.Context(), id, claims.UserID(), *body.Accept)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(schedule, "Schedule updated"))
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/services"
)

func CreateBookingHandler(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var submission services.BookingSubmission
		if err := c.ShouldBindJSON(&submission); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		// The booking is always created for the session owner.
		submission.CustomerEmail = claims.Email
		if submission.CustomerName == "" {
			submission.CustomerName = claims.FullName
		}

		booking, err := bs.CreateBooking(c.Request.Context(), &submission)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(booking, "Booking submitted successfully"))
	}
}

func GetBookingHandler(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		booking, err := bs.GetBooking(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		if !claims.IsAdmin() && booking.CustomerEmail != claims.Email && !bookingHasSupplier(booking, claims.UserID()) {
			c.JSON(http.StatusForbidden, models.ErrorResponse("you do not have access to this booking"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, ""))
	}
}

func bookingHasSupplier(booking *models.Booking, supplierID string) bool {
	for _, id := range booking.SupplierIDs() {
		if id == supplierID {
			return true
		}
	}
	return false
}

// ListBookingsHandler returns one status partition (admin view).
func ListBookingsHandler(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := parsePagination(c)
		if !ok {
			return
		}

		status := models.BookingStatus(c.DefaultQuery("status", string(models.BookingPending)))
		switch status {
		case models.BookingPending, models.BookingApproved, models.BookingFinished, models.BookingCancelled:
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse("unknown booking status"))
			return
		}

		bookings, total, err := bs.ListByStatus(c.Request.Context(), status, offset, limit)
		if err != nil {
			respondError(c, err)
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(bookings, page, limit, total))
	}
}

func ListMyBookingsHandler(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var (
			bookings []*models.Booking
			err      error
		)
		if claims.IsSupplier() {
			bookings, err = bs.ListBySupplier(c.Request.Context(), claims.UserID())
		} else {
			bookings, err = bs.ListByCustomer(c.Request.Context(), claims.Email)
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

func CountBookingsHandler(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := bs.CountByStatus(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(counts, ""))
	}
}

// TransitionBookingHandler moves a booking to a new status (admin action).
func TransitionBookingHandler(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var body struct {
			Status models.BookingStatus `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := bs.Transition(c.Request.Context(), id, body.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Booking status updated"))
	}
}

func RequestCancellationHandler(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var req models.CancellationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := bs.RequestCancellation(c.Request.Context(), id, claims.Email, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Cancellation request submitted"))
	}
}

func RequestRescheduleHandler(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var req models.RescheduleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := bs.RequestReschedule(c.Request.Context(), id, claims.Email, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Reschedule request submitted"))
	}
}

// ResolveCancellationHandler approves or rejects a pending cancellation
// request (admin action). Approval cancels the booking.
func ResolveCancellationHandler(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var body struct {
			Approve *bool  `json:"approve" binding:"required"`
			Notes   string `json:"notes"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := bs.ResolveCancellation(c.Request.Context(), id, *body.Approve, body.Notes)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Cancellation request resolved"))
	}
}

func ResolveRescheduleHandler(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var body struct {
			Approve *bool  `json:"approve" binding:"required"`
			Notes   string `json:"notes"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := bs.ResolveReschedule(c.Request.Context(), id, *body.Approve, body.Notes)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Reschedule request resolved"))
	}
}

// SubmitPaymentHandler records a payment on the caller's booking. Admins may
// record payments on any booking.
func SubmitPaymentHandler(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var form services.PaymentForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		ownerEmail := claims.Email
		if claims.IsAdmin() {
			ownerEmail = ""
		}

		booking, err := bs.SubmitPayment(c.Request.Context(), id, ownerEmail, &form)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Payment recorded"))
	}
}

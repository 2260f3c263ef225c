package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/services"
)

const sessionCookieMaxAge = 3600

func setSessionCookie(c *gin.Context, token string) {
	isProduction := os.Getenv("GIN_MODE") == "release"
	c.SetCookie("access_token", token, sessionCookieMaxAge, "/", "", isProduction, true)
}

func RegisterCustomerHandler(as *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var account models.Account
		if err := c.ShouldBindJSON(&account); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := as.RegisterCustomer(c.Request.Context(), &account)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Account created successfully"))
	}
}

func RegisterSupplierHandler(as *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var account models.Account
		if err := c.ShouldBindJSON(&account); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := as.RegisterSupplier(c.Request.Context(), &account)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Supplier account created successfully"))
	}
}

func LoginHandler(as *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		account, token, mfaRequired, err := as.Authenticate(c.Request.Context(), body.Email, body.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid email or password"))
			return
		}

		if mfaRequired {
			if err := as.RequestMFA(c.Request.Context(), account.Email); err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
				"mfa_required": true,
				"email":        account.Email,
			}, "Verification code sent"))
			return
		}

		setSessionCookie(c, token)
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"account": account,
			"token":   token,
		}, "Login successful"))
	}
}

func VerifyMFAHandler(as *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email string `json:"email" binding:"required"`
			Code  string `json:"code" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		account, token, err := as.VerifyMFA(c.Request.Context(), body.Email, body.Code)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(err.Error()))
			return
		}

		setSessionCookie(c, token)
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"account": account,
			"token":   token,
		}, "Login successful"))
	}
}

func ResendMFAHandler(as *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email string `json:"email" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		if err := as.RequestMFA(c.Request.Context(), body.Email); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Verification code sent"))
	}
}

// VerifyPasswordHandler re-checks the caller's password before sensitive
// profile actions.
func VerifyPasswordHandler(as *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var body struct {
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		userID, ok := parseClaimsUserID(c, claims.UserID())
		if !ok {
			return
		}
		if err := as.VerifyPassword(c.Request.Context(), userID, body.Password); err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("password is incorrect"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"verified": true}, ""))
	}
}

func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		isProduction := os.Getenv("GIN_MODE") == "release"
		c.SetCookie("access_token", "", -1, "/", "", isProduction, true)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Logged out successfully"))
	}
}

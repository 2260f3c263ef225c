package helpers

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the token payload issued at login. Role is always the
// explicit account role, never derived from which profile fields are set.
type SessionClaims struct {
	Role        string `json:"role"`
	Email       string `json:"email"`
	FullName    string `json:"fullname,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	jwt.RegisteredClaims
}

func (sc *SessionClaims) UserID() string {
	return sc.Subject
}

func (sc *SessionClaims) IsAdmin() bool {
	return sc.Role == "admin"
}

func (sc *SessionClaims) IsSupplier() bool {
	return sc.Role == "supplier"
}

func (sc *SessionClaims) IsCustomer() bool {
	return sc.Role == "customer"
}

func (sc *SessionClaims) HasRole(roles ...string) bool {
	for _, role := range roles {
		if sc.Role == role {
			return true
		}
	}
	return false
}

func (sc *SessionClaims) IsOwner(userID string) bool {
	return sc.Subject == userID
}

func (sc *SessionClaims) GetSafeRole() string {
	if sc.Role == "" {
		return "guest"
	}
	return sc.Role
}

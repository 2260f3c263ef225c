package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleSupplier Role = "supplier"
	RoleAdmin    Role = "admin"

	AccountColName = "accounts"
)

// BranchContact is a supplier branch with its own contact person.
type BranchContact struct {
	Branch        string `bson:"branch" json:"branch"`
	ContactPerson string `bson:"contact_person" json:"contact_person"`
	ContactNumber string `bson:"contact_number" json:"contact_number"`
}

// Account is the single account document for customers, suppliers and admins.
// Role is always explicit; nothing is ever inferred from which profile fields
// happen to be populated.
type Account struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Role         Role               `bson:"role" json:"role" validate:"required,oneof=customer supplier admin"`
	FullName     string             `bson:"full_name" json:"full_name" validate:"required"`
	Email        string             `bson:"email" json:"email" validate:"required,email"`
	Password     string             `bson:"password,omitempty" json:"password,omitempty"`
	ContactNo    string             `bson:"contact_no" json:"contact_no"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	AvatarURL    string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	MFAEnabled   bool               `bson:"mfa_enabled" json:"mfa_enabled"`

	// Supplier profile. Zero-valued for customers and admins.
	CompanyName    string          `bson:"company_name,omitempty" json:"company_name,omitempty"`
	EventTypes     []string        `bson:"event_types,omitempty" json:"event_types,omitempty"`
	Categories     []string        `bson:"categories,omitempty" json:"categories,omitempty"`
	BranchContacts []BranchContact `bson:"branch_contacts,omitempty" json:"branch_contacts,omitempty"`
	IsAvailable    bool            `bson:"is_available" json:"is_available"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (a *Account) BeforeCreate() error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	return nil
}

func (a *Account) IsSupplier() bool {
	return a.Role == RoleSupplier
}

// Sanitized returns a copy safe to return to clients.
func (a Account) Sanitized() Account {
	a.Password = ""
	return a
}

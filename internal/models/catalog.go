package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ProductColName   = "products"
	CategoryColName  = "categories"
	EventTypeColName = "event_types"
	PromoColName     = "promos"
)

// Additional is an optional paid add-on attached to a product.
type Additional struct {
	Title string  `bson:"title" json:"title" validate:"required"`
	Price float64 `bson:"price" json:"price" validate:"gte=0"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	Images      []string           `bson:"images,omitempty" json:"images,omitempty"`
	SupplierID  string             `bson:"supplier_id,omitempty" json:"supplier_id,omitempty"`
	CompanyName string             `bson:"company_name,omitempty" json:"company_name,omitempty"`
	Additionals []Additional       `bson:"additionals,omitempty" json:"additionals,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

func (p *Product) BeforeCreate() error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	return nil
}

type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name" validate:"required"`
}

type EventType struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name" validate:"required"`
}

// Promo is a time-bounded percentage discount applicable to a booking total.
type Promo struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name" validate:"required"`
	Description   string             `bson:"description" json:"description"`
	DiscountValue float64            `bson:"discount_value" json:"discount_value" validate:"gt=0,lte=100"`
	ValidFrom     time.Time          `bson:"valid_from" json:"valid_from"`
	ValidUntil    time.Time          `bson:"valid_until" json:"valid_until"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

func (p *Promo) BeforeCreate() error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	return nil
}

// ActiveAt reports whether the promo applies at the given instant.
// The valid-until day is inclusive: the promo stays active until the end of
// that calendar day.
func (p Promo) ActiveAt(now time.Time) bool {
	return now.After(p.ValidFrom) && now.Before(p.ValidUntil.Add(24*time.Hour))
}

// ApplyDiscount returns the total after the flat percentage discount,
// rounded to the nearest whole amount.
func (p Promo) ApplyDiscount(total float64) float64 {
	return math.Round(total * (1 - p.DiscountValue/100))
}

package models

import (
	"fmt"
	"time"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ReviewColName = "reviews"

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Rating    int                `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Comment   string             `bson:"comment" json:"comment"`
	Date      time.Time          `bson:"date" json:"date"`
	Source    string             `bson:"source,omitempty" json:"source,omitempty"`
	Images    []string           `bson:"images,omitempty" json:"images,omitempty"`
	BookingID string             `bson:"booking_id,omitempty" json:"booking_id,omitempty"`
	UserID    string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	ProductID string             `bson:"product_id,omitempty" json:"product_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

func (r *Review) BeforeCreate() error {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	return nil
}

func (r Review) ValidateReview() error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}

func (r *Review) Sanitize() {
	r.Name = helpers.StringTrim(r.Name)
	r.Comment = helpers.StringTrim(r.Comment)

	// An empty author publishes as Anonymous.
	if r.Name == "" {
		r.Name = "Anonymous"
	}
	if r.Rating < 1 {
		r.Rating = 1
	} else if r.Rating > 5 {
		r.Rating = 5
	}
	r.Images = helpers.RemoveDuplicates(r.Images)
}

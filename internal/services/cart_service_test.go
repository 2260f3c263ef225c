package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
)

func cateringProduct() *models.Product {
	return &models.Product{
		ID:          primitive.NewObjectID(),
		Title:       "Catering Package A",
		Category:    "Catering",
		Price:       3000,
		Images:      []string{"main.jpg", "alt.jpg"},
		SupplierID:  "sup-1",
		CompanyName: "Fiesta Foods",
		Additionals: []models.Additional{
			{Title: "Lechon", Price: 500},
			{Title: "Dessert Bar", Price: 250},
		},
	}
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	carts := new(mockCartRepo)
	svc := NewCartService(carts)
	product := cateringProduct()

	carts.On("GetCartByEmail", mock.Anything, "ana@example.com").
		Return(&models.Cart{UserEmail: "ana@example.com"}, nil)
	var added models.CartItem
	carts.On("AddCartItem", mock.Anything, "ana@example.com", mock.AnythingOfType("models.CartItem")).
		Run(func(args mock.Arguments) { added = args.Get(2).(models.CartItem) }).
		Return(&models.Cart{UserEmail: "ana@example.com"}, nil)

	_, err := svc.AddItem(context.Background(), "ana@example.com", product, []string{"Lechon"})
	assert.NoError(t, err)
	assert.Equal(t, product.ID.Hex(), added.ProductID)
	assert.Equal(t, "Catering Package A", added.Title)
	assert.Equal(t, 3000.0, added.Price)
	assert.Equal(t, "main.jpg", added.Image)
	assert.Equal(t, "sup-1", added.SupplierID)
	if assert.Len(t, added.Additionals, 1) {
		assert.Equal(t, "Lechon", added.Additionals[0].Title)
	}
}

func TestAddItemRejectsDuplicateTitle(t *testing.T) {
	carts := new(mockCartRepo)
	svc := NewCartService(carts)
	product := cateringProduct()

	carts.On("GetCartByEmail", mock.Anything, "ana@example.com").
		Return(&models.Cart{
			UserEmail: "ana@example.com",
			Items:     []models.CartItem{{ProductID: "other", Title: "Catering Package A"}},
		}, nil)

	_, err := svc.AddItem(context.Background(), "ana@example.com", product, nil)
	assert.ErrorIs(t, err, models.ErrConflict)
	carts.AssertNotCalled(t, "AddCartItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddItemRejectsForeignAdditional(t *testing.T) {
	carts := new(mockCartRepo)
	svc := NewCartService(carts)

	carts.On("GetCartByEmail", mock.Anything, "ana@example.com").
		Return(&models.Cart{UserEmail: "ana@example.com"}, nil)

	_, err := svc.AddItem(context.Background(), "ana@example.com", cateringProduct(), []string{"Balloon Arch"})
	assert.ErrorContains(t, err, "does not belong")
	carts.AssertNotCalled(t, "AddCartItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddItemRequiresEmail(t *testing.T) {
	svc := NewCartService(new(mockCartRepo))

	_, err := svc.AddItem(context.Background(), "  ", cateringProduct(), nil)
	assert.Error(t, err)
}

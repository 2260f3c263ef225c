package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
)

type CartService struct {
	cartRepo models.CartRepo
}

func NewCartService(cartRepo models.CartRepo) *CartService {
	return &CartService{
		cartRepo: cartRepo,
	}
}

// AddItem appends a product snapshot to the user's cart. The selected
// additionals must belong to the product; a title already in the cart is
// rejected with ErrConflict. The repo filter enforces the same rule on the
// write itself.
func (cs *CartService) AddItem(ctx context.Context, userEmail string, product *models.Product, selectedAdditionals []string) (*models.Cart, error) {
	if strings.TrimSpace(userEmail) == "" {
		return nil, fmt.Errorf("user email is required")
	}
	if product == nil {
		return nil, fmt.Errorf("product is required")
	}

	cart, err := cs.cartRepo.GetCartByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	if cart.HasItemTitled(product.Title) {
		return nil, fmt.Errorf("product %q already in cart: %w", product.Title, models.ErrConflict)
	}

	var additionals []models.Additional
	for _, title := range selectedAdditionals {
		found := false
		for _, a := range product.Additionals {
			if a.Title == title {
				additionals = append(additionals, a)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("additional %q does not belong to product %q", title, product.Title)
		}
	}

	item := models.CartItem{
		ProductID:   product.ID.Hex(),
		Title:       product.Title,
		Category:    product.Category,
		Price:       product.Price,
		SupplierID:  product.SupplierID,
		CompanyName: product.CompanyName,
		Additionals: additionals,
	}
	if len(product.Images) > 0 {
		item.Image = product.Images[0]
	}

	return cs.cartRepo.AddCartItem(ctx, userEmail, item)
}

func (cs *CartService) GetCart(ctx context.Context, userEmail string) (*models.Cart, error) {
	if strings.TrimSpace(userEmail) == "" {
		return nil, fmt.Errorf("user email is required")
	}
	return cs.cartRepo.GetCartByEmail(ctx, userEmail)
}

func (cs *CartService) RemoveItem(ctx context.Context, userEmail, productID string) error {
	if strings.TrimSpace(userEmail) == "" {
		return fmt.Errorf("user email is required")
	}
	if strings.TrimSpace(productID) == "" {
		return fmt.Errorf("product ID is required")
	}
	return cs.cartRepo.RemoveCartItem(ctx, userEmail, productID)
}

func (cs *CartService) Clear(ctx context.Context, userEmail string) error {
	if strings.TrimSpace(userEmail) == "" {
		return fmt.Errorf("user email is required")
	}
	return cs.cartRepo.ClearCart(ctx, userEmail)
}

package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/connect"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/helpers"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
)

type CatalogService struct {
	catalogRepo models.CatalogRepo
}

func NewCatalogService(catalogRepo models.CatalogRepo) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
	}
}

func (cs *CatalogService) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := models.Validate.Struct(product); err != nil {
		return nil, fmt.Errorf("invalid product data: %v", err)
	}

	if len(product.Images) > 0 && connect.Cld != nil {
		urls, err := helpers.UploadImages(ctx, connect.Cld, product.Images, helpers.ProductFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to upload images: %v", err)
		}
		product.Images = urls
	}

	return cs.catalogRepo.CreateProduct(ctx, product)
}

func (cs *CatalogService) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return cs.catalogRepo.GetProductByID(ctx, id)
}

func (cs *CatalogService) ListProducts(ctx context.Context, category, supplierID string, offset, limit int) ([]*models.Product, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}

	filter := map[string]interface{}{}
	if category != "" {
		filter["category"] = category
	}
	if supplierID != "" {
		filter["supplier_id"] = supplierID
	}
	return cs.catalogRepo.ListProducts(ctx, filter, offset, limit)
}

func (cs *CatalogService) UpdateProduct(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*models.Product, error) {
	if len(update) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}
	return cs.catalogRepo.UpdateProduct(ctx, id, update)
}

func (cs *CatalogService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	return cs.catalogRepo.DeleteProduct(ctx, id)
}

func (cs *CatalogService) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := models.Validate.Struct(category); err != nil {
		return nil, fmt.Errorf("invalid category data: %v", err)
	}
	return cs.catalogRepo.CreateCategory(ctx, category)
}

func (cs *CatalogService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return cs.catalogRepo.ListCategories(ctx)
}

func (cs *CatalogService) CreateEventType(ctx context.Context, eventType *models.EventType) (*models.EventType, error) {
	if err := models.Validate.Struct(eventType); err != nil {
		return nil, fmt.Errorf("invalid event type data: %v", err)
	}
	return cs.catalogRepo.CreateEventType(ctx, eventType)
}

func (cs *CatalogService) ListEventTypes(ctx context.Context) ([]*models.EventType, error) {
	return cs.catalogRepo.ListEventTypes(ctx)
}

func (cs *CatalogService) CreatePromo(ctx context.Context, promo *models.Promo) (*models.Promo, error) {
	if err := models.Validate.Struct(promo); err != nil {
		return nil, fmt.Errorf("invalid promo data: %v", err)
	}
	if !promo.ValidUntil.After(promo.ValidFrom) {
		return nil, fmt.Errorf("valid_until must be after valid_from")
	}
	return cs.catalogRepo.CreatePromo(ctx, promo)
}

func (cs *CatalogService) ListPromos(ctx context.Context) ([]*models.Promo, error) {
	return cs.catalogRepo.ListPromos(ctx)
}

// ListActivePromos filters the stored promos down to those applying now.
func (cs *CatalogService) ListActivePromos(ctx context.Context) ([]*models.Promo, error) {
	promos, err := cs.catalogRepo.ListPromos(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	active := make([]*models.Promo, 0, len(promos))
	for _, p := range promos {
		if p.ActiveAt(now) {
			active = append(active, p)
		}
	}
	return active, nil
}

func (cs *CatalogService) DeletePromo(ctx context.Context, id primitive.ObjectID) error {
	return cs.catalogRepo.DeletePromo(ctx, id)
}

package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"meatmarket/internal/model"
)

var productColumns = map[string]string{
	"priceInCents":  "price_in_cents",
	"meatType":      "meat_type",
	"cutType":       "cut_type",
	"weightInGrams": "weight_in_grams",
	"imageUrl":      "image_url",
}

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	// FindByIDs returns the visible products among ids keyed by product id.
	FindByIDs(ctx context.Context, ids []uint) (map[uint]model.Product, error)
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	Update(ctx context.Context, id uint, fields model.Fields) error
	SoftDelete(ctx context.Context, id uint) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND deleted = ?", id, false).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]model.Product, error) {
	out := make(map[uint]model.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var products []model.Product
	if err := r.db.WithContext(ctx).
		Where("product_id IN ? AND deleted = ?", ids, false).
		Find(&products).Error; err != nil {
		return nil, err
	}
	for _, p := range products {
		out[p.ProductID] = p
	}
	return out, nil
}

func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	q := r.db.WithContext(ctx).Where("deleted = ?", false)
	if filter.SellerID != 0 {
		q = q.Where("seller_id = ?", filter.SellerID)
	}
	if name := strings.TrimSpace(filter.Name); name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if filter.MeatType != "" {
		q = q.Where("meat_type = ?", filter.MeatType)
	}
	if filter.CutType != "" {
		q = q.Where("cut_type = ?", filter.CutType)
	}
	if filter.MinPrice > 0 {
		q = q.Where("price_in_cents >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		q = q.Where("price_in_cents <= ?", filter.MaxPrice)
	}

	products := []model.Product{}
	if err := q.Order("product_id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, id uint, fields model.Fields) error {
	return updateColumns(r.db.WithContext(ctx), "products", fields, productColumns,
		"product_id = ? AND deleted = ?", id, false)
}

func (r *productRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Exec(
		"UPDATE products SET deleted = ? WHERE product_id = ?", true, id).Error
}

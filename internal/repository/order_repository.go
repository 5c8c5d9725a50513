package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
)

var orderColumns = map[string]string{
	"pricePaidInCents": "price_paid_in_cents",
	"userId":           "user_id",
	"orderDate":        "order_date",
}

var orderProductColumns = map[string]string{
	"quantity":     "quantity",
	"priceInCents": "price_in_cents",
}

const orderRowsSQL = `SELECT o.order_id,
       o.user_id,
       o.price_paid_in_cents,
       o.status,
       o.order_date,
       op.product_id,
       op.quantity,
       op.price_in_cents
FROM orders o
JOIN order_products op ON o.order_id = op.order_id
WHERE o.deleted = ? AND op.deleted = ?`

const orderRowsOrder = ` ORDER BY o.order_id, op.order_product_id`

// OrderRepository defines order persistence operations. Orders are always
// read together with their visible line items.
type OrderRepository interface {
	// Create inserts the order and one order_products row per item in one
	// transaction. order.OrderID is set on success.
	Create(ctx context.Context, order *model.Order, items []model.LineItem) error
	FindAll(ctx context.Context) ([]model.Order, error)
	FindByUser(ctx context.Context, userID uint) ([]model.Order, error)
	// FindByID returns gorm.ErrRecordNotFound when the order has no visible
	// line items.
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	// Exists reports whether the order row itself is visible.
	Exists(ctx context.Context, id uint) (bool, error)
	// Update applies fields to the order row and each item to the line item
	// of the same product within the order.
	Update(ctx context.Context, id uint, fields model.Fields, items []model.LineItemUpdate) error
	// SoftDelete flags the order and all of its line items deleted.
	SoftDelete(ctx context.Context, id uint) error
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// orderRow is one order joined to one of its line items.
type orderRow struct {
	OrderID          uint
	UserID           uint
	PricePaidInCents int64
	Status           string
	OrderDate        time.Time
	ProductID        uint
	Quantity         int
	PriceInCents     int64
}

// groupOrderRows nests line items under their order. Orders keep the order of
// their first row, line items keep row order.
func groupOrderRows(rows []orderRow) []model.Order {
	orders := []model.Order{}
	index := make(map[uint]int)

	for _, row := range rows {
		i, ok := index[row.OrderID]
		if !ok {
			i = len(orders)
			index[row.OrderID] = i
			orders = append(orders, model.Order{
				OrderID:          row.OrderID,
				UserID:           row.UserID,
				PricePaidInCents: row.PricePaidInCents,
				Status:           row.Status,
				OrderDate:        row.OrderDate,
				Products:         []model.LineItem{},
			})
		}
		orders[i].Products = append(orders[i].Products, model.LineItem{
			ProductID:    row.ProductID,
			Quantity:     row.Quantity,
			PriceInCents: row.PriceInCents,
		})
	}

	return orders
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order, items []model.LineItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return err
		}

		rows := make([]model.OrderProduct, 0, len(items))
		for _, it := range items {
			rows = append(rows, model.OrderProduct{
				OrderID:      order.OrderID,
				ProductID:    it.ProductID,
				Quantity:     it.Quantity,
				PriceInCents: it.PriceInCents,
			})
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Omit(clause.Associations).Create(&rows).Error
	})
}

func (r *orderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	var rows []orderRow
	if err := r.db.WithContext(ctx).
		Raw(orderRowsSQL+orderRowsOrder, false, false).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return groupOrderRows(rows), nil
}

func (r *orderRepository) FindByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	var rows []orderRow
	if err := r.db.WithContext(ctx).
		Raw(orderRowsSQL+" AND o.user_id = ?"+orderRowsOrder, false, false, userID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return groupOrderRows(rows), nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var rows []orderRow
	if err := r.db.WithContext(ctx).
		Raw(orderRowsSQL+" AND o.order_id = ?"+orderRowsOrder, false, false, id).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	orders := groupOrderRows(rows)
	if len(orders) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &orders[0], nil
}

func (r *orderRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ? AND deleted = ?", id, false).
		Count(&count).Error
	return count > 0, err
}

func (r *orderRepository) Update(ctx context.Context, id uint, fields model.Fields, items []model.LineItemUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := updateColumns(tx, "orders", fields, orderColumns,
				"order_id = ? AND deleted = ?", id, false); err != nil {
				return err
			}
		}

		for _, it := range items {
			var count int64
			if err := tx.Model(&model.OrderProduct{}).
				Where("order_id = ? AND product_id = ? AND deleted = ?", id, it.ProductID, false).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return apperr.NotFound("No order product found with product ID: %d", it.ProductID)
			}
			if err := updateColumns(tx, "order_products", it.Fields(), orderProductColumns,
				"order_id = ? AND product_id = ? AND deleted = ?", id, it.ProductID, false); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("UPDATE orders SET deleted = ? WHERE order_id = ?", true, id).Error; err != nil {
			return err
		}
		return tx.Exec("UPDATE order_products SET deleted = ? WHERE order_id = ? AND deleted = ?", true, id, false).Error
	})
}

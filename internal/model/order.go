package model

import "time"

// OrderStatusProcessing is the status every order starts with.
const OrderStatusProcessing = "processing"

// Order is a user's purchase. Products holds the visible line items and is
// filled by the repository, it is not a column.
type Order struct {
	OrderID          uint       `json:"orderId" gorm:"column:order_id;primaryKey;autoIncrement"`
	UserID           uint       `json:"userId" gorm:"not null;index"`
	PricePaidInCents int64      `json:"pricePaidInCents" gorm:"not null"`
	Status           string     `json:"status" gorm:"size:50;not null"`
	OrderDate        time.Time  `json:"orderDate" gorm:"not null"`
	Deleted          bool       `json:"-" gorm:"not null;default:false;index"`
	Products         []LineItem `json:"products" gorm:"-"`

	User User `json:"-" gorm:"foreignKey:UserID;references:UserID"`
}

// TableName overrides the table name used by Order.
func (Order) TableName() string { return "orders" }

// OrderProduct joins an order to a product with the quantity bought and the
// price in cents at the time of the order.
type OrderProduct struct {
	OrderProductID uint  `json:"-" gorm:"column:order_product_id;primaryKey;autoIncrement"`
	OrderID        uint  `json:"orderId" gorm:"not null;index"`
	ProductID      uint  `json:"productId" gorm:"not null;index"`
	Quantity       int   `json:"quantity" gorm:"not null"`
	PriceInCents   int64 `json:"priceInCents" gorm:"not null"`
	Deleted        bool  `json:"-" gorm:"not null;default:false;index"`

	Order   Order   `json:"-" gorm:"foreignKey:OrderID;references:OrderID"`
	Product Product `json:"-" gorm:"foreignKey:ProductID;references:ProductID"`
}

// TableName overrides the table name used by OrderProduct.
func (OrderProduct) TableName() string { return "order_products" }

// LineItem is one product entry of an order.
type LineItem struct {
	ProductID    uint  `json:"productId"`
	Quantity     int   `json:"quantity"`
	PriceInCents int64 `json:"priceInCents"`
}

// NewLineItem is a requested line item; the price comes from the product.
type NewLineItem struct {
	ProductID uint `json:"productId" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}

// LineItemUpdate changes the quantity and/or price snapshot of the line item
// for ProductID.
type LineItemUpdate struct {
	ProductID    uint   `json:"productId" validate:"required"`
	Quantity     *int   `json:"quantity,omitempty" validate:"omitempty,min=1"`
	PriceInCents *int64 `json:"priceInCents,omitempty" validate:"omitempty,min=0"`
}

// Fields lists the set fields of u.
func (u LineItemUpdate) Fields() Fields {
	var f Fields
	f = f.addInt("quantity", u.Quantity)
	f = f.addInt64("priceInCents", u.PriceInCents)
	return f
}

// OrderUpdate is a partial update of an order and optionally its line items.
type OrderUpdate struct {
	UserID           *uint            `json:"userId,omitempty"`
	PricePaidInCents *int64           `json:"pricePaidInCents,omitempty" validate:"omitempty,min=0"`
	Status           *string          `json:"status,omitempty" validate:"omitempty,min=1,max=50"`
	OrderDate        *time.Time       `json:"orderDate,omitempty"`
	Products         []LineItemUpdate `json:"products,omitempty" validate:"omitempty,dive"`
}

// Fields lists the order-table fields of u in declaration order.
func (u OrderUpdate) Fields() Fields {
	var f Fields
	f = f.addUint("userId", u.UserID)
	f = f.addInt64("pricePaidInCents", u.PricePaidInCents)
	f = f.addString("status", u.Status)
	f = f.addTime("orderDate", u.OrderDate)
	return f
}

package model

// Product is a cut of meat listed by a seller.
type Product struct {
	ProductID     uint   `json:"productId" gorm:"column:product_id;primaryKey;autoIncrement"`
	SellerID      uint   `json:"sellerId" gorm:"not null;index"`
	Name          string `json:"name" gorm:"size:255;not null"`
	Description   string `json:"description" gorm:"type:text"`
	PriceInCents  int64  `json:"priceInCents" gorm:"not null"`
	MeatType      string `json:"meatType" gorm:"size:100;index"`
	CutType       string `json:"cutType" gorm:"size:100;index"`
	WeightInGrams int    `json:"weightInGrams"`
	ImageURL      string `json:"imageUrl" gorm:"column:image_url;size:2048"`
	Deleted       bool   `json:"-" gorm:"not null;default:false;index"`

	Seller Seller `json:"-" gorm:"foreignKey:SellerID;references:SellerID"`
}

// TableName overrides the table name used by Product.
func (Product) TableName() string { return "products" }

// ProductFilter narrows a product listing. Zero values are ignored.
type ProductFilter struct {
	SellerID uint   `query:"sellerId"`
	Name     string `query:"name"`
	MeatType string `query:"meatType"`
	CutType  string `query:"cutType"`
	MinPrice int64  `query:"minPrice"`
	MaxPrice int64  `query:"maxPrice"`
}

// ProductUpdate is a partial update of a product.
type ProductUpdate struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description   *string `json:"description,omitempty"`
	PriceInCents  *int64  `json:"priceInCents,omitempty" validate:"omitempty,min=0"`
	MeatType      *string `json:"meatType,omitempty" validate:"omitempty,max=100"`
	CutType       *string `json:"cutType,omitempty" validate:"omitempty,max=100"`
	WeightInGrams *int    `json:"weightInGrams,omitempty" validate:"omitempty,min=0"`
	ImageURL      *string `json:"imageUrl,omitempty" validate:"omitempty,max=2048"`
}

// Fields lists the set fields of u in declaration order.
func (u ProductUpdate) Fields() Fields {
	var f Fields
	f = f.addString("name", u.Name)
	f = f.addString("description", u.Description)
	f = f.addInt64("priceInCents", u.PriceInCents)
	f = f.addString("meatType", u.MeatType)
	f = f.addString("cutType", u.CutType)
	f = f.addInt("weightInGrams", u.WeightInGrams)
	f = f.addString("imageUrl", u.ImageURL)
	return f
}

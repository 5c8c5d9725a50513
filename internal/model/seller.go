package model

import "github.com/shopspring/decimal"

// Seller is the selling profile of a User. SellerID is the user's primary key.
type Seller struct {
	SellerID    uint            `json:"sellerId" gorm:"column:seller_id;primaryKey;autoIncrement:false"`
	CompanyName string          `json:"companyName" gorm:"size:255;uniqueIndex;not null"`
	ContactInfo string          `json:"contactInfo" gorm:"size:255"`
	Rating      decimal.Decimal `json:"rating" gorm:"type:decimal(3,2);not null;default:0"`
	SalesCount  int             `json:"salesCount" gorm:"not null;default:0"`
	Deleted     bool            `json:"-" gorm:"not null;default:false;index"`

	User User `json:"-" gorm:"foreignKey:SellerID;references:UserID"`
}

// TableName overrides the table name used by Seller.
func (Seller) TableName() string { return "sellers" }

// SellerProfile combines a seller with the user it extends.
type SellerProfile struct {
	SellerID        uint            `json:"sellerId"`
	Username        string          `json:"username"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Email           string          `json:"email"`
	ShippingAddress string          `json:"shippingAddress"`
	CompanyName     string          `json:"companyName"`
	ContactInfo     string          `json:"contactInfo"`
	Rating          decimal.Decimal `json:"rating"`
	SalesCount      int             `json:"salesCount"`
}

// NewSellerProfile merges s and u.
func NewSellerProfile(s *Seller, u *User) *SellerProfile {
	return &SellerProfile{
		SellerID:        s.SellerID,
		Username:        u.Username,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Email:           u.Email,
		ShippingAddress: u.ShippingAddress,
		CompanyName:     s.CompanyName,
		ContactInfo:     s.ContactInfo,
		Rating:          s.Rating,
		SalesCount:      s.SalesCount,
	}
}

// SellerUpdate is a partial update of a seller and its user.
type SellerUpdate struct {
	UserUpdate
	CompanyName *string `json:"companyName,omitempty" validate:"omitempty,min=1,max=255"`
	ContactInfo *string `json:"contactInfo,omitempty" validate:"omitempty,max=255"`
}

// SellerFields lists the seller-table fields of u.
func (u SellerUpdate) SellerFields() Fields {
	var f Fields
	f = f.addString("companyName", u.CompanyName)
	f = f.addString("contactInfo", u.ContactInfo)
	return f
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Review is a user's rating and comment on a product.
type Review struct {
	ReviewID   uint            `json:"reviewId" gorm:"column:review_id;primaryKey;autoIncrement"`
	UserID     uint            `json:"userId" gorm:"not null;index"`
	ProductID  uint            `json:"productId" gorm:"not null;index"`
	Rating     decimal.Decimal `json:"rating" gorm:"type:decimal(2,1);not null"`
	Comment    string          `json:"comment" gorm:"type:text"`
	ReviewDate time.Time       `json:"reviewDate" gorm:"not null"`
	Deleted    bool            `json:"-" gorm:"not null;default:false;index"`

	User    User    `json:"-" gorm:"foreignKey:UserID;references:UserID"`
	Product Product `json:"-" gorm:"foreignKey:ProductID;references:ProductID"`
}

// TableName overrides the table name used by Review.
func (Review) TableName() string { return "reviews" }

// ReviewUpdate is a partial update of a review.
type ReviewUpdate struct {
	Rating  *decimal.Decimal `json:"rating,omitempty"`
	Comment *string          `json:"comment,omitempty"`
}

// Fields lists the set fields of u in declaration order.
func (u ReviewUpdate) Fields() Fields {
	var f Fields
	if u.Rating != nil {
		f = f.Add("rating", *u.Rating)
	}
	f = f.addString("comment", u.Comment)
	return f
}

package model

// User represents a registered buyer or, when IsSeller is set, the account
// behind a Seller profile.
type User struct {
	UserID          uint   `json:"userId" gorm:"column:user_id;primaryKey;autoIncrement"`
	Username        string `json:"username" gorm:"size:30;uniqueIndex;not null"`
	Password        string `json:"-" gorm:"size:255;not null"` // bcrypt hash, never exposed
	FirstName       string `json:"firstName" gorm:"size:255;not null"`
	LastName        string `json:"lastName" gorm:"size:255;not null"`
	Email           string `json:"email" gorm:"size:255;uniqueIndex;not null"`
	ShippingAddress string `json:"shippingAddress" gorm:"type:text"`
	IsSeller        bool   `json:"isSeller" gorm:"not null;default:false"`
	Deleted         bool   `json:"-" gorm:"not null;default:false;index"`
}

// TableName overrides the table name used by User.
func (User) TableName() string { return "users" }

// UserUpdate is a partial update of a user. Nil fields are left untouched.
type UserUpdate struct {
	FirstName       *string `json:"firstName,omitempty" validate:"omitempty,min=1,max=255"`
	LastName        *string `json:"lastName,omitempty" validate:"omitempty,min=1,max=255"`
	Password        *string `json:"password,omitempty" validate:"omitempty,min=5,max=20"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	ShippingAddress *string `json:"shippingAddress,omitempty" validate:"omitempty,max=255"`
}

// Fields lists the set fields of u in declaration order.
func (u UserUpdate) Fields() Fields {
	var f Fields
	f = f.addString("firstName", u.FirstName)
	f = f.addString("lastName", u.LastName)
	f = f.addString("password", u.Password)
	f = f.addString("email", u.Email)
	f = f.addString("shippingAddress", u.ShippingAddress)
	return f
}

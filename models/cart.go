package models

import "time"

// Cart is one user/product line, not a container: a user's cart is the set
// of rows carrying their id.
type Cart struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint `gorm:"not null;index" json:"userId"`
	ProductID uint `gorm:"not null;index" json:"productId"`
	Quantity  int  `gorm:"not null" json:"quantity"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

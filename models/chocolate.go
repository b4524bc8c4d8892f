package models

import "time"

// Chocolate deletion cascades to products that reference it; the cascade is
// done explicitly in the controller so it works the same on every dialect.
type Chocolate struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Type  string  `gorm:"unique;not null" json:"type"`
	Price float64 `gorm:"not null" json:"price"`

	Products []Product `gorm:"foreignKey:ChocolateID" json:"products,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

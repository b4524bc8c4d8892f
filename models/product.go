package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Product is a base chocolate combined with a nut variety, grouped by
// category. Price holds the final stored price: when BoxSize is set the
// creating handler has already multiplied the unit price by the box size.
type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	NutID       uint            `gorm:"not null" json:"nutId"`
	ChocolateID uint            `gorm:"not null" json:"chocolateId"`
	CategoryID  uint            `gorm:"not null" json:"categoryId"`
	UserID      uint            `gorm:"not null" json:"userId"`
	BoxSize     *int            `json:"boxSize,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string          `json:"image"`

	// Supplementary ids for composite products, stored as JSON columns.
	ExtraNutIDs       datatypes.JSONSlice[uint] `json:"extraNutIds,omitempty"`
	ExtraChocolateIDs datatypes.JSONSlice[uint] `json:"extraChocolateIds,omitempty"`

	Nut       *Nut       `gorm:"foreignKey:NutID" json:"nut,omitempty"`
	Chocolate *Chocolate `gorm:"foreignKey:ChocolateID" json:"chocolate,omitempty"`
	Category  *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`

	OrderDetails []OrderDetail `gorm:"foreignKey:ProductID" json:"orderDetails,omitempty"`
	Feedbacks    []Feedback    `gorm:"foreignKey:ProductID" json:"feedbacks,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

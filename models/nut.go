package models

import "time"

type Nut struct {
	ID      uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Variety string  `gorm:"unique;not null" json:"variety"`
	Price   float64 `gorm:"not null" json:"price"`

	Products []Product `gorm:"foreignKey:NutID" json:"products,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

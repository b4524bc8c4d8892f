package models

import "time"

// Feedback allows one entry per (product, user) pair. The handler pre-checks
// for an existing pair and the composite unique index backstops the race.
// JSON field names keep the capitalised form the public API has always used.
type Feedback struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Comment   string `gorm:"not null" json:"comment"`
	ProductID uint   `gorm:"not null;uniqueIndex:idx_feedback_product_user" json:"ProductId"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_feedback_product_user" json:"UserId"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package models

import "time"

type OrderStatus string
type PaymentMethod string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"

	PaymentMethodCash      PaymentMethod = "cash"
	PaymentMethodWishmoney PaymentMethod = "wishmoney"
)

// Order keeps the client-supplied subtotal and final price; the server does
// not recompute them from the order details.
type Order struct {
	ID            uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint          `gorm:"not null;index" json:"userId"`
	SubtotalPrice float64       `gorm:"not null" json:"subtotalPrice"`
	Price         float64       `gorm:"not null" json:"price"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);not null" json:"status"`
	PaymentMethod PaymentMethod `gorm:"type:VARCHAR(20);not null" json:"paymentMethod"`

	User         *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	OrderDetails []OrderDetail `gorm:"foreignKey:OrderID" json:"orderDetails,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

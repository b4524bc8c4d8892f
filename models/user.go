package models

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID       uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email    string   `gorm:"unique;not null" json:"email"`
	Password string   `gorm:"not null" json:"-"`
	Name     string   `json:"name"`
	Role     Role     `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	Address  *Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	Products  []Product  `gorm:"foreignKey:UserID" json:"products,omitempty"`
	Orders    []Order    `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	Feedbacks []Feedback `gorm:"foreignKey:UserID" json:"feedbacks,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Address is embedded in User; the whole block is optional.
type Address struct {
	Phone            string `json:"phone"`
	Region           string `json:"region"`
	AddressDirection string `json:"address_direction"`
	Building         string `json:"building"`
	Floor            string `json:"floor"`
}

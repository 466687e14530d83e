// internal/models/driver.go
package models

import (
	"gorm.io/gorm"
)

type Driver struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"unique"` // Foreign key to User
	User   User `gorm:"foreignKey:UserID"`     // User association

	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	// Email and password live on the User model, not here.
}

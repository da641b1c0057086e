package models

import "gorm.io/gorm"

// DefaultProfilePicture is used until the customer uploads their own.
const DefaultProfilePicture = "profile-picture.png"

// Customer is the profile record behind a customer account. UserID is
// nullable on purpose: when the user account is removed the profile (and its
// order history) survives with the reference set to NULL.
type Customer struct {
	gorm.Model
	UserID         *uint  `gorm:"uniqueIndex" json:"user_id"`
	User           *User  `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	Name           string `gorm:"size:100" json:"name"`
	Phone          string `gorm:"size:20" json:"phone"`
	Email          string `gorm:"size:255" json:"email"`
	ProfilePicture string `gorm:"size:255;default:profile-picture.png" json:"profile_picture"`
}

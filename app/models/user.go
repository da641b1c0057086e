package models

import "gorm.io/gorm"

// Role is the single access category assigned to a user. A user holds
// exactly one role, written once by account provisioning; an empty role
// grants nothing beyond unauthenticated routes.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

func (r Role) String() string { return string(r) }

// User is the credential-bearing account. The customer profile hangs off it
// one-to-one (see Customer) and is created by provisioning, never by hand.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	Role     Role   `gorm:"size:50;default:''" json:"role"`
}

// RoleGroup is the fixed set of role groups the installation is seeded with.
// Provisioning requires the "customer" group to pre-exist; it is never
// created on demand.
type RoleGroup struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;size:50;not null" json:"name"`
}

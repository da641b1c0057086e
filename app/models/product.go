package models

import "gorm.io/gorm"

// Product categories. The catalogue only distinguishes indoor and outdoor
// plants; anything else is rejected at validation time.
const (
	CategoryIndoor  = "Indoor"
	CategoryOutdoor = "Outdoor"
)

// Product is a catalogue entry. Orders reference products but never own
// them; deleting a product orphans its orders (reference set to NULL).
type Product struct {
	gorm.Model
	Name        string  `gorm:"size:200;not null;index" json:"name"`
	Price       float64 `gorm:"not null;default:0" json:"price"`
	Category    string  `gorm:"size:50" json:"category"`
	Description string  `gorm:"type:text" json:"description"`
	Tags        []Tag   `gorm:"many2many:product_tags" json:"tags"`
}

// Tag is a free-form label attached to products, many-to-many.
type Tag struct {
	gorm.Model
	Name string `gorm:"size:50;not null" json:"name"`
}

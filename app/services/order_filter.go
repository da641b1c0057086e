package services

import (
	"time"

	"gorm.io/gorm"
)

// OrderFilter narrows an order listing. Zero-valued fields are skipped, so
// an empty filter returns the full set unchanged.
type OrderFilter struct {
	Status string    // exact match against a known status
	Note   string    // substring match on the note
	From   time.Time // created at or after
	To     time.Time // created at or before
}

// Apply layers the active criteria onto the query. Conditions combine with
// AND.
func (f OrderFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Note != "" {
		q = q.Where("note LIKE ?", "%"+f.Note+"%")
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at <= ?", f.To)
	}
	return q
}

// IsZero reports whether no criteria are set.
func (f OrderFilter) IsZero() bool {
	return f.Status == "" && f.Note == "" && f.From.IsZero() && f.To.IsZero()
}

package category

import "time"

// Category identifiers come from the client and must be unique.
// CreatedBy is stamped from the authenticated caller at creation, never
// trusted from the request body, and immutable afterwards.
type Category struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedBy    string    `gorm:"index;not null" json:"created_by"`
	CreationDate time.Time `gorm:"not null;default:now()" json:"creation_date"`
}

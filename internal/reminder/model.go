package reminder

import "time"

// Reminder identifiers are strings: client-supplied when present,
// store-assigned otherwise. A duplicate id at creation is rejected, not
// overwritten. CreationDate is always server-assigned.
type Reminder struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Type         string    `json:"type"`
	CreationDate time.Time `gorm:"not null;default:now()" json:"creation_date"`
}

package note

import (
	"time"

	"github.com/lib/pq"
)

// Note is the page-oriented resource. CreatedAt is server-assigned at
// creation and preserved across updates; UpdatedAt tracks the last
// full-record replace.
type Note struct {
	ID        int            `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Status    string         `gorm:"not null" json:"status"`
	Tags      pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"tags"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

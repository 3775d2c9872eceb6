package models

import (
	"time"

	"github.com/google/uuid"
)

// Categorie classifies signalements. Categories are never hard-deleted;
// deactivation hides them from new submissions while keeping history intact.
type Categorie struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nom         string    `gorm:"size:100;not null;uniqueIndex" json:"nom"`
	Description *string   `gorm:"size:500" json:"description"`
	Couleur     *string   `gorm:"size:20" json:"couleur"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `json:"createdAt"`

	// Populated by admin list queries via subselect; not a real column.
	NbSignalements int64 `gorm:"->;-:migration" json:"nbSignalements"`
}

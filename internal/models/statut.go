package models

import (
	"time"

	"github.com/google/uuid"
)

// Statut is a triage stage. Ordre ranks stages for display and selects the
// default initial stage (lowest non-final ordre). EstFinal is descriptive
// only: transitions out of a final statut are not blocked.
type Statut struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nom         string    `gorm:"size:100;not null;uniqueIndex" json:"nom"`
	Description *string   `gorm:"size:500" json:"description"`
	Couleur     *string   `gorm:"size:20" json:"couleur"`
	Ordre       int       `gorm:"not null;default:0" json:"ordre"`
	EstFinal    bool      `gorm:"not null;default:false" json:"estFinal"`
	CreatedAt   time.Time `json:"createdAt"`

	// Populated by admin list queries via subselect; not a real column.
	NbSignalements int64 `gorm:"->;-:migration" json:"nbSignalements"`
}

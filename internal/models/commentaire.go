package models

import (
	"time"

	"github.com/google/uuid"
)

// Commentaire is an anonymous comment on a signalement. Append-only.
type Commentaire struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SignalementID uuid.UUID `gorm:"type:uuid;not null;index" json:"signalementId"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	CreatedAt     time.Time `json:"createdAt"`
}

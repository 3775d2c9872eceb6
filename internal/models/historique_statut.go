package models

import (
	"time"

	"github.com/google/uuid"
)

// HistoriqueStatut is the append-only audit trail of status transitions.
// A row is written in the same transaction as the signalement's status
// update, so the trail and the current statut can never diverge.
type HistoriqueStatut struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SignalementID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"signalementId"`
	AncienStatutID  *uuid.UUID `gorm:"type:uuid" json:"ancienStatutId"`
	NouveauStatutID uuid.UUID  `gorm:"type:uuid;not null" json:"nouveauStatutId"`
	AdminID         uuid.UUID  `gorm:"type:uuid;not null" json:"-"`
	Commentaire     *string    `gorm:"size:1000" json:"commentaire"`
	CreatedAt       time.Time  `json:"createdAt"`

	AncienStatut   *Statut         `gorm:"foreignKey:AncienStatutID" json:"ancienStatut,omitempty"`
	NouveauStatut  *Statut         `gorm:"foreignKey:NouveauStatutID" json:"nouveauStatut,omitempty"`
	Administrateur *Administrateur `gorm:"foreignKey:AdminID" json:"-"`
}

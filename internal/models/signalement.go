package models

import (
	"time"

	"github.com/google/uuid"
)

// Signalement is an anonymous report. It carries no author identity at all;
// the tracking code is the only handle a citizen keeps on it.
type Signalement struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Titre       string    `gorm:"size:255;not null" json:"titre"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CategorieID uuid.UUID `gorm:"type:uuid;not null;index" json:"categorieId"`
	StatutID    uuid.UUID `gorm:"type:uuid;not null;index" json:"statutId"`
	Lieu        *string   `gorm:"size:255" json:"lieu"`
	MediaURL    *string   `gorm:"size:512" json:"mediaUrl"`
	Votes       int       `gorm:"not null;default:0" json:"votes"`
	CodeSuivi   string    `gorm:"size:30;not null;uniqueIndex" json:"codeSuivi"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Populated by list queries via subselect; not a real column.
	NbCommentaires int64 `gorm:"->;-:migration" json:"nbCommentaires"`

	Categorie         *Categorie         `gorm:"foreignKey:CategorieID" json:"categorie,omitempty"`
	Statut            *Statut            `gorm:"foreignKey:StatutID" json:"statut,omitempty"`
	Commentaires      []Commentaire      `gorm:"foreignKey:SignalementID" json:"commentaires,omitempty"`
	HistoriqueStatuts []HistoriqueStatut `gorm:"foreignKey:SignalementID" json:"-"`
}

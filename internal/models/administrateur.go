package models

import (
	"time"

	"github.com/google/uuid"
)

// Administrator roles.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Administrateur is a back-office account. Only active accounts can log in
// or act on signalements.
type Administrateur struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email      string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Nom        string    `gorm:"size:255;not null" json:"nom"`
	MotDePasse string    `gorm:"not null" json:"-"`
	Role       string    `gorm:"size:20;not null;default:'admin'" json:"role"`
	Actif      bool      `gorm:"not null;default:true" json:"actif"`
	CreatedAt  time.Time `json:"createdAt"`
}

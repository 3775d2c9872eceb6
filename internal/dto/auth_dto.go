package dto

import (
	"time"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email      string `json:"email"`
	MotDePasse string `json:"motDePasse"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	Admin   AdminSummary `json:"admin"`
}

// AdminSummary is the public-safe view of an administrator. The credential
// hash never travels through it.
type AdminSummary struct {
	ID    uuid.UUID `json:"id"`
	Nom   string    `json:"nom"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
	Actif bool      `json:"actif"`
}

type AdminResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Nom       string    `json:"nom"`
	Role      string    `json:"role"`
	Actif     bool      `json:"actif"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateAdminRequest struct {
	Email      string `json:"email"`
	Nom        string `json:"nom"`
	MotDePasse string `json:"motDePasse"`
	Role       string `json:"role"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

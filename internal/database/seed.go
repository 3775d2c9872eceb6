package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/denonce-tg/signalement-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func ptr(s string) *string { return &s }

var defaultCategories = []models.Categorie{
	{Nom: "Corruption", Description: ptr("Signalements liés à la corruption"), Couleur: ptr("#dc2626")},
	{Nom: "Fraude", Description: ptr("Signalements de fraude"), Couleur: ptr("#ea580c")},
	{Nom: "Abus de pouvoir", Description: ptr("Signalements d'abus de pouvoir"), Couleur: ptr("#7c2d12")},
	{Nom: "Détournement", Description: ptr("Détournement de fonds publics"), Couleur: ptr("#991b1b")},
	{Nom: "Harcèlement", Description: ptr("Harcèlement moral ou sexuel"), Couleur: ptr("#7c2d12")},
	{Nom: "Discrimination", Description: ptr("Actes discriminatoires"), Couleur: ptr("#9333ea")},
	{Nom: "Environnement", Description: ptr("Violations environnementales"), Couleur: ptr("#059669")},
	{Nom: "Autre", Description: ptr("Autres types de signalements"), Couleur: ptr("#6b7280")},
}

var defaultStatuts = []models.Statut{
	{Nom: "Non traité", Description: ptr("Signalement reçu, en attente de traitement"), Couleur: ptr("#6b7280"), Ordre: 1},
	{Nom: "En cours d'examen", Description: ptr("Signalement en cours d'analyse"), Couleur: ptr("#f59e0b"), Ordre: 2},
	{Nom: "En enquête", Description: ptr("Enquête en cours"), Couleur: ptr("#3b82f6"), Ordre: 3},
	{Nom: "Résolu", Description: ptr("Signalement traité et résolu"), Couleur: ptr("#10b981"), Ordre: 4, EstFinal: true},
	{Nom: "Rejeté", Description: ptr("Signalement rejeté après examen"), Couleur: ptr("#ef4444"), Ordre: 5, EstFinal: true},
	{Nom: "Classé sans suite", Description: ptr("Signalement classé sans suite"), Couleur: ptr("#6b7280"), Ordre: 6, EstFinal: true},
}

type seedAdmin struct {
	Email      string
	Nom        string
	MotDePasse string
	Role       string
}

var defaultAdmins = []seedAdmin{
	{Email: "admin@denonce.tg", Nom: "Super Administrateur", MotDePasse: "admin123", Role: models.RoleSuperAdmin},
	{Email: "moderateur@denonce.tg", Nom: "Modérateur Principal", MotDePasse: "admin456", Role: models.RoleAdmin},
}

// Seed provisions the default categories, statuses and administrator
// accounts. Idempotent: existing rows (matched by unique name/email) are
// left untouched.
func Seed() error {
	for _, categorie := range defaultCategories {
		c := categorie
		c.Active = true
		var existing models.Categorie
		err := DB.Where("nom = ?", c.Nom).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check categorie %q: %w", c.Nom, err)
		}
		if err := DB.Create(&c).Error; err != nil {
			return fmt.Errorf("failed to seed categorie %q: %w", c.Nom, err)
		}
	}
	slog.Info("categories seeded", "count", len(defaultCategories))

	for _, statut := range defaultStatuts {
		st := statut
		var existing models.Statut
		err := DB.Where("nom = ?", st.Nom).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check statut %q: %w", st.Nom, err)
		}
		if err := DB.Create(&st).Error; err != nil {
			return fmt.Errorf("failed to seed statut %q: %w", st.Nom, err)
		}
	}
	slog.Info("statuts seeded", "count", len(defaultStatuts))

	for _, sa := range defaultAdmins {
		var existing models.Administrateur
		err := DB.Where("email = ?", sa.Email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check administrateur %q: %w", sa.Email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(sa.MotDePasse), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		admin := models.Administrateur{
			Email:      sa.Email,
			Nom:        sa.Nom,
			MotDePasse: string(hash),
			Role:       sa.Role,
		}
		if err := DB.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed administrateur %q: %w", sa.Email, err)
		}
		slog.Info("administrateur seeded", "email", sa.Email, "role", sa.Role)
	}

	return nil
}

package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/denonce-tg/signalement-api/internal/dto"
	"github.com/denonce-tg/signalement-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSignalementDetail_ActorDisclosure verifies that the tracking view
// exposes only the acting administrator's name and email, never the account
// id, role or password hash.
func TestNewSignalementDetail_ActorDisclosure(t *testing.T) {
	adminID := uuid.New()
	commentaire := "Dossier transmis au service concerné"
	sig := &models.Signalement{
		ID:          uuid.New(),
		Titre:       "Coupure d'eau",
		Description: "Pas d'eau depuis trois jours",
		CodeSuivi:   "ABC123-XY9ZK",
		HistoriqueStatuts: []models.HistoriqueStatut{
			{
				ID:              uuid.New(),
				NouveauStatutID: uuid.New(),
				AdminID:         adminID,
				Commentaire:     &commentaire,
				Administrateur: &models.Administrateur{
					ID:         adminID,
					Nom:        "Modérateur",
					Email:      "moderateur@denonce.tg",
					MotDePasse: "$2a$10$hash",
					Role:       models.RoleAdmin,
				},
			},
		},
	}

	detail := dto.NewSignalementDetail(sig)
	require.Len(t, detail.HistoriqueStatuts, 1)
	assert.Equal(t, "Modérateur", detail.HistoriqueStatuts[0].Administrateur.Nom)
	assert.Equal(t, "moderateur@denonce.tg", detail.HistoriqueStatuts[0].Administrateur.Email)

	raw, err := json.Marshal(detail)
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, `"historiqueStatuts"`)
	assert.Contains(t, body, commentaire)
	assert.NotContains(t, body, "$2a$10$hash", "password hash must never serialize")
	assert.NotContains(t, body, adminID.String(), "admin account id must never serialize")
	assert.NotContains(t, body, `"role"`, "admin role must never serialize in the public view")
}

// TestNewSignalementDetail_MissingActor covers a trail entry whose
// administrator relation was not preloaded.
func TestNewSignalementDetail_MissingActor(t *testing.T) {
	sig := &models.Signalement{
		ID: uuid.New(),
		HistoriqueStatuts: []models.HistoriqueStatut{
			{ID: uuid.New(), NouveauStatutID: uuid.New()},
		},
	}

	detail := dto.NewSignalementDetail(sig)

	require.Len(t, detail.HistoriqueStatuts, 1)
	assert.Empty(t, detail.HistoriqueStatuts[0].Administrateur.Nom)
	assert.Empty(t, detail.HistoriqueStatuts[0].Administrateur.Email)
}

package services_test

import (
	"testing"

	"github.com/denonce-tg/signalement-api/internal/dto"
	"github.com/denonce-tg/signalement-api/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateCategorie_NomRequired verifies that an empty name is rejected
// before the store is touched.
func TestCreateCategorie_NomRequired(t *testing.T) {
	svc := services.NewTaxonomyService(nil)

	categorie, err := svc.CreateCategorie(&dto.CreateCategorieRequest{Nom: ""})

	require.ErrorIs(t, err, services.ErrNomRequired)
	assert.Nil(t, categorie)
}

// TestUpdateCategorie_EmptyNomRejected verifies that a partial update
// carrying a present-but-empty nom is rejected, same rule as create.
// An omitted nom stays a no-op on the name.
func TestUpdateCategorie_EmptyNomRejected(t *testing.T) {
	svc := services.NewTaxonomyService(nil)
	empty := ""

	categorie, err := svc.UpdateCategorie(uuid.New(), &dto.UpdateCategorieRequest{Nom: &empty})

	require.ErrorIs(t, err, services.ErrNomRequired)
	assert.Nil(t, categorie)
}

// TestCreateStatut_NomRequired mirrors the category rule for statuses.
func TestCreateStatut_NomRequired(t *testing.T) {
	svc := services.NewTaxonomyService(nil)

	statut, err := svc.CreateStatut(&dto.CreateStatutRequest{Nom: "", Ordre: 1})

	require.ErrorIs(t, err, services.ErrNomRequired)
	assert.Nil(t, statut)
}

package services_test

import (
	"testing"

	"github.com/denonce-tg/signalement-api/internal/dto"
	"github.com/denonce-tg/signalement-api/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These validations all run before any store access, so a nil-DB service
// is enough to exercise them.

// TestCreate_MissingFields verifies that a submission lacking any of the
// required fields is rejected up front.
func TestCreate_MissingFields(t *testing.T) {
	svc := services.NewSignalementService(nil)

	cases := []struct {
		name string
		req  dto.CreateSignalementRequest
	}{
		{"empty request", dto.CreateSignalementRequest{}},
		{"missing titre", dto.CreateSignalementRequest{Description: "desc", CategorieID: uuid.NewString()}},
		{"missing description", dto.CreateSignalementRequest{Titre: "titre", CategorieID: uuid.NewString()}},
		{"missing categorieId", dto.CreateSignalementRequest{Titre: "titre", Description: "desc"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			signalement, err := svc.Create(&tc.req)

			// Assert
			require.ErrorIs(t, err, services.ErrMissingFields)
			assert.Nil(t, signalement)
		})
	}
}

// TestCreate_MalformedCategorieID verifies that a categorieId that is not
// a UUID is rejected as an invalid category before the store is consulted.
func TestCreate_MalformedCategorieID(t *testing.T) {
	svc := services.NewSignalementService(nil)

	signalement, err := svc.Create(&dto.CreateSignalementRequest{
		Titre:       "Coupure d'eau",
		Description: "Pas d'eau depuis trois jours",
		CategorieID: "pas-un-uuid",
	})

	require.ErrorIs(t, err, services.ErrInvalidCategorie)
	assert.Nil(t, signalement)
}

// TestAddCommentaire_MessageRequired verifies that an empty message is
// rejected before the report lookup.
func TestAddCommentaire_MessageRequired(t *testing.T) {
	svc := services.NewSignalementService(nil)

	commentaire, err := svc.AddCommentaire(uuid.New(), "")

	require.ErrorIs(t, err, services.ErrMessageRequired)
	assert.Nil(t, commentaire)
}

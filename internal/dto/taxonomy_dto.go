package dto

type CreateCategorieRequest struct {
	Nom         string  `json:"nom"`
	Description *string `json:"description"`
	Couleur     *string `json:"couleur"`
}

// UpdateCategorieRequest carries a partial update; nil fields are untouched.
type UpdateCategorieRequest struct {
	Nom         *string `json:"nom"`
	Description *string `json:"description"`
	Couleur     *string `json:"couleur"`
	Active      *bool   `json:"active"`
}

type CreateStatutRequest struct {
	Nom         string  `json:"nom"`
	Description *string `json:"description"`
	Couleur     *string `json:"couleur"`
	Ordre       int     `json:"ordre"`
	EstFinal    bool    `json:"estFinal"`
}

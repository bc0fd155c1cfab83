package model

// Categoria classifies financial entries.
type Categoria struct {
	Codigo int64  `json:"codigo"`
	Nome   string `json:"nome" validate:"required,min=3,max=50"`
}

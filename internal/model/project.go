package model

// Project is a single QR design. Timestamps are ISO-8601 UTC strings as
// stored, so they round-trip through the API unchanged.
type Project struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
	OriginalURL    string  `json:"originalUrl"`
	ShortenEnabled bool    `json:"shortenEnabled"`
	ShortURL       *string `json:"shortUrl"`
	RecipeJSON     string  `json:"recipeJson"`
	LogoFilename   *string `json:"logoFilename"`
	FolderID       *string `json:"folderId"`
}

// ProjectSummary is the reduced projection returned by project listings.
// Heavy fields (recipe, URLs, shorten flag) are omitted.
type ProjectSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
	LogoFilename *string `json:"logoFilename"`
	FolderID     *string `json:"folderId"`
}

// ProjectPatch carries a partial update. Nil pointers mean "leave
// unchanged"; the Optional fields additionally distinguish an explicit
// null (clear) from absence for the nullable columns.
type ProjectPatch struct {
	Name           *string
	OriginalURL    *string
	ShortenEnabled *bool
	RecipeJSON     *string
	ShortURL       OptionalString
	LogoFilename   OptionalString
	FolderID       OptionalString
}

package server

import (
	"errors"

	"github.com/existflow/qrstudio/internal/model"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// projectBody is the request body for project create and update. Every
// field is optional; the Optional types keep "absent" and "null" apart
// so partial updates can clear nullable fields.
type projectBody struct {
	Name           model.OptionalString `json:"name"`
	OriginalURL    model.OptionalString `json:"originalUrl"`
	ShortenEnabled model.OptionalBool   `json:"shortenEnabled"`
	ShortURL       model.OptionalString `json:"shortUrl"`
	RecipeJSON     model.OptionalString `json:"recipeJson"`
	LogoFilename   model.OptionalString `json:"logoFilename"`
	FolderID       model.OptionalString `json:"folderId"`
}

func (b *projectBody) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Name, validation.By(stringNotNull)),
		validation.Field(&b.OriginalURL, validation.By(stringNotNull)),
		validation.Field(&b.ShortenEnabled, validation.By(boolNotNull)),
		validation.Field(&b.RecipeJSON, validation.By(stringNotNull)),
		validation.Field(&b.FolderID, validation.By(uuidOrNull)),
	)
}

func (b *projectBody) patch() model.ProjectPatch {
	return model.ProjectPatch{
		Name:           b.Name.Value,
		OriginalURL:    b.OriginalURL.Value,
		ShortenEnabled: b.ShortenEnabled.Value,
		RecipeJSON:     b.RecipeJSON.Value,
		ShortURL:       b.ShortURL,
		LogoFilename:   b.LogoFilename,
		FolderID:       b.FolderID,
	}
}

// folderBody is the request body for folder create and update
type folderBody struct {
	Name      model.OptionalString `json:"name"`
	SortOrder model.OptionalInt    `json:"sortOrder"`
}

func (b *folderBody) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Name, validation.By(stringNotNull)),
		validation.Field(&b.SortOrder, validation.By(intNotNull)),
	)
}

func (b *folderBody) patch() model.FolderPatch {
	return model.FolderPatch{
		Name:      b.Name.Value,
		SortOrder: b.SortOrder.Value,
	}
}

// shortenBody is the request body for the shortening proxy
type shortenBody struct {
	TargetURL  string `json:"targetUrl"`
	CustomSlug string `json:"customSlug"`
}

func (b *shortenBody) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.TargetURL, validation.Required, is.URL),
	)
}

// Rules for the Optional field types. Non-nullable fields may be absent
// but not explicitly null; folderId must be null or a well-formed UUID.

func stringNotNull(value interface{}) error {
	o := value.(model.OptionalString)
	if o.Present && o.Value == nil {
		return errors.New("must be a string")
	}
	return nil
}

func boolNotNull(value interface{}) error {
	o := value.(model.OptionalBool)
	if o.Present && o.Value == nil {
		return errors.New("must be a boolean")
	}
	return nil
}

func intNotNull(value interface{}) error {
	o := value.(model.OptionalInt)
	if o.Present && o.Value == nil {
		return errors.New("must be a number")
	}
	return nil
}

func uuidOrNull(value interface{}) error {
	o := value.(model.OptionalString)
	if o.Present && o.Value != nil {
		if _, err := uuid.Parse(*o.Value); err != nil {
			return errors.New("must be a valid UUID")
		}
	}
	return nil
}

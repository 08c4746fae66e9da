package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/existflow/qrstudio/internal/model"
	"github.com/google/uuid"
)

// CreateProject inserts a new project, applying defaults for any field
// the caller did not supply, and returns the stored record.
func (s *Store) CreateProject(fields model.ProjectPatch) (*model.Project, error) {
	id := uuid.NewString()
	now := s.timestamp()

	name := "Untitled QR"
	if fields.Name != nil {
		name = *fields.Name
	}
	originalURL := ""
	if fields.OriginalURL != nil {
		originalURL = *fields.OriginalURL
	}
	shortenEnabled := 0
	if fields.ShortenEnabled != nil && *fields.ShortenEnabled {
		shortenEnabled = 1
	}
	recipeJSON := "{}"
	if fields.RecipeJSON != nil {
		recipeJSON = *fields.RecipeJSON
	}

	_, err := s.db.Exec(
		`INSERT INTO projects (id, name, createdAt, updatedAt, originalUrl, shortenEnabled, shortUrl, recipeJson, logoFilename, folderId)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, name, now, now, originalURL, shortenEnabled,
		fields.ShortURL.Value, recipeJSON, fields.LogoFilename.Value, fields.FolderID.Value,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}

	return s.GetProject(id)
}

// GetProject returns the full project record, or nil when no project
// with the given id exists.
func (s *Store) GetProject(id string) (*model.Project, error) {
	row := s.db.QueryRow(
		`SELECT id, name, createdAt, updatedAt, originalUrl, shortenEnabled, shortUrl, recipeJson, logoFilename, folderId
		 FROM projects WHERE id = ?`, id)

	var p model.Project
	var shortenEnabled int
	var shortURL, logoFilename, folderID sql.NullString
	err := row.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt, &p.OriginalURL,
		&shortenEnabled, &shortURL, &p.RecipeJSON, &logoFilename, &folderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read project: %w", err)
	}

	p.ShortenEnabled = shortenEnabled != 0
	p.ShortURL = nullableString(shortURL)
	p.LogoFilename = nullableString(logoFilename)
	p.FolderID = nullableString(folderID)
	return &p, nil
}

// ListProjects returns the reduced listing projection, newest first.
// The id tiebreak keeps the order deterministic for equal timestamps.
func (s *Store) ListProjects() ([]model.ProjectSummary, error) {
	rows, err := s.db.Query(
		`SELECT id, name, createdAt, updatedAt, logoFilename, folderId
		 FROM projects ORDER BY updatedAt DESC, createdAt DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	summaries := []model.ProjectSummary{}
	for rows.Next() {
		var p model.ProjectSummary
		var logoFilename, folderID sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt, &logoFilename, &folderID); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		p.LogoFilename = nullableString(logoFilename)
		p.FolderID = nullableString(folderID)
		summaries = append(summaries, p)
	}
	return summaries, rows.Err()
}

// UpdateProject applies a partial update: supplied fields replace stored
// values (an explicit null clears a nullable field), absent fields are
// retained, and updatedAt is always refreshed. Returns nil when no
// project with the given id exists; nothing is written in that case.
func (s *Store) UpdateProject(id string, patch model.ProjectPatch) (*model.Project, error) {
	existing, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	name := existing.Name
	if patch.Name != nil {
		name = *patch.Name
	}
	originalURL := existing.OriginalURL
	if patch.OriginalURL != nil {
		originalURL = *patch.OriginalURL
	}
	shortenEnabled := existing.ShortenEnabled
	if patch.ShortenEnabled != nil {
		shortenEnabled = *patch.ShortenEnabled
	}
	recipeJSON := existing.RecipeJSON
	if patch.RecipeJSON != nil {
		recipeJSON = *patch.RecipeJSON
	}
	shortURL := existing.ShortURL
	if patch.ShortURL.Present {
		shortURL = patch.ShortURL.Value
	}
	logoFilename := existing.LogoFilename
	if patch.LogoFilename.Present {
		logoFilename = patch.LogoFilename.Value
	}
	folderID := existing.FolderID
	if patch.FolderID.Present {
		folderID = patch.FolderID.Value
	}

	shortenEnabledInt := 0
	if shortenEnabled {
		shortenEnabledInt = 1
	}

	_, err = s.db.Exec(
		`UPDATE projects SET name = ?, updatedAt = ?, originalUrl = ?, shortenEnabled = ?, shortUrl = ?, recipeJson = ?, logoFilename = ?, folderId = ? WHERE id = ?`,
		name, s.timestamp(), originalURL, shortenEnabledInt, shortURL, recipeJSON, logoFilename, folderID, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.GetProject(id)
}

// DeleteProject removes a project, reporting whether a record was
// actually removed.
func (s *Store) DeleteProject(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

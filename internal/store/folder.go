package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/existflow/qrstudio/internal/model"
	"github.com/google/uuid"
)

// CreateFolder inserts a new folder. The sort order defaults to the
// current folder count so new folders append after existing ones.
func (s *Store) CreateFolder(fields model.FolderPatch) (*model.Folder, error) {
	id := uuid.NewString()

	name := "Folder"
	if fields.Name != nil {
		name = *fields.Name
	}

	var sortOrder int
	if fields.SortOrder != nil {
		sortOrder = *fields.SortOrder
	} else {
		if err := s.db.QueryRow(`SELECT COUNT(*) FROM folders`).Scan(&sortOrder); err != nil {
			return nil, fmt.Errorf("failed to count folders: %w", err)
		}
	}

	if _, err := s.db.Exec(
		`INSERT INTO folders (id, name, sortOrder) VALUES (?, ?, ?)`,
		id, name, sortOrder,
	); err != nil {
		return nil, fmt.Errorf("failed to insert folder: %w", err)
	}

	return &model.Folder{ID: id, Name: name, SortOrder: sortOrder}, nil
}

// ListFolders returns all folders ordered for display
func (s *Store) ListFolders() ([]model.Folder, error) {
	rows, err := s.db.Query(
		`SELECT id, name, sortOrder FROM folders ORDER BY sortOrder ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	defer rows.Close()

	folders := []model.Folder{}
	for rows.Next() {
		var f model.Folder
		if err := rows.Scan(&f.ID, &f.Name, &f.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan folder row: %w", err)
		}
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

// GetFolder returns a folder, or nil when no folder with the id exists
func (s *Store) GetFolder(id string) (*model.Folder, error) {
	row := s.db.QueryRow(`SELECT id, name, sortOrder FROM folders WHERE id = ?`, id)

	var f model.Folder
	err := row.Scan(&f.ID, &f.Name, &f.SortOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read folder: %w", err)
	}
	return &f, nil
}

// UpdateFolder applies a partial update over name and sortOrder.
// Returns nil when no folder with the given id exists.
func (s *Store) UpdateFolder(id string, patch model.FolderPatch) (*model.Folder, error) {
	existing, err := s.GetFolder(id)
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
	sortOrder := existing.SortOrder
	if patch.SortOrder != nil {
		sortOrder = *patch.SortOrder
	}

	if _, err := s.db.Exec(
		`UPDATE folders SET name = ?, sortOrder = ? WHERE id = ?`,
		name, sortOrder, id,
	); err != nil {
		return nil, fmt.Errorf("failed to update folder: %w", err)
	}

	return s.GetFolder(id)
}

// DeleteFolder detaches every project referencing the folder, then
// deletes the folder record. Both steps run in one transaction so a
// crash cannot leave them half applied. Reports whether the folder
// record was removed.
func (s *Store) DeleteFolder(id string) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE projects SET folderId = NULL WHERE folderId = ?`, id); err != nil {
		return false, fmt.Errorf("failed to detach projects: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM folders WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete folder: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit folder delete: %w", err)
	}
	return n > 0, nil
}

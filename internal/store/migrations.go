package store

import "fmt"

// migrate runs all database migrations
func (s *Store) migrate() error {
	migrations := []string{
		migrationCreateProjects,
		migrationCreateFolders,
	}

	for i, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	// Databases created before folders existed lack this column. The
	// statement fails with "duplicate column name" everywhere else,
	// which is the expected steady state.
	s.db.Exec(`ALTER TABLE projects ADD COLUMN folderId TEXT`)

	return nil
}

const migrationCreateProjects = `
CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL DEFAULT 'Untitled QR',
    createdAt TEXT NOT NULL,
    updatedAt TEXT NOT NULL,
    originalUrl TEXT NOT NULL DEFAULT '',
    shortenEnabled INTEGER NOT NULL DEFAULT 0,
    shortUrl TEXT,
    recipeJson TEXT NOT NULL DEFAULT '{}',
    logoFilename TEXT,
    folderId TEXT
);
`

const migrationCreateFolders = `
CREATE TABLE IF NOT EXISTS folders (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL DEFAULT 'Folder',
    sortOrder INTEGER NOT NULL DEFAULT 0
);
`

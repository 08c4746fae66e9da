package model

// Folder is a named grouping of projects with manual ordering
type Folder struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

// FolderPatch carries a partial folder update; nil means "leave unchanged"
type FolderPatch struct {
	Name      *string
	SortOrder *int
}

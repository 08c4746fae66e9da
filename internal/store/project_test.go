package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/existflow/qrstudio/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// advanceClock replaces the store clock with one that moves forward a
// full second per call, so ordering by timestamp is observable.
func advanceClock(s *Store) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	s.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(n int) *int       { return &n }

func present(v *string) model.OptionalString {
	return model.OptionalString{Present: true, Value: v}
}

func TestCreateProjectDefaults(t *testing.T) {
	s := newTestStore(t)

	p, err := s.CreateProject(model.ProjectPatch{})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	if p.ID == "" {
		t.Error("expected generated id")
	}
	if p.Name != "Untitled QR" {
		t.Errorf("name = %q, want %q", p.Name, "Untitled QR")
	}
	if p.OriginalURL != "" {
		t.Errorf("originalUrl = %q, want empty", p.OriginalURL)
	}
	if p.ShortenEnabled {
		t.Error("shortenEnabled should default to false")
	}
	if p.RecipeJSON != "{}" {
		t.Errorf("recipeJson = %q, want %q", p.RecipeJSON, "{}")
	}
	if p.ShortURL != nil || p.LogoFilename != nil || p.FolderID != nil {
		t.Error("nullable fields should default to nil")
	}
	if p.CreatedAt == "" || p.CreatedAt != p.UpdatedAt {
		t.Errorf("createdAt %q and updatedAt %q should be set and equal", p.CreatedAt, p.UpdatedAt)
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateProject(model.ProjectPatch{
		Name:           strPtr("My QR"),
		OriginalURL:    strPtr("https://example.com"),
		ShortenEnabled: boolPtr(true),
		RecipeJSON:     strPtr(`{"dots":"round"}`),
		LogoFilename:   present(strPtr("logo.png")),
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	got, err := s.GetProject(created.ID)
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if got == nil {
		t.Fatal("GetProject returned nil for existing project")
	}
	if got.Name != "My QR" || got.OriginalURL != "https://example.com" {
		t.Errorf("unexpected record %+v", got)
	}
	if !got.ShortenEnabled {
		t.Error("shortenEnabled not persisted")
	}
	if got.RecipeJSON != `{"dots":"round"}` {
		t.Errorf("recipeJson = %q", got.RecipeJSON)
	}
	if got.LogoFilename == nil || *got.LogoFilename != "logo.png" {
		t.Errorf("logoFilename = %v", got.LogoFilename)
	}
}

func TestGetProjectMissing(t *testing.T) {
	s := newTestStore(t)

	p, err := s.GetProject("00000000-0000-0000-0000-000000000000")
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil, got %+v", p)
	}
}

func TestListProjectsOrderAndProjection(t *testing.T) {
	s := newTestStore(t)
	advanceClock(s)

	a, _ := s.CreateProject(model.ProjectPatch{Name: strPtr("A")})
	b, _ := s.CreateProject(model.ProjectPatch{Name: strPtr("B")})

	list, err := s.ListProjects()
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	// B was created after A, so it sorts first
	if list[0].ID != b.ID || list[1].ID != a.ID {
		t.Errorf("order = [%s %s], want [%s %s]", list[0].ID, list[1].ID, b.ID, a.ID)
	}

	// Updating A bumps it to the front
	if _, err := s.UpdateProject(a.ID, model.ProjectPatch{}); err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	list, _ = s.ListProjects()
	if list[0].ID != a.ID {
		t.Errorf("expected updated project first, got %s", list[0].ID)
	}
}

func TestUpdateProjectEmptyPatch(t *testing.T) {
	s := newTestStore(t)
	advanceClock(s)

	created, _ := s.CreateProject(model.ProjectPatch{
		Name:        strPtr("Keep"),
		OriginalURL: strPtr("https://keep.example"),
		RecipeJSON:  strPtr(`{"a":1}`),
		FolderID:    present(nil),
	})

	updated, err := s.UpdateProject(created.ID, model.ProjectPatch{})
	if err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	if updated.UpdatedAt == created.UpdatedAt {
		t.Error("updatedAt should be refreshed by an empty patch")
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Error("createdAt must not change")
	}
	if updated.Name != "Keep" || updated.OriginalURL != "https://keep.example" || updated.RecipeJSON != `{"a":1}` {
		t.Errorf("empty patch altered fields: %+v", updated)
	}
}

func TestUpdateProjectClearNullable(t *testing.T) {
	s := newTestStore(t)

	created, _ := s.CreateProject(model.ProjectPatch{
		LogoFilename: present(strPtr("logo.png")),
		ShortURL:     present(strPtr("https://mifi.me/x")),
	})

	// Explicit null clears the field
	updated, err := s.UpdateProject(created.ID, model.ProjectPatch{
		LogoFilename: present(nil),
	})
	if err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	if updated.LogoFilename != nil {
		t.Errorf("logoFilename = %v, want nil", *updated.LogoFilename)
	}
	if updated.ShortURL == nil || *updated.ShortURL != "https://mifi.me/x" {
		t.Error("shortUrl should be untouched by a patch that omits it")
	}

	// A later patch omitting the field preserves the cleared state
	later, err := s.UpdateProject(created.ID, model.ProjectPatch{Name: strPtr("renamed")})
	if err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	if later.LogoFilename != nil {
		t.Error("cleared logoFilename should stay nil when the patch omits it")
	}
}

func TestUpdateProjectShortenEnabled(t *testing.T) {
	s := newTestStore(t)

	created, _ := s.CreateProject(model.ProjectPatch{ShortenEnabled: boolPtr(true)})

	updated, _ := s.UpdateProject(created.ID, model.ProjectPatch{Name: strPtr("x")})
	if !updated.ShortenEnabled {
		t.Error("shortenEnabled must be retained when the patch omits it")
	}

	updated, _ = s.UpdateProject(created.ID, model.ProjectPatch{ShortenEnabled: boolPtr(false)})
	if updated.ShortenEnabled {
		t.Error("shortenEnabled = true, want false")
	}
}

func TestUpdateProjectMissing(t *testing.T) {
	s := newTestStore(t)

	p, err := s.UpdateProject("00000000-0000-0000-0000-000000000000", model.ProjectPatch{Name: strPtr("x")})
	if err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil for missing project, got %+v", p)
	}
}

func TestDeleteProject(t *testing.T) {
	s := newTestStore(t)

	created, _ := s.CreateProject(model.ProjectPatch{})

	removed, err := s.DeleteProject(created.ID)
	if err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if !removed {
		t.Error("expected removed=true for existing project")
	}

	removed, err = s.DeleteProject(created.ID)
	if err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if removed {
		t.Error("expected removed=false for already-deleted project")
	}
}

func TestMigrateIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := s.CreateProject(model.ProjectPatch{Name: strPtr("survivor")}); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	s.Close()

	// Reopening an existing database must not fail on the folderId
	// column migration, and data must survive.
	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	list, err := s.ListProjects()
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(list) != 1 || list[0].Name != "survivor" {
		t.Errorf("data lost across reopen: %+v", list)
	}
}

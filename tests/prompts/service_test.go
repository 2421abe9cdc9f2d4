package prompts_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prompthub/prompthub/internal/prompts"
	"github.com/prompthub/prompthub/pkg/collection"
	"github.com/prompthub/prompthub/pkg/pagination"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pageConfig() pagination.Config {
	return pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
}

func newSystem(seed []prompts.Prompt) prompts.System {
	return prompts.New(collection.NewMemoryBackend(), seed, discard(), pageConfig())
}

// checkVersionInvariant fails unless exactly one version entry matches the
// prompt's current version.
func checkVersionInvariant(t *testing.T, p *prompts.Prompt) {
	t.Helper()

	if len(p.Versions) == 0 {
		t.Fatal("prompt has no versions")
	}

	matches := 0
	for _, v := range p.Versions {
		if v.Version == p.CurrentVersion {
			matches++
		}
	}
	if matches != 1 {
		t.Fatalf("%d versions match currentVersion %q, want exactly 1", matches, p.CurrentVersion)
	}
}

func TestCreateValidation(t *testing.T) {
	sys := newSystem(nil)
	ctx := context.Background()

	_, err := sys.Create(ctx, prompts.CreateCommand{Content: "text"})
	if !errors.Is(err, prompts.ErrTitleRequired) {
		t.Errorf("Create without title error = %v, want ErrTitleRequired", err)
	}

	_, err = sys.Create(ctx, prompts.CreateCommand{Title: "A"})
	if !errors.Is(err, prompts.ErrContentRequired) {
		t.Errorf("Create without content error = %v, want ErrContentRequired", err)
	}
}

func TestCreateInitialVersion(t *testing.T) {
	sys := newSystem(nil)
	ctx := context.Background()

	p, err := sys.Create(ctx, prompts.CreateCommand{Title: "A", Content: "B"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	checkVersionInvariant(t, p)
	if p.CurrentVersion != "1" {
		t.Errorf("CurrentVersion = %q, want 1", p.CurrentVersion)
	}
	if p.Versions[0].ID != p.ID+"-1" {
		t.Errorf("version ID = %q, want %s-1", p.Versions[0].ID, p.ID)
	}
	if p.Versions[0].Content != "B" {
		t.Errorf("version content = %q, want B", p.Versions[0].Content)
	}

	// defaults applied when the command leaves fields empty
	if p.Type != "general" || p.Language != "en" {
		t.Errorf("defaults not applied: type=%q language=%q", p.Type, p.Language)
	}
	if p.Visibility != prompts.VisibilityPublic {
		t.Errorf("Visibility = %q, want public", p.Visibility)
	}
}

func TestCreatedPromptAppearsUnderAllNotArchived(t *testing.T) {
	sys := newSystem(nil)
	ctx := context.Background()

	p, err := sys.Create(ctx, prompts.CreateCommand{Title: "A", Content: "B"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	all, err := sys.List(ctx, pagination.PageRequest{}, prompts.Query{Status: prompts.StatusAll})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all.Data) != 1 || all.Data[0].ID != p.ID {
		t.Errorf("List(all) = %v, want the created prompt", all.Data)
	}

	archived, err := sys.List(ctx, pagination.PageRequest{}, prompts.Query{Status: prompts.StatusArchived})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(archived.Data) != 0 {
		t.Errorf("List(archived) returned %d prompts, want 0", len(archived.Data))
	}
}

func TestCreateVersionCopiesForward(t *testing.T) {
	sys := newSystem(nil)
	ctx := context.Background()

	p, err := sys.Create(ctx, prompts.CreateCommand{
		Title:    "A",
		Content:  "original",
		Models:   []string{"gpt-4"},
		UseCases: []string{"review"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	p, err = sys.CreateVersion(ctx, p.ID)
	if err != nil {
		t.Fatalf("create version failed: %v", err)
	}

	checkVersionInvariant(t, p)
	if p.CurrentVersion != "2" {
		t.Errorf("CurrentVersion = %q, want 2", p.CurrentVersion)
	}
	if len(p.Versions) != 2 {
		t.Fatalf("version count = %d, want 2", len(p.Versions))
	}

	next := p.Versions[1]
	if next.ID != p.ID+"-2" || next.Version != "2" {
		t.Errorf("new version = %q/%q, want %s-2/2", next.ID, next.Version, p.ID)
	}
	if next.Content != "original" {
		t.Errorf("new version content = %q, want copy of prior", next.Content)
	}
	if len(next.Models) != 1 || next.Models[0] != "gpt-4" {
		t.Errorf("new version models = %v, want copied", next.Models)
	}
}

func TestCreateVersionTwiceIncrementsOrdinals(t *testing.T) {
	sys := newSystem(nil)
	ctx := context.Background()

	p, err := sys.Create(ctx, prompts.CreateCommand{Title: "A", Content: "B"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := sys.CreateVersion(ctx, p.ID); err != nil {
		t.Fatalf("create version failed: %v", err)
	}
	p, err = sys.CreateVersion(ctx, p.ID)
	if err != nil {
		t.Fatalf("create version failed: %v", err)
	}

	checkVersionInvariant(t, p)
	if p.CurrentVersion != "3" {
		t.Errorf("CurrentVersion = %q, want 3", p.CurrentVersion)
	}

	seen := make(map[string]bool)
	for _, v := range p.Versions {
		if seen[v.ID] {
			t.Errorf("duplicate version id %q", v.ID)
		}
		seen[v.ID] = true
	}
}

func TestUpdateVersionMergesByVersionString(t *testing.T) {
	sys := newSystem(nil)
	ctx := context.Background()

	p, err := sys.Create(ctx, prompts.CreateCommand{Title: "A", Content: "v1 content", Details: "v1"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := sys.CreateVersion(ctx, p.ID); err != nil {
		t.Fatalf("create version failed: %v", err)
	}

	edited := "v1 edited"
	p, err = sys.UpdateVersion(ctx, p.ID, "1", prompts.VersionUpdateCommand{Content: &edited})
	if err != nil {
		t.Fatalf("update version failed: %v", err)
	}

	v1, ok := p.Version("1")
	if !ok || v1.Content != "v1 edited" {
		t.Errorf("version 1 content = %q, want v1 edited", v1.Content)
	}
	if v1.Details != "v1" {
		t.Errorf("unspecified field changed: Details = %q", v1.Details)
	}

	v2, _ := p.Version("2")
	if v2.Content != "v1 content" {
		t.Errorf("version 2 content = %q, edit leaked across versions", v2.Content)
	}
}

func TestUpdateVersionMissing(t *testing.T) {
	sys := newSystem(nil)
	ctx := context.Background()

	p, err := sys.Create(ctx, prompts.CreateCommand{Title: "A", Content: "B"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = sys.UpdateVersion(ctx, p.ID, "9", prompts.VersionUpdateCommand{})
	if !errors.Is(err, prompts.ErrVersionNotFound) {
		t.Errorf("error = %v, want ErrVersionNotFound", err)
	}
}

func TestSetCurrentVersion(t *testing.T) {
	sys := newSystem(nil)
	ctx := context.Background()

	p, err := sys.Create(ctx, prompts.CreateCommand{Title: "A", Content: "B"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := sys.CreateVersion(ctx, p.ID); err != nil {
		t.Fatalf("create version failed: %v", err)
	}

	p, err = sys.SetCurrentVersion(ctx, p.ID, "1")
	if err != nil {
		t.Fatalf("set current failed: %v", err)
	}

	checkVersionInvariant(t, p)
	if p.CurrentVersion != "1" {
		t.Errorf("CurrentVersion = %q, want 1", p.CurrentVersion)
	}

	_, err = sys.SetCurrentVersion(ctx, p.ID, "9")
	if !errors.Is(err, prompts.ErrVersionNotFound) {
		t.Errorf("error = %v, want ErrVersionNotFound", err)
	}
}

func TestArchiveAndFavoriteFlags(t *testing.T) {
	sys := newSystem(nil)
	ctx := context.Background()

	p, err := sys.Create(ctx, prompts.CreateCommand{Title: "A", Content: "B"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	p, err = sys.Archive(ctx, p.ID)
	if err != nil || !p.IsArchived {
		t.Fatalf("Archive = (%+v, %v), want archived", p, err)
	}
	p, err = sys.Restore(ctx, p.ID)
	if err != nil || p.IsArchived {
		t.Fatalf("Restore = (%+v, %v), want not archived", p, err)
	}

	p, err = sys.Favorite(ctx, p.ID)
	if err != nil || !p.IsFavorite {
		t.Fatalf("Favorite = (%+v, %v), want favorite", p, err)
	}
	p, err = sys.Unfavorite(ctx, p.ID)
	if err != nil || p.IsFavorite {
		t.Fatalf("Unfavorite = (%+v, %v), want not favorite", p, err)
	}
}

func TestFindMissing(t *testing.T) {
	sys := newSystem(nil)

	_, err := sys.Find(context.Background(), "missing")
	if !errors.Is(err, prompts.ErrNotFound) {
		t.Errorf("Find error = %v, want ErrNotFound", err)
	}

	if err := sys.Delete(context.Background(), "missing"); !errors.Is(err, prompts.ErrNotFound) {
		t.Errorf("Delete error = %v, want ErrNotFound", err)
	}
}

func TestListByGroup(t *testing.T) {
	sys := newSystem(nil)
	ctx := context.Background()

	inGroup, err := sys.Create(ctx, prompts.CreateCommand{Title: "A", Content: "B", GroupID: "g1"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := sys.Create(ctx, prompts.CreateCommand{Title: "C", Content: "D"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	members, err := sys.ListByGroup(ctx, "g1")
	if err != nil {
		t.Fatalf("list by group failed: %v", err)
	}
	if len(members) != 1 || members[0].ID != inGroup.ID {
		t.Errorf("ListByGroup = %v, want [%s]", members, inGroup.ID)
	}
}

package groups_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prompthub/prompthub/internal/groups"
	"github.com/prompthub/prompthub/internal/prompts"
	"github.com/prompthub/prompthub/pkg/collection"
	"github.com/prompthub/prompthub/pkg/pagination"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSystems(groupSeed []groups.Group) (groups.System, prompts.System) {
	backend := collection.NewMemoryBackend()
	promptSys := prompts.New(backend, nil, discard(),
		pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
	return groups.New(backend, groupSeed, promptSys, discard()), promptSys
}

func TestListFiltersByTermAndFavorites(t *testing.T) {
	sys, _ := newSystems(nil)
	ctx := context.Background()

	dev, err := sys.Create(ctx, groups.CreateCommand{Name: "Development Prompts"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := sys.Create(ctx, groups.CreateCommand{Name: "Writing Assistants"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := sys.Favorite(ctx, dev.ID); err != nil {
		t.Fatalf("favorite failed: %v", err)
	}

	all, err := sys.List(ctx, "", false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("List() = %d groups, want 2", len(all))
	}

	matched, err := sys.List(ctx, "writing", false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(matched) != 1 || matched[0].Name != "Writing Assistants" {
		t.Errorf("List(writing) = %v, want [Writing Assistants]", matched)
	}

	favorites, err := sys.List(ctx, "", true)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(favorites) != 1 || favorites[0].ID != dev.ID {
		t.Errorf("List(favorites) = %v, want [Development Prompts]", favorites)
	}
}

func TestCreateRequiresName(t *testing.T) {
	sys, _ := newSystems(nil)

	_, err := sys.Create(context.Background(), groups.CreateCommand{})
	if !errors.Is(err, groups.ErrNameRequired) {
		t.Errorf("Create error = %v, want ErrNameRequired", err)
	}
}

func TestPromptCountDerivedFromMembership(t *testing.T) {
	sys, promptSys := newSystems(nil)
	ctx := context.Background()

	g, err := sys.Create(ctx, groups.CreateCommand{Name: "Development"})
	if err != nil {
		t.Fatalf("create group failed: %v", err)
	}
	if g.PromptCount != 0 || len(g.Prompts) != 0 {
		t.Fatalf("new group membership = %d/%v, want empty", g.PromptCount, g.Prompts)
	}

	p, err := promptSys.Create(ctx, prompts.CreateCommand{
		Title:   "A",
		Content: "B",
		GroupID: g.ID,
	})
	if err != nil {
		t.Fatalf("create prompt failed: %v", err)
	}

	g, err = sys.Find(ctx, g.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if g.PromptCount != 1 {
		t.Errorf("PromptCount = %d, want 1", g.PromptCount)
	}
	if len(g.Prompts) != 1 || g.Prompts[0] != p.ID {
		t.Errorf("Prompts = %v, want [%s]", g.Prompts, p.ID)
	}
}

func TestDeleteLeavesPromptReferences(t *testing.T) {
	sys, promptSys := newSystems(nil)
	ctx := context.Background()

	g, err := sys.Create(ctx, groups.CreateCommand{Name: "Development"})
	if err != nil {
		t.Fatalf("create group failed: %v", err)
	}
	p, err := promptSys.Create(ctx, prompts.CreateCommand{
		Title:   "A",
		Content: "B",
		GroupID: g.ID,
	})
	if err != nil {
		t.Fatalf("create prompt failed: %v", err)
	}

	if err := sys.Delete(ctx, g.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := sys.Find(ctx, g.ID); !errors.Is(err, groups.ErrNotFound) {
		t.Errorf("Find after delete error = %v, want ErrNotFound", err)
	}

	// the prompt keeps its dangling groupId; there is no cascade
	got, err := promptSys.Find(ctx, p.ID)
	if err != nil {
		t.Fatalf("find prompt failed: %v", err)
	}
	if got.GroupID != g.ID {
		t.Errorf("prompt GroupID = %q, want untouched %q", got.GroupID, g.ID)
	}
}

func TestUpdateAndFavorite(t *testing.T) {
	sys, _ := newSystems(nil)
	ctx := context.Background()

	g, err := sys.Create(ctx, groups.CreateCommand{Name: "Old"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	name := "New"
	g, err = sys.Update(ctx, g.ID, groups.UpdateCommand{Name: &name})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if g.Name != "New" {
		t.Errorf("Name = %q, want New", g.Name)
	}

	empty := ""
	if _, err := sys.Update(ctx, g.ID, groups.UpdateCommand{Name: &empty}); !errors.Is(err, groups.ErrNameRequired) {
		t.Errorf("Update with empty name error = %v, want ErrNameRequired", err)
	}

	g, err = sys.Favorite(ctx, g.ID)
	if err != nil || !g.IsFavorite {
		t.Fatalf("Favorite = (%+v, %v), want favorite", g, err)
	}
	g, err = sys.Unfavorite(ctx, g.ID)
	if err != nil || g.IsFavorite {
		t.Fatalf("Unfavorite = (%+v, %v), want not favorite", g, err)
	}
}

func TestPromptsEndpointListsMembers(t *testing.T) {
	sys, promptSys := newSystems(nil)
	ctx := context.Background()

	g, err := sys.Create(ctx, groups.CreateCommand{Name: "Development"})
	if err != nil {
		t.Fatalf("create group failed: %v", err)
	}
	if _, err := promptSys.Create(ctx, prompts.CreateCommand{
		Title: "A", Content: "B", GroupID: g.ID,
	}); err != nil {
		t.Fatalf("create prompt failed: %v", err)
	}
	if _, err := promptSys.Create(ctx, prompts.CreateCommand{
		Title: "C", Content: "D",
	}); err != nil {
		t.Fatalf("create prompt failed: %v", err)
	}

	members, err := sys.Prompts(ctx, g.ID)
	if err != nil {
		t.Fatalf("prompts failed: %v", err)
	}
	if len(members) != 1 || members[0].Title != "A" {
		t.Errorf("Prompts = %v, want the one assigned prompt", members)
	}

	if _, err := sys.Prompts(ctx, "missing"); !errors.Is(err, groups.ErrNotFound) {
		t.Errorf("Prompts for missing group error = %v, want ErrNotFound", err)
	}
}

package groups

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/prompthub/prompthub/internal/prompts"
	"github.com/prompthub/prompthub/pkg/collection"
)

// Key is the persisted collection key for groups.
const Key = "groups"

type service struct {
	store   *collection.Store[Group]
	prompts prompts.System
	logger  *slog.Logger
}

// New creates a group service implementing the System interface. The
// prompt system supplies membership, since prompts own the association.
func New(
	backend collection.Backend,
	seed []Group,
	promptSys prompts.System,
	logger *slog.Logger,
) System {
	store := collection.NewStore(backend, Key,
		func(g Group) string { return g.ID },
		seed,
		logger,
	)

	return &service{
		store:   store,
		prompts: promptSys,
		logger:  logger.With("system", "groups"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// List returns groups matching the optional search term over name and
// description, preserving stored order.
func (s *service) List(ctx context.Context, term string, favorites bool) ([]Summary, error) {
	items := s.store.GetAll(ctx)
	term = strings.ToLower(term)

	summaries := make([]Summary, 0, len(items))
	for _, g := range items {
		if favorites && !g.IsFavorite {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(g.Name), term) &&
			!strings.Contains(strings.ToLower(g.Description), term) {
			continue
		}

		summary, err := s.summarize(ctx, g)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}

	return summaries, nil
}

func (s *service) Find(ctx context.Context, id string) (*Summary, error) {
	g, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.summarize(ctx, g)
}

func (s *service) Prompts(ctx context.Context, id string) ([]prompts.Prompt, error) {
	if _, err := s.store.Find(ctx, id); err != nil {
		return nil, ErrNotFound
	}
	return s.prompts.ListByGroup(ctx, id)
}

func (s *service) Create(ctx context.Context, cmd CreateCommand) (*Summary, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, ErrNameRequired
	}

	now := time.Now().UTC()
	g := Group{
		ID:          uuid.NewString(),
		Name:        cmd.Name,
		Description: cmd.Description,
		Visibility:  cmd.Visibility,
		AuthorID:    cmd.AuthorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if g.Visibility == "" {
		g.Visibility = prompts.VisibilityPublic
	}

	if err := s.store.Upsert(ctx, g); err != nil {
		return nil, err
	}

	s.logger.Info("group created", "id", g.ID, "name", g.Name)
	return s.summarize(ctx, g)
}

func (s *service) Update(ctx context.Context, id string, cmd UpdateCommand) (*Summary, error) {
	g, err := s.store.Update(ctx, id, func(g *Group) error {
		if cmd.Name != nil {
			if strings.TrimSpace(*cmd.Name) == "" {
				return ErrNameRequired
			}
			g.Name = *cmd.Name
		}
		if cmd.Description != nil {
			g.Description = *cmd.Description
		}
		if cmd.Visibility != nil {
			g.Visibility = *cmd.Visibility
		}
		g.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return s.summarize(ctx, g)
}

// Delete removes the group only. Prompts keep their groupId reference;
// membership resolution simply yields nothing for the missing group.
func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.store.Remove(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	s.logger.Info("group deleted", "id", id)
	return nil
}

func (s *service) Favorite(ctx context.Context, id string) (*Summary, error) {
	return s.setFavorite(ctx, id, true)
}

func (s *service) Unfavorite(ctx context.Context, id string) (*Summary, error) {
	return s.setFavorite(ctx, id, false)
}

func (s *service) setFavorite(ctx context.Context, id string, favorite bool) (*Summary, error) {
	g, err := s.store.Update(ctx, id, func(g *Group) error {
		g.IsFavorite = favorite
		g.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return s.summarize(ctx, g)
}

func (s *service) summarize(ctx context.Context, g Group) (*Summary, error) {
	members, err := s.prompts.ListByGroup(ctx, g.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(members))
	for _, p := range members {
		ids = append(ids, p.ID)
	}

	return &Summary{
		Group:       g,
		PromptCount: len(ids),
		Prompts:     ids,
	}, nil
}

func mapStoreErr(err error) error {
	if errors.Is(err, collection.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

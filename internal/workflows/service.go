package workflows

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

// Key is the persisted collection key for workflows.
const Key = "workflows"

type service struct {
	store   *collection.Store[Workflow]
	prompts prompts.System
	remote  Remote
	logger  *slog.Logger
}

// New creates a workflow service implementing the System interface. The
// prompt system resolves step snapshots; remote is consulted before any
// local delete.
func New(
	backend collection.Backend,
	seed []Workflow,
	promptSys prompts.System,
	remote Remote,
	logger *slog.Logger,
) System {
	store := collection.NewStore(backend, Key,
		func(w Workflow) string { return w.ID },
		seed,
		logger,
	)

	return &service{
		store:   store,
		prompts: promptSys,
		remote:  remote,
		logger:  logger.With("system", "workflows"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// List returns workflows matching the optional search term over title,
// description, and step titles, preserving stored order.
func (s *service) List(ctx context.Context, term string, favorites bool) ([]Workflow, error) {
	items := s.store.GetAll(ctx)
	term = strings.ToLower(term)

	matched := make([]Workflow, 0, len(items))
	for _, w := range items {
		if favorites && !w.IsFavorite {
			continue
		}
		if term != "" && !matchesTerm(&w, term) {
			continue
		}
		matched = append(matched, w)
	}

	return matched, nil
}

func (s *service) Find(ctx context.Context, id string) (*Workflow, error) {
	w, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return &w, nil
}

func (s *service) Create(ctx context.Context, cmd CreateCommand) (*Workflow, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, ErrTitleRequired
	}

	steps, err := s.resolveSteps(ctx, cmd.Steps)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	w := Workflow{
		ID:          uuid.NewString(),
		Title:       cmd.Title,
		Description: cmd.Description,
		Steps:       steps,
		IsPublic:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if cmd.IsPublic != nil {
		w.IsPublic = *cmd.IsPublic
	}

	if err := s.store.Upsert(ctx, w); err != nil {
		return nil, err
	}

	s.logger.Info("workflow created", "id", w.ID, "title", w.Title, "steps", len(w.Steps))
	return &w, nil
}

func (s *service) Update(ctx context.Context, id string, cmd UpdateCommand) (*Workflow, error) {
	var steps []Step
	if cmd.Steps != nil {
		resolved, err := s.resolveSteps(ctx, *cmd.Steps)
		if err != nil {
			return nil, err
		}
		steps = resolved
	}

	w, err := s.store.Update(ctx, id, func(w *Workflow) error {
		if cmd.Title != nil {
			if strings.TrimSpace(*cmd.Title) == "" {
				return ErrTitleRequired
			}
			w.Title = *cmd.Title
		}
		if cmd.Description != nil {
			w.Description = *cmd.Description
		}
		if cmd.Steps != nil {
			w.Steps = steps
		}
		if cmd.IsPublic != nil {
			w.IsPublic = *cmd.IsPublic
		}
		w.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return &w, nil
}

// Delete asks the remote collaborator first and removes the workflow
// locally only when the remote reports success.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Find(ctx, id); err != nil {
		return ErrNotFound
	}

	ok, err := s.remote.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRemoteRejected
	}

	if err := s.store.Remove(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	s.logger.Info("workflow deleted", "id", id)
	return nil
}

// Duplicate creates a copy of a workflow with fresh ids. Step snapshots
// are carried over unchanged, including their capture timestamps.
func (s *service) Duplicate(ctx context.Context, id string) (*Workflow, error) {
	src, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	copied := *src
	copied.ID = uuid.NewString()
	copied.Title = src.Title + " (copy)"
	copied.IsFavorite = false
	copied.CreatedAt = now
	copied.UpdatedAt = now

	copied.Steps = make([]Step, len(src.Steps))
	for i, step := range src.Steps {
		step.ID = uuid.NewString()
		copied.Steps[i] = step
	}

	if err := s.store.Upsert(ctx, copied); err != nil {
		return nil, err
	}

	s.logger.Info("workflow duplicated", "source", id, "id", copied.ID)
	return &copied, nil
}

func (s *service) Favorite(ctx context.Context, id string) (*Workflow, error) {
	return s.setFavorite(ctx, id, true)
}

func (s *service) Unfavorite(ctx context.Context, id string) (*Workflow, error) {
	return s.setFavorite(ctx, id, false)
}

func (s *service) setFavorite(ctx context.Context, id string, favorite bool) (*Workflow, error) {
	w, err := s.store.Update(ctx, id, func(w *Workflow) error {
		w.IsFavorite = favorite
		w.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return &w, nil
}

// resolveSteps materializes step inputs, capturing a snapshot of each
// referenced prompt's current version.
func (s *service) resolveSteps(ctx context.Context, inputs []StepInput) ([]Step, error) {
	steps := make([]Step, 0, len(inputs))
	for _, input := range inputs {
		step := Step{
			ID:          uuid.NewString(),
			Title:       input.Title,
			Description: input.Description,
		}

		if input.PromptID != "" {
			snapshot, err := s.capture(ctx, input.PromptID)
			if err != nil {
				return nil, err
			}
			step.Snapshot = snapshot
		}

		steps = append(steps, step)
	}
	return steps, nil
}

func (s *service) capture(ctx context.Context, promptID string) (*PromptSnapshot, error) {
	p, err := s.prompts.Find(ctx, promptID)
	if err != nil {
		return nil, ErrPromptNotFound
	}

	current, ok := p.Current()
	if !ok {
		return nil, ErrPromptNotFound
	}

	tags := make([]string, len(p.Tags))
	copy(tags, p.Tags)

	return &PromptSnapshot{
		PromptID:   p.ID,
		Title:      p.Title,
		Content:    current.Content,
		Tags:       tags,
		CapturedAt: time.Now().UTC(),
	}, nil
}

func matchesTerm(w *Workflow, term string) bool {
	if strings.Contains(strings.ToLower(w.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(w.Description), term) {
		return true
	}
	for _, step := range w.Steps {
		if strings.Contains(strings.ToLower(step.Title), term) {
			return true
		}
	}
	return false
}

func mapStoreErr(err error) error {
	if errors.Is(err, collection.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

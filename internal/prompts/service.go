package prompts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/prompthub/prompthub/pkg/collection"
	"github.com/prompthub/prompthub/pkg/pagination"
)

// Key is the persisted collection key for prompts.
const Key = "prompts"

type service struct {
	store      *collection.Store[Prompt]
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a prompt service implementing the System interface over the
// given backend.
func New(
	backend collection.Backend,
	seed []Prompt,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	store := collection.NewStore(backend, Key,
		func(p Prompt) string { return p.ID },
		seed,
		logger,
	)

	return &service{
		store:      store,
		logger:     logger.With("system", "prompts"),
		pagination: pagination,
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger, s.pagination)
}

func (s *service) List(
	ctx context.Context,
	page pagination.PageRequest,
	q Query,
) (*pagination.PageResult[Prompt], error) {
	page.Normalize(s.pagination)

	filtered := Filter(s.store.GetAll(ctx), q)
	result := pagination.Paginate(filtered, page)
	return &result, nil
}

func (s *service) Find(ctx context.Context, id string) (*Prompt, error) {
	p, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *service) ListByGroup(ctx context.Context, groupID string) ([]Prompt, error) {
	var members []Prompt
	for _, p := range s.store.GetAll(ctx) {
		if p.GroupID == groupID {
			members = append(members, p)
		}
	}
	return members, nil
}

func (s *service) FacetOptions(ctx context.Context) (FacetOptions, error) {
	return CollectFacets(s.store.GetAll(ctx)), nil
}

func (s *service) Create(ctx context.Context, cmd CreateCommand) (*Prompt, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(cmd.Content) == "" {
		return nil, ErrContentRequired
	}

	now := time.Now().UTC()
	id := uuid.NewString()
	cmd.applyDefaults()

	p := Prompt{
		ID:          id,
		Title:       cmd.Title,
		Description: cmd.Description,
		Tags:        orEmpty(cmd.Tags),
		Type:        cmd.Type,
		Language:    cmd.Language,
		GroupID:     cmd.GroupID,
		Author:      cmd.Author,
		Visibility:  cmd.Visibility,
		CreatedAt:   now,
		UpdatedAt:   now,

		CurrentVersion: "1",
		Versions: []PromptVersion{
			{
				ID:        versionID(id, 1),
				Version:   "1",
				Content:   cmd.Content,
				Details:   cmd.Details,
				UseCases:  orEmpty(cmd.UseCases),
				Type:      cmd.Type,
				Language:  cmd.Language,
				Models:    orEmpty(cmd.Models),
				Tools:     orEmpty(cmd.Tools),
				CreatedAt: now,
			},
		},
	}

	if err := s.store.Upsert(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("prompt created", "id", p.ID, "title", p.Title)
	return &p, nil
}

func (s *service) Update(ctx context.Context, id string, cmd UpdateCommand) (*Prompt, error) {
	p, err := s.store.Update(ctx, id, func(p *Prompt) error {
		if cmd.Title != nil {
			if strings.TrimSpace(*cmd.Title) == "" {
				return ErrTitleRequired
			}
			p.Title = *cmd.Title
		}
		if cmd.Description != nil {
			p.Description = *cmd.Description
		}
		if cmd.Tags != nil {
			p.Tags = orEmpty(*cmd.Tags)
		}
		if cmd.Type != nil {
			p.Type = *cmd.Type
		}
		if cmd.Language != nil {
			p.Language = *cmd.Language
		}
		if cmd.Visibility != nil {
			p.Visibility = *cmd.Visibility
		}
		if cmd.GroupID != nil {
			p.GroupID = *cmd.GroupID
		}
		p.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return &p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.store.Remove(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	s.logger.Info("prompt deleted", "id", id)
	return nil
}

func (s *service) Archive(ctx context.Context, id string) (*Prompt, error) {
	return s.setFlag(ctx, id, func(p *Prompt) { p.IsArchived = true })
}

func (s *service) Restore(ctx context.Context, id string) (*Prompt, error) {
	return s.setFlag(ctx, id, func(p *Prompt) { p.IsArchived = false })
}

func (s *service) Favorite(ctx context.Context, id string) (*Prompt, error) {
	return s.setFlag(ctx, id, func(p *Prompt) { p.IsFavorite = true })
}

func (s *service) Unfavorite(ctx context.Context, id string) (*Prompt, error) {
	return s.setFlag(ctx, id, func(p *Prompt) { p.IsFavorite = false })
}

func (s *service) ListVersions(ctx context.Context, id string) ([]PromptVersion, error) {
	p, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.Versions, nil
}

func (s *service) GetVersion(ctx context.Context, id, version string) (*PromptVersion, error) {
	p, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	v, ok := p.Version(version)
	if !ok {
		return nil, ErrVersionNotFound
	}
	return v, nil
}

func (s *service) CreateVersion(ctx context.Context, id string) (*Prompt, error) {
	p, err := s.store.Update(ctx, id, func(p *Prompt) error {
		current, ok := p.Current()
		if !ok {
			return ErrVersionNotFound
		}

		ordinal := len(p.Versions) + 1
		version := strconv.Itoa(ordinal)
		now := time.Now().UTC()

		next := PromptVersion{
			ID:        versionID(p.ID, ordinal),
			Version:   version,
			Content:   current.Content,
			Details:   current.Details,
			UseCases:  cloned(current.UseCases),
			Type:      current.Type,
			Language:  current.Language,
			Models:    cloned(current.Models),
			Tools:     cloned(current.Tools),
			CreatedAt: now,
		}

		p.Versions = append(p.Versions, next)
		p.CurrentVersion = version
		p.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}

	s.logger.Info("prompt version created", "id", id, "version", p.CurrentVersion)
	return &p, nil
}

func (s *service) UpdateVersion(
	ctx context.Context,
	id, version string,
	cmd VersionUpdateCommand,
) (*Prompt, error) {
	p, err := s.store.Update(ctx, id, func(p *Prompt) error {
		v, ok := p.Version(version)
		if !ok {
			return ErrVersionNotFound
		}

		if cmd.Content != nil {
			if strings.TrimSpace(*cmd.Content) == "" {
				return ErrContentRequired
			}
			v.Content = *cmd.Content
		}
		if cmd.Details != nil {
			v.Details = *cmd.Details
		}
		if cmd.UseCases != nil {
			v.UseCases = orEmpty(*cmd.UseCases)
		}
		if cmd.Type != nil {
			v.Type = *cmd.Type
		}
		if cmd.Language != nil {
			v.Language = *cmd.Language
		}
		if cmd.Models != nil {
			v.Models = orEmpty(*cmd.Models)
		}
		if cmd.Tools != nil {
			v.Tools = orEmpty(*cmd.Tools)
		}
		if cmd.Visibility != nil {
			p.Visibility = *cmd.Visibility
		}

		p.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return &p, nil
}

func (s *service) SetCurrentVersion(ctx context.Context, id, version string) (*Prompt, error) {
	p, err := s.store.Update(ctx, id, func(p *Prompt) error {
		if _, ok := p.Version(version); !ok {
			return ErrVersionNotFound
		}
		p.CurrentVersion = version
		p.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return &p, nil
}

func (s *service) setFlag(ctx context.Context, id string, set func(*Prompt)) (*Prompt, error) {
	p, err := s.store.Update(ctx, id, func(p *Prompt) error {
		set(p)
		p.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return &p, nil
}

func (cmd *CreateCommand) applyDefaults() {
	if cmd.Visibility == "" {
		cmd.Visibility = VisibilityPublic
	}
	if cmd.Type == "" {
		cmd.Type = "general"
	}
	if cmd.Language == "" {
		cmd.Language = "en"
	}
	if len(cmd.Models) == 0 {
		cmd.Models = []string{"gpt-4"}
	}
}

func versionID(promptID string, ordinal int) string {
	return fmt.Sprintf("%s-%d", promptID, ordinal)
}

func mapStoreErr(err error) error {
	if errors.Is(err, collection.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func cloned(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}

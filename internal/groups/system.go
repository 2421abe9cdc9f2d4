package groups

import (
	"context"

	"github.com/prompthub/prompthub/internal/prompts"
)

// System defines the public contract for group domain operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context, term string, favorites bool) ([]Summary, error)
	Find(ctx context.Context, id string) (*Summary, error)
	Prompts(ctx context.Context, id string) ([]prompts.Prompt, error)

	Create(ctx context.Context, cmd CreateCommand) (*Summary, error)
	Update(ctx context.Context, id string, cmd UpdateCommand) (*Summary, error)
	Delete(ctx context.Context, id string) error

	Favorite(ctx context.Context, id string) (*Summary, error)
	Unfavorite(ctx context.Context, id string) (*Summary, error)
}

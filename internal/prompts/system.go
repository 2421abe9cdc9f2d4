package prompts

import (
	"context"

	"github.com/prompthub/prompthub/pkg/pagination"
)

// System defines the public contract for prompt domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		q Query,
	) (*pagination.PageResult[Prompt], error)

	Find(ctx context.Context, id string) (*Prompt, error)
	ListByGroup(ctx context.Context, groupID string) ([]Prompt, error)
	FacetOptions(ctx context.Context) (FacetOptions, error)

	Create(ctx context.Context, cmd CreateCommand) (*Prompt, error)
	Update(ctx context.Context, id string, cmd UpdateCommand) (*Prompt, error)
	Delete(ctx context.Context, id string) error

	Archive(ctx context.Context, id string) (*Prompt, error)
	Restore(ctx context.Context, id string) (*Prompt, error)
	Favorite(ctx context.Context, id string) (*Prompt, error)
	Unfavorite(ctx context.Context, id string) (*Prompt, error)

	ListVersions(ctx context.Context, id string) ([]PromptVersion, error)
	GetVersion(ctx context.Context, id, version string) (*PromptVersion, error)
	CreateVersion(ctx context.Context, id string) (*Prompt, error)
	UpdateVersion(ctx context.Context, id, version string, cmd VersionUpdateCommand) (*Prompt, error)
	SetCurrentVersion(ctx context.Context, id, version string) (*Prompt, error)
}

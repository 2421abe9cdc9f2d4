package workflows

import (
	"context"
)

// System defines the public contract for workflow domain operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context, term string, favorites bool) ([]Workflow, error)
	Find(ctx context.Context, id string) (*Workflow, error)

	Create(ctx context.Context, cmd CreateCommand) (*Workflow, error)
	Update(ctx context.Context, id string, cmd UpdateCommand) (*Workflow, error)
	Delete(ctx context.Context, id string) error
	Duplicate(ctx context.Context, id string) (*Workflow, error)

	Favorite(ctx context.Context, id string) (*Workflow, error)
	Unfavorite(ctx context.Context, id string) (*Workflow, error)
}

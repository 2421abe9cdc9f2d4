package workflows

import "context"

// Remote is the server-side collaborator for workflow deletion. The
// current deployment has no real backend; implementations must only
// report whether the remote accepted the delete, and local state is the
// source of truth either way.
type Remote interface {
	Delete(ctx context.Context, id string) (bool, error)
}

// AcceptAllRemote accepts every delete without side effects. It stands in
// for a future real backend.
type AcceptAllRemote struct{}

func (AcceptAllRemote) Delete(context.Context, string) (bool, error) {
	return true, nil
}

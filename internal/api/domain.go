package api

import (
	"github.com/prompthub/prompthub/internal/contact"
	"github.com/prompthub/prompthub/internal/groups"
	"github.com/prompthub/prompthub/internal/prompts"
	"github.com/prompthub/prompthub/internal/seed"
	"github.com/prompthub/prompthub/internal/workflows"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Prompts   prompts.System
	Groups    groups.System
	Workflows workflows.System
	Contact   contact.System
}

// NewDomain creates all domain systems from the API runtime. Seeding is
// disabled by handing the stores empty seed sets.
func NewDomain(runtime *Runtime) *Domain {
	promptSeed := []prompts.Prompt{}
	groupSeed := []groups.Group{}
	workflowSeed := []workflows.Workflow{}
	if runtime.Seed {
		promptSeed = seed.Prompts()
		groupSeed = seed.Groups()
		workflowSeed = seed.Workflows()
	}

	promptSys := prompts.New(
		runtime.Backend,
		promptSeed,
		runtime.Logger,
		runtime.Pagination,
	)

	groupSys := groups.New(
		runtime.Backend,
		groupSeed,
		promptSys,
		runtime.Logger,
	)

	workflowSys := workflows.New(
		runtime.Backend,
		workflowSeed,
		promptSys,
		workflows.AcceptAllRemote{},
		runtime.Logger,
	)

	contactSys := contact.New(runtime.Backend, runtime.Logger)

	return &Domain{
		Prompts:   promptSys,
		Groups:    groupSys,
		Workflows: workflowSys,
		Contact:   contactSys,
	}
}

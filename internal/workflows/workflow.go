// Package workflows implements ordered chains of prompt-backed steps.
// A step holds an immutable snapshot of the prompt content it was built
// from, never a live reference.
package workflows

import (
	"time"
)

// PromptSnapshot is the content captured into a step when a prompt is
// attached. It does not track later edits to the source prompt; CapturedAt
// records when the copy was taken.
type PromptSnapshot struct {
	PromptID   string    `json:"promptId"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	CapturedAt time.Time `json:"capturedAt"`
}

// Step is one stage of a workflow. Snapshot is nil for steps without an
// attached prompt.
type Step struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Snapshot    *PromptSnapshot `json:"prompt"`
}

// Workflow is an ordered chain of steps representing a multi-stage task.
type Workflow struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Steps       []Step    `json:"steps"`
	IsPublic    bool      `json:"isPublic"`
	IsFavorite  bool      `json:"isFavorite"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// StepInput describes one step when creating or replacing a workflow.
// PromptID, when set, resolves to a fresh snapshot of that prompt's
// current version.
type StepInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PromptID    string `json:"promptId"`
}

// CreateCommand carries the data needed to create a workflow.
type CreateCommand struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Steps       []StepInput `json:"steps"`
	IsPublic    *bool       `json:"isPublic"`
}

// UpdateCommand carries partial workflow changes. Steps, when present,
// replaces the whole step chain.
type UpdateCommand struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Steps       *[]StepInput `json:"steps"`
	IsPublic    *bool        `json:"isPublic"`
}

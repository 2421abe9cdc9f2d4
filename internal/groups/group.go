// Package groups implements folder-like containers for prompts. Group
// membership lives on the prompt side as a groupId reference; counts and
// member lists are derived on read rather than stored.
package groups

import (
	"time"
)

// Group is the persisted entity. Membership is not stored here.
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Visibility  string    `json:"visibility"`
	IsFavorite  bool      `json:"isFavorite"`
	AuthorID    string    `json:"authorId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Summary is the API view of a group with membership derived from the
// prompt collection at read time.
type Summary struct {
	Group
	PromptCount int      `json:"promptCount"`
	Prompts     []string `json:"prompts"`
}

// CreateCommand carries the data needed to create a group.
type CreateCommand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Visibility  string `json:"visibility"`
	AuthorID    string `json:"authorId"`
}

// UpdateCommand carries partial group changes. Nil fields are left
// untouched.
type UpdateCommand struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Visibility  *string `json:"visibility"`
}

// Package prompts implements the prompt domain for PromptHub. It provides
// types, persistence, filtering, and version management for reusable
// AI-model prompt text.
package prompts

import (
	"time"
)

// Visibility values for prompts and versions.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Author identifies who created a prompt.
type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// PromptVersion is one snapshot of a prompt's content and metadata.
// Versions are ordered by their string ordinal and append-only except for
// explicit in-place edits.
type PromptVersion struct {
	ID        string    `json:"id"`
	Version   string    `json:"version"`
	Content   string    `json:"content"`
	Details   string    `json:"details,omitempty"`
	UseCases  []string  `json:"useCases"`
	Type      string    `json:"type,omitempty"`
	Language  string    `json:"language,omitempty"`
	Models    []string  `json:"models"`
	Tools     []string  `json:"tools"`
	CreatedAt time.Time `json:"createdAt"`
}

// Prompt is a titled, tagged unit of reusable model input text with a
// version history. CurrentVersion names the version string of exactly one
// entry in Versions.
type Prompt struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Tags           []string        `json:"tags"`
	Type           string          `json:"type,omitempty"`
	Language       string          `json:"language,omitempty"`
	GroupID        string          `json:"groupId,omitempty"`
	Author         Author          `json:"author"`
	Likes          int             `json:"likes"`
	Views          int             `json:"views"`
	Visibility     string          `json:"visibility"`
	IsArchived     bool            `json:"isArchived"`
	IsFavorite     bool            `json:"isFavorite"`
	CurrentVersion string          `json:"currentVersion"`
	Versions       []PromptVersion `json:"versions"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Current returns the version entry named by CurrentVersion. The second
// return is false when no entry matches, which callers must surface as a
// not-found state rather than render a prompt without content.
func (p *Prompt) Current() (*PromptVersion, bool) {
	for i := range p.Versions {
		if p.Versions[i].Version == p.CurrentVersion {
			return &p.Versions[i], true
		}
	}
	return nil, false
}

// Version returns the entry whose version string matches.
func (p *Prompt) Version(version string) (*PromptVersion, bool) {
	for i := range p.Versions {
		if p.Versions[i].Version == version {
			return &p.Versions[i], true
		}
	}
	return nil, false
}

// CreateCommand carries the data needed to create a prompt. Content seeds
// the initial version.
type CreateCommand struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Details     string   `json:"details"`
	Tags        []string `json:"tags"`
	UseCases    []string `json:"useCases"`
	Type        string   `json:"type"`
	Language    string   `json:"language"`
	Models      []string `json:"models"`
	Tools       []string `json:"tools"`
	Visibility  string   `json:"visibility"`
	GroupID     string   `json:"groupId"`
	Author      Author   `json:"author"`
}

// UpdateCommand carries partial prompt metadata changes. Nil fields are
// left untouched; GroupID set to an empty string clears the association.
type UpdateCommand struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	Type        *string   `json:"type"`
	Language    *string   `json:"language"`
	Visibility  *string   `json:"visibility"`
	GroupID     *string   `json:"groupId"`
}

// VersionUpdateCommand carries partial in-place edits to a single version
// entry. Nil fields are left untouched. Visibility applies to the owning
// prompt, not the version entry.
type VersionUpdateCommand struct {
	Content    *string   `json:"content"`
	Details    *string   `json:"details"`
	UseCases   *[]string `json:"useCases"`
	Type       *string   `json:"type"`
	Language   *string   `json:"language"`
	Models     *[]string `json:"models"`
	Tools      *[]string `json:"tools"`
	Visibility *string   `json:"visibility"`
}

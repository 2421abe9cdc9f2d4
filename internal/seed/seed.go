// Package seed provides the built-in sample entities used to populate an
// empty store on first load.
package seed

import (
	"time"

	"github.com/prompthub/prompthub/internal/groups"
	"github.com/prompthub/prompthub/internal/prompts"
	"github.com/prompthub/prompthub/internal/workflows"
)

func date(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// Prompts returns the sample prompt set, including a multi-version prompt
// so version history renders with data out of the box.
func Prompts() []prompts.Prompt {
	return []prompts.Prompt{
		{
			ID:          "1",
			Title:       "GPT-4 System Message Template",
			Description: "A template for creating effective system messages for GPT-4",
			Tags:        []string{"gpt-4", "system-message", "template"},
			Type:        "system",
			Language:    "en",
			Author:      prompts.Author{ID: "user1", Name: "John Doe", Avatar: "/placeholder-avatar.png"},
			Likes:       42,
			Views:       156,
			Visibility:  prompts.VisibilityPublic,
			IsFavorite:  true,
			GroupID:     "group1",
			CreatedAt:   date("2024-03-01T00:00:00Z"),
			UpdatedAt:   date("2024-03-01T00:00:00Z"),

			CurrentVersion: "1",
			Versions: []prompts.PromptVersion{
				{
					ID:        "1-1",
					Version:   "1",
					Content:   "You are a helpful AI assistant...",
					Details:   "Initial version",
					UseCases:  []string{"General assistance", "Task automation"},
					Type:      "system",
					Language:  "en",
					Models:    []string{"gpt-4"},
					Tools:     []string{},
					CreatedAt: date("2024-03-01T00:00:00Z"),
				},
			},
		},
		{
			ID:          "2",
			Title:       "Code Refactoring Assistant",
			Description: "A specialized prompt for code analysis and refactoring suggestions",
			Tags:        []string{"coding", "refactoring", "best-practices"},
			Type:        "instruction",
			Language:    "en",
			Author:      prompts.Author{ID: "user4", Name: "Bob Builder", Avatar: "/placeholder-avatar.png"},
			Likes:       95,
			Views:       210,
			Visibility:  prompts.VisibilityPublic,
			GroupID:     "group1",
			CreatedAt:   date("2023-05-14T14:45:00Z"),
			UpdatedAt:   date("2023-05-16T09:30:00Z"),

			CurrentVersion: "2",
			Versions: []prompts.PromptVersion{
				{
					ID:        "2-1",
					Version:   "1",
					Content:   "Analyze this code snippet and suggest improvements for readability and efficiency: [Insert code snippet here]",
					Details:   "This prompt helps developers improve their code quality by providing specific suggestions for refactoring.",
					UseCases:  []string{"Code Review", "Learning Best Practices"},
					Type:      "instruction",
					Language:  "en",
					Models:    []string{"GPT-4", "CodeLlama"},
					Tools:     []string{"GitHub Copilot", "Amazon CodeWhisperer"},
					CreatedAt: date("2023-05-14T14:45:00Z"),
				},
				{
					ID:        "2-2",
					Version:   "2",
					Content:   "As an expert software developer, analyze the following code and provide specific recommendations for improving: 1) Code readability 2) Performance optimization 3) Best practices 4) Potential bugs. [Insert code snippet here]",
					Details:   "Enhanced version with more structured output and comprehensive code analysis categories.",
					UseCases:  []string{"Code Review", "Learning Best Practices", "Performance Optimization", "Bug Detection"},
					Type:      "instruction",
					Language:  "en",
					Models:    []string{"GPT-4", "CodeLlama", "Claude-2"},
					Tools:     []string{"GitHub Copilot", "Amazon CodeWhisperer", "SonarQube"},
					CreatedAt: date("2023-05-16T09:30:00Z"),
				},
			},
		},
		{
			ID:          "3",
			Title:       "Creative Story Starter",
			Description: "A creative writing prompt to spark imagination",
			Tags:        []string{"creative", "writing", "fantasy"},
			Type:        "chat",
			Language:    "en",
			Author:      prompts.Author{ID: "user3", Name: "Alice Wonderland", Avatar: "/placeholder-avatar.png"},
			Likes:       120,
			Views:       250,
			Visibility:  prompts.VisibilityPublic,
			GroupID:     "group2",
			CreatedAt:   date("2023-05-15T10:30:00Z"),
			UpdatedAt:   date("2023-05-15T10:30:00Z"),

			CurrentVersion: "1",
			Versions: []prompts.PromptVersion{
				{
					ID:        "3-1",
					Version:   "1",
					Content:   "You are a storyteller in a world where dreams come to life. Describe the most vivid dream that has manifested in reality.",
					Details:   "This prompt is designed to spark creativity and encourage imaginative storytelling. It combines elements of fantasy with the familiar concept of dreams to create a unique narrative starting point.",
					UseCases:  []string{"Creative Writing", "World Building", "Character Development"},
					Type:      "chat",
					Language:  "en",
					Models:    []string{"GPT-4", "Claude-2", "PaLM-2"},
					Tools:     []string{"Midjourney", "DALL-E"},
					CreatedAt: date("2023-05-15T10:30:00Z"),
				},
			},
		},
	}
}

// Groups returns the sample group set. Membership is derived from the
// prompt seed's groupId references.
func Groups() []groups.Group {
	return []groups.Group{
		{
			ID:          "group1",
			Name:        "Development Prompts",
			Description: "Collection of prompts for software development",
			Visibility:  prompts.VisibilityPublic,
			IsFavorite:  true,
			AuthorID:    "user1",
			CreatedAt:   date("2024-03-01T00:00:00Z"),
			UpdatedAt:   date("2024-03-01T00:00:00Z"),
		},
		{
			ID:          "group2",
			Name:        "Writing Assistants",
			Description: "Prompts for content creation and writing",
			Visibility:  prompts.VisibilityPublic,
			AuthorID:    "user1",
			CreatedAt:   date("2024-03-02T00:00:00Z"),
			UpdatedAt:   date("2024-03-02T00:00:00Z"),
		},
	}
}

// Workflows returns the sample workflow set. There is none; workflows
// start empty.
func Workflows() []workflows.Workflow {
	return []workflows.Workflow{}
}

package prompts_test

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/prompthub/prompthub/internal/prompts"
)

func sample(id, title string, mutate func(*prompts.Prompt)) prompts.Prompt {
	p := prompts.Prompt{
		ID:             id,
		Title:          title,
		Tags:           []string{},
		Type:           "general",
		Language:       "en",
		Visibility:     prompts.VisibilityPublic,
		CurrentVersion: "1",
		Versions: []prompts.PromptVersion{
			{
				ID:       id + "-1",
				Version:  "1",
				Content:  "content of " + title,
				UseCases: []string{},
				Models:   []string{},
				Tools:    []string{},
			},
		},
	}
	if mutate != nil {
		mutate(&p)
	}
	return p
}

func ids(filtered []prompts.Prompt) []string {
	out := make([]string, 0, len(filtered))
	for _, p := range filtered {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterStatus(t *testing.T) {
	collection := []prompts.Prompt{
		sample("1", "public", nil),
		sample("2", "private", func(p *prompts.Prompt) {
			p.Visibility = prompts.VisibilityPrivate
		}),
		sample("3", "archived", func(p *prompts.Prompt) {
			p.IsArchived = true
		}),
		sample("4", "archived favorite", func(p *prompts.Prompt) {
			p.IsArchived = true
			p.IsFavorite = true
		}),
		sample("5", "favorite", func(p *prompts.Prompt) {
			p.IsFavorite = true
		}),
	}

	tests := []struct {
		status prompts.Status
		want   []string
	}{
		{prompts.StatusAll, []string{"1", "2", "5"}},
		{prompts.StatusPublic, []string{"1", "5"}},
		{prompts.StatusPrivate, []string{"2"}},
		{prompts.StatusArchived, []string{"3", "4"}},
		{prompts.StatusFavorites, []string{"4", "5"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := ids(prompts.Filter(collection, prompts.Query{Status: tt.status}))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter(%s) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestFilterEmptyFacetsMatchStatusOnly(t *testing.T) {
	collection := []prompts.Prompt{
		sample("1", "alpha", nil),
		sample("2", "beta", func(p *prompts.Prompt) { p.IsArchived = true }),
		sample("3", "gamma", nil),
	}

	withFacets := prompts.Filter(collection, prompts.Query{
		Status: prompts.StatusAll,
		Facets: prompts.Facets{},
	})
	statusOnly := prompts.Filter(collection, prompts.Query{Status: prompts.StatusAll})

	if !reflect.DeepEqual(ids(withFacets), ids(statusOnly)) {
		t.Errorf("empty facets changed result: %v vs %v", ids(withFacets), ids(statusOnly))
	}
}

func TestFilterTermMatchesVersionContent(t *testing.T) {
	collection := []prompts.Prompt{
		sample("1", "alpha", nil),
		sample("2", "beta", func(p *prompts.Prompt) {
			p.Versions[0].Content = "Analyze this code and suggest a Refactor plan"
		}),
		sample("3", "gamma", nil),
	}

	got := ids(prompts.Filter(collection, prompts.Query{
		Term:   "refactor",
		Status: prompts.StatusAll,
	}))
	if !reflect.DeepEqual(got, []string{"2"}) {
		t.Errorf("Filter(refactor) = %v, want [2]", got)
	}
}

func TestFilterTermMatchesTitleAndTags(t *testing.T) {
	collection := []prompts.Prompt{
		sample("1", "Code Review Assistant", nil),
		sample("2", "beta", func(p *prompts.Prompt) {
			p.Tags = []string{"code-review"}
		}),
		sample("3", "gamma", nil),
	}

	got := ids(prompts.Filter(collection, prompts.Query{
		Term:   "ReVieW",
		Status: prompts.StatusAll,
	}))
	if !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Errorf("Filter(ReVieW) = %v, want [1 2]", got)
	}
}

func TestFilterFacetsAreANDed(t *testing.T) {
	collection := []prompts.Prompt{
		sample("1", "match both", func(p *prompts.Prompt) {
			p.Versions[0].Models = []string{"gpt-4"}
			p.Versions[0].Tools = []string{"copilot"}
		}),
		sample("2", "match model only", func(p *prompts.Prompt) {
			p.Versions[0].Models = []string{"gpt-4"}
		}),
		sample("3", "match tool only", func(p *prompts.Prompt) {
			p.Versions[0].Tools = []string{"copilot"}
		}),
	}

	got := ids(prompts.Filter(collection, prompts.Query{
		Status: prompts.StatusAll,
		Facets: prompts.Facets{
			Models: []string{"gpt-4"},
			Tools:  []string{"copilot"},
		},
	}))
	if !reflect.DeepEqual(got, []string{"1"}) {
		t.Errorf("ANDed facets = %v, want [1]", got)
	}
}

func TestFilterUnsetScalarFailsNonEmptyFacet(t *testing.T) {
	collection := []prompts.Prompt{
		sample("1", "typed", nil),
		sample("2", "untyped", func(p *prompts.Prompt) { p.Type = "" }),
	}

	got := ids(prompts.Filter(collection, prompts.Query{
		Status: prompts.StatusAll,
		Facets: prompts.Facets{Types: []string{"general"}},
	}))
	if !reflect.DeepEqual(got, []string{"1"}) {
		t.Errorf("Filter(type=general) = %v, want [1]", got)
	}
}

func TestFilterIsDeterministicAndOrderPreserving(t *testing.T) {
	collection := []prompts.Prompt{
		sample("3", "c", nil),
		sample("1", "a", nil),
		sample("2", "b", nil),
	}
	q := prompts.Query{Status: prompts.StatusAll}

	first := ids(prompts.Filter(collection, q))
	second := ids(prompts.Filter(collection, q))

	if !reflect.DeepEqual(first, []string{"3", "1", "2"}) {
		t.Errorf("Filter reordered input: %v", first)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Filter not deterministic: %v vs %v", first, second)
	}
}

func TestQueryFromValues(t *testing.T) {
	values := url.Values{}
	values.Set("term", "story")
	values.Set("status", "favorites")
	values.Set("models", "GPT-4, Claude-2")
	values.Set("type", "chat")

	q, err := prompts.QueryFromValues(values)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if q.Term != "story" {
		t.Errorf("Term = %q, want story", q.Term)
	}
	if q.Status != prompts.StatusFavorites {
		t.Errorf("Status = %q, want favorites", q.Status)
	}
	if !reflect.DeepEqual(q.Facets.Models, []string{"GPT-4", "Claude-2"}) {
		t.Errorf("Models = %v", q.Facets.Models)
	}
	if !reflect.DeepEqual(q.Facets.Types, []string{"chat"}) {
		t.Errorf("Types = %v", q.Facets.Types)
	}
}

func TestQueryFromValuesRejectsUnknownStatus(t *testing.T) {
	values := url.Values{}
	values.Set("status", "starred")

	if _, err := prompts.QueryFromValues(values); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestCollectFacets(t *testing.T) {
	collection := []prompts.Prompt{
		sample("1", "a", func(p *prompts.Prompt) {
			p.Versions[0].Models = []string{"gpt-4", "claude"}
		}),
		sample("2", "b", func(p *prompts.Prompt) {
			p.Versions[0].Models = []string{"gpt-4"}
		}),
		sample("3", "archived", func(p *prompts.Prompt) {
			p.IsArchived = true
			p.Versions[0].Models = []string{"palm"}
		}),
	}

	options := prompts.CollectFacets(collection)

	want := []prompts.FacetCount{
		{Value: "gpt-4", Count: 2},
		{Value: "claude", Count: 1},
	}
	if !reflect.DeepEqual(options.Models, want) {
		t.Errorf("Models = %v, want %v", options.Models, want)
	}

	if !reflect.DeepEqual(options.Types, []prompts.FacetCount{{Value: "general", Count: 2}}) {
		t.Errorf("Types = %v", options.Types)
	}
}

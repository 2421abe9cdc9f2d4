package prompts

import (
	"net/url"
	"slices"
	"sort"
	"strings"
)

// Status selects the visibility category applied before any other
// predicate. Categories are exclusive; "all" means not archived.
type Status string

const (
	StatusAll       Status = "all"
	StatusPublic    Status = "public"
	StatusPrivate   Status = "private"
	StatusArchived  Status = "archived"
	StatusFavorites Status = "favorites"
)

// ParseStatus returns the Status for a query value, defaulting to all when
// empty.
func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case "", StatusAll:
		return StatusAll, nil
	case StatusPublic, StatusPrivate, StatusArchived, StatusFavorites:
		return Status(value), nil
	default:
		return StatusAll, ErrInvalidStatus
	}
}

// Facets holds the selected values per filter dimension. A dimension with
// no selected values matches every prompt. UseCases, Models, and Tools
// match against the first version's arrays; Types and Languages match the
// prompt-level scalar fields.
type Facets struct {
	UseCases  []string `json:"useCases"`
	Types     []string `json:"type"`
	Languages []string `json:"language"`
	Models    []string `json:"models"`
	Tools     []string `json:"tools"`
}

// Query is the full filter input. Filtering is a pure function of the
// collection and this value.
type Query struct {
	Term   string `json:"term"`
	Status Status `json:"status"`
	Facets Facets `json:"facets"`
}

// QueryFromValues parses filter criteria from URL query parameters.
// Facet dimensions accept comma-separated values.
func QueryFromValues(values url.Values) (Query, error) {
	status, err := ParseStatus(values.Get("status"))
	if err != nil {
		return Query{}, err
	}

	return Query{
		Term:   values.Get("term"),
		Status: status,
		Facets: Facets{
			UseCases:  splitValues(values.Get("useCases")),
			Types:     splitValues(values.Get("type")),
			Languages: splitValues(values.Get("language")),
			Models:    splitValues(values.Get("models")),
			Tools:     splitValues(values.Get("tools")),
		},
	}, nil
}

// Filter returns the subset of prompts matching every active predicate,
// preserving input order. Status applies first, then the search term over
// title, first-version content, and tags, then each facet dimension.
func Filter(collection []Prompt, q Query) []Prompt {
	filtered := make([]Prompt, 0, len(collection))
	term := strings.ToLower(q.Term)

	for _, p := range collection {
		if !matchesStatus(&p, q.Status) {
			continue
		}
		if term != "" && !matchesTerm(&p, term) {
			continue
		}
		if !matchesFacets(&p, q.Facets) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

func matchesStatus(p *Prompt, status Status) bool {
	switch status {
	case StatusPublic:
		return p.Visibility == VisibilityPublic && !p.IsArchived
	case StatusPrivate:
		return p.Visibility == VisibilityPrivate && !p.IsArchived
	case StatusArchived:
		return p.IsArchived
	case StatusFavorites:
		return p.IsFavorite
	default:
		return !p.IsArchived
	}
}

func matchesTerm(p *Prompt, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	if len(p.Versions) > 0 &&
		strings.Contains(strings.ToLower(p.Versions[0].Content), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func matchesFacets(p *Prompt, f Facets) bool {
	var useCases, models, tools []string
	if len(p.Versions) > 0 {
		useCases = p.Versions[0].UseCases
		models = p.Versions[0].Models
		tools = p.Versions[0].Tools
	}

	return intersects(useCases, f.UseCases) &&
		intersects(models, f.Models) &&
		intersects(tools, f.Tools) &&
		containsScalar(p.Type, f.Types) &&
		containsScalar(p.Language, f.Languages)
}

// intersects reports whether values shares at least one element with
// selected. An empty selection is vacuously true.
func intersects(values, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, v := range values {
		if slices.Contains(selected, v) {
			return true
		}
	}
	return false
}

// containsScalar reports whether the scalar field value is one of the
// selected values. An unset field fails any non-empty selection.
func containsScalar(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	return slices.Contains(selected, value)
}

func splitValues(raw string) []string {
	if raw == "" {
		return nil
	}

	var values []string
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

// FacetCount pairs a facet value with the number of non-archived prompts
// carrying it.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FacetOptions lists the available values per filter dimension, ordered by
// descending count then value.
type FacetOptions struct {
	UseCases  []FacetCount `json:"useCases"`
	Types     []FacetCount `json:"type"`
	Languages []FacetCount `json:"language"`
	Models    []FacetCount `json:"models"`
	Tools     []FacetCount `json:"tools"`
}

// CollectFacets derives the facet options for a collection. Array
// dimensions draw from each prompt's first version; archived prompts are
// skipped since default views exclude them.
func CollectFacets(collection []Prompt) FacetOptions {
	useCases := make(map[string]int)
	types := make(map[string]int)
	languages := make(map[string]int)
	models := make(map[string]int)
	tools := make(map[string]int)

	for _, p := range collection {
		if p.IsArchived {
			continue
		}
		if len(p.Versions) > 0 {
			countAll(useCases, p.Versions[0].UseCases)
			countAll(models, p.Versions[0].Models)
			countAll(tools, p.Versions[0].Tools)
		}
		countOne(types, p.Type)
		countOne(languages, p.Language)
	}

	return FacetOptions{
		UseCases:  sortCounts(useCases),
		Types:     sortCounts(types),
		Languages: sortCounts(languages),
		Models:    sortCounts(models),
		Tools:     sortCounts(tools),
	}
}

func countAll(counts map[string]int, values []string) {
	for _, v := range values {
		countOne(counts, v)
	}
}

func countOne(counts map[string]int, value string) {
	if value != "" {
		counts[value]++
	}
}

func sortCounts(counts map[string]int) []FacetCount {
	out := make([]FacetCount, 0, len(counts))
	for value, count := range counts {
		out = append(out, FacetCount{Value: value, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})

	return out
}

package router

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match is one scored agent suggestion.
type Match struct {
	// Agent is the matched agent name.
	Agent string

	// Category is the agent's category.
	Category string

	// Score is the summed weight of distinct keyword hits.
	Score float64

	// Keywords are the distinct keywords that hit, in table order.
	Keywords []string
}

// Engine scores prompts against a routing table. Scoring is pure: the
// same prompt and table always produce the same matches.
type Engine struct {
	table     []Agent
	threshold float64
	maxAgents int
}

// NewEngine creates an engine over the given table.
func NewEngine(table []Agent, threshold float64, maxAgents int) *Engine {
	return &Engine{
		table:     table,
		threshold: threshold,
		maxAgents: maxAgents,
	}
}

var tokenPattern = regexp.MustCompile(`[a-z0-9][a-z0-9_-]*`)

// Route scores the prompt against every table entry and returns the
// matches at or above the threshold, best first. Ties break on agent
// name so the ordering is stable.
func (e *Engine) Route(prompt string) []Match {
	normalized := normalize(prompt)
	if normalized == "" {
		return nil
	}

	words := make(map[string]bool)
	for _, token := range tokenPattern.FindAllString(normalized, -1) {
		words[token] = true
	}

	matches := make([]Match, 0)

	for _, agent := range e.table {
		weight := agent.Weight
		if weight <= 0 {
			weight = 1.0
		}

		var (
			score float64
			hits  []string
		)

		for _, keyword := range agent.Keywords {
			if keywordHits(keyword, normalized, words) {
				score += weight

				hits = append(hits, keyword)
			}
		}

		if score >= e.threshold && len(hits) > 0 {
			matches = append(matches, Match{
				Agent:    agent.Name,
				Category: agent.Category,
				Score:    score,
				Keywords: hits,
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}

		return matches[i].Agent < matches[j].Agent
	})

	if e.maxAgents > 0 && len(matches) > e.maxAgents {
		matches = matches[:e.maxAgents]
	}

	return matches
}

// Suggest returns agent names whose keywords fuzzily match the query.
// Used for near-miss diagnostics when a prompt routed nowhere.
func (e *Engine) Suggest(query string) []string {
	vocabulary := make([]string, 0)
	owners := make(map[string]string)

	for _, agent := range e.table {
		for _, keyword := range agent.Keywords {
			if _, seen := owners[keyword]; !seen {
				vocabulary = append(vocabulary, keyword)
				owners[keyword] = agent.Name
			}
		}
	}

	results := fuzzy.Find(normalize(query), vocabulary)

	suggested := make([]string, 0)
	seen := make(map[string]bool)

	for _, r := range results {
		name := owners[r.Str]
		if !seen[name] {
			suggested = append(suggested, name)
			seen[name] = true
		}
	}

	return suggested
}

// Annotation renders matches as the context block attached to the
// allow response.
func Annotation(matches []Match) string {
	if len(matches) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString("Suggested agents for this prompt:\n")

	for _, m := range matches {
		fmt.Fprintf(&sb, "- %s (%s, score %.1f: %s)\n",
			m.Agent, m.Category, m.Score, strings.Join(m.Keywords, ", "))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// keywordHits reports whether the keyword appears in the prompt.
// Single words match whole tokens; phrases match as substrings on
// word boundaries.
func keywordHits(keyword, normalized string, words map[string]bool) bool {
	keyword = normalize(keyword)
	if keyword == "" {
		return false
	}

	if !strings.ContainsAny(keyword, " ") {
		return words[keyword]
	}

	idx := strings.Index(normalized, keyword)
	for idx >= 0 {
		beforeOK := idx == 0 || isBoundary(normalized[idx-1])

		end := idx + len(keyword)
		afterOK := end == len(normalized) || isBoundary(normalized[end])

		if beforeOK && afterOK {
			return true
		}

		next := strings.Index(normalized[idx+1:], keyword)
		if next < 0 {
			return false
		}

		idx += 1 + next
	}

	return false
}

func isBoundary(b byte) bool {
	return !(b >= 'a' && b <= 'z') && !(b >= '0' && b <= '9')
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

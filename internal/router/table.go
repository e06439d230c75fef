// Package router scores prompts against a keyword table to suggest
// specialist agents. Routing is annotation only: it never blocks and
// never dispatches, it adds context to the allow response.
package router

// Agent is one routing table entry.
type Agent struct {
	// Name is the agent identifier.
	Name string

	// Category groups related agents.
	Category string

	// Keywords trigger this agent. Multi-word keywords match as phrases.
	Keywords []string

	// Weight is the score contributed per distinct keyword hit.
	Weight float64
}

// DefaultTable is the built-in routing table. Configuration entries
// with the same agent name replace these.
func DefaultTable() []Agent {
	return []Agent{
		{
			Name:     "rapid-prototyper",
			Category: "engineering",
			Keywords: []string{"prototype", "mvp", "proof of concept", "scaffold", "new app", "demo"},
			Weight:   1.0,
		},
		{
			Name:     "frontend-developer",
			Category: "engineering",
			Keywords: []string{"ui", "frontend", "react", "component", "css", "responsive", "layout"},
			Weight:   1.0,
		},
		{
			Name:     "backend-architect",
			Category: "engineering",
			Keywords: []string{"api", "backend", "database", "schema", "endpoint", "migration", "server"},
			Weight:   1.0,
		},
		{
			Name:     "mobile-app-builder",
			Category: "engineering",
			Keywords: []string{"mobile", "ios", "android", "react native", "app store"},
			Weight:   1.0,
		},
		{
			Name:     "ai-engineer",
			Category: "engineering",
			Keywords: []string{"llm", "embedding", "rag", "fine-tune", "machine learning", "model"},
			Weight:   1.0,
		},
		{
			Name:     "devops-automator",
			Category: "engineering",
			Keywords: []string{"deploy", "ci", "pipeline", "docker", "kubernetes", "terraform", "infrastructure"},
			Weight:   1.0,
		},
		{
			Name:     "test-writer-fixer",
			Category: "engineering",
			Keywords: []string{"test", "tests", "coverage", "flaky", "regression", "unit test"},
			Weight:   1.5,
		},
		{
			Name:     "ui-designer",
			Category: "design",
			Keywords: []string{"design", "mockup", "wireframe", "figma", "typography", "color palette"},
			Weight:   1.0,
		},
		{
			Name:     "whimsy-injector",
			Category: "design",
			Keywords: []string{"delight", "animation", "easter egg", "playful", "micro-interaction"},
			Weight:   1.0,
		},
		{
			Name:     "growth-hacker",
			Category: "marketing",
			Keywords: []string{"growth", "viral", "acquisition", "retention", "funnel", "launch"},
			Weight:   1.0,
		},
		{
			Name:     "content-creator",
			Category: "marketing",
			Keywords: []string{"blog", "content", "copywriting", "social media", "newsletter"},
			Weight:   1.0,
		},
		{
			Name:     "feedback-synthesizer",
			Category: "product",
			Keywords: []string{"feedback", "reviews", "survey", "user research", "pain points"},
			Weight:   1.0,
		},
		{
			Name:     "sprint-prioritizer",
			Category: "product",
			Keywords: []string{"prioritize", "roadmap", "sprint", "backlog", "trade-off"},
			Weight:   1.0,
		},
		{
			Name:     "performance-benchmarker",
			Category: "testing",
			Keywords: []string{"performance", "benchmark", "profiling", "latency", "slow", "optimize"},
			Weight:   1.0,
		},
		{
			Name:     "infrastructure-maintainer",
			Category: "operations",
			Keywords: []string{"scaling", "monitoring", "alerts", "outage", "capacity", "reliability"},
			Weight:   1.0,
		},
	}
}

// Package secrets provides detection of credential assignments in
// prompts and file content.
package secrets

import "regexp"

// credentialPattern pairs a compiled pattern with a label used in the
// reported reason. Patterns are ordered from most to least specific so
// the first match names the narrowest category.
type credentialPattern struct {
	label string
	re    *regexp.Regexp
}

// builtinPatterns cover the common shapes of hardcoded credentials:
// key/value assignments, provider-issued token prefixes, and PEM
// private key blocks. Assignments require a value of at least eight
// characters so placeholders like password=xxx stay below the bar.
var builtinPatterns = []credentialPattern{
	{
		label: "AWS access key",
		re:    regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`),
	},
	{
		label: "GitHub token",
		re:    regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9]{36,}\b`),
	},
	{
		label: "private key block",
		re:    regexp.MustCompile(`-----BEGIN (?:RSA |EC |OPENSSH |DSA )?PRIVATE KEY-----`),
	},
	{
		label: "password assignment",
		re:    regexp.MustCompile(`(?i)\b(?:password|passwd|pwd)\s*[:=]\s*['"]?[^\s'"]{8,}`),
	},
	{
		label: "secret assignment",
		re:    regexp.MustCompile(`(?i)\b(?:secret|client_secret)(?:_key)?\s*[:=]\s*['"]?[^\s'"]{8,}`),
	},
	{
		label: "API key assignment",
		re:    regexp.MustCompile(`(?i)\b(?:api[_-]?key|apikey|access[_-]?key)\s*[:=]\s*['"]?[^\s'"]{8,}`),
	},
	{
		label: "token assignment",
		re:    regexp.MustCompile(`(?i)\b(?:auth[_-]?token|access[_-]?token|bearer[_-]?token)\s*[:=]\s*['"]?[^\s'"]{8,}`),
	},
}

// findCredential returns the label of the first matching builtin or
// extra pattern, or "" when nothing matches.
func findCredential(text string, extra []*regexp.Regexp) string {
	for _, p := range builtinPatterns {
		if p.re.MatchString(text) {
			return p.label
		}
	}

	for _, re := range extra {
		if re.MatchString(text) {
			return "configured credential pattern"
		}
	}

	return ""
}

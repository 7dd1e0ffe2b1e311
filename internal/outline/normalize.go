// Package outline normalizes generated markdown and derives the heading tree
// served by the diagram endpoints.
package outline

import "strings"

// Normalize strips wrapping markdown code fences from a model response and
// trims surrounding whitespace. Generated content frequently arrives as
// ```markdown ... ``` even when the prompt asks for bare markdown.
//
// Normalize never fails: content that is not fenced, including malformed
// markdown, passes through untouched apart from the whitespace trim. The
// function is idempotent; it repeats the unwrap until a fixed point so that
// nested fences cannot leave a once-more-strippable result.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	for {
		next := stripFence(s)
		if next == s {
			return s
		}
		s = next
	}
}

// stripFence removes one wrapping fence, if the whole string is fenced.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}

	// Opening fence line may carry an info string (```markdown, ```md, ...).
	nl := strings.IndexByte(s, '\n')
	if nl == -1 {
		return s
	}

	rest := s[nl+1:]
	end := strings.LastIndex(rest, "```")
	if end == -1 {
		return s
	}
	// Only a fence that wraps the entire content is stripped; trailing text
	// after the closing fence means the fence is part of the content.
	if strings.TrimSpace(rest[end+3:]) != "" {
		return s
	}

	return strings.TrimSpace(rest[:end])
}

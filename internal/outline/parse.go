package outline

import (
	"regexp"
	"strings"
)

// Node is one heading in the parsed outline tree. The tree is derived,
// display-only structure; the markdown itself stays the source of truth.
type Node struct {
	Title    string  `json:"title"`
	Level    int     `json:"level"`
	Children []*Node `json:"children,omitempty"`
}

var (
	headingPattern   = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	codeFencePattern = regexp.MustCompile("^```")
)

type heading struct {
	title string
	level int
}

// headings scans markdown for heading lines, skipping fenced code blocks.
func headings(markdown string) []heading {
	lines := strings.Split(markdown, "\n")
	var hs []heading
	inCodeBlock := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if codeFencePattern.MatchString(trimmed) {
			inCodeBlock = !inCodeBlock
			continue
		}
		if inCodeBlock || trimmed == "" {
			continue
		}

		if m := headingPattern.FindStringSubmatch(trimmed); m != nil {
			hs = append(hs, heading{
				title: strings.TrimSpace(m[2]),
				level: len(m[1]),
			})
		}
	}

	return hs
}

// Parse builds the outline tree for markdown. Heading levels nest by count
// of leading # characters; a heading becomes a child of the nearest shallower
// heading before it. Markdown without headings yields an empty tree.
func Parse(markdown string) []*Node {
	hs := headings(markdown)
	if len(hs) == 0 {
		return nil
	}

	type stackEntry struct {
		node  *Node
		level int
	}

	var stack []stackEntry
	var roots []*Node

	for _, h := range hs {
		n := &Node{Title: h.title, Level: h.level}

		// Pop stack until we find the parent
		for len(stack) > 0 && stack[len(stack)-1].level >= h.level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, n)
		} else {
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, n)
		}

		stack = append(stack, stackEntry{node: n, level: h.level})
	}

	return roots
}

// Title returns the first heading of the markdown, or "" when there is none.
func Title(markdown string) string {
	hs := headings(markdown)
	if len(hs) == 0 {
		return ""
	}
	return hs[0].title
}

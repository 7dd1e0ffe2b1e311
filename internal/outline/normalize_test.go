package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain fence",
			input: "```\n# A\n```",
			want:  "# A",
		},
		{
			name:  "markdown info string",
			input: "```markdown\n# A\n```",
			want:  "# A",
		},
		{
			name:  "md info string",
			input: "```md\n# Project X\n## Goals\n## Budget\n```",
			want:  "# Project X\n## Goals\n## Budget",
		},
		{
			name:  "surrounding whitespace",
			input: "\n\n```markdown\n# A\n```\n\n",
			want:  "# A",
		},
		{
			name:  "already normalized",
			input: "# A",
			want:  "# A",
		},
		{
			name:  "no fence multi line",
			input: "# Project X\n## Goals\n## Budget",
			want:  "# Project X\n## Goals\n## Budget",
		},
		{
			name:  "unterminated fence passes through",
			input: "```markdown\n# A",
			want:  "```markdown\n# A",
		},
		{
			name:  "content after closing fence keeps the fence",
			input: "```\ncode\n```\n# Title",
			want:  "```\ncode\n```\n# Title",
		},
		{
			name:  "fence only",
			input: "```",
			want:  "```",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   \n\t\n",
			want:  "",
		},
		{
			name:  "malformed markdown passes through verbatim",
			input: "#not-a-heading\n***\n<<<",
			want:  "#not-a-heading\n***\n<<<",
		},
		{
			name:  "nested fences unwrap fully",
			input: "```\n```markdown\n# A\n```\n```",
			want:  "# A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			assert.Equal(t, tt.want, got)

			// Idempotence: a second pass must be a no-op.
			assert.Equal(t, got, Normalize(got))
		})
	}
}

func TestNormalizeFixedPoint(t *testing.T) {
	// Arbitrary-ish corpus; every output must be a fixed point.
	inputs := []string{
		"```json\n{\"a\":1}\n```",
		"pre\n```\ninner\n```",
		"``` \n# heading\n```",
		"```\n\n```",
		"text```text",
		"## only a subtopic",
	}

	for _, in := range inputs {
		got := Normalize(in)
		assert.Equal(t, got, Normalize(got), "input %q", in)
	}
}

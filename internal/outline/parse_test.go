package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("single root with children", func(t *testing.T) {
		md := "# Project X\n## Goals\n## Budget"

		roots := Parse(md)
		require.Len(t, roots, 1)
		assert.Equal(t, "Project X", roots[0].Title)
		assert.Equal(t, 1, roots[0].Level)

		require.Len(t, roots[0].Children, 2)
		assert.Equal(t, "Goals", roots[0].Children[0].Title)
		assert.Equal(t, "Budget", roots[0].Children[1].Title)
		assert.Empty(t, roots[0].Children[0].Children)
	})

	t.Run("three levels nest", func(t *testing.T) {
		md := "# Main Topic\n## Subtopic 1\n### Detail 1\n### Detail 2\n## Subtopic 2"

		roots := Parse(md)
		require.Len(t, roots, 1)
		require.Len(t, roots[0].Children, 2)

		sub1 := roots[0].Children[0]
		assert.Equal(t, "Subtopic 1", sub1.Title)
		require.Len(t, sub1.Children, 2)
		assert.Equal(t, "Detail 1", sub1.Children[0].Title)
		assert.Equal(t, "Detail 2", sub1.Children[1].Title)

		assert.Equal(t, "Subtopic 2", roots[0].Children[1].Title)
	})

	t.Run("level jump attaches to nearest shallower heading", func(t *testing.T) {
		md := "# Top\n### Deep"

		roots := Parse(md)
		require.Len(t, roots, 1)
		require.Len(t, roots[0].Children, 1)
		assert.Equal(t, "Deep", roots[0].Children[0].Title)
		assert.Equal(t, 3, roots[0].Children[0].Level)
	})

	t.Run("multiple roots", func(t *testing.T) {
		md := "# First\n## A\n# Second\n## B"

		roots := Parse(md)
		require.Len(t, roots, 2)
		assert.Equal(t, "First", roots[0].Title)
		assert.Equal(t, "Second", roots[1].Title)
		require.Len(t, roots[1].Children, 1)
		assert.Equal(t, "B", roots[1].Children[0].Title)
	})

	t.Run("headings inside code fences are ignored", func(t *testing.T) {
		md := "# Real\n```\n# Not a heading\n```\n## Child"

		roots := Parse(md)
		require.Len(t, roots, 1)
		assert.Equal(t, "Real", roots[0].Title)
		require.Len(t, roots[0].Children, 1)
		assert.Equal(t, "Child", roots[0].Children[0].Title)
	})

	t.Run("bullets and text are not headings", func(t *testing.T) {
		md := "# Root\n- Key point 1\n- Key point 2\nplain line"

		roots := Parse(md)
		require.Len(t, roots, 1)
		assert.Empty(t, roots[0].Children)
	})

	t.Run("no headings yields empty tree", func(t *testing.T) {
		assert.Nil(t, Parse("just some text\nwith lines"))
		assert.Nil(t, Parse(""))
		assert.Nil(t, Parse("#missing-space-is-not-a-heading"))
	})
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Project X", Title("# Project X\n## Goals"))
	assert.Equal(t, "Subtopic", Title("## Subtopic\n# Later Root"))
	assert.Equal(t, "", Title("no headings here"))
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillContent(t *testing.T) {
	assert.Contains(t, skillContent, "name: process-data")
	assert.Contains(t, skillContent, "--input")
	assert.Contains(t, skillContent, "--output")
}

func TestRenderMarkdown(t *testing.T) {
	got := renderMarkdown("# Title\n\nSome *text* here.\n", 60)

	assert.NotEmpty(t, got)
	assert.Contains(t, got, "Title")
	assert.Contains(t, got, "text")
}

func TestRenderMarkdown_ReusesRendererForSameWidth(t *testing.T) {
	renderMarkdown("first", 70)
	first := cachedRenderer
	require.NotNil(t, first)

	renderMarkdown("second", 70)
	assert.Same(t, first, cachedRenderer, "same width should reuse the renderer")

	renderMarkdown("third", 50)
	assert.NotSame(t, first, cachedRenderer, "a new width should rebuild the renderer")
	assert.Equal(t, 50, cachedRendererWidth)
}

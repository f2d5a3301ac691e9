package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
)

//go:embed process-data.skill.md
var skillContent string

// SkillCmd prints the agent skill instructions to stdout.
type SkillCmd struct {
	Render bool `help:"Render the markdown for a terminal."`
	Width  int  `default:"80" help:"Word wrap width used with --render."`
}

func (cmd *SkillCmd) Run(globals *Globals) error {
	if !cmd.Render {
		fmt.Print(skillContent)
		return nil
	}
	fmt.Print(renderMarkdown(skillContent, cmd.Width))
	return nil
}

// Cached glamour renderer, rebuilt only when the wrap width changes.
// WithAutoStyle() queries the terminal for its background color.
var (
	cachedRenderer      *glamour.TermRenderer
	cachedRendererWidth int
)

// renderMarkdown renders md for the terminal using glamour.
// If rendering fails, md is returned unchanged.
func renderMarkdown(md string, width int) string {
	if cachedRenderer == nil || cachedRendererWidth != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		cachedRenderer = r
		cachedRendererWidth = width
	}

	rendered, err := cachedRenderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}

// Package web holds the embedded interactive mindmap viewer page.
package web

import (
	_ "embed"
	"strings"
)

//go:embed viewer.html
var viewerHTML string

const markdownSlot = "{{markdown}}"

// escaper neutralizes the two sequences that would break out of the JS
// template literal the markdown is embedded in.
var escaper = strings.NewReplacer("`", "\\`", "${", "\\${")

// RenderViewer returns a standalone HTML page that renders the given
// markdown as an interactive mindmap in the browser.
func RenderViewer(markdown string) string {
	return strings.Replace(viewerHTML, markdownSlot, escaper.Replace(markdown), 1)
}

// Package quote formats quotations and quote images as Markdown.
package quote

import (
	"strings"

	"github.com/ubuntpunk/xenquotes/internal/zenquotes"
)

const heading = "**Quote of the Day:**"

// Render formats q as a blockquote with its attribution.
func Render(q zenquotes.Quote) string {
	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n\n")
	for _, line := range strings.Split(strings.TrimSpace(q.Text), "\n") {
		b.WriteString("> ")
		b.WriteString(strings.TrimSpace(line))
		b.WriteString("\n")
	}
	if author := strings.TrimSpace(q.Author); author != "" {
		b.WriteString("\n— ")
		b.WriteString(author)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderImage embeds target as a Markdown image.
func RenderImage(alt, target string) string {
	alt = strings.TrimSpace(alt)
	if alt == "" {
		alt = "Quote of the Day"
	}
	// Spaces in local paths would end the link target.
	target = strings.ReplaceAll(strings.TrimSpace(target), " ", "%20")
	return "![" + alt + "](" + target + ")\n"
}

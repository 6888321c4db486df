// Package render turns a lead into markdown and renders it for the
// terminal with glamour.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/leadboard/internal/models"
)

// Markdown describes a lead as a markdown document.
func Markdown(l *models.Lead) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", l.Name)
	fmt.Fprintf(&b, "**Stage:** %s  \n", l.Status.Title())
	fmt.Fprintf(&b, "**Priority:** %s  \n", l.Priority)
	fmt.Fprintf(&b, "**Estimate:** %s\n\n", l.Estimate())

	contact := [][2]string{
		{"Email", l.Email},
		{"Phone", l.Phone},
		{"Address", l.Address},
		{"Source", l.Source},
	}
	var rows []string
	for _, c := range contact {
		if c[1] != "" {
			rows = append(rows, fmt.Sprintf("- **%s:** %s", c[0], c[1]))
		}
	}
	if len(rows) > 0 {
		b.WriteString("## Contact\n\n")
		b.WriteString(strings.Join(rows, "\n"))
		b.WriteString("\n\n")
	}

	if l.Notes != "" {
		b.WriteString("## Notes\n\n")
		b.WriteString(l.Notes)
		b.WriteString("\n\n")
	}

	if !l.UpdatedAt.IsZero() {
		fmt.Fprintf(&b, "_Updated %s · id `%s`_\n", l.UpdatedAt.Format("Jan 2, 2006 15:04"), l.ID)
	} else {
		fmt.Fprintf(&b, "_id `%s`_\n", l.ID)
	}
	return b.String()
}

// Lead renders a lead for a terminal of the given width. style is a glamour
// standard style name; empty picks one from the terminal.
func Lead(l *models.Lead, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(Markdown(l))
	if err != nil {
		return "", fmt.Errorf("failed to render lead: %w", err)
	}
	return out, nil
}

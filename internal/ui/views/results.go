package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"starseek/internal/domain"
	"starseek/internal/ui/logic"
)

// RowOptions controls how one result row is drawn
type RowOptions struct {
	Query         string // committed query to highlight
	Selected      bool   // row is under the cursor
	ShowSecondary bool
	Width         int
}

// ResultRenderer handles rendering of result rows
type ResultRenderer struct {
	styles *Styles
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles) *ResultRenderer {
	return &ResultRenderer{styles: styles}
}

// RenderRow renders a record as a single line padded to opts.Width
func (r *ResultRenderer) RenderRow(record *domain.Record, opts RowOptions) string {
	if record == nil {
		return ""
	}

	marker := "  "
	if opts.Selected {
		marker = "› "
	}

	name := truncate(record.DisplayName(), max(opts.Width-len(marker), 1))
	var b strings.Builder
	b.WriteString(marker)
	b.WriteString(r.highlight(name, opts.Query))

	used := len([]rune(marker)) + lipgloss.Width(name)
	if opts.ShowSecondary && record.PrimaryName != "" && record.SecondaryKey != "" {
		secondary := truncate(record.SecondaryKey, opts.Width-used-3)
		if secondary != "" {
			b.WriteString(r.styles.Secondary.Render(" · " + secondary))
			used += 3 + lipgloss.Width(secondary)
		}
	}

	line := b.String()
	if opts.Width > used {
		line += strings.Repeat(" ", opts.Width-used)
	}
	if opts.Selected {
		return r.styles.SelectionBg.Render(line)
	}
	return line
}

// highlight marks the first match of query in s
func (r *ResultRenderer) highlight(s, query string) string {
	if query == "" {
		return s
	}
	start, end, ok := logic.CompilePattern(query).Locate(s)
	if !ok {
		return s
	}
	return s[:start] + r.styles.Highlight.Render(s[start:end]) + s[end:]
}

// truncate shortens s to width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

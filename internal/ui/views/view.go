package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"starseek/internal/domain"
)

// Screen positions of the result list inside the main container, used for mouse hit testing
const (
	ListTop  = 5 // padding, title, gap, input, count line
	ListLeft = 2
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Catalog status
	Loading       bool
	Sources       []string
	CatalogSize   int
	LoadError     string
	StatusMessage string

	// Query surface
	Input string // rendered text input

	// Result surface
	ResultsShown bool
	ResultCount  int
	Literal      bool
	Query        string           // committed query, for highlighting
	Rows         []*domain.Record // materialized window
	WindowStart  int              // buffer index of Rows[0]
	Cursor       int              // highlighted buffer index
	VisibleRows  int              // rows that fit the viewport

	ShowScrollbar bool
	ShowSecondary bool

	HelpModel help.Model
	Keys      help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles    *Styles
	rowRender *ResultRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:    styles,
		rowRender: NewResultRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	innerWidth := max(termWidth-4, 10) // Account for main container padding

	var lines []string
	lines = append(lines, r.renderTitle(state, innerWidth))
	lines = append(lines, "")
	lines = append(lines, r.styles.Prompt.Render("Search: ")+state.Input)

	if state.ResultsShown {
		lines = append(lines, r.renderCount(state))
		if list := r.renderList(state, innerWidth); list != "" {
			lines = append(lines, list)
		}
	}

	content := strings.Join(lines, "\n")

	// Pin help to the bottom
	if state.Keys != nil {
		helpText := r.styles.Help.Render(state.HelpModel.View(state.Keys))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		currentLines := strings.Count(content, "\n") + 1
		if padding := availableLines - currentLines - 1; padding > 0 {
			content += strings.Repeat("\n", padding)
		}
		content += "\n" + helpText
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content)
}

// renderTitle renders the logo with right-aligned catalog status
func (r *Renderer) renderTitle(state ViewState, width int) string {
	logo := r.styles.Title.Render("starseek")

	var status string
	switch {
	case state.StatusMessage != "":
		status = r.styles.StatusWarning.Render(state.StatusMessage)
	case state.Loading:
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		status = r.styles.StatusLoading.Render(fmt.Sprintf("%s Loading catalog…", spinner[frame]))
	case state.LoadError != "":
		status = r.styles.StatusError.Render("✗ " + state.LoadError)
	default:
		status = r.styles.StatusSuccess.Render(fmt.Sprintf("%s records", humanize.Comma(int64(state.CatalogSize))))
	}

	padding := width - lipgloss.Width(logo) - lipgloss.Width(status)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + status
}

// renderCount renders the "Found N results" line
func (r *Renderer) renderCount(state ViewState) string {
	text := fmt.Sprintf("Found %s results", humanize.Comma(int64(state.ResultCount)))
	if state.Literal {
		text += " (matched literally)"
	}
	return r.styles.Count.Render(text)
}

// renderList renders the visible part of the materialized window
func (r *Renderer) renderList(state ViewState, width int) string {
	visible := min(max(state.VisibleRows, 0), len(state.Rows))
	if visible == 0 {
		return ""
	}

	rowWidth := width
	if state.ShowScrollbar {
		rowWidth -= 2
	}

	rows := make([]string, 0, visible)
	for i := 0; i < visible; i++ {
		index := state.WindowStart + i
		rows = append(rows, r.rowRender.RenderRow(state.Rows[i], RowOptions{
			Query:         state.Query,
			Selected:      index == state.Cursor,
			ShowSecondary: state.ShowSecondary,
			Width:         rowWidth,
		}))
	}
	list := strings.Join(rows, "\n")

	if !state.ShowScrollbar {
		return list
	}
	bar := RenderScrollbar(r.styles, visible, state.ResultCount, state.VisibleRows, state.WindowStart)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, " ", bar)
}

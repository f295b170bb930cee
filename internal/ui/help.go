package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"starseek/internal/domain"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// detailPagerMsg contains the result of a record detail pager command
type detailPagerMsg struct {
	name string
	err  error
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	descStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// helpSections names the groups of KeyMap.FullHelp
var helpSections = []string{"Browsing results", "Query", "Other"}

// RenderHelpContent generates help content with colors for the pager
func RenderHelpContent(keys KeyMap) string {
	var help strings.Builder

	help.WriteString(titleStyle.Render("starseek Help"))
	help.WriteString("\n\n")
	help.WriteString(descStyle.Render("Type to search planet names and host stars. The query is a\ncase-insensitive regular expression; invalid expressions match literally."))
	help.WriteString("\n")

	for i, group := range keys.FullHelp() {
		help.WriteString("\n")
		if i < len(helpSections) {
			help.WriteString(sectionStyle.Render(helpSections[i]))
			help.WriteString("\n")
		}
		for _, b := range group {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-8s", h.Key)), descStyle.Render(h.Desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(descStyle.Render("Mouse: wheel scrolls, click selects, click outside the list closes it."))
	return help.String()
}

// RenderRecordDetail lists a record's names and passthrough fields, sorted by key
func RenderRecordDetail(record *domain.Record) string {
	if record == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(record.DisplayName()))
	b.WriteString("\n")
	if record.SecondaryKey != "" && record.SecondaryKey != record.DisplayName() {
		b.WriteString(descStyle.Render("Host: " + record.SecondaryKey))
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(record.Fields))
	width := 0
	for k := range record.Fields {
		keys = append(keys, k)
		width = max(width, len(k))
	}
	sort.Strings(keys)

	if len(keys) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Fields"))
		b.WriteString("\n")
	}
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-*s", width, k)), descStyle.Render(fmt.Sprint(record.Fields[k]))))
	}
	return b.String()
}

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// ShowInPager shows content using ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

package ui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starseek/internal/config"
	"starseek/internal/domain"
	"starseek/internal/eventbus"
	"starseek/internal/ui/views"
)

func newTestModel(t *testing.T, n int) *Model {
	t.Helper()
	m := NewModel(nil, config.DefaultConfig())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	records := make([]domain.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, domain.Record{
			PrimaryName:  fmt.Sprintf("Planet-%03d", i),
			SecondaryKey: fmt.Sprintf("Star-%03d", i),
			Fields:       map[string]any{"pl_orbper": float64(i) + 0.5},
		})
	}
	m.Update(EventMsg{Event: eventbus.CatalogLoadedEvent{Catalog: domain.NewCatalog(records)}})
	return m
}

func typeText(m *Model, text string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range text {
		_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return cmd
}

// settle delivers the debounce timer for the latest input
func settle(m *Model) {
	m.Update(debounceMsg{id: m.coordinator.Query.LastID()})
}

func TestTypingSchedulesDebounce(t *testing.T) {
	m := newTestModel(t, 20)

	cmd := typeText(m, "planet")

	assert.NotNil(t, cmd)
	assert.Empty(t, m.pending, "scheduled timers are handed to the runtime")
	assert.False(t, m.state.ResultsShown, "nothing is searched before the quiet period")
}

func TestDebounceShowsResults(t *testing.T) {
	m := newTestModel(t, 20)
	typeText(m, "planet-01")

	settle(m)

	assert.True(t, m.state.ResultsShown)
	assert.Equal(t, 10, m.state.ResultCount)
	require.Len(t, m.state.Rows, 10)
	assert.Equal(t, "Planet-010", m.state.Rows[0].PrimaryName)
	assert.Contains(t, m.View(), "Found 10 results")
}

func TestStaleDebounceIsIgnored(t *testing.T) {
	m := newTestModel(t, 20)
	typeText(m, "p")
	first := m.coordinator.Query.LastID()
	typeText(m, "lanet-00")

	m.Update(debounceMsg{id: first})

	assert.False(t, m.state.ResultsShown)
}

func TestClickSelectsRow(t *testing.T) {
	m := newTestModel(t, 20)
	typeText(m, "planet")
	settle(m)

	m.Update(tea.MouseMsg{X: 6, Y: views.ListTop + 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})

	assert.False(t, m.state.ResultsShown)
	assert.Equal(t, "Planet-002", m.inputHandler.GetTextInput().Value())
	assert.Equal(t, 20, m.coordinator.Search.Len())
}

func TestClickOutsideDismisses(t *testing.T) {
	m := newTestModel(t, 20)
	typeText(m, "planet")
	settle(m)

	m.Update(tea.MouseMsg{X: 6, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})

	assert.False(t, m.state.ResultsShown)
	assert.Equal(t, "planet", m.inputHandler.GetTextInput().Value())
}

func TestWheelScrolls(t *testing.T) {
	m := newTestModel(t, 20)
	typeText(m, "planet")
	settle(m)

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})

	assert.Equal(t, 2, m.state.WindowStart)
	assert.Equal(t, "Planet-002", m.state.Rows[0].PrimaryName)
}

func TestKeyboardSelection(t *testing.T) {
	m := newTestModel(t, 20)
	typeText(m, "planet")
	settle(m)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.state.ResultsShown)
	assert.Equal(t, "Planet-001", m.inputHandler.GetTextInput().Value())
}

func TestEscDismisses(t *testing.T) {
	m := newTestModel(t, 20)
	typeText(m, "planet")
	settle(m)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.state.ResultsShown)
	assert.Equal(t, 20, m.state.ResultCount)
}

func TestClearCommitsEmptyQuery(t *testing.T) {
	m := newTestModel(t, 20)
	typeText(m, "planet")
	settle(m)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.NotNil(t, cmd)
	settle(m)

	assert.False(t, m.state.ResultsShown)
	assert.Equal(t, "", m.inputHandler.GetTextInput().Value())
}

func TestSmallTerminalShrinksViewport(t *testing.T) {
	m := newTestModel(t, 20)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 11})

	assert.Equal(t, 120, m.coordinator.Navigation.Layout().ViewportHeight)
}

func TestLoadFailureShowsEmptyResults(t *testing.T) {
	m := NewModel(nil, config.DefaultConfig())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(EventMsg{Event: eventbus.CatalogLoadFailedEvent{Err: fmt.Errorf("open star-index.json: no such file")}})

	typeText(m, "kepler")
	settle(m)

	assert.True(t, m.state.ResultsShown)
	assert.Equal(t, 0, m.state.ResultCount)
	view := m.View()
	assert.Contains(t, view, "Found 0 results")
	assert.Contains(t, view, "no such file")
}

func TestPagersNeedProgram(t *testing.T) {
	m := newTestModel(t, 5)
	typeText(m, "planet")
	settle(m)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Nil(t, cmd)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.Nil(t, cmd)
}

func TestRenderRecordDetail(t *testing.T) {
	out := RenderRecordDetail(&domain.Record{
		PrimaryName:  "Kepler-22 b",
		SecondaryKey: "Kepler-22",
		Fields:       map[string]any{"pl_orbper": 289.86, "disc_year": 2011},
	})

	assert.Contains(t, out, "Kepler-22 b")
	assert.Contains(t, out, "Host: Kepler-22")
	assert.Less(t, indexOf(out, "disc_year"), indexOf(out, "pl_orbper"))
	assert.Equal(t, "", RenderRecordDetail(nil))
}

func TestRenderHelpContentListsBindings(t *testing.T) {
	out := RenderHelpContent(DefaultKeyMap())
	for _, want := range []string{"ctrl+u", "f1", "esc", "pgdn"} {
		assert.Contains(t, out, want)
	}
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

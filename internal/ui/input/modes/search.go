package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"starseek/internal/ui/input/types"
)

// SearchMode edits the query and drives the result list
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()
	switch key {
	case "up", "down", "pgup", "pgdown":
		return []types.Action{types.NavigateAction{Direction: direction(key)}}, true
	case "ctrl+home", "ctrl+end":
		return []types.Action{types.NavigateAction{Direction: direction(key)}}, true
	case "home", "end":
		// Move the caret unless results are shown
		if ctx.ResultsShown() {
			return []types.Action{types.NavigateAction{Direction: direction(key)}}, true
		}
		return nil, false
	case "enter":
		if ctx.ResultsShown() && ctx.ResultCount() > 0 {
			return []types.Action{types.SelectAction{Index: -1}}, true
		}
		return nil, true
	case "esc":
		return []types.Action{types.DismissAction{}}, true
	case "f1":
		return []types.Action{types.ShowHelpAction{}}, true
	case "ctrl+d":
		if ctx.ResultsShown() && ctx.ResultCount() > 0 {
			return []types.Action{types.ShowDetailAction{}}, true
		}
		return nil, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}

func direction(key string) string {
	switch key {
	case "pgup":
		return "pageup"
	case "pgdown":
		return "pagedown"
	case "home", "ctrl+home":
		return "home"
	case "end", "ctrl+end":
		return "end"
	}
	return key
}

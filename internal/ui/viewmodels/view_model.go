package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"starseek/internal/config"
	"starseek/internal/ui/coordinator"
	"starseek/internal/ui/state"
	"starseek/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state       *state.AppState
	config      *config.Config
	coordinator *coordinator.Coordinator
	textInput   *textinput.Model
	width       int
	height      int
	help        help.Model
	keys        help.KeyMap
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, c *coordinator.Coordinator, textInput *textinput.Model) *ViewModel {
	return &ViewModel{
		state:       appState,
		config:      cfg,
		coordinator: c,
		textInput:   textInput,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetHelp sets the help model and the bindings it shows
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.help.Width = vm.width
	vm.keys = keys
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	input := ""
	if vm.textInput != nil {
		input = vm.textInput.View()
	}

	return views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Loading:       vm.state.Loading,
		Sources:       vm.state.Sources,
		CatalogSize:   vm.state.CatalogSize,
		LoadError:     vm.state.LoadError,
		StatusMessage: vm.state.StatusMessage,
		Input:         input,
		ResultsShown:  vm.state.ResultsShown,
		ResultCount:   vm.state.ResultCount,
		Literal:       vm.coordinator.Search.IsLiteral(),
		Query:         vm.coordinator.Search.Query(),
		Rows:          vm.state.Rows,
		WindowStart:   vm.state.WindowStart,
		Cursor:        vm.coordinator.Navigation.GetCursor(),
		VisibleRows:   vm.coordinator.Navigation.Layout().VisibleRows(),
		ShowScrollbar: vm.config.UISettings.ShowScrollbar,
		ShowSecondary: vm.config.UISettings.ShowSecondary,
		HelpModel:     vm.help,
		Keys:          vm.keys,
	}
}

package ui

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"starseek/internal/config"
	"starseek/internal/domain"
	"starseek/internal/eventbus"
	"starseek/internal/ui/coordinator"
	"starseek/internal/ui/handlers"
	"starseek/internal/ui/input"
	inputtypes "starseek/internal/ui/input/types"
	"starseek/internal/ui/logic"
	"starseek/internal/ui/services/events"
	"starseek/internal/ui/services/navigation"
	"starseek/internal/ui/state"
	"starseek/internal/ui/viewmodels"
	"starseek/internal/ui/views"
)

// Rows taken by everything except the result list: container padding,
// title, gap, input, count line, gap and footer help.
const chromeRows = 8

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        KeyMap
	inPagerMode bool // tracks if we're currently in pager mode
	announce    bool // print the ready marker on the first resize

	// Handlers
	coordinator  *coordinator.Coordinator // search engine
	renderer     *views.Renderer          // view renderer
	eventHandler *handlers.EventHandler   // event processing handler
	viewModel    *viewmodels.ViewModel    // view model for rendering
	inputHandler *input.Handler           // input handling
	pager        *PagerOps                // ov pager, set with the program

	// debounce timers scheduled while handling the current message
	pending []tea.Cmd

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	appState := state.NewAppState(cfg.Catalog.Sources)

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		help:         help.New(),
		keys:         DefaultKeyMap(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
	}

	m.coordinator = coordinator.NewCoordinator(events.NewSyncBus(), m, m, coordinator.Options{
		Layout:   LayoutFromConfig(cfg),
		Debounce: cfg.Layout.Debounce(),
	})

	m.eventHandler = handlers.NewEventHandler(appState, m.coordinator.Dispatch)

	m.viewModel = viewmodels.NewViewModel(appState, cfg, m.coordinator, m.inputHandler.GetTextInput())
	m.viewModel.SetHelp(m.help, m.keys)

	return m
}

// LayoutFromConfig converts the configured layout constants
func LayoutFromConfig(cfg *config.Config) logic.Layout {
	return logic.Layout{
		ItemHeight:     cfg.Layout.ItemHeight,
		ViewportHeight: cfg.Layout.ViewportHeight,
		RenderAhead:    cfg.Layout.RenderAhead,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// AnnounceReady makes the model print __READY__ once the terminal is set up.
// The end-to-end tests wait for it before sending keys.
func (m *Model) AnnounceReady() {
	m.announce = true
}

// Coordinator returns the search coordinator
func (m *Model) Coordinator() *coordinator.Coordinator {
	return m.coordinator
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.inputHandler.Init(), tick())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.updateViewportHeight()
		if m.announce {
			m.announce = false
			cmd = func() tea.Msg {
				fmt.Fprint(os.Stdout, "__READY__")
				return nil
			}
		}

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	default:
		cmd = m.handleNonKeyboardMsg(msg)
	}

	// Debounce timers the coordinator asked for while handling msg
	if len(m.pending) > 0 {
		cmd = tea.Batch(append([]tea.Cmd{cmd}, m.takePending()...)...)
	}
	return m, cmd
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.viewModel.BuildViewState())
}

// Renderer implementation: the coordinator draws through these.

// SetActive shows or hides the result surface
func (m *Model) SetActive(active bool) {
	m.state.ResultsShown = active
}

// SetResultCount records the match count
func (m *Model) SetResultCount(n int) {
	m.state.ResultCount = n
}

// SetContentExtent records the height of all results
func (m *Model) SetContentExtent(height int) {
	m.state.ContentExtent = height
}

// RenderSlice stores the materialized window
func (m *Model) RenderSlice(records []*domain.Record, start int) {
	m.state.Rows = records
	m.state.WindowStart = start
}

// SetQuery replaces the query text without triggering a search
func (m *Model) SetQuery(text string) {
	m.inputHandler.SetText(text)
}

// Schedule arms a debounce timer that reports back through Update
func (m *Model) Schedule(id uint64, delay time.Duration) {
	m.pending = append(m.pending, tea.Tick(delay, func(time.Time) tea.Msg {
		return debounceMsg{id: id}
	}))
}

func (m *Model) takePending() []tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return cmds
}

// handleKey routes a key through the input handler
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.inPagerMode {
		return nil
	}

	ctx := &input.ModelContext{Coordinator: m.coordinator}
	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		m.coordinator.Dispatch(coordinator.QueryInput{Raw: a.Text})

	case inputtypes.ClearTextAction:
		m.coordinator.Dispatch(coordinator.QueryInput{Raw: ""})

	case inputtypes.NavigateAction:
		m.coordinator.Dispatch(coordinator.Navigate{Direction: navigation.Direction(a.Direction)})

	case inputtypes.SelectAction:
		if a.Index < 0 {
			m.coordinator.Dispatch(coordinator.SelectCursor{})
		} else {
			m.coordinator.Dispatch(coordinator.ResultClick{Index: a.Index})
		}

	case inputtypes.DismissAction:
		m.coordinator.Dispatch(coordinator.Dismiss{})

	case inputtypes.ShowHelpAction:
		return m.fetchPager(RenderHelpContent(m.keys), func(err error) tea.Msg {
			return helpPagerMsg{err: err}
		})

	case inputtypes.ShowDetailAction:
		record := m.coordinator.CursorRecord()
		if record == nil {
			return nil
		}
		name := record.DisplayName()
		return m.fetchPager(RenderRecordDetail(record), func(err error) tea.Msg {
			return detailPagerMsg{name: name, err: err}
		})

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// handleMouse scrolls on the wheel, selects on a click inside the list and dismisses outside it
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if !m.coordinator.IsActive() || msg.Action != tea.MouseActionPress {
		return
	}

	itemHeight := m.coordinator.Navigation.Layout().ItemHeight
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.coordinator.Dispatch(coordinator.ScrollBy{Delta: -itemHeight})
	case tea.MouseButtonWheelDown:
		m.coordinator.Dispatch(coordinator.ScrollBy{Delta: itemHeight})
	case tea.MouseButtonLeft:
		row := msg.Y - views.ListTop
		visible := min(m.coordinator.Navigation.Layout().VisibleRows(), len(m.state.Rows))
		if row >= 0 && row < visible && msg.X >= views.ListLeft {
			m.coordinator.Dispatch(coordinator.ResultClick{Index: m.state.WindowStart + row})
			return
		}
		m.coordinator.Dispatch(coordinator.Dismiss{})
	}
}

// handleNonKeyboardMsg handles timers, domain events and pager results
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case debounceMsg:
		m.coordinator.Dispatch(coordinator.DebounceElapsed{ID: msg.id})

	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		if m.state.StatusMessage != "" {
			return tea.Batch(cmd, clearStatusAfter(3*time.Second))
		}
		return cmd

	case tickMsg:
		// Keep animating only while the spinner is shown
		if m.state.Loading {
			return tick()
		}

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Help pager failed: %v", msg.err)
		}

	case detailPagerMsg:
		if msg.err != nil {
			log.Printf("Detail pager failed for %s: %v", msg.name, msg.err)
			m.state.StatusMessage = "Could not open details for " + msg.name
			return clearStatusAfter(3 * time.Second)
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	case clearStatusMsg:
		m.state.StatusMessage = ""

	default:
		return m.inputHandler.Update(msg)
	}
	return nil
}

// fetchPager returns a command that shows content in the ov pager
func (m *Model) fetchPager(content string, done func(error) tea.Msg) tea.Cmd {
	if m.pager == nil {
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.ShowInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return done(err)
	}
}

// updateViewportHeight fits the configured viewport into the terminal
func (m *Model) updateViewportHeight() {
	layout := LayoutFromConfig(m.config)
	rows := max(m.height-chromeRows, 1)
	m.coordinator.Dispatch(coordinator.Resize{
		ViewportHeight: min(layout.ViewportHeight, rows*max(layout.ItemHeight, 1)),
	})
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

package coordinator

import (
	"log"
	"time"

	"starseek/internal/domain"
	"starseek/internal/ui/logic"
	"starseek/internal/ui/services/events"
	"starseek/internal/ui/services/navigation"
	"starseek/internal/ui/services/query"
	"starseek/internal/ui/services/search"
	"starseek/internal/ui/services/selection"
)

// Renderer receives the coordinator's output
type Renderer interface {
	SetActive(active bool)                           // show or hide the result surface
	SetResultCount(n int)                            // "Found n results"
	SetContentExtent(height int)                     // total height of all results
	RenderSlice(records []*domain.Record, start int) // rows for buffer indices [start, start+len)
	SetQuery(text string)                            // replace the query surface text
}

// Scheduler delivers DebounceElapsed{ID: id} back to Dispatch after delay
type Scheduler interface {
	Schedule(id uint64, delay time.Duration)
}

// Options configures the coordinator
type Options struct {
	Layout   logic.Layout
	Debounce time.Duration
}

// Coordinator manages all search services and their interactions.
// It is not safe for concurrent use; every event must arrive on one goroutine.
type Coordinator struct {
	// Services
	Query      *query.Service
	Search     *search.Service
	Navigation *navigation.Service
	Selection  *selection.Service

	// Dependencies
	bus       events.EventBus
	renderer  Renderer
	scheduler Scheduler

	active bool // result surface shown
}

// NewCoordinator creates a new coordinator with all services over an empty catalog
func NewCoordinator(bus events.EventBus, renderer Renderer, scheduler Scheduler, opts Options) *Coordinator {
	if bus == nil {
		bus = &events.NullBus{}
	}
	c := &Coordinator{
		Query:      query.NewService(bus, opts.Debounce),
		Search:     search.NewService(bus),
		Navigation: navigation.NewService(bus, opts.Layout),
		Selection:  selection.NewService(bus),
		bus:        bus,
		renderer:   renderer,
		scheduler:  scheduler,
	}

	c.wireServices()
	c.subscribeToEvents()

	return c
}

// wireServices connects services with their dependencies
func (c *Coordinator) wireServices() {
	c.Navigation.SetTotalFunction(c.Search.Len)
	c.Selection.SetLookupFunction(c.Search.At)
}

// subscribeToEvents sets up event handlers
func (c *Coordinator) subscribeToEvents() {
	c.bus.Subscribe("selection.ResultSelectedEvent", func(e interface{}) {
		if ev, ok := e.(selection.ResultSelectedEvent); ok {
			log.Printf("Selected result %d: %s", ev.Index, ev.Name)
		}
	})
}

// Dispatch handles one inbound event
func (c *Coordinator) Dispatch(ev Event) {
	switch ev := ev.(type) {
	case QueryInput:
		ticket := c.Query.Notify(ev.Raw)
		c.scheduler.Schedule(ticket.ID, ticket.Delay)

	case DebounceElapsed:
		if q, ok := c.Query.Elapsed(ev.ID); ok {
			c.commit(q)
		}

	case Scroll:
		c.Navigation.Scroll(ev.Offset)
		c.renderIfActive()

	case ScrollBy:
		c.Navigation.ScrollBy(ev.Delta)
		c.renderIfActive()

	case Navigate:
		if !c.active {
			return
		}
		c.Navigation.Navigate(ev.Direction)
		c.render()

	case ResultClick:
		c.selectResult(ev.Index)

	case SelectCursor:
		if c.active {
			c.selectResult(c.Navigation.GetCursor())
		}

	case Dismiss:
		if !c.active {
			return
		}
		c.Selection.Dismiss()
		c.setActive(false)

	case CatalogReady:
		c.replaceCatalog(ev.Catalog)

	case CatalogFailed:
		log.Printf("Catalog load failed, searching an empty catalog: %v", ev.Err)
		c.replaceCatalog(domain.EmptyCatalog())

	case Resize:
		layout := c.Navigation.Layout()
		layout.ViewportHeight = ev.ViewportHeight
		c.Navigation.SetLayout(layout)
		if c.active {
			c.renderer.SetContentExtent(c.Navigation.ContentExtent())
			c.render()
		}
	}
}

// IsActive reports whether the result surface is shown
func (c *Coordinator) IsActive() bool {
	return c.active
}

// CursorRecord returns the highlighted record while results are shown
func (c *Coordinator) CursorRecord() *domain.Record {
	if !c.active {
		return nil
	}
	return c.Search.At(c.Navigation.GetCursor())
}

// commit rebuilds the buffer for a committed query and redraws from the top
func (c *Coordinator) commit(q string) {
	c.Search.Recompute(q)
	if !c.Search.IsActive() {
		c.setActive(false)
		return
	}

	c.Navigation.Reset()
	c.setActive(true)
	c.renderer.SetResultCount(c.Search.Len())
	c.renderer.SetContentExtent(c.Navigation.ContentExtent())
	c.render()
}

func (c *Coordinator) selectResult(index int) {
	if !c.active {
		return
	}
	record, ok := c.Selection.Select(index)
	if !ok {
		return
	}

	name := record.DisplayName()
	c.Query.Set(name)
	c.renderer.SetQuery(name)
	c.setActive(false)
}

// replaceCatalog swaps the catalog and brings the buffer up to date with the committed query
func (c *Coordinator) replaceCatalog(catalog *domain.Catalog) {
	c.Search.SetCatalog(catalog)
	if c.active {
		c.commit(c.Search.Query())
		return
	}
	if c.Search.IsActive() {
		c.Search.Recompute(c.Search.Query())
	}
}

func (c *Coordinator) renderIfActive() {
	if c.active {
		c.render()
	}
}

// render draws the window for the stored offset from the committed buffer
func (c *Coordinator) render() {
	window := c.Navigation.Refresh()
	c.renderer.RenderSlice(c.Search.Slice(window), window.Start)
}

func (c *Coordinator) setActive(active bool) {
	c.active = active
	c.renderer.SetActive(active)
}

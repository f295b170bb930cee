package catalog

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"starseek/internal/domain"
	"starseek/internal/eventbus"
)

// LoaderService performs the one-time bulk load of the catalog
type LoaderService interface {
	// Load fetches and decodes every source, concatenating records in source order
	Load(ctx context.Context, sources []string) (*domain.Catalog, error)
	// StartLoad runs Load in the background and reports the outcome on the bus
	StartLoad(ctx context.Context, sources []string) error
	StopLoad()
}

// loaderService is the concrete implementation
type loaderService struct {
	bus        eventbus.EventBus
	opener     Opener
	fields     Fields
	mu         sync.Mutex
	isLoading  bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewLoaderService creates a loader that reads sources through opener
func NewLoaderService(bus eventbus.EventBus, opener Opener, fields Fields) LoaderService {
	if opener == nil {
		opener = NewDefaultOpener()
	}
	return &loaderService{
		bus:    bus,
		opener: opener,
		fields: fields,
	}
}

// StartLoad starts loading the catalog. Exactly one of CatalogLoadedEvent or
// CatalogLoadFailedEvent is published per call that returns nil.
func (ls *loaderService) StartLoad(ctx context.Context, sources []string) error {
	ls.mu.Lock()
	if ls.isLoading {
		ls.mu.Unlock()
		return fmt.Errorf("catalog load already in progress")
	}
	ls.isLoading = true

	loadCtx, cancel := context.WithCancel(ctx)
	ls.cancelFunc = cancel
	ls.mu.Unlock()

	ls.bus.Publish(eventbus.CatalogLoadStartedEvent{Sources: sources})

	ls.wg.Add(1)
	go func() {
		defer ls.wg.Done()
		defer func() {
			ls.mu.Lock()
			ls.isLoading = false
			ls.cancelFunc = nil
			ls.mu.Unlock()
			cancel()
		}()

		catalog, err := ls.Load(loadCtx, sources)
		if err != nil {
			log.Printf("Catalog load failed: %v", err)
			ls.bus.Publish(eventbus.CatalogLoadFailedEvent{Err: err})
			return
		}
		log.Printf("Catalog loaded: %d records", catalog.Len())
		ls.bus.Publish(eventbus.CatalogLoadedEvent{Catalog: catalog})
	}()

	return nil
}

// StopLoad cancels an in-flight load and waits for it to finish
func (ls *loaderService) StopLoad() {
	ls.mu.Lock()
	if ls.cancelFunc != nil {
		ls.cancelFunc()
	}
	ls.mu.Unlock()

	ls.wg.Wait()
}

// Load fetches all sources concurrently. Any failing source fails the whole load.
func (ls *loaderService) Load(ctx context.Context, sources []string) (*domain.Catalog, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: no sources configured", ErrNoRecords)
	}

	parts := make([][]domain.Record, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, source := range sources {
		g.Go(func() error {
			records, err := ls.loadSource(gctx, source)
			if err != nil {
				return fmt.Errorf("source %s: %w", source, err)
			}
			parts[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, part := range parts {
		total += len(part)
	}
	if total == 0 {
		return nil, ErrNoRecords
	}

	records := make([]domain.Record, 0, total)
	for _, part := range parts {
		records = append(records, part...)
	}
	return domain.NewCatalog(records), nil
}

func (ls *loaderService) loadSource(ctx context.Context, source string) ([]domain.Record, error) {
	format, compression, err := DetectFormat(source)
	if err != nil {
		return nil, err
	}

	rc, err := ls.opener.Open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	entries, err := DecodeEntries(rc, format, compression)
	if err != nil {
		return nil, err
	}

	records, skipped := ToRecords(entries, ls.fields)
	if skipped > 0 {
		log.Printf("Catalog source %s: skipped %d entries without %q or %q", source, skipped, ls.fields.Name, ls.fields.Key)
	}
	ls.bus.Publish(eventbus.SourceLoadedEvent{
		Source:  source,
		Records: len(records),
		Skipped: skipped,
	})
	return records, nil
}

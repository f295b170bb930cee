package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starseek/internal/eventbus"
)

// memoryOpener serves sources from memory
type memoryOpener map[string]string

func (m memoryOpener) Open(ctx context.Context, source string) (io.ReadCloser, error) {
	doc, ok := m[source]
	if !ok {
		return nil, fmt.Errorf("no such source: %s", source)
	}
	return io.NopCloser(bytes.NewReader([]byte(doc))), nil
}

var defaultFields = Fields{Name: "pl_name", Key: "hostname"}

func TestLoadConcatenatesSourcesInOrder(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	opener := memoryOpener{
		"a.json": `[{"pl_name": "Kepler-452b", "hostname": "Kepler-452"}]`,
		"b.csv":  "pl_name,hostname\n51 Pegasi b,51 Peg\nTRAPPIST-1e,TRAPPIST-1\n",
		"c.yaml": "- pl_name: HD 209458 b\n  hostname: HD 209458\n",
	}
	loader := NewLoaderService(bus, opener, defaultFields)

	catalog, err := loader.Load(context.Background(), []string{"a.json", "b.csv", "c.yaml"})
	require.NoError(t, err)
	require.Equal(t, 4, catalog.Len())

	names := []string{}
	for i := 0; i < catalog.Len(); i++ {
		names = append(names, catalog.At(i).PrimaryName)
	}
	assert.Equal(t, []string{"Kepler-452b", "51 Pegasi b", "TRAPPIST-1e", "HD 209458 b"}, names)
}

func TestLoadFailsWhenAnySourceFails(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	loader := NewLoaderService(bus, memoryOpener{
		"a.json": `[{"pl_name": "Kepler-452b"}]`,
	}, defaultFields)

	_, err := loader.Load(context.Background(), []string{"a.json", "missing.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.json")
}

func TestLoadRejectsEmptyCatalogs(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	loader := NewLoaderService(bus, memoryOpener{"empty.json": `[]`}, defaultFields)

	_, err := loader.Load(context.Background(), []string{"empty.json"})
	assert.True(t, errors.Is(err, ErrNoRecords))

	_, err = loader.Load(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrNoRecords))
}

func TestStartLoadPublishesLoaded(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	done := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventCatalogLoaded, func(e eventbus.DomainEvent) { done <- e })
	bus.Subscribe(eventbus.EventCatalogLoadFailed, func(e eventbus.DomainEvent) { done <- e })

	loader := NewLoaderService(bus, memoryOpener{
		"a.json": `[{"pl_name": "Kepler-452b", "hostname": "Kepler-452"}]`,
	}, defaultFields)
	require.NoError(t, loader.StartLoad(context.Background(), []string{"a.json"}))
	defer loader.StopLoad()

	select {
	case e := <-done:
		loaded, ok := e.(eventbus.CatalogLoadedEvent)
		require.True(t, ok, "expected CatalogLoadedEvent, got %T", e)
		assert.Equal(t, 1, loaded.Catalog.Len())
	case <-time.After(3 * time.Second):
		t.Fatal("no load outcome published")
	}
}

func TestStartLoadPublishesFailure(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	done := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventCatalogLoadFailed, func(e eventbus.DomainEvent) { done <- e })

	loader := NewLoaderService(bus, memoryOpener{}, defaultFields)
	require.NoError(t, loader.StartLoad(context.Background(), []string{"gone.json"}))
	defer loader.StopLoad()

	select {
	case e := <-done:
		failed := e.(eventbus.CatalogLoadFailedEvent)
		assert.Error(t, failed.Err)
	case <-time.After(3 * time.Second):
		t.Fatal("no failure published")
	}
}

func TestDefaultOpenerFileAndHTTP(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "star-index.json")
	require.NoError(t, os.WriteFile(path, []byte(planetsJSON), 0644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/star-index.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(planetsJSON))
	}))
	defer server.Close()

	bus := eventbus.New()
	defer bus.Close()
	loader := NewLoaderService(bus, NewDefaultOpener(), defaultFields)

	catalog, err := loader.Load(context.Background(), []string{path, server.URL + "/star-index.json"})
	require.NoError(t, err)
	assert.Equal(t, 4, catalog.Len())

	_, err = loader.Load(context.Background(), []string{server.URL + "/missing.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestDefaultOpenerUnsupportedScheme(t *testing.T) {
	_, err := NewDefaultOpener().Open(context.Background(), "ftp://example.org/star-index.json")
	assert.True(t, errors.Is(err, ErrUnsupportedSource))
}

func TestParseS3URL(t *testing.T) {
	bucket, key, err := ParseS3URL("s3://exo-data/catalogs/star-index.json.zst")
	require.NoError(t, err)
	assert.Equal(t, "exo-data", bucket)
	assert.Equal(t, "catalogs/star-index.json.zst", key)

	for _, bad := range []string{"s3://bucket", "s3:///key", "http://bucket/key"} {
		_, _, err := ParseS3URL(bad)
		assert.Error(t, err, bad)
	}
}

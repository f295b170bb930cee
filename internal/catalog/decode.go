package catalog

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"reflect"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format identifies how a catalog document is encoded
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
	FormatCBOR  Format = "cbor"
	FormatCSV   Format = "csv"
)

// Compression identifies the outer compression of a catalog document
type Compression string

const (
	CompressionNone Compression = ""
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	ErrUnsupportedSource = errors.New("unsupported catalog source")
	ErrNoRecords         = errors.New("catalog contains no records")
)

// cborDecMode decodes nested maps as map[string]any so entries look the same
// regardless of source format.
var cborDecMode cbor.DecMode

func init() {
	var err error
	cborDecMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("catalog: CBOR decoder initialization failed: " + err.Error())
	}
}

// DetectFormat derives the compression and document format from a source name.
// "planets.json.zst" is zstd-compressed JSON; query strings are ignored.
func DetectFormat(name string) (Format, Compression, error) {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	name = strings.ToLower(name)

	compression := CompressionNone
	switch path.Ext(name) {
	case ".gz", ".gzip":
		compression = CompressionGzip
	case ".zst", ".zstd":
		compression = CompressionZstd
	case ".lz4":
		compression = CompressionLZ4
	}
	if compression != CompressionNone {
		name = strings.TrimSuffix(name, path.Ext(name))
	}

	switch path.Ext(name) {
	case ".json":
		return FormatJSON, compression, nil
	case ".jsonc":
		return FormatJSONC, compression, nil
	case ".yaml", ".yml":
		return FormatYAML, compression, nil
	case ".cbor":
		return FormatCBOR, compression, nil
	case ".csv":
		return FormatCSV, compression, nil
	default:
		return "", compression, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// decompress wraps r according to the compression. The returned closer
// releases decoder resources, not the underlying reader.
func decompress(r io.Reader, compression Compression) (io.Reader, func(), error) {
	switch compression {
	case CompressionGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return gz, func() { gz.Close() }, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		return dec, dec.Close, nil
	case CompressionLZ4:
		return lz4.NewReader(r), func() {}, nil
	default:
		return r, func() {}, nil
	}
}

// DecodeEntries reads a whole catalog document into raw entries
func DecodeEntries(r io.Reader, format Format, compression Compression) ([]map[string]any, error) {
	plain, release, err := decompress(r, compression)
	if err != nil {
		return nil, err
	}
	defer release()

	data, err := io.ReadAll(plain)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var entries []map[string]any
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &entries)
	case FormatJSONC:
		err = json.Unmarshal(jsonc.ToJSON(data), &entries)
	case FormatYAML:
		err = yaml.Unmarshal(data, &entries)
	case FormatCBOR:
		err = cborDecMode.Unmarshal(data, &entries)
	case FormatCSV:
		entries, err = decodeCSV(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s catalog: %w", format, err)
	}
	return entries, nil
}

// decodeCSV treats the first row as the header
func decodeCSV(data []byte) ([]map[string]any, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	entries := make([]map[string]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		entry := make(map[string]any, len(header))
		for i, column := range header {
			if i < len(row) {
				entry[column] = row[i]
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

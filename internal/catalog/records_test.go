package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRecords(t *testing.T) {
	entries := []map[string]any{
		{"pl_name": "  Kepler-452b ", "hostname": "Kepler-452"},
		{"pl_name": "", "hostname": ""},
		{"other": "no names here"},
		{"hostname": "TRAPPIST-1"},
		{"pl_name": 42.0, "hostname": nil},
	}

	records, skipped := ToRecords(entries, Fields{Name: "pl_name", Key: "hostname"})

	assert.Equal(t, 2, skipped)
	require.Len(t, records, 3)
	assert.Equal(t, "Kepler-452b", records[0].PrimaryName)
	assert.Equal(t, "", records[1].PrimaryName)
	assert.Equal(t, "TRAPPIST-1", records[1].SecondaryKey)
	assert.Equal(t, "TRAPPIST-1", records[1].DisplayName())
	assert.Equal(t, "42", records[2].PrimaryName)
}

func TestToRecordsCustomFields(t *testing.T) {
	entries := []map[string]any{
		{"name": "Vega", "hip": "91262", "mag": 0.03},
	}

	records, skipped := ToRecords(entries, Fields{Name: "name", Key: "hip"})

	assert.Equal(t, 0, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, "Vega", records[0].PrimaryName)
	assert.Equal(t, "91262", records[0].SecondaryKey)
	assert.Equal(t, map[string]any{"mag": 0.03}, records[0].Fields)
}

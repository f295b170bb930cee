package catalog

import (
	"fmt"
	"strings"

	"starseek/internal/domain"
)

// Fields names the entry keys that become a record's primary name and secondary key
type Fields struct {
	Name string
	Key  string
}

// ToRecords converts raw entries into records, preserving order.
// Entries with neither a name nor a key cannot be matched and are skipped.
func ToRecords(entries []map[string]any, fields Fields) (records []domain.Record, skipped int) {
	records = make([]domain.Record, 0, len(entries))
	for _, entry := range entries {
		name := stringField(entry, fields.Name)
		key := stringField(entry, fields.Key)
		if name == "" && key == "" {
			skipped++
			continue
		}

		passthrough := make(map[string]any, len(entry))
		for k, v := range entry {
			if k == fields.Name || k == fields.Key {
				continue
			}
			passthrough[k] = v
		}

		records = append(records, domain.Record{
			PrimaryName:  name,
			SecondaryKey: key,
			Fields:       passthrough,
		})
	}
	return records, skipped
}

func stringField(entry map[string]any, field string) string {
	if field == "" {
		return ""
	}
	switch v := entry[field].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CatalogMetadata stores the full platform/genre name lists reported by the
// external catalog for a cached entry, serialized as a single jsonb column.
type CatalogMetadata struct {
	Platforms []string `json:"platforms,omitempty"`
	Genres    []string `json:"genres,omitempty"`
}

// Value marshals the metadata block for storage.
func (m CatalogMetadata) Value() (driver.Value, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("catalog metadata: marshal: %w", err)
	}
	return string(raw), nil
}

// Scan decodes a stored metadata block.
func (m *CatalogMetadata) Scan(value interface{}) error {
	if value == nil {
		*m = CatalogMetadata{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("catalog metadata: unsupported scan type %T", value)
	}

	if len(raw) == 0 {
		*m = CatalogMetadata{}
		return nil
	}
	return json.Unmarshal(raw, m)
}

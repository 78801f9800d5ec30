package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Metadata хранит произвольный JSON-объект (JSONB)
type Metadata map[string]interface{}

// Value реализует интерфейс driver.Valuer для сериализации Metadata в JSONB
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan реализует интерфейс sql.Scanner для десериализации JSONB в Metadata
func (m *Metadata) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = Metadata{}
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case map[string]interface{}:
		*m = Metadata(v)
		return nil
	default:
		return fmt.Errorf("metadata: unsupported scan type %T", value)
	}
}

// Clone returns a deep copy; nested maps and slices are not shared with the receiver.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return Metadata{}
	}

	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}

	return out
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return map[string]interface{}(Metadata(t).Clone())
	case Metadata:
		return t.Clone()
	case []interface{}:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	case []string:
		return append([]string(nil), t...)
	case []map[string]interface{}:
		out := make([]map[string]interface{}, len(t))
		for i := range t {
			out[i] = Metadata(t[i]).Clone()
		}
		return out
	default:
		return v
	}
}

// String returns the value stored under key when it is a string.
func (m Metadata) String(key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

package postgres

import "encoding/json"

// String slices (services, certifications, roles) are stored as jsonb
// columns. Marshal failures cannot happen for []string, so both helpers
// swallow them and fall back to the empty list.

func marshalStringList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}

	raw, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}

	return string(raw)
}

func unmarshalStringList(raw string) []string {
	if raw == "" || raw == "[]" {
		return nil
	}

	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}

	return values
}

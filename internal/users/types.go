package users

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// User is one raw entry from the endpoint. ID and Name are required; every
// other top-level field is kept verbatim in Fields.
type User struct {
	ID     string
	Name   string
	Fields map[string]json.RawMessage
}

// UnmarshalJSON accepts numeric or string identifiers and keeps unknown fields.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("user is null")
	}

	idRaw, ok := raw["id"]
	if !ok {
		return fmt.Errorf("user missing id")
	}
	id, err := parseID(idRaw)
	if err != nil {
		return err
	}

	nameRaw, ok := raw["name"]
	if !ok {
		return fmt.Errorf("user %s missing name", id)
	}
	var name string
	if err := json.Unmarshal(nameRaw, &name); err != nil {
		return fmt.Errorf("user %s name: %w", id, err)
	}

	delete(raw, "id")
	delete(raw, "name")

	u.ID = id
	u.Name = name
	u.Fields = raw
	return nil
}

// DecodeFields returns the pass-through fields as plain Go values. Numbers are
// kept as json.Number so their original text survives. Fields that fail to
// decode are skipped.
func (u User) DecodeFields() map[string]any {
	out := make(map[string]any, len(u.Fields))
	for name, raw := range u.Fields {
		v, err := decodeValue(raw)
		if err != nil {
			continue
		}
		out[name] = v
	}
	return out
}

func parseID(raw json.RawMessage) (string, error) {
	v, err := decodeValue(raw)
	if err != nil {
		return "", fmt.Errorf("user id: %w", err)
	}
	switch id := v.(type) {
	case json.Number:
		return id.String(), nil
	case string:
		if strings.TrimSpace(id) == "" {
			return "", fmt.Errorf("user id is empty")
		}
		return id, nil
	default:
		return "", fmt.Errorf("user id has unsupported type %T", v)
	}
}

func decodeValue(raw json.RawMessage) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var v any
	if err := decoder.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

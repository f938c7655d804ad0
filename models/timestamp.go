package models

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/araddon/dateparse"
)

// Timestamp accepts the several layouts the backend emits for datetimes
// (RFC 3339 with or without fractional seconds, offsets, or a bare date).
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := dateparse.ParseAny(raw)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// NormalizeDate turns user input such as "2024-03-05", "03/05/2024" or a full
// timestamp into the YYYY-MM-DD form the backend expects for date filters.
func NormalizeDate(input string) (string, error) {
	if input == "" {
		return "", nil
	}
	parsed, err := dateparse.ParseAny(input)
	if err != nil {
		return "", err
	}
	return parsed.Format("2006-01-02"), nil
}

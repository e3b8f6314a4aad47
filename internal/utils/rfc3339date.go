package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Форматы, которые встречаются в ответах API: RFC3339 и ISO без часового пояса.
var acceptedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

type RFC3339Date struct {
	time.Time
}

func (d RFC3339Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(time.RFC3339))
}

func (d *RFC3339Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			d.Time = t
			return nil
		}
	}

	return fmt.Errorf("unsupported date format %q", str)
}

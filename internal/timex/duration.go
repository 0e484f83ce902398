// Package timex holds small time helpers for configuration decoding.
package timex

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDuration = errors.New("invalid duration")

// Duration wraps time.Duration so JSON may carry either a Go duration string
// ("3s", "1m30s") or an integer number of nanoseconds.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDuration, err)
		}
		d.Duration = parsed
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidDuration, string(b))
}

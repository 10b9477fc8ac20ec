// Package dbtime carries a time-of-day scalar for TIME columns.
package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Tod is a wall-clock time of day. The date part is pinned to a canonical
// reference date (year 0, UTC) so values compare by time only.
type Tod struct{ time.Time }

// From builds a Tod from t, keeping HH:mm:ss and dropping date and zone.
func From(t time.Time) Tod {
	return Tod{
		Time: time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC),
	}
}

// Parse builds a Tod from "HH:mm" or "HH:mm:ss".
func Parse(s string) (Tod, error) {
	var tt Tod
	return tt, tt.parse(s)
}

// Scan accepts time.Time or string ("HH:MM[:SS]") from the driver.
func (t *Tod) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*t = From(x)
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("tod: unsupported Scan type %T", v)
	}
}

func (t *Tod) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 5 { // "HH:MM"
		s += ":00"
	}
	tt, err := time.Parse("15:04:05", s)
	if err != nil {
		return err
	}
	*t = From(tt)
	return nil
}

// Value sends "HH:MM:SS" so Postgres TIME understands it.
func (t Tod) Value() (driver.Value, error) {
	if t.Time.IsZero() {
		return "00:00:00", nil
	}
	return t.Format("15:04:05"), nil
}

func (t Tod) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format("15:04:05"))
}

func (t *Tod) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}

package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Fecha is a calendar date (no time of day). It marshals as "2006-01-02",
// which is what the polizas endpoints emit and accept.
type Fecha struct {
	time.Time
}

func NewFecha(t time.Time) Fecha {
	return Fecha{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + f.Format("2006-01-02") + `"`), nil
}

func (f *Fecha) UnmarshalJSON(data []byte) error {
	t, err := parseFlexible(data)
	if err != nil {
		return err
	}
	*f = Fecha{t}
	return nil
}

func (f Fecha) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return f.Time, nil
}

func (f *Fecha) Scan(value interface{}) error {
	return scanTime(value, &f.Time)
}

// FechaHora is a timestamp that tolerates the formats the front end sends:
// RFC 3339, ISO without zone, bare dates, and empty strings (a cleared date
// input arrives as "" and is stored as null).
type FechaHora struct {
	time.Time
}

func (f FechaHora) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + f.Format(time.RFC3339) + `"`), nil
}

func (f *FechaHora) UnmarshalJSON(data []byte) error {
	t, err := parseFlexible(data)
	if err != nil {
		return err
	}
	*f = FechaHora{t}
	return nil
}

func (f FechaHora) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return f.Time, nil
}

func (f *FechaHora) Scan(value interface{}) error {
	return scanTime(value, &f.Time)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseFlexible(data []byte) (time.Time, error) {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func scanTime(value interface{}, dst *time.Time) error {
	switch v := value.(type) {
	case nil:
		*dst = time.Time{}
	case time.Time:
		*dst = v
	case string:
		t, err := parseFlexible([]byte(v))
		if err != nil {
			return err
		}
		*dst = t
	case []byte:
		t, err := parseFlexible(v)
		if err != nil {
			return err
		}
		*dst = t
	default:
		return fmt.Errorf("cannot scan %T into time", value)
	}
	return nil
}

package entry

import (
	"encoding/json"
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp is a time.Time that round-trips through JSON as RFC3339.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

// Date is a calendar day. It round-trips through JSON as "2006-01-02" and
// compares on calendar fields, never elapsed time.
type Date struct {
	time.Time
}

func DateOf(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseDate(v string) (Date, error) {
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// SameMonth reports whether the date falls in the same calendar month and
// year as then.
func (d Date) SameMonth(then time.Time) bool {
	return d.Month() == then.Month() && d.Year() == then.Year()
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", d.Format(layoutISO))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var day string
	if err := json.Unmarshal(b, &day); err != nil {
		return err
	}
	if day == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(day)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(layoutISO)
}

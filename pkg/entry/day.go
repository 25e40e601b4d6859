package entry

import (
	"encoding/json"
	"fmt"
	"time"
)

// DayLayout is the wire format of a calendar date.
const DayLayout = "2006-01-02"

const (
	shortLayout = "Jan 2"
	longLayout  = "Jan 2, 2006"
)

// Day is a calendar date. It marshals as "YYYY-MM-DD".
type Day struct {
	time.Time
}

// Today returns the UTC calendar date of now.
func Today(now time.Time) Day {
	y, m, d := now.UTC().Date()
	return Day{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDay parses a "YYYY-MM-DD" string.
func ParseDay(v string) (Day, error) {
	t, err := time.Parse(DayLayout, v)
	if err != nil {
		return Day{}, err
	}
	return Day{Time: t}, nil
}

// MustDay is ParseDay for literals known to be valid.
func MustDay(v string) Day {
	d, err := ParseDay(v)
	if err != nil {
		panic(err)
	}
	return d
}

// Short renders the chart axis label, e.g. "Mar 4".
func (d Day) Short() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(shortLayout)
}

// Long renders the history label, e.g. "Mar 4, 2024".
func (d Day) Long() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(longLayout)
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DayLayout)
}

func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

func (d *Day) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDay(v)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

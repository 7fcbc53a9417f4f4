// Package date provides a calendar-day value used as the join key when
// combining fitness and finance records. Vendor payloads carry dates either
// as bare YYYY-MM-DD strings or full RFC 3339 timestamps; either way only
// the day matters here.
package date

import (
	"fmt"
	"strings"
	"time"
)

const Layout = "2006-01-02"

// Date is a calendar day in the form YYYY-MM-DD. The zero value is invalid.
// Being a string underneath, it is comparable and usable as a map key.
type Date string

func Parse(s string) (Date, error) {
	if t, err := time.Parse(Layout, s); err == nil {
		return FromTime(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

func FromTime(t time.Time) Date {
	return Date(t.Format(Layout))
}

func Today() Date {
	return FromTime(time.Now())
}

func (d Date) String() string { return string(d) }

func (d Date) IsZero() bool { return d == "" }

func (d Date) Time() time.Time {
	t, _ := time.Parse(Layout, string(d))
	return t
}

func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = ""
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + string(d) + `"`), nil
}

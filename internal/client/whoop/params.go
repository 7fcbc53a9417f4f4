package whoop

import (
	"net/url"

	"github.com/calery/whoopilot/internal/date"
)

// RangeParams bounds a collection fetch to [Start, End] calendar days.
// Either side may be zero to leave the range open.
type RangeParams struct {
	Start date.Date
	End   date.Date
}

func (p *RangeParams) values() url.Values {
	if p == nil {
		return nil
	}

	v := make(url.Values)

	if !p.Start.IsZero() {
		v.Set("start", p.Start.String())
	}
	if !p.End.IsZero() {
		v.Set("end", p.End.String())
	}

	return v
}

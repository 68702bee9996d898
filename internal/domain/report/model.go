package report

import (
	"errors"
	"time"
)

var (
	// ErrDuplicateRace reports a second generation attempt for a race
	// that already has a report.
	ErrDuplicateRace = errors.New("report already exists for race")
	// ErrMalformedResult reports a result line outside the
	// "P<rank>: <driver> (<team>)" shape.
	ErrMalformedResult = errors.New("malformed result line")
)

// Report is an immutable race summary derived from a stored strategy
// and the set of known teams. IDs are assigned by the store,
// monotonically from 1.
type Report struct {
	ID           int
	RaceID       int
	Summary      string
	TeamAnalysis map[string]string
	KeyIncidents []string
	GeneratedAt  time.Time
}

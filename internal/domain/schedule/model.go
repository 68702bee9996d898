package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrDuplicateID reports a caller-supplied schedule ID that is
	// already taken.
	ErrDuplicateID = errors.New("schedule id already exists")
	// ErrInvalidTimeRange reports a schedule whose start does not
	// strictly precede its end.
	ErrInvalidTimeRange = errors.New("start time must be before end time")
)

// Schedule is one engineer task slot. A zero ID asks the store to
// assign the next monotonic identifier. RaceID is optional; zero means
// the task is not tied to a race.
type Schedule struct {
	ID              int
	EngineerID      int
	TaskDescription string
	Date            string
	StartTime       string
	EndTime         string
	Location        string
	RaceID          int
}

var clockLayouts = []string{"15:04:05", "15:04"}

func parseClock(v string) (time.Time, error) {
	var lastErr error
	for _, layout := range clockLayouts {
		parsed, err := time.Parse(layout, v)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}

// ValidateTimeRange rejects unparseable clock values and any range
// where the start does not strictly precede the end. Equal start and
// end is invalid.
func ValidateTimeRange(start, end string) error {
	startAt, err := parseClock(start)
	if err != nil {
		return fmt.Errorf("%w: unparseable start time %q", ErrInvalidTimeRange, start)
	}

	endAt, err := parseClock(end)
	if err != nil {
		return fmt.Errorf("%w: unparseable end time %q", ErrInvalidTimeRange, end)
	}

	if !startAt.Before(endAt) {
		return fmt.Errorf("%w: %s >= %s", ErrInvalidTimeRange, start, end)
	}

	return nil
}

package schedule

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// TimeOfDay is a wall-clock time within a single day, minute resolution.
// Wire form is "15:04".
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes > 24*60 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: minutes}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return TimeOfDay{minutes: t.minutes + int(d.Minutes())}
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

// On anchors the time of day to a calendar date in date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.minutes/60, t.minutes%60, 0, 0, date.Location())
}

// Interval is a half-open [Start, End) range within one day.
type Interval struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewInterval(start, end TimeOfDay) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidTimeOfDay
	}
	return Interval{start: start, end: end}, nil
}

func (i Interval) Start() TimeOfDay { return i.start }
func (i Interval) End() TimeOfDay   { return i.end }

func (i Interval) Duration() time.Duration {
	return time.Duration(i.end.minutes-i.start.minutes) * time.Minute
}

// Overlaps reports half-open interval overlap: two intervals that merely
// touch at an endpoint do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.start.Before(other.end) && i.end.After(other.start)
}

// Contains reports whether other lies fully within i.
func (i Interval) Contains(other Interval) bool {
	return !other.start.Before(i.start) && !other.end.After(i.end)
}

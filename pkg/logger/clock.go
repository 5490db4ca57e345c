package logger

import (
	"fmt"
	"strconv"
	"time"
)

// Clock renders the timestamp portion of a log line. Implementations are
// immutable once constructed and safe for concurrent use.
type Clock interface {
	Render(now time.Time) string
}

type ClockKind int

const (
	// ClockMonotonic renders whole seconds elapsed since initialization.
	ClockMonotonic ClockKind = iota
	// ClockCalendar renders wall-clock UTC time shifted by a fixed hour offset.
	ClockCalendar
)

func (k ClockKind) String() string {
	switch k {
	case ClockMonotonic:
		return "monotonic"
	case ClockCalendar:
		return "calendar"
	default:
		return fmt.Sprintf("ClockKind(%d)", int(k))
	}
}

func ParseClockKind(s string) (ClockKind, error) {
	switch s {
	case "monotonic":
		return ClockMonotonic, nil
	case "calendar":
		return ClockCalendar, nil
	default:
		return 0, fmt.Errorf("%w %q (expected monotonic or calendar)", ErrInvalidClock, s)
	}
}

type monotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a Clock that renders the number of whole seconds
// elapsed since start. When start and now both carry a monotonic clock
// reading (as values from time.Now do), wall clock adjustments have no
// effect on the result.
func NewMonotonicClock(start time.Time) Clock {
	return monotonicClock{start: start}
}

func (c monotonicClock) Render(now time.Time) string {
	elapsed := now.Sub(c.start)
	if elapsed < 0 {
		elapsed = 0
	}
	return strconv.FormatInt(int64(elapsed/time.Second), 10)
}

// Template is a parsed calendar rendering pattern. It is built once and only
// read afterwards.
type Template struct {
	layout string
	zone   *time.Location
}

// CalendarLayout renders as YYYY-MM-DD HH:MM:SS.
const CalendarLayout = time.DateTime

const maxOffsetHours = 23

func NewTemplate(offsetHours int) (*Template, error) {
	if offsetHours < -maxOffsetHours || offsetHours > maxOffsetHours {
		return nil, fmt.Errorf("%w: %d hours is out of range [-%d, %d]",
			ErrInvalidTimezoneValue, offsetHours, maxOffsetHours, maxOffsetHours)
	}
	return &Template{
		layout: CalendarLayout,
		zone:   time.FixedZone(fmt.Sprintf("UTC%+d", offsetHours), offsetHours*60*60),
	}, nil
}

func (t *Template) Format(now time.Time) string {
	return now.UTC().In(t.zone).Format(t.layout)
}

type calendarClock struct {
	template *Template
}

// NewCalendarClock reads a signed hour offset from the given key and returns
// a Clock that renders UTC time shifted by that offset. The offset is a flat
// shift; daylight saving and named zones are not considered.
func NewCalendarClock(lookup LookupFunc, key string) (Clock, error) {
	value, ok := lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not set", ErrMissingTimezoneConfig, key)
	}
	hours, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidTimezoneValue, key, value)
	}
	tmpl, err := NewTemplate(hours)
	if err != nil {
		return nil, err
	}
	return calendarClock{template: tmpl}, nil
}

func (c calendarClock) Render(now time.Time) string {
	return c.template.Format(now)
}

package tick

import (
	"math"
	"time"

	"github.com/rodrigo-brito/ninjachart/model"
)

// Unit is the calendar granularity of a time tick.
type Unit int

const (
	Minute Unit = iota + 1
	Hour
	Day
	Week
	Month
	Year
)

// maxTimeTicks bounds the tick loop for pathological domains.
const maxTimeTicks = 10000

var unitNames = map[Unit]string{
	Minute: "minute",
	Hour:   "hour",
	Day:    "day",
	Week:   "week",
	Month:  "month",
	Year:   "year",
}

func (u Unit) String() string {
	return unitNames[u]
}

// MarshalText renders the unit name in JSON frames.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// Duration is the nominal length of the unit, used only to pick the step.
// Months and years are advanced with the calendar, never by this value.
func (u Unit) Duration() time.Duration {
	switch u {
	case Minute:
		return time.Minute
	case Hour:
		return time.Hour
	case Day:
		return 24 * time.Hour
	case Week:
		return 7 * 24 * time.Hour
	case Month:
		return 30 * 24 * time.Hour
	case Year:
		return 365 * 24 * time.Hour
	}
	return time.Millisecond
}

// Layout is the time format used for labels of the unit.
func (u Unit) Layout() string {
	switch u {
	case Minute, Hour:
		return "15:04"
	case Day, Week:
		return "Jan 02"
	case Month:
		return "Jan 2006"
	case Year:
		return "2006"
	}
	return time.RFC3339
}

// UnitFor picks the granularity for a domain span.
func UnitFor(span time.Duration) Unit {
	switch {
	case span < time.Hour:
		return Minute
	case span < 24*time.Hour:
		return Hour
	case span < 7*24*time.Hour:
		return Day
	case span < 30*24*time.Hour:
		return Week
	case span < 365*24*time.Hour:
		return Month
	}
	return Year
}

type timeOptions struct {
	location  *time.Location
	weekStart time.Weekday
}

// Option configures time tick planning.
type Option func(*timeOptions)

// WithLocation aligns boundaries (midnight, first of month) in the given location. Default UTC.
func WithLocation(location *time.Location) Option {
	return func(o *timeOptions) {
		if location != nil {
			o.location = location
		}
	}
}

// WithWeekStart sets the first day of a week. Default Sunday.
func WithWeekStart(day time.Weekday) Option {
	return func(o *timeOptions) {
		o.weekStart = day
	}
}

// Time returns calendar-aligned ticks inside [start, end].
func Time(start, end time.Time, count int, options ...Option) []Tick {
	opts := timeOptions{location: time.UTC, weekStart: time.Sunday}
	for _, option := range options {
		option(&opts)
	}
	if count <= 0 {
		count = 1
	}
	if end.Before(start) {
		start, end = end, start
	}
	start, end = start.In(opts.location), end.In(opts.location)

	span := end.Sub(start)
	unit := UnitFor(span)
	step := int(math.Max(1, math.Round(float64(span)/(float64(count)*float64(unit.Duration())))))

	origin := floor(start, unit, opts.weekStart)
	ticks := make([]Tick, 0, count+1)
	for i := 0; i < maxTimeTicks; i++ {
		t := advance(origin, unit, i*step)
		if t.After(end) {
			break
		}
		if t.Before(start) {
			continue
		}
		ticks = append(ticks, timeTick(t, unit))
	}

	if len(ticks) == 0 {
		ticks = append(ticks, timeTick(start, unit))
	}
	return ticks
}

func timeTick(t time.Time, unit Unit) Tick {
	return Tick{
		Value: model.Millis(t),
		Time:  t,
		Unit:  unit,
		Label: t.Format(unit.Layout()),
	}
}

// floor truncates t to the natural boundary of the unit in t's location.
func floor(t time.Time, unit Unit, weekStart time.Weekday) time.Time {
	year, month, day := t.Date()
	loc := t.Location()
	switch unit {
	case Minute:
		return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, loc)
	case Hour:
		return time.Date(year, month, day, t.Hour(), 0, 0, 0, loc)
	case Day:
		return time.Date(year, month, day, 0, 0, 0, 0, loc)
	case Week:
		offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
		return time.Date(year, month, day-offset, 0, 0, 0, 0, loc)
	case Month:
		return time.Date(year, month, 1, 0, 0, 0, 0, loc)
	case Year:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	}
	return t
}

// advance moves n units from an aligned origin. Days and longer use the calendar.
func advance(origin time.Time, unit Unit, n int) time.Time {
	switch unit {
	case Minute:
		return origin.Add(time.Duration(n) * time.Minute)
	case Hour:
		return origin.Add(time.Duration(n) * time.Hour)
	case Day:
		return origin.AddDate(0, 0, n)
	case Week:
		return origin.AddDate(0, 0, 7*n)
	case Month:
		return origin.AddDate(0, n, 0)
	case Year:
		return origin.AddDate(n, 0, 0)
	}
	return origin
}

package tickrange

import "time"

// Unit is the granularity of a tick range. It defines both how the endpoints
// are truncated and how far apart consecutive ticks are.
type Unit string

const (
	Millis  Unit = "millis"
	Seconds Unit = "seconds"
	Minutes Unit = "minutes"
	Hours   Unit = "hours"
	Days    Unit = "days"
)

// IsValidUnit returns true if u is a supported unit. Units coarser than a day
// (months, years) have no fixed duration and are not supported.
func IsValidUnit(u Unit) bool {
	switch u {
	case Millis, Seconds, Minutes, Hours, Days:
		return true
	default:
		return false
	}
}

// DefaultUnit returns the unit used when none is specified.
func DefaultUnit() Unit { return Hours }

// NormalizeUnit converts a raw string to a valid unit (or the default).
func NormalizeUnit(s string) Unit {
	if s == "" {
		return DefaultUnit()
	}
	u := Unit(s)
	if IsValidUnit(u) {
		return u
	}
	return DefaultUnit()
}

// Duration returns the fixed step size of one unit.
func (u Unit) Duration() time.Duration {
	switch u {
	case Millis:
		return time.Millisecond
	case Seconds:
		return time.Second
	case Minutes:
		return time.Minute
	case Days:
		return 24 * time.Hour
	default:
		return time.Hour
	}
}

// Truncate aligns t to the start of its unit, zeroing all finer-grained
// fields. A day is a fixed 24h step, so day truncation lands on UTC midnight;
// there is no calendar or zone arithmetic here.
func (u Unit) Truncate(t time.Time) time.Time {
	return t.Truncate(u.Duration())
}

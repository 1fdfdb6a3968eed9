package tickrange

import (
	"errors"
	"fmt"
	"time"
)

// now is the wall clock consulted when an endpoint is defaulted. A package
// variable so tests can pin it.
var now = time.Now

// ErrUnsupportedOperation is returned by every mutating method: a TickRange is
// immutable for its entire lifetime.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// Sequence is the read-only view of a tick range. Consumers that only need to
// enumerate or test membership should depend on this rather than on TickRange
// itself.
type Sequence interface {
	Size() int
	IsEmpty() bool
	Contains(t time.Time) bool
	ContainsAll(ts []time.Time) bool
	Iter() *Iterator
	Ticks() []time.Time
	String() string
}

// TickRange represents each tick in a time range, where the frequency of the
// tick is given by the unit. Ticks run from the from endpoint up to and
// including the to endpoint, one unit apart. The range is built from truncated
// versions of its inputs: 2016-02-14T03:17:27Z to 2016-02-14T05:43:17Z with an
// hour unit gives {03:00, 04:00, 05:00}.
//
// The zero TickRange is not meaningful; build one with New.
type TickRange struct {
	from time.Time
	to   time.Time
	unit Unit
}

var _ Sequence = TickRange{}

// New constructs a range counting across the given unit. Arguments supplied in
// the wrong order still produce the expected range. A zero from defaults to
// one unit before now, a zero to defaults to now, and an empty or unsupported
// unit defaults to Hours. Both endpoints are truncated to the unit. New never
// fails; every input combination yields a valid range with from <= to.
func New(from, to time.Time, unit Unit) TickRange {
	u := NormalizeUnit(string(unit))

	trialFrom := from
	if trialFrom.IsZero() {
		trialFrom = now().Add(-u.Duration())
	}
	trialTo := to
	if trialTo.IsZero() {
		trialTo = now()
	}
	trialFrom = u.Truncate(trialFrom)
	trialTo = u.Truncate(trialTo)

	if trialTo.Before(trialFrom) {
		trialFrom, trialTo = trialTo, trialFrom
	}

	return TickRange{from: trialFrom, to: trialTo, unit: u}
}

// From returns the normalized start of the range.
func (r TickRange) From() time.Time { return r.from }

// To returns the normalized end of the range.
func (r TickRange) To() time.Time { return r.to }

// Unit returns the tick unit in use.
func (r TickRange) Unit() Unit { return r.unit }

// Size returns the number of ticks in the range: the count of whole elapsed
// units between the endpoints, plus one because both endpoints are included.
// Note this is not completely in agreement with IsEmpty: a range where from
// and to coincide always has at least one tick but reports as empty.
func (r TickRange) Size() int {
	return int(r.to.Sub(r.from)/r.unit.Duration()) + 1
}

// IsEmpty reports whether the range spans zero elapsed time. See the note on
// Size for the deliberate divergence between the two.
func (r TickRange) IsEmpty() bool {
	return !r.from.Before(r.to)
}

// Contains reports whether t falls inside the range, endpoints included. The
// zero time is never contained, since both endpoints are real instants.
//
// TODO: revisit whether membership should require t to land exactly on a tick
// boundary; today any instant strictly inside the range matches, aligned to
// the unit or not.
func (r TickRange) Contains(t time.Time) bool {
	return t.Equal(r.from) || t.Equal(r.to) || (t.After(r.from) && t.Before(r.to))
}

// ContainsAll reports whether every element of ts falls inside the range. A
// nil slice automatically returns false; an empty non-nil slice is vacuously
// true.
func (r TickRange) ContainsAll(ts []time.Time) bool {
	if ts == nil {
		return false
	}
	for _, t := range ts {
		if !r.Contains(t) {
			return false
		}
	}
	return true
}

// Equal reports whether two ranges have the same endpoints and unit. Endpoint
// comparison uses time.Time.Equal, so the same instant in different locations
// compares equal.
func (r TickRange) Equal(other TickRange) bool {
	return r.unit == other.unit && r.from.Equal(other.from) && r.to.Equal(other.to)
}

const hashPrime = 31

// Hash returns a deterministic hash over the endpoints and unit. Ranges that
// compare Equal always hash identically.
func (r TickRange) Hash() uint64 {
	h := uint64(1)
	h = h*hashPrime + uint64(r.from.UnixNano())
	h = h*hashPrime + hashString(string(r.unit))
	h = h*hashPrime + uint64(r.to.UnixNano())
	return h
}

func hashString(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*hashPrime + uint64(s[i])
	}
	return h
}

// String renders the range with both endpoints and the unit.
func (r TickRange) String() string {
	return fmt.Sprintf("TickRange[from=%s, to=%s, unit=%s]",
		r.from.Format(time.RFC3339), r.to.Format(time.RFC3339), r.unit)
}

// Add always fails: the range cannot be modified.
func (r TickRange) Add(t time.Time) error {
	return fmt.Errorf("add: %w", ErrUnsupportedOperation)
}

// AddAll always fails: the range cannot be modified.
func (r TickRange) AddAll(ts []time.Time) error {
	return fmt.Errorf("add all: %w", ErrUnsupportedOperation)
}

// Remove always fails: the range cannot be modified.
func (r TickRange) Remove(t time.Time) error {
	return fmt.Errorf("remove: %w", ErrUnsupportedOperation)
}

// RemoveAll always fails: the range cannot be modified.
func (r TickRange) RemoveAll(ts []time.Time) error {
	return fmt.Errorf("remove all: %w", ErrUnsupportedOperation)
}

// RetainAll always fails: the range cannot be modified.
func (r TickRange) RetainAll(ts []time.Time) error {
	return fmt.Errorf("retain all: %w", ErrUnsupportedOperation)
}

// Clear always fails: the range cannot be modified.
func (r TickRange) Clear() error {
	return fmt.Errorf("clear: %w", ErrUnsupportedOperation)
}

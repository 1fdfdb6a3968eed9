package tickrange

import "time"

// Iterator walks the ticks of a range from oldest to newest. Each call to
// TickRange.Iter returns an independent iterator with its own cursor, so
// repeated or concurrent traversals never interfere and consuming an iterator
// leaves the parent range untouched.
type Iterator struct {
	current time.Time
	end     time.Time
	step    time.Duration
	done    bool
}

// Iter returns a fresh iterator positioned at the start of the range. Even a
// degenerate range (from == to) yields one tick, the shared endpoint.
func (r TickRange) Iter() *Iterator {
	return &Iterator{current: r.from, end: r.to, step: r.unit.Duration()}
}

// Next returns the next tick and true, or the zero time and false once the
// sequence is exhausted. The sequence is from, from+1u, ..., to; no tick past
// to is ever emitted.
func (it *Iterator) Next() (time.Time, bool) {
	if it.done {
		return time.Time{}, false
	}
	t := it.current
	it.current = it.current.Add(it.step)
	if it.current.After(it.end) {
		it.done = true
	}
	return t, true
}

// Ticks collects the whole sequence eagerly. The result length always equals
// Size.
func (r TickRange) Ticks() []time.Time {
	out := make([]time.Time, 0, r.Size())
	it := r.Iter()
	for {
		t, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, t)
	}
}

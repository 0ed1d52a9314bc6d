package temporal

// TimeOfDay is a Duration reduced modulo one day (1440 minutes), ordered
// lexicographically on minutes. Zero is midnight.
type TimeOfDay int

// NewTimeOfDay wraps an arbitrary minute count into [0,1440).
func NewTimeOfDay(minutes int) TimeOfDay {
	m := minutes % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return TimeOfDay(m)
}

// Add returns t shifted by d minutes, wrapped modulo 1440.
func (t TimeOfDay) Add(d Duration) TimeOfDay { return NewTimeOfDay(int(t) + int(d)) }

// Sub returns the wrapped minute difference between t and o, always in
// [0,1440) — the time that must elapse from o to reach t going forward.
func (t TimeOfDay) Sub(o TimeOfDay) Duration { return Duration(NewTimeOfDay(int(t) - int(o))) }

// Before reports whether t is lexicographically before o.
func (t TimeOfDay) Before(o TimeOfDay) bool { return t < o }

// Weekday is an ordinal in [0,7): bit 0 = Sunday, bit 1 = Monday, ...,
// bit 6 = Saturday, per the documented working-day bit ordering.
type Weekday int

// Add shifts w by n days (positive or negative), modularly.
func (w Weekday) Add(n int) Weekday {
	v := (int(w) + n) % 7
	if v < 0 {
		v += 7
	}
	return Weekday(v)
}

// WorkingDaysMask is a 7-bit value; bit k set iff a route departs (or, for
// an arrival-days mask, arrives) on weekday k.
type WorkingDaysMask uint8

const workingDaysBits = 0x7f

// NewWorkingDaysMask builds a mask from a list of weekday ordinals.
func NewWorkingDaysMask(days []Weekday) WorkingDaysMask {
	var m WorkingDaysMask
	for _, d := range days {
		m |= 1 << uint(d)
	}
	return m & workingDaysBits
}

// Test reports whether bit w is set.
func (m WorkingDaysMask) Test(w Weekday) bool {
	return m&(1<<uint(w))&workingDaysBits != 0
}

// Empty reports whether no bit is set (an unreachable route).
func (m WorkingDaysMask) Empty() bool { return m&workingDaysBits == 0 }

// Popcount returns the number of set bits, used by the invariant that an
// arrival-days mask has the same population count as its departure mask.
func (m WorkingDaysMask) Popcount() int {
	v := uint8(m) & workingDaysBits
	n := 0
	for v != 0 {
		n += int(v & 1)
		v >>= 1
	}
	return n
}

// RotateRight rotates the low 7 bits of m right by k positions (k reduced
// modulo 7), the operation used to derive an arrival-days mask from a
// departure-days mask.
func (m WorkingDaysMask) RotateRight(k int) WorkingDaysMask {
	k = ((k % 7) + 7) % 7
	v := uint8(m) & workingDaysBits
	if k == 0 {
		return WorkingDaysMask(v)
	}
	return WorkingDaysMask(((v >> uint(k)) | (v << uint(7-k))) & workingDaysBits)
}

// NextForward returns the smallest Δ in [0,7) such that bit (start+Δ) mod 7
// is set, scanning the mask in the forward (ascending weekday) direction.
// ok is false if the mask has no set bits at all.
func (m WorkingDaysMask) NextForward(start Weekday) (delta int, ok bool) {
	for d := 0; d < 7; d++ {
		if m.Test(start.Add(d)) {
			return d, true
		}
	}
	return 0, false
}

// NextReverse returns the smallest Δ in [0,7) such that bit (start-Δ) mod 7
// is set, scanning backward (descending weekday) — the mirror operation
// NextForward's reverse-mode counterpart uses against an arrival-days mask.
func (m WorkingDaysMask) NextReverse(start Weekday) (delta int, ok bool) {
	for d := 0; d < 7; d++ {
		if m.Test(start.Add(-d)) {
			return d, true
		}
	}
	return 0, false
}

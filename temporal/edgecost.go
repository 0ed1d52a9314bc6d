package temporal

// EdgeCost is the per-edge temporal model §4.2 of the routing design
// describes: a loading offset, a scheduled departure time-of-day, a
// duration, an unloading offset, the derived scheduled arrival
// time-of-day, and the departure/arrival working-day masks. A transient
// EdgeCost represents a zero-cost custody hop between co-located
// facilities and carries none of the scheduling fields.
type EdgeCost struct {
	Transient     bool
	Loading       Duration
	Departure     TimeOfDay
	Duration      Duration
	Unloading     Duration
	Arrival       TimeOfDay
	DepartureMask WorkingDaysMask
	ArrivalMask   WorkingDaysMask
}

// Transient returns the identity EdgeCost used to link co-located
// facilities in a custody chain: its weight function is a no-op in both
// traversal modes.
func Transient() EdgeCost {
	return EdgeCost{Transient: true}
}

// NewEdgeCost builds a scheduled EdgeCost from its construction
// parameters, deriving Arrival and ArrivalMask per §4.2:
//
//  1. arrival = (departure + duration) mod 1440
//  2. departureMask has bit d set for each d in departureDays
//  3. arrivalMask = rotate_right(departureMask, k), where
//     k = (whole days in duration + 1 if arrival wrapped past midnight) mod 7
//
// loading, duration, and unloading must be non-negative, and
// departureDays must set at least one bit — an edge with none would be
// permanently unreachable, which NewEdgeCost rejects rather than install.
func NewEdgeCost(loading Duration, departure TimeOfDay, duration, unloading Duration, departureDays []Weekday) (EdgeCost, error) {
	if loading < 0 || duration < 0 || unloading < 0 {
		return EdgeCost{}, ErrNonPositiveDuration
	}
	mask := NewWorkingDaysMask(departureDays)
	if mask.Empty() {
		return EdgeCost{}, ErrEmptyWorkingDays
	}
	arrival := departure.Add(duration)
	durationDays := int(duration) / minutesPerDay
	if arrival.Before(departure) {
		durationDays++
	}
	arrivalMask := mask.RotateRight(durationDays % 7)

	return EdgeCost{
		Loading:       loading,
		Departure:     departure,
		Duration:      duration,
		Unloading:     unloading,
		Arrival:       arrival,
		DepartureMask: mask,
		ArrivalMask:   arrivalMask,
	}, nil
}

// WeightForward applies the edge's forward-mode weight closure to an
// arrival instant t at the edge's source, returning the arrival instant at
// the edge's target. ok is false if no working day exists for the edge
// from the resulting weekday (an unreachable route from that start).
//
// Algorithm (§4.2): load, then find the next working departure on or after
// the loaded instant, then run the edge's duration and unload.
func (c EdgeCost) WeightForward(t Instant) (Instant, bool) {
	if c.Transient {
		return t, true
	}
	loaded := t.Add(c.Loading)
	tod := loaded.TimeOfDay()

	base := 0
	if !tod.Before(c.Departure) && tod != c.Departure {
		base = 1
	}
	startWeekday := loaded.Weekday().Add(base)
	delta, ok := c.DepartureMask.NextForward(startWeekday)
	if !ok {
		return 0, false
	}
	idle := Duration((base+delta)*minutesPerDay) + Duration(int(c.Departure)-int(tod))

	return loaded.Add(idle).Add(c.Duration).Add(c.Unloading), true
}

// WeightReverse applies the edge's reverse-mode weight closure to a
// required arrival instant t at the edge's target, returning the latest
// instant the edge's source must be departed (equivalently, arrived at,
// for the purposes of the reverse Dijkstra relaxation) to still make t.
//
// This is the mirror of WeightForward: unload backward, find the latest
// working arrival on or before the unloaded instant, then undo the edge's
// duration and load.
func (c EdgeCost) WeightReverse(t Instant) (Instant, bool) {
	if c.Transient {
		return t, true
	}
	unloaded := t.Add(-c.Unloading)
	tod := unloaded.TimeOfDay()

	base := 0
	if c.Arrival.Before(tod) || tod == c.Arrival {
		base = 0
	} else {
		base = 1
	}
	startWeekday := unloaded.Weekday().Add(-base)
	delta, ok := c.ArrivalMask.NextReverse(startWeekday)
	if !ok {
		return 0, false
	}
	idle := Duration((base+delta)*minutesPerDay) + Duration(int(tod)-int(c.Arrival))

	return unloaded.Add(-idle).Add(-c.Duration).Add(-c.Loading), true
}

// Implements basic-schedule derivation for OSP: the
// trip-stripped skeleton of a working vehicle's schedule from which size-1
// trips are (re-)enumerated.

package sim

// BasicSchedules returns the set of basic schedules for v from which
// size-1 trips are enumerated. reoptimize controls whether a Working
// vehicle's Picking orders may be released and reassigned;
// it is ignored for Idle/Rebalancing vehicles, whose basic schedule set is
// their current schedule verbatim, preserving rebalancing intent. When
// that verbatim schedule carries a Reposition leg, the empty schedule is
// also offered as a basic: a real trip should be free to discard a
// speculative reposition rather than detour around it.
//
// For a reoptimizing Working vehicle, the committed dropoffs-only ordering
// is always included as a basic schedule regardless of whether it still
// validates, alongside every other dropoff ordering that does validate:
// a vehicle already committed to its current sequence cannot be made to
// vanish from the candidate pool just because a later deadline tightened.
func BasicSchedules(v *Vehicle, orders []Order, router Router, reoptimize bool, systemTimeMS int64) [][]Waypoint {
	if v.Status != Working || !reoptimize {
		basics := [][]Waypoint{cloneSchedule(v.Schedule)}
		for _, wp := range v.Schedule {
			if wp.Op == Reposition {
				basics = append(basics, nil)
				break
			}
		}
		return basics
	}

	dropoffsOnly := make([]Waypoint, 0, v.Load())
	for _, wp := range v.Schedule {
		if wp.Op == Dropoff {
			dropoffsOnly = append(dropoffsOnly, wp)
		}
	}
	if len(dropoffsOnly) != v.Load() {
		panic("basic schedule invariant violated: dropoff count must equal vehicle load")
	}

	directTime := func(pos Pos) int64 {
		return router.Route(v.Pos.NodeID, pos.NodeID, TimeOnly).Duration()
	}

	// The un-permuted, already-committed ordering is always an eligible
	// basic schedule, validated or not: it is the vehicle's current
	// in-flight order, not a speculative candidate. Only the additional
	// permutations searched below are gated by the validator.
	rebuildRoutes(dropoffsOnly, v, router)
	feasible := [][]Waypoint{dropoffsOnly}
	skippedIdentity := false
	permute(dropoffsOnly, func(perm []Waypoint) {
		if !skippedIdentity {
			// permute's first call is always the unmutated identity
			// ordering, already added above; only its further
			// permutations are validated here.
			skippedIdentity = true
			return
		}
		candidate := make([]Waypoint, len(perm))
		copy(candidate, perm)
		rebuildRoutes(candidate, v, router)
		res := ValidateSchedule(candidate, v, orders, systemTimeMS, noInsertion, directTime)
		if res.OK {
			feasible = append(feasible, candidate)
		}
	})
	return feasible
}

func cloneSchedule(schedule []Waypoint) []Waypoint {
	out := make([]Waypoint, len(schedule))
	copy(out, schedule)
	return out
}

// permute calls f once for every permutation of items, using Heap's
// algorithm. items is not mutated after permute returns.
func permute(items []Waypoint, f func([]Waypoint)) {
	n := len(items)
	work := make([]Waypoint, n)
	copy(work, items)
	if n == 0 {
		f(work)
		return
	}
	c := make([]int, n)
	f(append([]Waypoint(nil), work...))
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				work[0], work[i] = work[i], work[0]
			} else {
				work[c[i]], work[i] = work[i], work[c[i]]
			}
			f(append([]Waypoint(nil), work...))
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}

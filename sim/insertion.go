// Implements insertion enumeration and the quick
// reachability filter: the core of the scheduling kernel
// shared by all three assignment strategies.

package sim

import "sort"

// SchedulingResult is the outcome of enumerating insertions of a trip into
// a vehicle's basic schedules.
type SchedulingResult struct {
	Success            bool
	VehicleID          int
	TripIDs            []int
	FeasibleSchedules  [][]Waypoint
	BestScheduleIdx    int
	BestScheduleCostMS int64
	Score              float64
}

// QuickReachable implements the quick reachability filter:
// an (order, vehicle) probe can be skipped outright when even an empty
// detour could not reach the order's origin before its pickup deadline.
func QuickReachable(order *Order, vehicle *Vehicle, router Router, systemTimeMS int64) bool {
	toOrigin := router.Route(vehicle.Pos.NodeID, order.Origin.NodeID, TimeOnly).Duration()
	return toOrigin+vehicle.StepToPosDuration()+systemTimeMS <= order.MaxPickupMS
}

// EnumerateInsertions computes all feasible schedules produced by inserting
// order's Pickup at some index and its Dropoff at the same or a later index
// of some basic schedule in basics. baseTripIDs are the
// order ids already served by every schedule in basics (empty for a fresh
// vehicle basic schedule; the sub-trip's ids when growing an OSP trip).
// orders is indexed by Order.ID; systemTimeMS is the current simulation
// clock.
func EnumerateInsertions(order *Order, baseTripIDs []int, vehicle *Vehicle, basics [][]Waypoint, orders []Order, router Router, systemTimeMS int64) SchedulingResult {
	result := SchedulingResult{
		VehicleID:       vehicle.ID,
		TripIDs:         sortedTripIDs(append(append([]int(nil), baseTripIDs...), order.ID)),
		BestScheduleIdx: -1,
	}

	for _, basic := range basics {
		feasibleFromThisBasic := enumerateOverBasic(order, vehicle, basic, orders, router, systemTimeMS)
		for _, cand := range feasibleFromThisBasic {
			result.FeasibleSchedules = append(result.FeasibleSchedules, cand)
		}
	}

	if len(result.FeasibleSchedules) == 0 {
		return result
	}

	best := 0
	bestCost := ScheduleCost(result.FeasibleSchedules[0], vehicle, orders, systemTimeMS)
	for i := 1; i < len(result.FeasibleSchedules); i++ {
		c := ScheduleCost(result.FeasibleSchedules[i], vehicle, orders, systemTimeMS)
		if c < bestCost {
			bestCost = c
			best = i
		}
	}
	result.Success = true
	result.BestScheduleIdx = best
	result.BestScheduleCostMS = bestCost
	return result
}

// enumerateOverBasic runs the double loop over pickup/dropoff indices for a
// single basic schedule, returning every feasible stitched candidate.
func enumerateOverBasic(order *Order, vehicle *Vehicle, basic []Waypoint, orders []Order, router Router, systemTimeMS int64) [][]Waypoint {
	var feasible [][]Waypoint
	n := len(basic)

	directTime := func(pos Pos) int64 {
		return router.Route(vehicle.Pos.NodeID, pos.NodeID, TimeOnly).Duration()
	}

pickupLoop:
	for pickupIdx := 0; pickupIdx <= n; pickupIdx++ {
		for dropoffIdx := pickupIdx; dropoffIdx <= n; dropoffIdx++ {
			candidate := stitchInsertion(basic, order, pickupIdx, dropoffIdx, vehicle, router)
			ctx := insertionContext{PickupIdx: pickupIdx, DropoffIdx: dropoffIdx, InsertedID: order.ID}
			res := ValidateSchedule(candidate, vehicle, orders, systemTimeMS, ctx, directTime)
			if res.OK {
				feasible = append(feasible, candidate)
				continue
			}
			switch res.Violation {
			case ClassTerminalForOrder:
				break pickupLoop
			case ClassTryLargerDropoff:
				continue pickupLoop
			case ClassTryNextPair:
				continue
			}
		}
	}
	return feasible
}

// stitchInsertion rebuilds a schedule with order's Pickup inserted at
// pickupIdx and Dropoff inserted at dropoffIdx (indices relative to basic,
// before insertion), re-querying routes in time-only mode along every
// affected edge of the stitched sequence.
func stitchInsertion(basic []Waypoint, order *Order, pickupIdx, dropoffIdx int, vehicle *Vehicle, router Router) []Waypoint {
	withPickup := make([]Waypoint, 0, len(basic)+1)
	withPickup = append(withPickup, basic[:pickupIdx]...)
	withPickup = append(withPickup, Waypoint{Pos: order.Origin, Op: Pickup, OrderID: order.ID})
	withPickup = append(withPickup, basic[pickupIdx:]...)

	// dropoffIdx was computed against the pre-pickup-insertion indices; the
	// pickup insertion shifted every index at or after pickupIdx by one.
	shiftedDropoffIdx := dropoffIdx
	if dropoffIdx >= pickupIdx {
		shiftedDropoffIdx++
	}

	out := make([]Waypoint, 0, len(withPickup)+1)
	out = append(out, withPickup[:shiftedDropoffIdx]...)
	out = append(out, Waypoint{Pos: order.Destination, Op: Dropoff, OrderID: order.ID})
	out = append(out, withPickup[shiftedDropoffIdx:]...)

	rebuildRoutes(out, vehicle, router)
	return out
}

// rebuildRoutes re-queries the route from each waypoint's predecessor (or
// the vehicle's current position, for the first waypoint) to its own
// position, in time-only mode, mutating out in place.
func rebuildRoutes(out []Waypoint, vehicle *Vehicle, router Router) {
	prev := vehicle.Pos.NodeID
	for i := range out {
		out[i].Route = router.Route(prev, out[i].Pos.NodeID, TimeOnly)
		prev = out[i].Pos.NodeID
	}
}

// sortedTripIDs returns a sorted copy of ids, used wherever a trip's order
// ids must be compared or keyed as a sorted list (e.g. join pruning).
func sortedTripIDs(ids []int) []int {
	out := append([]int(nil), ids...)
	sort.Ints(out)
	return out
}

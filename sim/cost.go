// Implements schedule cost: the sum over Dropoff waypoints
// of arrival-time delay relative to the order's shortest direct travel
// time.

package sim

// ScheduleCost returns the cost of schedule given the vehicle's current
// position/step-to-pos state and the current system time: the sum over
// Dropoff waypoints of (arrival_ms - (order.RequestTimeMS +
// order.ShortestTravelTimeMS)). orders is indexed by Order.ID.
//
// An empty schedule costs 0. If the first step of the first waypoint's
// route is a self-loop (its start and end share a node id), that step IS
// the step_to_pos prefix already folded into the route, and
// vehicle.StepToPosDuration() must not be added again; otherwise the
// running accumulator starts by adding it once.
func ScheduleCost(schedule []Waypoint, vehicle *Vehicle, orders []Order, systemTimeMS int64) int64 {
	if len(schedule) == 0 {
		return 0
	}

	acc := systemTimeMS
	if !scheduleStartsWithStepToPosPrefix(schedule) {
		acc += vehicle.StepToPosDuration()
	}

	var cost int64
	for _, wp := range schedule {
		acc += wp.Route.Duration()
		if wp.Op == Dropoff {
			o := &orders[wp.OrderID]
			delay := acc - (o.RequestTimeMS + o.ShortestTravelTimeMS)
			cost += delay
		}
	}
	return cost
}

// scheduleStartsWithStepToPosPrefix reports whether the first waypoint's
// route begins with the step_to_pos self-loop prefix: its first step has
// identical start/end node ids.
func scheduleStartsWithStepToPosPrefix(schedule []Waypoint) bool {
	if len(schedule) == 0 || len(schedule[0].Route.Steps) == 0 {
		return false
	}
	first := schedule[0].Route.Steps[0]
	return first.Start.NodeID == first.End.NodeID
}

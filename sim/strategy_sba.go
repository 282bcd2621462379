// Implements Single-request Batch Assignment: every
// feasible (vehicle, new-order) pair plus one "empty" pair per vehicle is
// scored, and a one-to-one matching is solved via the pluggable solver.

package sim

import "math"

// SingleBatchAssignment is the SBA assignment strategy.
type SingleBatchAssignment struct{}

func (SingleBatchAssignment) Assign(newOrderIDs []int, vehicles []*Vehicle, orders []Order, router Router, systemTimeMS int64, cfg DispatchConfig, solver Solver) {
	pending := make([]*Order, 0, len(newOrderIDs))
	for _, id := range newOrderIDs {
		if orders[id].Status == Pending {
			pending = append(pending, &orders[id])
		}
	}
	if len(pending) == 0 {
		return
	}

	var pairs []Pair
	maxAbsDelay := 0.0

	for _, v := range vehicles {
		emptyCost := ScheduleCost(v.Schedule, v, orders, systemTimeMS)
		pairs = append(pairs, Pair{VehicleID: v.ID, TripIDs: nil, Schedule: cloneSchedule(v.Schedule), CostMS: emptyCost})

		for _, o := range pending {
			if !QuickReachable(o, v, router, systemTimeMS) {
				continue
			}
			basics := [][]Waypoint{cloneSchedule(v.Schedule)}
			res := EnumerateInsertions(o, nil, v, basics, orders, router, systemTimeMS)
			if !res.Success {
				continue
			}
			inserted := res.FeasibleSchedules[res.BestScheduleIdx]
			delay := IncreasedDelayScore(v.Schedule, inserted, v, orders, systemTimeMS)
			maxAbsDelay = math.Max(maxAbsDelay, math.Abs(delay))
			pairs = append(pairs, Pair{
				VehicleID: v.ID,
				TripIDs:   []int{o.ID},
				Schedule:  inserted,
				CostMS:    res.BestScheduleCostMS,
			})
		}
	}

	for i := range pairs {
		pairs[i].Score = CountBiasedScore(len(pairs[i].TripIDs), scoreDelayFor(pairs[i], vehicles, orders, systemTimeMS), maxAbsDelay)
	}

	pickingStatus := make(map[int]bool)
	for _, o := range pending {
		pickingStatus[o.ID] = false // new orders are never Picking yet; no-op 
	}

	selected, ok := solver.Solve(pairs, orderIDs(pending), true, pickingStatus)
	if !ok {
		selected, _ = GreedySolver{}.Solve(pairs, orderIDs(pending), true, pickingStatus)
	}

	commitSelectedPairs(selected, pairs, vehicles, orders)
}

func scoreDelayFor(p Pair, vehicles []*Vehicle, orders []Order, systemTimeMS int64) float64 {
	if len(p.TripIDs) == 0 {
		return 0
	}
	v := findVehicle(vehicles, p.VehicleID)
	return IncreasedDelayScore(v.Schedule, p.Schedule, v, orders, systemTimeMS)
}

func findVehicle(vehicles []*Vehicle, id int) *Vehicle {
	for _, v := range vehicles {
		if v.ID == id {
			return v
		}
	}
	return nil
}

func orderIDs(orders []*Order) []int {
	out := make([]int, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

// commitSelectedPairs applies the solver's selection: for each selected
// pair whose trip is non-empty, commit the schedule and mark the served
// orders Picking.
func commitSelectedPairs(selected []int, pairs []Pair, vehicles []*Vehicle, orders []Order) {
	for _, i := range selected {
		p := pairs[i]
		if len(p.TripIDs) == 0 {
			continue
		}
		v := findVehicle(vehicles, p.VehicleID)
		if v == nil {
			continue
		}
		v.Schedule = p.Schedule
		v.ScheduleUpdatedThisEpoch = true
		if v.Status == Idle || v.Status == Rebalancing {
			v.Status = Working
		}
		for _, id := range p.TripIDs {
			if orders[id].Status == Pending {
				orders[id].Status = Picking
			}
		}
	}
}

// Implements the Optimal Schedule Pool strategy: the
// considered order set is all Picking and Pending orders, trips of
// increasing size are enumerated per vehicle (tripenum.go), and a
// set-partitioning ILP allows previously assigned but not yet picked-up
// requests to be reassigned.

package sim

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// OptimalSchedulePool is the OSP assignment strategy.
type OptimalSchedulePool struct {
	Budget TripBudget
}

func (o *OptimalSchedulePool) Assign(newOrderIDs []int, vehicles []*Vehicle, orders []Order, router Router, systemTimeMS int64, cfg DispatchConfig, solver Solver) {
	budget := o.Budget
	if budget.Cutoff == 0 {
		budget = DefaultTripBudget
	}

	var considered []*Order
	for i := range orders {
		if orders[i].Status == Pending || orders[i].Status == Picking {
			considered = append(considered, &orders[i])
		}
	}
	if len(considered) == 0 {
		return
	}

	// Trip enumeration is parallelised across vehicles, each goroutine
	// reading an immutable snapshot of orders/vehicles and writing only
	// into its own result slice; the ILP solve and commit
	// phase below stays serial.
	perVehicle := make([][]SchedulingResult, len(vehicles))
	g := new(errgroup.Group)
	for i, v := range vehicles {
		i, v := i, v
		g.Go(func() error {
			perVehicle[i] = EnumerateVehicleTrips(v, considered, orders, router, true, systemTimeMS, budget)
			return nil
		})
	}
	_ = g.Wait()

	var pairs []Pair
	maxAbsDelay := 0.0
	for i, v := range vehicles {
		emptyCost := ScheduleCost(v.Schedule, v, orders, systemTimeMS)
		pairs = append(pairs, Pair{VehicleID: v.ID, TripIDs: nil, Schedule: cloneSchedule(v.Schedule), CostMS: emptyCost})

		for _, res := range perVehicle[i] {
			if !res.Success {
				continue
			}
			sched := res.FeasibleSchedules[res.BestScheduleIdx]
			delay := IncreasedDelayScore(v.Schedule, sched, v, orders, systemTimeMS)
			maxAbsDelay = math.Max(maxAbsDelay, math.Abs(delay))
			pairs = append(pairs, Pair{
				VehicleID: v.ID,
				TripIDs:   res.TripIDs,
				Schedule:  sched,
				CostMS:    res.BestScheduleCostMS,
			})
		}
	}
	for i := range pairs {
		pairs[i].Score = CountBiasedScore(len(pairs[i].TripIDs), scoreDelayFor(pairs[i], vehicles, orders, systemTimeMS), maxAbsDelay)
	}

	pickingStatus := make(map[int]bool, len(considered))
	consideredIDs := make([]int, len(considered))
	for i, ord := range considered {
		pickingStatus[ord.ID] = ord.Status == Picking
		consideredIDs[i] = ord.ID
	}

	selected, ok := solver.Solve(pairs, consideredIDs, true, pickingStatus)
	if !ok {
		selected, _ = GreedySolver{}.Solve(pairs, consideredIDs, true, pickingStatus)
	}

	touchedVehicle := make(map[int]bool, len(selected))
	for _, i := range selected {
		touchedVehicle[pairs[i].VehicleID] = true
	}
	commitSelectedPairs(selected, pairs, vehicles, orders)

	// Every vehicle not touched this epoch, that was Working, and whose
	// schedule length no longer matches its load had Picking orders
	// released to another vehicle; collapse it to its basic (onboard-
	// dropoffs-only) schedule, materialising the reassignment.
	for _, v := range vehicles {
		if touchedVehicle[v.ID] || v.ScheduleUpdatedThisEpoch {
			continue
		}
		if v.Status != Working {
			continue
		}
		if len(v.Schedule) == v.Load() {
			continue
		}
		basic := BasicSchedules(v, orders, router, true, systemTimeMS)
		v.Schedule = basic[0]
		for _, wp := range v.Schedule {
			if wp.Op == Pickup && orders[wp.OrderID].Status == Picking {
				orders[wp.OrderID].Status = Pending
			}
		}
		v.Schedule = dropoffOnlyOf(v.Schedule)
	}
}

// dropoffOnlyOf strips any Pickup waypoints left over from a basic
// schedule whose permutation search happened to retain them (defensive:
// BasicSchedules with reoptimize=true already returns dropoffs-only).
func dropoffOnlyOf(schedule []Waypoint) []Waypoint {
	out := make([]Waypoint, 0, len(schedule))
	for _, wp := range schedule {
		if wp.Op == Dropoff {
			out = append(out, wp)
		}
	}
	return out
}

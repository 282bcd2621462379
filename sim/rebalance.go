// Implements the pluggable idle-vehicle rebalancer, following the same
// construct-by-name factory convention used by NewAssignmentStrategy.

package sim

import (
	"fmt"
	"math/rand"
	"sort"
)

// Rebalancer decides whether and where to reposition idle vehicles.
type Rebalancer interface {
	Rebalance(vehicles []*Vehicle, orders []Order, router Router, systemTimeMS int64)
}

// NoneRebalancer never repositions vehicles.
type NoneRebalancer struct{}

func (NoneRebalancer) Rebalance([]*Vehicle, []Order, Router, int64) {}

// NoRepositionRebalancer (NR) never dispatches a Reposition leg; unlike
// NONE, it returns Rebalancing vehicles whose schedule has drained to
// Idle.
type NoRepositionRebalancer struct{}

func (NoRepositionRebalancer) Rebalance(vehicles []*Vehicle, _ []Order, _ Router, _ int64) {
	for _, v := range vehicles {
		if v.Status == Rebalancing && len(v.Schedule) == 0 {
			v.Status = Idle
		}
	}
}

// RandomVehicleStationRebalancer dispatches idle vehicles to a uniformly
// random vehicle station, using a seeded PRNG subsystem for determinism.
type RandomVehicleStationRebalancer struct {
	RNG *rand.Rand
}

func (r *RandomVehicleStationRebalancer) Rebalance(vehicles []*Vehicle, _ []Order, router Router, _ int64) {
	n := router.NumVehicleStations()
	if n == 0 {
		return
	}
	for _, v := range vehicles {
		if v.Status != Idle || len(v.Schedule) != 0 {
			continue
		}
		stationNode := router.VehicleStationID(r.RNG.Intn(n))
		dispatchReposition(v, stationNode, router)
	}
}

// NearestPendingOrderRebalancer repositions idle vehicles toward Pending
// orders' origins using a greedy bipartite match: every (idle vehicle,
// pending order) candidate pair's direct travel time is computed, the
// candidates are sorted ascending by that travel time, and consumed
// greedily, skipping any pair whose vehicle or order was already claimed
// by a shorter candidate. This is a greedy approximation of the assignment
// problem, not an exact (Hungarian-algorithm) optimum, mirroring the
// original platform's own greedy rebalancer.
type NearestPendingOrderRebalancer struct{}

type npoCandidate struct {
	vehicleIdx int
	orderIdx   int
	travelMS   int64
}

func (NearestPendingOrderRebalancer) Rebalance(vehicles []*Vehicle, orders []Order, router Router, _ int64) {
	var idleVehicleIdxs []int
	for i, v := range vehicles {
		if v.Status == Idle && len(v.Schedule) == 0 {
			idleVehicleIdxs = append(idleVehicleIdxs, i)
		}
	}
	var pendingOrderIdxs []int
	for i := range orders {
		if orders[i].Status == Pending {
			pendingOrderIdxs = append(pendingOrderIdxs, i)
		}
	}
	if len(idleVehicleIdxs) == 0 || len(pendingOrderIdxs) == 0 {
		return
	}

	candidates := make([]npoCandidate, 0, len(idleVehicleIdxs)*len(pendingOrderIdxs))
	for _, vi := range idleVehicleIdxs {
		for _, oi := range pendingOrderIdxs {
			t := router.Route(vehicles[vi].Pos.NodeID, orders[oi].Origin.NodeID, TimeOnly).Duration()
			candidates = append(candidates, npoCandidate{vehicleIdx: vi, orderIdx: oi, travelMS: t})
		}
	}
	sort.Slice(candidates, func(a, b int) bool { return candidates[a].travelMS < candidates[b].travelMS })

	claimedVehicle := make(map[int]bool, len(idleVehicleIdxs))
	claimedOrder := make(map[int]bool, len(pendingOrderIdxs))
	for _, c := range candidates {
		if claimedVehicle[c.vehicleIdx] || claimedOrder[c.orderIdx] {
			continue
		}
		claimedVehicle[c.vehicleIdx] = true
		claimedOrder[c.orderIdx] = true
		dispatchReposition(vehicles[c.vehicleIdx], orders[c.orderIdx].Origin.NodeID, router)
	}
}

func dispatchReposition(v *Vehicle, targetNode int, router Router) {
	route := router.Route(v.Pos.NodeID, targetNode, TimeOnly)
	if route.Duration() == 0 {
		return
	}
	v.Schedule = []Waypoint{{Pos: router.NodePos(targetNode), Op: Reposition, OrderID: -1, Route: route}}
	v.Status = Rebalancing
	v.ScheduleUpdatedThisEpoch = true
}

// NewRebalancer creates a Rebalancer by name: "NONE", "NR", "RVS", "NPO".
// Panics on unrecognized names.
func NewRebalancer(name string, rng *PartitionedRNG) Rebalancer {
	switch name {
	case "NONE":
		return NoneRebalancer{}
	case "NR":
		return NoRepositionRebalancer{}
	case "RVS":
		return &RandomVehicleStationRebalancer{RNG: rng.ForSubsystem(SubsystemRebalancer)}
	case "NPO":
		return NearestPendingOrderRebalancer{}
	default:
		panic(fmt.Sprintf("unknown rebalancer %q", name))
	}
}

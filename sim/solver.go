// Implements the pluggable 0/1 assignment solver. No ILP
// library in the retrieved example corpus fits a binary set-partitioning
// problem (see DESIGN.md); the default Solver is a small branch-and-bound
// over the already-small (N*V-bounded) candidate set, with the documented
// greedy fallback as a second implementation that the SBA and OSP
// strategies switch to when Solve reports failure.

package sim

import "sort"

// Pair is the ILP atom: a candidate (vehicle, trip) combined with its best
// schedule and cost.
type Pair struct {
	VehicleID      int
	TripIDs        []int
	Schedule       []Waypoint
	CostMS         int64
	Score          float64
	AlreadyPicking bool // true if every order in TripIDs was already Picking before this epoch
}

// Solver resolves a pool of candidate pairs into a conflict-free selection:
// each vehicle appears in at most one selected pair, each considered order
// appears in at most one selected pair.
type Solver interface {
	Solve(pairs []Pair, consideredOrderIDs []int, ensurePicking bool, pickingStatus map[int]bool) (selected []int, ok bool)
}

// sortPairsForStableOrder sorts pairs primarily by vehicle id, secondarily
// by decreasing trip size, ties broken by ascending cost,
// giving deterministic tie-breaks to both solvers below.
func sortPairsForStableOrder(pairs []Pair) []int {
	idx := make([]int, len(pairs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		pa, pb := pairs[idx[a]], pairs[idx[b]]
		if pa.VehicleID != pb.VehicleID {
			return pa.VehicleID < pb.VehicleID
		}
		if len(pa.TripIDs) != len(pb.TripIDs) {
			return len(pa.TripIDs) > len(pb.TripIDs)
		}
		return pa.CostMS < pb.CostMS
	})
	return idx
}

// GreedySolver picks pairs in decreasing score, skipping any whose vehicle
// or order has already been claimed.
type GreedySolver struct{}

func (GreedySolver) Solve(pairs []Pair, consideredOrderIDs []int, ensurePicking bool, pickingStatus map[int]bool) ([]int, bool) {
	order := sortPairsForStableOrder(pairs)
	sort.SliceStable(order, func(a, b int) bool {
		return pairs[order[a]].Score > pairs[order[b]].Score
	})

	claimedVehicle := make(map[int]bool)
	claimedOrder := make(map[int]bool)
	var selected []int

	for _, i := range order {
		p := pairs[i]
		if claimedVehicle[p.VehicleID] {
			continue
		}
		conflict := false
		for _, id := range p.TripIDs {
			if claimedOrder[id] {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		claimedVehicle[p.VehicleID] = true
		for _, id := range p.TripIDs {
			claimedOrder[id] = true
		}
		selected = append(selected, i)
	}

	if ensurePicking {
		for orderID, picking := range pickingStatus {
			if picking && !claimedOrder[orderID] {
				return selected, false
			}
		}
	}
	return selected, true
}

// BranchAndBoundSolver exactly solves the 0/1 set-partitioning assignment
// problem by an exhaustive depth-first search over pairs grouped by
// vehicle id; branches are cut only by order conflicts, not by a score
// bound. Suitable because pairs are already
// bounded by N*V and heavily pruned by the scheduling kernel before
// reaching the solver.
type BranchAndBoundSolver struct {
	// MaxNodes caps search effort; 0 means unbounded. On exhaustion the
	// best feasible solution found so far is returned with ok=true (not a
	// failure: only a solver crash counts as failure, not an
	// early-terminated-but-feasible search).
	MaxNodes int
}

func (bb BranchAndBoundSolver) Solve(pairs []Pair, consideredOrderIDs []int, ensurePicking bool, pickingStatus map[int]bool) ([]int, bool) {
	order := sortPairsForStableOrder(pairs)

	byVehicle := make(map[int][]int)
	for _, i := range order {
		byVehicle[pairs[i].VehicleID] = append(byVehicle[pairs[i].VehicleID], i)
	}
	vehicles := make([]int, 0, len(byVehicle))
	for v := range byVehicle {
		vehicles = append(vehicles, v)
	}
	sort.Ints(vehicles)

	mustCover := make(map[int]bool)
	if ensurePicking {
		for id, picking := range pickingStatus {
			if picking {
				mustCover[id] = true
			}
		}
	}

	var best []int
	bestScore := negInf
	claimedOrder := make(map[int]bool)
	var current []int
	nodes := 0

	var recurse func(vIdx int, curScore float64) bool // returns true to stop search (budget exhausted)
	recurse = func(vIdx int, curScore float64) bool {
		if bb.MaxNodes > 0 {
			nodes++
			if nodes > bb.MaxNodes {
				return true
			}
		}
		if vIdx == len(vehicles) {
			if curScore > bestScore {
				allCovered := true
				for id := range mustCover {
					if !claimedOrder[id] {
						allCovered = false
						break
					}
				}
				if allCovered {
					bestScore = curScore
					best = append([]int(nil), current...)
				}
			}
			return false
		}
		v := vehicles[vIdx]
		for _, i := range byVehicle[v] {
			p := pairs[i]
			conflict := false
			for _, id := range p.TripIDs {
				if claimedOrder[id] {
					conflict = true
					break
				}
			}
			if conflict {
				continue
			}
			for _, id := range p.TripIDs {
				claimedOrder[id] = true
			}
			current = append(current, i)
			if recurse(vIdx+1, curScore+p.Score) {
				current = current[:len(current)-1]
				for _, id := range p.TripIDs {
					delete(claimedOrder, id)
				}
				return true
			}
			current = current[:len(current)-1]
			for _, id := range p.TripIDs {
				delete(claimedOrder, id)
			}
		}
		return false
	}

	recurse(0, 0)
	if best == nil {
		return nil, false
	}
	return best, true
}

const negInf = -1e18

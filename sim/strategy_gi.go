// Implements Greedy Insertion: newly received orders are
// processed first-in-first-out, each committed to the best-scoring
// vehicle.

package sim

import "github.com/sirupsen/logrus"

// GreedyInsertion is the GI assignment strategy.
type GreedyInsertion struct{}

func (GreedyInsertion) Assign(newOrderIDs []int, vehicles []*Vehicle, orders []Order, router Router, systemTimeMS int64, cfg DispatchConfig, _ Solver) {
	for _, orderID := range newOrderIDs {
		order := &orders[orderID]
		if order.Status != Pending {
			continue
		}

		bestIdx := -1
		var bestSchedule []Waypoint
		bestScore := negInf

		for i, v := range vehicles {
			if !QuickReachable(order, v, router, systemTimeMS) {
				continue
			}
			basics := [][]Waypoint{cloneSchedule(v.Schedule)}
			res := EnumerateInsertions(order, nil, v, basics, orders, router, systemTimeMS)
			if !res.Success {
				continue
			}
			inserted := res.FeasibleSchedules[res.BestScheduleIdx]
			score := IncreasedDelayScore(v.Schedule, inserted, v, orders, systemTimeMS)
			if score > bestScore {
				bestScore = score
				bestIdx = i
				bestSchedule = inserted
			}
		}

		if bestIdx < 0 {
			continue
		}
		if bestScore > 0 {
			logrus.Warnf("GI: insertion score %.1f > 0 for order %d on vehicle %d; skipping commit", bestScore, order.ID, vehicles[bestIdx].ID)
			continue
		}

		v := vehicles[bestIdx]
		v.Schedule = bestSchedule
		v.ScheduleUpdatedThisEpoch = true
		order.Status = Picking
		if v.Status == Idle || v.Status == Rebalancing {
			v.Status = Working
		}
	}
}

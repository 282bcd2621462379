// Implements the two candidate-scoring functions, both rendering the
// assignment problem as a maximisation for the pluggable solver.

package sim

import "math"

// IncreasedDelayScore computes cost(currentSchedule) - cost(insertedSchedule),
// the score GI uses directly: values <= 0, larger (closer to 0) is better.
func IncreasedDelayScore(currentSchedule, insertedSchedule []Waypoint, vehicle *Vehicle, orders []Order, systemTimeMS int64) float64 {
	current := ScheduleCost(currentSchedule, vehicle, orders, systemTimeMS)
	inserted := ScheduleCost(insertedSchedule, vehicle, orders, systemTimeMS)
	return float64(current - inserted)
}

// CountBiasedScore computes the two-tier score SBA/OSP feed into the ILP:
// R*|tripSize| + increasedDelay/1000, where R is chosen so that serving one
// more order always outweighs any delay difference among the considered
// pairs. maxAbsIncreasedDelay must be the maximum absolute increased-delay
// magnitude across all pairs being scored together.
func CountBiasedScore(tripSize int, increasedDelay float64, maxAbsIncreasedDelay float64) float64 {
	r := countBiasR(maxAbsIncreasedDelay)
	return r*float64(tripSize) + increasedDelay/1000
}

// countBiasR computes R = 10^ceil(log10(maxAbsIncreasedDelay)), clamped to
// at least 10 so a trip size of one order still dominates when every
// delay in the batch happens to be zero.
func countBiasR(maxAbsIncreasedDelay float64) float64 {
	if maxAbsIncreasedDelay <= 1 {
		return 10
	}
	return math.Pow(10, math.Ceil(math.Log10(maxAbsIncreasedDelay)))
}

// Defines the road-network geometry types: Pos, Step, and Route, along with
// the route-truncation logic the vehicle advancer uses to split a Step at a
// mid-edge point in time.

package sim

import "fmt"

// Pos is a road-network node: an integer node id plus its longitude and
// latitude. Node ids are treated as opaque keys into the router's tables;
// this package does not assume 0- or 1-indexing.
type Pos struct {
	NodeID int
	Lon    float64
	Lat    float64
}

// Step is a single directed edge traversal: a (start, end) pair of poses,
// an integer distance in millimetres and an integer duration in
// milliseconds. A flag step has Start == End (same node id and coordinates)
// and DistanceMM == DurationMS == 0; it marks end-of-route.
type Step struct {
	Start      Pos
	End        Pos
	DistanceMM int64
	DurationMS int64
}

// IsFlag reports whether this step is the distinguished end-of-route
// marker: identical start/end node ids with zero distance and duration.
func (s Step) IsFlag() bool {
	return s.Start.NodeID == s.End.NodeID && s.DistanceMM == 0 && s.DurationMS == 0
}

// IsSelfLoop reports whether this step's endpoints share a node id. A
// self-loop step that is not the flag step marks a vehicle mid-edge,
// approaching End, with DurationMS remaining greater than zero (see
// TruncateStep).
func (s Step) IsSelfLoop() bool {
	return s.Start.NodeID == s.End.NodeID
}

// Route is an ordered, non-empty sequence of Steps. By invariant the last
// step is always the flag step.
type Route struct {
	Steps []Step
}

// Duration returns the sum of DurationMS over all steps.
func (r Route) Duration() int64 {
	var total int64
	for _, s := range r.Steps {
		total += s.DurationMS
	}
	return total
}

// Distance returns the sum of DistanceMM over all steps.
func (r Route) Distance() int64 {
	var total int64
	for _, s := range r.Steps {
		total += s.DistanceMM
	}
	return total
}

// deviationToleranceMS is the small rounding slack tolerated between a
// route's aggregate duration and the sum of its step durations, and between
// a truncated route's duration and its expected remainder.
const deviationToleranceMS = 5

// NewFlagRoute returns a single-step route consisting of only the flag step
// at pos, used as a degenerate "already there" route.
func NewFlagRoute(pos Pos) Route {
	return Route{Steps: []Step{{Start: pos, End: pos}}}
}

// TruncateStep splits step at elapsed time t, 0 <= t < step.DurationMS,
// returning the remainder of the step from the point reached at time t to
// the step's original End. Per spec, duration is reduced by subtracting t
// directly (never by scaling with ratio), to avoid compounding rounding
// error across repeated truncation.
func TruncateStep(step Step, t int64) (Step, error) {
	if t < 0 || t >= step.DurationMS {
		return Step{}, fmt.Errorf("truncate step: t=%d out of range [0, %d)", t, step.DurationMS)
	}
	ratio := float64(t) / float64(step.DurationMS)
	newStart := Pos{
		NodeID: step.End.NodeID,
		Lon:    step.Start.Lon + ratio*(step.End.Lon-step.Start.Lon),
		Lat:    step.Start.Lat + ratio*(step.End.Lat-step.Start.Lat),
	}
	return Step{
		Start:      newStart,
		End:        step.End,
		DistanceMM: int64(float64(step.DistanceMM) * (1 - ratio)),
		DurationMS: step.DurationMS - t,
	}, nil
}

// TruncateRoute drops whole prefix steps of route until the next step would
// exceed the remaining time t, then truncates that step. Requires
// len(route.Steps) >= 2 (a route with only the flag step cannot be
// truncated) and 0 <= t < route.Duration().
func TruncateRoute(route Route, t int64) (Route, error) {
	if len(route.Steps) < 2 {
		return Route{}, fmt.Errorf("truncate route: need at least 2 steps, got %d", len(route.Steps))
	}
	if t < 0 || t >= route.Duration() {
		return Route{}, fmt.Errorf("truncate route: t=%d out of range [0, %d)", t, route.Duration())
	}

	remaining := t
	idx := 0
	for idx < len(route.Steps) && remaining >= route.Steps[idx].DurationMS {
		remaining -= route.Steps[idx].DurationMS
		idx++
	}
	if idx >= len(route.Steps) {
		// All steps consumed exactly; remainder is just the flag step.
		last := route.Steps[len(route.Steps)-1]
		return Route{Steps: []Step{last}}, nil
	}

	out := make([]Step, 0, len(route.Steps)-idx)
	if remaining == 0 {
		out = append(out, route.Steps[idx:]...)
	} else {
		truncated, err := TruncateStep(route.Steps[idx], remaining)
		if err != nil {
			return Route{}, err
		}
		out = append(out, truncated)
		out = append(out, route.Steps[idx+1:]...)
	}
	return Route{Steps: out}, nil
}

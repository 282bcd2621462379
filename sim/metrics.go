// Accumulates fleet-wide running statistics across the epoch loop: running
// counters updated incrementally and printed once at the end via
// Print() in report.go.

package sim

// Metrics accumulates fleet-wide counters across a run.
type Metrics struct {
	EpochsRun int64

	PickupEvents  int64
	DropoffEvents int64

	CompletedOrders int
	WalkawayOrders  int
	PendingAtEnd    int

	TotalWaitMS     int64 // pickup time minus request time, summed over completed orders
	TotalTripMS     int64 // dropoff time minus pickup time, summed over completed orders
	TotalDetourMS   int64 // TotalTripMS minus the order's own direct travel time
	CompletedForAvg int64

	LoadedDistanceMM int64
	EmptyDistanceMM  int64
	ReblDistanceMM   int64
	LoadedDurationMS int64
	EmptyDurationMS  int64
	ReblDurationMS   int64
}

// NewMetrics returns a zeroed Metrics accumulator.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordAdvance folds one vehicle's per-epoch AdvanceResult into the
// running pickup/dropoff counters.
func (m *Metrics) RecordAdvance(res AdvanceResult) {
	m.PickupEvents += int64(len(res.PickedIDs))
	m.DropoffEvents += int64(len(res.DroppedIDs))
}

// Finalize walks the final order table once, computing completion,
// walkaway and wait/trip/detour statistics. Fleet mileage is folded in
// separately, per vehicle, by AccumulateVehicle.
// mainStartMS/mainEndMS bound the main measurement window: orders
// requested outside [mainStartMS, mainEndMS) pad the fleet during
// warmup/winddown but are excluded from every reported statistic, mirroring
// the original platform's CreateReport window.
func (m *Metrics) Finalize(orders []Order, mainStartMS, mainEndMS int64) {
	for i := range orders {
		if orders[i].RequestTimeMS < mainStartMS || orders[i].RequestTimeMS >= mainEndMS {
			continue
		}
		switch orders[i].Status {
		case Complete:
			m.CompletedOrders++
			wait := orders[i].PickupTimeMS - orders[i].RequestTimeMS
			trip := orders[i].DropoffTimeMS - orders[i].PickupTimeMS
			detour := trip - orders[i].ShortestTravelTimeMS
			if detour < 0 {
				detour = 0
			}
			m.TotalWaitMS += wait
			m.TotalTripMS += trip
			m.TotalDetourMS += detour
			m.CompletedForAvg++
		case Walkaway:
			m.WalkawayOrders++
		case Pending, Picking, Onboard:
			m.PendingAtEnd++
		}
	}
}

// AccumulateVehicle folds a vehicle's lifetime distance/duration
// accumulators (maintained incrementally by Advance) into the fleet
// totals. Called once per vehicle after Run() completes.
func (m *Metrics) AccumulateVehicle(v *Vehicle) {
	m.LoadedDistanceMM += v.LoadedDistTraveledMM
	m.EmptyDistanceMM += v.EmptyDistTraveledMM
	m.ReblDistanceMM += v.ReblDistTraveledMM
	m.LoadedDurationMS += v.LoadedDistTraveledTimeMS
	m.EmptyDurationMS += v.EmptyDistTraveledTimeMS
	m.ReblDurationMS += v.ReblDistTraveledTimeMS
}

// AvgWaitMS returns the mean pickup wait across completed orders, or 0 if
// none completed.
func (m *Metrics) AvgWaitMS() float64 {
	if m.CompletedForAvg == 0 {
		return 0
	}
	return float64(m.TotalWaitMS) / float64(m.CompletedForAvg)
}

// AvgTripMS returns the mean onboard trip duration across completed orders.
func (m *Metrics) AvgTripMS() float64 {
	if m.CompletedForAvg == 0 {
		return 0
	}
	return float64(m.TotalTripMS) / float64(m.CompletedForAvg)
}

// AvgDetourMS returns the mean detour (trip minus direct travel time)
// across completed orders.
func (m *Metrics) AvgDetourMS() float64 {
	if m.CompletedForAvg == 0 {
		return 0
	}
	return float64(m.TotalDetourMS) / float64(m.CompletedForAvg)
}

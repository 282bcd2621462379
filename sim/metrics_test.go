package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_FinalizeClassifiesEveryOrder(t *testing.T) {
	orders := []Order{
		{ID: 0, Status: Complete, RequestTimeMS: 0, PickupTimeMS: 10_000, DropoffTimeMS: 40_000, ShortestTravelTimeMS: 20_000},
		{ID: 1, Status: Walkaway},
		{ID: 2, Status: Pending},
		{ID: 3, Status: Picking},
		{ID: 4, Status: Onboard},
	}

	m := NewMetrics()
	m.Finalize(orders, 0, 1<<62)

	require.Equal(t, 1, m.CompletedOrders)
	require.Equal(t, 1, m.WalkawayOrders)
	require.Equal(t, 3, m.PendingAtEnd)

	assert.Equal(t, int64(10_000), m.TotalWaitMS)
	assert.Equal(t, int64(30_000), m.TotalTripMS)
	assert.Equal(t, int64(10_000), m.TotalDetourMS) // 30000 trip - 20000 direct
	assert.InDelta(t, 10_000.0, m.AvgWaitMS(), 0.001)
}

func TestMetrics_AvgMethodsZeroWithNoCompletions(t *testing.T) {
	m := NewMetrics()
	assert.Equal(t, 0.0, m.AvgWaitMS())
	assert.Equal(t, 0.0, m.AvgTripMS())
	assert.Equal(t, 0.0, m.AvgDetourMS())
}

func TestMetrics_AccumulateVehicleSumsMileage(t *testing.T) {
	v1 := NewVehicle(0, Pos{NodeID: 1}, 1)
	v1.LoadedDistTraveledMM = 1000
	v1.EmptyDistTraveledMM = 200
	v1.ReblDistTraveledMM = 50
	v2 := NewVehicle(1, Pos{NodeID: 2}, 1)
	v2.LoadedDistTraveledMM = 500

	m := NewMetrics()
	m.AccumulateVehicle(v1)
	m.AccumulateVehicle(v2)

	assert.Equal(t, int64(1500), m.LoadedDistanceMM)
	assert.Equal(t, int64(200), m.EmptyDistanceMM)
	assert.Equal(t, int64(50), m.ReblDistanceMM)
}

func TestMetrics_RecordAdvanceCountsEvents(t *testing.T) {
	m := NewMetrics()
	m.RecordAdvance(AdvanceResult{PickedIDs: []int{0, 1}, DroppedIDs: []int{2}})
	assert.Equal(t, int64(2), m.PickupEvents)
	assert.Equal(t, int64(1), m.DropoffEvents)
}

func TestMetrics_DetourNeverNegative(t *testing.T) {
	orders := []Order{
		{ID: 0, Status: Complete, RequestTimeMS: 0, PickupTimeMS: 0, DropoffTimeMS: 10_000, ShortestTravelTimeMS: 50_000},
	}
	m := NewMetrics()
	m.Finalize(orders, 0, 1<<62)
	assert.Equal(t, int64(0), m.TotalDetourMS)
}

func TestMetrics_FinalizeExcludesOrdersOutsideMainWindow(t *testing.T) {
	orders := []Order{
		{ID: 0, Status: Complete, RequestTimeMS: 100, PickupTimeMS: 200, DropoffTimeMS: 300, ShortestTravelTimeMS: 100}, // warmup, before window
		{ID: 1, Status: Complete, RequestTimeMS: 1_000, PickupTimeMS: 1_500, DropoffTimeMS: 2_000, ShortestTravelTimeMS: 500}, // inside window
		{ID: 2, Status: Walkaway, RequestTimeMS: 5_000}, // winddown, at/after window end
	}
	m := NewMetrics()
	m.Finalize(orders, 1_000, 5_000)

	require.Equal(t, 1, m.CompletedOrders)
	require.Equal(t, 0, m.WalkawayOrders)
	assert.Equal(t, int64(500), m.TotalWaitMS)
}

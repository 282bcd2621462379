package sim

import "testing"

func TestIncreasedDelayScore_SignAndMagnitude(t *testing.T) {
	router := straightRouter()
	v := NewVehicle(0, Pos{NodeID: 1}, 1)
	orderA := newTestOrder(0, Pos{NodeID: 1}, Pos{NodeID: 2}, router, 0)
	orders := []Order{orderA}

	current := []Waypoint(nil)
	inserted := []Waypoint{
		{Pos: orderA.Origin, Op: Pickup, OrderID: 0, Route: router.Route(1, 1, TimeOnly)},
		{Pos: orderA.Destination, Op: Dropoff, OrderID: 0, Route: router.Route(1, 2, TimeOnly)},
	}
	score := IncreasedDelayScore(current, inserted, v, orders, 0)
	if score > 0 {
		t.Errorf("score = %v, want <= 0 (insertion cannot reduce cumulative delay below baseline)", score)
	}
}

func TestCountBiasedScore_TripSizeDominatesDelay(t *testing.T) {
	// A two-order trip with a worse delay must still outscore a one-order
	// trip with a better delay, since R is chosen to dominate.
	oneOrder := CountBiasedScore(1, -5000, 5000)
	twoOrders := CountBiasedScore(2, -100000, 100000)
	if twoOrders <= oneOrder {
		t.Errorf("two-order score %v should exceed one-order score %v regardless of delay", twoOrders, oneOrder)
	}
}

func TestCountBiasedScore_RIsPowerOfTenAboveMaxDelay(t *testing.T) {
	r := countBiasR(4500)
	if r != 10000 {
		t.Errorf("countBiasR(4500) = %v, want 10000 (10^ceil(log10(4500)))", r)
	}
	r2 := countBiasR(0)
	if r2 != 10 {
		t.Errorf("countBiasR(0) = %v, want 10 (clamped floor)", r2)
	}
}

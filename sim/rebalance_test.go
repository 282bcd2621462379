package sim

import "testing"

func TestNoneRebalancer_NeverDispatches(t *testing.T) {
	router := straightRouter()
	v := NewVehicle(0, Pos{NodeID: 1}, 1)
	NoneRebalancer{}.Rebalance([]*Vehicle{v}, nil, router, 0)
	if len(v.Schedule) != 0 {
		t.Error("NoneRebalancer must never assign a schedule")
	}
}

func TestNoRepositionRebalancer_SettlesToIdle(t *testing.T) {
	v := NewVehicle(0, Pos{NodeID: 1}, 1)
	v.Status = Rebalancing
	NoRepositionRebalancer{}.Rebalance([]*Vehicle{v}, nil, nil, 0)
	if v.Status != Idle {
		t.Errorf("status = %v, want Idle once the (empty) reposition schedule drains", v.Status)
	}
}

func TestRandomVehicleStationRebalancer_DispatchesIdleVehicles(t *testing.T) {
	router := newFakeRouter().
		pos(1, 0, 0).pos(2, 1, 0).
		set(1, 2, 30_000, 300_000).
		withStations(2)
	v := NewVehicle(0, Pos{NodeID: 1}, 1)

	rng := NewPartitionedRNG(42)
	reb := &RandomVehicleStationRebalancer{RNG: rng.ForSubsystem(SubsystemRebalancer)}
	reb.Rebalance([]*Vehicle{v}, nil, router, 0)

	if v.Status != Rebalancing {
		t.Fatalf("status = %v, want Rebalancing", v.Status)
	}
	if len(v.Schedule) != 1 || v.Schedule[0].Op != Reposition {
		t.Fatalf("expected a single Reposition leg, got %+v", v.Schedule)
	}
	if v.Schedule[0].Pos.NodeID != 2 {
		t.Errorf("reposition target = %d, want 2 (the only station)", v.Schedule[0].Pos.NodeID)
	}
}

func TestRandomVehicleStationRebalancer_SkipsBusyVehicles(t *testing.T) {
	router := newFakeRouter().pos(1, 0, 0).pos(2, 1, 0).set(1, 2, 30_000, 300_000).withStations(2)
	v := NewVehicle(0, Pos{NodeID: 1}, 1)
	v.Status = Working
	v.Schedule = []Waypoint{{Pos: Pos{NodeID: 2}, Op: Dropoff, OrderID: 0}}

	rng := NewPartitionedRNG(1)
	reb := &RandomVehicleStationRebalancer{RNG: rng.ForSubsystem(SubsystemRebalancer)}
	reb.Rebalance([]*Vehicle{v}, nil, router, 0)

	if v.Status != Working {
		t.Error("a Working vehicle must not be rebalanced")
	}
}

func TestNearestPendingOrderRebalancer_TargetsClosestOrigin(t *testing.T) {
	router := newFakeRouter().
		pos(1, 0, 0).pos(2, 1, 0).pos(3, 5, 0).
		set(1, 2, 10_000, 100_000).
		set(1, 3, 90_000, 900_000).
		withStations(1, 2, 3)
	v := NewVehicle(0, Pos{NodeID: 1}, 1)

	far := newTestOrder(0, Pos{NodeID: 3}, Pos{NodeID: 1}, router, 0)
	near := newTestOrder(1, Pos{NodeID: 2}, Pos{NodeID: 1}, router, 0)
	orders := []Order{far, near}

	NearestPendingOrderRebalancer{}.Rebalance([]*Vehicle{v}, orders, router, 0)
	if len(v.Schedule) != 1 || v.Schedule[0].Pos.NodeID != 2 {
		t.Fatalf("expected reposition toward node 2 (nearest Pending origin), got %+v", v.Schedule)
	}
}

func TestNearestPendingOrderRebalancer_GreedyMatchAvoidsDoubleBooking(t *testing.T) {
	// Two idle vehicles, two pending orders, and node 10 is the nearest
	// origin for both vehicles. Once v1 claims the globally-shortest
	// candidate (v1->o_near), v2 must settle for the remaining order rather
	// than both vehicles converging on node 10.
	router := newFakeRouter().
		pos(1, 0, 0).pos(2, 10, 0).pos(10, 1, 0).pos(20, 11, 0).
		set(1, 10, 10_000, 100_000).
		set(1, 20, 50_000, 500_000).
		set(2, 10, 15_000, 150_000).
		set(2, 20, 20_000, 200_000).
		withStations(1, 2, 10, 20)

	v1 := NewVehicle(0, Pos{NodeID: 1}, 1)
	v2 := NewVehicle(1, Pos{NodeID: 2}, 1)

	near := newTestOrder(0, Pos{NodeID: 10}, Pos{NodeID: 1}, router, 0)
	far := newTestOrder(1, Pos{NodeID: 20}, Pos{NodeID: 1}, router, 0)
	orders := []Order{near, far}

	NearestPendingOrderRebalancer{}.Rebalance([]*Vehicle{v1, v2}, orders, router, 0)

	if len(v1.Schedule) != 1 || v1.Schedule[0].Pos.NodeID != 10 {
		t.Fatalf("v1 expected reposition to node 10 (shortest overall candidate), got %+v", v1.Schedule)
	}
	if len(v2.Schedule) != 1 || v2.Schedule[0].Pos.NodeID != 20 {
		t.Fatalf("v2 expected reposition to node 20 (remaining order, node 10 already claimed), got %+v", v2.Schedule)
	}
}

func TestNewRebalancer_FactoryNames(t *testing.T) {
	rng := NewPartitionedRNG(1)
	cases := []string{"NONE", "NR", "RVS", "NPO"}
	for _, name := range cases {
		if r := NewRebalancer(name, rng); r == nil {
			t.Errorf("NewRebalancer(%q) returned nil", name)
		}
	}
}

func TestNewRebalancer_PanicsOnUnknownName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown rebalancer name")
		}
	}()
	NewRebalancer("BOGUS", NewPartitionedRNG(1))
}

package sim

import "testing"

func TestOptimalSchedulePool_CommitsSingleOrder(t *testing.T) {
	router := straightRouter()
	v := NewVehicle(0, Pos{NodeID: 1}, 1)
	v.Status = Idle
	orderA := newTestOrder(0, Pos{NodeID: 1}, Pos{NodeID: 2}, router, 0)
	orders := []Order{orderA}

	osp := &OptimalSchedulePool{}
	osp.Assign([]int{0}, []*Vehicle{v}, orders, router, 0, DispatchConfig{}, BranchAndBoundSolver{})

	if orders[0].Status != Picking {
		t.Fatalf("order status = %v, want Picking", orders[0].Status)
	}
	if len(v.Schedule) != 2 {
		t.Fatalf("expected [Pickup, Dropoff], got %+v", v.Schedule)
	}
}

func TestOptimalSchedulePool_NoConsideredOrdersIsNoOp(t *testing.T) {
	router := straightRouter()
	v := NewVehicle(0, Pos{NodeID: 1}, 1)
	orderA := newTestOrder(0, Pos{NodeID: 1}, Pos{NodeID: 2}, router, 0)
	orderA.Status = Onboard
	orders := []Order{orderA}

	osp := &OptimalSchedulePool{}
	osp.Assign(nil, []*Vehicle{v}, orders, router, 0, DispatchConfig{}, BranchAndBoundSolver{})

	if len(v.Schedule) != 0 {
		t.Error("with no Pending/Picking orders, OSP must leave schedules untouched")
	}
}

func TestOptimalSchedulePool_ReleasesPickingOrderToBetterVehicle(t *testing.T) {
	// Two vehicles, one order already Picking and tentatively assigned to
	// the farther vehicle; OSP's reassignment pass should
	// prefer the nearer vehicle and collapse the loser back to its basic
	// (here: empty) schedule once the winner is committed.
	router := newFakeRouter().
		pos(1, 0, 0).pos(2, 1, 0).pos(3, 2, 0).
		set(1, 2, 10_000, 100_000).
		set(1, 3, 10_000, 100_000).
		set(2, 3, 90_000, 900_000).
		withStations(1, 2)
	near := NewVehicle(0, Pos{NodeID: 1}, 1)
	far := NewVehicle(1, Pos{NodeID: 2}, 1)
	far.Status = Working

	orderA := newTestOrder(0, Pos{NodeID: 1}, Pos{NodeID: 3}, router, 0)
	orderA.Status = Picking
	far.Schedule = []Waypoint{
		{Pos: orderA.Origin, Op: Pickup, OrderID: 0, Route: router.Route(2, 1, TimeOnly)},
		{Pos: orderA.Destination, Op: Dropoff, OrderID: 0, Route: router.Route(1, 3, TimeOnly)},
	}
	orders := []Order{orderA}
	vehicles := []*Vehicle{far, near}

	osp := &OptimalSchedulePool{}
	osp.Assign(nil, vehicles, orders, router, 0, DispatchConfig{}, BranchAndBoundSolver{})

	if orders[0].Status != Picking {
		t.Fatalf("order status = %v, want Picking (served by someone)", orders[0].Status)
	}
	if len(near.Schedule) != 2 {
		t.Errorf("expected the nearer vehicle to win the reassignment, got schedule %+v", near.Schedule)
	}
	if len(far.Schedule) != 0 {
		t.Errorf("expected the losing vehicle's schedule collapsed to empty, got %+v", far.Schedule)
	}
}

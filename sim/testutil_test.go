package sim

// fakeRouter is a minimal, fully-controllable Router test double: routes
// are read straight out of a duration/distance table, with no pathfinding.
// Used throughout the kernel tests in place of TableRouter so each test can
// pin exact travel times without constructing a network CSV.
type fakeRouter struct {
	durationMS map[[2]int]int64
	distanceMM map[[2]int]int64
	positions  map[int]Pos
	stations   []int
}

func newFakeRouter() *fakeRouter {
	return &fakeRouter{
		durationMS: make(map[[2]int]int64),
		distanceMM: make(map[[2]int]int64),
		positions:  make(map[int]Pos),
	}
}

// set registers a symmetric edge: both (a,b) and (b,a) resolve to the same
// duration/distance.
func (r *fakeRouter) set(a, b int, durationMS, distanceMM int64) *fakeRouter {
	r.durationMS[[2]int{a, b}] = durationMS
	r.durationMS[[2]int{b, a}] = durationMS
	r.distanceMM[[2]int{a, b}] = distanceMM
	r.distanceMM[[2]int{b, a}] = distanceMM
	return r
}

func (r *fakeRouter) pos(id int, lon, lat float64) *fakeRouter {
	r.positions[id] = Pos{NodeID: id, Lon: lon, Lat: lat}
	return r
}

func (r *fakeRouter) withStations(ids ...int) *fakeRouter {
	r.stations = ids
	return r
}

func (r *fakeRouter) Route(origin, destination int, mode RouteMode) Route {
	if origin == destination {
		return NewFlagRoute(r.NodePos(origin))
	}
	dur := r.durationMS[[2]int{origin, destination}]
	dist := r.distanceMM[[2]int{origin, destination}]
	flagPos := r.NodePos(destination)
	return Route{Steps: []Step{
		{Start: r.NodePos(origin), End: flagPos, DistanceMM: dist, DurationMS: dur},
		{Start: flagPos, End: flagPos},
	}}
}

func (r *fakeRouter) NodePos(nodeID int) Pos {
	if p, ok := r.positions[nodeID]; ok {
		return p
	}
	return Pos{NodeID: nodeID}
}

func (r *fakeRouter) VehicleStationID(i int) int { return r.stations[i] }

func (r *fakeRouter) NumVehicleStations() int { return len(r.stations) }

// twoNodeRouter builds a 2-node straight road (node 1 = A, node 2 = B)
// with edge travel time 60s and distance 600m, used across the
// end-to-end scenario tests.
func twoNodeRouter() *fakeRouter {
	return newFakeRouter().
		pos(1, 0, 0).
		pos(2, 1, 0).
		set(1, 2, 60_000, 600_000).
		withStations(1, 2)
}

func straightRouter() Router { return twoNodeRouter() }

var deadlineCfg = DeadlineConfig{MaxWaitMS: 300_000, MaxDetour: 1.3}

func newTestOrder(id int, origin, destination Pos, router Router, requestTimeMS int64) Order {
	req := Request{Origin: origin.NodeID, Destination: destination.NodeID, RequestTimeMS: requestTimeMS}
	shortest := router.Route(origin.NodeID, destination.NodeID, TimeOnly).Duration()
	return NewOrder(id, origin, destination, req, shortest, deadlineCfg)
}

// Defines the Router collaborator contract: a pure query
// interface the scheduling kernel consumes for route and node lookups. The
// kernel never assumes a particular router implementation; router_table.go
// provides the one concrete implementation this program ships.

package sim

// RouteMode selects how much detail Route asks the router to produce.
type RouteMode int

const (
	// TimeOnly routes have correct aggregate duration and distance but may
	// carry a placeholder step sequence (an empty body plus the flag step).
	TimeOnly RouteMode = iota
	// FullRoute routes carry the detailed step-by-step geometry.
	FullRoute
)

// Router answers route, node and station queries over the road network.
// All methods are pure queries: implementations must not mutate shared
// state or block on the network. The network is assumed to be strongly
// connected over the vehicle-station set; a lookup for a disconnected pair
// is a configuration error. TableRouter does not check connectivity when
// it is built: a FullRoute query for a disconnected pair panics, and a
// TimeOnly query returns an effectively infinite duration.
type Router interface {
	// Route returns the route from origin to destination under mode.
	// route.Duration() must equal the router's precomputed travel time
	// for (origin, destination) within deviationToleranceMS, in both modes.
	Route(origin, destination int, mode RouteMode) Route

	// NodePos returns the position of a road-network node.
	NodePos(nodeID int) Pos

	// VehicleStationID returns the node id of the i-th vehicle station.
	VehicleStationID(i int) int

	// NumVehicleStations returns the number of configured vehicle stations.
	NumVehicleStations() int
}

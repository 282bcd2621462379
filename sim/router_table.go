// Implements TableRouter, the one concrete Router (router.go) this program
// ships: an all-pairs shortest-path precompute over the ingested road
// network via Floyd-Warshall, trading memory for O(1) query time instead
// of per-query graph search.

package sim

import "fmt"

// TableRouter answers Router queries from a precomputed all-pairs shortest
// path table built once at construction time.
type TableRouter struct {
	nodes    map[int]NetworkNode
	nodeIdx  map[int]int
	ids      []int
	distMM   [][]int64
	durMS    [][]int64
	nextHop  [][]int // next hop index on the shortest path, -1 if unreachable or i==j
	stations []int
}

// NewTableRouter builds a TableRouter from the ingested nodes and directed
// edges, running Floyd-Warshall over the |nodes| x |nodes| adjacency
// matrix. stationNodeIDs names the vehicle-station nodes in configured
// order.
func NewTableRouter(nodes []NetworkNode, edges []NetworkEdge, stationNodeIDs []int) (*TableRouter, error) {
	n := len(nodes)
	nodeIdx := make(map[int]int, n)
	nodeMap := make(map[int]NetworkNode, n)
	ids := make([]int, n)
	for i, nd := range nodes {
		nodeIdx[nd.ID] = i
		nodeMap[nd.ID] = nd
		ids[i] = nd.ID
	}

	const inf = int64(1) << 62
	distMM := make([][]int64, n)
	durMS := make([][]int64, n)
	nextHop := make([][]int, n)
	for i := 0; i < n; i++ {
		distMM[i] = make([]int64, n)
		durMS[i] = make([]int64, n)
		nextHop[i] = make([]int, n)
		for j := 0; j < n; j++ {
			if i == j {
				distMM[i][j], durMS[i][j] = 0, 0
			} else {
				distMM[i][j], durMS[i][j] = inf, inf
			}
			nextHop[i][j] = -1
		}
	}

	for _, e := range edges {
		i, ok := nodeIdx[e.From]
		if !ok {
			return nil, fmt.Errorf("edge references unknown from-node %d", e.From)
		}
		j, ok := nodeIdx[e.To]
		if !ok {
			return nil, fmt.Errorf("edge references unknown to-node %d", e.To)
		}
		if e.DurationMS < durMS[i][j] {
			distMM[i][j] = e.DistanceMM
			durMS[i][j] = e.DurationMS
			nextHop[i][j] = j
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if durMS[i][k] >= inf {
				continue
			}
			for j := 0; j < n; j++ {
				if durMS[k][j] >= inf {
					continue
				}
				if cand := durMS[i][k] + durMS[k][j]; cand < durMS[i][j] {
					durMS[i][j] = cand
					distMM[i][j] = distMM[i][k] + distMM[k][j]
					nextHop[i][j] = nextHop[i][k]
				}
			}
		}
	}

	stations := make([]int, 0, len(stationNodeIDs))
	for _, sid := range stationNodeIDs {
		if _, ok := nodeIdx[sid]; !ok {
			return nil, fmt.Errorf("vehicle station references unknown node %d", sid)
		}
		stations = append(stations, sid)
	}

	return &TableRouter{
		nodes:    nodeMap,
		nodeIdx:  nodeIdx,
		ids:      ids,
		distMM:   distMM,
		durMS:    durMS,
		nextHop:  nextHop,
		stations: stations,
	}, nil
}

// Route returns the precomputed shortest route from origin to destination.
// In TimeOnly mode the returned Route carries only the flag step plus a
// single synthetic step summarizing aggregate distance/duration; in
// FullRoute mode it walks the nextHop chain to produce the detailed
// step-by-step path.
func (r *TableRouter) Route(origin, destination int, mode RouteMode) Route {
	oi, oOK := r.nodeIdx[origin]
	di, dOK := r.nodeIdx[destination]
	if !oOK || !dOK {
		panic(fmt.Sprintf("router: unknown node in Route(%d, %d)", origin, destination))
	}
	if oi == di {
		return NewFlagRoute(r.NodePos(origin))
	}

	dist := r.distMM[oi][di]
	dur := r.durMS[oi][di]
	flagPos := r.NodePos(destination)

	if mode == TimeOnly {
		return Route{Steps: []Step{
			{Start: r.NodePos(origin), End: flagPos, DistanceMM: dist, DurationMS: dur},
			{Start: flagPos, End: flagPos},
		}}
	}

	var steps []Step
	cur := oi
	for cur != di {
		next := r.nextHop[cur][di]
		if next < 0 {
			panic(fmt.Sprintf("router: no path from %d to %d", origin, destination))
		}
		fromPos := r.NodePos(r.ids[cur])
		toPos := r.NodePos(r.ids[next])
		steps = append(steps, Step{
			Start:      fromPos,
			End:        toPos,
			DistanceMM: r.distMM[cur][next],
			DurationMS: r.durMS[cur][next],
		})
		cur = next
	}
	steps = append(steps, Step{Start: flagPos, End: flagPos})
	return Route{Steps: steps}
}

// NodePos returns the position of a road-network node.
func (r *TableRouter) NodePos(nodeID int) Pos {
	nd, ok := r.nodes[nodeID]
	if !ok {
		panic(fmt.Sprintf("router: unknown node %d", nodeID))
	}
	return Pos{NodeID: nd.ID, Lon: nd.Lon, Lat: nd.Lat}
}

// VehicleStationID returns the node id of the i-th vehicle station.
func (r *TableRouter) VehicleStationID(i int) int {
	return r.stations[i]
}

// NumVehicleStations returns the number of configured vehicle stations.
func (r *TableRouter) NumVehicleStations() int {
	return len(r.stations)
}

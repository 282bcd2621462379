// Ingests the road-network graph from CSV: os.Open + csv.NewReader + an
// io.EOF loop, with per-row strconv parsing and row-indexed error messages.

package sim

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// NetworkNode is one row of the nodes CSV: an id plus longitude/latitude.
type NetworkNode struct {
	ID  int
	Lon float64
	Lat float64
}

// NetworkEdge is one row of the edges CSV: a directed edge between two node
// ids with its distance and travel time.
type NetworkEdge struct {
	From       int
	To         int
	DistanceMM int64
	DurationMS int64
}

var nodeColumns = []string{"node_id", "lon", "lat"}
var edgeColumns = []string{"from", "to", "distance_mm", "duration_ms"}

// LoadNetworkNodes reads a nodes CSV (header row: node_id,lon,lat).
func LoadNetworkNodes(path string) ([]NetworkNode, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening network nodes: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("reading nodes header: %w", err)
	}

	var nodes []NetworkNode
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading nodes row: %w", err)
		}
		if len(row) < len(nodeColumns) {
			return nil, fmt.Errorf("nodes row has %d columns, expected %d", len(row), len(nodeColumns))
		}
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("parsing node_id %q: %w", row[0], err)
		}
		lon, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing lon %q: %w", row[1], err)
		}
		lat, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing lat %q: %w", row[2], err)
		}
		nodes = append(nodes, NetworkNode{ID: id, Lon: lon, Lat: lat})
	}
	return nodes, nil
}

// LoadNetworkEdges reads an edges CSV (header row: from,to,distance_mm,duration_ms).
func LoadNetworkEdges(path string) ([]NetworkEdge, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening network edges: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("reading edges header: %w", err)
	}

	var edges []NetworkEdge
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading edges row: %w", err)
		}
		if len(row) < len(edgeColumns) {
			return nil, fmt.Errorf("edges row has %d columns, expected %d", len(row), len(edgeColumns))
		}
		from, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("parsing from %q: %w", row[0], err)
		}
		to, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("parsing to %q: %w", row[1], err)
		}
		distMM, err := strconv.ParseInt(row[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing distance_mm %q: %w", row[2], err)
		}
		durMS, err := strconv.ParseInt(row[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing duration_ms %q: %w", row[3], err)
		}
		edges = append(edges, NetworkEdge{From: from, To: to, DistanceMM: distMM, DurationMS: durMS})
	}
	return edges, nil
}

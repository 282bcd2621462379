// Implements TraceDemand, the one concrete DemandGenerator (demand.go) this
// program ships: requests loaded once from a demand-trace CSV and released
// into the epoch loop in request-time order, sub-sampled by request.density.

package sim

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

var demandColumns = []string{"request_time_ms", "origin", "destination", "date"}

// TraceDemand serves Requests from a pre-loaded, time-sorted trace,
// releasing every request whose RequestTimeMS is <= the target time and has
// not yet been released.
type TraceDemand struct {
	all    []Request
	cursor int
}

// LoadTraceDemand reads a demand-trace CSV (header row:
// request_time_ms,origin,destination,date) and returns a TraceDemand that
// releases 1-in-stride requests, where stride = round(1/density). density
// <= 0 or >= 1 disables sub-sampling.
func LoadTraceDemand(path string, density float64) (*TraceDemand, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening demand trace: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("reading demand trace header: %w", err)
	}

	stride := 1
	if density > 0 && density < 1 {
		stride = int(1.0/density + 0.5)
		if stride < 1 {
			stride = 1
		}
	}

	var all []Request
	row := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading demand trace row: %w", err)
		}
		if len(rec) < len(demandColumns) {
			return nil, fmt.Errorf("demand trace row has %d columns, expected %d", len(rec), len(demandColumns))
		}
		row++
		if row%stride != 0 {
			continue
		}
		reqTime, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing request_time_ms %q: %w", rec[0], err)
		}
		origin, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("parsing origin %q: %w", rec[1], err)
		}
		destination, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("parsing destination %q: %w", rec[2], err)
		}
		all = append(all, Request{
			Origin:        origin,
			Destination:   destination,
			RequestTimeMS: reqTime,
			Date:          rec[3],
		})
	}

	return &TraceDemand{all: all}, nil
}

// Generate releases every not-yet-released request whose RequestTimeMS is
// <= targetSystemTimeMS. The trace is assumed sorted by RequestTimeMS, so
// this is a simple cursor advance.
func (t *TraceDemand) Generate(targetSystemTimeMS int64) []Request {
	var out []Request
	for t.cursor < len(t.all) && t.all[t.cursor].RequestTimeMS <= targetSystemTimeMS {
		out = append(out, t.all[t.cursor])
		t.cursor++
	}
	return out
}

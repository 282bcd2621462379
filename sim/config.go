// Groups the static, load-once run configuration into per-concern structs.
// cmd/config.go decodes a YAML file into Config with strict field checking.

package sim

// FleetConfig groups fleet-size parameters.
type FleetConfig struct {
	Size     int `yaml:"size"`     // number of vehicles
	Capacity int `yaml:"capacity"` // per-vehicle capacity
}

// RequestConfig groups demand and order-deadline parameters.
type RequestConfig struct {
	Density   float64 `yaml:"density"`   // fraction of trace consumed (stride = 1/density)
	MaxWaitS  float64 `yaml:"max_wait_s"` // MaxWait, seconds
	MaxDetour float64 `yaml:"max_detour"` // MaxDetour, dimensionless >= 1
}

// DeadlineConfig derives the DeadlineConfig (order.go) used by NewOrder.
func (r RequestConfig) DeadlineConfig() DeadlineConfig {
	return DeadlineConfig{MaxWaitMS: int64(r.MaxWaitS * 1000), MaxDetour: r.MaxDetour}
}

// SimConfig groups epoch timing and trace-anchor parameters.
type SimConfig struct {
	StartTime   string  `yaml:"start_time"` // wall-clock HH:MM:SS anchor for the trace
	CycleS      float64 `yaml:"cycle_s"`    // epoch delta in seconds
	WarmupMin   float64 `yaml:"warmup_min"`
	MainMin     float64 `yaml:"main_min"`
	WinddownMin float64 `yaml:"winddown_min"`
}

// CycleMS returns the epoch length in milliseconds.
func (s SimConfig) CycleMS() int64 {
	return int64(s.CycleS * 1000)
}

// HorizonMS returns the total simulated duration in milliseconds across
// warmup + main + winddown.
func (s SimConfig) HorizonMS() int64 {
	totalMin := s.WarmupMin + s.MainMin + s.WinddownMin
	return int64(totalMin * 60 * 1000)
}

// MainStartMS returns the clock time at which the warmup phase ends and the
// main measurement window begins.
func (s SimConfig) MainStartMS() int64 {
	return int64(s.WarmupMin * 60 * 1000)
}

// MainEndMS returns the clock time at which the main measurement window
// ends and the winddown phase begins.
func (s SimConfig) MainEndMS() int64 {
	return s.MainStartMS() + int64(s.MainMin*60*1000)
}

// DispatchConfig groups assignment-strategy and rebalancer selection.
type DispatchConfig struct {
	Dispatcher    string  `yaml:"dispatcher"` // "GI", "SBA", "OSP"
	Rebalancer    string  `yaml:"rebalancer"` // "NONE", "NR", "RVS", "NPO"
	Seed          int64   `yaml:"seed"`       // PRNG seed for RVS rebalancing
	TripBudgetS   float64 `yaml:"trip_budget_s"`
}

// TripBudgetOrDefault returns the per-vehicle OSP enumeration cutoff, defaulting to
// DefaultTripBudget when unset.
func (d DispatchConfig) TripBudgetOrDefault() TripBudget {
	if d.TripBudgetS <= 0 {
		return DefaultTripBudget
	}
	return TripBudget{Cutoff: durationFromSeconds(d.TripBudgetS)}
}

// DataConfig names the on-disk inputs/outputs the core's collaborators
// (router, demand generator, datalog sink) are built from. A runnable
// program needs concrete paths for them somewhere, and the CLI surface
// takes a single config file, so they live here alongside the core
// sections.
type DataConfig struct {
	NetworkNodesPath string `yaml:"network_nodes_path"`
	NetworkEdgesPath string `yaml:"network_edges_path"`
	DemandTracePath  string `yaml:"demand_trace_path"`
	VehicleStations  []int  `yaml:"vehicle_stations"`
	DatalogPath      string `yaml:"datalog_path"` // optional; empty disables emission
}

// Config is the full static configuration for one simulation run.
type Config struct {
	Fleet    FleetConfig    `yaml:"fleet"`
	Request  RequestConfig  `yaml:"request"`
	Sim      SimConfig      `yaml:"sim"`
	Dispatch DispatchConfig `yaml:"dispatch"`
	Data     DataConfig     `yaml:"data"`
}

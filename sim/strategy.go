// Defines the AssignmentStrategy interface shared by GI, SBA and OSP
// and a name-based factory, following the same construct-by-name,
// panic-on-unknown-name convention used elsewhere in this package.

package sim

import "fmt"

// AssignmentStrategy decides which vehicle serves which outstanding
// request(s) this epoch and commits the winning schedules.
type AssignmentStrategy interface {
	// Assign runs one epoch's assignment pass. newOrders are the orders
	// that materialised this epoch (already appended to orders); vehicles
	// and orders are mutated in place with committed schedules and status
	// transitions.
	Assign(newOrderIDs []int, vehicles []*Vehicle, orders []Order, router Router, systemTimeMS int64, cfg DispatchConfig, solver Solver)
}

// NewAssignmentStrategy creates an AssignmentStrategy by name. Valid names:
// "GI", "SBA", "OSP". Panics on unrecognized names: invalid configuration
// is a startup error, not a runtime condition to recover from.
func NewAssignmentStrategy(name string) AssignmentStrategy {
	switch name {
	case "GI":
		return &GreedyInsertion{}
	case "SBA":
		return &SingleBatchAssignment{}
	case "OSP":
		return &OptimalSchedulePool{}
	default:
		panic(fmt.Sprintf("unknown dispatcher %q", name))
	}
}

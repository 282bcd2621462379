// Package sim provides the core discrete-epoch simulation engine for a
// shared mobility-on-demand fleet dispatcher.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - order.go: Order lifecycle (Pending -> Picking -> Onboard -> Complete / Walkaway)
//   - vehicle.go: Vehicle and Waypoint, the committed schedule a vehicle carries
//   - epoch.go: the epoch loop that drives advance -> ingest -> assign -> rebalance -> log
//
// # Architecture
//
// The scheduling kernel (cost.go, validate.go, insertion.go, basicschedule.go,
// tripenum.go) is shared by all three assignment strategies
// (strategy_gi.go, strategy_sba.go, strategy_osp.go). Strategies differ only
// in which (vehicle, trip) pairs they enumerate and how they resolve
// conflicts between pairs (solver.go).
//
// Collaborators the kernel consumes as pure queries are defined as
// interfaces (router.go, demand.go) with one concrete CSV-backed
// implementation each (router_table.go, trace_csv.go) so the whole program
// runs end to end without an external service.
//
// # Key Interfaces
//
//   - Router: route(origin, destination, mode) lookups the scheduler treats as ground truth
//   - DemandGenerator: materialises newly arrived requests for an epoch
//   - AssignmentStrategy: GI / SBA / OSP, sharing the scheduling kernel
//   - Solver: 0/1 assignment ILP with a greedy fallback
//   - Rebalancer: idle-vehicle repositioning policy
package sim

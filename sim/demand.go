// Defines the DemandGenerator collaborator contract: a pure
// query the epoch loop calls once per epoch to materialise newly arrived
// requests. trace_csv.go provides the one concrete implementation this
// program ships.

package sim

// DemandGenerator returns the requests that newly materialise at
// targetSystemTimeMS. Implementations are pure with respect to simulation
// state: repeated calls with the same or increasing targetSystemTimeMS
// must not re-emit a request already returned.
type DemandGenerator interface {
	Generate(targetSystemTimeMS int64) []Request
}

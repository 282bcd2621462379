// Prints the end-of-run summary report: a fixed section header followed by
// labelled, right-padded fmt.Printf lines, averages guarded by a
// completed-count check.

package sim

import "fmt"

// Print displays aggregated fleet metrics at the end of a run.
func (m *Metrics) Print() {
	fmt.Println("=== Dispatch Simulation Metrics ===")
	fmt.Printf("Epochs Run           : %d\n", m.EpochsRun)
	fmt.Printf("Pickup Events        : %d\n", m.PickupEvents)
	fmt.Printf("Dropoff Events       : %d\n", m.DropoffEvents)
	fmt.Printf("Completed Orders     : %d\n", m.CompletedOrders)
	fmt.Printf("Walkaway Orders      : %d\n", m.WalkawayOrders)
	fmt.Printf("Pending At End       : %d\n", m.PendingAtEnd)
	if m.CompletedForAvg > 0 {
		fmt.Printf("Average Wait         : %.2f ms\n", m.AvgWaitMS())
		fmt.Printf("Average Trip         : %.2f ms\n", m.AvgTripMS())
		fmt.Printf("Average Detour       : %.2f ms\n", m.AvgDetourMS())
	}
	fmt.Printf("Loaded Distance      : %d mm over %d ms\n", m.LoadedDistanceMM, m.LoadedDurationMS)
	fmt.Printf("Empty Distance       : %d mm over %d ms\n", m.EmptyDistanceMM, m.EmptyDurationMS)
	fmt.Printf("Rebalancing Distance : %d mm over %d ms\n", m.ReblDistanceMM, m.ReblDurationMS)
}

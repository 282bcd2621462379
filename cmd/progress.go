// Logs coarse run progress at a fixed epoch cadence, leaving per-epoch
// detail to sim's own Debug-level logging (epoch.go). Grounded on the
// teacher's cmd/root.go habit of a single logrus.Infof announcing
// simulation parameters before Run() and another after it completes.

package cmd

import (
	"github.com/sirupsen/logrus"

	sim "github.com/modfleet/dispatch-sim/sim"
)

// reportEvery controls how many epochs elapse between progress lines.
const reportEvery = 200

// RunWithProgress drives engine epoch by epoch, logging an Info line every
// reportEvery epochs, then finalizes the metrics (order tallies and fleet
// mileage). It does not print the report; the caller does that.
func RunWithProgress(engine *sim.Engine) {
	for engine.Clock <= engine.HorizonMS {
		engine.Tick()
		if engine.Metrics.EpochsRun%reportEvery == 0 {
			logrus.Infof("progress: t=%dms epochs=%d completed=%d walkaway=%d [%s]",
				engine.Clock, engine.Metrics.EpochsRun, engine.Metrics.CompletedOrders, engine.Metrics.WalkawayOrders,
				phaseLabel(engine))
		}
		engine.Clock += engine.CycleMS
	}
	engine.Metrics.Finalize(engine.Orders, engine.MainStartMS, engine.MainEndMS)
	for _, v := range engine.Vehicles {
		engine.Metrics.AccumulateVehicle(v)
	}
}

// phaseLabel names the current phase of the run, mirroring the three
// progress labels ("Warm Up" / "Main Study" / "Cool Down") the original
// platform threads through its own progress bar.
func phaseLabel(engine *sim.Engine) string {
	switch {
	case engine.Clock < engine.MainStartMS:
		return "Warm Up"
	case engine.Clock < engine.MainEndMS:
		return "Main Study"
	default:
		return "Cool Down"
	}
}

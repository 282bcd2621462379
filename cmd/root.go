// cmd/root.go
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/modfleet/dispatch-sim/sim"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "dispatch-sim",
	Short: "Batch dispatcher simulator for a shared mobility-on-demand fleet",
}

var runCmd = &cobra.Command{
	Use:   "run <config.yaml>",
	Short: "Run one simulation from a config file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := LoadConfig(args[0])
		if err != nil {
			logrus.Fatalf("loading config: %v", err)
		}

		engine, closeDatalog, err := buildEngine(cfg)
		if err != nil {
			logrus.Fatalf("building simulation: %v", err)
		}
		if closeDatalog != nil {
			defer closeDatalog()
		}

		logrus.Infof("starting simulation: fleet=%d capacity=%d dispatcher=%s rebalancer=%s horizon=%dms cycle=%dms",
			cfg.Fleet.Size, cfg.Fleet.Capacity, cfg.Dispatch.Dispatcher, cfg.Dispatch.Rebalancer,
			engine.HorizonMS, engine.CycleMS)

		RunWithProgress(engine)

		engine.Metrics.Print()
		logrus.Info("simulation complete")
	},
}

// buildEngine wires a sim.Engine from cfg's data paths: network, demand
// trace and (optional) datalog sink. The returned close func flushes the
// datalog sink, if any, and is nil when datalog is disabled.
func buildEngine(cfg *sim.Config) (*sim.Engine, func(), error) {
	nodes, err := sim.LoadNetworkNodes(cfg.Data.NetworkNodesPath)
	if err != nil {
		return nil, nil, err
	}
	edges, err := sim.LoadNetworkEdges(cfg.Data.NetworkEdgesPath)
	if err != nil {
		return nil, nil, err
	}
	router, err := sim.NewTableRouter(nodes, edges, cfg.Data.VehicleStations)
	if err != nil {
		return nil, nil, err
	}

	demand, err := sim.LoadTraceDemand(cfg.Data.DemandTracePath, cfg.Request.Density)
	if err != nil {
		return nil, nil, err
	}

	vehicles, err := sim.NewFleet(cfg.Fleet, router)
	if err != nil {
		return nil, nil, err
	}

	rng := sim.NewPartitionedRNG(cfg.Dispatch.Seed)
	engine := sim.NewEngine(*cfg, vehicles, router, demand, rng)

	var closeFn func()
	if cfg.Data.DatalogPath != "" {
		f, err := os.Create(cfg.Data.DatalogPath)
		if err != nil {
			return nil, nil, err
		}
		sink := sim.NewDatalogSink(f)
		engine.Datalog = sink
		closeFn = func() {
			if err := sink.Close(); err != nil {
				logrus.Warnf("closing datalog: %v", err)
			}
			_ = f.Close()
		}
	}

	return engine, closeFn, nil
}

// Execute runs the root command, exiting with status 1 on any error
// (missing/invalid config, unreadable data files).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	rootCmd.AddCommand(runCmd)
}

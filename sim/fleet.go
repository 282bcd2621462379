// Builds the initial fleet for a run: fleet.size vehicles of fleet.capacity,
// seeded at the configured vehicle stations in round-robin order so every
// station hosts roughly the same number of vehicles at t=0.

package sim

import "fmt"

// NewFleet constructs cfg.Size vehicles of cfg.Capacity, placed at
// router's vehicle stations in round-robin order. Requires at least one
// configured vehicle station.
func NewFleet(cfg FleetConfig, router Router) ([]*Vehicle, error) {
	n := router.NumVehicleStations()
	if n == 0 {
		return nil, fmt.Errorf("fleet: no vehicle stations configured")
	}
	vehicles := make([]*Vehicle, cfg.Size)
	for i := 0; i < cfg.Size; i++ {
		stationNode := router.VehicleStationID(i % n)
		vehicles[i] = NewVehicle(i, router.NodePos(stationNode), cfg.Capacity)
	}
	return vehicles, nil
}

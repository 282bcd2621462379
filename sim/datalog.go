// Emits a per-epoch YAML snapshot frame of every vehicle and order, for
// offline inspection and replay debugging: a streaming multi-document
// yaml.v3 encoder rather than a one-shot load/decode.

package sim

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// VehicleFrame is one vehicle's state as recorded in a datalog frame.
type VehicleFrame struct {
	ID           int    `yaml:"id"`
	NodeID       int    `yaml:"node_id"`
	Status       string `yaml:"status"`
	Load         int    `yaml:"load"`
	ScheduleLen  int    `yaml:"schedule_len"`
}

// OrderFrame is one order's state as recorded in a datalog frame.
type OrderFrame struct {
	ID     int    `yaml:"id"`
	Status string `yaml:"status"`
}

// EpochFrame is one epoch's full snapshot.
type EpochFrame struct {
	SystemTimeMS int64          `yaml:"system_time_ms"`
	Vehicles     []VehicleFrame `yaml:"vehicles"`
	Orders       []OrderFrame   `yaml:"orders"`
}

// DatalogSink writes one YAML document per epoch to an underlying writer.
type DatalogSink struct {
	enc *yaml.Encoder
}

// NewDatalogSink wraps w in a multi-document YAML encoder.
func NewDatalogSink(w io.Writer) *DatalogSink {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &DatalogSink{enc: enc}
}

// Emit writes one EpochFrame document summarizing vehicles and orders at
// systemTimeMS.
func (d *DatalogSink) Emit(systemTimeMS int64, vehicles []*Vehicle, orders []Order) error {
	frame := EpochFrame{
		SystemTimeMS: systemTimeMS,
		Vehicles:     make([]VehicleFrame, len(vehicles)),
		Orders:       make([]OrderFrame, len(orders)),
	}
	for i, v := range vehicles {
		frame.Vehicles[i] = VehicleFrame{
			ID:          v.ID,
			NodeID:      v.Pos.NodeID,
			Status:      v.Status.String(),
			Load:        v.Load(),
			ScheduleLen: len(v.Schedule),
		}
	}
	for i := range orders {
		frame.Orders[i] = OrderFrame{ID: orders[i].ID, Status: orders[i].Status.String()}
	}
	if err := d.enc.Encode(frame); err != nil {
		return fmt.Errorf("encoding datalog frame at t=%d: %w", systemTimeMS, err)
	}
	return nil
}

// Close flushes and closes the underlying encoder.
func (d *DatalogSink) Close() error {
	return d.enc.Close()
}

package sim

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDatalogSink_EmitWritesOneFramePerCall(t *testing.T) {
	var buf bytes.Buffer
	sink := NewDatalogSink(&buf)

	v := NewVehicle(0, Pos{NodeID: 1}, 2)
	v.OnboardOrderIDs[0] = true
	orders := []Order{{ID: 0, Status: Onboard}}

	if err := sink.Emit(0, []*Vehicle{v}, orders); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := sink.Emit(30_000, []*Vehicle{v}, orders); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	docs := strings.Split(strings.TrimSpace(buf.String()), "---")
	nonEmpty := 0
	for _, d := range docs {
		if strings.TrimSpace(d) != "" {
			nonEmpty++
		}
	}
	if nonEmpty != 2 {
		t.Errorf("expected 2 YAML documents, got %d in:\n%s", nonEmpty, buf.String())
	}

	var frame EpochFrame
	dec := yaml.NewDecoder(bytes.NewReader(buf.Bytes()))
	if err := dec.Decode(&frame); err != nil {
		t.Fatalf("decoding first frame: %v", err)
	}
	if frame.SystemTimeMS != 0 {
		t.Errorf("first frame system_time_ms = %d, want 0", frame.SystemTimeMS)
	}
	if len(frame.Vehicles) != 1 || frame.Vehicles[0].Load != 1 {
		t.Errorf("frame.Vehicles = %+v, want a single vehicle with load 1", frame.Vehicles)
	}
	if len(frame.Orders) != 1 || frame.Orders[0].Status != "Onboard" {
		t.Errorf("frame.Orders = %+v, want a single Onboard order", frame.Orders)
	}
}

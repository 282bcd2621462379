package sim

import (
	"io"
	"os"
	"strings"
	"testing"
)

func TestMetrics_PrintIncludesAveragesOnlyWhenCompleted(t *testing.T) {
	capture := func(f func()) string {
		old := os.Stdout
		r, w, err := os.Pipe()
		if err != nil {
			t.Fatalf("os.Pipe: %v", err)
		}
		os.Stdout = w
		f()
		_ = w.Close()
		os.Stdout = old
		out, _ := io.ReadAll(r)
		return string(out)
	}

	m := NewMetrics()
	out := capture(m.Print)
	if strings.Contains(out, "Average Wait") {
		t.Error("Print must omit averages when no orders completed")
	}

	m.Finalize([]Order{{ID: 0, Status: Complete, RequestTimeMS: 0, PickupTimeMS: 1000, DropoffTimeMS: 2000, ShortestTravelTimeMS: 500}}, 0, 1<<62)
	out = capture(m.Print)
	if !strings.Contains(out, "Average Wait") {
		t.Error("Print must include averages once at least one order completed")
	}
}

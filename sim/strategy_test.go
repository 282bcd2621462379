package sim

import "testing"

func TestNewAssignmentStrategy_KnownNames(t *testing.T) {
	cases := map[string]AssignmentStrategy{
		"GI":  &GreedyInsertion{},
		"SBA": &SingleBatchAssignment{},
		"OSP": &OptimalSchedulePool{},
	}
	for name, want := range cases {
		got := NewAssignmentStrategy(name)
		if got == nil {
			t.Fatalf("NewAssignmentStrategy(%q) returned nil", name)
		}
		switch want.(type) {
		case *GreedyInsertion:
			if _, ok := got.(*GreedyInsertion); !ok {
				t.Errorf("NewAssignmentStrategy(%q) = %T, want *GreedyInsertion", name, got)
			}
		case *SingleBatchAssignment:
			if _, ok := got.(*SingleBatchAssignment); !ok {
				t.Errorf("NewAssignmentStrategy(%q) = %T, want *SingleBatchAssignment", name, got)
			}
		case *OptimalSchedulePool:
			if _, ok := got.(*OptimalSchedulePool); !ok {
				t.Errorf("NewAssignmentStrategy(%q) = %T, want *OptimalSchedulePool", name, got)
			}
		}
	}
}

func TestNewAssignmentStrategy_PanicsOnUnknownName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an unknown dispatcher name")
		}
	}()
	NewAssignmentStrategy("BOGUS")
}

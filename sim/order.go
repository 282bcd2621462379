// Defines Request (raw trace input) and Order (the derived lifecycle
// object the dispatcher schedules). Tracks status transitions, pickup/
// drop-off deadlines and the timestamps filled in as events fire.

package sim

// Request is raw input from the demand trace: an origin and destination
// node, the request timestamp in milliseconds relative to simulation epoch
// zero, and an optional wall-clock date string carried through from the
// trace for reporting only.
type Request struct {
	Origin        int
	Destination   int
	RequestTimeMS int64
	Date          string
}

// OrderStatus is the lifecycle state of an Order.
type OrderStatus int

const (
	// Pending: materialised, not yet assigned to a vehicle.
	Pending OrderStatus = iota
	// Picking: assigned to a vehicle, Pickup waypoint committed but not yet fired.
	Picking
	// Onboard: Pickup event fired, Dropoff waypoint still pending.
	Onboard
	// Complete: Dropoff event fired.
	Complete
	// Walkaway: terminal state for an order whose pickup deadline expired while Pending.
	Walkaway
)

func (s OrderStatus) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Picking:
		return "Picking"
	case Onboard:
		return "Onboard"
	case Complete:
		return "Complete"
	case Walkaway:
		return "Walkaway"
	default:
		return "Unknown"
	}
}

// walkawayAgeCapMS is the hard cap on a Pending order's age, in addition to
// its pickup deadline, beyond which it is forced into Walkaway even if
// max_pickup_time_ms has not technically elapsed (guards against a
// degenerate deadline formula near t=0).
const walkawayAgeCapMS = 150_000

// Order is the lifecycle object derived from a Request: it carries a dense
// assignment-order id, origin/destination positions, status, the shortest
// direct travel time used to derive deadlines, the deadlines themselves,
// and the pickup/drop-off timestamps filled in as events fire.
type Order struct {
	ID                   int
	Origin               Pos
	Destination          Pos
	Status               OrderStatus
	RequestTimeMS        int64
	ShortestTravelTimeMS int64
	MaxPickupMS          int64
	MaxDropoffMS         int64
	PickupTimeMS         int64 // -1 until set
	DropoffTimeMS        int64 // -1 until set
}

// DeadlineConfig groups the two global constraints used to derive an
// Order's pickup and drop-off deadlines from its shortest direct travel
// time.
type DeadlineConfig struct {
	MaxWaitMS  int64   // e.g. 300_000
	MaxDetour  float64 // dimensionless >= 1, e.g. 1.3
}

// NewOrder derives an Order from a Request and its shortest direct travel
// time, computing max_pickup_time_ms and max_dropoff_time_ms .
func NewOrder(id int, origin, destination Pos, req Request, shortestTravelTimeMS int64, cfg DeadlineConfig) Order {
	maxPickup := req.RequestTimeMS + minInt64(cfg.MaxWaitMS, int64(float64(shortestTravelTimeMS)*(2-cfg.MaxDetour)))
	extraDetour := (maxPickup - req.RequestTimeMS) + int64(float64(shortestTravelTimeMS)*(cfg.MaxDetour-1))
	maxDropoff := req.RequestTimeMS + shortestTravelTimeMS + minInt64(2*cfg.MaxWaitMS, extraDetour)
	return Order{
		ID:                   id,
		Origin:               origin,
		Destination:          destination,
		Status:               Pending,
		RequestTimeMS:        req.RequestTimeMS,
		ShortestTravelTimeMS: shortestTravelTimeMS,
		MaxPickupMS:          maxPickup,
		MaxDropoffMS:         maxDropoff,
		PickupTimeMS:         -1,
		DropoffTimeMS:        -1,
	}
}

// ShouldWalkaway reports whether a Pending order must transition to
// Walkaway at systemTimeMS: either its pickup deadline has passed, or its
// age since request time exceeds the hard cap, whichever comes first.
func (o *Order) ShouldWalkaway(systemTimeMS int64) bool {
	if o.Status != Pending {
		return false
	}
	if systemTimeMS > o.MaxPickupMS {
		return true
	}
	return systemTimeMS-o.RequestTimeMS > walkawayAgeCapMS
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

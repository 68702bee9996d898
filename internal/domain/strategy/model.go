package strategy

import "github.com/pitwallhq/pitwall/internal/domain/telemetry"

// Race describes one event. Result lines are ordered by finishing
// position, best first, in the "P<rank>: <driver> (<team>)" shape.
type Race struct {
	ID          int
	CircuitName string
	Date        string
	Weather     string
	Result      []string
}

// Plan is the pit, tyre and fuel plan for a race. It can be replaced
// without touching the rest of the strategy.
type Plan struct {
	PitStopSchedule []int
	TyreStrategy    []string
	FuelPlan        string
}

// Strategy is the race aggregate, keyed by the embedded race's ID.
type Strategy struct {
	Race          Race
	Plan          Plan
	LiveTelemetry telemetry.Data
}

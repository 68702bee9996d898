package performance

import (
	"github.com/pitwallhq/pitwall/internal/domain/driver"
	"github.com/pitwallhq/pitwall/internal/domain/telemetry"
)

type LapTime struct {
	Minutes      int
	Seconds      int
	Milliseconds int
}

// Performance is one driver's lap record plus a live telemetry sample,
// keyed by the embedded driver's ID. Lap order is significant.
type Performance struct {
	Driver        driver.Driver
	LapTimes      []LapTime
	LiveTelemetry telemetry.Data
}

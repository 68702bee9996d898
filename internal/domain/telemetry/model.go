package telemetry

// Data is a live telemetry sample attached to race strategies and
// driver performance records.
type Data struct {
	Speed       float64
	RPM         int
	Temperature float64
}

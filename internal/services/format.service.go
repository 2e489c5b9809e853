package services

import "fmt"

// NoTraffic is shown for rates below one byte per second
const NoTraffic = "--"

var rateUnits = []string{"KB/s", "MB/s", "GB/s"}

// HumanizeRate renders a bytes/sec value using 1024-based units.
// The ladder stops at GB/s no matter how large the value is.
func HumanizeRate(bps float64) string {
	// NaN fails every comparison and lands here as well
	if !(bps >= 1.0) {
		return NoTraffic
	}
	if bps < 1024.0 {
		return fmt.Sprintf("%.0f B/s", bps)
	}

	value := bps / 1024.0
	unit := 0
	for value >= 1024.0 && unit < len(rateUnits)-1 {
		value /= 1024.0
		unit++
	}

	if value >= 100.0 {
		return fmt.Sprintf("%.0f %s", value, rateUnits[unit])
	}
	return fmt.Sprintf("%.1f %s", value, rateUnits[unit])
}

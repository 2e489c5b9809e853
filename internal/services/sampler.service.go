package services

import (
	"strings"

	"nettui/internal/models"
)

// virtualPrefixes name loopback, container and bridge style interfaces
var virtualPrefixes = []string{"lo", "veth", "docker", "br-", "vmnet", "virbr"}

// IsVirtual reports whether an interface name belongs to a loopback,
// container or bridge device
func IsVirtual(name string) bool {
	for _, prefix := range virtualPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// CollectRows turns counter deltas measured over elapsedSeconds into rate rows.
// A non-positive elapsed time is treated as one second. Virtual interfaces are
// dropped unless cfg.ShowVirtual is set. The result is not ordered.
func CollectRows(elapsedSeconds float64, deltas []models.InterfaceDelta, cfg models.Config) []models.InterfaceRow {
	// also catches NaN
	if !(elapsedSeconds > 0) {
		elapsedSeconds = 1
	}

	rows := make([]models.InterfaceRow, 0, len(deltas))

	for _, delta := range deltas {
		if !cfg.ShowVirtual && IsVirtual(delta.Interface) {
			continue
		}

		rows = append(rows, models.InterfaceRow{
			Interface:  delta.Interface,
			RxRate:     float64(delta.BytesRecv) / elapsedSeconds,
			TxRate:     float64(delta.BytesSent) / elapsedSeconds,
			PacketsIn:  delta.PacketsRecv,
			PacketsOut: delta.PacketsSent,
			ErrorsIn:   delta.ErrorsIn,
			ErrorsOut:  delta.ErrorsOut,
		})
	}

	return rows
}

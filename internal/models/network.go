package models

// InterfaceCounters holds the cumulative counters of a network interface
type InterfaceCounters struct {
	Interface   string `json:"interface"`
	BytesSent   uint64 `json:"bytes_sent"`
	BytesRecv   uint64 `json:"bytes_recv"`
	PacketsSent uint64 `json:"packets_sent"`
	PacketsRecv uint64 `json:"packets_recv"`
	ErrorsIn    uint64 `json:"errors_in"`
	ErrorsOut   uint64 `json:"errors_out"`
	DropsIn     uint64 `json:"drops_in"`
	DropsOut    uint64 `json:"drops_out"`
}

// InterfaceDelta is the traffic of one interface since the previous snapshot.
// Packet and error counts stay cumulative.
type InterfaceDelta struct {
	Interface   string `json:"interface"`
	BytesRecv   uint64 `json:"bytes_recv"`
	BytesSent   uint64 `json:"bytes_sent"`
	PacketsRecv uint64 `json:"packets_recv"`
	PacketsSent uint64 `json:"packets_sent"`
	ErrorsIn    uint64 `json:"errors_in"`
	ErrorsOut   uint64 `json:"errors_out"`
}

// InterfaceRow is one line of the live table, rebuilt every tick
type InterfaceRow struct {
	Interface  string  `json:"interface"`
	RxRate     float64 `json:"rx_rate"` // bytes/sec
	TxRate     float64 `json:"tx_rate"` // bytes/sec
	PacketsIn  uint64  `json:"packets_in"`
	PacketsOut uint64  `json:"packets_out"`
	ErrorsIn   uint64  `json:"errors_in"`
	ErrorsOut  uint64  `json:"errors_out"`
}

// Total returns the combined receive and transmit rate
func (r InterfaceRow) Total() float64 {
	return r.RxRate + r.TxRate
}

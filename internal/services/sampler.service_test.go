package services

import (
	"math"
	"testing"

	"nettui/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsVirtual(t *testing.T) {
	for _, name := range []string{"lo", "lo0", "veth1a2b", "docker0", "br-4f2a", "vmnet8", "virbr0"} {
		assert.True(t, IsVirtual(name), name)
	}
	for _, name := range []string{"eth0", "en0", "wlan0", "enp3s0", "utun2", "bridge0", ""} {
		assert.False(t, IsVirtual(name), name)
	}
}

func TestCollectRows_Rates(t *testing.T) {
	deltas := []models.InterfaceDelta{
		{Interface: "eth0", BytesRecv: 4096, BytesSent: 1024, PacketsRecv: 10, PacketsSent: 7, ErrorsIn: 1, ErrorsOut: 2},
	}

	rows := CollectRows(2, deltas, models.DefaultConfig())
	require.Len(t, rows, 1)

	assert.Equal(t, models.InterfaceRow{
		Interface:  "eth0",
		RxRate:     2048,
		TxRate:     512,
		PacketsIn:  10,
		PacketsOut: 7,
		ErrorsIn:   1,
		ErrorsOut:  2,
	}, rows[0])
}

func TestCollectRows_NonPositiveElapsed(t *testing.T) {
	deltas := []models.InterfaceDelta{
		{Interface: "eth0", BytesRecv: 3000, BytesSent: 12},
		{Interface: "wlan0", BytesRecv: 0, BytesSent: 77},
	}
	want := CollectRows(1.0, deltas, models.DefaultConfig())

	for _, elapsed := range []float64{0, -1, -0.0001, math.NaN()} {
		assert.Equal(t, want, CollectRows(elapsed, deltas, models.DefaultConfig()), "elapsed=%v", elapsed)
	}
}

func TestCollectRows_Idempotent(t *testing.T) {
	deltas := []models.InterfaceDelta{
		{Interface: "eth0", BytesRecv: 12345, BytesSent: 678},
		{Interface: "wlan0", BytesRecv: 1, BytesSent: 999999},
	}

	first := CollectRows(0.37, deltas, models.DefaultConfig())
	second := CollectRows(0.37, deltas, models.DefaultConfig())

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, math.Float64bits(first[i].RxRate), math.Float64bits(second[i].RxRate))
		assert.Equal(t, math.Float64bits(first[i].TxRate), math.Float64bits(second[i].TxRate))
	}
}

func TestCollectRows_ZeroTrafficKept(t *testing.T) {
	rows := CollectRows(1, []models.InterfaceDelta{{Interface: "eth1"}}, models.DefaultConfig())
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].RxRate)
	assert.Zero(t, rows[0].TxRate)
}

func TestCollectRows_VirtualFilter(t *testing.T) {
	deltas := []models.InterfaceDelta{
		{Interface: "lo0", BytesRecv: 100},
		{Interface: "docker0", BytesRecv: 100},
		{Interface: "eth0", BytesRecv: 100},
	}

	hidden := CollectRows(1, deltas, models.DefaultConfig())
	require.Len(t, hidden, 1)
	assert.Equal(t, "eth0", hidden[0].Interface)

	shown := CollectRows(1, deltas, models.DefaultConfig().ToggleVirtual())
	assert.Len(t, shown, 3)
}

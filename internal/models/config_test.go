package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 500*time.Millisecond, cfg.RefreshInterval)
	assert.False(t, cfg.ShowVirtual)
}

func TestConfig_Adjustments(t *testing.T) {
	cfg := DefaultConfig()

	faster := cfg.Faster()
	assert.Equal(t, 250*time.Millisecond, faster.RefreshInterval)
	// the original value is untouched
	assert.Equal(t, 500*time.Millisecond, cfg.RefreshInterval)

	assert.Equal(t, MinRefreshInterval, faster.Faster().RefreshInterval)
	assert.Equal(t, 750*time.Millisecond, cfg.Slower().RefreshInterval)

	slowest := cfg
	for i := 0; i < 100; i++ {
		slowest = slowest.Slower()
	}
	assert.Equal(t, MaxRefreshInterval, slowest.RefreshInterval)

	toggled := cfg.ToggleVirtual()
	assert.True(t, toggled.ShowVirtual)
	assert.False(t, cfg.ShowVirtual)
	assert.False(t, toggled.ToggleVirtual().ShowVirtual)
}

func TestInterfaceRow_Total(t *testing.T) {
	assert.Equal(t, 30.5, InterfaceRow{RxRate: 10, TxRate: 20.5}.Total())
}

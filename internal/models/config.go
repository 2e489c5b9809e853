package models

import "time"

const (
	DefaultRefreshInterval = 500 * time.Millisecond
	MinRefreshInterval     = 250 * time.Millisecond
	MaxRefreshInterval     = 5 * time.Second
	RefreshStep            = 250 * time.Millisecond
)

// Config is the display configuration the loop hands to every tick.
// Adjustments return a new value; a Config is never mutated in place.
type Config struct {
	RefreshInterval time.Duration `json:"refresh_interval"`
	ShowVirtual     bool          `json:"show_virtual"`
}

// DefaultConfig returns the configuration used at startup
func DefaultConfig() Config {
	return Config{
		RefreshInterval: DefaultRefreshInterval,
		ShowVirtual:     false,
	}
}

// Faster shortens the refresh interval by one step
func (c Config) Faster() Config {
	c.RefreshInterval = clampInterval(c.RefreshInterval - RefreshStep)
	return c
}

// Slower lengthens the refresh interval by one step
func (c Config) Slower() Config {
	c.RefreshInterval = clampInterval(c.RefreshInterval + RefreshStep)
	return c
}

// ToggleVirtual flips whether loopback, container and bridge interfaces are listed
func (c Config) ToggleVirtual() Config {
	c.ShowVirtual = !c.ShowVirtual
	return c
}

func clampInterval(d time.Duration) time.Duration {
	if d < MinRefreshInterval {
		return MinRefreshInterval
	}
	if d > MaxRefreshInterval {
		return MaxRefreshInterval
	}
	return d
}

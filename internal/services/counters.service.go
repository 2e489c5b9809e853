package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"nettui/internal/models"

	"github.com/benbjohnson/clock"
	"github.com/shirou/gopsutil/v3/net"
	"go.uber.org/zap"
)

// CounterReader returns the cumulative counters of every known interface.
// A read either succeeds for all interfaces or fails as a whole.
type CounterReader interface {
	ReadCounters(ctx context.Context) ([]models.InterfaceCounters, error)
}

// CounterReaderFunc adapts a plain function to CounterReader
type CounterReaderFunc func(ctx context.Context) ([]models.InterfaceCounters, error)

// ReadCounters calls f
func (f CounterReaderFunc) ReadCounters(ctx context.Context) ([]models.InterfaceCounters, error) {
	return f(ctx)
}

// PlatformCounters reads interface counters from the operating system
var PlatformCounters CounterReader = CounterReaderFunc(GetNetworkCounters)

// GetNetworkCounters returns cumulative statistics for all interfaces
func GetNetworkCounters(ctx context.Context) ([]models.InterfaceCounters, error) {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, err
	}

	statuses := make([]models.InterfaceCounters, 0, len(counters))

	for _, counter := range counters {
		statuses = append(statuses, models.InterfaceCounters{
			Interface:   counter.Name,
			BytesSent:   counter.BytesSent,
			BytesRecv:   counter.BytesRecv,
			PacketsSent: counter.PacketsSent,
			PacketsRecv: counter.PacketsRecv,
			ErrorsIn:    counter.Errin,
			ErrorsOut:   counter.Errout,
			DropsIn:     counter.Dropin,
			DropsOut:    counter.Dropout,
		})
	}

	return statuses, nil
}

// Snapshot holds the cumulative counters of all interfaces at one instant
type Snapshot struct {
	TakenAt  time.Time
	Counters map[string]models.InterfaceCounters
}

// NewSnapshot indexes counters by interface name
func NewSnapshot(takenAt time.Time, counters []models.InterfaceCounters) Snapshot {
	snapshot := Snapshot{
		TakenAt:  takenAt,
		Counters: make(map[string]models.InterfaceCounters, len(counters)),
	}
	for _, c := range counters {
		snapshot.Counters[c.Interface] = c
	}
	return snapshot
}

// DeltaSince returns the per-interface traffic between prev and s, sorted by
// interface name. Interfaces missing from prev have no baseline and report
// zero bytes; a counter that went backwards (reset or wrap) reports zero too.
func (s Snapshot) DeltaSince(prev Snapshot) []models.InterfaceDelta {
	deltas := make([]models.InterfaceDelta, 0, len(s.Counters))

	for name, current := range s.Counters {
		delta := models.InterfaceDelta{
			Interface:   name,
			PacketsRecv: current.PacketsRecv,
			PacketsSent: current.PacketsSent,
			ErrorsIn:    current.ErrorsIn,
			ErrorsOut:   current.ErrorsOut,
		}

		if previous, ok := prev.Counters[name]; ok {
			delta.BytesRecv = counterDelta(current.BytesRecv, previous.BytesRecv)
			delta.BytesSent = counterDelta(current.BytesSent, previous.BytesSent)
		}

		deltas = append(deltas, delta)
	}

	sort.Slice(deltas, func(i, j int) bool {
		return deltas[i].Interface < deltas[j].Interface
	})

	return deltas
}

func counterDelta(current, previous uint64) uint64 {
	if current < previous {
		return 0
	}
	return current - previous
}

// CounterSource keeps the last snapshot so every refresh can be turned into
// a delta. It is owned by a single loop and is not safe for concurrent use.
type CounterSource struct {
	reader   CounterReader
	clock    clock.Clock
	logger   *zap.Logger
	previous Snapshot
}

// NewCounterSource seeds a counter source with the current interface list
func NewCounterSource(ctx context.Context, reader CounterReader, clk clock.Clock, logger *zap.Logger) (*CounterSource, error) {
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cs := &CounterSource{
		reader: reader,
		clock:  clk,
		logger: logger,
	}

	seed, err := cs.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	cs.previous = seed

	logger.Debug("counter source seeded", zap.Int("interfaces", len(seed.Counters)))

	return cs, nil
}

// Refresh reads a fresh snapshot without touching the retained one
func (cs *CounterSource) Refresh(ctx context.Context) (Snapshot, error) {
	counters, err := cs.reader.ReadCounters(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read interface counters: %w", err)
	}
	return NewSnapshot(cs.clock.Now(), counters), nil
}

// Previous returns the retained snapshot the next delta is computed against
func (cs *CounterSource) Previous() Snapshot {
	return cs.previous
}

// Advance refreshes the counters, computes the delta against the retained
// snapshot and then retains the new snapshot for the next call. The returned
// duration is the time between the two snapshots.
func (cs *CounterSource) Advance(ctx context.Context) ([]models.InterfaceDelta, time.Duration, error) {
	current, err := cs.Refresh(ctx)
	if err != nil {
		return nil, 0, err
	}

	deltas := current.DeltaSince(cs.previous)
	elapsed := current.TakenAt.Sub(cs.previous.TakenAt)
	cs.previous = current

	return deltas, elapsed, nil
}

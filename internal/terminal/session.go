package terminal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gdamore/tcell/v2"
)

// ErrSessionClosed is returned when polling a session after Close
var ErrSessionClosed = errors.New("terminal session closed")

const eventBuffer = 16

// Session owns the terminal while the monitor is running: raw mode, the
// alternate screen and a hidden cursor. Open acquires all three and Close
// gives them back; callers defer Close right after a successful Open so the
// terminal is restored on every exit path, panics included.
type Session struct {
	screen tcell.Screen
	clock  clock.Clock
	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once
}

// Open creates a screen for the controlling terminal and takes it over
func Open(clk clock.Clock) (*Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	return OpenScreen(screen, clk)
}

// OpenScreen initializes screen and takes ownership of it
func OpenScreen(screen tcell.Screen, clk clock.Clock) (*Session, error) {
	if clk == nil {
		clk = clock.New()
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	s := &Session{
		screen: screen,
		clock:  clk,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
	}

	// ChannelEvents closes s.events once quit is closed or the screen is finalized
	go screen.ChannelEvents(s.events, s.quit)

	return s, nil
}

// Screen returns the screen to draw on
func (s *Session) Screen() tcell.Screen {
	return s.screen
}

// PollEvent waits at most timeout for the next terminal event.
// It returns nil, nil when nothing arrived in time.
func (s *Session) PollEvent(timeout time.Duration) (tcell.Event, error) {
	select {
	case <-s.quit:
		return nil, ErrSessionClosed
	default:
	}

	timer := s.clock.Timer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-s.events:
		if !ok {
			return nil, ErrSessionClosed
		}
		return ev, nil
	case <-timer.C:
		return nil, nil
	}
}

// Close leaves the alternate screen, disables raw mode and shows the cursor
// again. It is safe to call more than once.
func (s *Session) Close() error {
	s.once.Do(func() {
		close(s.quit)
		s.screen.Fini()
	})
	return nil
}

package board

import (
	"sync"
	"time"

	"github.com/kmaina/sokoboard/internal/utils"
)

// Refresher drives a board's random walk on a fixed cadence. The ticker
// keeps running while offline so the walk resumes on the same beat when
// connectivity returns; the board itself skips the offline ticks.
type Refresher struct {
	board    *Board
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

// StartRefresher begins ticking immediately. The interval defaults to
// the board profile's when zero.
func StartRefresher(b *Board, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = b.Interval()
	}
	if interval <= 0 {
		interval = 10 * time.Second
	}
	r := &Refresher{
		board:    b,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *Refresher) run() {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	utils.Log.Debugf("refresher started (interval: %s)", r.interval)
	for {
		select {
		case <-r.stop:
			utils.Log.Debug("refresher stopped")
			return
		case now := <-ticker.C:
			r.board.Tick(now)
		}
	}
}

// Stop halts the refresher and blocks until the tick goroutine has
// exited, then freezes the board so nothing mutates state afterwards.
// Safe to call more than once.
func (r *Refresher) Stop() {
	r.once.Do(func() {
		close(r.stop)
	})
	<-r.done
	r.board.Close()
}

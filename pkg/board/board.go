// Package board owns one screen's live marketplace state: the generated
// price records, farm stats, notification feed and external enrichment
// values, refreshed in place by a ticker-driven random walk.
package board

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/kmaina/sokoboard/pkg/market"
	"github.com/kmaina/sokoboard/pkg/notify"
)

// RateFetcher and WeatherFetcher are the two best-effort enrichment
// sources. Both are optional; a nil fetcher is simply skipped.
type RateFetcher interface {
	Rate(ctx context.Context, current float64) float64
}

type WeatherFetcher interface {
	Current(ctx context.Context) (Report, bool)
}

// Report mirrors the weather client's report so the board does not
// depend on the fetch package.
type Report struct {
	TemperatureC    int     `json:"temperature_c"`
	Description     string  `json:"description"`
	PrecipitationMM float64 `json:"precipitation_mm"`
}

// Config wires a board together.
type Config struct {
	Seeds     []market.Seed
	Profile   market.Profile
	RNG       *rand.Rand
	Rate      RateFetcher
	Weather   WeatherFetcher
	Timeframe market.Timeframe
}

// State is an immutable snapshot of the board.
type State struct {
	Prices        []market.PriceRecord  `json:"prices"`
	Stats         market.FarmStats      `json:"stats"`
	Notifications []notify.Notification `json:"notifications"`
	Rate          float64               `json:"rate"`
	Weather       *Report               `json:"weather,omitempty"`
	Online        bool                  `json:"online"`
	Loading       bool                  `json:"loading"`
	LastUpdated   time.Time             `json:"last_updated"`
	Timeframe     market.Timeframe      `json:"timeframe"`
}

// Board is the single state container for one screen. All mutation goes
// through full-value swaps under the mutex; readers get copies.
type Board struct {
	mu        sync.Mutex
	gen       *market.Generator
	rng       *rand.Rand
	seeds     []market.Seed
	feed      *notify.Feed
	rate      RateFetcher
	weather   WeatherFetcher
	defRate   float64
	prices    []market.PriceRecord
	stats     market.FarmStats
	fx        float64
	wx        *Report
	online    bool
	loading   bool
	closed    bool
	last      time.Time
	timeframe market.Timeframe
	mutations uint64
}

func New(cfg Config) *Board {
	if cfg.RNG == nil {
		cfg.RNG = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Timeframe == "" {
		cfg.Timeframe = market.TimeframeMonth
	}
	return &Board{
		gen:       market.NewGenerator(cfg.RNG, cfg.Profile),
		rng:       cfg.RNG,
		seeds:     cfg.Seeds,
		feed:      notify.NewFeed(cfg.RNG),
		rate:      cfg.Rate,
		weather:   cfg.Weather,
		fx:        0,
		online:    true,
		loading:   true,
		timeframe: cfg.Timeframe,
	}
}

// SetDefaultRate sets the FX value used until a fetch succeeds.
func (b *Board) SetDefaultRate(rate float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fx = rate
}

// Refresh fully regenerates the board from seed: both fetchers run
// concurrently (when online), records, stats and notifications are
// rebuilt, and the loading flag is always cleared on the way out, even
// when every fetch fails.
func (b *Board) Refresh(ctx context.Context) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.loading = true
	online := b.online
	currentRate := b.fx
	b.mu.Unlock()

	var (
		newRate = currentRate
		newWx   *Report
	)
	if online {
		var wg sync.WaitGroup
		if b.rate != nil {
			wg.Add(1)
			go func() {
				defer wg.Done()
				newRate = b.rate.Rate(ctx, currentRate)
			}()
		}
		if b.weather != nil {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if report, ok := b.weather.Current(ctx); ok {
					newWx = &report
				}
			}()
		}
		wg.Wait()
	}

	now := time.Now()

	b.mu.Lock()
	defer b.mu.Unlock()
	defer func() { b.loading = false }()
	if b.closed {
		return
	}
	b.prices = b.gen.Generate(b.seeds, now)
	b.stats = market.GenerateStats(b.rng, b.timeframe)
	b.fx = newRate
	if newWx != nil {
		b.wx = newWx
	}
	b.last = now
	b.mutations++
	b.feed.Sample(now)
}

// Tick advances the random walk one step. Offline or closed boards do
// not move; the walk resumes from its current values when connectivity
// returns.
func (b *Board) Tick(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || !b.online || len(b.prices) == 0 {
		return
	}
	b.prices = b.gen.Walk(b.prices, now)
	b.last = now
	b.mutations++
}

// SetOnline flips the connectivity gate.
func (b *Board) SetOnline(online bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.online = online
}

// SetTimeframe changes the stats timeframe and recomputes stats
// wholesale.
func (b *Board) SetTimeframe(t market.Timeframe) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.timeframe = t
	b.stats = market.GenerateStats(b.rng, t)
	b.mutations++
}

// Close freezes the board: no mutation lands after Close returns.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
}

// Snapshot copies the current state.
func (b *Board) Snapshot() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	prices := make([]market.PriceRecord, len(b.prices))
	copy(prices, b.prices)

	var wx *Report
	if b.wx != nil {
		cp := *b.wx
		wx = &cp
	}

	return State{
		Prices:        prices,
		Stats:         b.stats,
		Notifications: b.feed.Items(),
		Rate:          b.fx,
		Weather:       wx,
		Online:        b.online,
		Loading:       b.loading,
		LastUpdated:   b.last,
		Timeframe:     b.timeframe,
	}
}

// Filtered applies a price filter to the current record set.
func (b *Board) Filtered(f market.Filter) []market.PriceRecord {
	b.mu.Lock()
	prices := make([]market.PriceRecord, len(b.prices))
	copy(prices, b.prices)
	b.mu.Unlock()

	return market.Apply(prices, f)
}

// Interval returns the walk cadence of the board's profile.
func (b *Board) Interval() time.Duration {
	return b.gen.Profile().Interval
}

// History produces the simulated 7-day series for one crop.
func (b *Board) History(crop string) []market.HistoryPoint {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.gen.History(crop)
}

// Feed exposes the notification feed for read actions.
func (b *Board) Feed() *notify.Feed {
	return b.feed
}

// Mutations reports how many state swaps have happened; tests use it to
// prove the board is frozen after teardown.
func (b *Board) Mutations() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mutations
}

// Stat identifies one of the four dashboard stat cards.
type Stat string

const (
	StatRevenue  Stat = "revenue"
	StatListings Stat = "listings"
	StatBuyers   Stat = "buyers"
	StatAlerts   Stat = "alerts"
)

// Bump applies the stat-card click actions: small random increments, and
// for alerts an appended unread notification naming a random crop.
func (b *Board) Bump(stat Stat) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	switch stat {
	case StatRevenue:
		b.stats.RevenueKSH += b.rng.Intn(50000)
	case StatListings:
		b.stats.ActiveListings++
	case StatBuyers:
		b.stats.PotentialBuyers += b.rng.Intn(3)
	case StatAlerts:
		crop := "Crop"
		if len(b.prices) > 0 {
			crop = b.prices[b.rng.Intn(len(b.prices))].Crop
		}
		b.feed.Push(fmt.Sprintf("Price alert: %s price changed significantly", crop), notify.KindInfo, time.Now())
		b.stats.AlertCount++
	default:
		return
	}
	b.mutations++
}

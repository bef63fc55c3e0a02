package board

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/kmaina/sokoboard/pkg/market"
)

type stubRate struct {
	rate float64
	fail bool
}

func (s stubRate) Rate(ctx context.Context, current float64) float64 {
	if s.fail {
		return current
	}
	return s.rate
}

type stubWeather struct {
	report Report
	ok     bool
}

func (s stubWeather) Current(ctx context.Context) (Report, bool) {
	return s.report, s.ok
}

func newTestBoard(seed int64) *Board {
	return New(Config{
		Seeds:   market.Seeds(),
		Profile: market.MarketProfile,
		RNG:     rand.New(rand.NewSource(seed)),
	})
}

func TestNewBoardStartsLoading(t *testing.T) {
	b := newTestBoard(1)
	snap := b.Snapshot()

	if !snap.Loading {
		t.Fatal("a fresh board should be loading")
	}
	if !snap.Online {
		t.Fatal("a fresh board should be online")
	}
	if len(snap.Prices) != 0 {
		t.Fatalf("no prices before the first refresh, got %d", len(snap.Prices))
	}
	if snap.Timeframe != market.TimeframeMonth {
		t.Fatalf("default timeframe should be month, got %q", snap.Timeframe)
	}
}

func TestRefreshPopulatesState(t *testing.T) {
	b := newTestBoard(2)
	b.SetDefaultRate(140)
	b.Refresh(context.Background())

	snap := b.Snapshot()
	if snap.Loading {
		t.Fatal("loading should clear after refresh")
	}
	if len(snap.Prices) != 12 {
		t.Fatalf("expected 12 price records, got %d", len(snap.Prices))
	}
	if len(snap.Notifications) != 4 {
		t.Fatalf("expected 4 notifications, got %d", len(snap.Notifications))
	}
	if snap.Rate != 140 {
		t.Fatalf("expected default rate 140, got %v", snap.Rate)
	}
	if snap.Stats.RevenueKSH == 0 {
		t.Fatal("stats should be populated")
	}
	if snap.LastUpdated.IsZero() {
		t.Fatal("last updated should be set")
	}
}

func TestRefreshAppliesFetchers(t *testing.T) {
	b := New(Config{
		Seeds:   market.Seeds(),
		Profile: market.MarketProfile,
		RNG:     rand.New(rand.NewSource(3)),
		Rate:    stubRate{rate: 151.2},
		Weather: stubWeather{report: Report{TemperatureC: 24, Description: "Partly cloudy"}, ok: true},
	})
	b.SetDefaultRate(140)
	b.Refresh(context.Background())

	snap := b.Snapshot()
	if snap.Rate != 151.2 {
		t.Fatalf("expected fetched rate 151.2, got %v", snap.Rate)
	}
	if snap.Weather == nil || snap.Weather.Description != "Partly cloudy" {
		t.Fatalf("expected weather report, got %+v", snap.Weather)
	}
}

func TestRefreshClearsLoadingWhenFetchersFail(t *testing.T) {
	b := New(Config{
		Seeds:   market.Seeds(),
		Profile: market.MarketProfile,
		RNG:     rand.New(rand.NewSource(4)),
		Rate:    stubRate{fail: true},
		Weather: stubWeather{ok: false},
	})
	b.SetDefaultRate(140)
	b.Refresh(context.Background())

	snap := b.Snapshot()
	if snap.Loading {
		t.Fatal("loading must clear even when every fetch fails")
	}
	if snap.Rate != 140 {
		t.Fatalf("failed rate fetch should keep the fallback, got %v", snap.Rate)
	}
	if snap.Weather != nil {
		t.Fatal("failed weather fetch should leave no report")
	}
	if len(snap.Prices) != 12 {
		t.Fatal("prices must still regenerate when fetches fail")
	}
}

func TestRefreshSkipsFetchersOffline(t *testing.T) {
	b := New(Config{
		Seeds:   market.Seeds(),
		Profile: market.MarketProfile,
		RNG:     rand.New(rand.NewSource(5)),
		Rate:    stubRate{rate: 999},
	})
	b.SetDefaultRate(140)
	b.SetOnline(false)
	b.Refresh(context.Background())

	if got := b.Snapshot().Rate; got != 140 {
		t.Fatalf("offline refresh should not fetch, got rate %v", got)
	}
}

func TestTickWalksPrices(t *testing.T) {
	b := newTestBoard(6)
	b.Refresh(context.Background())
	before := b.Mutations()

	b.Tick(time.Now())

	if b.Mutations() != before+1 {
		t.Fatal("tick should register a mutation")
	}
	for _, r := range b.Snapshot().Prices {
		if r.Price < market.PriceFloor {
			t.Fatalf("%s walked below the price floor: %v", r.Crop, r.Price)
		}
	}
}

func TestTickFrozenOffline(t *testing.T) {
	b := newTestBoard(7)
	b.Refresh(context.Background())
	b.SetOnline(false)

	before := b.Snapshot()
	beforeMut := b.Mutations()

	b.Tick(time.Now())

	after := b.Snapshot()
	if b.Mutations() != beforeMut {
		t.Fatal("offline tick must not mutate")
	}
	for i := range before.Prices {
		if before.Prices[i] != after.Prices[i] {
			t.Fatalf("offline tick changed record %d", i)
		}
	}
}

func TestTickBeforeRefreshIsNoop(t *testing.T) {
	b := newTestBoard(8)
	b.Tick(time.Now())
	if b.Mutations() != 0 {
		t.Fatal("tick on an empty board should do nothing")
	}
}

func TestSetTimeframeRecomputesStats(t *testing.T) {
	b := newTestBoard(9)
	b.Refresh(context.Background())

	b.SetTimeframe(market.TimeframeYear)
	snap := b.Snapshot()

	if snap.Timeframe != market.TimeframeYear {
		t.Fatalf("expected year timeframe, got %q", snap.Timeframe)
	}
	if snap.Stats.RevenueKSH < 7200000 || snap.Stats.RevenueKSH > 10800000 {
		t.Fatalf("yearly revenue %d outside expected range", snap.Stats.RevenueKSH)
	}
}

func TestCloseFreezesBoard(t *testing.T) {
	b := newTestBoard(10)
	b.Refresh(context.Background())
	b.Close()

	mutations := b.Mutations()
	snapshot := b.Snapshot()

	b.Tick(time.Now())
	b.Refresh(context.Background())
	b.SetTimeframe(market.TimeframeWeek)
	b.Bump(StatRevenue)

	if b.Mutations() != mutations {
		t.Fatal("closed board must not mutate")
	}
	after := b.Snapshot()
	if after.Stats != snapshot.Stats {
		t.Fatal("closed board stats changed")
	}
}

func TestFilteredDoesNotMutateBoard(t *testing.T) {
	b := newTestBoard(11)
	b.Refresh(context.Background())

	got := b.Filtered(market.Filter{Category: "fruits"})
	if len(got) != 3 {
		t.Fatalf("expected 3 fruit records, got %d", len(got))
	}
	if len(b.Snapshot().Prices) != 12 {
		t.Fatal("filtering must not shrink the board")
	}
}

func TestBumpAlertsPushesNotification(t *testing.T) {
	b := newTestBoard(12)
	b.Refresh(context.Background())

	before := b.Snapshot()
	b.Bump(StatAlerts)
	after := b.Snapshot()

	if after.Stats.AlertCount != before.Stats.AlertCount+1 {
		t.Fatalf("alert count should bump by one, got %d -> %d", before.Stats.AlertCount, after.Stats.AlertCount)
	}
	if len(after.Notifications) != len(before.Notifications)+1 {
		t.Fatal("alert bump should push a notification")
	}
	if after.Notifications[0].Read {
		t.Fatal("pushed alert notification should be unread")
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	b := newTestBoard(13)
	b.Refresh(context.Background())

	snap := b.Snapshot()
	snap.Prices[0].Price = -1

	if b.Snapshot().Prices[0].Price == -1 {
		t.Fatal("mutating a snapshot leaked into the board")
	}
}

package market

import (
	"math"
	"math/rand"
	"time"
)

// PriceFloor is the lowest a generated or walked price can go, in KSH/kg.
const PriceFloor = 10

// Profile parameterizes the noise applied when generating and walking a
// board's records. The dashboard and the market screen historically used
// slightly different models; both are expressed here as configuration.
type Profile struct {
	Name string

	// Generation noise: either a flat spread around the base price or a
	// proportional one.
	Proportional bool
	PriceSpread  float64 // flat: price = base ± spread/2
	SpreadPct    float64 // proportional: price = base * (1 ± pct)
	ChangeRange  float64 // change drawn from ± range/2
	RoundPrice   bool
	WithVolume   bool

	// Walk noise: applied to current values on each tick.
	WalkPriceStep  float64
	WalkChangeStep float64

	Interval time.Duration
}

// DashboardProfile matches the dashboard screen: flat ±10 price noise,
// ±15% change, a 10s tick with a ±2.5 walk step.
var DashboardProfile = Profile{
	Name:           "dashboard",
	PriceSpread:    20,
	ChangeRange:    30,
	WalkPriceStep:  5,
	WalkChangeStep: 10,
	Interval:       10 * time.Second,
}

// MarketProfile matches the market-price screen: ±15% proportional price
// noise, ±20% change, volume, and a slower, gentler walk.
var MarketProfile = Profile{
	Name:           "market",
	Proportional:   true,
	SpreadPct:      0.15,
	ChangeRange:    40,
	RoundPrice:     true,
	WithVolume:     true,
	WalkPriceStep:  3,
	WalkChangeStep: 5,
	Interval:       15 * time.Second,
}

// Generator produces and perturbs live price records. All randomness
// comes from the injected source so tests can seed it.
type Generator struct {
	rng     *rand.Rand
	profile Profile
}

func NewGenerator(rng *rand.Rand, profile Profile) *Generator {
	return &Generator{rng: rng, profile: profile}
}

func (g *Generator) Profile() Profile {
	return g.profile
}

// centered draws uniformly from [-span/2, span/2).
func (g *Generator) centered(span float64) float64 {
	return (g.rng.Float64() - 0.5) * span
}

// Generate derives a fresh record set from the seed table. Output length
// and order match the input; an empty table yields an empty set.
func (g *Generator) Generate(seeds []Seed, now time.Time) []PriceRecord {
	records := make([]PriceRecord, 0, len(seeds))
	for _, s := range seeds {
		var price float64
		if g.profile.Proportional {
			price = s.BasePrice * (1 + g.centered(2*g.profile.SpreadPct))
		} else {
			price = s.BasePrice + g.centered(g.profile.PriceSpread)
		}
		if g.profile.RoundPrice {
			price = math.Round(price)
		}

		r := PriceRecord{
			Crop:        s.Crop,
			Location:    s.Location,
			Category:    s.Category,
			Quality:     s.Quality,
			Price:       clampPrice(price),
			ChangePct:   round1(g.centered(g.profile.ChangeRange)),
			LastUpdated: now,
		}
		if g.profile.WithVolume {
			r.VolumeKg = 100 + g.rng.Intn(1000)
		}
		records = append(records, r)
	}
	return records
}

// Walk perturbs the current records in a random walk and returns the
// next set; the input is not mutated so callers can swap atomically.
// The change percentage accumulates unrounded; rounding happens at
// display time only.
func (g *Generator) Walk(records []PriceRecord, now time.Time) []PriceRecord {
	next := make([]PriceRecord, len(records))
	for i, r := range records {
		r.Price = clampPrice(r.Price + g.centered(g.profile.WalkPriceStep))
		r.ChangePct += g.centered(g.profile.WalkChangeStep)
		r.LastUpdated = now
		next[i] = r
	}
	return next
}

// History simulates the 7-day price series the chart renders. Unknown
// crops fall back to a base price of 50.
func (g *Generator) History(crop string) []HistoryPoint {
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	base := 50.0
	if s, ok := FindSeed(crop); ok {
		base = s.BasePrice
	}

	points := make([]HistoryPoint, 0, len(days))
	for _, day := range days {
		points = append(points, HistoryPoint{
			Day:      day,
			Price:    clampPrice(math.Round(base + g.centered(20))),
			VolumeKg: 200 + g.rng.Intn(500),
		})
	}
	return points
}

func clampPrice(p float64) float64 {
	if p < PriceFloor {
		return PriceFloor
	}
	return p
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

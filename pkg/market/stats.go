package market

import (
	"math"
	"math/rand"
)

// baseMonthlyRevenue is the reference monthly revenue in KSH that farm
// stats are scaled from.
const baseMonthlyRevenue = 750000

// GenerateStats recomputes the dashboard summary for a timeframe. The
// whole struct is replaced every time; there are no partial updates.
func GenerateStats(rng *rand.Rand, timeframe Timeframe) FarmStats {
	multiplier := timeframe.Multiplier()
	return FarmStats{
		RevenueKSH:      int(math.Round(baseMonthlyRevenue * multiplier * (0.8 + rng.Float64()*0.4))),
		ActiveListings:  5 + rng.Intn(10),
		PotentialBuyers: 15 + rng.Intn(20),
		AlertCount:      2 + rng.Intn(5),
	}
}

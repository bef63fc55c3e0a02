package market

import "time"

type Category string

const (
	CategoryGrains     Category = "grains"
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
)

type Quality string

const (
	QualityGradeA  Quality = "Grade A"
	QualityGradeB  Quality = "Grade B"
	QualityOrganic Quality = "Organic"
	QualityFresh   Quality = "Fresh"
)

// Seed is one static entry of the crop table that live records are
// generated from.
type Seed struct {
	Crop      string
	Location  string
	BasePrice float64
	Category  Category
	Quality   Quality
}

// PriceRecord is a live snapshot of a seed entry at a point in time.
type PriceRecord struct {
	Crop        string    `json:"crop"`
	Location    string    `json:"location"`
	Category    Category  `json:"category"`
	Quality     Quality   `json:"quality"`
	Price       float64   `json:"price"`
	ChangePct   float64   `json:"change_pct"`
	VolumeKg    int       `json:"volume_kg"`
	LastUpdated time.Time `json:"last_updated"`
}

// TrendUp reports whether the record's weekly change points upward.
func (r PriceRecord) TrendUp() bool {
	return r.ChangePct > 0
}

// FarmStats is the wholesale-recomputed dashboard summary.
type FarmStats struct {
	RevenueKSH      int `json:"revenue_ksh"`
	ActiveListings  int `json:"active_listings"`
	PotentialBuyers int `json:"potential_buyers"`
	AlertCount      int `json:"alert_count"`
}

type Timeframe string

const (
	TimeframeWeek    Timeframe = "week"
	TimeframeMonth   Timeframe = "month"
	TimeframeQuarter Timeframe = "quarter"
	TimeframeYear    Timeframe = "year"
)

// Multiplier scales the base monthly revenue to the timeframe. Unknown
// timeframes fall back to a month.
func (t Timeframe) Multiplier() float64 {
	switch t {
	case TimeframeWeek:
		return 0.25
	case TimeframeMonth:
		return 1
	case TimeframeQuarter:
		return 3
	case TimeframeYear:
		return 12
	default:
		return 1
	}
}

// HistoryPoint is one day of the simulated 7-day price series.
type HistoryPoint struct {
	Day      string  `json:"day"`
	Price    float64 `json:"price"`
	VolumeKg int     `json:"volume_kg"`
}

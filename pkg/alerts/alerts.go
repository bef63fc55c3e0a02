package alerts

import (
	"errors"
	"math"
	"strconv"
	"sync"
	"time"
)

var ErrBadTarget = errors.New("target price is not a number")

// Alert is a price alert a user set on a crop. Alerts are append-only.
type Alert struct {
	ID              int64     `json:"id"`
	Crop            string    `json:"crop"`
	TargetPrice     float64   `json:"target_price"`
	PriceAtCreation float64   `json:"price_at_creation"`
	CreatedAt       time.Time `json:"created_at"`
}

// Book is the per-session alert list.
type Book struct {
	mu     sync.Mutex
	lastID int64
	items  []Alert
}

func NewBook() *Book {
	return &Book{}
}

// Add validates and appends a new alert. A target that does not parse as
// a number is rejected and the book is left untouched.
func (b *Book) Add(crop, target string, currentPrice float64, now time.Time) (Alert, error) {
	value, err := strconv.ParseFloat(target, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return Alert{}, ErrBadTarget
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	id := now.UnixMilli()
	if id <= b.lastID {
		id = b.lastID + 1
	}
	b.lastID = id

	a := Alert{
		ID:              id,
		Crop:            crop,
		TargetPrice:     value,
		PriceAtCreation: currentPrice,
		CreatedAt:       now,
	}
	b.items = append(b.items, a)
	return a, nil
}

// Items returns a snapshot copy in creation order.
func (b *Book) Items() []Alert {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Alert, len(b.items))
	copy(out, b.items)
	return out
}

func (b *Book) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

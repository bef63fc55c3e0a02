package listings

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusPending  Status = "Pending"
	StatusSold     Status = "Sold"
	StatusInactive Status = "Inactive"
)

var (
	ErrNotFound = errors.New("listing not found")
	ErrSold     = errors.New("sold listings cannot change status")
)

type Listing struct {
	ID         int     `json:"id"`
	Crop       string  `json:"crop"`
	Quantity   string  `json:"quantity"`
	PricePerKg float64 `json:"price_per_kg"`
	Status     Status  `json:"status"`
	Inquiries  int     `json:"inquiries"`
	PostedDate string  `json:"posted_date"`
}

// Metrics summarizes listing performance.
type Metrics struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	SuccessRate int `json:"success_rate"` // percentage of listings sold
}

// Board owns a farmer's listings for the life of the process.
type Board struct {
	mu     sync.Mutex
	nextID int
	items  []Listing
}

// NewBoard returns a board preloaded with the sample listings.
func NewBoard() *Board {
	return &Board{
		nextID: 5,
		items: []Listing{
			{ID: 1, Crop: "Tomatoes", Quantity: "200 kg available", PricePerKg: 80, Status: StatusActive, Inquiries: 5, PostedDate: "2023-05-15"},
			{ID: 2, Crop: "Maize", Quantity: "500 kg available", PricePerKg: 50, Status: StatusPending, Inquiries: 2, PostedDate: "2023-05-18"},
			{ID: 3, Crop: "Avocados", Quantity: "150 kg available", PricePerKg: 120, Status: StatusSold, Inquiries: 8, PostedDate: "2023-05-10"},
			{ID: 4, Crop: "Kale", Quantity: "100 kg available", PricePerKg: 40, Status: StatusActive, Inquiries: 3, PostedDate: "2023-05-20"},
		},
	}
}

// Items returns a snapshot copy of all listings.
func (b *Board) Items() []Listing {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Listing, len(b.items))
	copy(out, b.items)
	return out
}

// Get returns one listing by id.
func (b *Board) Get(id int) (Listing, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, l := range b.items {
		if l.ID == id {
			return l, nil
		}
	}
	return Listing{}, ErrNotFound
}

// Toggle flips a listing between Active and Inactive. Anything not
// Active becomes Active, except Sold, which is terminal. Only the status
// field changes.
func (b *Board) Toggle(id int) (Listing, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.items {
		if b.items[i].ID != id {
			continue
		}
		switch b.items[i].Status {
		case StatusSold:
			return b.items[i], ErrSold
		case StatusActive:
			b.items[i].Status = StatusInactive
		default:
			b.items[i].Status = StatusActive
		}
		return b.items[i], nil
	}
	return Listing{}, ErrNotFound
}

// Remove deletes a listing.
func (b *Board) Remove(id int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.items {
		if b.items[i].ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Add creates a new Active listing and returns it.
func (b *Board) Add(crop string, quantityKg int, pricePerKg float64, now time.Time) Listing {
	b.mu.Lock()
	defer b.mu.Unlock()

	l := Listing{
		ID:         b.nextID,
		Crop:       crop,
		Quantity:   fmt.Sprintf("%d kg available", quantityKg),
		PricePerKg: pricePerKg,
		Status:     StatusActive,
		PostedDate: now.Format("2006-01-02"),
	}
	b.nextID++
	b.items = append(b.items, l)
	return l
}

// Metrics computes the performance summary. An empty board has a zero
// success rate rather than a division error.
func (b *Board) Metrics() Metrics {
	b.mu.Lock()
	defer b.mu.Unlock()

	m := Metrics{Total: len(b.items)}
	sold := 0
	for _, l := range b.items {
		switch l.Status {
		case StatusActive:
			m.Active++
		case StatusSold:
			sold++
		}
	}
	if m.Total > 0 {
		m.SuccessRate = int(math.Round(float64(sold) / float64(m.Total) * 100))
	}
	return m
}

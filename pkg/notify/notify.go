package notify

import (
	"math/rand"
	"sync"
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type template struct {
	message string
	kind    Kind
}

var templates = []template{
	{"Maize prices increased by 15% in Nairobi Market", KindSuccess},
	{"New buyer inquiry for beans from Mombasa", KindInfo},
	{"Weather alert: Heavy rains expected this week", KindWarning},
	{"Sukuma Wiki harvest ready in Field C", KindSuccess},
	{"Low stock alert: Only 2 days of seeds remaining", KindWarning},
	{"Payment received: KSH 45,000 from recent sale", KindSuccess},
}

// sampleSize is how many templates a resample picks.
const sampleSize = 4

// Feed holds a screen's notifications. Notifications are never deleted;
// only their read flag flips.
type Feed struct {
	mu     sync.Mutex
	rng    *rand.Rand
	lastID int64
	items  []Notification
}

func NewFeed(rng *rand.Rand) *Feed {
	return &Feed{rng: rng}
}

// nextID returns a time-derived id that is strictly greater than any id
// handed out before, so ids minted within the same millisecond stay
// distinct. Callers must hold f.mu.
func (f *Feed) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= f.lastID {
		id = f.lastID + 1
	}
	f.lastID = id
	return id
}

// Sample replaces the feed with a random pick of the template set in
// random order, each with a random read flag and an age within 24h.
func (f *Feed) Sample(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	order := f.rng.Perm(len(templates))
	items := make([]Notification, 0, sampleSize)
	for _, idx := range order[:sampleSize] {
		t := templates[idx]
		items = append(items, Notification{
			ID:        f.nextID(now),
			Message:   t.message,
			Kind:      t.kind,
			Read:      f.rng.Float64() > 0.6,
			CreatedAt: now.Add(-time.Duration(f.rng.Float64() * float64(24*time.Hour))),
		})
	}
	f.items = items
}

// Push prepends a single unread notification and returns it.
func (f *Feed) Push(message string, kind Kind, now time.Time) Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := Notification{
		ID:        f.nextID(now),
		Message:   message,
		Kind:      kind,
		CreatedAt: now,
	}
	f.items = append([]Notification{n}, f.items...)
	return n
}

// MarkRead flips the read flag of one notification. Unknown ids are a
// no-op and return false.
func (f *Feed) MarkRead(id int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
			return true
		}
	}
	return false
}

// Items returns a snapshot copy of the feed, newest first.
func (f *Feed) Items() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Notification, len(f.items))
	copy(out, f.items)
	return out
}

func (f *Feed) UnreadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, n := range f.items {
		if !n.Read {
			count++
		}
	}
	return count
}

package notify

import (
	"math/rand"
	"testing"
	"time"
)

func TestSampleDistinctIDsSameMillisecond(t *testing.T) {
	f := NewFeed(rand.New(rand.NewSource(1)))
	now := time.Now()

	f.Sample(now)
	items := f.Items()

	if len(items) != 4 {
		t.Fatalf("expected 4 sampled notifications, got %d", len(items))
	}

	seen := map[int64]bool{}
	for _, n := range items {
		if seen[n.ID] {
			t.Fatalf("duplicate notification id %d", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestSampleAgesWithinDay(t *testing.T) {
	f := NewFeed(rand.New(rand.NewSource(2)))
	now := time.Now()

	f.Sample(now)
	for _, n := range f.Items() {
		age := now.Sub(n.CreatedAt)
		if age < 0 || age > 24*time.Hour {
			t.Fatalf("notification age %s outside [0, 24h]", age)
		}
	}
}

func TestSampleReplacesFeed(t *testing.T) {
	f := NewFeed(rand.New(rand.NewSource(3)))
	now := time.Now()

	f.Sample(now)
	first := f.Items()
	f.Sample(now.Add(time.Second))
	second := f.Items()

	if len(second) != 4 {
		t.Fatalf("resample should yield 4 notifications, got %d", len(second))
	}
	for _, n := range second {
		for _, old := range first {
			if n.ID == old.ID {
				t.Fatalf("resample reused id %d", n.ID)
			}
		}
	}
}

func TestPushPrependsUnread(t *testing.T) {
	f := NewFeed(rand.New(rand.NewSource(4)))
	now := time.Now()
	f.Sample(now)

	pushed := f.Push("Price alert: Maize price changed significantly", KindInfo, now)

	items := f.Items()
	if len(items) != 5 {
		t.Fatalf("expected 5 notifications after push, got %d", len(items))
	}
	if items[0].ID != pushed.ID {
		t.Fatal("pushed notification should be first")
	}
	if items[0].Read {
		t.Fatal("pushed notification should start unread")
	}
	if items[0].Kind != KindInfo {
		t.Fatalf("unexpected kind %q", items[0].Kind)
	}
}

func TestMarkReadFlipsOnlyTarget(t *testing.T) {
	f := NewFeed(rand.New(rand.NewSource(5)))
	now := time.Now()

	a := f.Push("first", KindInfo, now)
	b := f.Push("second", KindWarning, now)

	if !f.MarkRead(a.ID) {
		t.Fatal("MarkRead should report success for a known id")
	}

	for _, n := range f.Items() {
		switch n.ID {
		case a.ID:
			if !n.Read {
				t.Fatal("target notification should be read")
			}
		case b.ID:
			if n.Read {
				t.Fatal("other notification should stay unread")
			}
		}
	}
}

func TestMarkReadUnknownID(t *testing.T) {
	f := NewFeed(rand.New(rand.NewSource(6)))
	f.Push("only", KindSuccess, time.Now())

	if f.MarkRead(-1) {
		t.Fatal("MarkRead should fail for an unknown id")
	}
	if f.UnreadCount() != 1 {
		t.Fatalf("unknown-id MarkRead should not change state, unread=%d", f.UnreadCount())
	}
}

func TestUnreadCount(t *testing.T) {
	f := NewFeed(rand.New(rand.NewSource(7)))
	now := time.Now()

	a := f.Push("a", KindInfo, now)
	f.Push("b", KindInfo, now)
	f.Push("c", KindInfo, now)

	f.MarkRead(a.ID)
	if got := f.UnreadCount(); got != 2 {
		t.Fatalf("expected 2 unread, got %d", got)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	f := NewFeed(rand.New(rand.NewSource(8)))
	f.Push("a", KindInfo, time.Now())

	items := f.Items()
	items[0].Read = true

	if f.Items()[0].Read {
		t.Fatal("mutating the returned slice leaked into the feed")
	}
}

package buyers

import (
	"reflect"
	"testing"
)

func TestDirectoryReturnsCopy(t *testing.T) {
	first := Directory()
	first[0].Name = "mutated"

	if Directory()[0].Name != "FreshCo Market" {
		t.Fatal("mutating a returned directory leaked into the seed data")
	}
}

func TestApplyEmptyFilterIsIdentity(t *testing.T) {
	all := Directory()
	got := Apply(all, Filter{})
	if !reflect.DeepEqual(got, all) {
		t.Fatalf("empty filter should keep all %d buyers, got %d", len(all), len(got))
	}
}

func TestApplyProductSubstring(t *testing.T) {
	got := Apply(Directory(), Filter{Product: "onion"})

	want := []string{"FreshCo Market", "Mama Mboga Wholesale"}
	if len(got) != len(want) {
		t.Fatalf("expected %d buyers for 'onion', got %d", len(want), len(got))
	}
	for i, p := range got {
		if p.Name != want[i] {
			t.Fatalf("buyer %d: expected %q, got %q", i, want[i], p.Name)
		}
	}
}

func TestApplyLocation(t *testing.T) {
	got := Apply(Directory(), Filter{Location: "westlands"})
	if len(got) != 1 || got[0].Name != "Green Valley Restaurant" {
		t.Fatalf("expected only Green Valley Restaurant in Westlands, got %d buyers", len(got))
	}
}

func TestApplyMinRatingInclusive(t *testing.T) {
	got := Apply(Directory(), Filter{MinRating: 4.5})

	want := []string{"FreshCo Market", "Organic Foods Ltd"}
	if len(got) != len(want) {
		t.Fatalf("expected %d buyers rated >= 4.5, got %d", len(want), len(got))
	}
	for i, p := range got {
		if p.Name != want[i] {
			t.Fatalf("buyer %d: expected %q, got %q", i, want[i], p.Name)
		}
	}
}

func TestApplyCombinesWithAnd(t *testing.T) {
	got := Apply(Directory(), Filter{Product: "onions", MinRating: 4})
	if len(got) != 1 || got[0].Name != "FreshCo Market" {
		t.Fatalf("onions+rating>=4 should match only FreshCo Market, got %d buyers", len(got))
	}
}

func TestApplyNoMatch(t *testing.T) {
	got := Apply(Directory(), Filter{Product: "pineapple"})
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no buyers for pineapple, got %d", len(got))
	}
}

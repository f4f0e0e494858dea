package model

import (
	"testing"
	"time"
)

func TestVisibleBrands(t *testing.T) {
	in := []Brand{
		{ID: 1, Name: "Ferrari", IsActive: true},
		{ID: 2, Name: "Bugatti", IsActive: false},
		{ID: 3, Name: "Porsche", IsActive: true},
		{ID: 4, Name: "Koenigsegg", IsActive: false},
	}
	got := VisibleBrands(in)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("VisibleBrands = %v", got)
	}

	if got := VisibleBrands(nil); len(got) != 0 {
		t.Fatalf("empty input: %v", got)
	}
	allOff := []Brand{{ID: 1}, {ID: 2}}
	if got := VisibleBrands(allOff); len(got) != 0 {
		t.Fatalf("all inactive: %v", got)
	}
}

func TestVisibleFAQs(t *testing.T) {
	in := []FAQ{
		{ID: 1, IsVisible: false},
		{ID: 2, IsVisible: true},
		{ID: 3, IsVisible: true},
	}
	got := VisibleFAQs(in)
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Fatalf("VisibleFAQs = %v", got)
	}
}

func TestValidBookingTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{BookingPending, BookingAccepted, true},
		{BookingPending, BookingRejected, true},
		{BookingPending, BookingPending, false},
		{BookingAccepted, BookingRejected, false},
		{BookingRejected, BookingAccepted, false},
		{BookingAccepted, BookingPending, false},
		{BookingPending, "Cancelled", false},
	}
	for _, tc := range cases {
		if got := ValidBookingTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("ValidBookingTransition(%q,%q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestRentalDays(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC) }

	if got := RentalDays(day(1), day(1)); got != 1 {
		t.Errorf("same day = %d, want 1", got)
	}
	if got := RentalDays(day(1), day(7)); got != 7 {
		t.Errorf("week = %d, want 7", got)
	}
	if got := RentalDays(day(7), day(1)); got != 0 {
		t.Errorf("inverted = %d, want 0", got)
	}

	// A full Gregorian 400-year cycle is exactly 146097 days.  Spans this
	// long exceed what a time.Duration can represent, so the count must
	// not be computed through one.
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2399, 12, 31, 0, 0, 0, 0, time.UTC)
	if got := RentalDays(start, end); got != 146097 {
		t.Errorf("400-year span = %d, want 146097", got)
	}
}

func TestKnownRole(t *testing.T) {
	for _, r := range []string{RoleAdmin, RoleManager, RoleAgent, RoleClient} {
		if !KnownRole(r) {
			t.Errorf("KnownRole(%q) = false", r)
		}
	}
	for _, r := range []string{"", "Admin", "owner", "superuser"} {
		if KnownRole(r) {
			t.Errorf("KnownRole(%q) = true", r)
		}
	}
}

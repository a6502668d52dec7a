package report

import (
	"testing"
	"time"
)

func TestResolveRange(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		token     string
		wantAll   bool
		wantExact bool
		wantSince time.Time
	}{
		{"today", false, true, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"week", false, false, time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)},
		{"month", false, false, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)},
		{"year", false, false, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"", true, false, time.Time{}},
		{"fortnight", true, false, time.Time{}},
	}

	for _, tc := range cases {
		got := ResolveRange(tc.token, now)
		if got.All != tc.wantAll {
			t.Errorf("ResolveRange(%q).All = %v, want %v", tc.token, got.All, tc.wantAll)
		}
		if got.Exact != tc.wantExact {
			t.Errorf("ResolveRange(%q).Exact = %v, want %v", tc.token, got.Exact, tc.wantExact)
		}
		if !tc.wantAll && !got.Since.Equal(tc.wantSince) {
			t.Errorf("ResolveRange(%q).Since = %v, want %v", tc.token, got.Since, tc.wantSince)
		}
	}
}

// Calendar subtraction, not a 30-day approximation: a month back from
// March 31 lands on March 3 (Go normalizes February 31), and that is the
// documented AddDate behavior this resolver relies on.
func TestResolveRangeMonthIsCalendarSubtraction(t *testing.T) {
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	got := ResolveRange("month", now)
	want := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Since.Equal(want) {
		t.Fatalf("month back from Apr 15 = %v, want %v", got.Since, want)
	}
}

func TestResolveRangeAnchorsToCaller(t *testing.T) {
	a := ResolveRange("today", time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC))
	b := ResolveRange("today", time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC))
	if a.Since.Equal(b.Since) {
		t.Fatal("today range must follow the caller's clock, got identical ranges for different days")
	}
}

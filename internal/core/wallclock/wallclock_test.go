package wallclock

import (
	"testing"
	"time"
)

func TestTake(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	cases := []struct {
		at         time.Time
		time, date string
		zone       string
	}{
		{time.Date(2025, 3, 10, 7, 5, 9, 0, loc), "07:05:09", "Monday, March 10, 2025", "EDT"},
		{time.Date(2025, 1, 4, 23, 59, 59, 0, loc), "23:59:59", "Saturday, January 4, 2025", "EST"},
		{time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), "00:00:00", "Thursday, February 29, 2024", "UTC"},
	}
	for _, tc := range cases {
		s := Take(tc.at)
		if s.Time != tc.time || s.Date != tc.date || s.Zone != tc.zone {
			t.Fatalf("Take(%v) = %+v, want %s / %s / %s", tc.at, s, tc.time, tc.date, tc.zone)
		}
		if !s.Instant.Equal(tc.at) {
			t.Fatalf("instant not carried through")
		}
	}
}

package models

import (
	"testing"
	"time"
)

func TestCalendarDay(t *testing.T) {
	west := time.FixedZone("EDT", -4*60*60)
	east := time.FixedZone("ICT", 7*60*60)

	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2026, 10, 19, 23, 30, 0, 0, west), "2026-10-19"},
		{time.Date(2026, 10, 19, 0, 15, 0, 0, east), "2026-10-19"},
		{time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), "2026-10-19"},
	}
	for _, tt := range tests {
		got := CalendarDay(tt.in)
		if got.Location() != time.UTC || got.Hour() != 0 {
			t.Errorf("CalendarDay(%v) = %v, want UTC midnight", tt.in, got)
		}
		if key := DayKey(tt.in); key != tt.want {
			t.Errorf("DayKey(%v) = %s, want %s", tt.in, key, tt.want)
		}
	}
}

package services

import (
	"strings"
	"testing"
	"time"
)

func TestDayLabel(t *testing.T) {
	s := newTestService(nil)
	cal := NewCalendarService(s)

	mk := func(campsite, name string, start, end time.Time) {
		d := draft(campsite, start, end)
		d.GuestName = name
		if _, err := s.Create(d); err != nil {
			t.Fatalf("Create(%s) error = %v", name, err)
		}
	}

	mk("Sandy", "Alice", date(2024, 4, 10), date(2024, 4, 12))
	mk("Jerrys", "Bob", date(2024, 4, 11), date(2024, 4, 14))

	tests := []struct {
		name string
		day  time.Time
		want string
	}{
		{
			name: "emptyDayHasEmptyLabel",
			day:  date(2024, 4, 1),
			want: "",
		},
		{
			name: "checkinDayAnnotated",
			day:  date(2024, 4, 10),
			want: "Sandy Alice (in)",
		},
		{
			name: "middleDayBare",
			day:  date(2024, 4, 13),
			want: "Jerrys Bob",
		},
		{
			name: "multipleLinesInStoreOrder",
			day:  date(2024, 4, 11),
			want: "Sandy Alice\nJerrys Bob (in)",
		},
		{
			name: "checkoutDayAnnotated",
			day:  date(2024, 4, 14),
			want: "Jerrys Bob (out)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.DayLabel(tt.day); got != tt.want {
				t.Errorf("DayLabel(%s) = %q, want %q", tt.day.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestDayLabelZeroNightStay(t *testing.T) {
	s := newTestService(nil)
	cal := NewCalendarService(s)

	d := draft("5", date(2024, 4, 20), date(2024, 4, 20))
	d.GuestName = "Daytripper"
	if _, err := s.Create(d); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	label := cal.DayLabel(date(2024, 4, 20))
	if strings.Count(label, "(in/out)") != 1 {
		t.Errorf("DayLabel() = %q, want exactly one (in/out)", label)
	}
}

func TestMonth(t *testing.T) {
	s := newTestService(nil)
	cal := NewCalendarService(s)

	if _, err := s.Create(draft("Sandy", date(2024, 2, 28), date(2024, 3, 2))); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	days := cal.Month(2024, time.February)
	if len(days) != 29 {
		t.Fatalf("Month(Feb 2024) returned %d days, want 29", len(days))
	}

	occupied := 0
	for _, day := range days {
		if day.Occupied {
			occupied++
			if day.Label == "" {
				t.Errorf("day %s occupied with empty label", day.Date)
			}
		}
	}
	// 28th and 29th touch the stay.
	if occupied != 2 {
		t.Errorf("Month(Feb 2024) occupied days = %d, want 2", occupied)
	}

	if days[27].Date != "28/02/2024" || !days[27].Occupied {
		t.Errorf("day 28 = %+v, want occupied 28/02/2024", days[27])
	}
}

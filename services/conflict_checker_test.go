package services

import (
	"errors"
	"testing"
	"time"

	"campsite-backend/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stay(id int, campsite string, start, end time.Time) models.Reservation {
	return models.Reservation{
		ID:        id,
		GuestName: "Guest",
		Campsite:  campsite,
		StartDate: start,
		EndDate:   end,
		People:    2,
		Status:    models.StatusConfirmed,
	}
}

func TestConflictsDateOnly(t *testing.T) {
	cc := NewConflictChecker(false)

	existing := []models.Reservation{
		stay(1, "Sandy", date(2024, 1, 10), date(2024, 1, 12)),
	}

	tests := []struct {
		name       string
		campsite   string
		start, end time.Time
		want       bool
	}{
		{
			name:     "sharedBoundaryDayDoesNotConflict",
			campsite: "Sandy",
			start:    date(2024, 1, 12),
			end:      date(2024, 1, 15),
			want:     false,
		},
		{
			name:     "overlappingIntervalConflicts",
			campsite: "Sandy",
			start:    date(2024, 1, 11),
			end:      date(2024, 1, 15),
			want:     true,
		},
		{
			name:     "containedIntervalConflicts",
			campsite: "Sandy",
			start:    date(2024, 1, 10),
			end:      date(2024, 1, 11),
			want:     true,
		},
		{
			name:     "endingOnStartDayDoesNotConflict",
			campsite: "Sandy",
			start:    date(2024, 1, 8),
			end:      date(2024, 1, 10),
			want:     false,
		},
		{
			name:     "differentCampsiteNeverConflicts",
			campsite: "Jerrys",
			start:    date(2024, 1, 10),
			end:      date(2024, 1, 12),
			want:     false,
		},
		{
			name:     "zeroNightStayNeverConflicts",
			campsite: "Sandy",
			start:    date(2024, 1, 11),
			end:      date(2024, 1, 11),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cc.Conflicts(existing, tt.campsite, tt.start, tt.end, "", "", 0)
			if err != nil {
				t.Fatalf("Conflicts() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Conflicts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConflictsPartialOverlap(t *testing.T) {
	cc := NewConflictChecker(false)
	existing := []models.Reservation{
		stay(1, "3", date(2024, 1, 12), date(2024, 1, 15)),
	}

	got, err := cc.Conflicts(existing, "3", date(2024, 1, 10), date(2024, 1, 13), "", "", 0)
	if err != nil {
		t.Fatalf("Conflicts() error = %v", err)
	}
	if !got {
		t.Error("intervals [10,13) and [12,15) on the same site should conflict")
	}
}

func TestConflictsSkipsExemptReservations(t *testing.T) {
	cc := NewConflictChecker(false)

	canceled := stay(1, "Sandy", date(2024, 3, 1), date(2024, 3, 5))
	canceled.Status = models.StatusCanceled

	group := stay(2, "Sandy", date(2024, 3, 1), date(2024, 3, 5))
	group.IsGroupBooking = true

	existing := []models.Reservation{canceled, group}

	got, err := cc.Conflicts(existing, "Sandy", date(2024, 3, 2), date(2024, 3, 4), "", "", 0)
	if err != nil {
		t.Fatalf("Conflicts() error = %v", err)
	}
	if got {
		t.Error("canceled and group reservations must not block new bookings")
	}
}

func TestConflictsExcludesGivenID(t *testing.T) {
	cc := NewConflictChecker(false)
	existing := []models.Reservation{
		stay(7, "Sandy", date(2024, 5, 1), date(2024, 5, 5)),
	}

	got, err := cc.Conflicts(existing, "Sandy", date(2024, 5, 1), date(2024, 5, 5), "", "", 7)
	if err != nil {
		t.Fatalf("Conflicts() error = %v", err)
	}
	if got {
		t.Error("a reservation must not conflict with itself")
	}
}

func TestConflictsInputValidation(t *testing.T) {
	cc := NewConflictChecker(false)

	if _, err := cc.Conflicts(nil, "nowhere", date(2024, 1, 1), date(2024, 1, 2), "", "", 0); !errors.Is(err, models.ErrUnknownCampsite) {
		t.Errorf("unknown campsite error = %v, want ErrUnknownCampsite", err)
	}
	if _, err := cc.Conflicts(nil, "Sandy", date(2024, 1, 5), date(2024, 1, 2), "", "", 0); !errors.Is(err, models.ErrDateRange) {
		t.Errorf("reversed range error = %v, want ErrDateRange", err)
	}
}

func TestConflictsStrictTurnover(t *testing.T) {
	existing := stay(1, "Sandy", date(2024, 1, 10), date(2024, 1, 12))
	existing.CheckInTime = "13:00"
	existing.CheckOutTime = "11:00"

	tests := []struct {
		name       string
		strict     bool
		start, end time.Time
		in, out    string
		want       bool
	}{
		{
			name:   "arrivingAfterCheckoutIsFine",
			strict: true,
			start:  date(2024, 1, 12),
			end:    date(2024, 1, 14),
			in:     "13:00",
			out:    "11:00",
			want:   false,
		},
		{
			name:   "arrivingBeforeCheckoutClashes",
			strict: true,
			start:  date(2024, 1, 12),
			end:    date(2024, 1, 14),
			in:     "09:00",
			out:    "11:00",
			want:   true,
		},
		{
			name:   "leavingAfterNextCheckinClashes",
			strict: true,
			start:  date(2024, 1, 8),
			end:    date(2024, 1, 10),
			in:     "13:00",
			out:    "15:00",
			want:   true,
		},
		{
			name:   "dateOnlyIgnoresClockTimes",
			strict: false,
			start:  date(2024, 1, 12),
			end:    date(2024, 1, 14),
			in:     "09:00",
			out:    "11:00",
			want:   false,
		},
		{
			name:   "missingTimesFallBackToDateOnly",
			strict: true,
			start:  date(2024, 1, 12),
			end:    date(2024, 1, 14),
			in:     "",
			out:    "",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := NewConflictChecker(tt.strict)
			got, err := cc.Conflicts([]models.Reservation{existing}, "Sandy", tt.start, tt.end, tt.in, tt.out, 0)
			if err != nil {
				t.Fatalf("Conflicts() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Conflicts() = %v, want %v", got, tt.want)
			}
		})
	}
}

package models

import (
	"errors"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validDraft() ReservationDraft {
	return ReservationDraft{
		GuestName: "Alice Smith",
		Campsite:  "Sandy",
		StartDate: day(2024, 6, 1),
		EndDate:   day(2024, 6, 3),
		People:    4,
		Status:    StatusConfirmed,
	}
}

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ReservationDraft)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(d *ReservationDraft) {},
		},
		{
			name:   "emptyStatusAccepted",
			mutate: func(d *ReservationDraft) { d.Status = "" },
		},
		{
			name:   "zeroNightStayAccepted",
			mutate: func(d *ReservationDraft) { d.EndDate = d.StartDate },
		},
		{
			name:    "blankName",
			mutate:  func(d *ReservationDraft) { d.GuestName = "   " },
			wantErr: ErrValidation,
		},
		{
			name:    "blankCampsite",
			mutate:  func(d *ReservationDraft) { d.Campsite = "" },
			wantErr: ErrValidation,
		},
		{
			name:    "negativePeople",
			mutate:  func(d *ReservationDraft) { d.People = -1 },
			wantErr: ErrValidation,
		},
		{
			name:    "unknownStatus",
			mutate:  func(d *ReservationDraft) { d.Status = "Maybe" },
			wantErr: ErrValidation,
		},
		{
			name:    "unknownCampsite",
			mutate:  func(d *ReservationDraft) { d.Campsite = "7x" },
			wantErr: ErrUnknownCampsite,
		},
		{
			name:    "zeroStartDate",
			mutate:  func(d *ReservationDraft) { d.StartDate = time.Time{} },
			wantErr: ErrValidation,
		},
		{
			name: "reversedDates",
			mutate: func(d *ReservationDraft) {
				d.StartDate = day(2024, 6, 5)
				d.EndDate = day(2024, 6, 1)
			},
			wantErr: ErrDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			if err := d.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTouches(t *testing.T) {
	r := Reservation{StartDate: day(2024, 6, 10), EndDate: day(2024, 6, 12)}

	for _, d := range []time.Time{day(2024, 6, 10), day(2024, 6, 11), day(2024, 6, 12)} {
		if !r.Touches(d) {
			t.Errorf("Touches(%s) = false, want true", d.Format("02/01/2006"))
		}
	}
	for _, d := range []time.Time{day(2024, 6, 9), day(2024, 6, 13)} {
		if r.Touches(d) {
			t.Errorf("Touches(%s) = true, want false", d.Format("02/01/2006"))
		}
	}
}

func TestIntersects(t *testing.T) {
	r := Reservation{StartDate: day(2024, 6, 10), EndDate: day(2024, 6, 12)}

	tests := []struct {
		name     string
		from, to time.Time
		want     bool
	}{
		{"containsStay", day(2024, 6, 1), day(2024, 6, 30), true},
		{"sharesStartDay", day(2024, 6, 1), day(2024, 6, 10), true},
		{"sharesEndDay", day(2024, 6, 12), day(2024, 6, 20), true},
		{"before", day(2024, 6, 1), day(2024, 6, 9), false},
		{"after", day(2024, 6, 13), day(2024, 6, 20), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersects(tt.from, tt.to); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

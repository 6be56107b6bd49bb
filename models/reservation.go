package models

import (
	"errors"
	"strings"
	"time"
)

// Reservation statuses as offered by the booking form.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCanceled  = "Canceled"
)

var (
	ErrValidation      = errors.New("required field missing or blank")
	ErrDateRange       = errors.New("end date must be after start date")
	ErrConflict        = errors.New("campsite already booked for the selected dates")
	ErrNotFound        = errors.New("reservation not found")
	ErrUnknownCampsite = errors.New("unknown campsite")
	ErrSaveFailed      = errors.New("failed to save reservations")
)

// ValidStatus reports whether s is one of the known reservation statuses.
// An empty status is accepted and later defaulted to Pending.
func ValidStatus(s string) bool {
	switch s {
	case "", StatusPending, StatusConfirmed, StatusCanceled:
		return true
	}
	return false
}

// ExtrasSelection holds the add-on choices made for a reservation.
// Kayak usage is tracked but currently contributes nothing to the price.
type ExtrasSelection struct {
	PortableToilet   bool `json:"portableToilet"`
	FireWood         int  `json:"fireWood"`
	BagOfIce         int  `json:"bagOfIce"`
	DozenEggs        int  `json:"dozenEggs"`
	Honey            int  `json:"honey"`
	BreakfastSpecial int  `json:"breakfastSpecial"`
	MeatTray         int  `json:"meatTray"`
	Kayaks           bool `json:"kayaks"`
	KayaksCount      int  `json:"kayaksCount"`
}

// IsZero reports whether nothing was selected.
func (e ExtrasSelection) IsZero() bool {
	return e == ExtrasSelection{}
}

// Reservation is a booked occupancy of one campsite over a date interval.
// StartDate and EndDate are civil dates normalized to midnight UTC; the
// optional check-in/check-out times refine the turnover day only when the
// strict overlap policy is enabled.
type Reservation struct {
	ID             int             `json:"id"`
	GuestName      string          `json:"guestName"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	Campsite       string          `json:"campsite"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	CheckInTime    string          `json:"checkInTime,omitempty"`
	CheckOutTime   string          `json:"checkOutTime,omitempty"`
	People         int             `json:"people"`
	Status         string          `json:"status"`
	IsGroupBooking bool            `json:"isGroupBooking"`
	Extras         ExtrasSelection `json:"extras"`
	ExtrasPaid     bool            `json:"extrasPaid"`

	// ExtrasSummary is derived from Extras at write time and persisted
	// verbatim. It is display text; callers must not parse it back.
	ExtrasSummary string `json:"extrasSummary"`
}

// Touches reports whether d falls on any day of the stay, both ends
// inclusive. A reservation still "touches" its checkout day for display
// even though that day is free for a new check-in.
func (r Reservation) Touches(d time.Time) bool {
	return !d.Before(r.StartDate) && !d.After(r.EndDate)
}

// Intersects reports whether the stay shares at least one calendar day
// with [from, to], both ends inclusive.
func (r Reservation) Intersects(from, to time.Time) bool {
	return !r.StartDate.After(to) && !r.EndDate.Before(from)
}

// ReservationDraft is the immutable input for create and update. The store
// assigns the id and derives the extras summary.
type ReservationDraft struct {
	GuestName      string
	Phone          string
	Email          string
	Campsite       string
	StartDate      time.Time
	EndDate        time.Time
	CheckInTime    string
	CheckOutTime   string
	People         int
	Status         string
	IsGroupBooking bool
	Extras         ExtrasSelection
	ExtrasPaid     bool
}

// Validate checks the draft's required fields. Date ordering is reported as
// ErrDateRange, an out-of-catalog campsite as ErrUnknownCampsite, everything
// else as ErrValidation.
func (d ReservationDraft) Validate() error {
	if strings.TrimSpace(d.GuestName) == "" {
		return ErrValidation
	}
	if strings.TrimSpace(d.Campsite) == "" {
		return ErrValidation
	}
	if d.People <= 0 {
		return ErrValidation
	}
	if !ValidStatus(d.Status) {
		return ErrValidation
	}
	if !CampsiteExists(d.Campsite) {
		return ErrUnknownCampsite
	}
	if d.StartDate.IsZero() || d.EndDate.IsZero() {
		return ErrValidation
	}
	if d.StartDate.After(d.EndDate) {
		return ErrDateRange
	}
	return nil
}

package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// ReservationRecord is the row shape used by the MySQL persistence gateway.
// The structured extras selection goes into a JSON column; the cached
// summary text is stored alongside it, as on the CSV sheet.
type ReservationRecord struct {
	ID uint `gorm:"primaryKey;autoIncrement:false" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time

	GuestName      string         `gorm:"column:guest_name;size:255" json:"guest_name"`
	Phone          string         `gorm:"column:phone;size:64" json:"phone,omitempty"`
	Email          string         `gorm:"column:email;size:255" json:"email,omitempty"`
	Campsite       string         `gorm:"column:campsite;size:64;index" json:"campsite"`
	StartDate      time.Time      `gorm:"column:start_date" json:"start_date"`
	EndDate        time.Time      `gorm:"column:end_date" json:"end_date"`
	CheckInTime    string         `gorm:"column:check_in_time;size:8" json:"check_in_time,omitempty"`
	CheckOutTime   string         `gorm:"column:check_out_time;size:8" json:"check_out_time,omitempty"`
	People         int            `gorm:"column:people" json:"people"`
	Status         string         `gorm:"column:status;size:32" json:"status"`
	IsGroupBooking bool           `gorm:"column:is_group_booking;default:false" json:"is_group_booking"`
	Extras         datatypes.JSON `gorm:"column:extras" json:"extras,omitempty"`
	ExtrasPaid     bool           `gorm:"column:extras_paid;default:false" json:"extras_paid"`
	ExtrasSummary  string         `gorm:"column:extras_summary;type:text" json:"extras_summary,omitempty"`
}

func (ReservationRecord) TableName() string {
	return "reservations"
}

// NewReservationRecord converts a store reservation into its row shape.
func NewReservationRecord(r Reservation) (ReservationRecord, error) {
	extras, err := json.Marshal(r.Extras)
	if err != nil {
		return ReservationRecord{}, err
	}
	return ReservationRecord{
		ID:             uint(r.ID),
		GuestName:      r.GuestName,
		Phone:          r.Phone,
		Email:          r.Email,
		Campsite:       r.Campsite,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		CheckInTime:    r.CheckInTime,
		CheckOutTime:   r.CheckOutTime,
		People:         r.People,
		Status:         r.Status,
		IsGroupBooking: r.IsGroupBooking,
		Extras:         datatypes.JSON(extras),
		ExtrasPaid:     r.ExtrasPaid,
		ExtrasSummary:  r.ExtrasSummary,
	}, nil
}

// ToReservation converts a row back into the store representation.
func (rec ReservationRecord) ToReservation() (Reservation, error) {
	var extras ExtrasSelection
	if len(rec.Extras) > 0 {
		if err := json.Unmarshal(rec.Extras, &extras); err != nil {
			return Reservation{}, err
		}
	}
	return Reservation{
		ID:             int(rec.ID),
		GuestName:      rec.GuestName,
		Phone:          rec.Phone,
		Email:          rec.Email,
		Campsite:       rec.Campsite,
		StartDate:      rec.StartDate.UTC(),
		EndDate:        rec.EndDate.UTC(),
		CheckInTime:    rec.CheckInTime,
		CheckOutTime:   rec.CheckOutTime,
		People:         rec.People,
		Status:         rec.Status,
		IsGroupBooking: rec.IsGroupBooking,
		Extras:         extras,
		ExtrasPaid:     rec.ExtrasPaid,
		ExtrasSummary:  rec.ExtrasSummary,
	}, nil
}

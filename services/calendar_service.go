package services

import (
	"fmt"
	"strings"
	"time"

	"campsite-backend/models"
	"campsite-backend/utils"
)

// CalendarService derives the per-day view the booking calendar paints:
// which reservations touch a date and whether a cell shows as available.
type CalendarService struct {
	store *ReservationService
}

func NewCalendarService(store *ReservationService) *CalendarService {
	return &CalendarService{store: store}
}

// DayStatus is one calendar cell.
type DayStatus struct {
	Date     string `json:"date"`
	Occupied bool   `json:"occupied"`
	Label    string `json:"label"`
}

// DayLabel renders the cell text for a date: one line per touching
// reservation in store order, annotated with the check-in/check-out
// boundary. An empty label is the available state.
func (c *CalendarService) DayLabel(d time.Time) string {
	day := utils.DateOnly(d)
	lines := []string{}
	for _, res := range c.store.TouchingDate(day) {
		lines = append(lines, dayLine(res, day))
	}
	return strings.Join(lines, "\n")
}

func dayLine(res models.Reservation, day time.Time) string {
	base := fmt.Sprintf("%s %s", res.Campsite, res.GuestName)
	in := day.Equal(res.StartDate)
	out := day.Equal(res.EndDate)
	switch {
	case in && out:
		return base + " (in/out)"
	case in:
		return base + " (in)"
	case out:
		return base + " (out)"
	}
	return base
}

// Month returns a cell per calendar day of the month. Availability is
// purely a function of the label being empty.
func (c *CalendarService) Month(year int, month time.Month) []DayStatus {
	first, _ := utils.MonthBounds(year, month)
	days := utils.DaysInMonth(year, month)

	out := make([]DayStatus, 0, days)
	for i := 0; i < days; i++ {
		day := first.AddDate(0, 0, i)
		label := c.DayLabel(day)
		out = append(out, DayStatus{
			Date:     utils.FormatDate(day),
			Occupied: label != "",
			Label:    label,
		})
	}
	return out
}

package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"campsite-backend/models"
	"campsite-backend/utils"
)

// Column order of the bookings sheet. Phone, Email, the check-in/out times
// and Is Group Booking were added later; files written by the older variant
// load with those fields defaulted rather than failing.
var csvHeader = []string{
	"ID",
	"Name",
	"Phone",
	"Email",
	"Campsite",
	"Start Date",
	"End Date",
	"Check-in Time",
	"Check-out Time",
	"People",
	"Status",
	"Extras",
	"Extras Paid",
	"Kayaks",
	"Kayaks Count",
	"Is Group Booking",
}

// CSVStore persists the reservation list as one bookings.csv-compatible
// file. Saves go through a temp file and a rename so a failed write never
// leaves a partial sheet behind.
type CSVStore struct {
	Path string
}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{Path: path}
}

func (s *CSVStore) Load() ([]models.Reservation, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Reservation{}, nil
		}
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	if len(rows) == 0 {
		return []models.Reservation{}, nil
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"ID", "Name", "Campsite", "Start Date", "End Date", "People", "Status"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", s.Path, required)
		}
	}

	field := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	out := make([]models.Reservation, 0, len(rows)-1)
	for n, row := range rows[1:] {
		id, err := strconv.Atoi(field(row, "ID"))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad ID: %w", s.Path, n+2, err)
		}
		start, err := utils.ParseDate(field(row, "Start Date"))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", s.Path, n+2, err)
		}
		end, err := utils.ParseDate(field(row, "End Date"))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", s.Path, n+2, err)
		}
		people, err := strconv.Atoi(field(row, "People"))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad People: %w", s.Path, n+2, err)
		}

		res := models.Reservation{
			ID:             id,
			GuestName:      field(row, "Name"),
			Phone:          field(row, "Phone"),
			Email:          field(row, "Email"),
			Campsite:       field(row, "Campsite"),
			StartDate:      start,
			EndDate:        end,
			CheckInTime:    field(row, "Check-in Time"),
			CheckOutTime:   field(row, "Check-out Time"),
			People:         people,
			Status:         field(row, "Status"),
			IsGroupBooking: parseBool(field(row, "Is Group Booking")),
			ExtrasPaid:     parseBool(field(row, "Extras Paid")),
			ExtrasSummary:  field(row, "Extras"),
		}
		// The sheet only keeps the kayak fields structurally; the counted
		// extras live in the summary text alone.
		res.Extras.Kayaks = parseBool(field(row, "Kayaks"))
		if kc := field(row, "Kayaks Count"); kc != "" {
			if v, err := strconv.Atoi(kc); err == nil {
				res.Extras.KayaksCount = v
			}
		}
		out = append(out, res)
	}
	return out, nil
}

func (s *CSVStore) Save(reservations []models.Reservation) error {
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".bookings-*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := csv.NewWriter(tmp)
	if err := w.Write(csvHeader); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, res := range reservations {
		row := []string{
			strconv.Itoa(res.ID),
			res.GuestName,
			res.Phone,
			res.Email,
			res.Campsite,
			utils.FormatDate(res.StartDate),
			utils.FormatDate(res.EndDate),
			res.CheckInTime,
			res.CheckOutTime,
			strconv.Itoa(res.People),
			res.Status,
			res.ExtrasSummary,
			formatBool(res.ExtrasPaid),
			formatBool(res.Extras.Kayaks),
			strconv.Itoa(res.Extras.KayaksCount),
			formatBool(res.IsGroupBooking),
		}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("write row %d: %w", res.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		return fmt.Errorf("replace %s: %w", s.Path, err)
	}
	return nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// The sheet historically stored Python-style booleans.
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

package services

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"campsite-backend/models"
	"campsite-backend/storage"
	"campsite-backend/utils"
)

// ReservationService owns the in-memory reservation list, the source of
// truth for the session. Every mutation validates, conflict-checks, then
// writes the whole list through the persistence gateway. A failed save
// keeps the in-memory state authoritative; the mutated record is returned
// together with models.ErrSaveFailed so the caller can warn and retry via
// Flush.
//
// All reads hand out copies; nothing outside the service retains a
// reference into the list.
type ReservationService struct {
	mu      sync.RWMutex
	items   []models.Reservation
	nextID  int
	checker *ConflictChecker
	pricing *PricingService
	gateway storage.Gateway
}

func NewReservationService(gw storage.Gateway, checker *ConflictChecker, pricing *PricingService) *ReservationService {
	return &ReservationService{
		nextID:  1,
		checker: checker,
		pricing: pricing,
		gateway: gw,
	}
}

// Load replaces the in-memory list with the gateway's contents. A missing
// source is an empty sheet, not an error.
func (s *ReservationService) Load() error {
	loaded, err := s.gateway.Load()
	if err != nil {
		return fmt.Errorf("load reservations: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = loaded
	s.nextID = 1
	for _, res := range loaded {
		if res.ID >= s.nextID {
			s.nextID = res.ID + 1
		}
	}
	log.Printf("loaded %d reservations", len(loaded))
	return nil
}

// Create validates the draft, checks for conflicts and appends a new
// reservation with the next monotonic id. Ids are never reused within a
// process lifetime, even after deletes.
func (s *ReservationService) Create(draft models.ReservationDraft) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(draft, 0)
}

// Update re-validates exactly as Create, excluding the reservation from its
// own conflict check so moving it onto the dates it already occupies
// succeeds. The record is replaced in place, keeping its id.
func (s *ReservationService) Update(id int, draft models.ReservationDraft) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return models.Reservation{}, models.ErrNotFound
	}
	return s.insertLocked(draft, id)
}

// insertLocked does the shared validate/conflict/build work. existingID 0
// means a fresh reservation; otherwise the record with that id is replaced.
func (s *ReservationService) insertLocked(draft models.ReservationDraft, existingID int) (models.Reservation, error) {
	if err := draft.Validate(); err != nil {
		return models.Reservation{}, err
	}

	start := utils.DateOnly(draft.StartDate)
	end := utils.DateOnly(draft.EndDate)

	// Group bookings are exempt from conflict checking by explicit business
	// rule; they may coexist with overlapping stays on the same site.
	if !draft.IsGroupBooking {
		clash, err := s.checker.Conflicts(s.items, draft.Campsite, start, end,
			draft.CheckInTime, draft.CheckOutTime, existingID)
		if err != nil {
			return models.Reservation{}, err
		}
		if clash {
			return models.Reservation{}, models.ErrConflict
		}
	}

	status := draft.Status
	if status == "" {
		status = models.StatusPending
	}

	res := models.Reservation{
		ID:             existingID,
		GuestName:      strings.TrimSpace(draft.GuestName),
		Phone:          strings.TrimSpace(draft.Phone),
		Email:          strings.TrimSpace(draft.Email),
		Campsite:       draft.Campsite,
		StartDate:      start,
		EndDate:        end,
		CheckInTime:    draft.CheckInTime,
		CheckOutTime:   draft.CheckOutTime,
		People:         draft.People,
		Status:         status,
		IsGroupBooking: draft.IsGroupBooking,
		Extras:         draft.Extras,
		ExtrasPaid:     draft.ExtrasPaid,
		ExtrasSummary:  s.pricing.Summary(draft.Extras),
	}

	if existingID == 0 {
		res.ID = s.nextID
		s.nextID++
		s.items = append(s.items, res)
	} else {
		s.items[s.indexOfLocked(existingID)] = res
	}

	if err := s.saveLocked(); err != nil {
		return res, err
	}
	return res, nil
}

// Delete removes the reservation outright. This is a hard delete; soft
// deletion is what the Canceled status is for.
func (s *ReservationService) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return models.ErrNotFound
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return s.saveLocked()
}

// Flush rewrites the whole list through the gateway, for retrying after a
// failed save.
func (s *ReservationService) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *ReservationService) saveLocked() error {
	if err := s.gateway.Save(s.items); err != nil {
		log.Printf("⚠️  save failed, in-memory state is ahead of storage: %v", err)
		return fmt.Errorf("%w: %v", models.ErrSaveFailed, err)
	}
	return nil
}

func (s *ReservationService) indexOfLocked(id int) int {
	for i, res := range s.items {
		if res.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the reservation by id.
func (s *ReservationService) Get(id int) (models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return models.Reservation{}, models.ErrNotFound
	}
	return s.items[idx], nil
}

// All returns every reservation in insertion order.
func (s *ReservationService) All() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Reservation, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of reservations held.
func (s *ReservationService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// ForCampsite returns the reservations on one site, insertion order.
func (s *ReservationService) ForCampsite(campsite string) []models.Reservation {
	return s.filter(func(r models.Reservation) bool {
		return r.Campsite == campsite
	})
}

// TouchingDate returns reservations whose stay includes d, both ends
// inclusive. This deliberately differs from the half-open conflict rule: a
// reservation touches its checkout day for display even though that day is
// free for a new check-in.
func (s *ReservationService) TouchingDate(d time.Time) []models.Reservation {
	day := utils.DateOnly(d)
	return s.filter(func(r models.Reservation) bool {
		return r.Touches(day)
	})
}

// InMonth returns reservations whose interval intersects the given month.
func (s *ReservationService) InMonth(year int, month time.Month) []models.Reservation {
	first, last := utils.MonthBounds(year, month)
	return s.filter(func(r models.Reservation) bool {
		return r.Intersects(first, last)
	})
}

// InPeriod returns reservations lying fully inside [start, end], the
// report-window semantics.
func (s *ReservationService) InPeriod(start, end time.Time) []models.Reservation {
	from, to := utils.DateOnly(start), utils.DateOnly(end)
	return s.filter(func(r models.Reservation) bool {
		return !r.StartDate.Before(from) && !r.EndDate.After(to)
	})
}

// SearchFilter narrows a listing; zero-valued fields are ignored and the
// provided ones must all match.
type SearchFilter struct {
	Campsite     string
	Date         *time.Time
	Year         int
	Month        time.Month
	NameContains string
	DateContains string
}

// Search applies the filter over the full list in insertion order.
func (s *ReservationService) Search(f SearchFilter) []models.Reservation {
	var first, last time.Time
	if f.Year != 0 && f.Month != 0 {
		first, last = utils.MonthBounds(f.Year, f.Month)
	}
	name := strings.ToLower(strings.TrimSpace(f.NameContains))
	dateq := strings.TrimSpace(f.DateContains)

	return s.filter(func(r models.Reservation) bool {
		if f.Campsite != "" && r.Campsite != f.Campsite {
			return false
		}
		if f.Date != nil && !r.Touches(utils.DateOnly(*f.Date)) {
			return false
		}
		if !first.IsZero() && !r.Intersects(first, last) {
			return false
		}
		if name != "" && !strings.Contains(strings.ToLower(r.GuestName), name) {
			return false
		}
		if dateq != "" &&
			!strings.Contains(utils.FormatDate(r.StartDate), dateq) &&
			!strings.Contains(utils.FormatDate(r.EndDate), dateq) {
			return false
		}
		return true
	})
}

func (s *ReservationService) filter(keep func(models.Reservation) bool) []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Reservation{}
	for _, res := range s.items {
		if keep(res) {
			out = append(out, res)
		}
	}
	return out
}

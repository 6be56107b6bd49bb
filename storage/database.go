package storage

import (
	"fmt"

	"gorm.io/gorm"

	"campsite-backend/models"
)

// DatabaseStore keeps the reservation sheet in MySQL through GORM. It
// fulfils the same load/save contract as the CSV sheet; Save replaces the
// whole table inside one transaction so a failure leaves the previous
// snapshot intact.
type DatabaseStore struct {
	db *gorm.DB
}

func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (s *DatabaseStore) Load() ([]models.Reservation, error) {
	var recs []models.ReservationRecord
	if err := s.db.Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}
	out := make([]models.Reservation, 0, len(recs))
	for _, rec := range recs {
		res, err := rec.ToReservation()
		if err != nil {
			return nil, fmt.Errorf("decode reservation %d: %w", rec.ID, err)
		}
		out = append(out, res)
	}
	return out, nil
}

func (s *DatabaseStore) Save(reservations []models.Reservation) error {
	recs := make([]models.ReservationRecord, 0, len(reservations))
	for _, res := range reservations {
		rec, err := models.NewReservationRecord(res)
		if err != nil {
			return fmt.Errorf("encode reservation %d: %w", res.ID, err)
		}
		recs = append(recs, rec)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.ReservationRecord{}).Error; err != nil {
			return fmt.Errorf("clear reservations: %w", err)
		}
		if len(recs) == 0 {
			return nil
		}
		if err := tx.Create(&recs).Error; err != nil {
			return fmt.Errorf("insert reservations: %w", err)
		}
		return nil
	})
}

package storage

import "campsite-backend/models"

// Gateway round-trips the full reservation list to durable storage. Load
// returns an empty slice when the source does not exist yet; Save is
// all-or-nothing over the whole list, never incremental.
type Gateway interface {
	Load() ([]models.Reservation, error)
	Save(reservations []models.Reservation) error
}

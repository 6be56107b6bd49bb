package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"campsite-backend/models"
	"campsite-backend/services"
	"campsite-backend/utils"
)

// ReservationController exposes the booking ledger to the UI.
type ReservationController struct {
	Service *services.ReservationService
	Pricing *services.PricingService
}

func NewReservationController(s *services.ReservationService, p *services.PricingService) *ReservationController {
	return &ReservationController{Service: s, Pricing: p}
}

// reservationRequest is the wire shape of a create/update body. Dates are
// dd/mm/yyyy, matching the booking sheet; times are optional HH:MM.
type reservationRequest struct {
	Name           string                 `json:"name"`
	Phone          string                 `json:"phone"`
	Email          string                 `json:"email"`
	Campsite       string                 `json:"campsite"`
	StartDate      string                 `json:"startDate"`
	EndDate        string                 `json:"endDate"`
	CheckInTime    string                 `json:"checkInTime"`
	CheckOutTime   string                 `json:"checkOutTime"`
	People         int                    `json:"people"`
	Status         string                 `json:"status"`
	IsGroupBooking bool                   `json:"isGroupBooking"`
	Extras         models.ExtrasSelection `json:"extras"`
	ExtrasPaid     bool                   `json:"extrasPaid"`
}

func (req reservationRequest) toDraft() (models.ReservationDraft, error) {
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return models.ReservationDraft{}, err
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return models.ReservationDraft{}, err
	}
	return models.ReservationDraft{
		GuestName:      req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Campsite:       req.Campsite,
		StartDate:      start,
		EndDate:        end,
		CheckInTime:    req.CheckInTime,
		CheckOutTime:   req.CheckOutTime,
		People:         req.People,
		Status:         req.Status,
		IsGroupBooking: req.IsGroupBooking,
		Extras:         req.Extras,
		ExtrasPaid:     req.ExtrasPaid,
	}, nil
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrDateRange),
		errors.Is(err, models.ErrUnknownCampsite):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// CreateReservation (POST /api/reservations)
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	draft, err := req.toDraft()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := rc.Service.Create(draft)
	if err != nil && !errors.Is(err, models.ErrSaveFailed) {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	cost, items := rc.Pricing.Quote(res.Extras, res.People)
	payload := gin.H{"reservation": res, "extrasCost": cost, "lineItems": items}

	if err != nil {
		// Mutation applied in memory, save failed; the caller should warn
		// the user and retry the save.
		utils.JSONWarning(c, http.StatusCreated, payload, "reservation created but not persisted")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, payload)
}

// UpdateReservation (PUT /api/reservations/:id)
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "reservation id must be a number")
		return
	}

	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	draft, err := req.toDraft()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := rc.Service.Update(id, draft)
	if err != nil && !errors.Is(err, models.ErrSaveFailed) {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	cost, items := rc.Pricing.Quote(res.Extras, res.People)
	payload := gin.H{"reservation": res, "extrasCost": cost, "lineItems": items}

	if err != nil {
		utils.JSONWarning(c, http.StatusOK, payload, "reservation updated but not persisted")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payload)
}

// DeleteReservation (DELETE /api/reservations/:id)
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "reservation id must be a number")
		return
	}

	if err := rc.Service.Delete(id); err != nil {
		if errors.Is(err, models.ErrSaveFailed) {
			utils.JSONWarning(c, http.StatusOK, gin.H{"id": id}, "reservation deleted but not persisted")
			return
		}
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	log.Printf("✅ Reservation %d deleted", id)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}

// GetReservation (GET /api/reservations/:id)
func (rc *ReservationController) GetReservation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "reservation id must be a number")
		return
	}

	res, err := rc.Service.Get(id)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// GetReservations (GET /api/reservations) supports the search filters the
// UI offers: ?campsite= &date=dd/mm/yyyy &year=&month= &name= &q=.
func (rc *ReservationController) GetReservations(c *gin.Context) {
	filter := services.SearchFilter{
		Campsite:     c.Query("campsite"),
		NameContains: c.Query("name"),
		DateContains: c.Query("q"),
	}

	if raw := c.Query("date"); raw != "" {
		d, err := utils.ParseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		filter.Date = &d
	}
	if rawYear, rawMonth := c.Query("year"), c.Query("month"); rawYear != "" || rawMonth != "" {
		year, err := strconv.Atoi(rawYear)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "year must be a number")
			return
		}
		month, err := strconv.Atoi(rawMonth)
		if err != nil || month < 1 || month > 12 {
			utils.JSONError(c, http.StatusBadRequest, "month must be 1-12")
			return
		}
		filter.Year = year
		filter.Month = time.Month(month)
	}

	utils.JSONSuccess(c, http.StatusOK, rc.Service.Search(filter))
}

// GetReport (GET /api/reports?start=&end=) lists reservations falling fully
// inside the period.
func (rc *ReservationController) GetReport(c *gin.Context) {
	start, err := utils.ParseDate(c.Query("start"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := utils.ParseDate(c.Query("end"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if start.After(end) {
		utils.JSONError(c, http.StatusBadRequest, models.ErrDateRange.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rc.Service.InPeriod(start, end))
}

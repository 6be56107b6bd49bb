package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"campsite-backend/services"
	"campsite-backend/utils"
)

// CalendarController serves the day/month views the calendar grid paints.
type CalendarController struct {
	Calendar *services.CalendarService
	Service  *services.ReservationService
}

func NewCalendarController(cal *services.CalendarService, s *services.ReservationService) *CalendarController {
	return &CalendarController{Calendar: cal, Service: s}
}

// GetDay (GET /api/calendar/day?date=dd/mm/yyyy)
func (cc *CalendarController) GetDay(c *gin.Context) {
	day, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	label := cc.Calendar.DayLabel(day)
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"date":         utils.FormatDate(day),
		"occupied":     label != "",
		"label":        label,
		"reservations": cc.Service.TouchingDate(day),
	})
}

// GetMonth (GET /api/calendar/month?year=&month=)
func (cc *CalendarController) GetMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "year must be a number")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		utils.JSONError(c, http.StatusBadRequest, "month must be 1-12")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"days":  cc.Calendar.Month(year, time.Month(month)),
	})
}

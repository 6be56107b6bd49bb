package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campsite-backend/models"
	"campsite-backend/services"
	"campsite-backend/utils"
)

// CampsiteController serves the static site catalog and per-site listings.
type CampsiteController struct {
	Service *services.ReservationService
}

func NewCampsiteController(s *services.ReservationService) *CampsiteController {
	return &CampsiteController{Service: s}
}

// GetCampsites (GET /api/campsites)
func (cc *CampsiteController) GetCampsites(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, models.Campsites())
}

// GetCampsiteReservations (GET /api/campsites/:id/reservations)
func (cc *CampsiteController) GetCampsiteReservations(c *gin.Context) {
	id := c.Param("id")
	capacity, err := models.CapacityOf(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"campsite":     id,
		"capacity":     capacity,
		"reservations": cc.Service.ForCampsite(id),
	})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campsite-backend/models"
	"campsite-backend/services"
	"campsite-backend/utils"
)

// PricingController quotes extras costs for the live total the form shows.
type PricingController struct {
	Pricing *services.PricingService
}

func NewPricingController(p *services.PricingService) *PricingController {
	return &PricingController{Pricing: p}
}

type quoteRequest struct {
	Extras models.ExtrasSelection `json:"extras"`
	People int                    `json:"people"`
}

// QuotePrice (POST /api/pricing/quote)
func (pc *PricingController) QuotePrice(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	total, items := pc.Pricing.Quote(req.Extras, req.People)
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"total":     total,
		"lineItems": items,
		"summary":   pc.Pricing.Summary(req.Extras),
	})
}

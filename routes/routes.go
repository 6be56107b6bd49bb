package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"campsite-backend/controllers"
	"campsite-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the API surface.
func SetupRouter(
	rc *controllers.ReservationController,
	cc *controllers.CampsiteController,
	pc *controllers.PricingController,
	calc *controllers.CalendarController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		reservations := api.Group("/reservations")
		{
			reservations.GET("", rc.GetReservations)
			reservations.POST("", rc.CreateReservation)
			reservations.GET("/:id", rc.GetReservation)
			reservations.PUT("/:id", rc.UpdateReservation)
			reservations.DELETE("/:id", rc.DeleteReservation)
		}

		campsites := api.Group("/campsites")
		{
			campsites.GET("", cc.GetCampsites)
			campsites.GET("/:id/reservations", cc.GetCampsiteReservations)
		}

		pricing := api.Group("/pricing")
		{
			pricing.POST("/quote", pc.QuotePrice)
		}

		calendar := api.Group("/calendar")
		{
			calendar.GET("/day", calc.GetDay)
			calendar.GET("/month", calc.GetMonth)
		}

		api.GET("/reports", rc.GetReport)
	}

	return r
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"campsite-backend/config"
	"campsite-backend/controllers"
	"campsite-backend/routes"
	"campsite-backend/services"
	"campsite-backend/storage"
	"campsite-backend/utils"
)

func buildGateway() storage.Gateway {
	switch strings.ToLower(utils.EnvOrDefault("CAMPSITE_STORE", "csv")) {
	case "mysql":
		if err := config.ConnectDatabase(); err != nil {
			log.Fatalf("❌ Database connect failed: %v", err)
		}
		log.Println("✅ Database connection established and migrations applied")
		return storage.NewDatabaseStore(config.DB)
	default:
		path := utils.EnvOrDefault("CAMPSITE_CSV_PATH", "bookings.csv")
		log.Printf("✅ Using CSV store at %s", path)
		return storage.NewCSVStore(path)
	}
}

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	gateway := buildGateway()

	checker := services.NewConflictChecker(utils.EnvBool("STRICT_TURNOVER"))
	pricing := services.NewPricingService()
	reservations := services.NewReservationService(gateway, checker, pricing)
	calendar := services.NewCalendarService(reservations)

	if err := reservations.Load(); err != nil {
		log.Fatalf("❌ Failed to load reservations: %v", err)
	}

	reservationController := controllers.NewReservationController(reservations, pricing)
	campsiteController := controllers.NewCampsiteController(reservations)
	pricingController := controllers.NewPricingController(pricing)
	calendarController := controllers.NewCalendarController(calendar, reservations)

	router := routes.SetupRouter(reservationController, campsiteController, pricingController, calendarController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	// Flush once more so an earlier failed save gets a final retry.
	if err := reservations.Flush(); err != nil {
		log.Printf("⚠️  Final save failed: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

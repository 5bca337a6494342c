package api

import (
	"log"
	stdhttp "net/http"

	intconfig "charterops/internal/config"
	h "charterops/internal/http/handlers"
	"charterops/internal/http/middleware"
	"charterops/internal/repositories"
	"charterops/internal/services"
	"charterops/internal/store"
	"charterops/internal/webhook"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	docs := store.DocStore{}
	audit := store.AuditLogger{Store: docs}
	tripRepo := repositories.TripRepository{Store: docs}

	trips := services.NewTripService(tripRepo, audit)
	wizard := services.WizardService{
		Trips:    trips,
		Contacts: repositories.ContactRepository{Store: docs},
		BaseURL:  env.BaseURL,
	}
	intake := services.IntakeService{
		Trips:      tripRepo,
		Passengers: repositories.PassengerRepository{Store: docs},
		Audit:      audit,
		Notifier:   webhook.Client{},
		WebhookURL: env.WebhookURL,
	}
	manifest := services.ManifestService{Loader: trips.GetTrip}

	handler := h.NewHandler(trips, wizard, intake, manifest)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		tripRoutes := api.Group("/trips")
		tripRoutes.GET("", handler.GetTrips)
		tripRoutes.POST("", handler.CreateTrip)
		tripRoutes.POST("/wizard", handler.CreateTripFromWizard)
		tripRoutes.GET("/:id", handler.GetTrip)
		tripRoutes.PUT("/:id", handler.UpdateTrip)
		tripRoutes.DELETE("/:id", handler.DeleteTrip)
		tripRoutes.GET("/:id/manifest", handler.GetTripManifest)
	}

	client := r.Group("/client/trip")
	{
		client.GET("/:tripId", handler.GetClientTrip)
		client.GET("/:tripId/guests", handler.GetSavedGuests)
		client.POST("/:tripId", handler.SubmitClientTrip)
		client.POST("/:tripId/validate", handler.ValidateClientPage)
	}

	return r
}

package handlers

import (
	"charterops/internal/services"
)

// Handler bundles the service dependencies for HTTP request handling.
type Handler struct {
	Trips    *services.TripService
	Wizard   services.WizardService
	Intake   services.IntakeService
	Manifest services.ManifestService
}

func NewHandler(trips *services.TripService, wizard services.WizardService,
	intake services.IntakeService, manifest services.ManifestService) *Handler {
	return &Handler{
		Trips:    trips,
		Wizard:   wizard,
		Intake:   intake,
		Manifest: manifest,
	}
}

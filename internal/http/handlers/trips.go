package handlers

import (
	"net/http"

	"charterops/internal/domain/models"
	"charterops/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/trips
// Re-reads the listing from the store; when that fails the in-memory
// listing (which may hold local-only trips) is served instead, so the
// dashboard stays usable through a backend outage.
func (h *Handler) GetTrips(c *gin.Context) {
	err := h.Trips.RefreshListing(c.Request.Context())
	trips := h.Trips.Listing()
	if err != nil && len(trips) == 0 {
		RespondError(c, http.StatusBadGateway, "failed to load trips", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// POST /api/trips
// Quick create: a placeholder trip, visible immediately.
func (h *Handler) CreateTrip(c *gin.Context) {
	trip, outcome := h.Trips.QuickCreate(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{"trip": trip, "outcome": outcome})
}

// POST /api/trips/wizard
func (h *Handler) CreateTripFromWizard(c *gin.Context) {
	var in services.WizardInput
	if !BindJSONOrError(c, &in) {
		return
	}
	trip, clientLink, fieldErrs, err := h.Wizard.CreateTrip(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		RespondFieldErrors(c, fieldErrs)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"trip": trip, "clientLink": clientLink})
}

// GET /api/trips/:id
func (h *Handler) GetTrip(c *gin.Context) {
	trip, err := h.Trips.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

// PUT /api/trips/:id
// Full aggregate replace. A store failure does not fail the request:
// the mutation lands locally and the outcome says so.
func (h *Handler) UpdateTrip(c *gin.Context) {
	var trip models.Trip
	if !BindJSONOrError(c, &trip) {
		return
	}
	outcome := h.Trips.UpdateTrip(c.Request.Context(), c.Param("id"), trip)
	c.JSON(http.StatusOK, gin.H{"outcome": outcome})
}

// DELETE /api/trips/:id
func (h *Handler) DeleteTrip(c *gin.Context) {
	outcome := h.Trips.DeleteTrip(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"outcome": outcome})
}

// GET /api/trips/:id/manifest
func (h *Handler) GetTripManifest(c *gin.Context) {
	data, filename, err := h.Manifest.GenerateManifest(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

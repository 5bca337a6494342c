package handlers

import (
	"net/http"

	"charterops/internal/services"
	"charterops/internal/validation"

	"github.com/gin-gonic/gin"
)

// GET /client/trip/:tripId
// Hydrates the client form. A missing trip is reported as such, not as a
// generic failure.
func (h *Handler) GetClientTrip(c *gin.Context) {
	trip, err := h.Intake.LoadForm(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

// GET /client/trip/:tripId/guests
// Saved guest profiles for the trip's contact, for one-click reuse.
func (h *Handler) GetSavedGuests(c *gin.Context) {
	trip, err := h.Intake.LoadForm(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if trip.ContactID == "" {
		c.JSON(http.StatusOK, gin.H{"guests": []any{}})
		return
	}
	guests, err := h.Intake.SavedGuests(c.Request.Context(), trip.ContactID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"guests": guests})
}

type validatePageRequest struct {
	Page   string            `json:"page"`
	Values map[string]string `json:"values"`
}

// POST /client/trip/:tripId/validate
// Per-page validation for the wizard's Next button. All field errors for
// the page come back in one response.
func (h *Handler) ValidateClientPage(c *gin.Context) {
	var req validatePageRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	errs := h.Intake.ValidatePage(validation.Page(req.Page), req.Values)
	c.JSON(http.StatusOK, gin.H{"valid": len(errs) == 0, "errors": errs})
}

// POST /client/trip/:tripId
// Final submission. Unlike dashboard trip mutations, persistence and
// webhook failures are reported to the client instead of being swallowed.
func (h *Handler) SubmitClientTrip(c *gin.Context) {
	var form services.IntakeForm
	if !BindJSONOrError(c, &form) {
		return
	}

	fieldErrs, err := h.Intake.Submit(c.Request.Context(), c.Param("tripId"), form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		RespondFieldErrors(c, fieldErrs)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trip details completed"})
}

package services

import (
	"context"
	"fmt"
	"strconv"

	"charterops/internal/domain/models"
	"charterops/internal/store"
	"charterops/internal/utils"
	"charterops/internal/validation"
	"charterops/internal/webhook"
)

// PassengerStore is the saved-guest persistence contract.
type PassengerStore interface {
	Create(ctx context.Context, p models.Passenger) (string, error)
	ListByContact(ctx context.Context, contactID string) ([]models.Passenger, error)
}

// LegIntake is one flight page of the client form. Numeric fields are
// pointers so that an omitted value and an explicit zero stay
// distinguishable for validation.
type LegIntake struct {
	CarryOnBags  *int           `json:"carryOnBags"`
	CheckedBags  *int           `json:"checkedBags"`
	TotalWeight  *int           `json:"totalWeight"`
	SpecialItems string         `json:"specialItems"`
	Pets         string         `json:"pets"`
	Firearms     string         `json:"firearms"`
	Hazardous    string         `json:"hazardous"`
	Guests       []models.Guest `json:"guests"`
}

// IntakeForm is the full client submission: one page per flight leg plus
// the summary preferences page.
type IntakeForm struct {
	Legs []LegIntake `json:"legs"`

	Catering              string `json:"catering"`
	CateringDetails       string `json:"cateringDetails"`
	Transportation        string `json:"transportation"`
	TransportationDetails string `json:"transportationDetails"`
	AdditionalRequests    string `json:"additionalRequests"`
}

// IntakeService handles the client-facing form at /client/trip/{tripId}.
// Unlike dashboard mutations, persistence and webhook failures here are
// surfaced to the caller for explicit user-visible handling.
type IntakeService struct {
	Trips      TripStore
	Passengers PassengerStore
	Audit      store.AuditLogger
	Notifier   webhook.Notifier
	WebhookURL string
	RequestID  string
}

// LoadForm fetches the trip behind a client link. Absence surfaces as a
// NotFoundError so the form can say so instead of failing generically.
func (s IntakeService) LoadForm(ctx context.Context, tripID string) (models.Trip, error) {
	return s.Trips.Get(ctx, tripID)
}

// ValidatePage runs one form page's rules, returning every field error.
func (s IntakeService) ValidatePage(page validation.Page, values map[string]string) []validation.FieldError {
	return validation.Validate(page, values)
}

// SavedGuests lists a contact's reusable guest profiles, newest first.
func (s IntakeService) SavedGuests(ctx context.Context, contactID string) ([]models.Passenger, error) {
	return s.Passengers.ListByContact(ctx, contactID)
}

// Submit validates the whole form, applies it to the trip, saves the
// guests as passenger profiles and notifies the CRM webhook. Field errors
// come back in one pass; any persistence or webhook error is returned.
func (s IntakeService) Submit(ctx context.Context, tripID string, form IntakeForm) ([]validation.FieldError, error) {
	trip, err := s.Trips.Get(ctx, tripID)
	if err != nil {
		return nil, err
	}

	errs := s.validateForm(form)
	if len(errs) > 0 {
		return errs, nil
	}

	applyIntake(&trip, form)

	if err := s.Trips.Update(ctx, tripID, trip); err != nil {
		return nil, err
	}

	for _, leg := range form.Legs {
		for _, g := range leg.Guests {
			if utils.TrimOrEmpty(g.Name) == "" {
				continue
			}
			_, err := s.Passengers.Create(ctx, models.Passenger{
				ContactID:    trip.ContactID,
				TripID:       tripID,
				Name:         g.Name,
				Relationship: g.Relationship,
				DOB:          g.DOB,
				Weight:       g.Weight,
				PassportID:   g.PassportID,
				Allergies:    g.Allergies,
				Preferences:  g.Preferences,
			})
			if err != nil {
				return nil, err
			}
		}
	}

	s.Audit.LogAction(ctx, "client_form_submitted", map[string]any{"tripId": tripID})

	if s.WebhookURL != "" && s.Notifier != nil {
		payload := map[string]any{
			"event":  "trip_details_completed",
			"tripId": tripID,
			"trip":   trip,
			"preferences": map[string]string{
				"catering":              form.Catering,
				"cateringDetails":       form.CateringDetails,
				"transportation":        form.Transportation,
				"transportationDetails": form.TransportationDetails,
				"additionalRequests":    form.AdditionalRequests,
			},
		}
		if err := s.Notifier.Notify(ctx, s.WebhookURL, payload); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

func (s IntakeService) validateForm(form IntakeForm) []validation.FieldError {
	errs := []validation.FieldError{}
	for i, leg := range form.Legs {
		legErrs := validation.Validate(validation.PageLuggage, map[string]string{
			"carryOnBags": intString(leg.CarryOnBags),
			"checkedBags": intString(leg.CheckedBags),
			"totalWeight": intString(leg.TotalWeight),
		})
		errs = append(errs, prefixed(fmt.Sprintf("legs.%d", i), legErrs)...)

		for j, g := range leg.Guests {
			guestErrs := validation.Validate(validation.PageGuest, map[string]string{
				"name":         g.Name,
				"relationship": g.Relationship,
				"dob":          g.DOB,
				"weight":       strconv.Itoa(g.Weight),
			})
			errs = append(errs, prefixed(fmt.Sprintf("legs.%d.guests.%d", i, j), guestErrs)...)
		}
	}
	return errs
}

// applyIntake folds the submitted pages into the aggregate, leg by leg.
// The trip's leg list is authoritative: extra form pages are ignored. The
// declaration flags follow the form's yes/no selects; item lists are not
// derived from them.
func applyIntake(trip *models.Trip, form IntakeForm) {
	for i := range form.Legs {
		if i >= len(trip.Flights) {
			break
		}
		leg := form.Legs[i]
		f := &trip.Flights[i]

		if leg.CarryOnBags != nil {
			f.Luggage.CarryOn = *leg.CarryOnBags
		}
		if leg.CheckedBags != nil {
			f.Luggage.Checked = *leg.CheckedBags
		}
		if leg.TotalWeight != nil {
			f.Luggage.TotalWeight = *leg.TotalWeight
		}
		if utils.TrimOrEmpty(leg.SpecialItems) != "" {
			f.Luggage.MiscItems = append(f.Luggage.MiscItems, leg.SpecialItems)
			f.Luggage.Misc = len(f.Luggage.MiscItems)
		}
		f.Luggage.Pets = leg.Pets == "yes"
		f.Luggage.Firearms = leg.Firearms == "yes"
		f.Luggage.Hazardous = leg.Hazardous == "yes"

		if leg.Guests != nil {
			f.Guests = append([]models.Guest{}, leg.Guests...)
		}
	}

	trip.Status = models.StatusInProgress
	trip.NumLegs = len(trip.Flights)
}

func prefixed(prefix string, errs []validation.FieldError) []validation.FieldError {
	out := make([]validation.FieldError, len(errs))
	for i, e := range errs {
		out[i] = validation.FieldError{Field: prefix + "." + e.Field, Message: e.Message}
	}
	return out
}

func intString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

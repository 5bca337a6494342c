package services

import (
	"context"
	"fmt"
	"strconv"

	"charterops/internal/domain/models"
	"charterops/internal/utils"
	"charterops/internal/validation"
)

// ContactStore is the contact persistence contract the wizard needs.
type ContactStore interface {
	Create(ctx context.Context, contact models.Contact) (string, error)
}

// WizardInput is the payload of the 3-step trip creation flow
// (contact info, flight details, summary).
type WizardInput struct {
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	RepID        string `json:"repId"`

	TripType     string `json:"tripType"`
	NumLegs      int    `json:"numLegs"`
	DepAirport   string `json:"depAirport"`
	ArrAirport   string `json:"arrAirport"`
	DepDate      string `json:"depDate"`
	DepTime      string `json:"depTime"`
	AircraftType string `json:"aircraftType"`

	Notes string `json:"notes"`
}

// WizardService turns a completed creation wizard into a contact record
// and a persisted trip with a shareable client link.
type WizardService struct {
	Trips     *TripService
	Contacts  ContactStore
	BaseURL   string
	RequestID string
}

// CreateTrip validates both required wizard pages in one pass, then builds
// and persists the trip. Field errors block creation; contact persistence
// failure does not (the trip still goes through, contact-less).
func (s WizardService) CreateTrip(ctx context.Context, in WizardInput) (models.Trip, string, []validation.FieldError, error) {
	errs := validation.Validate(validation.PageContact, map[string]string{
		"contactName":  in.ContactName,
		"contactEmail": in.ContactEmail,
		"contactPhone": in.ContactPhone,
	})
	errs = append(errs, validation.Validate(validation.PageFlightDetails, map[string]string{
		"tripType":   in.TripType,
		"numLegs":    strconv.Itoa(in.NumLegs),
		"depAirport": in.DepAirport,
		"arrAirport": in.ArrAirport,
		"depDate":    in.DepDate,
		"depTime":    in.DepTime,
	})...)
	if len(errs) > 0 {
		return models.Trip{}, "", errs, nil
	}

	contactID := ""
	if s.Contacts != nil {
		id, err := s.Contacts.Create(ctx, models.Contact{
			Name:  utils.TrimOrEmpty(in.ContactName),
			Email: utils.TrimOrEmpty(in.ContactEmail),
			Phone: utils.TrimOrEmpty(in.ContactPhone),
			RepID: utils.TrimOrEmpty(in.RepID),
		})
		if err != nil {
			utils.LogEvent(s.RequestID, "wizard", "create_contact", "contact store failed: "+err.Error())
		} else {
			contactID = id
		}
	}

	dep := utils.NormalizeSpace(in.DepAirport)
	arr := utils.NormalizeSpace(in.ArrAirport)

	trip := models.NewTrip(in.ContactName, in.ContactEmail)
	trip.ContactID = contactID
	trip.Route = fmt.Sprintf("%s -> %s", dep, arr)
	trip.DepartureDate = in.DepDate
	trip.DepartureTime = in.DepTime
	trip.Notes = in.Notes
	trip.AircraftType = utils.FirstNonEmpty(in.AircraftType, trip.AircraftType)

	first := &trip.Flights[0]
	first.Departure = dep
	first.Arrival = arr
	first.Date = in.DepDate
	first.Time = in.DepTime
	first.AircraftType = trip.AircraftType

	for len(trip.Flights) < in.NumLegs {
		trip.AddLeg()
	}

	created, outcome := s.Trips.CreateTrip(ctx, trip)
	utils.LogEvent(s.RequestID, "wizard", "create_trip",
		"trip "+created.ID+" outcome="+string(outcome))

	return created, models.ClientFormURL(s.BaseURL, created.ID), nil, nil
}

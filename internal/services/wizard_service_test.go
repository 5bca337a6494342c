package services

import (
	"context"
	"errors"
	"testing"

	"charterops/internal/domain/models"
	"charterops/internal/store"
)

type fakeContactStore struct {
	created []models.Contact
	err     error
}

func (f *fakeContactStore) Create(_ context.Context, c models.Contact) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, c)
	return "contact-1", nil
}

func validWizardInput() WizardInput {
	return WizardInput{
		ContactName:  "Ada Client",
		ContactEmail: "ada@example.com",
		ContactPhone: "555-0100",
		TripType:     models.TripMultiLeg,
		NumLegs:      3,
		DepAirport:   "KLAX",
		ArrAirport:   "KJFK",
		DepDate:      "2026-09-15",
		DepTime:      "09:30",
		AircraftType: "Gulfstream G650",
		Notes:        "VIP handling",
	}
}

func TestWizardFieldErrorsBlockCreation(t *testing.T) {
	trips := &fakeTripStore{}
	contacts := &fakeContactStore{}
	svc := WizardService{Trips: NewTripService(trips, store.AuditLogger{}), Contacts: contacts}

	in := validWizardInput()
	in.ContactName = ""
	in.DepAirport = ""

	_, _, fieldErrs, err := svc.CreateTrip(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}
	if len(fieldErrs) != 2 {
		t.Fatalf("expected 2 field errors, got %v", fieldErrs)
	}
	if len(trips.stored) != 0 || len(contacts.created) != 0 {
		t.Fatalf("nothing should be persisted on validation failure")
	}
}

func TestWizardCreatesTripWithLink(t *testing.T) {
	trips := &fakeTripStore{}
	contacts := &fakeContactStore{}
	svc := WizardService{
		Trips:    NewTripService(trips, store.AuditLogger{}),
		Contacts: contacts,
		BaseURL:  "https://ops.example.com",
	}

	trip, link, fieldErrs, err := svc.CreateTrip(context.Background(), validWizardInput())
	if err != nil || len(fieldErrs) != 0 {
		t.Fatalf("CreateTrip: err=%v fieldErrs=%v", err, fieldErrs)
	}

	if trip.Status != models.StatusPendingClientInfo {
		t.Fatalf("status = %q", trip.Status)
	}
	if trip.ContactID != "contact-1" {
		t.Fatalf("contact id = %q", trip.ContactID)
	}
	if trip.Route != "KLAX -> KJFK" {
		t.Fatalf("route = %q", trip.Route)
	}
	if trip.NumLegs != 3 || len(trip.Flights) != 3 {
		t.Fatalf("legs = %d/%d, want 3", trip.NumLegs, len(trip.Flights))
	}

	first := trip.Flights[0]
	if first.Departure != "KLAX" || first.Arrival != "KJFK" || first.AircraftType != "Gulfstream G650" {
		t.Fatalf("first leg not seeded from wizard: %+v", first)
	}
	if link != "https://ops.example.com/client/trip/"+trip.ID {
		t.Fatalf("client link = %q", link)
	}
	if len(contacts.created) != 1 || contacts.created[0].Name != "Ada Client" {
		t.Fatalf("contact record not created: %+v", contacts.created)
	}
}

func TestWizardToleratesContactStoreFailure(t *testing.T) {
	trips := &fakeTripStore{}
	svc := WizardService{
		Trips:    NewTripService(trips, store.AuditLogger{}),
		Contacts: &fakeContactStore{err: errors.New("store down")},
	}

	trip, _, fieldErrs, err := svc.CreateTrip(context.Background(), validWizardInput())
	if err != nil || len(fieldErrs) != 0 {
		t.Fatalf("CreateTrip: err=%v fieldErrs=%v", err, fieldErrs)
	}
	if trip.ContactID != "" {
		t.Fatalf("contact id should be empty after contact store failure")
	}
	if len(trips.stored) != 1 {
		t.Fatalf("trip should still be persisted")
	}
}

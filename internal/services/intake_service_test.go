package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"charterops/internal/domain"
	"charterops/internal/domain/models"
	"charterops/internal/store"
	"charterops/internal/validation"
)

type fakePassengerStore struct {
	created []models.Passenger
	err     error
}

func (f *fakePassengerStore) Create(_ context.Context, p models.Passenger) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, p)
	return fmt.Sprintf("passenger-%d", len(f.created)), nil
}

func (f *fakePassengerStore) ListByContact(_ context.Context, contactID string) ([]models.Passenger, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Passenger{}
	for _, p := range f.created {
		if p.ContactID == contactID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeNotifier struct {
	urls []string
	err  error
}

func (f *fakeNotifier) Notify(_ context.Context, url string, _ any) error {
	if f.err != nil {
		return f.err
	}
	f.urls = append(f.urls, url)
	return nil
}

func ip(v int) *int { return &v }

func seededIntake(t *testing.T) (*fakeTripStore, *fakePassengerStore, *fakeNotifier, IntakeService, models.Trip) {
	t.Helper()
	trip := models.NewTrip("Ada Client", "ada@example.com")
	trip.ID = "t1"
	trip.ContactID = "c1"

	trips := &fakeTripStore{}
	trips.seed(trip)
	passengers := &fakePassengerStore{}
	notifier := &fakeNotifier{}
	svc := IntakeService{
		Trips:      trips,
		Passengers: passengers,
		Audit:      store.AuditLogger{},
		Notifier:   notifier,
		WebhookURL: "https://crm.example.com/hooks/trips",
	}
	return trips, passengers, notifier, svc, trip
}

func validLeg() LegIntake {
	return LegIntake{
		CarryOnBags:  ip(2),
		CheckedBags:  ip(1),
		TotalWeight:  ip(180),
		SpecialItems: "Golf clubs",
		Pets:         "yes",
		Firearms:     "no",
		Hazardous:    "no",
		Guests: []models.Guest{{
			Name:         "Jamie Guest",
			Relationship: "spouse",
			DOB:          "1990-04-12",
			Weight:       150,
		}},
	}
}

func TestIntakeSubmitCompletesTrip(t *testing.T) {
	trips, passengers, notifier, svc, _ := seededIntake(t)

	fieldErrs, err := svc.Submit(context.Background(), "t1", IntakeForm{
		Legs:     []LegIntake{validLeg()},
		Catering: "yes",
	})
	if err != nil || len(fieldErrs) != 0 {
		t.Fatalf("Submit: err=%v fieldErrs=%v", err, fieldErrs)
	}

	saved := trips.stored[0]
	if saved.Status != models.StatusInProgress {
		t.Fatalf("status = %q, want in progress", saved.Status)
	}
	l := saved.Flights[0].Luggage
	if l.CarryOn != 2 || l.Checked != 1 || l.TotalWeight != 180 {
		t.Fatalf("luggage counts not applied: %+v", l)
	}
	if !l.Pets || l.Firearms || l.Hazardous {
		t.Fatalf("declaration flags not applied: %+v", l)
	}
	if len(l.MiscItems) != 1 || l.MiscItems[0] != "Golf clubs" || l.Misc != 1 {
		t.Fatalf("special items not folded into misc list: %+v", l)
	}
	if len(saved.Flights[0].Guests) != 1 || saved.Flights[0].Guests[0].Name != "Jamie Guest" {
		t.Fatalf("guests not applied: %+v", saved.Flights[0].Guests)
	}

	if len(passengers.created) != 1 {
		t.Fatalf("passenger profiles created = %d, want 1", len(passengers.created))
	}
	p := passengers.created[0]
	if p.ContactID != "c1" || p.TripID != "t1" || p.Name != "Jamie Guest" {
		t.Fatalf("passenger record = %+v", p)
	}

	if len(notifier.urls) != 1 || notifier.urls[0] != "https://crm.example.com/hooks/trips" {
		t.Fatalf("webhook calls = %v", notifier.urls)
	}
}

func TestIntakeSubmitFieldErrors(t *testing.T) {
	trips, passengers, notifier, svc, _ := seededIntake(t)

	leg := validLeg()
	leg.CarryOnBags = nil
	leg.Guests[0].DOB = ""

	fieldErrs, err := svc.Submit(context.Background(), "t1", IntakeForm{Legs: []LegIntake{leg}})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	want := map[string]string{
		"legs.0.carryOnBags":  "Number of carry-on bags is required",
		"legs.0.guests.0.dob": "Date of birth is required",
	}
	if len(fieldErrs) != len(want) {
		t.Fatalf("field errors = %v", fieldErrs)
	}
	for _, e := range fieldErrs {
		if want[e.Field] != e.Message {
			t.Fatalf("unexpected field error %+v", e)
		}
	}

	if trips.stored[0].Status != models.StatusPendingClientInfo {
		t.Fatalf("trip must not change on validation failure")
	}
	if len(passengers.created) != 0 || len(notifier.urls) != 0 {
		t.Fatalf("no side effects expected on validation failure")
	}
}

func TestIntakeSubmitExplicitZeroCountsPass(t *testing.T) {
	_, _, _, svc, _ := seededIntake(t)

	leg := LegIntake{
		CarryOnBags: ip(0),
		CheckedBags: ip(0),
		TotalWeight: ip(0),
		Pets:        "no",
		Firearms:    "no",
		Hazardous:   "no",
	}
	fieldErrs, err := svc.Submit(context.Background(), "t1", IntakeForm{Legs: []LegIntake{leg}})
	if err != nil || len(fieldErrs) != 0 {
		t.Fatalf("zero counts must pass: err=%v fieldErrs=%v", err, fieldErrs)
	}
}

func TestIntakeSubmitTripMissing(t *testing.T) {
	_, _, _, svc, _ := seededIntake(t)

	_, err := svc.Submit(context.Background(), "nope", IntakeForm{})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestIntakeSubmitUpdateFailureSurfaces(t *testing.T) {
	trips, _, notifier, svc, _ := seededIntake(t)
	trips.updateErr = errors.New("store down")

	_, err := svc.Submit(context.Background(), "t1", IntakeForm{Legs: []LegIntake{validLeg()}})
	if err == nil {
		t.Fatalf("persistence failure must surface to the client form")
	}
	if len(notifier.urls) != 0 {
		t.Fatalf("webhook must not fire after a failed save")
	}
}

func TestIntakeSubmitWebhookFailureSurfaces(t *testing.T) {
	_, _, notifier, svc, _ := seededIntake(t)
	notifier.err = errors.New("crm unreachable")

	_, err := svc.Submit(context.Background(), "t1", IntakeForm{Legs: []LegIntake{validLeg()}})
	if err == nil {
		t.Fatalf("webhook failure must surface")
	}
}

func TestIntakeExtraFormLegsIgnored(t *testing.T) {
	trips, _, _, svc, _ := seededIntake(t)

	fieldErrs, err := svc.Submit(context.Background(), "t1", IntakeForm{
		Legs: []LegIntake{validLeg(), validLeg()},
	})
	if err != nil || len(fieldErrs) != 0 {
		t.Fatalf("Submit: err=%v fieldErrs=%v", err, fieldErrs)
	}
	if len(trips.stored[0].Flights) != 1 {
		t.Fatalf("the trip's own leg list is authoritative, got %d legs", len(trips.stored[0].Flights))
	}
}

func TestIntakeValidatePageDelegates(t *testing.T) {
	_, _, _, svc, _ := seededIntake(t)

	errs := svc.ValidatePage(validation.PageLuggage, map[string]string{
		"carryOnBags": "-1", "checkedBags": "0", "totalWeight": "0",
	})
	if len(errs) != 1 || errs[0].Message != "Must be 0 or greater" {
		t.Fatalf("errs = %v", errs)
	}
}

func TestIntakeSavedGuestsFiltersByContact(t *testing.T) {
	_, passengers, _, svc, _ := seededIntake(t)
	passengers.created = []models.Passenger{
		{ContactID: "c1", Name: "Jamie"},
		{ContactID: "other", Name: "Stranger"},
	}

	guests, err := svc.SavedGuests(context.Background(), "c1")
	if err != nil {
		t.Fatalf("SavedGuests: %v", err)
	}
	if len(guests) != 1 || guests[0].Name != "Jamie" {
		t.Fatalf("guests = %+v", guests)
	}
}

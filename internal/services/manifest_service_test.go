package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"charterops/internal/domain/models"
)

func TestGenerateManifest(t *testing.T) {
	trip := models.NewTrip("Ada Client", "ada@example.com")
	trip.ID = "t1"
	trip.Route = "KLAX -> KJFK"
	trip.Flights[0].Guests = []models.Guest{{Name: "Jamie", Relationship: "spouse", Weight: 150}}
	trip.Flights[0].Luggage.Pets = true
	trip.Flights[0].Luggage.PetItems = []string{"Small dog"}

	svc := ManifestService{Loader: func(context.Context, string) (models.Trip, error) {
		return trip, nil
	}}

	data, filename, err := svc.GenerateManifest(context.Background(), "t1")
	if err != nil {
		t.Fatalf("GenerateManifest: %v", err)
	}
	if filename != "MANIFEST_t1.pdf" {
		t.Fatalf("filename = %q", filename)
	}
	if len(data) == 0 || !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF (%d bytes)", len(data))
	}
}

func TestGenerateManifestLoaderErrorPropagates(t *testing.T) {
	svc := ManifestService{Loader: func(context.Context, string) (models.Trip, error) {
		return models.Trip{}, errors.New("store down")
	}}

	if _, _, err := svc.GenerateManifest(context.Background(), "t1"); err == nil {
		t.Fatalf("loader error must propagate")
	}
}

func TestManifestFilenameSanitized(t *testing.T) {
	trip := models.NewTrip("Ada", "a@b")
	trip.ID = "trip/1753 weird"

	svc := ManifestService{Loader: func(context.Context, string) (models.Trip, error) {
		return trip, nil
	}}

	_, filename, err := svc.GenerateManifest(context.Background(), trip.ID)
	if err != nil {
		t.Fatalf("GenerateManifest: %v", err)
	}
	if filename != "MANIFEST_trip_1753_weird.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

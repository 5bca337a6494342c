package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"charterops/internal/domain/models"
	"charterops/internal/store"
	"charterops/internal/utils"
)

// Outcome is the reconciliation result of one trip-level mutation.
// Optimistic is the transient state while the gateway call is in flight;
// callers observe Persisted or LocalOnly.
type Outcome string

const (
	OutcomeOptimistic Outcome = "optimistic"
	OutcomePersisted  Outcome = "persisted"
	OutcomeLocalOnly  Outcome = "local_only"
)

// TripStore is the persistence contract the dashboard needs.
type TripStore interface {
	Create(ctx context.Context, trip models.Trip) (string, error)
	Update(ctx context.Context, id string, trip models.Trip) error
	Get(ctx context.Context, id string) (models.Trip, error)
	List(ctx context.Context) ([]models.Trip, error)
	Delete(ctx context.Context, id string) error
}

// TripService owns the dashboard's in-memory trip listing and applies the
// optimistic mutation policy: the UI never blocks on a backend failure.
// After any successful write the listing is fully replaced from the store;
// after a failed write the local transformation stands in.
type TripService struct {
	Trips     TripStore
	Audit     store.AuditLogger
	RequestID string

	mu      sync.Mutex
	listing []models.Trip
}

// NewTripService wires the service around a trip store.
func NewTripService(trips TripStore, audit store.AuditLogger) *TripService {
	return &TripService{Trips: trips, Audit: audit}
}

// Listing returns a snapshot of the in-memory trip listing.
func (s *TripService) Listing() []models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Trip, len(s.listing))
	for i, t := range s.listing {
		out[i] = t.Clone()
	}
	return out
}

// RefreshListing re-reads the listing from the store. Unlike mutations,
// the initial load is allowed to fail visibly.
func (s *TripService) RefreshListing(ctx context.Context) error {
	trips, err := s.Trips.List(ctx)
	if err != nil {
		return err
	}
	s.replaceListing(trips)
	return nil
}

// QuickCreate is the dashboard's "+ Create Trip" button: a placeholder
// aggregate visible immediately.
func (s *TripService) QuickCreate(ctx context.Context) (models.Trip, Outcome) {
	trip := models.NewTrip("New Client", "client@example.com")
	return s.CreateTrip(ctx, trip)
}

// CreateTrip makes the trip visible under a temporary id, then persists.
// On gateway success the temporary id is swapped for the canonical one; on
// failure the temporary id stays for this process lifetime, no retry.
func (s *TripService) CreateTrip(ctx context.Context, trip models.Trip) (models.Trip, Outcome) {
	tempID := fmt.Sprintf("trip-%d", time.Now().UnixNano())
	trip.ID = tempID
	trip.ClientLink = models.ClientFormPath(tempID)
	if trip.NumLegs != len(trip.Flights) {
		trip.NumLegs = len(trip.Flights)
	}

	s.mu.Lock()
	s.listing = append(s.listing, trip.Clone())
	s.mu.Unlock()

	id, err := s.Trips.Create(ctx, trip)
	if err != nil {
		utils.LogEvent(s.RequestID, "trips", "create", "store failed, keeping local trip "+tempID+": "+err.Error())
		return trip, OutcomeLocalOnly
	}

	trip.ID = id
	trip.ClientLink = models.ClientFormPath(id)

	s.mu.Lock()
	for i := range s.listing {
		if s.listing[i].ID == tempID {
			s.listing[i] = trip.Clone()
			break
		}
	}
	s.mu.Unlock()

	s.Audit.LogAction(ctx, "trip_created", map[string]any{"tripId": id})
	return trip, OutcomePersisted
}

// UpdateTrip replaces the whole aggregate. Gateway failure degrades to a
// local-only update; no error escapes to the caller.
func (s *TripService) UpdateTrip(ctx context.Context, id string, trip models.Trip) Outcome {
	trip.NumLegs = len(trip.Flights)

	if err := s.Trips.Update(ctx, id, trip); err != nil {
		utils.LogEvent(s.RequestID, "trips", "update", "store failed, applying local update for "+id+": "+err.Error())
		s.applyLocal(id, trip)
		return OutcomeLocalOnly
	}

	s.refreshOr(ctx, func() { s.applyLocal(id, trip) })
	s.Audit.LogAction(ctx, "trip_updated", map[string]any{"tripId": id})
	return OutcomePersisted
}

// DeleteTrip removes the trip from store and listing. Gateway failure
// degrades to a local-only removal.
func (s *TripService) DeleteTrip(ctx context.Context, id string) Outcome {
	if err := s.Trips.Delete(ctx, id); err != nil {
		utils.LogEvent(s.RequestID, "trips", "delete", "store failed, removing locally "+id+": "+err.Error())
		s.removeLocal(id)
		return OutcomeLocalOnly
	}

	s.refreshOr(ctx, func() { s.removeLocal(id) })
	s.Audit.LogAction(ctx, "trip_deleted", map[string]any{"tripId": id})
	return OutcomePersisted
}

// GetTrip reads one trip, falling back to the in-memory listing so that
// local-only trips stay reachable.
func (s *TripService) GetTrip(ctx context.Context, id string) (models.Trip, error) {
	trip, err := s.Trips.Get(ctx, id)
	if err == nil {
		return trip, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.listing {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return models.Trip{}, err
}

// refreshOr replaces the listing from the store after a successful write,
// falling back to the supplied local transformation when the re-read
// itself fails.
func (s *TripService) refreshOr(ctx context.Context, fallback func()) {
	trips, err := s.Trips.List(ctx)
	if err != nil {
		utils.LogEvent(s.RequestID, "trips", "list", "refresh after write failed: "+err.Error())
		fallback()
		return
	}
	s.replaceListing(trips)
}

func (s *TripService) replaceListing(trips []models.Trip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listing = trips
}

func (s *TripService) applyLocal(id string, trip models.Trip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	trip.ID = id
	for i := range s.listing {
		if s.listing[i].ID == id {
			s.listing[i] = trip.Clone()
			return
		}
	}
	s.listing = append(s.listing, trip.Clone())
}

func (s *TripService) removeLocal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.listing[:0]
	for _, t := range s.listing {
		if t.ID != id {
			out = append(out, t)
		}
	}
	s.listing = out
}

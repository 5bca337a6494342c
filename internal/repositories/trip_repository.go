package repositories

import (
	"context"
	"encoding/json"

	"charterops/internal/domain"
	"charterops/internal/domain/models"
	"charterops/internal/store"
)

// TripRepository maps trip aggregates onto the trips collection of the
// document store. The aggregate is written whole on every save; merge
// semantics stay with the callers.
type TripRepository struct {
	Store store.Gateway
}

func (r TripRepository) Create(ctx context.Context, trip models.Trip) (string, error) {
	trip.ID = ""
	return r.Store.Create(ctx, store.CollTrips, trip)
}

func (r TripRepository) Update(ctx context.Context, id string, trip models.Trip) error {
	trip.ID = ""
	return r.Store.Update(ctx, store.CollTrips, id, trip)
}

func (r TripRepository) Get(ctx context.Context, id string) (models.Trip, error) {
	doc, err := r.Store.Get(ctx, store.CollTrips, id)
	if err != nil {
		return models.Trip{}, err
	}
	return decodeTrip(doc)
}

func (r TripRepository) List(ctx context.Context) ([]models.Trip, error) {
	docs, err := r.Store.List(ctx, store.CollTrips)
	if err != nil {
		return nil, err
	}
	out := make([]models.Trip, 0, len(docs))
	for _, doc := range docs {
		trip, err := decodeTrip(doc)
		if err != nil {
			return out, err
		}
		out = append(out, trip)
	}
	return out, nil
}

func (r TripRepository) Delete(ctx context.Context, id string) error {
	return r.Store.Delete(ctx, store.CollTrips, id)
}

func decodeTrip(doc store.Document) (models.Trip, error) {
	var trip models.Trip
	if err := json.Unmarshal(doc.Payload, &trip); err != nil {
		return models.Trip{}, domain.InternalError{Msg: "corrupt trip document " + doc.ID, Err: err}
	}
	trip.ID = doc.ID
	trip.CreatedAt = doc.CreatedAt
	trip.UpdatedAt = doc.UpdatedAt
	return trip, nil
}

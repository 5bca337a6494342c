package repositories

import (
	"context"
	"encoding/json"

	"charterops/internal/domain"
	"charterops/internal/domain/models"
	"charterops/internal/store"
)

// ContactRepository persists client contact records.
type ContactRepository struct {
	Store store.Gateway
}

func (r ContactRepository) Create(ctx context.Context, contact models.Contact) (string, error) {
	contact.ID = ""
	return r.Store.Create(ctx, store.CollContacts, contact)
}

func (r ContactRepository) Get(ctx context.Context, id string) (models.Contact, error) {
	doc, err := r.Store.Get(ctx, store.CollContacts, id)
	if err != nil {
		return models.Contact{}, err
	}
	var contact models.Contact
	if err := json.Unmarshal(doc.Payload, &contact); err != nil {
		return models.Contact{}, domain.InternalError{Msg: "corrupt contact document " + doc.ID, Err: err}
	}
	contact.ID = doc.ID
	contact.CreatedAt = doc.CreatedAt
	contact.UpdatedAt = doc.UpdatedAt
	return contact, nil
}

// PassengerRepository persists saved guest profiles.
type PassengerRepository struct {
	Store store.Gateway
}

func (r PassengerRepository) Create(ctx context.Context, p models.Passenger) (string, error) {
	p.ID = ""
	return r.Store.Create(ctx, store.CollPassengers, p)
}

// ListByContact returns a contact's saved guests, newest first. The store
// has no filtered query, so the collection is filtered after the read.
func (r PassengerRepository) ListByContact(ctx context.Context, contactID string) ([]models.Passenger, error) {
	docs, err := r.Store.List(ctx, store.CollPassengers)
	if err != nil {
		return nil, err
	}
	out := []models.Passenger{}
	for _, doc := range docs {
		var p models.Passenger
		if err := json.Unmarshal(doc.Payload, &p); err != nil {
			return out, domain.InternalError{Msg: "corrupt passenger document " + doc.ID, Err: err}
		}
		if p.ContactID != contactID {
			continue
		}
		p.ID = doc.ID
		p.CreatedAt = doc.CreatedAt
		p.UpdatedAt = doc.UpdatedAt
		out = append(out, p)
	}
	return out, nil
}

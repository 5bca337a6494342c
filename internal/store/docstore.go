// Package store is the persistence gateway: a generic document store
// backed by a single MySQL table. Every record is a JSON payload keyed by
// collection + id, with server-assigned created_at/updated_at.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	intconfig "charterops/internal/config"
	"charterops/internal/domain"

	"github.com/google/uuid"
)

// Collection names. Only trips, flights, passengers, contacts and logs are
// exercised by the trip-management flows; the rest exist for the wider CRM
// data model.
const (
	CollContacts        = "contacts"
	CollRepresentatives = "representatives"
	CollOpportunities   = "opportunities"
	CollTrips           = "trips"
	CollFlights         = "flights"
	CollPassengers      = "passengers"
	CollOperators       = "operators"
	CollOperatorOrders  = "operator_orders"
	CollVendors         = "vendors"
	CollVendorOrders    = "vendor_orders"
	CollPayments        = "payments"
	CollLogs            = "logs"
)

// Document is one stored record. Payload is the raw JSON body; timestamps
// are assigned by the database on write.
type Document struct {
	ID        string          `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Gateway is the generic create/read/update/delete/list contract the
// services depend on.
type Gateway interface {
	Create(ctx context.Context, collection string, payload any) (string, error)
	Update(ctx context.Context, collection, id string, payload any) error
	Get(ctx context.Context, collection, id string) (Document, error)
	List(ctx context.Context, collection string) ([]Document, error)
	Delete(ctx context.Context, collection, id string) error
}

// DocStore implements Gateway on MySQL.
type DocStore struct {
	DB *sql.DB
}

func (s DocStore) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// Create inserts the payload under a fresh id and returns it.
func (s DocStore) Create(ctx context.Context, collection string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", domain.PersistenceError{Op: "create", Collection: collection, Err: err}
	}
	id := uuid.NewString()
	_, err = s.db().ExecContext(ctx,
		`INSERT INTO documents (id, collection, payload, created_at, updated_at) VALUES (?, ?, ?, NOW(6), NOW(6))`,
		id, collection, body,
	)
	if err != nil {
		return "", domain.PersistenceError{Op: "create", Collection: collection, Err: err}
	}
	return id, nil
}

// Update replaces the payload and refreshes updated_at.
func (s DocStore) Update(ctx context.Context, collection, id string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.PersistenceError{Op: "update", Collection: collection, Err: err}
	}
	res, err := s.db().ExecContext(ctx,
		`UPDATE documents SET payload = ?, updated_at = NOW(6) WHERE collection = ? AND id = ?`,
		body, collection, id,
	)
	if err != nil {
		return domain.PersistenceError{Op: "update", Collection: collection, Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, err := s.Get(ctx, collection, id); err != nil {
			return err
		}
	}
	return nil
}

// Get reads one record. Absence is a NotFoundError, distinct from a failed
// round trip.
func (s DocStore) Get(ctx context.Context, collection, id string) (Document, error) {
	var doc Document
	doc.ID = id
	err := s.db().QueryRowContext(ctx,
		`SELECT payload, created_at, updated_at FROM documents WHERE collection = ? AND id = ?`,
		collection, id,
	).Scan(&doc.Payload, &doc.CreatedAt, &doc.UpdatedAt)
	if err == sql.ErrNoRows {
		return Document{}, domain.NotFoundError{Resource: singular(collection) + " " + id}
	}
	if err != nil {
		return Document{}, domain.PersistenceError{Op: "get", Collection: collection, Err: err}
	}
	return doc, nil
}

// List returns the collection ordered by creation time descending.
func (s DocStore) List(ctx context.Context, collection string) ([]Document, error) {
	rows, err := s.db().QueryContext(ctx,
		`SELECT id, payload, created_at, updated_at FROM documents WHERE collection = ? ORDER BY created_at DESC, id DESC`,
		collection,
	)
	if err != nil {
		return nil, domain.PersistenceError{Op: "list", Collection: collection, Err: err}
	}
	defer rows.Close()

	out := []Document{}
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Payload, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return out, domain.PersistenceError{Op: "list", Collection: collection, Err: err}
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return out, domain.PersistenceError{Op: "list", Collection: collection, Err: err}
	}
	return out, nil
}

func singular(collection string) string {
	if len(collection) > 1 && collection[len(collection)-1] == 's' {
		return collection[:len(collection)-1]
	}
	return collection
}

// Delete removes one record. Deleting an absent id is not an error.
func (s DocStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.db().ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ?`,
		collection, id,
	)
	if err != nil {
		return domain.PersistenceError{Op: "delete", Collection: collection, Err: err}
	}
	return nil
}

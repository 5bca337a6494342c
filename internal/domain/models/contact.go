package models

import "time"

// Contact is the client record the creation wizard captures.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	RepID     string    `json:"repId,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Passenger is a saved guest profile reusable across trips for one
// contact. It uses the client-form relationship vocabulary.
type Passenger struct {
	ID           string    `json:"id"`
	ContactID    string    `json:"contactId"`
	TripID       string    `json:"tripId,omitempty"`
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
	DOB          string    `json:"dob"`
	Weight       int       `json:"weight"`
	PassportID   string    `json:"passportId,omitempty"`
	PassportURL  string    `json:"passportUrl,omitempty"`
	Allergies    string    `json:"allergies,omitempty"`
	Preferences  string    `json:"preferences,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

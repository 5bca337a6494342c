// Package session implements the modal edit flow of the staff dashboard:
// a deep working copy of one trip that absorbs every mutation until the
// user explicitly saves or discards. The persisted original is never
// touched by a session operation.
package session

import (
	"fmt"

	"charterops/internal/domain/models"
)

// Session holds the working copy for one edit of one trip. It is meant for
// single-threaded use from a UI event loop, like the modal it models.
type Session struct {
	working models.Trip
	closed  bool
}

// Open deep-copies the trip into a fresh editable session.
func Open(trip models.Trip) *Session {
	return &Session{working: trip.Clone()}
}

// Trip returns a snapshot of the current working copy.
func (s *Session) Trip() models.Trip {
	return s.working.Clone()
}

// SetField updates a top-level trip field on the working copy.
func (s *Session) SetField(field, value string) error {
	switch field {
	case "clientName":
		s.working.ClientName = value
	case "clientEmail":
		s.working.ClientEmail = value
	case "route":
		s.working.Route = value
	case "departureDate":
		s.working.DepartureDate = value
	case "departureTime":
		s.working.DepartureTime = value
	case "aircraftType":
		s.working.AircraftType = value
	case "notes":
		s.working.Notes = value
	case "status":
		switch value {
		case models.StatusPendingClientInfo, models.StatusInProgress, models.StatusComplete:
			s.working.Status = value
		default:
			return fmt.Errorf("unknown trip status %q", value)
		}
	default:
		return fmt.Errorf("unknown trip field %q", field)
	}
	return nil
}

// AddLeg appends a new empty flight to the working copy.
func (s *Session) AddLeg() {
	s.working.AddLeg()
}

// RemoveLeg removes the leg at index i. Like the dashboard it is a no-op
// when only one leg remains.
func (s *Session) RemoveLeg(i int) bool {
	return s.working.RemoveLeg(i)
}

// UpdateFlightField sets one field on the leg at index flight.
func (s *Session) UpdateFlightField(flight int, field, value string) error {
	f, err := s.flight(flight)
	if err != nil {
		return err
	}
	switch field {
	case "departure":
		f.Departure = value
	case "arrival":
		f.Arrival = value
	case "date":
		f.Date = value
	case "time":
		f.Time = value
	case "aircraftType":
		f.AircraftType = value
	case "status":
		switch value {
		case models.FlightRequested, models.FlightConfirmed, models.FlightCompleted:
			f.Status = value
		default:
			return fmt.Errorf("unknown flight status %q", value)
		}
	default:
		return fmt.Errorf("unknown flight field %q", field)
	}
	return nil
}

// AddGuest appends an empty guest to the leg at index flight.
func (s *Session) AddGuest(flight int) error {
	f, err := s.flight(flight)
	if err != nil {
		return err
	}
	f.Guests = append(f.Guests, models.Guest{})
	return nil
}

// RemoveGuest drops the guest at the positional index. Later guest indices
// shift down by one; callers must not reuse indices cached before the
// removal.
func (s *Session) RemoveGuest(flight, guest int) error {
	f, err := s.flight(flight)
	if err != nil {
		return err
	}
	if guest < 0 || guest >= len(f.Guests) {
		return fmt.Errorf("guest index %d out of range", guest)
	}
	f.Guests = append(f.Guests[:guest], f.Guests[guest+1:]...)
	return nil
}

// UpdateGuestField sets a string field on one guest.
func (s *Session) UpdateGuestField(flight, guest int, field, value string) error {
	g, err := s.guest(flight, guest)
	if err != nil {
		return err
	}
	switch field {
	case "name":
		g.Name = value
	case "relationship":
		g.Relationship = value
	case "dob":
		g.DOB = value
	case "passportId":
		g.PassportID = value
	case "passportFile":
		g.PassportFile = value
	case "allergies":
		g.Allergies = value
	case "preferences":
		g.Preferences = value
	default:
		return fmt.Errorf("unknown guest field %q", field)
	}
	return nil
}

// UpdateGuestWeight sets the numeric weight on one guest.
func (s *Session) UpdateGuestWeight(flight, guest, weight int) error {
	g, err := s.guest(flight, guest)
	if err != nil {
		return err
	}
	g.Weight = weight
	return nil
}

// UpdateLuggageCount sets one of the numeric luggage fields.
func (s *Session) UpdateLuggageCount(flight int, field string, value int) error {
	f, err := s.flight(flight)
	if err != nil {
		return err
	}
	switch field {
	case "carryOn":
		f.Luggage.CarryOn = value
	case "checked":
		f.Luggage.Checked = value
	case "misc":
		f.Luggage.Misc = value
	case "totalWeight":
		f.Luggage.TotalWeight = value
	default:
		return fmt.Errorf("unknown luggage count field %q", field)
	}
	return nil
}

// UpdateLuggageFlag sets one of the boolean declaration flags. The paired
// item list is left alone, matching the form's independent toggles.
func (s *Session) UpdateLuggageFlag(flight int, field string, value bool) error {
	f, err := s.flight(flight)
	if err != nil {
		return err
	}
	switch field {
	case "pets":
		f.Luggage.Pets = value
	case "firearms":
		f.Luggage.Firearms = value
	case "hazardous":
		f.Luggage.Hazardous = value
	default:
		return fmt.Errorf("unknown luggage flag %q", field)
	}
	return nil
}

// AddDeclarationItem appends value to the named declaration list without
// touching the paired boolean flag.
func (s *Session) AddDeclarationItem(flight int, key, value string) error {
	items, err := s.items(flight, key)
	if err != nil {
		return err
	}
	*items = append(*items, value)
	return nil
}

// UpdateDeclarationItem replaces the item at idx in the named list.
func (s *Session) UpdateDeclarationItem(flight int, key string, idx int, value string) error {
	items, err := s.items(flight, key)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(*items) {
		return fmt.Errorf("declaration item index %d out of range", idx)
	}
	(*items)[idx] = value
	return nil
}

// RemoveDeclarationItem drops the item at idx from the named list.
func (s *Session) RemoveDeclarationItem(flight int, key string, idx int) error {
	items, err := s.items(flight, key)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(*items) {
		return fmt.Errorf("declaration item index %d out of range", idx)
	}
	*items = append((*items)[:idx], (*items)[idx+1:]...)
	return nil
}

// Save closes the session and hands back the working copy as the candidate
// for persistence.
func (s *Session) Save() (models.Trip, error) {
	if s.closed {
		return models.Trip{}, fmt.Errorf("session already closed")
	}
	s.closed = true
	return s.working.Clone(), nil
}

// Discard closes the session and drops the working copy.
func (s *Session) Discard() {
	s.closed = true
}

// Closed reports whether the session has been saved or discarded.
func (s *Session) Closed() bool { return s.closed }

func (s *Session) flight(i int) (*models.Flight, error) {
	if s.closed {
		return nil, fmt.Errorf("session already closed")
	}
	if i < 0 || i >= len(s.working.Flights) {
		return nil, fmt.Errorf("flight index %d out of range", i)
	}
	return &s.working.Flights[i], nil
}

func (s *Session) guest(flight, guest int) (*models.Guest, error) {
	f, err := s.flight(flight)
	if err != nil {
		return nil, err
	}
	if guest < 0 || guest >= len(f.Guests) {
		return nil, fmt.Errorf("guest index %d out of range", guest)
	}
	return &f.Guests[guest], nil
}

func (s *Session) items(flight int, key string) (*[]string, error) {
	f, err := s.flight(flight)
	if err != nil {
		return nil, err
	}
	return f.Luggage.Items(key)
}

package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Trip status workflow. Values are stored verbatim in the document store,
// so they keep the human-readable form the dashboard displays.
const (
	StatusPendingClientInfo = "pending client info"
	StatusInProgress        = "in progress"
	StatusComplete          = "complete"
)

// Flight status workflow.
const (
	FlightRequested = "requested"
	FlightConfirmed = "confirmed"
	FlightCompleted = "completed"
)

// Trip types offered by the creation wizard.
const (
	TripOneWay    = "one_way"
	TripRoundTrip = "round_trip"
	TripMultiLeg  = "multi_leg"
)

// Guest relationship vocabularies. The client wizard and the staff
// dashboard historically use different sets; each is scoped to its own
// form and neither is translated into the other on write.
var (
	ClientRelationships = []string{"self", "spouse", "child", "guest"}
	StaffRelationships  = []string{"Primary", "Spouse", "Family", "Business", "Other"}
)

// Declaration item list keys on a luggage record.
const (
	DeclMiscItems      = "miscItems"
	DeclPetItems       = "petItems"
	DeclHazardousItems = "hazardousItems"
	DeclFirearmItems   = "firearmItems"
)

// Luggage is the single declaration record every flight carries. The
// boolean flags are stored independently of their item lists and are
// allowed to drift; nothing derives one from the other.
type Luggage struct {
	CarryOn        int      `json:"carryOn"`
	Checked        int      `json:"checked"`
	Misc           int      `json:"misc"`
	TotalWeight    int      `json:"totalWeight"`
	Pets           bool     `json:"pets"`
	Firearms       bool     `json:"firearms"`
	Hazardous      bool     `json:"hazardous"`
	MiscItems      []string `json:"miscItems"`
	PetItems       []string `json:"petItems"`
	HazardousItems []string `json:"hazardousItems"`
	FirearmItems   []string `json:"firearmItems"`
}

// NewLuggage returns a zeroed record with non-nil item lists.
func NewLuggage() Luggage {
	return Luggage{
		MiscItems:      []string{},
		PetItems:       []string{},
		HazardousItems: []string{},
		FirearmItems:   []string{},
	}
}

// Items returns a pointer to the named declaration list.
func (l *Luggage) Items(key string) (*[]string, error) {
	switch key {
	case DeclMiscItems:
		return &l.MiscItems, nil
	case DeclPetItems:
		return &l.PetItems, nil
	case DeclHazardousItems:
		return &l.HazardousItems, nil
	case DeclFirearmItems:
		return &l.FirearmItems, nil
	}
	return nil, fmt.Errorf("unknown declaration list %q", key)
}

func (l Luggage) clone() Luggage {
	out := l
	out.MiscItems = append([]string{}, l.MiscItems...)
	out.PetItems = append([]string{}, l.PetItems...)
	out.HazardousItems = append([]string{}, l.HazardousItems...)
	out.FirearmItems = append([]string{}, l.FirearmItems...)
	return out
}

// Guest is one traveller on one flight leg. PassportFile is an opaque
// upload handle; the file itself is not persisted by this service.
type Guest struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	DOB          string `json:"dob"`
	Weight       int    `json:"weight"`
	PassportID   string `json:"passportId,omitempty"`
	PassportFile string `json:"passportFile,omitempty"`
	Allergies    string `json:"allergies,omitempty"`
	Preferences  string `json:"preferences,omitempty"`
}

// Flight is one leg of a trip. It owns its guests and exactly one luggage
// record.
type Flight struct {
	ID           string  `json:"id"`
	Departure    string  `json:"departure"`
	Arrival      string  `json:"arrival"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	AircraftType string  `json:"aircraftType"`
	Status       string  `json:"status"`
	Guests       []Guest `json:"guests"`
	Luggage      Luggage `json:"luggage"`
}

// NewFlight returns an empty leg with a fresh unique id.
func NewFlight() Flight {
	return Flight{
		ID:           "flight-" + uuid.NewString(),
		AircraftType: "TBD",
		Status:       FlightRequested,
		Guests:       []Guest{},
		Luggage:      NewLuggage(),
	}
}

func (f Flight) clone() Flight {
	out := f
	out.Guests = append([]Guest{}, f.Guests...)
	out.Luggage = f.Luggage.clone()
	return out
}

// Trip is the aggregate root. It exclusively owns its flights; NumLegs is
// derived and must equal len(Flights) after every leg mutation.
type Trip struct {
	ID            string    `json:"id"`
	ContactID     string    `json:"contactId,omitempty"`
	ClientName    string    `json:"clientName"`
	ClientEmail   string    `json:"clientEmail"`
	Route         string    `json:"route"`
	DepartureDate string    `json:"departureDate"`
	DepartureTime string    `json:"departureTime"`
	AircraftType  string    `json:"aircraftType"`
	NumLegs       int       `json:"numLegs"`
	Status        string    `json:"status"`
	ClientLink    string    `json:"clientLink"`
	Notes         string    `json:"notes,omitempty"`
	Flights       []Flight  `json:"flights"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
}

// NewTrip builds a fresh aggregate: pending client info, route placeholder
// and a single empty leg.
func NewTrip(clientName, clientEmail string) Trip {
	t := Trip{
		ClientName:   clientName,
		ClientEmail:  clientEmail,
		Route:        "TBD",
		AircraftType: "TBD",
		Status:       StatusPendingClientInfo,
		Flights:      []Flight{NewFlight()},
	}
	t.NumLegs = len(t.Flights)
	return t
}

// AddLeg appends a new empty flight and recomputes NumLegs.
func (t *Trip) AddLeg() *Flight {
	t.Flights = append(t.Flights, NewFlight())
	t.NumLegs = len(t.Flights)
	return &t.Flights[len(t.Flights)-1]
}

// RemoveLeg drops the leg at index i. Removal is permitted only while more
// than one leg exists; otherwise, or when i is out of range, the trip is
// left unchanged and false is returned.
func (t *Trip) RemoveLeg(i int) bool {
	if len(t.Flights) <= 1 || i < 0 || i >= len(t.Flights) {
		return false
	}
	t.Flights = append(t.Flights[:i], t.Flights[i+1:]...)
	t.NumLegs = len(t.Flights)
	return true
}

// Clone deep-copies the aggregate, including per-leg guest lists and
// luggage item lists.
func (t Trip) Clone() Trip {
	out := t
	out.Flights = make([]Flight, len(t.Flights))
	for i, f := range t.Flights {
		out.Flights[i] = f.clone()
	}
	return out
}

// ClientFormPath is the only externally addressable identifier format for
// a trip. It must stay stable and copyable as plain text.
func ClientFormPath(tripID string) string {
	return "/client/trip/" + tripID
}

// ClientFormURL prefixes the form path with the public base URL.
func ClientFormURL(baseURL, tripID string) string {
	return baseURL + ClientFormPath(tripID)
}

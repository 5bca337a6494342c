// Package validation holds the pure per-page form rules shared by the
// staff creation wizard and the client intake form. There are no
// cross-field checks (arrival may equal departure), and all errors for a
// page are reported in a single pass.
package validation

import (
	"regexp"
	"strconv"
	"strings"

	"charterops/internal/domain/models"
)

// Page names a validated form step.
type Page string

const (
	PageContact       Page = "contact"
	PageFlightDetails Page = "flight_details"
	PageLuggage       Page = "luggage"
	PageGuest         Page = "guest"
)

// FieldError names one offending field with a human-readable reason.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// The form only requires a text@text shape; stricter address validation is
// left to the mail provider.
var emailShape = regexp.MustCompile(`^\S+@\S+$`)

var tripTypes = map[string]bool{
	models.TripOneWay:    true,
	models.TripRoundTrip: true,
	models.TripMultiLeg:  true,
}

// Validate checks the named page against a flat field->value map and
// returns every field error found.
func Validate(page Page, values map[string]string) []FieldError {
	switch page {
	case PageContact:
		return validateContact(values)
	case PageFlightDetails:
		return validateFlightDetails(values)
	case PageLuggage:
		return validateLuggage(values)
	case PageGuest:
		return validateGuest(values)
	}
	return []FieldError{{Field: string(page), Message: "unknown form page"}}
}

func validateContact(values map[string]string) []FieldError {
	errs := []FieldError{}
	if empty(values, "contactName") {
		errs = append(errs, FieldError{"contactName", "Contact name is required"})
	}
	switch email := strings.TrimSpace(values["contactEmail"]); {
	case email == "":
		errs = append(errs, FieldError{"contactEmail", "Email is required"})
	case !emailShape.MatchString(email):
		errs = append(errs, FieldError{"contactEmail", "Invalid email address"})
	}
	if empty(values, "contactPhone") {
		errs = append(errs, FieldError{"contactPhone", "Phone is required"})
	}
	return errs
}

func validateFlightDetails(values map[string]string) []FieldError {
	errs := []FieldError{}
	switch tt := strings.TrimSpace(values["tripType"]); {
	case tt == "":
		errs = append(errs, FieldError{"tripType", "Trip type is required"})
	case !tripTypes[tt]:
		errs = append(errs, FieldError{"tripType", "Unknown trip type"})
	}
	switch n, ok := intValue(values, "numLegs"); {
	case !ok:
		errs = append(errs, FieldError{"numLegs", "Number of legs is required"})
	case n < 1:
		errs = append(errs, FieldError{"numLegs", "Must be at least 1"})
	}
	if empty(values, "depAirport") {
		errs = append(errs, FieldError{"depAirport", "Departure airport is required"})
	}
	if empty(values, "arrAirport") {
		errs = append(errs, FieldError{"arrAirport", "Arrival airport is required"})
	}
	if empty(values, "depDate") {
		errs = append(errs, FieldError{"depDate", "Departure date is required"})
	}
	if empty(values, "depTime") {
		errs = append(errs, FieldError{"depTime", "Departure time is required"})
	}
	return errs
}

func validateLuggage(values map[string]string) []FieldError {
	errs := []FieldError{}
	errs = appendCount(errs, values, "carryOnBags", "Number of carry-on bags is required")
	errs = appendCount(errs, values, "checkedBags", "Number of checked bags is required")
	errs = appendCount(errs, values, "totalWeight", "Total weight is required")
	return errs
}

func validateGuest(values map[string]string) []FieldError {
	errs := []FieldError{}
	if empty(values, "name") {
		errs = append(errs, FieldError{"name", "Name is required"})
	}
	if empty(values, "relationship") {
		errs = append(errs, FieldError{"relationship", "Relationship is required"})
	}
	if empty(values, "dob") {
		errs = append(errs, FieldError{"dob", "Date of birth is required"})
	}
	errs = appendCount(errs, values, "weight", "Weight is required")
	return errs
}

// appendCount enforces required + non-negative on a numeric field.
func appendCount(errs []FieldError, values map[string]string, field, requiredMsg string) []FieldError {
	n, ok := intValue(values, field)
	switch {
	case !ok:
		return append(errs, FieldError{field, requiredMsg})
	case n < 0:
		return append(errs, FieldError{field, "Must be 0 or greater"})
	}
	return errs
}

func empty(values map[string]string, field string) bool {
	return strings.TrimSpace(values[field]) == ""
}

func intValue(values map[string]string, field string) (int, bool) {
	raw := strings.TrimSpace(values[field])
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

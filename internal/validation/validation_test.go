package validation

import "testing"

func findError(errs []FieldError, field string) (FieldError, bool) {
	for _, e := range errs {
		if e.Field == field {
			return e, true
		}
	}
	return FieldError{}, false
}

func TestValidateContactMissingNameOnly(t *testing.T) {
	errs := Validate(PageContact, map[string]string{
		"contactName":  "   ",
		"contactEmail": "jo@example.com",
		"contactPhone": "555-0100",
	})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Field != "contactName" || errs[0].Message != "Contact name is required" {
		t.Fatalf("unexpected error: %+v", errs[0])
	}
}

func TestValidateContactEmailShape(t *testing.T) {
	errs := Validate(PageContact, map[string]string{
		"contactName":  "Jo",
		"contactEmail": "not-an-email",
		"contactPhone": "555-0100",
	})
	e, ok := findError(errs, "contactEmail")
	if !ok || e.Message != "Invalid email address" {
		t.Fatalf("expected invalid email error, got %v", errs)
	}

	// A bare local@domain shape is enough.
	errs = Validate(PageContact, map[string]string{
		"contactName":  "Jo",
		"contactEmail": "jo@host",
		"contactPhone": "555-0100",
	})
	if len(errs) != 0 {
		t.Fatalf("jo@host should pass, got %v", errs)
	}
}

func TestValidateFlightDetails(t *testing.T) {
	errs := Validate(PageFlightDetails, map[string]string{})
	for _, field := range []string{"tripType", "numLegs", "depAirport", "arrAirport", "depDate", "depTime"} {
		if _, ok := findError(errs, field); !ok {
			t.Fatalf("missing error for %q in %v", field, errs)
		}
	}

	errs = Validate(PageFlightDetails, map[string]string{
		"tripType":   "scenic",
		"numLegs":    "0",
		"depAirport": "KLAX",
		"arrAirport": "KLAX",
		"depDate":    "2026-09-01",
		"depTime":    "09:30",
	})
	if e, ok := findError(errs, "tripType"); !ok || e.Message != "Unknown trip type" {
		t.Fatalf("expected unknown trip type, got %v", errs)
	}
	if e, ok := findError(errs, "numLegs"); !ok || e.Message != "Must be at least 1" {
		t.Fatalf("expected numLegs error, got %v", errs)
	}
	// Same departure and arrival airport is allowed.
	if _, ok := findError(errs, "arrAirport"); ok {
		t.Fatalf("arrAirport should not be rejected for equaling depAirport")
	}
}

func TestValidateLuggageCounts(t *testing.T) {
	errs := Validate(PageLuggage, map[string]string{
		"carryOnBags": "-1",
		"checkedBags": "0",
		"totalWeight": "350",
	})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0].Field != "carryOnBags" || errs[0].Message != "Must be 0 or greater" {
		t.Fatalf("unexpected error: %+v", errs[0])
	}

	errs = Validate(PageLuggage, map[string]string{
		"carryOnBags": "0",
		"checkedBags": "0",
		"totalWeight": "0",
	})
	if len(errs) != 0 {
		t.Fatalf("zero counts should pass, got %v", errs)
	}
}

func TestValidateLuggageRequired(t *testing.T) {
	errs := Validate(PageLuggage, map[string]string{"checkedBags": "2", "totalWeight": "100"})
	if len(errs) != 1 || errs[0].Message != "Number of carry-on bags is required" {
		t.Fatalf("expected required carry-on error, got %v", errs)
	}
}

func TestValidateGuest(t *testing.T) {
	errs := Validate(PageGuest, map[string]string{
		"name":         "Jamie",
		"relationship": "spouse",
		"dob":          "1990-04-12",
		"weight":       "-5",
	})
	if len(errs) != 1 || errs[0].Field != "weight" || errs[0].Message != "Must be 0 or greater" {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateUnknownPage(t *testing.T) {
	errs := Validate(Page("payment"), nil)
	if len(errs) != 1 || errs[0].Message != "unknown form page" {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

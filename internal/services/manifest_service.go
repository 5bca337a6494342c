package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"charterops/internal/domain/models"
	"charterops/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ManifestService renders the printable luggage manifest for one trip.
type ManifestService struct {
	Loader    func(context.Context, string) (models.Trip, error)
	RequestID string
}

func (s ManifestService) GenerateManifest(ctx context.Context, tripID string) ([]byte, string, error) {
	trip, err := s.Loader(ctx, tripID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "manifest", "generate", "trip_id="+tripID)
	return buildManifestPDF(trip)
}

func buildManifestPDF(t models.Trip) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Luggage Manifest", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "AIRCRAFT LUGGAGE MANIFEST")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	header := []string{
		fmt.Sprintf("Client    : %s (%s)", safe(t.ClientName, "-"), safe(t.ClientEmail, "-")),
		fmt.Sprintf("Route     : %s", safe(t.Route, "-")),
		fmt.Sprintf("Departure : %s %s", safe(t.DepartureDate, "-"), safe(t.DepartureTime, "-")),
		fmt.Sprintf("Aircraft  : %s", safe(t.AircraftType, "-")),
		fmt.Sprintf("Status    : %s", safe(t.Status, "-")),
		fmt.Sprintf("Legs      : %d", t.NumLegs),
	}
	for _, line := range header {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	for i, f := range t.Flights {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("Flight %d: %s -> %s", i+1, safe(f.Departure, "?"), safe(f.Arrival, "?")))
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, fmt.Sprintf("Date/Time: %s %s   Aircraft: %s   Status: %s",
			safe(f.Date, "-"), safe(f.Time, "-"), safe(f.AircraftType, "-"), safe(f.Status, "-")))
		pdf.Ln(7)

		pdf.Cell(0, 6, fmt.Sprintf("Passengers (%d):", len(f.Guests)))
		pdf.Ln(6)
		for _, g := range f.Guests {
			pdf.Cell(0, 6, fmt.Sprintf("  - %s (%s) %d lbs",
				safe(g.Name, "unnamed"), safe(g.Relationship, "-"), g.Weight))
			pdf.Ln(6)
		}

		l := f.Luggage
		pdf.Cell(0, 6, fmt.Sprintf("Luggage: carry-on %d, checked %d, misc %d, total %d lbs",
			l.CarryOn, l.Checked, l.Misc, l.TotalWeight))
		pdf.Ln(6)

		declarations := []struct {
			label string
			flag  bool
			items []string
		}{
			{"Pets", l.Pets, l.PetItems},
			{"Firearms", l.Firearms, l.FirearmItems},
			{"Hazardous", l.Hazardous, l.HazardousItems},
			{"Misc items", l.Misc > 0, l.MiscItems},
		}
		for _, d := range declarations {
			if !d.flag && len(d.items) == 0 {
				continue
			}
			pdf.Cell(0, 6, fmt.Sprintf("%s: %s", d.label, declarationLine(d.flag, d.items)))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("MANIFEST_%s.pdf", safeFilenamePart(t.ID))
	return buf.Bytes(), filename, nil
}

func declarationLine(flag bool, items []string) string {
	answer := "no"
	if flag {
		answer = "yes"
	}
	if len(items) == 0 {
		return answer
	}
	return answer + " (" + strings.Join(items, ", ") + ")"
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(v string) string {
	out := make([]rune, 0, len(v))
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}

package parser

import (
	"errors"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)
}

func TestParse_SimpleOneWay(t *testing.T) {
	p := NewWithClock(fixedClock)
	q, err := p.Parse("Москва → Дубай 15.03")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if q.Origin.IATACode() != "MOW" {
		t.Fatalf("origin = %q, want %q", q.Origin.IATACode(), "MOW")
	}
	if q.Destination != "DXB" {
		t.Fatalf("destination = %q, want %q", q.Destination, "DXB")
	}
	if q.DepartDate != "15.03" || q.ReturnDate != "" {
		t.Fatalf("dates = %q/%q, want 15.03 one-way", q.DepartDate, q.ReturnDate)
	}
	if q.Passengers.Code() != "1" {
		t.Fatalf("passengers = %q, want %q", q.Passengers.Code(), "1")
	}
}

func TestParse_RoundTripWithHyphenSeparator(t *testing.T) {
	p := NewWithClock(fixedClock)
	q, err := p.Parse("пекин - мальдивы 15.03 - 25.03")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !q.IsRoundTrip() {
		t.Fatal("IsRoundTrip() = false, want true")
	}
	if q.DepartDate != "15.03" || q.ReturnDate != "25.03" {
		t.Fatalf("dates = %q/%q, want 15.03/25.03", q.DepartDate, q.ReturnDate)
	}
}

func TestParse_SpaceSeparatedRoute(t *testing.T) {
	p := NewWithClock(fixedClock)
	q, err := p.Parse("москва сочи 10.03")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if q.Origin.IATACode() != "MOW" || q.Destination != "AER" {
		t.Fatalf("route = %q-%q, want MOW-AER", q.Origin.IATACode(), q.Destination)
	}
}

func TestParse_MultiWordCityName(t *testing.T) {
	p := NewWithClock(fixedClock)
	q, err := p.Parse("Санкт Петербург - Пхукет 05.04 2 взр.")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if q.Origin.IATACode() != "LED" || q.Destination != "HKT" {
		t.Fatalf("route = %q-%q, want LED-HKT", q.Origin.IATACode(), q.Destination)
	}
	if q.Passengers.Adults != 2 {
		t.Fatalf("adults = %d, want 2", q.Passengers.Adults)
	}
}

func TestParse_EverywhereOrigin(t *testing.T) {
	p := NewWithClock(fixedClock)
	q, err := p.Parse("везде - дубай 20.03")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !q.Origin.IsEverywhere() {
		t.Fatal("IsEverywhere() = false, want true")
	}
}

func TestParse_CaseInsensitive(t *testing.T) {
	p := NewWithClock(fixedClock)
	q, err := p.Parse("МОСКВА - ДУБАЙ 15.03")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if q.Origin.IATACode() != "MOW" || q.Destination != "DXB" {
		t.Fatalf("route = %q-%q, want MOW-DXB", q.Origin.IATACode(), q.Destination)
	}
}

func TestParse_PassengersTail(t *testing.T) {
	p := NewWithClock(fixedClock)
	q, err := p.Parse("москва - дубай 15.03 2 взр, 1 реб")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if q.Passengers.Code() != "21" {
		t.Fatalf("passengers = %q, want %q", q.Passengers.Code(), "21")
	}
}

func TestParse_MissingDateIsBadFormat(t *testing.T) {
	p := NewWithClock(fixedClock)
	if _, err := p.Parse("москва - дубай"); !errors.Is(err, ErrBadFormat) {
		t.Fatalf("Parse() error = %v, want ErrBadFormat", err)
	}
}

func TestParse_UnknownDestination(t *testing.T) {
	p := NewWithClock(fixedClock)
	_, err := p.Parse("москва - нарния 15.03")
	var cityErr *UnknownCityError
	if !errors.As(err, &cityErr) {
		t.Fatalf("Parse() error = %v, want *UnknownCityError", err)
	}
	if cityErr.Role != "destination" || cityErr.Name != "нарния" {
		t.Fatalf("UnknownCityError = %+v, want destination/нарния", cityErr)
	}
}

func TestParse_UnknownOrigin(t *testing.T) {
	p := NewWithClock(fixedClock)
	_, err := p.Parse("хогвартс - дубай 15.03")
	var cityErr *UnknownCityError
	if !errors.As(err, &cityErr) {
		t.Fatalf("Parse() error = %v, want *UnknownCityError", err)
	}
	if cityErr.Role != "origin" {
		t.Fatalf("role = %q, want %q", cityErr.Role, "origin")
	}
}

package domain

import (
	"errors"
	"testing"
)

func TestFleetValidate(t *testing.T) {
	cases := []struct {
		name    string
		fleet   Fleet
		wantErr bool
	}{
		{name: "valid", fleet: Fleet{Vehicles: 2, MaxSpeed: 70, MaxLoad: 200}},
		{name: "zero load is allowed", fleet: Fleet{Vehicles: 1, MaxSpeed: 10, MaxLoad: 0}},
		{name: "no vehicles", fleet: Fleet{Vehicles: 0, MaxSpeed: 70, MaxLoad: 200}, wantErr: true},
		{name: "zero speed", fleet: Fleet{Vehicles: 2, MaxSpeed: 0, MaxLoad: 200}, wantErr: true},
		{name: "negative load", fleet: Fleet{Vehicles: 2, MaxSpeed: 70, MaxLoad: -1}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fleet.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidFleet) {
					t.Fatalf("expected ErrInvalidFleet, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestTravelTruncatesToHundredths(t *testing.T) {
	if got := Travel(125, 70); got != 178 {
		t.Fatalf("Travel(125, 70) = %d, want 178", got)
	}
	if got := Travel(30, 70).String(); got != "0.42" {
		t.Fatalf("Travel(30, 70) = %s, want 0.42", got)
	}
	if got := Travel(0, 70); got != 0 {
		t.Fatalf("Travel(0, 70) = %d, want 0", got)
	}
}

func TestETAArriveAndDoubleDetectOverflow(t *testing.T) {
	if got, ok := ETA(100).Arrive(125, 70); !ok || got != 278 {
		t.Fatalf("Arrive = %d, %v, want 278, true", got, ok)
	}
	if _, ok := (MaxETA - 10).Arrive(100, 1); ok {
		t.Fatalf("expected arrival past MaxETA to fail")
	}
	if _, ok := ETA(0).Arrive(int(MaxETA/10), 1); ok {
		t.Fatalf("expected distance overflow to fail")
	}
	if got, ok := ETA(178).Double(); !ok || got != 356 {
		t.Fatalf("Double = %d, %v, want 356, true", got, ok)
	}
	if _, ok := (MaxETA/2 + 1).Double(); ok {
		t.Fatalf("expected doubling past MaxETA to fail")
	}
}

func TestPackageValidate(t *testing.T) {
	if err := NewPackage("PKG1", 50, 30, "OFR001").Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := []*Package{
		NewPackage("", 50, 30, ""),
		NewPackage("PKG2", -1, 30, ""),
		NewPackage("PKG3", 10, -5, ""),
	}
	for _, p := range bad {
		if err := p.Validate(); !errors.Is(err, ErrInvalidPackage) {
			t.Errorf("package %q: expected ErrInvalidPackage, got %v", p.ID, err)
		}
	}
}

func TestOfferApplies(t *testing.T) {
	offer := Offer{Code: "OFR002", DiscountPercent: 7, MinDistance: 50, MaxDistance: 150, MinWeight: 100, MaxWeight: 250}

	if !offer.Applies(110, 60) {
		t.Errorf("expected offer to apply to weight=110 distance=60")
	}
	if !offer.Applies(100, 50) {
		t.Errorf("lower bounds are inclusive")
	}
	if offer.Applies(250, 60) {
		t.Errorf("upper weight bound is exclusive")
	}
	if offer.Applies(110, 150) {
		t.Errorf("upper distance bound is exclusive")
	}
	if offer.Applies(50, 30) {
		t.Errorf("expected offer not to apply to weight=50 distance=30")
	}
}

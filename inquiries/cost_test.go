package inquiries

import (
	"testing"

	"savoria/models"
)

func TestComputeTotals(t *testing.T) {
	addOns := []models.AddOnSelection{
		{ID: "a1", Name: "Mobile Bar", Price: 8000},
		{ID: "a2", Name: "Grazing Table", Price: 4500},
		{ID: "a3", Name: "Photo Booth", Price: 0},
	}

	got := ComputeTotals(650, 50, addOns)

	if got.PackageTotal != 650*50 {
		t.Errorf("packageTotal = %d, want %d", got.PackageTotal, 650*50)
	}
	if got.AddOnsTotal != 12500 {
		t.Errorf("addOnsTotal = %d, want 12500", got.AddOnsTotal)
	}
	if got.GrandTotal != got.PackageTotal+got.AddOnsTotal {
		t.Errorf("grandTotal = %d, want %d", got.GrandTotal, got.PackageTotal+got.AddOnsTotal)
	}
	if got.Downpayment != ReservationFee {
		t.Errorf("downpayment = %d, want %d", got.Downpayment, ReservationFee)
	}
	if got.Remaining != got.GrandTotal-ReservationFee {
		t.Errorf("remaining = %d, want %d", got.Remaining, got.GrandTotal-ReservationFee)
	}
}

func TestComputeTotalsOrderIndependent(t *testing.T) {
	a := []models.AddOnSelection{{Price: 100}, {Price: 2500}, {Price: 30}}
	b := []models.AddOnSelection{{Price: 30}, {Price: 100}, {Price: 2500}}

	if ComputeTotals(500, 80, a) != ComputeTotals(500, 80, b) {
		t.Error("totals should not depend on add-on ordering")
	}
}

func TestComputeTotalsNegativeRemaining(t *testing.T) {
	got := ComputeTotals(100, 10, nil)
	if got.GrandTotal != 1000 {
		t.Fatalf("grandTotal = %d, want 1000", got.GrandTotal)
	}
	// below the reservation fee; no clamping
	if got.Remaining != 1000-ReservationFee {
		t.Errorf("remaining = %d, want %d", got.Remaining, 1000-ReservationFee)
	}
}

func TestComputeTotalsZeroInputs(t *testing.T) {
	got := ComputeTotals(0, 0, []models.AddOnSelection{})
	if got.PackageTotal != 0 || got.AddOnsTotal != 0 || got.GrandTotal != 0 {
		t.Errorf("expected zero totals, got %+v", got)
	}
	if got.Remaining != -ReservationFee {
		t.Errorf("remaining = %d, want %d", got.Remaining, -ReservationFee)
	}
}

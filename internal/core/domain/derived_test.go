package domain

import (
	"math"
	"testing"
	"time"
)

func TestVitalsRecord_BMI(t *testing.T) {
	v := &VitalsRecord{WeightKg: 68, HeightCm: 170}
	got := v.BMI()
	want := 68 / (1.70 * 1.70)
	if math.Abs(got-want) > 0.001 {
		t.Fatalf("BMI = %.3f, want %.3f", got, want)
	}

	zero := &VitalsRecord{WeightKg: 68, HeightCm: 0}
	if zero.BMI() != 0 {
		t.Fatalf("BMI with zero height should be 0, got %.3f", zero.BMI())
	}
}

func TestVitalsRecord_Status(t *testing.T) {
	cases := []struct {
		temp float64
		want VitalsStatus
	}{
		{36.6, VitalsNormal},
		{38.0, VitalsNormal},
		{38.1, VitalsFever},
		{39.5, VitalsFever},
		{39.6, VitalsHighFever},
	}
	for _, tc := range cases {
		v := &VitalsRecord{Temperature: tc.temp}
		if got := v.Status(); got != tc.want {
			t.Errorf("Status at %.1f = %s, want %s", tc.temp, got, tc.want)
		}
	}
}

func TestDrug_StockStatus(t *testing.T) {
	cases := []struct {
		qty  int
		want StockStatus
	}{
		{0, StockOut},
		{-1, StockOut},
		{1, StockLow},
		{49, StockLow},
		{50, StockIn},
		{200, StockIn},
	}
	for _, tc := range cases {
		d := &Drug{Quantity: tc.qty}
		if got := d.StockStatus(); got != tc.want {
			t.Errorf("StockStatus at %d = %s, want %s", tc.qty, got, tc.want)
		}
	}
}

func TestBillingStats_Accumulate(t *testing.T) {
	stats := &BillingStats{}
	stats.Accumulate(&Invoice{Status: InvoicePaid, Amount: 120})
	stats.Accumulate(&Invoice{Status: InvoiceUnpaid, Amount: 420})
	stats.Accumulate(&Invoice{Status: InvoicePending, Amount: 350})
	stats.Accumulate(&Invoice{Status: InvoicePartiallyPaid, Amount: 1500})

	if stats.Total != 4 || stats.Paid != 1 || stats.Unpaid != 1 || stats.Pending != 2 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.TotalRevenue != 120+750 {
		t.Fatalf("TotalRevenue = %.2f, want 870.00", stats.TotalRevenue)
	}
	if stats.PendingAmount != 420+350+750 {
		t.Fatalf("PendingAmount = %.2f, want 1520.00", stats.PendingAmount)
	}
}

func TestNewOccupancyStats(t *testing.T) {
	stats := NewOccupancyStats(4, 50)
	if stats.Available != 46 {
		t.Fatalf("Available = %d, want 46", stats.Available)
	}
	if stats.OccupancyRate != 8.0 {
		t.Fatalf("OccupancyRate = %.2f, want 8.00", stats.OccupancyRate)
	}

	empty := NewOccupancyStats(0, 0)
	if empty.OccupancyRate != 0 {
		t.Fatalf("zero capacity should give 0 rate, got %.2f", empty.OccupancyRate)
	}
}

func TestPatient_Age(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	p := &Patient{DateOfBirth: time.Date(2004, 6, 16, 0, 0, 0, 0, time.UTC)}
	if got := p.Age(now); got != 21 {
		t.Fatalf("Age before birthday = %d, want 21", got)
	}
	p.DateOfBirth = time.Date(2004, 6, 14, 0, 0, 0, 0, time.UTC)
	if got := p.Age(now); got != 22 {
		t.Fatalf("Age after birthday = %d, want 22", got)
	}
}

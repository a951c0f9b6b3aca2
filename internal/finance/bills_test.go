package finance

import (
	"errors"
	"math"
	"testing"
	"time"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSummarizeBillsWindow(t *testing.T) {
	bills := []Bill{
		{Amount: 280, DueDate: day("2025-12-23")},
		{Amount: 155, DueDate: day("2025-12-26")},
		{Amount: 900, DueDate: day("2026-01-15")}, // outside window
	}

	p, err := SummarizeBills(bills, 120, 7, day("2025-12-20"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TotalDue != 435 {
		t.Fatalf("total due = %v, want 435", p.TotalDue)
	}
	if p.Shortfall != 315 {
		t.Fatalf("shortfall = %v, want 315", p.Shortfall)
	}
	if p.NextDueInDays != 3 {
		t.Fatalf("next due = %d, want 3", p.NextDueInDays)
	}
	if math.Abs(p.DailyNeed-315.0/3.0) > 1e-9 {
		t.Fatalf("daily need = %v, want 105", p.DailyNeed)
	}
}

func TestSummarizeBillsIgnoresPastDue(t *testing.T) {
	bills := []Bill{{Amount: 100, DueDate: day("2025-12-01")}}
	p, err := SummarizeBills(bills, 0, 7, day("2025-12-20"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TotalDue != 0 || p.Shortfall != 0 {
		t.Fatalf("past-due bill counted: %+v", p)
	}
	if p.NextDueInDays != 365 {
		t.Fatalf("next due = %d, want 365 when nothing upcoming", p.NextDueInDays)
	}
}

func TestSummarizeBillsDueToday(t *testing.T) {
	bills := []Bill{{Amount: 100, DueDate: day("2025-12-20")}}
	p, err := SummarizeBills(bills, 0, 7, day("2025-12-20"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.NextDueInDays != 0 {
		t.Fatalf("next due = %d, want 0", p.NextDueInDays)
	}
	// daily need divides by at least one day
	if p.DailyNeed != 100 {
		t.Fatalf("daily need = %v, want 100", p.DailyNeed)
	}
}

func TestSummarizeBillsRejectsBadInput(t *testing.T) {
	if _, err := SummarizeBills(nil, -5, 7, day("2025-12-20")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative cash, got %v", err)
	}
	if _, err := SummarizeBills(nil, 0, 0, day("2025-12-20")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero window, got %v", err)
	}
	bad := []Bill{{Amount: -10, DueDate: day("2025-12-22")}}
	if _, err := SummarizeBills(bad, 0, 7, day("2025-12-20")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative bill, got %v", err)
	}
}

func TestTargetFromBillsWeighsWants(t *testing.T) {
	p := BillPressure{TotalDue: 420, Shortfall: 300}
	// cash 120, all consumed by bills: full wants gap, weighted 0.5
	got := TargetFromBills(p, 120, 100)
	if got != 350 {
		t.Fatalf("target = %v, want 350", got)
	}
	// leftover cash covers part of wants
	p2 := BillPressure{TotalDue: 100, Shortfall: 0}
	got = TargetFromBills(p2, 160, 100)
	if got != 20 { // wants gap 40, weighted 0.5
		t.Fatalf("target = %v, want 20", got)
	}
}

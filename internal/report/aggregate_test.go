package report

import (
	"errors"
	"testing"
	"time"

	"lalogistics-backend/internal/earnings"
	"lalogistics-backend/internal/models"

	"github.com/shopspring/decimal"
)

type fakeStore struct {
	parcels []models.Parcel
	err     error
}

func (f fakeStore) ListByRange(r DateRange) ([]models.Parcel, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.parcels, nil
}

func entry(courier models.Courier, qty int, sameDay bool, date time.Time) models.Parcel {
	return models.Parcel{
		TaskID:          "T-1",
		SellerID:        "S-1",
		Courier:         courier,
		Quantity:        qty,
		PickedUpSameDay: sameDay,
		Date:            date,
		TotalEarning:    earnings.Calculate(courier, qty, sameDay),
	}
}

func TestAggregateTotals(t *testing.T) {
	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	store := fakeStore{parcels: []models.Parcel{
		entry(models.CourierSPX, 150, true, today),
		entry(models.CourierFlash, 40, false, today),
	}}

	rep, err := Aggregate(store, DateRange{Exact: true, Since: today})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rep.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(rep.Entries))
	}
	if rep.TotalQuantity != 190 {
		t.Fatalf("TotalQuantity = %d, want 190", rep.TotalQuantity)
	}
	if rep.TotalEarnings.StringFixed(2) != "190.00" {
		t.Fatalf("TotalEarnings = %s, want 190.00", rep.TotalEarnings.StringFixed(2))
	}
}

// Totals must sum the stored earnings verbatim, even when a stored value
// disagrees with what the current formula would produce.
func TestAggregateUsesStoredEarnings(t *testing.T) {
	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	legacy := entry(models.CourierSPX, 10, false, today)
	legacy.TotalEarning = decimal.RequireFromString("7.77") // pre-dates the current rate table

	rep, err := Aggregate(fakeStore{parcels: []models.Parcel{legacy}}, DateRange{All: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.TotalEarnings.StringFixed(2) != "7.77" {
		t.Fatalf("TotalEarnings = %s, want the stored 7.77", rep.TotalEarnings.StringFixed(2))
	}
}

func TestAggregateEmptyRangeIsNotAnError(t *testing.T) {
	rep, err := Aggregate(fakeStore{}, DateRange{Exact: true, Since: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(rep.Entries))
	}
	if rep.TotalQuantity != 0 {
		t.Fatalf("TotalQuantity = %d, want 0", rep.TotalQuantity)
	}
	if !rep.TotalEarnings.IsZero() {
		t.Fatalf("TotalEarnings = %s, want 0", rep.TotalEarnings)
	}
}

func TestAggregateStoreErrorAbortsReport(t *testing.T) {
	storeErr := errors.New("connection refused")
	rep, err := Aggregate(fakeStore{err: storeErr}, DateRange{All: true})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
	if rep != nil {
		t.Fatalf("expected no partial report, got %+v", rep)
	}
}

func TestAggregateSumExactOverManyEntries(t *testing.T) {
	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	var parcels []models.Parcel
	for i := 0; i < 500; i++ {
		parcels = append(parcels, entry(models.CourierSPX, 1, false, today)) // 0.50 each
	}

	rep, err := Aggregate(fakeStore{parcels: parcels}, DateRange{All: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.TotalEarnings.StringFixed(2) != "250.00" {
		t.Fatalf("TotalEarnings = %s, want 250.00", rep.TotalEarnings.StringFixed(2))
	}
}

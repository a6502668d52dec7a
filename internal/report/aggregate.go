package report

import (
	"lalogistics-backend/internal/models"

	"github.com/shopspring/decimal"
)

// Store is the read side the aggregator needs from persistence.
type Store interface {
	// ListByRange returns parcels matching r ordered by date descending,
	// creation time descending.
	ListByRange(r DateRange) ([]models.Parcel, error)
}

// Aggregated is the transient report for one request: the matching entries
// plus totals. Totals sum the *stored* earnings, they never re-run the rate
// table. Never persisted or cached.
type Aggregated struct {
	Entries       []models.Parcel
	TotalQuantity int
	TotalEarnings decimal.Decimal
}

// Aggregate fetches the entries for r and computes the totals. A range
// matching nothing yields a valid zero report, not an error. Store errors
// abort the whole report; no partial result is returned.
func Aggregate(store Store, r DateRange) (*Aggregated, error) {
	entries, err := store.ListByRange(r)
	if err != nil {
		return nil, err
	}

	rep := &Aggregated{
		Entries:       entries,
		TotalEarnings: decimal.Zero,
	}
	for _, e := range entries {
		rep.TotalQuantity += e.Quantity
		rep.TotalEarnings = rep.TotalEarnings.Add(e.TotalEarning)
	}
	return rep, nil
}

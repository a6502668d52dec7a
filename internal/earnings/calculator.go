// Package earnings implements the piecework rate table applied to each
// parcel batch at creation time. The result is stored on the row and never
// recomputed, so rate changes only affect entries logged afterwards.
package earnings

import (
	"lalogistics-backend/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// SPX pays only the first 100 parcels of a batch.
	spxIncentiveCap = 100
	// Flash pays at most 30 parcels per batch.
	flashParcelCap = 30
)

var (
	spxBaseRate  = decimal.RequireFromString("0.50") // per incentivized parcel, always paid
	spxBonusRate = decimal.RequireFromString("0.50") // extra per parcel when picked up same day
	flashRate    = decimal.RequireFromString("3.00") // flat, same-day status irrelevant
)

// Calculate returns the earning for one batch. Pure and total: negative
// quantities are treated as zero and an unknown courier earns nothing
// (creation validation rejects both before they get here).
func Calculate(courier models.Courier, quantity int, pickedUpSameDay bool) decimal.Decimal {
	if quantity < 0 {
		quantity = 0
	}

	switch courier {
	case models.CourierSPX:
		incentivized := decimal.NewFromInt(int64(min(quantity, spxIncentiveCap)))
		amount := spxBaseRate.Mul(incentivized)
		if pickedUpSameDay {
			amount = amount.Add(spxBonusRate.Mul(incentivized))
		}
		return amount
	case models.CourierFlash:
		paid := decimal.NewFromInt(int64(min(quantity, flashParcelCap)))
		return flashRate.Mul(paid)
	}

	return decimal.Zero
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Courier string

const (
	CourierSPX   Courier = "SPX"
	CourierFlash Courier = "Flash"
)

// Valid reports whether c is one of the known couriers.
func (c Courier) Valid() bool {
	switch c {
	case CourierSPX, CourierFlash:
		return true
	}
	return false
}

// Parcel is one logged pickup batch. TotalEarning is computed once at
// creation from (courier, quantity, picked_up_same_day) and stored as-is;
// it is never recomputed on read, so historical rows keep their value even
// if the rate table changes later. Rows are never updated, only created and
// (by an admin) hard-deleted.
type Parcel struct {
	ID              uint            `gorm:"primaryKey"`
	TaskID          string          `gorm:"size:100;not null"`
	SellerID        string          `gorm:"size:100;not null"`
	Courier         Courier         `gorm:"size:20;not null"`
	Quantity        int             `gorm:"not null"`
	PickedUpSameDay bool            `gorm:"not null;default:false"` // only meaningful for SPX
	Date            time.Time       `gorm:"type:date;index;not null"`
	TotalEarning    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	UserID          uint            `gorm:"index"`
	User            *User
	CreatedAt       time.Time `gorm:"index"`
}

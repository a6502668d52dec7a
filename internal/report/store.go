package report

import (
	"lalogistics-backend/internal/database"
	"lalogistics-backend/internal/models"
)

type gormStore struct{}

// NewStore returns a Store backed by the shared GORM connection.
func NewStore() Store {
	return gormStore{}
}

func (gormStore) ListByRange(r DateRange) ([]models.Parcel, error) {
	q := database.DB.Model(&models.Parcel{})

	switch {
	case r.All:
		// no date condition
	case r.Exact:
		q = q.Where("date = ?", r.Since.Format("2006-01-02"))
	default:
		q = q.Where("date >= ?", r.Since.Format("2006-01-02"))
	}

	var parcels []models.Parcel
	if err := q.Order("date DESC, created_at DESC").Find(&parcels).Error; err != nil {
		return nil, err
	}
	return parcels, nil
}

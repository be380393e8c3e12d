package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetDailyOrderCountQueryHandler counts orders created today.
type GetDailyOrderCountQueryHandler struct {
	db *gorm.DB
}

// NewGetDailyOrderCountQueryHandler creates a handler for the daily count query.
func NewGetDailyOrderCountQueryHandler(db *gorm.DB) GetDailyOrderCountQueryHandler {
	return GetDailyOrderCountQueryHandler{db: db}
}

// Handle counts orders whose createdAt is at or after local midnight of the
// current day, using the server clock.
func (h GetDailyOrderCountQueryHandler) Handle(
	ctx context.Context,
	query GetDailyOrderCountQuery,
) (DailyOrderCount, error) {
	if err := query.Validate(); err != nil {
		return DailyOrderCount{}, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var count int64
	err := h.db.WithContext(ctx).
		Table("orders").
		Where("created_at >= ?", startOfDay).
		Count(&count).Error
	if err != nil {
		return DailyOrderCount{}, err
	}

	return DailyOrderCount{
		Date:       now.Format("2006-01-02"),
		OrderCount: count,
	}, nil
}

package repository

import (
	"fmt"

	"gorm.io/gorm"

	"weepify/internal/model"
)

type ActivityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

func (r *ActivityLogRepository) Create(entry *model.ActivityLog) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("create activity log failed: %w", err)
	}
	return nil
}

func (r *ActivityLogRepository) ListByUserID(userID uint, limit int) ([]model.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	var entries []model.ActivityLog
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list activity logs failed: %w", err)
	}
	return entries, nil
}

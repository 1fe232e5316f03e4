package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"weepify/internal/model"
)

type CryLogRepository struct {
	db *gorm.DB
}

func NewCryLogRepository(db *gorm.DB) *CryLogRepository {
	return &CryLogRepository{db: db}
}

func (r *CryLogRepository) Create(log *model.CryLog) error {
	if err := r.db.Create(log).Error; err != nil {
		return fmt.Errorf("create cry log failed: %w", err)
	}
	return nil
}

// ListByUserID returns the user's full history, newest date first.
func (r *CryLogRepository) ListByUserID(userID uint) ([]model.CryLog, error) {
	var logs []model.CryLog
	if err := r.db.Where("user_id = ?", userID).Order("date DESC, start_time DESC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list cry logs failed: %w", err)
	}
	return logs, nil
}

func (r *CryLogRepository) ListByUserIDAndDate(userID uint, date string) ([]model.CryLog, error) {
	var logs []model.CryLog
	if err := r.db.Where("user_id = ? AND date = ?", userID, date).Order("start_time ASC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list cry logs by date failed: %w", err)
	}
	return logs, nil
}

func (r *CryLogRepository) GetByIDAndUserID(logID, userID uint) (*model.CryLog, error) {
	var log model.CryLog
	if err := r.db.Where("id = ? AND user_id = ?", logID, userID).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cry log failed: %w", err)
	}
	return &log, nil
}

func (r *CryLogRepository) Save(log *model.CryLog) error {
	if err := r.db.Save(log).Error; err != nil {
		return fmt.Errorf("save cry log failed: %w", err)
	}
	return nil
}

func (r *CryLogRepository) DeleteByIDAndUserID(logID, userID uint) error {
	if err := r.db.Where("id = ? AND user_id = ?", logID, userID).Delete(&model.CryLog{}).Error; err != nil {
		return fmt.Errorf("delete cry log failed: %w", err)
	}
	return nil
}

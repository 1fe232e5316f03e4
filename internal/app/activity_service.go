package app

import "weepify/internal/model"

// ActivityStore reads back the audit trail the worker persists.
type ActivityStore interface {
	ListByUserID(userID uint, limit int) ([]model.ActivityLog, error)
}

// ActivityService exposes the per-user audit trail, newest entries first.
type ActivityService struct {
	activityRepo ActivityStore
}

func NewActivityService(activityRepo ActivityStore) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

func (s *ActivityService) List(userID uint, limit int) ([]model.ActivityLog, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.activityRepo.ListByUserID(userID, limit)
}

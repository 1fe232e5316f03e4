package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"weepify/internal/model"
	"weepify/internal/stats"
	"weepify/internal/tears"
)

var ErrCryLogNotFound = errors.New("cry log not found")

const (
	ActionLogCreated = "log_created"
	ActionLogUpdated = "log_updated"
	ActionLogDeleted = "log_deleted"
)

// ActivityEventPublisher enqueues audit-trail entries for async persistence.
type ActivityEventPublisher interface {
	Publish(ctx context.Context, entry model.ActivityLog) error
}

// StatsCache holds computed dashboards between mutations.
type StatsCache interface {
	GetStats(ctx context.Context, userID uint) (*stats.Result, bool, error)
	SetStats(ctx context.Context, userID uint, result stats.Result) error
	DeleteStats(ctx context.Context, userID uint) error
	MarkDirty(ctx context.Context, userID uint) error
	IsDirty(ctx context.Context, userID uint) (bool, error)
}

// CryLogStore is the record store contract; *repository.CryLogRepository is
// the MySQL implementation.
type CryLogStore interface {
	Create(cryLog *model.CryLog) error
	ListByUserID(userID uint) ([]model.CryLog, error)
	ListByUserIDAndDate(userID uint, date string) ([]model.CryLog, error)
	GetByIDAndUserID(logID, userID uint) (*model.CryLog, error)
	Save(cryLog *model.CryLog) error
	DeleteByIDAndUserID(logID, userID uint) error
}

type CryLogService struct {
	logRepo    CryLogStore
	publisher  ActivityEventPublisher
	statsCache StatsCache
}

// UpdateCryLogInput carries the mutable fields; nil means "leave unchanged".
type UpdateCryLogInput struct {
	DurationMinutes *int
	Intensity       *string
	MoodAfter       *string
	Reason          *string
}

func NewCryLogService(
	logRepo CryLogStore,
	publisher ActivityEventPublisher,
	statsCache StatsCache,
) *CryLogService {
	return &CryLogService{
		logRepo:    logRepo,
		publisher:  publisher,
		statsCache: statsCache,
	}
}

func (s *CryLogService) Create(input CryLogInput) (*model.CryLog, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}

	normalized, err := normalizeCryLogInput(input, time.Now())
	if err != nil {
		return nil, err
	}

	cryLog := &model.CryLog{
		UserID:          normalized.UserID,
		Date:            normalized.Date,
		StartTime:       normalized.StartTime,
		DurationMinutes: normalized.DurationMinutes,
		Intensity:       normalized.Intensity,
		MoodAfter:       normalized.MoodAfter,
		Reason:          normalized.Reason,
		TearsMl:         tears.EstimateVolume(normalized.DurationMinutes, normalized.Intensity),
	}
	if err := s.logRepo.Create(cryLog); err != nil {
		return nil, err
	}

	s.invalidateStats(cryLog.UserID)
	s.publishActivity(cryLog.UserID, ActionLogCreated, cryLog.ID,
		fmt.Sprintf("%s %s, %d min, %s", cryLog.Date, cryLog.StartTime, cryLog.DurationMinutes, cryLog.Intensity))

	return cryLog, nil
}

func (s *CryLogService) List(userID uint) ([]model.CryLog, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.logRepo.ListByUserID(userID)
}

func (s *CryLogService) Get(userID, logID uint) (*model.CryLog, error) {
	if userID == 0 || logID == 0 {
		return nil, ErrInvalidInput
	}
	cryLog, err := s.logRepo.GetByIDAndUserID(logID, userID)
	if err != nil {
		return nil, err
	}
	if cryLog == nil {
		return nil, ErrCryLogNotFound
	}
	return cryLog, nil
}

// ListByDate returns the user's sessions for one calendar day, earliest first.
func (s *CryLogService) ListByDate(userID uint, date string) ([]model.CryLog, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	parsed, err := time.ParseInLocation(dateLayout, strings.TrimSpace(date), time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return s.logRepo.ListByUserIDAndDate(userID, parsed.Format(dateLayout))
}

// Update mutates duration, intensity, mood and/or reason, re-deriving the
// stored tear volume whenever duration or intensity changes.
func (s *CryLogService) Update(userID, logID uint, input UpdateCryLogInput) (*model.CryLog, error) {
	if userID == 0 || logID == 0 {
		return nil, ErrInvalidInput
	}

	cryLog, err := s.logRepo.GetByIDAndUserID(logID, userID)
	if err != nil {
		return nil, err
	}
	if cryLog == nil {
		return nil, ErrCryLogNotFound
	}

	if input.DurationMinutes != nil {
		if *input.DurationMinutes <= 0 {
			return nil, ErrInvalidDuration
		}
		cryLog.DurationMinutes = *input.DurationMinutes
	}
	if input.Intensity != nil {
		intensity := strings.ToLower(strings.TrimSpace(*input.Intensity))
		if !tears.ValidIntensity(intensity) {
			return nil, ErrInvalidIntensity
		}
		cryLog.Intensity = intensity
	}
	if input.MoodAfter != nil {
		if strings.TrimSpace(*input.MoodAfter) == "" {
			return nil, ErrMissingField
		}
		cryLog.MoodAfter = strings.TrimSpace(*input.MoodAfter)
	}
	if input.Reason != nil {
		if strings.TrimSpace(*input.Reason) == "" {
			return nil, ErrMissingField
		}
		cryLog.Reason = strings.TrimSpace(*input.Reason)
	}

	cryLog.TearsMl = tears.EstimateVolume(cryLog.DurationMinutes, cryLog.Intensity)

	if err := s.logRepo.Save(cryLog); err != nil {
		return nil, err
	}

	s.invalidateStats(userID)
	s.publishActivity(userID, ActionLogUpdated, cryLog.ID,
		fmt.Sprintf("%s %s, %d min, %s", cryLog.Date, cryLog.StartTime, cryLog.DurationMinutes, cryLog.Intensity))

	return cryLog, nil
}

func (s *CryLogService) Delete(userID, logID uint) error {
	if userID == 0 || logID == 0 {
		return ErrInvalidInput
	}

	cryLog, err := s.logRepo.GetByIDAndUserID(logID, userID)
	if err != nil {
		return err
	}
	if cryLog == nil {
		return ErrCryLogNotFound
	}
	if err := s.logRepo.DeleteByIDAndUserID(logID, userID); err != nil {
		return err
	}

	s.invalidateStats(userID)
	s.publishActivity(userID, ActionLogDeleted, logID, cryLog.Date)

	return nil
}

func (s *CryLogService) invalidateStats(userID uint) {
	if s.statsCache == nil {
		return
	}
	ctx := context.Background()
	_ = s.statsCache.MarkDirty(ctx, userID)
	_ = s.statsCache.DeleteStats(ctx, userID)
}

// publishActivity is best-effort: the audit trail never blocks or fails a
// log mutation.
func (s *CryLogService) publishActivity(userID uint, action string, logID uint, detail string) {
	if s.publisher == nil {
		return
	}
	entry := model.ActivityLog{
		UserID:   userID,
		Action:   action,
		CryLogID: logID,
		Detail:   detail,
	}
	if err := s.publisher.Publish(context.Background(), entry); err != nil {
		log.Printf("publish activity event failed: %v", err)
	}
}

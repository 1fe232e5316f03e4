package app

import (
	"context"
	"time"

	"weepify/internal/stats"
)

// StatsService serves the dashboard. It always recomputes from the full
// history on a cache miss; the cache only smooths repeated reads between
// mutations.
type StatsService struct {
	logRepo    CryLogStore
	statsCache StatsCache
}

func NewStatsService(logRepo CryLogStore, statsCache StatsCache) *StatsService {
	return &StatsService{
		logRepo:    logRepo,
		statsCache: statsCache,
	}
}

func (s *StatsService) GetStats(userID uint) (*stats.Result, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}

	ctx := context.Background()
	if s.statsCache != nil {
		dirty, err := s.statsCache.IsDirty(ctx, userID)
		if err == nil && !dirty {
			if cached, hit, cacheErr := s.statsCache.GetStats(ctx, userID); cacheErr == nil && hit {
				return cached, nil
			}
		}
	}

	logs, err := s.logRepo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}

	result := stats.Compute(logs, time.Now())

	if s.statsCache != nil {
		if dirty, dirtyErr := s.statsCache.IsDirty(ctx, userID); dirtyErr == nil && !dirty {
			_ = s.statsCache.SetStats(ctx, userID, result)
		}
	}
	return &result, nil
}

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weepify/internal/model"
)

type fakeActivityStore struct {
	entries   []model.ActivityLog
	lastLimit int
}

func (f *fakeActivityStore) ListByUserID(userID uint, limit int) ([]model.ActivityLog, error) {
	f.lastLimit = limit
	var out []model.ActivityLog
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestActivityListRequiresUser(t *testing.T) {
	service := NewActivityService(&fakeActivityStore{})

	_, err := service.List(0, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestActivityListFiltersByUser(t *testing.T) {
	store := &fakeActivityStore{entries: []model.ActivityLog{
		{UserID: 1, Action: ActionLogCreated, CryLogID: 1},
		{UserID: 2, Action: ActionLogDeleted, CryLogID: 2},
		{UserID: 1, Action: ActionLogUpdated, CryLogID: 1},
	}}
	service := NewActivityService(store)

	entries, err := service.List(1, 50)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, uint(1), e.UserID)
	}
	assert.Equal(t, 50, store.lastLimit)
}

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weepify/internal/model"
)

func logWithMood(date, startTime, mood string) model.CryLog {
	l := logOn(date, 1)
	l.StartTime = startTime
	l.MoodAfter = mood
	return l
}

func TestMoodTrend(t *testing.T) {
	tests := []struct {
		name string
		logs []model.CryLog
		want string
	}{
		{
			"no records", nil, TrendStable,
		},
		{
			"single record",
			[]model.CryLog{logWithMood("2024-03-01", "10:00", "sad")},
			TrendStable,
		},
		{
			"recent moods better",
			[]model.CryLog{
				logWithMood("2024-03-01", "10:00", "sad"),
				logWithMood("2024-03-02", "10:00", "sad"),
				logWithMood("2024-03-03", "10:00", "happy"),
				logWithMood("2024-03-04", "10:00", "happy"),
			},
			TrendImproving,
		},
		{
			"recent moods worse",
			[]model.CryLog{
				logWithMood("2024-03-01", "10:00", "happy"),
				logWithMood("2024-03-02", "10:00", "happy"),
				logWithMood("2024-03-03", "10:00", "devastated"),
				logWithMood("2024-03-04", "10:00", "devastated"),
			},
			TrendDeclining,
		},
		{
			"flat moods stay stable",
			[]model.CryLog{
				logWithMood("2024-03-01", "10:00", "neutral"),
				logWithMood("2024-03-02", "10:00", "neutral"),
				logWithMood("2024-03-03", "10:00", "neutral"),
				logWithMood("2024-03-04", "10:00", "neutral"),
			},
			TrendStable,
		},
		{
			"only last five sessions considered",
			[]model.CryLog{
				logWithMood("2024-02-01", "10:00", "ecstatic"),
				logWithMood("2024-02-02", "10:00", "ecstatic"),
				logWithMood("2024-03-01", "10:00", "sad"),
				logWithMood("2024-03-02", "10:00", "sad"),
				logWithMood("2024-03-03", "10:00", "sad"),
				logWithMood("2024-03-04", "10:00", "happy"),
				logWithMood("2024-03-05", "10:00", "happy"),
			},
			TrendImproving,
		},
		{
			"same day ordered by start time",
			[]model.CryLog{
				logWithMood("2024-03-01", "08:00", "sad"),
				logWithMood("2024-03-01", "22:00", "happy"),
			},
			TrendImproving,
		},
		{
			"unknown mood counts as neutral",
			[]model.CryLog{
				logWithMood("2024-03-01", "10:00", "devastated"),
				logWithMood("2024-03-02", "10:00", "mysterious"),
			},
			TrendImproving,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, moodTrend(tt.logs))
		})
	}
}

func TestTherapeuticScore(t *testing.T) {
	assert.Equal(t, 0, therapeuticScore(nil))

	// one session, one reason, one note: 5 + 3 + 2
	one := []model.CryLog{logOn("2024-03-01", 1)}
	assert.Equal(t, 10, therapeuticScore(one))

	// scores cap at 100
	many := make([]model.CryLog, 0, 30)
	for i := 0; i < 30; i++ {
		l := logOn("2024-03-01", 1)
		l.Reason = string(rune('a' + i))
		many = append(many, l)
	}
	assert.Equal(t, 100, therapeuticScore(many))
}

func TestMoodValue(t *testing.T) {
	assert.Equal(t, 1, moodValue("devastated"))
	assert.Equal(t, 10, moodValue("Ecstatic"))
	assert.Equal(t, 5, moodValue("unmapped mood"))
}

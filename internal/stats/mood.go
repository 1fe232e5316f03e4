package stats

import (
	"sort"
	"strings"

	"weepify/internal/model"
)

const (
	TrendImproving = "improving"
	TrendStable    = "stable"
	TrendDeclining = "declining"
)

// Numeric mood scale, higher is better. Unknown moods count as neutral.
var moodValues = map[string]int{
	"devastated":   1,
	"very sad":     2,
	"sad":          3,
	"angry":        3,
	"disappointed": 3,
	"melancholy":   3,
	"upset":        4,
	"overwhelmed":  4,
	"frustrated":   4,
	"neutral":      5,
	"relieved":     6,
	"content":      7,
	"happy":        8,
	"joyful":       9,
	"ecstatic":     10,
}

func moodValue(mood string) int {
	if v, ok := moodValues[strings.ToLower(mood)]; ok {
		return v
	}
	return 5
}

// moodTrend compares the average mood of the most recent sessions against the
// older half of the last 5 sessions. Fewer than 2 sessions is always stable.
func moodTrend(logs []model.CryLog) string {
	if len(logs) < 2 {
		return TrendStable
	}

	sorted := make([]model.CryLog, len(logs))
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return sorted[i].StartTime > sorted[j].StartTime
	})

	recent := sorted
	if len(recent) > 5 {
		recent = recent[:5]
	}

	values := make([]float64, len(recent))
	for i, l := range recent {
		values[i] = float64(moodValue(l.MoodAfter))
	}

	mid := len(values) / 2
	if mid == 0 {
		return TrendStable
	}
	recentAvg := average(values[:mid])
	olderAvg := average(values[mid:])

	switch diff := recentAvg - olderAvg; {
	case diff > 0.5:
		return TrendImproving
	case diff < -0.5:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// therapeuticScore is a 0-100 score rewarding session count, variety of
// reasons, regularity and self-reflection notes.
func therapeuticScore(logs []model.CryLog) int {
	if len(logs) == 0 {
		return 0
	}

	score := len(logs) * 5

	reasons := make(map[string]struct{})
	notes := 0
	for _, l := range logs {
		reason := strings.TrimSpace(l.Reason)
		if reason != "" {
			reasons[reason] = struct{}{}
			notes++
		}
	}
	score += len(reasons) * 3
	score += notes * 2

	if len(logs) >= 5 {
		score += 10
	}
	if len(logs) >= 10 {
		score += 15
	}

	if score > 100 {
		score = 100
	}
	return score
}

func average(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

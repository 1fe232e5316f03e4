// Package stats turns a user's full cry log history into the derived metrics
// shown on the dashboard. Everything here is pure computation: an empty or
// partially malformed history degrades to zero values, never to an error, so
// a user with no sessions still gets a fully shaped result.
package stats

import (
	"sort"
	"time"

	"weepify/internal/model"
	"weepify/internal/tears"
)

const dateLayout = "2006-01-02"

type DayStat struct {
	Date     string  `json:"date"`
	TearsMl  float64 `json:"tears_ml"`
	Sessions int     `json:"sessions"`
}

type WeekStat struct {
	WeekStart string  `json:"week_start"`
	WeekEnd   string  `json:"week_end"`
	TearsMl   float64 `json:"tears_ml"`
	Sessions  int     `json:"sessions"`
}

type MonthStat struct {
	Month    string  `json:"month"`
	TearsMl  float64 `json:"tears_ml"`
	Sessions int     `json:"sessions"`
}

type Frequency struct {
	Daily   int `json:"daily"`
	Weekly  int `json:"weekly"`
	Monthly int `json:"monthly"`
}

type Result struct {
	LifetimeTearsMl    float64     `json:"lifetime_tears_ml"`
	PlantsWatered      float64     `json:"plants_watered"`
	RehydrationWaterMl float64     `json:"rehydration_water_ml"`
	HighestStreak      int         `json:"highest_streak"`
	TotalSessions      int         `json:"total_sessions"`
	MoodTrend          string      `json:"mood_trend"`
	TherapeuticScore   int         `json:"therapeutic_score"`
	Frequency          Frequency   `json:"frequency"`
	DailyStats         []DayStat   `json:"daily_stats"`
	WeeklyStats        []WeekStat  `json:"weekly_stats"`
	MonthlyStats       []MonthStat `json:"monthly_stats"`
}

// Compute recalculates all metrics from the full history. The rollup slices
// always have fixed lengths (7 days, 4 weeks, 6 months) so charts keep a
// stable shape regardless of how many logs exist.
func Compute(logs []model.CryLog, now time.Time) Result {
	today := truncateToDay(now)
	lifetime := lifetimeTears(logs)

	return Result{
		LifetimeTearsMl:    lifetime,
		PlantsWatered:      tears.PlantsWatered(lifetime),
		RehydrationWaterMl: tears.RehydrationWater(lifetime),
		HighestStreak:      highestStreak(logs),
		TotalSessions:      len(logs),
		MoodTrend:          moodTrend(logs),
		TherapeuticScore:   therapeuticScore(logs),
		Frequency:          frequency(logs, today),
		DailyStats:         dailyStats(logs, today),
		WeeklyStats:        weeklyStats(logs, today),
		MonthlyStats:       monthlyStats(logs, today),
	}
}

func lifetimeTears(logs []model.CryLog) float64 {
	var sum float64
	for _, l := range logs {
		sum += l.TearsMl
	}
	return tears.Round2(sum)
}

// highestStreak walks the distinct log dates in ascending order and counts
// the longest run of consecutive calendar days. Multiple logs on one day
// collapse into a single day.
func highestStreak(logs []model.CryLog) int {
	seen := make(map[string]struct{}, len(logs))
	for _, l := range logs {
		seen[l.Date] = struct{}{}
	}
	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		parsed, err := parseDay(d)
		if err != nil {
			continue
		}
		dates = append(dates, parsed)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	maxStreak := 0
	streak := 0
	for i, d := range dates {
		if i > 0 && d.Equal(dates[i-1].AddDate(0, 0, 1)) {
			streak++
		} else {
			streak = 1
		}
		if streak > maxStreak {
			maxStreak = streak
		}
	}
	return maxStreak
}

// dailyStats covers the last 7 calendar days ending today, oldest first.
// Days without logs are emitted with zero values.
func dailyStats(logs []model.CryLog, today time.Time) []DayStat {
	out := make([]DayStat, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format(dateLayout)
		stat := DayStat{Date: day}
		for _, l := range logs {
			if l.Date == day {
				stat.TearsMl += l.TearsMl
				stat.Sessions++
			}
		}
		stat.TearsMl = tears.Round2(stat.TearsMl)
		out = append(out, stat)
	}
	return out
}

// weeklyStats covers the last 4 Sunday-start weeks ending with the week that
// contains today, oldest first.
func weeklyStats(logs []model.CryLog, today time.Time) []WeekStat {
	out := make([]WeekStat, 0, 4)
	for i := 3; i >= 0; i-- {
		anchor := today.AddDate(0, 0, -i*7)
		weekStart := anchor.AddDate(0, 0, -int(anchor.Weekday()))
		weekEnd := weekStart.AddDate(0, 0, 6)

		stat := WeekStat{
			WeekStart: weekStart.Format(dateLayout),
			WeekEnd:   weekEnd.Format(dateLayout),
		}
		for _, l := range logs {
			d, err := parseDay(l.Date)
			if err != nil {
				continue
			}
			if !d.Before(weekStart) && !d.After(weekEnd) {
				stat.TearsMl += l.TearsMl
				stat.Sessions++
			}
		}
		stat.TearsMl = tears.Round2(stat.TearsMl)
		out = append(out, stat)
	}
	return out
}

// monthlyStats covers the last 6 calendar months ending with the current
// month, oldest first, labeled YYYY-MM.
func monthlyStats(logs []model.CryLog, today time.Time) []MonthStat {
	out := make([]MonthStat, 0, 6)
	for i := 5; i >= 0; i-- {
		month := time.Date(today.Year(), today.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		label := month.Format("2006-01")

		stat := MonthStat{Month: label}
		for _, l := range logs {
			if len(l.Date) >= 7 && l.Date[:7] == label {
				stat.TearsMl += l.TearsMl
				stat.Sessions++
			}
		}
		stat.TearsMl = tears.Round2(stat.TearsMl)
		out = append(out, stat)
	}
	return out
}

// frequency counts sessions dated within the trailing 1, 7 and 30 calendar
// days, today inclusive.
func frequency(logs []model.CryLog, today time.Time) Frequency {
	var f Frequency
	for _, l := range logs {
		d, err := parseDay(l.Date)
		if err != nil || d.After(today) {
			continue
		}
		if !d.Before(today) {
			f.Daily++
		}
		if !d.Before(today.AddDate(0, 0, -6)) {
			f.Weekly++
		}
		if !d.Before(today.AddDate(0, 0, -29)) {
			f.Monthly++
		}
	}
	return f
}

// parseDay reads a YYYY-MM-DD label as a UTC day. Date labels are zone-less;
// anchoring them in UTC keeps AddDate walks exact in zones where a DST jump
// skips local midnight.
func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

// truncateToDay maps the wall-clock moment to its calendar day as a UTC day.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package app

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"weepify/internal/tears"
)

var (
	ErrMissingField     = errors.New("all fields are required: date, startTime, durationMinutes, moodAfter, reason and intensity")
	ErrInvalidIntensity = errors.New("intensity must be: low, moderate, or high")
	ErrInvalidDuration  = errors.New("duration must be a positive number of minutes")
	ErrInvalidDate      = errors.New("invalid date, use YYYY-MM-DD")
	ErrFutureDate       = errors.New("cannot log crying sessions for future dates")
	ErrInvalidTime      = errors.New("invalid time, use HH:MM (24-hour)")
)

const dateLayout = "2006-01-02"

var startTimePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// CryLogInput is a candidate cry log as submitted by the user.
type CryLogInput struct {
	UserID          uint
	Date            string
	StartTime       string
	DurationMinutes int
	Intensity       string
	MoodAfter       string
	Reason          string
}

// normalizeCryLogInput accepts a candidate log or rejects it with one of the
// validation sentinels. On success the returned copy carries the canonical
// YYYY-MM-DD date, a zero-padded HH:MM start time and a lower-cased intensity.
func normalizeCryLogInput(input CryLogInput, now time.Time) (CryLogInput, error) {
	out := input
	out.Date = strings.TrimSpace(input.Date)
	out.StartTime = strings.TrimSpace(input.StartTime)
	out.Intensity = strings.ToLower(strings.TrimSpace(input.Intensity))
	out.MoodAfter = strings.TrimSpace(input.MoodAfter)
	out.Reason = strings.TrimSpace(input.Reason)

	if out.Date == "" || out.StartTime == "" || out.MoodAfter == "" || out.Reason == "" || out.Intensity == "" {
		return CryLogInput{}, ErrMissingField
	}
	if !tears.ValidIntensity(out.Intensity) {
		return CryLogInput{}, ErrInvalidIntensity
	}
	if out.DurationMinutes <= 0 {
		return CryLogInput{}, ErrInvalidDuration
	}

	parsed, err := time.ParseInLocation(dateLayout, out.Date, now.Location())
	if err != nil {
		return CryLogInput{}, ErrInvalidDate
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if parsed.After(today) {
		return CryLogInput{}, ErrFutureDate
	}
	out.Date = parsed.Format(dateLayout)

	if !startTimePattern.MatchString(out.StartTime) {
		return CryLogInput{}, ErrInvalidTime
	}
	if len(out.StartTime) == 4 {
		out.StartTime = "0" + out.StartTime
	}

	return out, nil
}

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validatorNow = time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)

func validInput() CryLogInput {
	return CryLogInput{
		UserID:          1,
		Date:            "2024-03-14",
		StartTime:       "21:30",
		DurationMinutes: 15,
		Intensity:       "moderate",
		MoodAfter:       "relieved",
		Reason:          "watched a sad movie",
	}
}

func TestNormalizeCryLogInputAccepts(t *testing.T) {
	out, err := normalizeCryLogInput(validInput(), validatorNow)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-14", out.Date)
	assert.Equal(t, "21:30", out.StartTime)
	assert.Equal(t, "moderate", out.Intensity)
}

func TestNormalizeCryLogInputNormalizes(t *testing.T) {
	in := validInput()
	in.Intensity = "  HIGH "
	in.StartTime = "9:05"
	in.MoodAfter = " better "

	out, err := normalizeCryLogInput(in, validatorNow)
	require.NoError(t, err)
	assert.Equal(t, "high", out.Intensity)
	assert.Equal(t, "09:05", out.StartTime)
	assert.Equal(t, "better", out.MoodAfter)
}

func TestNormalizeCryLogInputAcceptsToday(t *testing.T) {
	in := validInput()
	in.Date = validatorNow.Format("2006-01-02")

	_, err := normalizeCryLogInput(in, validatorNow)
	assert.NoError(t, err)
}

func TestNormalizeCryLogInputRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CryLogInput)
		wantErr error
	}{
		{"missing date", func(in *CryLogInput) { in.Date = "" }, ErrMissingField},
		{"missing start time", func(in *CryLogInput) { in.StartTime = "  " }, ErrMissingField},
		{"missing mood", func(in *CryLogInput) { in.MoodAfter = "" }, ErrMissingField},
		{"missing reason", func(in *CryLogInput) { in.Reason = "" }, ErrMissingField},
		{"missing intensity", func(in *CryLogInput) { in.Intensity = "" }, ErrMissingField},
		{"unknown intensity", func(in *CryLogInput) { in.Intensity = "extreme" }, ErrInvalidIntensity},
		{"zero duration", func(in *CryLogInput) { in.DurationMinutes = 0 }, ErrInvalidDuration},
		{"negative duration", func(in *CryLogInput) { in.DurationMinutes = -5 }, ErrInvalidDuration},
		{"garbage date", func(in *CryLogInput) { in.Date = "not-a-date" }, ErrInvalidDate},
		{"impossible date", func(in *CryLogInput) { in.Date = "2024-02-31" }, ErrInvalidDate},
		{"tomorrow", func(in *CryLogInput) { in.Date = validatorNow.AddDate(0, 0, 1).Format("2006-01-02") }, ErrFutureDate},
		{"bad time separator", func(in *CryLogInput) { in.StartTime = "21.30" }, ErrInvalidTime},
		{"hour out of range", func(in *CryLogInput) { in.StartTime = "24:00" }, ErrInvalidTime},
		{"minute out of range", func(in *CryLogInput) { in.StartTime = "12:60" }, ErrInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := normalizeCryLogInput(in, validatorNow)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNormalizeCryLogInputMinimalDuration(t *testing.T) {
	in := validInput()
	in.DurationMinutes = 1

	out, err := normalizeCryLogInput(in, validatorNow)
	require.NoError(t, err)
	assert.Equal(t, 1, out.DurationMinutes)
}

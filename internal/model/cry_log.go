package model

import "time"

// CryLog is one logged crying session. Date and StartTime are kept as
// zone-less strings ("2006-01-02" / "15:04"); all calendar math downstream
// uses the server's local day.
type CryLog struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	Date            string    `gorm:"size:10;not null;index" json:"date"`
	StartTime       string    `gorm:"size:5;not null" json:"start_time"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Intensity       string    `gorm:"size:16;not null" json:"intensity"`
	MoodAfter       string    `gorm:"size:64;not null" json:"mood_after"`
	Reason          string    `gorm:"type:text;not null" json:"reason"`
	TearsMl         float64   `gorm:"not null" json:"tears_ml"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

package model

import "time"

// ActivityLog is an audit-trail entry for a cry log mutation. Entries are
// published to RabbitMQ and persisted asynchronously by the activity worker.
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Action    string    `gorm:"size:32;not null;index" json:"action"`
	CryLogID  uint      `gorm:"index" json:"cry_log_id"`
	Detail    string    `gorm:"type:text" json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

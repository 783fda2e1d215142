package domain

import "time"

// GrowthLog is one measurement entry for a child.
type GrowthLog struct {
	ID                  string    `json:"id" gorm:"primaryKey"`
	UserID              string    `json:"user_id" gorm:"index;not null"`
	ChildName           string    `json:"childName,omitempty"`
	RecordedAt          time.Time `json:"recordedAt"`
	HeightCm            float64   `json:"heightCm"`
	WeightKg            float64   `json:"weightKg"`
	HeadCircumferenceCm float64   `json:"headCircumferenceCm,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ReminderSettings is the per-parent measurement reminder. The scheduler
// emails the parent when NextDueAt passes and advances it by IntervalDays.
type ReminderSettings struct {
	UserID       string     `json:"user_id" gorm:"primaryKey"`
	Enabled      bool       `json:"enabled"`
	IntervalDays int        `json:"intervalDays" gorm:"default:30"`
	NextDueAt    *time.Time `json:"nextDueAt,omitempty"`
	LastSentAt   *time.Time `json:"lastSentAt,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Stats summarizes a parent's growth history for the dashboard chart header.
type Stats struct {
	TotalLogs        int64      `json:"totalLogs"`
	Latest           *GrowthLog `json:"latest,omitempty"`
	HeightDeltaCm    float64    `json:"heightDeltaCm"`
	WeightDeltaKg    float64    `json:"weightDeltaKg"`
	HeightVelocityCm float64    `json:"heightVelocityCmPer30d"`
	WeightVelocityKg float64    `json:"weightVelocityKgPer30d"`
}

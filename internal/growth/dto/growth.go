package dto

import "time"

type GrowthLogRequest struct {
	ChildName           string    `json:"childName"`
	RecordedAt          time.Time `json:"recordedAt" binding:"required"`
	HeightCm            float64   `json:"heightCm" binding:"required,gt=0"`
	WeightKg            float64   `json:"weightKg" binding:"required,gt=0"`
	HeadCircumferenceCm float64   `json:"headCircumferenceCm"`
	Notes               string    `json:"notes"`
}

type ReminderSettingsRequest struct {
	Enabled      *bool `json:"enabled" binding:"required"`
	IntervalDays int   `json:"intervalDays" binding:"omitempty,gt=0"`
}

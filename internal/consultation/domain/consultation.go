package domain

import "time"

type ConsultationStatus string

const (
	ConsultationRequested ConsultationStatus = "requested"
	ConsultationConfirmed ConsultationStatus = "confirmed"
	ConsultationCompleted ConsultationStatus = "completed"
	ConsultationCancelled ConsultationStatus = "cancelled"
)

// Consultation is a parent's request for a video session with a doctor.
type Consultation struct {
	ID          string             `json:"id" gorm:"primaryKey"`
	ParentID    string             `json:"parent_id" gorm:"index;not null"`
	DoctorID    string             `json:"doctor_id" gorm:"index;not null"`
	ChildName   string             `json:"childName"`
	Concern     string             `json:"concern"`
	ScheduledAt time.Time          `json:"scheduledAt"`
	Status      ConsultationStatus `json:"status" gorm:"default:requested"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

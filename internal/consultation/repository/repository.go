package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/suryaprakash0010/InfantCareCompass/internal/consultation/domain"
)

type ConsultationRepository interface {
	Create(consultation *domain.Consultation) error
	FindByParent(parentID string) ([]domain.Consultation, error)
	Count() (int64, error)
	CountByStatus(status domain.ConsultationStatus) (int64, error)
}

type consultationRepository struct {
	db *gorm.DB
}

func NewConsultationRepository(db *gorm.DB) ConsultationRepository {
	return &consultationRepository{db: db}
}

func (r *consultationRepository) Create(consultation *domain.Consultation) error {
	if consultation.ID == "" {
		consultation.ID = uuid.New().String()
	}
	if consultation.Status == "" {
		consultation.Status = domain.ConsultationRequested
	}
	consultation.CreatedAt = time.Now()
	consultation.UpdatedAt = time.Now()
	return r.db.Create(consultation).Error
}

func (r *consultationRepository) FindByParent(parentID string) ([]domain.Consultation, error) {
	var consultations []domain.Consultation
	err := r.db.Where("parent_id = ?", parentID).Order("scheduled_at DESC").Find(&consultations).Error
	return consultations, err
}

func (r *consultationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Consultation{}).Count(&count).Error
	return count, err
}

func (r *consultationRepository) CountByStatus(status domain.ConsultationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Consultation{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

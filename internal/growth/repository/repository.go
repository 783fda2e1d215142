package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/suryaprakash0010/InfantCareCompass/internal/growth/domain"
)

type GrowthLogRepository interface {
	Create(log *domain.GrowthLog) error
	FindByUser(userID string) ([]domain.GrowthLog, error)
	FindByID(userID, id string) (*domain.GrowthLog, error)
	Update(log *domain.GrowthLog) error
	Delete(userID, id string) (bool, error)
}

type ReminderRepository interface {
	Upsert(settings *domain.ReminderSettings) error
	FindByUser(userID string) (*domain.ReminderSettings, error)
	FindDue(now time.Time) ([]domain.ReminderSettings, error)
}

type growthLogRepository struct {
	db *gorm.DB
}

func NewGrowthLogRepository(db *gorm.DB) GrowthLogRepository {
	return &growthLogRepository{db: db}
}

func (r *growthLogRepository) Create(log *domain.GrowthLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	log.CreatedAt = time.Now()
	log.UpdatedAt = time.Now()
	return r.db.Create(log).Error
}

func (r *growthLogRepository) FindByUser(userID string) ([]domain.GrowthLog, error) {
	var logs []domain.GrowthLog
	err := r.db.Where("user_id = ?", userID).Order("recorded_at ASC").Find(&logs).Error
	return logs, err
}

func (r *growthLogRepository) FindByID(userID, id string) (*domain.GrowthLog, error) {
	var log domain.GrowthLog
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

func (r *growthLogRepository) Update(log *domain.GrowthLog) error {
	log.UpdatedAt = time.Now()
	return r.db.Save(log).Error
}

func (r *growthLogRepository) Delete(userID, id string) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.GrowthLog{})
	return result.RowsAffected > 0, result.Error
}

type reminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Upsert(settings *domain.ReminderSettings) error {
	settings.UpdatedAt = time.Now()
	return r.db.Save(settings).Error
}

func (r *reminderRepository) FindByUser(userID string) (*domain.ReminderSettings, error) {
	var settings domain.ReminderSettings
	err := r.db.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *reminderRepository) FindDue(now time.Time) ([]domain.ReminderSettings, error) {
	var settings []domain.ReminderSettings
	err := r.db.Where("enabled = ? AND next_due_at IS NOT NULL AND next_due_at <= ?", true, now).Find(&settings).Error
	return settings, err
}

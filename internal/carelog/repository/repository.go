package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/suryaprakash0010/InfantCareCompass/internal/carelog/domain"
)

// FeedLogRepository and SleepLogRepository scope every read and write to the
// owning user; a log id belonging to someone else behaves like a missing row.
type FeedLogRepository interface {
	Create(log *domain.FeedLog) error
	FindByUser(userID string) ([]domain.FeedLog, error)
	FindByID(userID, id string) (*domain.FeedLog, error)
	Update(log *domain.FeedLog) error
	Delete(userID, id string) (bool, error)
}

type SleepLogRepository interface {
	Create(log *domain.SleepLog) error
	FindByUser(userID string) ([]domain.SleepLog, error)
	FindByID(userID, id string) (*domain.SleepLog, error)
	Update(log *domain.SleepLog) error
	Delete(userID, id string) (bool, error)
}

type feedLogRepository struct {
	db *gorm.DB
}

func NewFeedLogRepository(db *gorm.DB) FeedLogRepository {
	return &feedLogRepository{db: db}
}

func (r *feedLogRepository) Create(log *domain.FeedLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	log.CreatedAt = time.Now()
	log.UpdatedAt = time.Now()
	return r.db.Create(log).Error
}

func (r *feedLogRepository) FindByUser(userID string) ([]domain.FeedLog, error) {
	var logs []domain.FeedLog
	err := r.db.Where("user_id = ?", userID).Order("fed_at DESC").Find(&logs).Error
	return logs, err
}

func (r *feedLogRepository) FindByID(userID, id string) (*domain.FeedLog, error) {
	var log domain.FeedLog
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

func (r *feedLogRepository) Update(log *domain.FeedLog) error {
	log.UpdatedAt = time.Now()
	return r.db.Save(log).Error
}

func (r *feedLogRepository) Delete(userID, id string) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.FeedLog{})
	return result.RowsAffected > 0, result.Error
}

type sleepLogRepository struct {
	db *gorm.DB
}

func NewSleepLogRepository(db *gorm.DB) SleepLogRepository {
	return &sleepLogRepository{db: db}
}

func (r *sleepLogRepository) Create(log *domain.SleepLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	log.CreatedAt = time.Now()
	log.UpdatedAt = time.Now()
	return r.db.Create(log).Error
}

func (r *sleepLogRepository) FindByUser(userID string) ([]domain.SleepLog, error) {
	var logs []domain.SleepLog
	err := r.db.Where("user_id = ?", userID).Order("slept_at DESC").Find(&logs).Error
	return logs, err
}

func (r *sleepLogRepository) FindByID(userID, id string) (*domain.SleepLog, error) {
	var log domain.SleepLog
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

func (r *sleepLogRepository) Update(log *domain.SleepLog) error {
	log.UpdatedAt = time.Now()
	return r.db.Save(log).Error
}

func (r *sleepLogRepository) Delete(userID, id string) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.SleepLog{})
	return result.RowsAffected > 0, result.Error
}

package usecase

import (
	"errors"
	"time"

	"github.com/suryaprakash0010/InfantCareCompass/internal/growth/domain"
	"github.com/suryaprakash0010/InfantCareCompass/internal/growth/dto"
	"github.com/suryaprakash0010/InfantCareCompass/internal/growth/repository"
)

var ErrGrowthLogNotFound = errors.New("growth log not found")

type GrowthUsecase interface {
	Create(userID string, req *dto.GrowthLogRequest) (*domain.GrowthLog, error)
	List(userID string) ([]domain.GrowthLog, error)
	Get(userID, id string) (*domain.GrowthLog, error)
	Update(userID, id string, req *dto.GrowthLogRequest) (*domain.GrowthLog, error)
	Delete(userID, id string) error

	Stats(userID string) (*domain.Stats, error)
	UpdateReminderSettings(userID string, req *dto.ReminderSettingsRequest) (*domain.ReminderSettings, error)
}

type growthUsecase struct {
	logRepo      repository.GrowthLogRepository
	reminderRepo repository.ReminderRepository
}

func NewGrowthUsecase(logRepo repository.GrowthLogRepository, reminderRepo repository.ReminderRepository) GrowthUsecase {
	return &growthUsecase{logRepo: logRepo, reminderRepo: reminderRepo}
}

func (u *growthUsecase) Create(userID string, req *dto.GrowthLogRequest) (*domain.GrowthLog, error) {
	log := &domain.GrowthLog{
		UserID:              userID,
		ChildName:           req.ChildName,
		RecordedAt:          req.RecordedAt,
		HeightCm:            req.HeightCm,
		WeightKg:            req.WeightKg,
		HeadCircumferenceCm: req.HeadCircumferenceCm,
		Notes:               req.Notes,
	}
	if err := u.logRepo.Create(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (u *growthUsecase) List(userID string) ([]domain.GrowthLog, error) {
	return u.logRepo.FindByUser(userID)
}

func (u *growthUsecase) Get(userID, id string) (*domain.GrowthLog, error) {
	log, err := u.logRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, ErrGrowthLogNotFound
	}
	return log, nil
}

func (u *growthUsecase) Update(userID, id string, req *dto.GrowthLogRequest) (*domain.GrowthLog, error) {
	log, err := u.logRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, ErrGrowthLogNotFound
	}

	log.ChildName = req.ChildName
	log.RecordedAt = req.RecordedAt
	log.HeightCm = req.HeightCm
	log.WeightKg = req.WeightKg
	log.HeadCircumferenceCm = req.HeadCircumferenceCm
	log.Notes = req.Notes
	if err := u.logRepo.Update(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (u *growthUsecase) Delete(userID, id string) error {
	deleted, err := u.logRepo.Delete(userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrGrowthLogNotFound
	}
	return nil
}

// Stats derives deltas and per-30-day velocity from the first and most
// recent entries. Velocity is zero when fewer than two entries exist or the
// entries share a timestamp.
func (u *growthUsecase) Stats(userID string) (*domain.Stats, error) {
	logs, err := u.logRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := &domain.Stats{TotalLogs: int64(len(logs))}
	if len(logs) == 0 {
		return stats, nil
	}

	first := logs[0]
	latest := logs[len(logs)-1]
	stats.Latest = &latest
	stats.HeightDeltaCm = latest.HeightCm - first.HeightCm
	stats.WeightDeltaKg = latest.WeightKg - first.WeightKg

	span := latest.RecordedAt.Sub(first.RecordedAt)
	if len(logs) > 1 && span > 0 {
		periods := span.Hours() / (30 * 24)
		stats.HeightVelocityCm = stats.HeightDeltaCm / periods
		stats.WeightVelocityKg = stats.WeightDeltaKg / periods
	}
	return stats, nil
}

func (u *growthUsecase) UpdateReminderSettings(userID string, req *dto.ReminderSettingsRequest) (*domain.ReminderSettings, error) {
	settings, err := u.reminderRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &domain.ReminderSettings{UserID: userID, IntervalDays: 30}
	}

	settings.Enabled = *req.Enabled
	if req.IntervalDays > 0 {
		settings.IntervalDays = req.IntervalDays
	}

	if settings.Enabled {
		due := time.Now().AddDate(0, 0, settings.IntervalDays)
		settings.NextDueAt = &due
	} else {
		settings.NextDueAt = nil
	}

	if err := u.reminderRepo.Upsert(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

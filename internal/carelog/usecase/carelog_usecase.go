package usecase

import (
	"errors"

	"github.com/suryaprakash0010/InfantCareCompass/internal/carelog/domain"
	"github.com/suryaprakash0010/InfantCareCompass/internal/carelog/dto"
	"github.com/suryaprakash0010/InfantCareCompass/internal/carelog/repository"
)

var (
	ErrLogNotFound     = errors.New("log not found")
	ErrInvalidFeedType = errors.New("feedType must be breast, bottle, or solid")
	ErrInvalidQuality  = errors.New("quality must be poor, fair, or good")
	ErrInvalidInterval = errors.New("wokeAt must be after sleptAt")
)

type CarelogUsecase interface {
	CreateFeedLog(userID string, req *dto.FeedLogRequest) (*domain.FeedLog, error)
	ListFeedLogs(userID string) ([]domain.FeedLog, error)
	UpdateFeedLog(userID, id string, req *dto.FeedLogRequest) (*domain.FeedLog, error)
	DeleteFeedLog(userID, id string) error

	CreateSleepLog(userID string, req *dto.SleepLogRequest) (*domain.SleepLog, error)
	ListSleepLogs(userID string) ([]domain.SleepLog, error)
	UpdateSleepLog(userID, id string, req *dto.SleepLogRequest) (*domain.SleepLog, error)
	DeleteSleepLog(userID, id string) error
}

type carelogUsecase struct {
	feedRepo  repository.FeedLogRepository
	sleepRepo repository.SleepLogRepository
}

func NewCarelogUsecase(feedRepo repository.FeedLogRepository, sleepRepo repository.SleepLogRepository) CarelogUsecase {
	return &carelogUsecase{feedRepo: feedRepo, sleepRepo: sleepRepo}
}

func (u *carelogUsecase) CreateFeedLog(userID string, req *dto.FeedLogRequest) (*domain.FeedLog, error) {
	feedType := domain.FeedType(req.FeedType)
	if !feedType.Valid() {
		return nil, ErrInvalidFeedType
	}

	log := &domain.FeedLog{
		UserID:   userID,
		FeedType: feedType,
		AmountML: req.AmountML,
		FedAt:    req.FedAt,
		Notes:    req.Notes,
	}
	if err := u.feedRepo.Create(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (u *carelogUsecase) ListFeedLogs(userID string) ([]domain.FeedLog, error) {
	return u.feedRepo.FindByUser(userID)
}

func (u *carelogUsecase) UpdateFeedLog(userID, id string, req *dto.FeedLogRequest) (*domain.FeedLog, error) {
	feedType := domain.FeedType(req.FeedType)
	if !feedType.Valid() {
		return nil, ErrInvalidFeedType
	}

	log, err := u.feedRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, ErrLogNotFound
	}

	log.FeedType = feedType
	log.AmountML = req.AmountML
	log.FedAt = req.FedAt
	log.Notes = req.Notes
	if err := u.feedRepo.Update(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (u *carelogUsecase) DeleteFeedLog(userID, id string) error {
	deleted, err := u.feedRepo.Delete(userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLogNotFound
	}
	return nil
}

func (u *carelogUsecase) CreateSleepLog(userID string, req *dto.SleepLogRequest) (*domain.SleepLog, error) {
	if err := validateSleep(req); err != nil {
		return nil, err
	}

	log := &domain.SleepLog{
		UserID:  userID,
		SleptAt: req.SleptAt,
		WokeAt:  req.WokeAt,
		Quality: domain.SleepQuality(req.Quality),
		Notes:   req.Notes,
	}
	if err := u.sleepRepo.Create(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (u *carelogUsecase) ListSleepLogs(userID string) ([]domain.SleepLog, error) {
	return u.sleepRepo.FindByUser(userID)
}

func (u *carelogUsecase) UpdateSleepLog(userID, id string, req *dto.SleepLogRequest) (*domain.SleepLog, error) {
	if err := validateSleep(req); err != nil {
		return nil, err
	}

	log, err := u.sleepRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, ErrLogNotFound
	}

	log.SleptAt = req.SleptAt
	log.WokeAt = req.WokeAt
	log.Quality = domain.SleepQuality(req.Quality)
	log.Notes = req.Notes
	if err := u.sleepRepo.Update(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (u *carelogUsecase) DeleteSleepLog(userID, id string) error {
	deleted, err := u.sleepRepo.Delete(userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLogNotFound
	}
	return nil
}

func validateSleep(req *dto.SleepLogRequest) error {
	if !req.WokeAt.After(req.SleptAt) {
		return ErrInvalidInterval
	}
	if req.Quality != "" && !domain.SleepQuality(req.Quality).Valid() {
		return ErrInvalidQuality
	}
	return nil
}

package domain

import "time"

// FeedType classifies how the child was fed.
type FeedType string

const (
	FeedTypeBreast FeedType = "breast"
	FeedTypeBottle FeedType = "bottle"
	FeedTypeSolid  FeedType = "solid"
)

func (t FeedType) Valid() bool {
	switch t {
	case FeedTypeBreast, FeedTypeBottle, FeedTypeSolid:
		return true
	}
	return false
}

// FeedLog records one feeding, owned by the parent account that created it.
type FeedLog struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	FeedType  FeedType  `json:"feedType" gorm:"not null"`
	AmountML  float64   `json:"amountMl,omitempty"`
	FedAt     time.Time `json:"fedAt"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SleepQuality is the parent's rating of one sleep session.
type SleepQuality string

const (
	SleepQualityPoor SleepQuality = "poor"
	SleepQualityFair SleepQuality = "fair"
	SleepQualityGood SleepQuality = "good"
)

func (q SleepQuality) Valid() bool {
	switch q {
	case SleepQualityPoor, SleepQualityFair, SleepQualityGood:
		return true
	}
	return false
}

// SleepLog records one sleep session.
type SleepLog struct {
	ID        string       `json:"id" gorm:"primaryKey"`
	UserID    string       `json:"user_id" gorm:"index;not null"`
	SleptAt   time.Time    `json:"sleptAt"`
	WokeAt    time.Time    `json:"wokeAt"`
	Quality   SleepQuality `json:"quality,omitempty"`
	Notes     string       `json:"notes,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

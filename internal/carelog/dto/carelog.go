package dto

import "time"

type FeedLogRequest struct {
	FeedType string    `json:"feedType" binding:"required"`
	AmountML float64   `json:"amountMl"`
	FedAt    time.Time `json:"fedAt" binding:"required"`
	Notes    string    `json:"notes"`
}

type SleepLogRequest struct {
	SleptAt time.Time `json:"sleptAt" binding:"required"`
	WokeAt  time.Time `json:"wokeAt" binding:"required"`
	Quality string    `json:"quality"`
	Notes   string    `json:"notes"`
}

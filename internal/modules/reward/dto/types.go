package dto

import "time"

type RewardOutput struct {
	Name        string
	DisplayName string
	Cost        int
	Affordable  bool
}

type ClaimOutput struct {
	Name          string
	Cost          int
	GoldRemaining int
	ClaimedAt     time.Time
}

type ClaimedRewardOutput struct {
	Name      string
	Cost      int
	ClaimedAt time.Time
}

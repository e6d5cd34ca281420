package domain

import (
	"fmt"
	"time"

	progressiondomain "ascend/internal/modules/progression/domain"
	apperrors "ascend/internal/platform/errors"
)

// Reward is a gold sink from the catalog. Costs scale roughly with how much
// study time the reward displaces.
type Reward struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Cost        int    `yaml:"cost"`
}

// Defaults is the built-in catalog, used when no catalog file exists.
func Defaults() []Reward {
	return []Reward{
		{Name: "break", DisplayName: "Extra Study Break (15 min)", Cost: 10},
		{Name: "movie", DisplayName: "Movie Night", Cost: 40},
		{Name: "meal", DisplayName: "Cheat Meal", Cost: 30},
		{Name: "dayoff", DisplayName: "Full Day Off", Cost: 120},
		{Name: "social", DisplayName: "Social Outing", Cost: 60},
		{Name: "gaming", DisplayName: "Gaming Session (2h)", Cost: 50},
	}
}

// Claim debits the reward cost and prepends the claim record. The profile is
// untouched when gold is short.
func Claim(p *progressiondomain.Profile, reward Reward, now time.Time) error {
	if p.Gold < reward.Cost {
		return fmt.Errorf("%w: %d gold for %q, have %d", apperrors.ErrInsufficientGold, reward.Cost, reward.Name, p.Gold)
	}
	p.Gold -= reward.Cost
	p.ClaimedRewards = append([]progressiondomain.ClaimedReward{{
		Name:      reward.Name,
		Cost:      reward.Cost,
		ClaimedAt: now,
	}}, p.ClaimedRewards...)
	return nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	progressiondomain "ascend/internal/modules/progression/domain"
	progressionout "ascend/internal/modules/progression/port/out"
	"ascend/internal/modules/reward/domain"
	rewarddto "ascend/internal/modules/reward/dto"
	rewardin "ascend/internal/modules/reward/port/in"
	rewardout "ascend/internal/modules/reward/port/out"
	"ascend/internal/platform/clock"
	apperrors "ascend/internal/platform/errors"
)

type Interactor struct {
	catalog  rewardout.CatalogStore
	profiles progressionout.ProfileStore
	clock    clock.Clock
}

func NewInteractor(catalog rewardout.CatalogStore, profiles progressionout.ProfileStore, clock clock.Clock) rewardin.Usecase {
	return &Interactor{catalog: catalog, profiles: profiles, clock: clock}
}

func (i *Interactor) List(ctx context.Context) ([]rewarddto.RewardOutput, error) {
	rewards, err := i.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := i.loadProfile(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]rewarddto.RewardOutput, 0, len(rewards))
	for _, reward := range rewards {
		out = append(out, rewarddto.RewardOutput{
			Name:        reward.Name,
			DisplayName: reward.DisplayName,
			Cost:        reward.Cost,
			Affordable:  profile.Gold >= reward.Cost,
		})
	}
	return out, nil
}

func (i *Interactor) Claim(ctx context.Context, name string) (rewarddto.ClaimOutput, error) {
	rewards, err := i.catalog.Load(ctx)
	if err != nil {
		return rewarddto.ClaimOutput{}, err
	}
	var reward domain.Reward
	found := false
	for _, candidate := range rewards {
		if candidate.Name == name {
			reward = candidate
			found = true
			break
		}
	}
	if !found {
		return rewarddto.ClaimOutput{}, fmt.Errorf("%w: reward %q is not in the catalog", apperrors.ErrNotFound, name)
	}

	profile, err := i.loadProfile(ctx)
	if err != nil {
		return rewarddto.ClaimOutput{}, err
	}
	now := i.clock.Now()
	if err := domain.Claim(&profile, reward, now); err != nil {
		return rewarddto.ClaimOutput{}, err
	}
	if err := i.profiles.Save(ctx, profile); err != nil {
		return rewarddto.ClaimOutput{}, err
	}
	return rewarddto.ClaimOutput{
		Name:          reward.Name,
		Cost:          reward.Cost,
		GoldRemaining: profile.Gold,
		ClaimedAt:     now,
	}, nil
}

func (i *Interactor) History(ctx context.Context) ([]rewarddto.ClaimedRewardOutput, error) {
	profile, err := i.loadProfile(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]rewarddto.ClaimedRewardOutput, 0, len(profile.ClaimedRewards))
	for _, claim := range profile.ClaimedRewards {
		out = append(out, rewarddto.ClaimedRewardOutput{
			Name:      claim.Name,
			Cost:      claim.Cost,
			ClaimedAt: claim.ClaimedAt,
		})
	}
	return out, nil
}

func (i *Interactor) loadProfile(ctx context.Context) (progressiondomain.Profile, error) {
	profile, err := i.profiles.Load(ctx)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return progressiondomain.Profile{}, err
	}
	return progressiondomain.NewProfile(i.clock.Now()), nil
}

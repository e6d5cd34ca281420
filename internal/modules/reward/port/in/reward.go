package in

import (
	"context"

	"ascend/internal/modules/reward/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.RewardOutput, error)
	Claim(ctx context.Context, name string) (dto.ClaimOutput, error)
	History(ctx context.Context) ([]dto.ClaimedRewardOutput, error)
}

package in

import (
	"context"

	rewarddto "ascend/internal/modules/reward/dto"
	rewardin "ascend/internal/modules/reward/port/in"
)

type CLIHandler struct {
	usecase rewardin.Usecase
}

func NewCLIHandler(usecase rewardin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]rewarddto.RewardOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Claim(ctx context.Context, name string) (rewarddto.ClaimOutput, error) {
	return h.usecase.Claim(ctx, name)
}

func (h CLIHandler) History(ctx context.Context) ([]rewarddto.ClaimedRewardOutput, error) {
	return h.usecase.History(ctx)
}

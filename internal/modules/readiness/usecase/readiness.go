package usecase

import (
	"context"

	progressionout "ascend/internal/modules/progression/port/out"
	"ascend/internal/modules/readiness/domain"
	readinessdto "ascend/internal/modules/readiness/dto"
	readinessin "ascend/internal/modules/readiness/port/in"
	"ascend/internal/platform/clock"
)

type Interactor struct {
	profiles progressionout.ProfileStore
	clock    clock.Clock
}

func NewInteractor(profiles progressionout.ProfileStore, clock clock.Clock) readinessin.Usecase {
	return &Interactor{profiles: profiles, clock: clock}
}

func (i *Interactor) Calculate(ctx context.Context) (readinessdto.ReadinessOutput, error) {
	profile, err := i.profiles.Load(ctx)
	if err != nil {
		return readinessdto.ReadinessOutput{}, err
	}
	result := domain.Calculate(&profile, i.clock.Now())
	return readinessdto.ReadinessOutput{
		Show:       result.Show,
		Reason:     result.Reason,
		Percentage: result.Percentage,
		RangeLow:   result.RangeLow,
		RangeHigh:  result.RangeHigh,
		Base:       result.Base,
		Modifiers:  result.Modifiers,
	}, nil
}

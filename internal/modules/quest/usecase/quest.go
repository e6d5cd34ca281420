package usecase

import (
	"context"
	"fmt"

	progressionout "ascend/internal/modules/progression/port/out"
	questdto "ascend/internal/modules/quest/dto"
	questin "ascend/internal/modules/quest/port/in"
	"ascend/internal/platform/calendar"
	"ascend/internal/platform/clock"
	apperrors "ascend/internal/platform/errors"
)

type Interactor struct {
	profiles progressionout.ProfileStore
	clock    clock.Clock
}

func NewInteractor(profiles progressionout.ProfileStore, clock clock.Clock) questin.Usecase {
	return &Interactor{profiles: profiles, clock: clock}
}

// Current returns today's quest. Quests are rolled by daily maintenance, so
// a missing quest means maintenance has not run for this date yet.
func (i *Interactor) Current(ctx context.Context) (questdto.QuestOutput, error) {
	profile, err := i.profiles.Load(ctx)
	if err != nil {
		return questdto.QuestOutput{}, err
	}
	quest := profile.DailyQuest
	if quest == nil || quest.Date != calendar.DateKey(i.clock.Now()) {
		return questdto.QuestOutput{}, fmt.Errorf("%w: no quest for today", apperrors.ErrNotFound)
	}
	return questdto.QuestOutput{
		Date:      quest.Date,
		Subject:   string(quest.Subject),
		Phase:     string(quest.Phase),
		XP:        quest.XP,
		Completed: quest.Completed,
	}, nil
}

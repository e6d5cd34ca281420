package in

import (
	"context"

	"ascend/internal/modules/quest/dto"
)

type Usecase interface {
	Current(ctx context.Context) (dto.QuestOutput, error)
}

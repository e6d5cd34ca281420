package in

import (
	"context"

	"ascend/internal/modules/readiness/dto"
)

type Usecase interface {
	Calculate(ctx context.Context) (dto.ReadinessOutput, error)
}

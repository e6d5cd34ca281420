package in

import (
	"context"

	"ascend/internal/modules/progression/dto"
)

type Usecase interface {
	Status(ctx context.Context) (dto.StatusOutput, error)
	Report(ctx context.Context) (dto.ReportOutput, error)
	Awaken(ctx context.Context, input dto.AwakenInput) (dto.AwakenOutput, error)
	History(ctx context.Context, days int) ([]dto.HistoryEntryOutput, error)
	Reindex(ctx context.Context) (int, error)
}

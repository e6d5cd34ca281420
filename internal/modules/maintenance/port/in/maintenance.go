package in

import (
	"context"

	"ascend/internal/modules/maintenance/dto"
)

type Usecase interface {
	RunDaily(ctx context.Context) (dto.RunOutput, error)
	ExportStatus(ctx context.Context) (dto.ExportStatusOutput, error)
	MarkExported(ctx context.Context) error
}

package in

import (
	"context"

	"ascend/internal/modules/session/dto"
)

type Usecase interface {
	StartStudy(ctx context.Context, input dto.StartStudyInput) (dto.StartOutput, error)
	StartMock(ctx context.Context, input dto.StartMockInput) (dto.StartOutput, error)
	AttachPhoto(ctx context.Context, blob []byte) (dto.EvidenceOutput, error)
	AttachAffirmation(ctx context.Context, text string) (dto.EvidenceOutput, error)
	FinalizeStudy(ctx context.Context, input dto.FinalizeStudyInput) (dto.FinalizeOutput, error)
	FinalizeMock(ctx context.Context, input dto.FinalizeMockInput) (dto.FinalizeOutput, error)
	Cancel(ctx context.Context) (dto.CancelOutput, error)
	Active(ctx context.Context) (dto.ActiveOutput, error)
	StorageUsage(ctx context.Context) (dto.UsageOutput, error)
	StorageCleanup(ctx context.Context) (dto.CleanupOutput, error)
}

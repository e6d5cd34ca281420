package in

import (
	"context"

	sessiondto "ascend/internal/modules/session/dto"
	sessionin "ascend/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) StartStudy(ctx context.Context, subject, topic, phase string) (sessiondto.StartOutput, error) {
	return h.usecase.StartStudy(ctx, sessiondto.StartStudyInput{Subject: subject, Topic: topic, Phase: phase})
}

func (h CLIHandler) StartMock(ctx context.Context, mockType, subject, source string) (sessiondto.StartOutput, error) {
	return h.usecase.StartMock(ctx, sessiondto.StartMockInput{MockType: mockType, Subject: subject, Source: source})
}

func (h CLIHandler) AttachPhoto(ctx context.Context, blob []byte) (sessiondto.EvidenceOutput, error) {
	return h.usecase.AttachPhoto(ctx, blob)
}

func (h CLIHandler) AttachAffirmation(ctx context.Context, text string) (sessiondto.EvidenceOutput, error) {
	return h.usecase.AttachAffirmation(ctx, text)
}

func (h CLIHandler) FinalizeStudy(ctx context.Context, input sessiondto.FinalizeStudyInput) (sessiondto.FinalizeOutput, error) {
	return h.usecase.FinalizeStudy(ctx, input)
}

func (h CLIHandler) FinalizeMock(ctx context.Context, input sessiondto.FinalizeMockInput) (sessiondto.FinalizeOutput, error) {
	return h.usecase.FinalizeMock(ctx, input)
}

func (h CLIHandler) Cancel(ctx context.Context) (sessiondto.CancelOutput, error) {
	return h.usecase.Cancel(ctx)
}

func (h CLIHandler) Active(ctx context.Context) (sessiondto.ActiveOutput, error) {
	return h.usecase.Active(ctx)
}

func (h CLIHandler) StorageUsage(ctx context.Context) (sessiondto.UsageOutput, error) {
	return h.usecase.StorageUsage(ctx)
}

func (h CLIHandler) StorageCleanup(ctx context.Context) (sessiondto.CleanupOutput, error) {
	return h.usecase.StorageCleanup(ctx)
}

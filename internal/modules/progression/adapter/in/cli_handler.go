package in

import (
	"context"

	progressiondto "ascend/internal/modules/progression/dto"
	progressionin "ascend/internal/modules/progression/port/in"
)

type CLIHandler struct {
	usecase progressionin.Usecase
}

func NewCLIHandler(usecase progressionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Status(ctx context.Context) (progressiondto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Report(ctx context.Context) (progressiondto.ReportOutput, error) {
	return h.usecase.Report(ctx)
}

func (h CLIHandler) Awaken(ctx context.Context, vision, antiVision string) (progressiondto.AwakenOutput, error) {
	return h.usecase.Awaken(ctx, progressiondto.AwakenInput{Vision: vision, AntiVision: antiVision})
}

func (h CLIHandler) History(ctx context.Context, days int) ([]progressiondto.HistoryEntryOutput, error) {
	return h.usecase.History(ctx, days)
}

func (h CLIHandler) Reindex(ctx context.Context) (int, error) {
	return h.usecase.Reindex(ctx)
}

package in

import (
	"context"

	questdto "ascend/internal/modules/quest/dto"
	questin "ascend/internal/modules/quest/port/in"
)

type CLIHandler struct {
	usecase questin.Usecase
}

func NewCLIHandler(usecase questin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Current(ctx context.Context) (questdto.QuestOutput, error) {
	return h.usecase.Current(ctx)
}

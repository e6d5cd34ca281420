package in

import (
	"context"

	readinessdto "ascend/internal/modules/readiness/dto"
	readinessin "ascend/internal/modules/readiness/port/in"
)

type CLIHandler struct {
	usecase readinessin.Usecase
}

func NewCLIHandler(usecase readinessin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Calculate(ctx context.Context) (readinessdto.ReadinessOutput, error) {
	return h.usecase.Calculate(ctx)
}

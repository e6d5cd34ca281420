package in

import (
	"context"

	maintenancedto "ascend/internal/modules/maintenance/dto"
	maintenancein "ascend/internal/modules/maintenance/port/in"
)

type CLIHandler struct {
	usecase maintenancein.Usecase
}

func NewCLIHandler(usecase maintenancein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) RunDaily(ctx context.Context) (maintenancedto.RunOutput, error) {
	return h.usecase.RunDaily(ctx)
}

func (h CLIHandler) ExportStatus(ctx context.Context) (maintenancedto.ExportStatusOutput, error) {
	return h.usecase.ExportStatus(ctx)
}

func (h CLIHandler) MarkExported(ctx context.Context) error {
	return h.usecase.MarkExported(ctx)
}

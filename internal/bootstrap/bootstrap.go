package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	maintenanceinadapter "ascend/internal/modules/maintenance/adapter/in"
	maintenanceoutadapter "ascend/internal/modules/maintenance/adapter/out"
	maintenanceusecase "ascend/internal/modules/maintenance/usecase"
	progressioninadapter "ascend/internal/modules/progression/adapter/in"
	progressionoutadapter "ascend/internal/modules/progression/adapter/out"
	progressionservice "ascend/internal/modules/progression/service"
	progressionusecase "ascend/internal/modules/progression/usecase"
	questinadapter "ascend/internal/modules/quest/adapter/in"
	questusecase "ascend/internal/modules/quest/usecase"
	readinessinadapter "ascend/internal/modules/readiness/adapter/in"
	readinessusecase "ascend/internal/modules/readiness/usecase"
	rewardinadapter "ascend/internal/modules/reward/adapter/in"
	rewardoutadapter "ascend/internal/modules/reward/adapter/out"
	rewardusecase "ascend/internal/modules/reward/usecase"
	sessioninadapter "ascend/internal/modules/session/adapter/in"
	sessionoutadapter "ascend/internal/modules/session/adapter/out"
	sessionservice "ascend/internal/modules/session/service"
	sessionusecase "ascend/internal/modules/session/usecase"
	"ascend/internal/platform/clock"
	"ascend/internal/platform/config"
	"ascend/internal/platform/id"
	"ascend/internal/platform/rng"
	"ascend/internal/ui/timer"
)

type App struct {
	ProgressionCLI progressioninadapter.CLIHandler
	SessionCLI     sessioninadapter.CLIHandler
	MaintenanceCLI maintenanceinadapter.CLIHandler
	QuestCLI       questinadapter.CLIHandler
	ReadinessCLI   readinessinadapter.CLIHandler
	RewardCLI      rewardinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}
	source := rng.SystemSource{}

	profileStore := progressionoutadapter.NewFileProfileStore(cfg.ProfilePath)
	historyProjector, err := progressionoutadapter.NewSQLiteHistoryProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new history projector: %w", err)
	}
	progressionSvc := progressionservice.NewProgressionService(clk, profileStore, historyProjector)
	progressionUC := progressionusecase.NewInteractor(progressionSvc, clk)

	activeStore := sessionoutadapter.NewFileActiveSessionStore(cfg.DataPath)
	evidenceStore, err := sessionoutadapter.NewSQLiteEvidenceStore(cfg.DBPath, clk)
	if err != nil {
		return nil, fmt.Errorf("new evidence store: %w", err)
	}
	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, ids, source),
		clk,
		profileStore,
		historyProjector,
		activeStore,
		evidenceStore,
	)

	markerStore := maintenanceoutadapter.NewFileMarkerStore(cfg.MarkerPath)
	maintenanceUC := maintenanceusecase.NewInteractor(clk, source, profileStore, markerStore)

	questUC := questusecase.NewInteractor(profileStore, clk)
	readinessUC := readinessusecase.NewInteractor(profileStore, clk)
	rewardUC := rewardusecase.NewInteractor(rewardoutadapter.NewYAMLCatalogStore(cfg.CatalogPath), profileStore, clk)

	return &App{
		ProgressionCLI: progressioninadapter.NewCLIHandler(progressionUC),
		SessionCLI:     sessioninadapter.NewCLIHandler(sessionUC),
		MaintenanceCLI: maintenanceinadapter.NewCLIHandler(maintenanceUC),
		QuestCLI:       questinadapter.NewCLIHandler(questUC),
		ReadinessCLI:   readinessinadapter.NewCLIHandler(readinessUC),
		RewardCLI:      rewardinadapter.NewCLIHandler(rewardUC),
	}, nil
}

// RunTimer blocks on the live timer view until the user leaves it.
func RunTimer(app *App) error {
	program := tea.NewProgram(timer.New(app.SessionCLI), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

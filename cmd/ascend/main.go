package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ascend/internal/bootstrap"
	progressiondto "ascend/internal/modules/progression/dto"
	sessiondto "ascend/internal/modules/session/dto"
	"ascend/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string

	root := &cobra.Command{
		Use:           "ascend",
		Short:         "Exam preparation progression tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", "", "data directory (default $ASCEND_DATA or ~/.ascend)")

	root.AddCommand(newAwakenCmd(&dataPath))
	root.AddCommand(newStartCmd(&dataPath))
	root.AddCommand(newEvidenceCmd(&dataPath))
	root.AddCommand(newFinishCmd(&dataPath))
	root.AddCommand(newCancelCmd(&dataPath))
	root.AddCommand(newActiveCmd(&dataPath))
	root.AddCommand(newTimerCmd(&dataPath))
	root.AddCommand(newStatusCmd(&dataPath))
	root.AddCommand(newReportCmd(&dataPath))
	root.AddCommand(newHistoryCmd(&dataPath))
	root.AddCommand(newReindexCmd(&dataPath))
	root.AddCommand(newMaintainCmd(&dataPath))
	root.AddCommand(newQuestCmd(&dataPath))
	root.AddCommand(newReadinessCmd(&dataPath))
	root.AddCommand(newRewardsCmd(&dataPath))
	root.AddCommand(newStorageCmd(&dataPath))
	root.AddCommand(newExportCmd(&dataPath))
	return root
}

// loadApp wires the application and settles pending daily maintenance first,
// so every command observes decayed and rolled state.
func loadApp(dataPath string) (*bootstrap.App, error) {
	cfg, err := config.New(dataPath)
	if err != nil {
		return nil, err
	}
	app, err := bootstrap.New(cfg)
	if err != nil {
		return nil, err
	}
	if _, err := app.MaintenanceCLI.RunDaily(context.Background()); err != nil {
		return nil, fmt.Errorf("daily maintenance: %w", err)
	}
	return app, nil
}

func newAwakenCmd(dataPath *string) *cobra.Command {
	var vision, antiVision string
	awaken := &cobra.Command{
		Use:   "awaken",
		Short: "Complete the awakening ritual and start the journey",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ProgressionCLI.Awaken(context.Background(), vision, antiVision)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "awakening complete, journey started %s\n", out.StartDate.Format("2006-01-02"))
			return nil
		},
	}
	awaken.Flags().StringVar(&vision, "vision", "", "who you become if you succeed (min 100 chars)")
	awaken.Flags().StringVar(&antiVision, "anti-vision", "", "who you become if you fail (min 100 chars)")
	return awaken
}

func newStartCmd(dataPath *string) *cobra.Command {
	start := &cobra.Command{Use: "start", Short: "Start a study or mock session"}

	var subject, topic, phase string
	study := &cobra.Command{
		Use:   "study --subject <name>",
		Short: "Start a timed study session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(subject) == "" {
				return fmt.Errorf("--subject is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.StartStudy(context.Background(), subject, topic, phase)
			if err != nil {
				return err
			}
			printStart(cmd, out)
			return nil
		},
	}
	study.Flags().StringVar(&subject, "subject", "", "subject: quant|reasoning|english|gk")
	study.Flags().StringVar(&topic, "topic", "", "topic (optional)")
	study.Flags().StringVar(&phase, "phase", "learning", "phase: learning|revision|mock-analysis")

	var mockType, mockSubject, source string
	mock := &cobra.Command{
		Use:   "mock --type <sectional|full> --subject <name>",
		Short: "Start a mock test session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(mockSubject) == "" {
				return fmt.Errorf("--subject is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.StartMock(context.Background(), mockType, mockSubject, source)
			if err != nil {
				return err
			}
			printStart(cmd, out)
			return nil
		},
	}
	mock.Flags().StringVar(&mockType, "type", "sectional", "mock type: sectional|full")
	mock.Flags().StringVar(&mockSubject, "subject", "", "subject: quant|reasoning|english|gk")
	mock.Flags().StringVar(&source, "source", "", "mock series or paper source (optional)")

	start.AddCommand(study, mock)
	return start
}

func printStart(cmd *cobra.Command, out sessiondto.StartOutput) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s session started: %s at=%s minimum=%dmin\n",
		out.Kind, out.SessionID, out.StartedAt.Format("15:04:05"), out.MinimumMinutes)
	if out.AuditRequired {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "audit drawn: photo evidence required before finishing")
	}
}

func newEvidenceCmd(dataPath *string) *cobra.Command {
	evidence := &cobra.Command{Use: "evidence", Short: "Attach evidence to the active session"}

	photo := &cobra.Command{
		Use:   "photo <path>",
		Short: "Attach a photo (study) or screenshot (mock) from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.AttachPhoto(context.Background(), blob)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s evidence attached: image=%s session=%s\n", out.Kind, out.ImageID, out.SessionID)
			return nil
		},
	}

	affirm := &cobra.Command{
		Use:   "affirm <text>",
		Short: "Attach a written affirmation (study only, 3 per week, min 50 chars)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.AttachAffirmation(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "affirmation attached: session=%s (gold will be halved)\n", out.SessionID)
			return nil
		},
	}

	evidence.AddCommand(photo, affirm)
	return evidence
}

func newFinishCmd(dataPath *string) *cobra.Command {
	finish := &cobra.Command{Use: "finish", Short: "Finalize the active session"}

	var notes, difficulty, mistakes, confidence string
	var revisionNeeded bool
	study := &cobra.Command{
		Use:   "study --notes <text> --confidence <level>",
		Short: "Finalize a study session with the reflection form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.FinalizeStudy(context.Background(), sessiondto.FinalizeStudyInput{
				Notes:          notes,
				Difficulty:     difficulty,
				Mistakes:       mistakes,
				RevisionNeeded: revisionNeeded,
				Confidence:     confidence,
			})
			if err != nil {
				return err
			}
			printFinalize(cmd, out)
			return nil
		},
	}
	study.Flags().StringVar(&notes, "notes", "", "what you learned (min 30 chars)")
	study.Flags().StringVar(&difficulty, "difficulty", "", "what was hard (optional)")
	study.Flags().StringVar(&mistakes, "mistakes", "", "mistakes made (optional)")
	study.Flags().BoolVar(&revisionNeeded, "revision-needed", false, "flag topic for revision")
	study.Flags().StringVar(&confidence, "confidence", "", "confidence: very-weak|weak|moderate|strong")

	var score, total, correct int
	var analysis string
	mock := &cobra.Command{
		Use:   "mock --score <n> --total <n> --correct <n>",
		Short: "Finalize a mock test with its results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.FinalizeMock(context.Background(), sessiondto.FinalizeMockInput{
				Score:          score,
				TotalQuestions: total,
				Correct:        correct,
				Analysis:       analysis,
			})
			if err != nil {
				return err
			}
			printFinalize(cmd, out)
			if out.Protection != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "protection granted: %s for 24h\n", out.Protection)
			}
			return nil
		},
	}
	mock.Flags().IntVar(&score, "score", 0, "marks scored")
	mock.Flags().IntVar(&total, "total", 0, "total questions")
	mock.Flags().IntVar(&correct, "correct", 0, "questions answered correctly")
	mock.Flags().StringVar(&analysis, "analysis", "", "mistake analysis (optional)")

	finish.AddCommand(study, mock)
	return finish
}

func printFinalize(cmd *cobra.Command, out sessiondto.FinalizeOutput) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session %s done: %dmin +%dxp +%dgold level=%d rank=%s\n",
		out.SessionID, out.DurationMin, out.XPEarned, out.GoldEarned, out.Level, out.Rank)
	if out.QuestCompleted {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "daily quest complete: +%dxp\n", out.QuestXP)
	}
}

func newCancelCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "Abandon the active session (counts as a failure)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Cancel(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session %s abandoned: -%dxp failure streak=%d\n", out.SessionID, out.XPLost, out.FailureStreak)
			return nil
		},
	}
}

func newActiveCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Active(context.Background())
			if err != nil {
				return err
			}
			if out.Kind == "mock" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s mock on %s", out.MockType, out.Subject)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "study %s", out.Subject)
				if out.Topic != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " / %s", out.Topic)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), " (%s)", out.Phase)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nrunning %dmin, minimum %dmin to count\n", out.DurationMin, out.MinimumMinutes)
			if out.EvidenceKind != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "evidence: %s\n", out.EvidenceKind)
			} else if out.AuditRequired {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "evidence: photo required (audit)")
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "evidence: none yet")
			}
			return nil
		},
	}
}

func newTimerCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "timer",
		Short: "Watch the active session in a live full-screen timer",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTimer(app)
		},
	}
}

func newStatusCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show level, gold, streaks and today's quest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ProgressionCLI.Status(context.Background())
			if err != nil {
				return err
			}
			if !out.AwakeningDone {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "not awakened yet, run `ascend awaken` to begin")
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "level %d (rank %s)  xp %d/%d  gold %d\n", out.Level, out.Rank, out.XP, out.XPRequired, out.Gold)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "weekly xp %d/%d  rollover %d/%d\n", out.WeeklyXP, out.WeeklyCap, out.WeeklyRollover, out.RolloverCap)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "study streak %d  failure streak %d\n", out.StudyStreak, out.FailureStreak)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatProtection(out.Protection))
			if out.GraceRemaining > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "grace days left this month: %d\n", out.GraceRemaining)
			}
			if out.Quest != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatQuest(*out.Quest))
			}
			printExportReminder(cmd, app)
			return nil
		},
	}
}

func printExportReminder(cmd *cobra.Command, app *bootstrap.App) {
	status, err := app.MaintenanceCLI.ExportStatus(context.Background())
	if err != nil || !status.Due {
		return
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "backup reminder: no export in 14+ days, run `ascend export done` after backing up")
}

func formatProtection(p progressiondto.ProtectionOutput) string {
	if !p.Active {
		return "protection: none"
	}
	return fmt.Sprintf("protection: %s until %s", p.Kind, p.ExpiresAt.Format("2006-01-02 15:04"))
}

func formatQuest(q progressiondto.QuestOutput) string {
	state := "open"
	if q.Completed {
		state = "done"
	}
	return fmt.Sprintf("quest: %s / %s worth %dxp (%s)", q.Subject, q.Phase, q.XP, state)
}

func newReportCmd(dataPath *string) *cobra.Command {
	var historyLines int
	report := &cobra.Command{
		Use:   "report",
		Short: "Full progress report with skills, readiness and history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ProgressionCLI.Report(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "report generated %s, day %d of the journey (started %s)\n",
				out.GeneratedAt.Format("2006-01-02 15:04"), out.DaysSinceStart, out.StartDate.Format("2006-01-02"))
			_, _ = fmt.Fprintf(w, "level %d (rank %s)  xp %d/%d  gold %d\n", out.Level, out.Rank, out.XP, out.XPRequired, out.Gold)
			_, _ = fmt.Fprintf(w, "weekly xp %d/%d  rollover %d\n", out.WeeklyXP, out.WeeklyCap, out.WeeklyRollover)
			_, _ = fmt.Fprintf(w, "study streak %d  failure streak %d  %s\n", out.StudyStreak, out.FailureStreak, formatProtection(out.Protection))
			_, _ = fmt.Fprintf(w, "totals: %d sessions, %d mocks, %.1f study hours\n", out.TotalSessions, out.TotalMocks, out.TotalStudyHours)
			_, _ = fmt.Fprintln(w, "skills:")
			for _, subject := range []string{"quant", "reasoning", "english", "gk"} {
				_, _ = fmt.Fprintf(w, "  %-10s %dxp\n", subject, out.Skills[subject])
			}
			_, _ = fmt.Fprintln(w, formatReadiness(out.Readiness))
			if len(out.History) == 0 {
				return nil
			}
			_, _ = fmt.Fprintln(w, "recent sessions:")
			for i, entry := range out.History {
				if historyLines > 0 && i >= historyLines {
					break
				}
				label := entry.Subject
				if entry.Kind == "mock" {
					label = entry.MockType + " mock " + entry.Subject
				} else if entry.Topic != "" {
					label += " / " + entry.Topic
				}
				_, _ = fmt.Fprintf(w, "  %s  %-30s %3dmin +%dxp +%dgold\n",
					entry.CompletedAt.Format("2006-01-02"), label, entry.DurationMin, entry.XPEarned, entry.GoldEarned)
			}
			return nil
		},
	}
	report.Flags().IntVar(&historyLines, "history", 10, "history lines to print (0 for all)")
	return report
}

func formatReadiness(r progressiondto.ReadinessOutput) string {
	if !r.Show {
		return "readiness: hidden (" + r.Reason + ")"
	}
	return fmt.Sprintf("readiness: %d%% (likely %d-%d%%)", r.Percentage, r.RangeLow, r.RangeHigh)
}

func newHistoryCmd(dataPath *string) *cobra.Command {
	var days int
	history := &cobra.Command{
		Use:   "history",
		Short: "List finalized sessions from the reporting index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			entries, err := app.ProgressionCLI.History(context.Background(), days)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions in window")
				return nil
			}
			for _, entry := range entries {
				label := entry.Subject
				if entry.Kind == "mock" {
					label = entry.MockType + " mock " + entry.Subject
				} else if entry.Topic != "" {
					label += " / " + entry.Topic
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %-30s %3dmin +%dxp +%dgold\n",
					entry.CompletedAt.Format("2006-01-02 15:04"), label, entry.DurationMin, entry.XPEarned, entry.GoldEarned)
			}
			return nil
		},
	}
	history.Flags().IntVar(&days, "days", 30, "trailing window in days")
	return history
}

func newReindexCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite session index from the profile snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			count, err := app.ProgressionCLI.Reindex(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reindexed %d sessions\n", count)
			return nil
		},
	}
}

func newMaintainCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "maintain",
		Short: "Run daily maintenance (decay, week roll, quest)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// loadApp already ran maintenance, a second run reports idempotence.
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.MaintenanceCLI.RunDaily(context.Background())
			if err != nil {
				return err
			}
			if out.AlreadyRan {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "maintenance already settled for today")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "maintenance done: decay=%d grace=%t week-rolled=%t quest-rolled=%t\n",
				out.DecayApplied, out.GraceUsed, out.WeekRolled, out.QuestRolled)
			return nil
		},
	}
}

func newQuestCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "quest",
		Short: "Show today's daily quest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.QuestCLI.Current(context.Background())
			if err != nil {
				return err
			}
			state := "open"
			if out.Completed {
				state = "done"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "quest for %s: study %s in %s phase, +%dxp (%s)\n",
				out.Date, out.Subject, out.Phase, out.XP, state)
			return nil
		},
	}
}

func newReadinessCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "readiness",
		Short: "Estimate exam readiness",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ReadinessCLI.Calculate(context.Background())
			if err != nil {
				return err
			}
			if !out.Show {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "readiness hidden: %s\n", out.Reason)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "readiness %d%% (likely %d-%d%%), base %d with %+d from habits\n",
				out.Percentage, out.RangeLow, out.RangeHigh, out.Base, out.Modifiers)
			return nil
		},
	}
}

func newRewardsCmd(dataPath *string) *cobra.Command {
	rewards := &cobra.Command{Use: "rewards", Short: "Spend gold on rewards"}

	rewards.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the reward catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			list, err := app.RewardCLI.List(context.Background())
			if err != nil {
				return err
			}
			for _, r := range list {
				marker := " "
				if r.Affordable {
					marker = "*"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %-10s %3d gold  %s\n", marker, r.Name, r.Cost, r.DisplayName)
			}
			return nil
		},
	})

	rewards.AddCommand(&cobra.Command{
		Use:   "claim <name>",
		Short: "Claim a reward by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.RewardCLI.Claim(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "claimed %s for %d gold, %d gold left\n", out.Name, out.Cost, out.GoldRemaining)
			return nil
		},
	})

	rewards.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "Show claimed rewards, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			history, err := app.RewardCLI.History(context.Background())
			if err != nil {
				return err
			}
			if len(history) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no rewards claimed yet")
				return nil
			}
			for _, claim := range history {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %-10s %d gold\n", claim.ClaimedAt.Format("2006-01-02"), claim.Name, claim.Cost)
			}
			return nil
		},
	})

	return rewards
}

func newStorageCmd(dataPath *string) *cobra.Command {
	storage := &cobra.Command{Use: "storage", Short: "Evidence storage housekeeping"}

	storage.AddCommand(&cobra.Command{
		Use:   "usage",
		Short: "Show stored evidence count and size",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.StorageUsage(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d evidence blobs, %.1f MB\n", out.Count, float64(out.TotalBytes)/(1024*1024))
			return nil
		},
	})

	storage.AddCommand(&cobra.Command{
		Use:   "cleanup",
		Short: "Delete evidence older than 90 days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.StorageCleanup(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %d expired evidence blobs\n", out.Deleted)
			return nil
		},
	})

	return storage
}

func newExportCmd(dataPath *string) *cobra.Command {
	export := &cobra.Command{Use: "export", Short: "Backup reminder bookkeeping"}

	export.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show when the data directory was last backed up",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.MaintenanceCLI.ExportStatus(context.Background())
			if err != nil {
				return err
			}
			if out.LastExport.IsZero() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "never exported")
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "last export %s\n", out.LastExport.Format("2006-01-02"))
			}
			if out.Due {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "backup is due, copy the data directory somewhere safe")
			}
			return nil
		},
	})

	export.AddCommand(&cobra.Command{
		Use:   "done",
		Short: "Record that a backup was just taken",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.MaintenanceCLI.MarkExported(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "export recorded")
			return nil
		},
	})

	return export
}

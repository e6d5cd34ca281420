package usecase

import (
	"context"
	"errors"
	"fmt"

	progressiondomain "ascend/internal/modules/progression/domain"
	progressionout "ascend/internal/modules/progression/port/out"
	questdomain "ascend/internal/modules/quest/domain"
	"ascend/internal/modules/session/domain"
	sessiondto "ascend/internal/modules/session/dto"
	sessionin "ascend/internal/modules/session/port/in"
	sessionout "ascend/internal/modules/session/port/out"
	"ascend/internal/modules/session/service"
	"ascend/internal/platform/calendar"
	"ascend/internal/platform/clock"
	apperrors "ascend/internal/platform/errors"
)

type Interactor struct {
	svc      *service.SessionService
	clock    clock.Clock
	profiles progressionout.ProfileStore
	history  progressionout.HistoryProjector
	active   sessionout.ActiveSessionStore
	evidence sessionout.EvidenceStore
}

func NewInteractor(
	svc *service.SessionService,
	clock clock.Clock,
	profiles progressionout.ProfileStore,
	history progressionout.HistoryProjector,
	active sessionout.ActiveSessionStore,
	evidence sessionout.EvidenceStore,
) sessionin.Usecase {
	return &Interactor{
		svc:      svc,
		clock:    clock,
		profiles: profiles,
		history:  history,
		active:   active,
		evidence: evidence,
	}
}

func (i *Interactor) StartStudy(ctx context.Context, input sessiondto.StartStudyInput) (sessiondto.StartOutput, error) {
	if err := i.requireIdle(ctx); err != nil {
		return sessiondto.StartOutput{}, err
	}
	active, err := i.svc.StartStudy(ctx, progressiondomain.Subject(input.Subject), input.Topic, progressiondomain.Phase(input.Phase))
	if err != nil {
		return sessiondto.StartOutput{}, err
	}
	if err := i.active.SaveActive(ctx, active); err != nil {
		return sessiondto.StartOutput{}, err
	}
	return startOutput(active), nil
}

func (i *Interactor) StartMock(ctx context.Context, input sessiondto.StartMockInput) (sessiondto.StartOutput, error) {
	if err := i.requireIdle(ctx); err != nil {
		return sessiondto.StartOutput{}, err
	}
	active, err := i.svc.StartMock(ctx, progressiondomain.MockType(input.MockType), progressiondomain.Subject(input.Subject), input.Source)
	if err != nil {
		return sessiondto.StartOutput{}, err
	}
	if err := i.active.SaveActive(ctx, active); err != nil {
		return sessiondto.StartOutput{}, err
	}
	return startOutput(active), nil
}

// AttachPhoto stores the blob and records the opaque reference. A failing
// store leaves the active session untouched so the attach can be retried.
func (i *Interactor) AttachPhoto(ctx context.Context, blob []byte) (sessiondto.EvidenceOutput, error) {
	active, err := i.active.LoadActive(ctx)
	if err != nil {
		return sessiondto.EvidenceOutput{}, err
	}
	kind := progressiondomain.EvidencePhoto
	if active.Kind == progressiondomain.KindMock {
		kind = progressiondomain.EvidenceScreenshot
	}
	imageID, err := i.evidence.Put(ctx, blob, active.SessionID, string(kind))
	if err != nil {
		return sessiondto.EvidenceOutput{}, err
	}
	active.EvidenceKind = kind
	active.EvidenceRef = imageID
	if err := i.active.SaveActive(ctx, active); err != nil {
		return sessiondto.EvidenceOutput{}, err
	}
	return sessiondto.EvidenceOutput{SessionID: active.SessionID, Kind: string(kind), ImageID: imageID}, nil
}

func (i *Interactor) AttachAffirmation(ctx context.Context, text string) (sessiondto.EvidenceOutput, error) {
	active, err := i.active.LoadActive(ctx)
	if err != nil {
		return sessiondto.EvidenceOutput{}, err
	}
	if active.Kind != progressiondomain.KindStudy {
		return sessiondto.EvidenceOutput{}, fmt.Errorf("%w: affirmations apply to study sessions only", apperrors.ErrInvalidInput)
	}
	if active.AuditRequired {
		return sessiondto.EvidenceOutput{}, fmt.Errorf("%w: this session was selected for photo verification", apperrors.ErrEvidenceRequired)
	}
	if len(text) < progressiondomain.MinAffirmationChars {
		return sessiondto.EvidenceOutput{}, fmt.Errorf("%w: affirmation needs at least %d characters", apperrors.ErrInvalidInput, progressiondomain.MinAffirmationChars)
	}
	profile, err := i.loadProfile(ctx)
	if err != nil {
		return sessiondto.EvidenceOutput{}, err
	}
	if !profile.CanUseAffirmation(i.clock.Now()) {
		return sessiondto.EvidenceOutput{}, apperrors.ErrAffirmationLimit
	}
	// The week roll inside CanUseAffirmation may have reset the counter.
	if err := i.profiles.Save(ctx, profile); err != nil {
		return sessiondto.EvidenceOutput{}, err
	}

	active.EvidenceKind = progressiondomain.EvidenceAffirmation
	active.EvidenceRef = text
	if err := i.active.SaveActive(ctx, active); err != nil {
		return sessiondto.EvidenceOutput{}, err
	}
	return sessiondto.EvidenceOutput{SessionID: active.SessionID, Kind: string(progressiondomain.EvidenceAffirmation)}, nil
}

func (i *Interactor) FinalizeStudy(ctx context.Context, input sessiondto.FinalizeStudyInput) (sessiondto.FinalizeOutput, error) {
	active, err := i.active.LoadActive(ctx)
	if err != nil {
		return sessiondto.FinalizeOutput{}, err
	}
	if active.Kind != progressiondomain.KindStudy {
		return sessiondto.FinalizeOutput{}, fmt.Errorf("%w: active session is a mock", apperrors.ErrInvalidInput)
	}
	profile, err := i.loadProfile(ctx)
	if err != nil {
		return sessiondto.FinalizeOutput{}, err
	}
	now := i.clock.Now()
	duration := active.DurationMin(now)

	if duration < active.MinimumMinutes() {
		if err := i.failSession(ctx, &profile); err != nil {
			return sessiondto.FinalizeOutput{}, err
		}
		return sessiondto.FinalizeOutput{}, fmt.Errorf("%w: %d of %d minutes", apperrors.ErrMinimumTimeNotMet, duration, active.MinimumMinutes())
	}
	if !active.HasEvidence() {
		return sessiondto.FinalizeOutput{}, fmt.Errorf("%w: attach a photo or affirmation first", apperrors.ErrEvidenceRequired)
	}
	if len(input.Notes) < progressiondomain.MinNotesChars {
		return sessiondto.FinalizeOutput{}, fmt.Errorf("%w: notes need at least %d characters", apperrors.ErrInvalidInput, progressiondomain.MinNotesChars)
	}
	confidence := progressiondomain.Confidence(input.Confidence)
	if !confidence.Valid() {
		return sessiondto.FinalizeOutput{}, fmt.Errorf("%w: unknown confidence %q", apperrors.ErrInvalidInput, input.Confidence)
	}

	if active.EvidenceKind == progressiondomain.EvidenceAffirmation {
		profile.RollAffirmationWeek(now)
		profile.WeeklyAffirmations++
	}

	xp := progressiondomain.StudyXP(duration, active.Phase, profile.Level)
	profile.RollWeek(now)
	credited := profile.AddXP(xp)
	gold := progressiondomain.GoldFor(credited, active.EvidenceKind)
	profile.Gold += gold

	profile.TotalStudyMinutes += duration
	profile.TotalSessions++
	profile.AddSkillXP(active.Subject, credited)

	if profile.LastStudyDate != calendar.DateKey(now) {
		profile.Habits.DailyStudy++
		if active.Phase == progressiondomain.PhaseRevision {
			profile.Habits.DailyRevision++
		}
	}
	profile.RecordStudyDay(now)
	profile.ClearFailureRun()

	entry := progressiondomain.HistoryEntry{
		SessionID:      active.SessionID,
		Kind:           progressiondomain.KindStudy,
		Subject:        active.Subject,
		Topic:          active.Topic,
		Phase:          active.Phase,
		DurationMin:    duration,
		EvidenceKind:   active.EvidenceKind,
		EvidenceRef:    active.EvidenceRef,
		Notes:          input.Notes,
		Difficulty:     input.Difficulty,
		Mistakes:       input.Mistakes,
		RevisionNeeded: input.RevisionNeeded,
		Confidence:     confidence,
		XPEarned:       credited,
		GoldEarned:     gold,
		CompletedAt:    now,
	}
	profile.AppendHistory(entry)
	questXP, questDone := questdomain.Complete(&profile, entry, now)

	if err := i.profiles.Save(ctx, profile); err != nil {
		return sessiondto.FinalizeOutput{}, err
	}
	if err := i.history.Record(ctx, entry); err != nil {
		return sessiondto.FinalizeOutput{}, err
	}
	if err := i.active.ClearActive(ctx); err != nil {
		return sessiondto.FinalizeOutput{}, err
	}

	return sessiondto.FinalizeOutput{
		SessionID:      active.SessionID,
		DurationMin:    duration,
		XPEarned:       credited,
		GoldEarned:     gold,
		Level:          profile.Level,
		Rank:           string(profile.Rank()),
		QuestCompleted: questDone,
		QuestXP:        questXP,
	}, nil
}

func (i *Interactor) FinalizeMock(ctx context.Context, input sessiondto.FinalizeMockInput) (sessiondto.FinalizeOutput, error) {
	active, err := i.active.LoadActive(ctx)
	if err != nil {
		return sessiondto.FinalizeOutput{}, err
	}
	if active.Kind != progressiondomain.KindMock {
		return sessiondto.FinalizeOutput{}, fmt.Errorf("%w: active session is not a mock", apperrors.ErrInvalidInput)
	}
	profile, err := i.loadProfile(ctx)
	if err != nil {
		return sessiondto.FinalizeOutput{}, err
	}
	now := i.clock.Now()
	duration := active.DurationMin(now)

	if duration < active.MinimumMinutes() {
		if err := i.failSession(ctx, &profile); err != nil {
			return sessiondto.FinalizeOutput{}, err
		}
		return sessiondto.FinalizeOutput{}, fmt.Errorf("%w: %d of %d minutes", apperrors.ErrMinimumTimeNotMet, duration, active.MinimumMinutes())
	}
	if !active.HasEvidence() {
		return sessiondto.FinalizeOutput{}, fmt.Errorf("%w: attach a score screenshot first", apperrors.ErrEvidenceRequired)
	}
	if input.TotalQuestions > 0 && input.Correct > input.TotalQuestions {
		return sessiondto.FinalizeOutput{}, fmt.Errorf("%w: correct answers exceed total questions", apperrors.ErrInvalidInput)
	}

	xp := progressiondomain.MockXP(active.MockType, profile.Level)
	profile.RollWeek(now)
	credited := profile.AddXP(xp)
	gold := progressiondomain.GoldFor(credited, active.EvidenceKind)
	profile.Gold += gold

	if profile.LastMockDate.IsZero() || calendar.WeekStart(profile.LastMockDate) != calendar.WeekStart(now) {
		profile.Habits.WeeklyMock++
	}
	profile.RecordMockSuccess(active.MockType, now)
	profile.TotalSessions++

	entry := progressiondomain.HistoryEntry{
		SessionID:      active.SessionID,
		Kind:           progressiondomain.KindMock,
		Subject:        active.Subject,
		Source:         active.Source,
		MockType:       active.MockType,
		DurationMin:    duration,
		EvidenceKind:   active.EvidenceKind,
		EvidenceRef:    active.EvidenceRef,
		Score:          input.Score,
		TotalQuestions: input.TotalQuestions,
		Correct:        input.Correct,
		Analysis:       input.Analysis,
		XPEarned:       credited,
		GoldEarned:     gold,
		CompletedAt:    now,
	}
	profile.AppendHistory(entry)

	if err := i.profiles.Save(ctx, profile); err != nil {
		return sessiondto.FinalizeOutput{}, err
	}
	if err := i.history.Record(ctx, entry); err != nil {
		return sessiondto.FinalizeOutput{}, err
	}
	if err := i.active.ClearActive(ctx); err != nil {
		return sessiondto.FinalizeOutput{}, err
	}

	return sessiondto.FinalizeOutput{
		SessionID:   active.SessionID,
		DurationMin: duration,
		XPEarned:    credited,
		GoldEarned:  gold,
		Level:       profile.Level,
		Rank:        string(profile.Rank()),
		Protection:  string(profile.Protection.Kind),
	}, nil
}

// Cancel abandons the active session. Abandonment is a failure, same as
// finishing under the minimum.
func (i *Interactor) Cancel(ctx context.Context) (sessiondto.CancelOutput, error) {
	active, err := i.active.LoadActive(ctx)
	if err != nil {
		return sessiondto.CancelOutput{}, err
	}
	profile, err := i.loadProfile(ctx)
	if err != nil {
		return sessiondto.CancelOutput{}, err
	}
	penalty := profile.RegisterFailure()
	if err := i.profiles.Save(ctx, profile); err != nil {
		return sessiondto.CancelOutput{}, err
	}
	if err := i.active.ClearActive(ctx); err != nil {
		return sessiondto.CancelOutput{}, err
	}
	return sessiondto.CancelOutput{
		SessionID:     active.SessionID,
		XPLost:        penalty.XPLoss,
		FailureStreak: profile.FailureStreak,
	}, nil
}

func (i *Interactor) Active(ctx context.Context) (sessiondto.ActiveOutput, error) {
	active, err := i.active.LoadActive(ctx)
	if err != nil {
		return sessiondto.ActiveOutput{}, err
	}
	now := i.clock.Now()
	return sessiondto.ActiveOutput{
		SessionID:      active.SessionID,
		Kind:           string(active.Kind),
		Subject:        string(active.Subject),
		Topic:          active.Topic,
		Source:         active.Source,
		Phase:          string(active.Phase),
		MockType:       string(active.MockType),
		StartedAt:      active.StartedAt,
		ElapsedSeconds: active.ElapsedSeconds(now),
		DurationMin:    active.DurationMin(now),
		MinimumMinutes: active.MinimumMinutes(),
		EvidenceKind:   string(active.EvidenceKind),
		AuditRequired:  active.AuditRequired,
	}, nil
}

func (i *Interactor) StorageUsage(ctx context.Context) (sessiondto.UsageOutput, error) {
	usage, err := i.evidence.Usage(ctx)
	if err != nil {
		return sessiondto.UsageOutput{}, err
	}
	return sessiondto.UsageOutput{Count: usage.Count, TotalBytes: usage.TotalBytes}, nil
}

func (i *Interactor) StorageCleanup(ctx context.Context) (sessiondto.CleanupOutput, error) {
	cutoff := i.clock.Now().Add(-progressiondomain.EvidenceRetention)
	deleted, err := i.evidence.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return sessiondto.CleanupOutput{}, err
	}
	return sessiondto.CleanupOutput{Deleted: deleted}, nil
}

func (i *Interactor) requireIdle(ctx context.Context) error {
	_, err := i.active.LoadActive(ctx)
	if err == nil {
		return apperrors.ErrActiveSessionExists
	}
	if !errors.Is(err, apperrors.ErrNoActiveSession) {
		return err
	}
	return nil
}

func (i *Interactor) loadProfile(ctx context.Context) (progressiondomain.Profile, error) {
	profile, err := i.profiles.Load(ctx)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return progressiondomain.Profile{}, err
	}
	return progressiondomain.NewProfile(i.clock.Now()), nil
}

// failSession books a failure penalty and discards the active session.
func (i *Interactor) failSession(ctx context.Context, profile *progressiondomain.Profile) error {
	profile.RegisterFailure()
	if err := i.profiles.Save(ctx, *profile); err != nil {
		return err
	}
	return i.active.ClearActive(ctx)
}

func startOutput(active domain.ActiveSession) sessiondto.StartOutput {
	return sessiondto.StartOutput{
		SessionID:      active.SessionID,
		Kind:           string(active.Kind),
		StartedAt:      active.StartedAt,
		MinimumMinutes: active.MinimumMinutes(),
		AuditRequired:  active.AuditRequired,
	}
}

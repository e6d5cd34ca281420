package service

import (
	"context"
	"fmt"

	progressiondomain "ascend/internal/modules/progression/domain"
	"ascend/internal/modules/session/domain"
	"ascend/internal/platform/clock"
	apperrors "ascend/internal/platform/errors"
	"ascend/internal/platform/id"
	"ascend/internal/platform/rng"
)

// SessionService constructs sessions. The evidence audit is drawn once here
// so the verdict is fixed for the session's whole life.
type SessionService struct {
	clock clock.Clock
	idGen id.Generator
	rng   rng.Source
}

func NewSessionService(clock clock.Clock, idGen id.Generator, source rng.Source) *SessionService {
	return &SessionService{clock: clock, idGen: idGen, rng: source}
}

func (s *SessionService) StartStudy(_ context.Context, subject progressiondomain.Subject, topic string, phase progressiondomain.Phase) (domain.ActiveSession, error) {
	if !subject.Valid() {
		return domain.ActiveSession{}, fmt.Errorf("%w: unknown subject %q", apperrors.ErrInvalidInput, subject)
	}
	if !phase.Valid() {
		return domain.ActiveSession{}, fmt.Errorf("%w: unknown phase %q", apperrors.ErrInvalidInput, phase)
	}
	return domain.ActiveSession{
		SessionID:     s.idGen.New(),
		Kind:          progressiondomain.KindStudy,
		Subject:       subject,
		Topic:         topic,
		Phase:         phase,
		StartedAt:     s.clock.Now(),
		AuditRequired: s.rng.Float64() < progressiondomain.RandomEvidenceChance,
	}, nil
}

func (s *SessionService) StartMock(_ context.Context, mockType progressiondomain.MockType, subject progressiondomain.Subject, source string) (domain.ActiveSession, error) {
	if !mockType.Valid() {
		return domain.ActiveSession{}, fmt.Errorf("%w: unknown mock type %q", apperrors.ErrInvalidInput, mockType)
	}
	if !subject.Valid() {
		return domain.ActiveSession{}, fmt.Errorf("%w: unknown subject %q", apperrors.ErrInvalidInput, subject)
	}
	return domain.ActiveSession{
		SessionID: s.idGen.New(),
		Kind:      progressiondomain.KindMock,
		MockType:  mockType,
		Subject:   subject,
		Source:    source,
		StartedAt: s.clock.Now(),
	}, nil
}

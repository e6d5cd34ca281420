package out_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	adapterout "ascend/internal/modules/progression/adapter/out"
	"ascend/internal/modules/progression/domain"
	apperrors "ascend/internal/platform/errors"
)

func TestFileProfileStoreMissingFile(t *testing.T) {
	t.Parallel()
	store := adapterout.NewFileProfileStore(filepath.Join(t.TempDir(), "profile.json"))
	_, err := store.Load(context.Background())
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileProfileStoreRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "data", "profile.json")
	store := adapterout.NewFileProfileStore(path)
	ctx := context.Background()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	profile := domain.NewProfile(now)
	profile.Level = 6
	profile.XP = 420
	profile.Gold = 37
	profile.WeeklyXP = 900
	profile.WeeklyRollover = 40
	profile.StudyStreak = 12
	profile.GrantProtection(domain.ProtectionFull, now)
	profile.Skills[domain.SubjectQuant] = 1500
	profile.DailyQuest = &domain.Quest{Date: "2026-03-02", Subject: domain.SubjectEnglish, Phase: domain.PhaseRevision, XP: 80}
	profile.AppendHistory(domain.HistoryEntry{
		SessionID:   "a1b2",
		Kind:        domain.KindStudy,
		Subject:     domain.SubjectQuant,
		Topic:       "percentages",
		Phase:       domain.PhaseLearning,
		DurationMin: 45,
		XPEarned:    15,
		GoldEarned:  1,
		CompletedAt: now,
	})
	profile.AppendHistory(domain.HistoryEntry{
		SessionID:   "c3d4",
		Kind:        domain.KindMock,
		Subject:     domain.SubjectQuant,
		MockType:    domain.MockSectional,
		DurationMin: 62,
		XPEarned:    37,
		GoldEarned:  3,
		CompletedAt: now.Add(3 * time.Hour),
	})

	if err := store.Save(ctx, profile); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Level != 6 || loaded.XP != 420 || loaded.Gold != 37 {
		t.Fatalf("core fields lost: %+v", loaded)
	}
	if loaded.Skills[domain.SubjectQuant] != 1500 {
		t.Fatalf("skills lost: %v", loaded.Skills)
	}
	if !loaded.Protection.Active || loaded.Protection.Kind != domain.ProtectionFull {
		t.Fatalf("protection lost: %+v", loaded.Protection)
	}
	if loaded.DailyQuest == nil || loaded.DailyQuest.Subject != domain.SubjectEnglish {
		t.Fatalf("quest lost: %+v", loaded.DailyQuest)
	}
	if len(loaded.SessionHistory) != 2 {
		t.Fatalf("history length = %d, want 2", len(loaded.SessionHistory))
	}
	// Newest first.
	if loaded.SessionHistory[0].SessionID != "c3d4" || loaded.SessionHistory[1].SessionID != "a1b2" {
		t.Fatalf("history order broken: %s, %s", loaded.SessionHistory[0].SessionID, loaded.SessionHistory[1].SessionID)
	}
	if !loaded.SessionHistory[0].CompletedAt.Equal(now.Add(3 * time.Hour)) {
		t.Fatalf("timestamp drift: %v", loaded.SessionHistory[0].CompletedAt)
	}

	// Second save overwrites in place.
	loaded.Gold = 0
	if err := store.Save(ctx, loaded); err != nil {
		t.Fatalf("resave: %v", err)
	}
	again, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.Gold != 0 {
		t.Fatalf("overwrite failed, gold = %d", again.Gold)
	}
}

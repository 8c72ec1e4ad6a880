package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/memora-app/memora-api/internal/achievements"
	"github.com/memora-app/memora-api/internal/models"
)

type AchievementService struct {
	store AchievementStore
}

func NewAchievementService(store AchievementStore) *AchievementService {
	return &AchievementService{store: store}
}

// Award persists an achievement of type t for the user. It returns the new
// record and true, or nil and false when the user already held it.
func (s *AchievementService) Award(ctx context.Context, userID string, t achievements.Type) (*models.Achievement, bool, error) {
	def, ok := achievements.Lookup(t)
	if !ok {
		return nil, false, fmt.Errorf("unknown achievement type %q", t)
	}

	a := &models.Achievement{
		UserID:          userID,
		AchievementType: string(def.Type),
		Title:           def.Title,
		Description:     def.Description,
		Icon:            def.Icon,
		Points:          def.Points,
		UnlockedAt:      time.Now().UTC(),
	}
	created, err := s.store.CreateIfAbsent(ctx, a)
	if err != nil {
		return nil, false, fmt.Errorf("failed to award %s: %w", t, err)
	}
	if !created {
		return nil, false, nil
	}
	return a, true, nil
}

// AwardAll awards every type and returns the ones actually written. A
// failure on one type does not stop the others.
func (s *AchievementService) AwardAll(ctx context.Context, userID string, types []achievements.Type) ([]models.Achievement, error) {
	awarded := []models.Achievement{}
	var errs []error
	for _, t := range types {
		a, created, err := s.Award(ctx, userID, t)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if created {
			awarded = append(awarded, *a)
		}
	}
	return awarded, errors.Join(errs...)
}

// Unlocked returns the set of types the user holds.
func (s *AchievementService) Unlocked(ctx context.Context, userID string) (achievements.Unlocked, error) {
	types, err := s.store.Types(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load unlocked achievements: %w", err)
	}
	return achievements.NewUnlocked(types), nil
}

// List returns the user's achievements, newest first.
func (s *AchievementService) List(ctx context.Context, userID string) ([]models.Achievement, error) {
	list, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	return list, nil
}

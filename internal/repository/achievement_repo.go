package repository

import (
	"context"

	"github.com/memora-app/memora-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AchievementTotals aggregates a user's achievements. Zero when none exist.
type AchievementTotals struct {
	Count       int64
	TotalPoints int64
}

// LeaderboardRow is one user's aggregate before ranking.
type LeaderboardRow struct {
	UserID            string
	Points            int64
	AchievementsCount int64
	TotalStudyTime    int64
}

// leaderboardQuery groups over every user that owns a deck, a session or an
// achievement, so active users without achievements still rank.
const leaderboardQuery = `
SELECT u.user_id AS user_id,
       COALESCE(a.points, 0) AS points,
       COALESCE(a.achievements_count, 0) AS achievements_count,
       COALESCE(s.total_study_time, 0) AS total_study_time
FROM (
    SELECT user_id FROM decks
    UNION
    SELECT user_id FROM study_sessions
    UNION
    SELECT user_id FROM achievements
) u
LEFT JOIN (
    SELECT user_id, SUM(points) AS points, COUNT(*) AS achievements_count
    FROM achievements GROUP BY user_id
) a ON a.user_id = u.user_id
LEFT JOIN (
    SELECT user_id, SUM(duration) AS total_study_time
    FROM study_sessions GROUP BY user_id
) s ON s.user_id = u.user_id
ORDER BY points DESC, achievements_count DESC, u.user_id ASC
LIMIT ?`

type AchievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// ListByUser returns the user's achievements, newest first.
func (r *AchievementRepository) ListByUser(ctx context.Context, userID string) ([]models.Achievement, error) {
	list := []models.Achievement{}
	err := r.db.WithContext(ctx).Scopes(ForUser(userID)).
		Order("unlocked_at DESC").
		Find(&list).Error
	return list, err
}

// Types returns the achievement types the user already holds.
func (r *AchievementRepository) Types(ctx context.Context, userID string) ([]string, error) {
	var types []string
	err := r.db.WithContext(ctx).Model(&models.Achievement{}).
		Scopes(ForUser(userID)).
		Pluck("achievement_type", &types).Error
	return types, err
}

// CreateIfAbsent inserts the achievement unless the (user_id,
// achievement_type) pair already exists. It reports whether a row was
// written; a conflict is not an error.
func (r *AchievementRepository) CreateIfAbsent(ctx context.Context, a *models.Achievement) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_type"}},
			DoNothing: true,
		}).
		Create(a)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *AchievementRepository) Totals(ctx context.Context, userID string) (AchievementTotals, error) {
	var totals AchievementTotals
	err := r.db.WithContext(ctx).Model(&models.Achievement{}).
		Select("COUNT(*) AS count, COALESCE(SUM(points), 0) AS total_points").
		Scopes(ForUser(userID)).
		Scan(&totals).Error
	return totals, err
}

// Leaderboard returns at most limit rows ordered by points, then
// achievement count, then user id.
func (r *AchievementRepository) Leaderboard(ctx context.Context, limit int) ([]LeaderboardRow, error) {
	rows := []LeaderboardRow{}
	err := r.db.WithContext(ctx).Raw(leaderboardQuery, limit).Scan(&rows).Error
	return rows, err
}

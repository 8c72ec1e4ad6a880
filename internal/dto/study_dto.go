package dto

import "github.com/memora-app/memora-api/internal/models"

type StudySessionRequest struct {
	DeckID       string `json:"deck_id"`
	CardsStudied int    `json:"cards_studied"`
	TotalCards   int    `json:"total_cards"`
	Duration     int    `json:"duration"`
	Completed    bool   `json:"completed"`
}

// StudySessionResponse is the created session plus whatever it unlocked.
type StudySessionResponse struct {
	models.StudySession
	NewAchievements []models.Achievement `json:"new_achievements"`
}

type UserStats struct {
	TotalStudyTime       int64 `json:"total_study_time"`
	TotalSessions        int64 `json:"total_sessions"`
	TotalCardsStudied    int64 `json:"total_cards_studied"`
	TotalDecks           int64 `json:"total_decks"`
	AchievementsUnlocked int64 `json:"achievements_unlocked"`
	TotalPoints          int64 `json:"total_points"`
}

type LeaderboardEntry struct {
	UserID            string `json:"user_id"`
	DisplayName       string `json:"display_name"`
	Points            int64  `json:"points"`
	AchievementsCount int64  `json:"achievements_count"`
	TotalStudyTime    int64  `json:"total_study_time"`
	Rank              int    `json:"rank"`
}

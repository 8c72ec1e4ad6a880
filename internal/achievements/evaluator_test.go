package achievements

import (
	"testing"
	"time"
)

func contains(types []Type, t Type) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}

func TestEvaluateSession(t *testing.T) {
	e := NewEvaluator(false)

	tests := []struct {
		name     string
		session  Session
		agg      Aggregates
		unlocked Unlocked
		want     []Type
		notWant  []Type
	}{
		{
			name:    "first session only",
			session: Session{CardsStudied: 3, TotalCards: 10, Duration: 5},
			agg:     Aggregates{TotalSessions: 1, TotalCardsStudied: 3, TotalMinutes: 5},
			want:    []Type{FirstSession},
			notWant: []Type{TenSessions, HundredCards, HourStudy, PerfectSession},
		},
		{
			name:     "tenth session unlocks ten sessions",
			session:  Session{CardsStudied: 1, TotalCards: 5, Duration: 1},
			agg:      Aggregates{TotalSessions: 10, TotalCardsStudied: 10, TotalMinutes: 10},
			unlocked: Unlocked{FirstSession: true},
			want:     []Type{TenSessions},
			notWant:  []Type{FirstSession},
		},
		{
			name:     "ninth session does not",
			session:  Session{CardsStudied: 1, TotalCards: 5, Duration: 1},
			agg:      Aggregates{TotalSessions: 9, TotalCardsStudied: 9, TotalMinutes: 9},
			unlocked: Unlocked{FirstSession: true},
			notWant:  []Type{TenSessions},
		},
		{
			name:     "crossing one hundred cards",
			session:  Session{CardsStudied: 10, TotalCards: 12, Duration: 3},
			agg:      Aggregates{TotalSessions: 4, TotalCardsStudied: 105, TotalMinutes: 20},
			unlocked: Unlocked{FirstSession: true},
			want:     []Type{HundredCards},
		},
		{
			name:     "hundred cards never re-awarded",
			session:  Session{CardsStudied: 10, TotalCards: 12, Duration: 3},
			agg:      Aggregates{TotalSessions: 5, TotalCardsStudied: 115, TotalMinutes: 23},
			unlocked: Unlocked{FirstSession: true, HundredCards: true},
			notWant:  []Type{HundredCards},
		},
		{
			name:     "hour of study",
			session:  Session{CardsStudied: 2, TotalCards: 4, Duration: 30},
			agg:      Aggregates{TotalSessions: 2, TotalCardsStudied: 4, TotalMinutes: 60},
			unlocked: Unlocked{FirstSession: true},
			want:     []Type{HourStudy},
		},
		{
			name:     "perfect session",
			session:  Session{CardsStudied: 20, TotalCards: 20, Duration: 5, Completed: true},
			agg:      Aggregates{TotalSessions: 2, TotalCardsStudied: 30, TotalMinutes: 10},
			unlocked: Unlocked{FirstSession: true},
			want:     []Type{PerfectSession},
		},
		{
			name:     "completed but not every card",
			session:  Session{CardsStudied: 15, TotalCards: 20, Duration: 5, Completed: true},
			agg:      Aggregates{TotalSessions: 2, TotalCardsStudied: 30, TotalMinutes: 10},
			unlocked: Unlocked{FirstSession: true},
			notWant:  []Type{PerfectSession},
		},
		{
			name:     "every card but not completed",
			session:  Session{CardsStudied: 20, TotalCards: 20, Duration: 5},
			agg:      Aggregates{TotalSessions: 2, TotalCardsStudied: 30, TotalMinutes: 10},
			unlocked: Unlocked{FirstSession: true},
			notWant:  []Type{PerfectSession},
		},
		{
			name:    "several at once",
			session: Session{CardsStudied: 120, TotalCards: 120, Duration: 90, Completed: true},
			agg:     Aggregates{TotalSessions: 1, TotalCardsStudied: 120, TotalMinutes: 90},
			want:    []Type{FirstSession, HundredCards, HourStudy, PerfectSession},
		},
		{
			name:    "extended rules disabled",
			session: Session{CardsStudied: 5, TotalCards: 10, Duration: 5},
			agg:     Aggregates{TotalSessions: 1, TotalCardsStudied: 5, TotalMinutes: 5, CurrentStreak: 7},
			notWant: []Type{FiveCards, StudyStreak3, StudyStreak7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.EvaluateSession(tt.session, tt.agg, tt.unlocked)
			for _, w := range tt.want {
				if !contains(got, w) {
					t.Errorf("EvaluateSession() = %v, missing %s", got, w)
				}
			}
			for _, nw := range tt.notWant {
				if contains(got, nw) {
					t.Errorf("EvaluateSession() = %v, unexpected %s", got, nw)
				}
			}
		})
	}
}

func TestEvaluateSessionExtended(t *testing.T) {
	e := NewEvaluator(true)

	got := e.EvaluateSession(
		Session{CardsStudied: 5, TotalCards: 10, Duration: 5},
		Aggregates{TotalSessions: 3, TotalCardsStudied: 7, TotalMinutes: 9, CurrentStreak: 3},
		Unlocked{FirstSession: true},
	)
	if !contains(got, FiveCards) || !contains(got, StudyStreak3) {
		t.Errorf("EvaluateSession() = %v, want five_cards and study_streak_3", got)
	}
	if contains(got, StudyStreak7) {
		t.Errorf("EvaluateSession() = %v, study_streak_7 needs 7 days", got)
	}
}

func TestEvaluateDeckCreated(t *testing.T) {
	e := NewEvaluator(false)

	if got := e.EvaluateDeckCreated(nil); len(got) != 1 || got[0] != FirstDeck {
		t.Errorf("EvaluateDeckCreated(nil) = %v, want [first_deck]", got)
	}
	if got := e.EvaluateDeckCreated(Unlocked{FirstDeck: true}); len(got) != 0 {
		t.Errorf("EvaluateDeckCreated(unlocked) = %v, want none", got)
	}
}

func TestNewUnlocked(t *testing.T) {
	u := NewUnlocked([]string{"first_deck", "hour_study"})
	if !u[FirstDeck] || !u[HourStudy] || u[TenSessions] {
		t.Errorf("NewUnlocked() = %v", u)
	}
}

func TestCatalogLookup(t *testing.T) {
	d, ok := Lookup(PerfectSession)
	if !ok || d.Points != 45 {
		t.Errorf("Lookup(perfect_session) = %+v, %v", d, ok)
	}
	if _, ok := Lookup(Type("nope")); ok {
		t.Error("Lookup(unknown) should fail")
	}
	if n := len(Catalog()); n != 9 {
		t.Errorf("len(Catalog()) = %d, want 9", n)
	}
}

func TestCurrentStreak(t *testing.T) {
	day := func(d int, h int) time.Time {
		return time.Date(2026, time.March, d, h, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		times []time.Time
		asOf  time.Time
		want  int
	}{
		{"no sessions", nil, day(10, 12), 0},
		{"single day", []time.Time{day(10, 9), day(10, 18)}, day(10, 20), 1},
		{"three consecutive days", []time.Time{day(8, 1), day(9, 23), day(10, 0)}, day(10, 1), 3},
		{"gap breaks streak", []time.Time{day(6, 1), day(7, 1), day(9, 1), day(10, 1)}, day(10, 2), 2},
		{"nothing on asOf day", []time.Time{day(8, 1), day(9, 1)}, day(10, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentStreak(tt.times, tt.asOf); got != tt.want {
				t.Errorf("CurrentStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

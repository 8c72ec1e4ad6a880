package achievements

// Type identifies an entry of the fixed achievement catalog.
type Type string

const (
	FirstDeck      Type = "first_deck"
	FirstSession   Type = "first_session"
	TenSessions    Type = "ten_sessions"
	HundredCards   Type = "hundred_cards"
	HourStudy      Type = "hour_study"
	PerfectSession Type = "perfect_session"

	// Extended variants, evaluated only when enabled.
	FiveCards    Type = "five_cards"
	StudyStreak3 Type = "study_streak_3"
	StudyStreak7 Type = "study_streak_7"
)

// Definition is the static presentation of an achievement type.
type Definition struct {
	Type        Type   `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Points      int    `json:"points"`
	Extended    bool   `json:"extended"`
}

var catalog = []Definition{
	{Type: FirstDeck, Title: "🎯 First Steps", Description: "Create your first deck", Icon: "🎯", Points: 10},
	{Type: FirstSession, Title: "🚀 Getting Started", Description: "Complete your first study session", Icon: "🚀", Points: 20},
	{Type: TenSessions, Title: "👨‍🎓 Dedicated Learner", Description: "Complete 10 study sessions", Icon: "👨‍🎓", Points: 30},
	{Type: HundredCards, Title: "💯 Century Club", Description: "Study 100 cards", Icon: "💯", Points: 40},
	{Type: HourStudy, Title: "⏰ Time Keeper", Description: "Study for 60 minutes total", Icon: "⏰", Points: 35},
	{Type: PerfectSession, Title: "🏆 Perfect Score", Description: "Complete a session with 100% accuracy", Icon: "🏆", Points: 45},
	{Type: FiveCards, Title: "✋ Warming Up", Description: "Study 5 cards", Icon: "✋", Points: 15, Extended: true},
	{Type: StudyStreak3, Title: "🔥 On a Roll", Description: "Study 3 days in a row", Icon: "🔥", Points: 25, Extended: true},
	{Type: StudyStreak7, Title: "⚡ Unstoppable", Description: "Study 7 days in a row", Icon: "⚡", Points: 50, Extended: true},
}

var byType = func() map[Type]Definition {
	m := make(map[Type]Definition, len(catalog))
	for _, d := range catalog {
		m[d.Type] = d
	}
	return m
}()

// Lookup returns the definition for t.
func Lookup(t Type) (Definition, bool) {
	d, ok := byType[t]
	return d, ok
}

// Catalog returns a copy of all definitions in catalog order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

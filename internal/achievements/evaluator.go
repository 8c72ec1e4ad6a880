package achievements

// Thresholds for the cumulative rules.
const (
	TenSessionsThreshold  = 10
	HundredCardsThreshold = 100
	HourStudyMinutes      = 60
	FiveCardsThreshold    = 5
)

// Session is the just-recorded study session as seen by the evaluator.
type Session struct {
	CardsStudied int
	TotalCards   int
	Duration     int
	Completed    bool
}

// Aggregates are computed over all of a user's sessions, including the
// one just recorded.
type Aggregates struct {
	TotalSessions     int64
	TotalCardsStudied int64
	TotalMinutes      int64
	CurrentStreak     int
}

// Unlocked is the set of types a user already holds.
type Unlocked map[Type]bool

// NewUnlocked builds an Unlocked set from stored type strings.
func NewUnlocked(types []string) Unlocked {
	u := make(Unlocked, len(types))
	for _, t := range types {
		u[Type(t)] = true
	}
	return u
}

// Evaluator decides which achievements become newly earned. It has no side
// effects; awarding is done by the caller.
type Evaluator struct {
	extended bool
}

func NewEvaluator(extended bool) *Evaluator {
	return &Evaluator{extended: extended}
}

type rule struct {
	t  Type
	ok func(s Session, a Aggregates) bool
}

var sessionRules = []rule{
	{FirstSession, func(Session, Aggregates) bool { return true }},
	{TenSessions, func(_ Session, a Aggregates) bool { return a.TotalSessions >= TenSessionsThreshold }},
	{HundredCards, func(_ Session, a Aggregates) bool { return a.TotalCardsStudied >= HundredCardsThreshold }},
	{HourStudy, func(_ Session, a Aggregates) bool { return a.TotalMinutes >= HourStudyMinutes }},
	{PerfectSession, func(s Session, _ Aggregates) bool { return s.Completed && s.CardsStudied == s.TotalCards }},
	{FiveCards, func(_ Session, a Aggregates) bool { return a.TotalCardsStudied >= FiveCardsThreshold }},
	{StudyStreak3, func(_ Session, a Aggregates) bool { return a.CurrentStreak >= 3 }},
	{StudyStreak7, func(_ Session, a Aggregates) bool { return a.CurrentStreak >= 7 }},
}

// EvaluateSession returns every type earned by recording s, skipping types
// already unlocked. Rules are independent; several can fire at once.
func (e *Evaluator) EvaluateSession(s Session, a Aggregates, unlocked Unlocked) []Type {
	var earned []Type
	for _, r := range sessionRules {
		if unlocked[r.t] || !e.enabled(r.t) {
			continue
		}
		if r.ok(s, a) {
			earned = append(earned, r.t)
		}
	}
	return earned
}

// EvaluateDeckCreated is run after a deck is created.
func (e *Evaluator) EvaluateDeckCreated(unlocked Unlocked) []Type {
	if unlocked[FirstDeck] {
		return nil
	}
	return []Type{FirstDeck}
}

func (e *Evaluator) enabled(t Type) bool {
	d, ok := Lookup(t)
	if !ok {
		return false
	}
	return !d.Extended || e.extended
}

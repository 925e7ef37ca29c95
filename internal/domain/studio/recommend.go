package studio

// Suggestion is the outcome of the recommendation table: a recommended studio,
// the set of studios the customer may pick (C→B→A order), and the rate for
// the recommended studio. Recommended is always a member of Allowed.
type Suggestion struct {
	Recommended Studio
	Allowed     []Studio
	Rate        int
	Unit        RateUnit
}

type rule struct {
	session     SessionType
	selector    Selector
	recommended Studio
	allowed     []Studio
}

// anySelector matches every selector for its session type.
const anySelector Selector = "*"

// recommendationTable is the full decision table. Every valid
// (session, selector) pair maps to exactly one rule; first match wins.
var recommendationTable = []rule{
	{SessionKaraoke, Attendees1to5, StudioC, []Studio{StudioC, StudioB, StudioA}},
	{SessionKaraoke, Attendees6to10, StudioB, []Studio{StudioB, StudioA}},
	{SessionKaraoke, Attendees11to30, StudioA, []Studio{StudioA}},

	{SessionLiveMusicians, Musicians1to2, StudioC, []Studio{StudioC, StudioB, StudioA}},
	{SessionLiveMusicians, Musicians3to5, StudioB, []Studio{StudioB, StudioA}},
	{SessionLiveMusicians, Musicians6to12, StudioA, []Studio{StudioA}},

	// fixed drum kit lives in A
	{SessionDrumPractice, anySelector, StudioA, []Studio{StudioA}},

	{SessionBand, EquipFullRig, StudioA, []Studio{StudioA}},
	{SessionBand, EquipDrumAmpsGtr, StudioB, []Studio{StudioB, StudioA}},
	{SessionBand, EquipDrumAmps, StudioC, []Studio{StudioC, StudioB, StudioA}},
	{SessionBand, EquipDrum, StudioC, []Studio{StudioC, StudioB, StudioA}},

	// recording chain is wired into A
	{SessionRecording, anySelector, StudioA, []Studio{StudioA}},

	{SessionMeetingsClasses, anySelector, StudioC, []Studio{StudioC, StudioB, StudioA}},
}

// DefaultSuggestion is returned while the customer's input is incomplete:
// smallest studio recommended, nothing ruled out yet.
func DefaultSuggestion() Suggestion {
	return Suggestion{
		Recommended: StudioC,
		Allowed:     All(),
		Rate:        defaultRate,
		Unit:        PerHour,
	}
}

// Recommend maps a session type and its selector to a suggestion. The table
// is deterministic and total: unknown combinations degrade to the default
// rather than failing.
func Recommend(session SessionType, selector Selector) Suggestion {
	for _, r := range recommendationTable {
		if r.session != session {
			continue
		}
		if r.selector != anySelector && r.selector != selector {
			continue
		}
		allowed := make([]Studio, len(r.allowed))
		copy(allowed, r.allowed)
		rate, unit := Rate(r.recommended, session, selector)
		return Suggestion{
			Recommended: r.recommended,
			Allowed:     allowed,
			Rate:        rate,
			Unit:        unit,
		}
	}
	return DefaultSuggestion()
}

// IsAllowed reports whether the customer may book st under the suggestion.
// Upgrading to a non-recommended but allowed studio is always permitted.
func (s Suggestion) IsAllowed(st Studio) bool {
	for _, a := range s.Allowed {
		if a == st {
			return true
		}
	}
	return false
}

// Repriced returns the suggestion's rate recomputed for an allowed upgrade
// studio using the same rate table.
func (s Suggestion) Repriced(st Studio, session SessionType, selector Selector) (int, RateUnit) {
	return Rate(st, session, selector)
}

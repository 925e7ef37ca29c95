package studio

type rateKey struct {
	studio   Studio
	session  SessionType
	selector Selector
}

// defaultRate is the last-resort fallback for combinations outside both the
// specific and the standard tables.
const defaultRate = 300

// standardRates is the per-studio fallback when no specific entry matches.
var standardRates = map[Studio]int{
	StudioC: 250,
	StudioB: 350,
	StudioA: 500,
}

// specificRates covers combinations priced away from the studio standard.
var specificRates = map[rateKey]int{
	{StudioC, SessionKaraoke, Attendees1to5}:   250,
	{StudioB, SessionKaraoke, Attendees6to10}:  350,
	{StudioA, SessionKaraoke, Attendees11to30}: 450,

	{StudioC, SessionLiveMusicians, Musicians1to2}:  280,
	{StudioB, SessionLiveMusicians, Musicians3to5}:  380,
	{StudioA, SessionLiveMusicians, Musicians6to12}: 550,

	{StudioA, SessionDrumPractice, anySelector}: 400,

	{StudioA, SessionBand, EquipFullRig}:     600,
	{StudioB, SessionBand, EquipDrumAmpsGtr}: 400,
	{StudioC, SessionBand, EquipDrumAmps}:    300,
	{StudioC, SessionBand, EquipDrum}:        280,

	// recording is priced per song, not per hour
	{StudioA, SessionRecording, RecordingVocal}: 500,
	{StudioA, SessionRecording, RecordingFull}:  800,

	{StudioC, SessionMeetingsClasses, anySelector}: 200,
	{StudioB, SessionMeetingsClasses, anySelector}: 300,
	{StudioA, SessionMeetingsClasses, anySelector}: 400,
}

// Rate looks up the price for (studio, session, selector): specific entry
// first, then the session-wide entry, then the per-studio standard, then the
// fixed default.
func Rate(st Studio, session SessionType, selector Selector) (int, RateUnit) {
	unit := PerHour
	if session == SessionRecording {
		unit = PerSong
	}

	if r, ok := specificRates[rateKey{st, session, selector}]; ok {
		return r, unit
	}
	if r, ok := specificRates[rateKey{st, session, anySelector}]; ok {
		return r, unit
	}
	if r, ok := standardRates[st]; ok {
		return r, unit
	}
	return defaultRate, unit
}

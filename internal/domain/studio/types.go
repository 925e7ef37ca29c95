package studio

// Studio is one of the three fixed rooms. A is the largest and priciest,
// C the smallest and cheapest.
type Studio string

const (
	StudioA Studio = "A"
	StudioB Studio = "B"
	StudioC Studio = "C"
)

func (s Studio) IsValid() bool {
	switch s {
	case StudioA, StudioB, StudioC:
		return true
	default:
		return false
	}
}

func (s Studio) String() string {
	return string(s)
}

// All lists studios in C→B→A order (ascending size/capacity), the order
// allowed sets are presented in.
func All() []Studio {
	return []Studio{StudioC, StudioB, StudioA}
}

type SessionType string

const (
	SessionKaraoke         SessionType = "karaoke"
	SessionLiveMusicians   SessionType = "live_musicians"
	SessionDrumPractice    SessionType = "drum_practice"
	SessionBand            SessionType = "band"
	SessionRecording       SessionType = "recording"
	SessionMeetingsClasses SessionType = "meetings_classes"
)

func (t SessionType) IsValid() bool {
	switch t {
	case SessionKaraoke, SessionLiveMusicians, SessionDrumPractice,
		SessionBand, SessionRecording, SessionMeetingsClasses:
		return true
	default:
		return false
	}
}

// SkipsParticipants reports whether the wizard goes straight from session to
// studio for this type (the recommendation needs no participant count).
func (t SessionType) SkipsParticipants() bool {
	return t == SessionDrumPractice || t == SessionMeetingsClasses
}

// RateUnit distinguishes hourly studio time from per-song recording work.
type RateUnit string

const (
	PerHour RateUnit = "per_hour"
	PerSong RateUnit = "per_song"
)

// Selector is the type-specific sub-choice: an attendee bucket, a musician
// bucket, an equipment set, or a recording mode. Well-known values are listed
// below; an unknown selector degrades to the safe default recommendation.
type Selector string

const (
	// Karaoke attendee buckets
	Attendees1to5   Selector = "1-5"
	Attendees6to10  Selector = "6-10"
	Attendees11to30 Selector = "11-30"

	// Live-with-musicians buckets
	Musicians1to2  Selector = "1-2"
	Musicians3to5  Selector = "3-5"
	Musicians6to12 Selector = "6-12"

	// Band equipment sets
	EquipDrum        Selector = "drum"
	EquipDrumAmps    Selector = "drum+amps"
	EquipDrumAmpsGtr Selector = "drum+amps+guitars"
	EquipFullRig     Selector = "drum+amps+guitars+keyboard"

	// Recording modes
	RecordingVocal Selector = "vocal"
	RecordingFull  Selector = "full_band"
)

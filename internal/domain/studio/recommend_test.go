//go:build unit

package studio_test

import (
	"testing"

	"studiobooking/internal/domain/studio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_DecisionTable(t *testing.T) {
	cases := []struct {
		name        string
		session     studio.SessionType
		selector    studio.Selector
		recommended studio.Studio
		allowed     []studio.Studio
		rate        int
	}{
		{
			name:        "karaoke 1-5 fits the smallest room",
			session:     studio.SessionKaraoke,
			selector:    studio.Attendees1to5,
			recommended: studio.StudioC,
			allowed:     []studio.Studio{studio.StudioC, studio.StudioB, studio.StudioA},
			rate:        250,
		},
		{
			name:        "karaoke 6-10 needs at least B",
			session:     studio.SessionKaraoke,
			selector:    studio.Attendees6to10,
			recommended: studio.StudioB,
			allowed:     []studio.Studio{studio.StudioB, studio.StudioA},
			rate:        350,
		},
		{
			name:        "karaoke 11-30 only fits A",
			session:     studio.SessionKaraoke,
			selector:    studio.Attendees11to30,
			recommended: studio.StudioA,
			allowed:     []studio.Studio{studio.StudioA},
			rate:        450,
		},
		{
			name:        "live 1-2 musicians",
			session:     studio.SessionLiveMusicians,
			selector:    studio.Musicians1to2,
			recommended: studio.StudioC,
			allowed:     []studio.Studio{studio.StudioC, studio.StudioB, studio.StudioA},
			rate:        280,
		},
		{
			name:        "live 6-12 musicians only fits A",
			session:     studio.SessionLiveMusicians,
			selector:    studio.Musicians6to12,
			recommended: studio.StudioA,
			allowed:     []studio.Studio{studio.StudioA},
			rate:        550,
		},
		{
			name:        "drum practice is pinned to A",
			session:     studio.SessionDrumPractice,
			selector:    "",
			recommended: studio.StudioA,
			allowed:     []studio.Studio{studio.StudioA},
			rate:        400,
		},
		{
			name:        "band with the full rig",
			session:     studio.SessionBand,
			selector:    studio.EquipFullRig,
			recommended: studio.StudioA,
			allowed:     []studio.Studio{studio.StudioA},
			rate:        600,
		},
		{
			name:        "band with drums and amps",
			session:     studio.SessionBand,
			selector:    studio.EquipDrumAmps,
			recommended: studio.StudioC,
			allowed:     []studio.Studio{studio.StudioC, studio.StudioB, studio.StudioA},
			rate:        300,
		},
		{
			name:        "recording is pinned to A",
			session:     studio.SessionRecording,
			selector:    studio.RecordingVocal,
			recommended: studio.StudioA,
			allowed:     []studio.Studio{studio.StudioA},
			rate:        500,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := studio.Recommend(tc.session, tc.selector)

			assert.Equal(t, tc.recommended, got.Recommended)
			assert.Equal(t, tc.allowed, got.Allowed)
			assert.Equal(t, tc.rate, got.Rate)
			assert.True(t, got.IsAllowed(got.Recommended), "recommended must be allowed")
		})
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	first := studio.Recommend(studio.SessionKaraoke, studio.Attendees1to5)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, studio.Recommend(studio.SessionKaraoke, studio.Attendees1to5))
	}
}

func TestRecommend_SafeDefault(t *testing.T) {
	cases := []struct {
		name     string
		session  studio.SessionType
		selector studio.Selector
	}{
		{"unknown session type", "ballet", "1-5"},
		{"unknown selector", studio.SessionKaraoke, "31-50"},
		{"empty input", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := studio.Recommend(tc.session, tc.selector)
			assert.Equal(t, studio.DefaultSuggestion(), got)
			assert.Equal(t, studio.StudioC, got.Recommended)
			assert.Equal(t, []studio.Studio{studio.StudioC, studio.StudioB, studio.StudioA}, got.Allowed)
		})
	}
}

func TestRate_Fallbacks(t *testing.T) {
	t.Run("specific entry wins", func(t *testing.T) {
		rate, unit := studio.Rate(studio.StudioA, studio.SessionBand, studio.EquipFullRig)
		assert.Equal(t, 600, rate)
		assert.Equal(t, studio.PerHour, unit)
	})

	t.Run("recording is per song", func(t *testing.T) {
		rate, unit := studio.Rate(studio.StudioA, studio.SessionRecording, studio.RecordingFull)
		assert.Equal(t, 800, rate)
		assert.Equal(t, studio.PerSong, unit)
	})

	t.Run("standard rate for unpriced combination", func(t *testing.T) {
		rate, unit := studio.Rate(studio.StudioB, studio.SessionBand, studio.EquipDrum)
		assert.Equal(t, 350, rate)
		assert.Equal(t, studio.PerHour, unit)
	})

	t.Run("fixed default for unknown studio", func(t *testing.T) {
		rate, _ := studio.Rate("D", studio.SessionKaraoke, studio.Attendees1to5)
		assert.Equal(t, 300, rate)
	})
}

func TestSuggestion_UpgradeRepricing(t *testing.T) {
	sug := studio.Recommend(studio.SessionKaraoke, studio.Attendees1to5)
	require.True(t, sug.IsAllowed(studio.StudioB))

	rate, unit := sug.Repriced(studio.StudioB, studio.SessionKaraoke, studio.Attendees1to5)
	assert.Equal(t, 350, rate) // studio B standard
	assert.Equal(t, studio.PerHour, unit)

	assert.False(t, studio.Recommend(studio.SessionKaraoke, studio.Attendees11to30).IsAllowed(studio.StudioC))
}

//go:build unit

package wizard_test

import (
	"testing"
	"time"

	"studiobooking/internal/domain/studio"
	"studiobooking/internal/domain/wizard"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// advanceTo walks the draft forward along Next, enforcing each target's
// guard, until it sits on the wanted step.
func advanceTo(t *testing.T, d *wizard.Draft, want wizard.Step) {
	t.Helper()
	for d.Step != want {
		next, ok := d.Next()
		require.True(t, ok, "no step follows %s", d.Step)
		require.NoError(t, d.CanEnter(next), "entering %s", next)
		d.Step = next
	}
}

func filledDraft(t *testing.T) *wizard.Draft {
	t.Helper()
	d := wizard.NewDraft("+821012345678", testNow)
	d.SessionType = studio.SessionKaraoke
	d.Selector = studio.Attendees1to5
	d.Studio = studio.StudioC
	d.Date = "2026-03-10"
	d.StartTime = "14:00"
	d.EndTime = "16:00"
	return d
}

func TestDraft_HappyPath(t *testing.T) {
	d := filledDraft(t)

	want := []wizard.Step{
		wizard.StepSession, wizard.StepParticipants, wizard.StepStudio,
		wizard.StepTime, wizard.StepReview, wizard.StepOTP,
	}
	for _, step := range want {
		got, ok := d.Next()
		require.True(t, ok, "no step follows %s", d.Step)
		assert.Equal(t, step, got)
		require.NoError(t, d.CanEnter(got))
		d.Step = got
	}

	// otp points at confirm, but the guard holds until verification
	got, ok := d.Next()
	require.True(t, ok)
	require.Equal(t, wizard.StepConfirm, got)
	assert.ErrorIs(t, d.CanEnter(got), wizard.ErrStepNotReachable)

	d.OTPVerified = true
	assert.NoError(t, d.CanEnter(wizard.StepConfirm))
}

func TestDraft_SkipsParticipants(t *testing.T) {
	for _, session := range []studio.SessionType{studio.SessionDrumPractice, studio.SessionMeetingsClasses} {
		t.Run(string(session), func(t *testing.T) {
			d := wizard.NewDraft("+821012345678", testNow)
			d.SessionType = session

			advanceTo(t, d, wizard.StepSession)
			got, ok := d.Next()
			require.True(t, ok)
			assert.Equal(t, wizard.StepStudio, got, "participants must be skipped")
			assert.ErrorIs(t, d.CanEnter(wizard.StepParticipants), wizard.ErrStepNotReachable)
		})
	}
}

func TestDraft_VerifiedSkipsOTP(t *testing.T) {
	d := filledDraft(t)
	d.DeviceTrusted = true

	advanceTo(t, d, wizard.StepReview)
	got, ok := d.Next()
	require.True(t, ok)
	assert.Equal(t, wizard.StepConfirm, got, "trusted device skips the otp step")
	assert.NoError(t, d.CanEnter(got))
}

func TestDraft_StepGuards(t *testing.T) {
	cases := []struct {
		name  string
		setup func(*wizard.Draft)
		step  wizard.Step
	}{
		{
			name:  "session needs a phone",
			setup: func(d *wizard.Draft) { d.Phone = "" },
			step:  wizard.StepSession,
		},
		{
			name:  "studio needs a selector",
			setup: func(d *wizard.Draft) { d.Selector = "" },
			step:  wizard.StepStudio,
		},
		{
			name:  "time needs a studio",
			setup: func(d *wizard.Draft) { d.Studio = "" },
			step:  wizard.StepTime,
		},
		{
			name:  "review needs a full time selection",
			setup: func(d *wizard.Draft) { d.EndTime = "" },
			step:  wizard.StepReview,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := filledDraft(t)
			tc.setup(d)
			assert.ErrorIs(t, d.CanEnter(tc.step), wizard.ErrStepNotReachable)
		})
	}
}

func TestNewEditDraft_SeedsFromOriginal(t *testing.T) {
	original := wizard.Choices{
		SessionType: studio.SessionBand,
		Selector:    studio.EquipDrumAmps,
		Studio:      studio.StudioC,
		Date:        "2026-03-10",
		StartTime:   "18:00",
		EndTime:     "20:00",
	}
	bookingID := uuid.New()

	d := wizard.NewEditDraft("+821012345678", bookingID, original, testNow)

	assert.True(t, d.EditMode)
	require.NotNil(t, d.OriginalBookingID)
	assert.Equal(t, bookingID, *d.OriginalBookingID)
	if diff := cmp.Diff(original, d.CurrentChoices()); diff != "" {
		t.Errorf("seeded choices mismatch (-want +got):\n%s", diff)
	}

	// the retained original must be a copy, not an alias of the live fields
	d.Studio = studio.StudioB
	if diff := cmp.Diff(original, *d.Original); diff != "" {
		t.Errorf("original snapshot mutated (-want +got):\n%s", diff)
	}
}

func TestDraft_NoOpEditRejected(t *testing.T) {
	original := wizard.Choices{
		SessionType: studio.SessionKaraoke,
		Selector:    studio.Attendees1to5,
		Studio:      studio.StudioC,
		Date:        "2026-03-10",
		StartTime:   "14:00",
		EndTime:     "16:00",
	}
	bookingID := uuid.New()

	t.Run("identical draft blocks the otp step", func(t *testing.T) {
		d := wizard.NewEditDraft("+821012345678", bookingID, original, testNow)
		assert.ErrorIs(t, d.CanEnter(wizard.StepOTP), wizard.ErrNothingChanged)
		assert.ErrorIs(t, d.CanEnter(wizard.StepConfirm), wizard.ErrNothingChanged)
	})

	t.Run("any changed field unblocks", func(t *testing.T) {
		mutations := map[string]func(*wizard.Draft){
			"studio":     func(d *wizard.Draft) { d.Studio = studio.StudioB },
			"date":       func(d *wizard.Draft) { d.Date = "2026-03-11" },
			"start time": func(d *wizard.Draft) { d.StartTime = "15:00" },
			"session": func(d *wizard.Draft) {
				d.SessionType = studio.SessionBand
				d.Selector = studio.EquipDrum
			},
		}
		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				d := wizard.NewEditDraft("+821012345678", bookingID, original, testNow)
				mutate(d)
				assert.True(t, d.Changed())
				assert.NoError(t, d.CanEnter(wizard.StepOTP))
			})
		}
	})
}

func TestDraft_ConfirmIsTerminal(t *testing.T) {
	d := filledDraft(t)
	d.OTPVerified = true
	advanceTo(t, d, wizard.StepConfirm)

	_, ok := d.Next()
	assert.False(t, ok, "no step follows confirm")
}

func TestDraft_ReachableSteps(t *testing.T) {
	d := wizard.NewDraft("+821012345678", testNow)
	steps := d.ReachableSteps()
	assert.Equal(t, []wizard.Step{wizard.StepPhone, wizard.StepSession}, steps)

	d = filledDraft(t)
	d.OTPVerified = true
	steps = d.ReachableSteps()
	assert.Contains(t, steps, wizard.StepConfirm)
}

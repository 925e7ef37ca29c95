package wizard

import (
	"time"

	"studiobooking/internal/domain/studio"

	"github.com/google/uuid"
)

// Choices are the fields that matter when diffing an edit-mode draft against
// the booking being modified. A draft identical to its original in all of
// them is a no-op edit.
type Choices struct {
	SessionType studio.SessionType `json:"session_type"`
	Selector    studio.Selector    `json:"selector"`
	Studio      studio.Studio      `json:"studio"`
	Date        string             `json:"date"`
	StartTime   string             `json:"start_time"`
	EndTime     string             `json:"end_time"`
}

// Draft is the in-progress wizard state. It is owned by a single wizard
// session, stored out of process, and discarded on completion or reset.
type Draft struct {
	ID    uuid.UUID `json:"id"`
	Step  Step      `json:"step"`
	Phone string    `json:"phone"`
	Name  string    `json:"name"`
	Email string    `json:"email"`

	SessionType    studio.SessionType `json:"session_type"`
	Selector       studio.Selector    `json:"selector"`
	SessionDetails string             `json:"session_details"`

	Studio      studio.Studio   `json:"studio"`
	Recommended studio.Studio   `json:"recommended"`
	Allowed     []studio.Studio `json:"allowed"`
	RatePerHour int             `json:"rate_per_hour"`

	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	OTPVerified   bool `json:"otp_verified"`
	DeviceTrusted bool `json:"device_trusted"`

	EditMode          bool       `json:"edit_mode"`
	OriginalBookingID *uuid.UUID `json:"original_booking_id,omitempty"`
	Original          *Choices   `json:"original,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewDraft(phone string, now time.Time) *Draft {
	return &Draft{
		ID:        uuid.New(),
		Step:      StepPhone,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewEditDraft seeds a draft from an existing booking's choices.
func NewEditDraft(phone string, bookingID uuid.UUID, original Choices, now time.Time) *Draft {
	d := NewDraft(phone, now)
	d.EditMode = true
	d.OriginalBookingID = &bookingID
	orig := original
	d.Original = &orig
	d.SessionType = original.SessionType
	d.Selector = original.Selector
	d.Studio = original.Studio
	d.Date = original.Date
	d.StartTime = original.StartTime
	d.EndTime = original.EndTime
	return d
}

func (d *Draft) CurrentChoices() Choices {
	return Choices{
		SessionType: d.SessionType,
		Selector:    d.Selector,
		Studio:      d.Studio,
		Date:        d.Date,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
	}
}

// Changed reports whether an edit-mode draft differs from its original in
// any field that would alter the stored booking. Non-edit drafts always
// count as changed.
func (d *Draft) Changed() bool {
	if !d.EditMode || d.Original == nil {
		return true
	}
	return d.CurrentChoices() != *d.Original
}

// Verified reports whether either authentication gate has passed.
func (d *Draft) Verified() bool {
	return d.OTPVerified || d.DeviceTrusted
}

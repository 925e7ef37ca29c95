package request

import (
	"github.com/google/uuid"
)

type StartDraftRequest struct {
	Phone string `json:"phone" binding:"required"`
	// EditBookingID switches the wizard into edit mode, seeded from that
	// booking's current choices.
	EditBookingID *uuid.UUID `json:"edit_booking_id,omitempty"`
}

// AdvanceDraftRequest carries the data for the step being entered; which
// fields matter depends on the step.
type AdvanceDraftRequest struct {
	Step string `json:"step" binding:"required"`

	SessionType    string `json:"session_type,omitempty"`
	Selector       string `json:"selector,omitempty"`
	SessionDetails string `json:"session_details,omitempty"`

	Studio string `json:"studio,omitempty"`

	Date      string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`

	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty" binding:"omitempty,email"`
}

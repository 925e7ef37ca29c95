package response

import (
	"studiobooking/internal/domain/wizard"
	"studiobooking/internal/usecase/commands"

	"github.com/google/uuid"
)

type DraftResponse struct {
	ID             uuid.UUID `json:"id"`
	Step           string    `json:"step"`
	Phone          string    `json:"phone"`
	Name           string    `json:"name,omitempty"`
	Email          string    `json:"email,omitempty"`
	SessionType    string    `json:"sessionType,omitempty"`
	Selector       string    `json:"selector,omitempty"`
	SessionDetails string    `json:"sessionDetails,omitempty"`
	Studio         string    `json:"studio,omitempty"`
	Recommended    string    `json:"recommended,omitempty"`
	Allowed        []string  `json:"allowed,omitempty"`
	RatePerHour    int       `json:"ratePerHour,omitempty"`
	Date           string    `json:"date,omitempty"`
	StartTime      string    `json:"startTime,omitempty"`
	EndTime        string    `json:"endTime,omitempty"`
	Verified       bool      `json:"verified"`
	EditMode       bool      `json:"editMode"`
	NextStep       string    `json:"nextStep,omitempty"`
	ReachableSteps []string  `json:"reachableSteps"`
}

func FromDraft(d *wizard.Draft) *DraftResponse {
	allowed := make([]string, 0, len(d.Allowed))
	for _, s := range d.Allowed {
		allowed = append(allowed, s.String())
	}
	reachable := d.ReachableSteps()
	steps := make([]string, 0, len(reachable))
	for _, s := range reachable {
		steps = append(steps, string(s))
	}
	nextStep := ""
	if next, ok := d.Next(); ok {
		nextStep = string(next)
	}
	return &DraftResponse{
		ID:             d.ID,
		Step:           string(d.Step),
		Phone:          d.Phone,
		Name:           d.Name,
		Email:          d.Email,
		SessionType:    string(d.SessionType),
		Selector:       string(d.Selector),
		SessionDetails: d.SessionDetails,
		Studio:         d.Studio.String(),
		Recommended:    d.Recommended.String(),
		Allowed:        allowed,
		RatePerHour:    d.RatePerHour,
		Date:           d.Date,
		StartTime:      d.StartTime,
		EndTime:        d.EndTime,
		Verified:       d.Verified(),
		EditMode:       d.EditMode,
		NextStep:       nextStep,
		ReachableSteps: steps,
	}
}

type AdvanceDraftResponse struct {
	Draft   *DraftResponse   `json:"draft"`
	Booking *BookingResponse `json:"booking,omitempty"`
}

func FromAdvanceResult(r *commands.AdvanceResult) *AdvanceDraftResponse {
	resp := &AdvanceDraftResponse{Draft: FromDraft(r.Draft)}
	if r.Booking != nil {
		resp.Booking = FromBookingView(r.Booking)
	}
	return resp
}

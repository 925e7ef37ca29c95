//go:build unit || e2e

package builder

import (
	"time"

	"studiobooking/internal/domain/studio"
	"studiobooking/internal/domain/wizard"
	reqdto "studiobooking/internal/handler/dto/request"

	"github.com/google/uuid"
)

type DraftBuilder struct {
	ID          uuid.UUID
	Step        wizard.Step
	Phone       string
	SessionType studio.SessionType
	Selector    studio.Selector
	Studio      studio.Studio
	Date        string
	StartTime   string
	EndTime     string
	Name        string
	Email       string
	OTPVerified bool
	CreatedAt   time.Time
}

func NewDraftBuilder() *DraftBuilder {
	now := time.Now()
	return &DraftBuilder{
		ID:          uuid.New(),
		Step:        wizard.StepSession,
		Phone:       "+15550001111",
		SessionType: studio.SessionBand,
		Selector:    studio.EquipDrumAmpsGtr,
		Studio:      studio.StudioB,
		Date:        now.AddDate(0, 0, 7).Format("2006-01-02"),
		StartTime:   "10:00",
		EndTime:     "12:00",
		Name:        "Sam Carter",
		Email:       "sam@example.com",
		CreatedAt:   now,
	}
}

func (d *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(d)
	return d
}

func (d *DraftBuilder) BuildDraft() *wizard.Draft {
	draft := wizard.NewDraft(d.Phone, d.CreatedAt)
	draft.ID = d.ID
	draft.Step = d.Step
	draft.SessionType = d.SessionType
	draft.Selector = d.Selector
	draft.Studio = d.Studio
	draft.Date = d.Date
	draft.StartTime = d.StartTime
	draft.EndTime = d.EndTime
	draft.Name = d.Name
	draft.Email = d.Email
	draft.OTPVerified = d.OTPVerified
	return draft
}

func (d *DraftBuilder) BuildStartRequestDTO() reqdto.StartDraftRequest {
	return reqdto.StartDraftRequest{Phone: d.Phone}
}

func (d *DraftBuilder) BuildAdvanceRequestDTO(step string) reqdto.AdvanceDraftRequest {
	return reqdto.AdvanceDraftRequest{
		Step:        step,
		SessionType: string(d.SessionType),
		Selector:    string(d.Selector),
		Studio:      string(d.Studio),
		Date:        d.Date,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		Name:        d.Name,
		Email:       d.Email,
	}
}

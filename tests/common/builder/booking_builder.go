//go:build unit || e2e

package builder

import (
	"time"

	reqdto "studiobooking/internal/handler/dto/request"
	"studiobooking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID             uuid.UUID
	Studio         string
	SessionType    string
	Selector       string
	SessionDetails string
	Date           string
	StartTime      string
	EndTime        string
	Status         string
	RatePerHour    int
	TotalAmount    int
	Phone          string
	Name           string
	Email          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:          uuid.New(),
		Studio:      "B",
		SessionType: "band",
		Selector:    "drum+amps+guitars",
		Date:        now.AddDate(0, 0, 7).Format("2006-01-02"),
		StartTime:   "10:00",
		EndTime:     "12:00",
		Status:      "confirmed",
		RatePerHour: 2500,
		TotalAmount: 5000,
		Phone:       "+15550001111",
		Name:        "Sam Carter",
		Email:       "sam@example.com",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:             b.ID,
		Studio:         b.Studio,
		SessionType:    b.SessionType,
		Selector:       b.Selector,
		SessionDetails: b.SessionDetails,
		Date:           b.Date,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Status:         b.Status,
		RatePerHour:    b.RatePerHour,
		TotalAmount:    b.TotalAmount,
		Phone:          b.Phone,
		Name:           b.Name,
		Email:          b.Email,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:          b.ID,
		Studio:      b.Studio,
		SessionType: b.SessionType,
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      b.Status,
		TotalAmount: b.TotalAmount,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		BookingSlot: b.buildSlot(),
		Name:        b.Name,
		Email:       b.Email,
	}
}

func (b *BookingBuilder) BuildModifyRequestDTO() reqdto.ModifyBookingRequest {
	return reqdto.ModifyBookingRequest{BookingSlot: b.buildSlot()}
}

func (b *BookingBuilder) buildSlot() reqdto.BookingSlot {
	return reqdto.BookingSlot{
		Studio:         b.Studio,
		SessionType:    b.SessionType,
		Selector:       b.Selector,
		SessionDetails: b.SessionDetails,
		Date:           b.Date,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
	}
}

package response

import (
	"time"

	"studiobooking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	Studio         string    `json:"studio"`
	SessionType    string    `json:"sessionType"`
	Selector       string    `json:"selector,omitempty"`
	SessionDetails string    `json:"sessionDetails,omitempty"`
	Date           string    `json:"date"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	Status         string    `json:"status"`
	RatePerHour    int       `json:"ratePerHour"`
	TotalAmount    int       `json:"totalAmount"`
	Phone          string    `json:"phone"`
	Name           string    `json:"name,omitempty"`
	Email          string    `json:"email,omitempty"`
	CancelReason   string    `json:"cancelReason,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:             v.ID,
		Studio:         v.Studio,
		SessionType:    v.SessionType,
		Selector:       v.Selector,
		SessionDetails: v.SessionDetails,
		Date:           v.Date,
		StartTime:      v.StartTime,
		EndTime:        v.EndTime,
		Status:         v.Status,
		RatePerHour:    v.RatePerHour,
		TotalAmount:    v.TotalAmount,
		Phone:          v.Phone,
		Name:           v.Name,
		Email:          v.Email,
		CancelReason:   v.CancelReason,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

type BookingListResponse struct {
	ID          uuid.UUID `json:"id"`
	Studio      string    `json:"studio"`
	SessionType string    `json:"sessionType"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Status      string    `json:"status"`
	TotalAmount int       `json:"totalAmount"`
}

func FromBookingListItem(v *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:          v.ID,
		Studio:      v.Studio,
		SessionType: v.SessionType,
		Date:        v.Date,
		StartTime:   v.StartTime,
		EndTime:     v.EndTime,
		Status:      v.Status,
		TotalAmount: v.TotalAmount,
	}
}

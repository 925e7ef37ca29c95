package queries

import (
	"time"

	"github.com/google/uuid"
)

// SlotView is one grid slot with its resolved status.
type SlotView struct {
	Time   string `json:"time"`
	Status string `json:"status"`
}

// SlabView is a contiguous bookable run of slots.
type SlabView struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"duration_minutes"`
}

// AvailabilityView is the full picker payload for one studio/date: slot
// statuses, bookable slabs and the limits the picker needs to validate
// locally. Assembled from a single bookings read.
type AvailabilityView struct {
	Studio   string       `json:"studio"`
	Date     string       `json:"date"`
	Slots    []SlotView   `json:"slots"`
	Slabs    []SlabView   `json:"slabs"`
	Settings SettingsView `json:"settings"`
}

// BookedBlock is a consolidated run of booked time for schedule rendering.
type BookedBlock struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayScheduleView maps each studio to its consolidated booked blocks.
type DayScheduleView struct {
	Date    string                   `json:"date"`
	Studios map[string][]BookedBlock `json:"studios"`
}

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	Studio         string    `json:"studio"`
	SessionType    string    `json:"session_type"`
	Selector       string    `json:"selector,omitempty"`
	SessionDetails string    `json:"session_details,omitempty"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Status         string    `json:"status"`
	RatePerHour    int       `json:"rate_per_hour"`
	TotalAmount    int       `json:"total_amount"`
	Phone          string    `json:"phone"`
	Name           string    `json:"name,omitempty"`
	Email          string    `json:"email,omitempty"`
	CancelReason   string    `json:"cancel_reason,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	Studio      string    `json:"studio"`
	SessionType string    `json:"session_type"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"`
	TotalAmount int       `json:"total_amount"`
}

// SettingsView exposes the booking limits clients need before they can draw
// a picker.
type SettingsView struct {
	OpenTime           string   `json:"open_time"`
	CloseTime          string   `json:"close_time"`
	MinBookingHours    int      `json:"min_booking_hours"`
	MaxBookingHours    int      `json:"max_booking_hours"`
	AdvanceBookingDays int      `json:"advance_booking_days"`
	Studios            []string `json:"studios"`
}

package response

import (
	"studiobooking/internal/usecase/queries"
)

type SlotResponse struct {
	Time   string `json:"time"`
	Status string `json:"status"`
}

type SlabResponse struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"durationMinutes"`
}

type SettingsResponse struct {
	OpenTime           string   `json:"openTime"`
	CloseTime          string   `json:"closeTime"`
	MinBookingHours    int      `json:"minBookingHours"`
	MaxBookingHours    int      `json:"maxBookingHours"`
	AdvanceBookingDays int      `json:"advanceBookingDays"`
	Studios            []string `json:"studios"`
}

type AvailabilityResponse struct {
	Studio   string           `json:"studio"`
	Date     string           `json:"date"`
	Slots    []SlotResponse   `json:"slots"`
	Slabs    []SlabResponse   `json:"slabs"`
	Settings SettingsResponse `json:"settings"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		Studio:   v.Studio,
		Date:     v.Date,
		Slots:    make([]SlotResponse, 0, len(v.Slots)),
		Slabs:    make([]SlabResponse, 0, len(v.Slabs)),
		Settings: FromSettingsView(v.Settings),
	}
	for _, s := range v.Slots {
		resp.Slots = append(resp.Slots, SlotResponse{Time: s.Time, Status: s.Status})
	}
	for _, s := range v.Slabs {
		resp.Slabs = append(resp.Slabs, SlabResponse{Start: s.Start, End: s.End, DurationMinutes: s.DurationMinutes})
	}
	return resp
}

func FromSettingsView(v queries.SettingsView) SettingsResponse {
	return SettingsResponse{
		OpenTime:           v.OpenTime,
		CloseTime:          v.CloseTime,
		MinBookingHours:    v.MinBookingHours,
		MaxBookingHours:    v.MaxBookingHours,
		AdvanceBookingDays: v.AdvanceBookingDays,
		Studios:            v.Studios,
	}
}

type BookedBlockResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DayScheduleResponse struct {
	Date    string                           `json:"date"`
	Studios map[string][]BookedBlockResponse `json:"studios"`
}

func FromDayScheduleView(v *queries.DayScheduleView) *DayScheduleResponse {
	resp := &DayScheduleResponse{
		Date:    v.Date,
		Studios: make(map[string][]BookedBlockResponse, len(v.Studios)),
	}
	for studio, blocks := range v.Studios {
		out := make([]BookedBlockResponse, 0, len(blocks))
		for _, b := range blocks {
			out = append(out, BookedBlockResponse{Start: b.Start, End: b.End})
		}
		resp.Studios[studio] = out
	}
	return resp
}

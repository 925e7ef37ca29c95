package queries

import (
	"studiobooking/internal/domain/studio"
	"studiobooking/internal/pkg/config"
)

type SettingsQueries interface {
	GetSettings() SettingsView
}

type settingsQueriesImpl struct {
	cfg config.BookingConfig
}

func NewSettingsQueries(cfg config.BookingConfig) SettingsQueries {
	return &settingsQueriesImpl{cfg: cfg}
}

func (q *settingsQueriesImpl) GetSettings() SettingsView {
	studios := make([]string, 0, len(studio.All()))
	for _, s := range studio.All() {
		studios = append(studios, s.String())
	}
	return SettingsView{
		OpenTime:           q.cfg.OpenTime,
		CloseTime:          q.cfg.CloseTime,
		MinBookingHours:    q.cfg.MinBookingHours,
		MaxBookingHours:    q.cfg.MaxBookingHours,
		AdvanceBookingDays: q.cfg.AdvanceBookingDays,
		Studios:            studios,
	}
}

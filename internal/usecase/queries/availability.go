package queries

import (
	"context"
	"time"

	"studiobooking/internal/domain/schedule"
	"studiobooking/internal/domain/studio"
	"studiobooking/internal/pkg/clock"
	"studiobooking/internal/pkg/config"
	"studiobooking/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	// GetAvailability resolves the slot grid and bookable slabs for one
	// studio/date. excludeBookingID frees that booking's own interval, for
	// edit flows; pass uuid.Nil otherwise.
	GetAvailability(ctx context.Context, st studio.Studio, date time.Time, excludeBookingID uuid.UUID) (*AvailabilityView, error)
	// GetDaySchedule returns consolidated booked blocks per studio for
	// rendering a day overview.
	GetDaySchedule(ctx context.Context, date time.Time) (*DayScheduleView, error)
}

// BookingIntervalReader supplies the active intervals availability is
// resolved against, in one read so the grid and slabs always agree.
type BookingIntervalReader interface {
	FindActiveIntervals(ctx context.Context, st studio.Studio, date time.Time, excludeID uuid.UUID) ([]schedule.Interval, error)
}

type availabilityQueriesImpl struct {
	intervals BookingIntervalReader
	settings  SettingsQueries
	cfg       config.BookingConfig
	clock     clock.Clock
}

func NewAvailabilityQueries(
	intervals BookingIntervalReader,
	settings SettingsQueries,
	cfg config.BookingConfig,
	clock clock.Clock,
) (AvailabilityQueries, error) {
	// fail fast on a malformed OPEN_TIME/CLOSE_TIME pair
	if _, err := openHoursFromConfig(cfg); err != nil {
		return nil, err
	}
	return &availabilityQueriesImpl{
		intervals: intervals,
		settings:  settings,
		cfg:       cfg,
		clock:     clock,
	}, nil
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, st studio.Studio, date time.Time, excludeBookingID uuid.UUID) (*AvailabilityView, error) {
	if !st.IsValid() {
		return nil, errs.Mark(errs.New("unknown studio"), errs.ErrValidation)
	}

	booked, err := q.intervals.FindActiveIntervals(ctx, st, date, excludeBookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	openHours, err := openHoursFromConfig(q.cfg)
	if err != nil {
		return nil, err
	}

	minDuration := time.Duration(q.cfg.MinBookingHours) * time.Hour
	statuses := schedule.Resolve(date, q.clock.Now(), openHours, booked)
	slabs := schedule.BuildSlabs(statuses, minDuration)

	view := &AvailabilityView{
		Studio:   st.String(),
		Date:     date.Format("2006-01-02"),
		Slots:    make([]SlotView, 0, len(statuses)),
		Slabs:    make([]SlabView, 0, len(slabs)),
		Settings: q.settings.GetSettings(),
	}
	for _, s := range statuses {
		view.Slots = append(view.Slots, SlotView{
			Time:   s.Slot.Start().String(),
			Status: string(s.Status),
		})
	}
	for _, s := range slabs {
		view.Slabs = append(view.Slabs, SlabView{
			Start:           s.Start().String(),
			End:             s.End().String(),
			DurationMinutes: int(s.Duration().Minutes()),
		})
	}
	return view, nil
}

func (q *availabilityQueriesImpl) GetDaySchedule(ctx context.Context, date time.Time) (*DayScheduleView, error) {
	view := &DayScheduleView{
		Date:    date.Format("2006-01-02"),
		Studios: make(map[string][]BookedBlock, len(studio.All())),
	}
	for _, st := range studio.All() {
		booked, err := q.intervals.FindActiveIntervals(ctx, st, date, uuid.Nil)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		view.Studios[st.String()] = consolidate(booked)
	}
	return view, nil
}

// consolidate merges touching or overlapping intervals into rendering
// blocks. Input is expected sorted by start time.
func consolidate(intervals []schedule.Interval) []BookedBlock {
	blocks := make([]BookedBlock, 0, len(intervals))
	for _, iv := range intervals {
		n := len(blocks)
		if n > 0 && blocks[n-1].End >= iv.Start().String() {
			if blocks[n-1].End < iv.End().String() {
				blocks[n-1].End = iv.End().String()
			}
			continue
		}
		blocks = append(blocks, BookedBlock{Start: iv.Start().String(), End: iv.End().String()})
	}
	return blocks
}

func openHoursFromConfig(cfg config.BookingConfig) ([]schedule.Interval, error) {
	open, err := schedule.NewTimeOfDay(cfg.OpenTime)
	if err != nil {
		return nil, errs.Wrap(err, "invalid OPEN_TIME")
	}
	close, err := schedule.NewTimeOfDay(cfg.CloseTime)
	if err != nil {
		return nil, errs.Wrap(err, "invalid CLOSE_TIME")
	}
	window, err := schedule.NewInterval(open, close)
	if err != nil {
		return nil, errs.Wrap(err, "invalid open hours window")
	}
	return []schedule.Interval{window}, nil
}

package schedule

import "time"

type Status string

const (
	StatusPast        Status = "past"
	StatusBooked      Status = "booked"
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
)

type SlotStatus struct {
	Slot   Interval
	Status Status
}

// Resolve classifies every grid slot for one studio/date. The classification
// is total: each slot gets exactly one status, decided in strict precedence
// order past > booked > available > unavailable.
//
// openHours is the studio's base-availability whitelist for that date; a slot
// is only offerable when fully contained in an open interval. bookings are
// the day's active bookings for the same studio.
func Resolve(date time.Time, now time.Time, openHours []Interval, bookings []Interval) []SlotStatus {
	out := make([]SlotStatus, 0, GridCloseHour-GridOpenHour)
	for _, slot := range Grid() {
		out = append(out, SlotStatus{Slot: slot, Status: classify(slot, date, now, openHours, bookings)})
	}
	return out
}

func classify(slot Interval, date, now time.Time, openHours, bookings []Interval) Status {
	if isPast(slot, date, now) {
		return StatusPast
	}
	for _, b := range bookings {
		if slot.Overlaps(b) {
			return StatusBooked
		}
	}
	for _, open := range openHours {
		if open.Contains(slot) {
			return StatusAvailable
		}
	}
	return StatusUnavailable
}

// A slot is past when its date is strictly before today, or the date is
// today and the slot's start has already been reached.
func isPast(slot Interval, date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())

	if day.Before(today) {
		return true
	}
	if !day.Equal(today) {
		return false
	}
	nowMinutes := now.Hour()*60 + now.Minute()
	return slot.Start().Minutes() <= nowMinutes
}

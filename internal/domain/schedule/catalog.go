package schedule

import "time"

// The daily grid is fixed: 14 one-hour slots from 08:00 to 22:00, identical
// for every studio.
const (
	GridOpenHour  = 8
	GridCloseHour = 22
	SlotHours     = 1
)

// Grid returns the ordered daily slot grid.
func Grid() []Interval {
	slots := make([]Interval, 0, GridCloseHour-GridOpenHour)
	for h := GridOpenHour; h < GridCloseHour; h += SlotHours {
		start := TimeOfDay{minutes: h * 60}
		end := start.Add(time.Duration(SlotHours) * time.Hour)
		slots = append(slots, Interval{start: start, end: end})
	}
	return slots
}

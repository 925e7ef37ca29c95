package schedule

import "time"

// OptionStep is the spacing between offered start and end time choices.
const OptionStep = 30 * time.Minute

// Slab is a maximal contiguous run of available slots a customer can carve a
// booking out of.
type Slab struct {
	start TimeOfDay
	end   TimeOfDay
}

func (s Slab) Start() TimeOfDay { return s.start }
func (s Slab) End() TimeOfDay   { return s.end }

func (s Slab) Duration() time.Duration {
	return time.Duration(s.end.Minutes()-s.start.Minutes()) * time.Minute
}

// BuildSlabs scans slot statuses in time order, merging consecutive available
// slots into slabs. A slab closes on a non-available slot or a time gap.
// Slabs shorter than minDuration are dropped.
func BuildSlabs(statuses []SlotStatus, minDuration time.Duration) []Slab {
	var slabs []Slab
	var open *Slab

	for _, st := range statuses {
		if st.Status != StatusAvailable {
			if open != nil {
				slabs = append(slabs, *open)
				open = nil
			}
			continue
		}
		if open != nil && open.end == st.Slot.Start() {
			open.end = st.Slot.End()
			continue
		}
		if open != nil {
			slabs = append(slabs, *open)
		}
		open = &Slab{start: st.Slot.Start(), end: st.Slot.End()}
	}
	if open != nil {
		slabs = append(slabs, *open)
	}

	out := slabs[:0]
	for _, s := range slabs {
		if s.Duration() >= minDuration {
			out = append(out, s)
		}
	}
	return out
}

// StartOptions lists start-time choices, every OptionStep, such that at least
// minDuration remains before the slab end. A slab of exactly minDuration
// yields a single option.
func (s Slab) StartOptions(minDuration time.Duration) []TimeOfDay {
	var opts []TimeOfDay
	latest := s.end.Add(-minDuration)
	for t := s.start; !t.After(latest); t = t.Add(OptionStep) {
		opts = append(opts, t)
	}
	return opts
}

// EndOptions lists end-time choices for a chosen start, every OptionStep,
// bounded by minDuration, maxDuration, and the slab end.
func (s Slab) EndOptions(start TimeOfDay, minDuration, maxDuration time.Duration) []TimeOfDay {
	var opts []TimeOfDay
	last := start.Add(maxDuration)
	if s.end.Before(last) {
		last = s.end
	}
	for t := start.Add(minDuration); !t.After(last); t = t.Add(OptionStep) {
		opts = append(opts, t)
	}
	return opts
}

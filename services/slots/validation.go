package slots

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"medibook/models"
)

// MinSlotMinutes is the shortest bookable window.
const MinSlotMinutes = 30

var clockPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// parseClock converts "H:MM" or "HH:MM" into minutes after midnight.
func parseClock(value string) (int, bool) {
	if !clockPattern.MatchString(value) {
		return 0, false
	}
	hh, mm, _ := strings.Cut(value, ":")
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// window is a slot reduced to comparable minutes.
type window struct {
	day        string
	start, end int
}

func (w window) overlaps(o window) bool {
	return w.day == o.day && w.start < o.end && o.start < w.end
}

func windowOf(slot models.TimeSlot) (window, bool) {
	start, ok := parseClock(slot.StartTime)
	if !ok {
		return window{}, false
	}
	end, ok := parseClock(slot.EndTime)
	if !ok {
		return window{}, false
	}
	return window{day: slot.Day, start: start, end: end}, true
}

// checkWindow enforces format, ordering and minimum duration for one slot.
func checkWindow(index int, day, startTime, endTime string) (window, *ValidationError) {
	if !models.IsWeekday(day) {
		return window{}, invalid(RuleInvalidDay, index,
			"invalid day %q, must be one of %s", day, strings.Join(models.Weekdays, ", "))
	}
	start, ok := parseClock(startTime)
	if !ok {
		return window{}, invalid(RuleInvalidTime, index, "invalid start time %q, expected HH:MM (24-hour)", startTime)
	}
	end, ok := parseClock(endTime)
	if !ok {
		return window{}, invalid(RuleInvalidTime, index, "invalid end time %q, expected HH:MM (24-hour)", endTime)
	}
	if start >= end {
		return window{}, invalid(RuleTimeOrder, index, "start time %s must be before end time %s", startTime, endTime)
	}
	if end-start < MinSlotMinutes {
		return window{}, invalid(RuleMinDuration, index, "slot %s-%s is shorter than %d minutes", startTime, endTime, MinSlotMinutes)
	}
	return window{day: day, start: start, end: end}, nil
}

// ValidateSlotInputs checks a whole batch before anything is applied and
// returns normalised slots without IDs. The first invalid entry fails the batch.
func ValidateSlotInputs(inputs []models.SlotInput) ([]models.TimeSlot, error) {
	if len(inputs) == 0 {
		return nil, invalid(RuleEmptyBatch, -1, "at least one slot is required")
	}

	out := make([]models.TimeSlot, 0, len(inputs))
	for i, in := range inputs {
		w, verr := checkWindow(i, in.Day, in.StartTime, in.EndTime)
		if verr != nil {
			return nil, verr
		}
		status := models.SlotAvailable
		if in.IsAvailable != nil {
			status = models.StatusFromAvailable(*in.IsAvailable)
		}
		out = append(out, models.TimeSlot{
			Day:       w.day,
			StartTime: formatClock(w.start),
			EndTime:   formatClock(w.end),
			Status:    status,
		})
	}
	return out, nil
}

// ApplyUpdate returns slot with upd merged in. Time changes are re-validated
// with the same rules as creation, including the minimum duration.
func ApplyUpdate(slot models.TimeSlot, upd models.SlotUpdate) (models.TimeSlot, error) {
	if upd.ChangesTime() {
		startTime, endTime := slot.StartTime, slot.EndTime
		if upd.StartTime != nil {
			startTime = *upd.StartTime
		}
		if upd.EndTime != nil {
			endTime = *upd.EndTime
		}
		w, verr := checkWindow(-1, slot.Day, startTime, endTime)
		if verr != nil {
			return models.TimeSlot{}, verr
		}
		slot.StartTime = formatClock(w.start)
		slot.EndTime = formatClock(w.end)
	}
	if upd.IsAvailable != nil {
		slot.Status = models.StatusFromAvailable(*upd.IsAvailable)
	}
	return slot, nil
}

// CheckOverlap rejects any candidate that intersects a stored slot on the same
// day (skipping skipID, the slot being edited) or another candidate.
// Candidate indices in the error refer to the submitted batch.
func CheckOverlap(existing, candidates []models.TimeSlot, skipID string) error {
	cw := make([]window, len(candidates))
	for i, c := range candidates {
		w, ok := windowOf(c)
		if !ok {
			return invalid(RuleInvalidTime, batchIndex(candidates, i), "invalid time range %s-%s", c.StartTime, c.EndTime)
		}
		cw[i] = w
	}

	for _, stored := range existing {
		if skipID != "" && stored.ID == skipID {
			continue
		}
		sw, ok := windowOf(stored)
		if !ok {
			continue
		}
		for i, w := range cw {
			if w.overlaps(sw) {
				return invalid(RuleOverlap, batchIndex(candidates, i),
					"%s %s-%s overlaps existing slot %s-%s",
					w.day, candidates[i].StartTime, candidates[i].EndTime, stored.StartTime, stored.EndTime)
			}
		}
	}

	for i := range cw {
		for j := i + 1; j < len(cw); j++ {
			if cw[i].overlaps(cw[j]) {
				return invalid(RuleOverlap, batchIndex(candidates, j),
					"%s %s-%s overlaps slot %d of the same request",
					cw[j].day, candidates[j].StartTime, candidates[j].EndTime, i+1)
			}
		}
	}
	return nil
}

// batchIndex keeps single-slot updates free of a misleading "slot 1" prefix.
func batchIndex(candidates []models.TimeSlot, i int) int {
	if len(candidates) == 1 && candidates[0].ID != "" {
		return -1
	}
	return i
}

package slots

import (
	"sort"

	"medibook/models"
)

// GroupByDay buckets slots by weekday, keeping only those accepted by keep
// (nil keeps everything). Days without slots are left out. Each bucket is
// ordered by start time.
func GroupByDay(all []models.TimeSlot, keep func(models.TimeSlot) bool) (map[string][]models.TimeSlot, int) {
	grouped := make(map[string][]models.TimeSlot)
	total := 0
	for _, slot := range all {
		if keep != nil && !keep(slot) {
			continue
		}
		grouped[slot.Day] = append(grouped[slot.Day], slot)
		total++
	}
	for day := range grouped {
		bucket := grouped[day]
		sort.SliceStable(bucket, func(i, j int) bool {
			return startMinutes(bucket[i]) < startMinutes(bucket[j])
		})
	}
	return grouped, total
}

func isAvailable(slot models.TimeSlot) bool {
	return slot.Status.IsAvailable()
}

func startMinutes(slot models.TimeSlot) int {
	m, _ := parseClock(slot.StartTime)
	return m
}

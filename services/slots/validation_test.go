package slots

import (
	"errors"
	"testing"

	"medibook/models"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func assertRule(t *testing.T, err error, rule Rule) *ValidationError {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError with rule %s, got %v", rule, err)
	}
	if verr.Rule != rule {
		t.Fatalf("expected rule %s, got %s (%v)", rule, verr.Rule, verr)
	}
	return verr
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"9:05", 545, true},
		{"09:05", 545, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"1230", 0, false},
		{"12:3", 0, false},
		{" 12:30", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseClock(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseClock(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestValidateSlotInputs(t *testing.T) {
	tests := []struct {
		name  string
		input models.SlotInput
		rule  Rule
	}{
		{"lowercase day", models.SlotInput{Day: "monday", StartTime: "09:00", EndTime: "10:00"}, RuleInvalidDay},
		{"unknown day", models.SlotInput{Day: "Funday", StartTime: "09:00", EndTime: "10:00"}, RuleInvalidDay},
		{"bad start", models.SlotInput{Day: "Monday", StartTime: "9am", EndTime: "10:00"}, RuleInvalidTime},
		{"bad end", models.SlotInput{Day: "Monday", StartTime: "09:00", EndTime: "25:00"}, RuleInvalidTime},
		{"equal times", models.SlotInput{Day: "Monday", StartTime: "09:00", EndTime: "09:00"}, RuleTimeOrder},
		{"reversed", models.SlotInput{Day: "Monday", StartTime: "11:00", EndTime: "10:00"}, RuleTimeOrder},
		{"fifteen minutes", models.SlotInput{Day: "Monday", StartTime: "10:00", EndTime: "10:15"}, RuleMinDuration},
		{"twenty nine minutes", models.SlotInput{Day: "Monday", StartTime: "10:00", EndTime: "10:29"}, RuleMinDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateSlotInputs([]models.SlotInput{tt.input})
			verr := assertRule(t, err, tt.rule)
			if verr.Index != 0 {
				t.Errorf("expected index 0, got %d", verr.Index)
			}
		})
	}
}

func TestValidateSlotInputsNormalisesAndDefaults(t *testing.T) {
	out, err := ValidateSlotInputs([]models.SlotInput{
		{Day: "Tuesday", StartTime: "9:00", EndTime: "9:30"},
		{Day: "Friday", StartTime: "14:00", EndTime: "18:00", IsAvailable: boolPtr(false)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].StartTime != "09:00" || out[0].EndTime != "09:30" {
		t.Errorf("expected normalised times, got %s-%s", out[0].StartTime, out[0].EndTime)
	}
	if !out[0].Status.IsAvailable() {
		t.Error("expected isAvailable to default to true")
	}
	if out[1].Status != models.SlotBlocked {
		t.Errorf("expected blocked status, got %s", out[1].Status)
	}
	if out[0].ID != "" {
		t.Error("validation must not assign ids")
	}
}

func TestValidateSlotInputsFailFast(t *testing.T) {
	_, err := ValidateSlotInputs([]models.SlotInput{
		{Day: "Monday", StartTime: "09:00", EndTime: "10:00"},
		{Day: "Monday", StartTime: "10:00", EndTime: "10:10"},
		{Day: "Someday", StartTime: "10:00", EndTime: "11:00"},
	})
	verr := assertRule(t, err, RuleMinDuration)
	if verr.Index != 1 {
		t.Errorf("expected first invalid slot (index 1), got %d", verr.Index)
	}
	if verr.Error() == "" || verr.Error()[:6] != "slot 2" {
		t.Errorf("expected message to name slot 2, got %q", verr.Error())
	}
}

func TestValidateSlotInputsEmpty(t *testing.T) {
	_, err := ValidateSlotInputs(nil)
	assertRule(t, err, RuleEmptyBatch)
}

func TestWindowOverlap(t *testing.T) {
	mk := func(day, start, end string) window {
		w, ok := windowOf(models.TimeSlot{Day: day, StartTime: start, EndTime: end})
		if !ok {
			t.Fatalf("bad window %s %s-%s", day, start, end)
		}
		return w
	}
	tests := []struct {
		name string
		a, b window
		want bool
	}{
		{"partial", mk("Monday", "09:00", "10:00"), mk("Monday", "09:30", "10:30"), true},
		{"contained", mk("Monday", "09:00", "12:00"), mk("Monday", "10:00", "11:00"), true},
		{"identical", mk("Monday", "09:00", "10:00"), mk("Monday", "09:00", "10:00"), true},
		{"adjacent", mk("Monday", "09:00", "10:00"), mk("Monday", "10:00", "11:00"), false},
		{"disjoint", mk("Monday", "09:00", "10:00"), mk("Monday", "13:00", "14:00"), false},
		{"other day", mk("Monday", "09:00", "10:00"), mk("Tuesday", "09:00", "10:00"), false},
		{"unpadded hour", mk("Monday", "9:00", "10:00"), mk("Monday", "09:45", "11:00"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.overlaps(tt.b); got != tt.want {
				t.Errorf("a.overlaps(b) = %v, want %v", got, tt.want)
			}
			if got := tt.b.overlaps(tt.a); got != tt.want {
				t.Errorf("b.overlaps(a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckOverlapWithinBatch(t *testing.T) {
	batch := []models.TimeSlot{
		{Day: "Monday", StartTime: "09:00", EndTime: "10:00"},
		{Day: "Monday", StartTime: "09:30", EndTime: "11:00"},
	}
	err := CheckOverlap(nil, batch, "")
	verr := assertRule(t, err, RuleOverlap)
	if verr.Index != 1 {
		t.Errorf("expected the later entry to be reported, got index %d", verr.Index)
	}
}

func TestCheckOverlapSkipsEditedSlot(t *testing.T) {
	existing := []models.TimeSlot{
		{ID: "a", Day: "Monday", StartTime: "09:00", EndTime: "10:00"},
		{ID: "b", Day: "Monday", StartTime: "11:00", EndTime: "12:00"},
	}
	moved := models.TimeSlot{ID: "a", Day: "Monday", StartTime: "09:30", EndTime: "10:30"}
	if err := CheckOverlap(existing, []models.TimeSlot{moved}, "a"); err != nil {
		t.Fatalf("slot must not collide with its own previous window: %v", err)
	}

	moved.EndTime = "11:30"
	err := CheckOverlap(existing, []models.TimeSlot{moved}, "a")
	verr := assertRule(t, err, RuleOverlap)
	if verr.Index != -1 {
		t.Errorf("single-slot update should not carry a batch index, got %d", verr.Index)
	}
}

func TestApplyUpdate(t *testing.T) {
	base := models.TimeSlot{ID: "a", Day: "Wednesday", StartTime: "09:00", EndTime: "11:00"}

	t.Run("availability only", func(t *testing.T) {
		got, err := ApplyUpdate(base, models.SlotUpdate{IsAvailable: boolPtr(false)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != models.SlotBlocked || got.StartTime != "09:00" || got.EndTime != "11:00" {
			t.Errorf("unexpected slot %+v", got)
		}
	})

	t.Run("partial time", func(t *testing.T) {
		got, err := ApplyUpdate(base, models.SlotUpdate{EndTime: strPtr("9:45")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.StartTime != "09:00" || got.EndTime != "09:45" {
			t.Errorf("unexpected window %s-%s", got.StartTime, got.EndTime)
		}
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := ApplyUpdate(base, models.SlotUpdate{StartTime: strPtr("12:00")})
		assertRule(t, err, RuleTimeOrder)
	})

	t.Run("duration enforced", func(t *testing.T) {
		_, err := ApplyUpdate(base, models.SlotUpdate{EndTime: strPtr("09:20")})
		assertRule(t, err, RuleMinDuration)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := ApplyUpdate(base, models.SlotUpdate{StartTime: strPtr("nine")})
		assertRule(t, err, RuleInvalidTime)
	})
}

func TestGroupByDay(t *testing.T) {
	all := []models.TimeSlot{
		{ID: "1", Day: "Monday", StartTime: "13:00", EndTime: "14:00"},
		{ID: "2", Day: "Monday", StartTime: "09:00", EndTime: "10:00", Status: models.SlotBlocked},
		{ID: "3", Day: "Friday", StartTime: "08:00", EndTime: "09:00"},
	}

	grouped, total := GroupByDay(all, nil)
	if total != 3 || len(grouped) != 2 {
		t.Fatalf("expected 3 slots over 2 days, got %d over %d", total, len(grouped))
	}
	if grouped["Monday"][0].ID != "2" {
		t.Errorf("expected Monday ordered by start time, got %+v", grouped["Monday"])
	}
	if _, ok := grouped["Tuesday"]; ok {
		t.Error("empty days must be omitted")
	}

	avail, total := GroupByDay(all, isAvailable)
	if total != 2 || len(avail["Monday"]) != 1 || len(avail["Friday"]) != 1 {
		t.Errorf("unexpected available grouping: %v (%d)", avail, total)
	}
}

package models

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestSlotStatusJSON(t *testing.T) {
	slot := TimeSlot{ID: "s1", Day: "Monday", StartTime: "09:00", EndTime: "10:00", Status: SlotBlocked}
	data, err := json.Marshal(slot)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"id":"s1","day":"Monday","startTime":"09:00","endTime":"10:00","isAvailable":false}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}

	var decoded TimeSlot
	if err := json.Unmarshal([]byte(`{"isAvailable":true}`), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Status != SlotAvailable {
		t.Errorf("expected available, got %s", decoded.Status)
	}

	if err := json.Unmarshal([]byte(`{"isAvailable":"yes"}`), &decoded); err == nil {
		t.Error("expected non-boolean isAvailable to be rejected")
	}
}

func TestSlotStatusBSON(t *testing.T) {
	data, err := bson.Marshal(TimeSlot{ID: "s1", Status: SlotBlocked})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	raw := bson.Raw(data)
	if v, ok := raw.Lookup("isAvailable").BooleanOK(); !ok || v {
		t.Errorf("expected stored boolean false, got %v", raw.Lookup("isAvailable"))
	}

	var back TimeSlot
	if err := bson.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Status != SlotBlocked {
		t.Errorf("expected blocked, got %s", back.Status)
	}
}

func TestIsWeekday(t *testing.T) {
	for _, day := range Weekdays {
		if !IsWeekday(day) {
			t.Errorf("%s should be a weekday", day)
		}
	}
	for _, day := range []string{"monday", "Mon", "", "Funday"} {
		if IsWeekday(day) {
			t.Errorf("%q should not be a weekday", day)
		}
	}
}

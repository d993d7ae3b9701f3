package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Weekdays lists the canonical day names a slot may recur on, Monday first.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// IsWeekday reports whether day is one of the canonical names (case-sensitive).
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// SlotStatus is the booking state of a recurring slot.
// On the wire it is the boolean "isAvailable".
type SlotStatus int

const (
	SlotAvailable SlotStatus = iota
	SlotBlocked
)

// StatusFromAvailable maps the wire boolean onto a SlotStatus.
func StatusFromAvailable(available bool) SlotStatus {
	if available {
		return SlotAvailable
	}
	return SlotBlocked
}

func (s SlotStatus) IsAvailable() bool {
	return s == SlotAvailable
}

func (s SlotStatus) String() string {
	switch s {
	case SlotAvailable:
		return "available"
	case SlotBlocked:
		return "blocked"
	default:
		return fmt.Sprintf("SlotStatus(%d)", int(s))
	}
}

func (s SlotStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IsAvailable())
}

func (s *SlotStatus) UnmarshalJSON(data []byte) error {
	var available bool
	if err := json.Unmarshal(data, &available); err != nil {
		return fmt.Errorf("isAvailable must be a boolean: %w", err)
	}
	*s = StatusFromAvailable(available)
	return nil
}

func (s SlotStatus) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(s.IsAvailable())
}

func (s *SlotStatus) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	available, ok := raw.BooleanOK()
	if !ok {
		return fmt.Errorf("isAvailable: expected boolean, got %s", t)
	}
	*s = StatusFromAvailable(available)
	return nil
}

// TimeSlot is a weekly recurring window owned by a doctor's profile.
type TimeSlot struct {
	ID        string     `bson:"id" json:"id"`
	Day       string     `bson:"day" json:"day"`
	StartTime string     `bson:"startTime" json:"startTime"` // "HH:MM", 24h, no timezone
	EndTime   string     `bson:"endTime" json:"endTime"`     // exclusive
	Status    SlotStatus `bson:"isAvailable" json:"isAvailable"`
}

// SlotInput is one entry of an add-slots request.
type SlotInput struct {
	Day         string `json:"day"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable *bool  `json:"isAvailable,omitempty"` // defaults to true
}

// AddSlotsRequest defines the payload for POST /doctor/slots.
type AddSlotsRequest struct {
	Slots []SlotInput `json:"slots" binding:"required"`
}

// SlotUpdate is a partial update; nil fields keep their stored value.
type SlotUpdate struct {
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// ChangesTime reports whether the update touches either time field.
func (u SlotUpdate) ChangesTime() bool {
	return u.StartTime != nil || u.EndTime != nil
}

// AddSlotsResult is returned after a successful batch insert.
type AddSlotsResult struct {
	TotalSlots int        `json:"totalSlots"`
	NewSlots   []TimeSlot `json:"newSlots"`
}

// SlotsOverview is the doctor's own view of the schedule.
type SlotsOverview struct {
	TotalSlots int                   `json:"totalSlots"`
	SlotsByDay map[string][]TimeSlot `json:"slotsByDay"`
	AllSlots   []TimeSlot            `json:"allSlots"`
}

// DoctorSummary is the public part of a doctor profile shown next to availability.
type DoctorSummary struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Specialization  string  `json:"specialization"`
	ConsultationFee float64 `json:"consultationFee"`
	Rating          float64 `json:"rating"`
}

// AvailableSlotsResponse is what patients see when browsing a doctor's schedule.
type AvailableSlotsResponse struct {
	Doctor              DoctorSummary         `json:"doctor"`
	AvailableSlots      map[string][]TimeSlot `json:"availableSlots"`
	TotalAvailableSlots int                   `json:"totalAvailableSlots"`
}

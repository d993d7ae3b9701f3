package slots

import (
	"context"

	"medibook/models"
)

// SlotStore manages a doctor's weekly recurring availability.
type SlotStore interface {
	AddSlots(ctx context.Context, actor models.Actor, inputs []models.SlotInput) (*models.AddSlotsResult, error)
	GetSlots(ctx context.Context, actor models.Actor) (*models.SlotsOverview, error)
	UpdateSlot(ctx context.Context, actor models.Actor, slotID string, upd models.SlotUpdate) (*models.TimeSlot, error)
	DeleteSlot(ctx context.Context, actor models.Actor, slotID string) (int, error)
	QueryAvailableSlots(ctx context.Context, doctorID string) (*models.AvailableSlotsResponse, error)
}

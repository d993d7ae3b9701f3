package slots

import (
	"context"
	"errors"
	"fmt"

	doctorRepo "medibook/database/repository/doctor"
	userRepo "medibook/database/repository/user"
	"medibook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxWriteAttempts bounds the re-read/re-apply loop on version conflicts.
const maxWriteAttempts = 3

// Store is the production SlotStore backed by the doctor repository.
type Store struct {
	Doctors doctorRepo.DoctorRepository
	Users   userRepo.UserRepository
	Locker  Locker
	Logger  *zap.Logger
	NewID   func() string
}

func NewStore(doctors doctorRepo.DoctorRepository, users userRepo.UserRepository, locker Locker, logger *zap.Logger) *Store {
	if locker == nil {
		locker = NewMemoryLocker()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		Doctors: doctors,
		Users:   users,
		Locker:  locker,
		Logger:  logger,
		NewID:   uuid.NewString,
	}
}

// AddSlots validates the whole batch, then appends it to the doctor's schedule.
func (s *Store) AddSlots(ctx context.Context, actor models.Actor, inputs []models.SlotInput) (*models.AddSlotsResult, error) {
	if err := requireDoctor(actor); err != nil {
		return nil, err
	}
	validated, err := ValidateSlotInputs(inputs)
	if err != nil {
		return nil, err
	}

	var result *models.AddSlotsResult
	err = s.mutate(ctx, actor.ID, func(current []models.TimeSlot) ([]models.TimeSlot, error) {
		if err := CheckOverlap(current, validated, ""); err != nil {
			return nil, err
		}
		added := make([]models.TimeSlot, len(validated))
		for i, slot := range validated {
			slot.ID = s.NewID()
			added[i] = slot
		}
		next := append(cloneSlots(current), added...)
		result = &models.AddSlotsResult{TotalSlots: len(next), NewSlots: added}
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("slots added",
		zap.String("userID", actor.ID),
		zap.Int("added", len(result.NewSlots)),
		zap.Int("total", result.TotalSlots))
	return result, nil
}

// GetSlots returns the doctor's full schedule, blocked slots included.
func (s *Store) GetSlots(ctx context.Context, actor models.Actor) (*models.SlotsOverview, error) {
	if err := requireDoctor(actor); err != nil {
		return nil, err
	}
	doctor, err := s.doctorForUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	grouped, _ := GroupByDay(doctor.TimeSlots, nil)
	return &models.SlotsOverview{
		TotalSlots: len(doctor.TimeSlots),
		SlotsByDay: grouped,
		AllSlots:   cloneSlots(doctor.TimeSlots),
	}, nil
}

// UpdateSlot applies a partial update. Overlap is only re-checked when a time field changes.
func (s *Store) UpdateSlot(ctx context.Context, actor models.Actor, slotID string, upd models.SlotUpdate) (*models.TimeSlot, error) {
	if err := requireDoctor(actor); err != nil {
		return nil, err
	}

	var updated models.TimeSlot
	err := s.mutate(ctx, actor.ID, func(current []models.TimeSlot) ([]models.TimeSlot, error) {
		idx := indexOfSlot(current, slotID)
		if idx < 0 {
			return nil, &NotFoundError{Resource: "slot", ID: slotID}
		}
		slot, err := ApplyUpdate(current[idx], upd)
		if err != nil {
			return nil, err
		}
		if upd.ChangesTime() {
			if err := CheckOverlap(current, []models.TimeSlot{slot}, slotID); err != nil {
				return nil, err
			}
		}
		next := cloneSlots(current)
		next[idx] = slot
		updated = slot
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("slot updated",
		zap.String("userID", actor.ID),
		zap.String("slotID", slotID),
		zap.Stringer("status", updated.Status))
	return &updated, nil
}

// DeleteSlot removes one slot and returns how many remain.
func (s *Store) DeleteSlot(ctx context.Context, actor models.Actor, slotID string) (int, error) {
	if err := requireDoctor(actor); err != nil {
		return 0, err
	}

	remaining := 0
	err := s.mutate(ctx, actor.ID, func(current []models.TimeSlot) ([]models.TimeSlot, error) {
		next := make([]models.TimeSlot, 0, len(current))
		for _, slot := range current {
			if slot.ID != slotID {
				next = append(next, slot)
			}
		}
		if len(next) == len(current) {
			return nil, &NotFoundError{Resource: "slot", ID: slotID}
		}
		remaining = len(next)
		return next, nil
	})
	if err != nil {
		return 0, err
	}

	s.Logger.Info("slot deleted", zap.String("userID", actor.ID), zap.String("slotID", slotID))
	return remaining, nil
}

// QueryAvailableSlots is the patient-facing view: only approved doctors with an
// active account, and only slots that are not blocked.
func (s *Store) QueryAvailableSlots(ctx context.Context, doctorID string) (*models.AvailableSlotsResponse, error) {
	doctor, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			return nil, &NotFoundError{Resource: "doctor", ID: doctorID}
		}
		return nil, &StorageError{Op: "load doctor", Err: err}
	}

	if !doctor.IsApproved {
		return nil, &UnavailableError{DoctorID: doctorID, Reason: "not approved"}
	}
	account, err := s.Users.GetByID(ctx, doctor.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, &UnavailableError{DoctorID: doctorID, Reason: "account missing"}
		}
		return nil, &StorageError{Op: "load doctor account", Err: err}
	}
	if !account.IsActive {
		return nil, &UnavailableError{DoctorID: doctorID, Reason: "account inactive"}
	}

	grouped, total := GroupByDay(doctor.TimeSlots, isAvailable)
	return &models.AvailableSlotsResponse{
		Doctor: models.DoctorSummary{
			ID:              doctor.ID,
			Name:            account.Name,
			Specialization:  doctor.Specialization,
			ConsultationFee: doctor.ConsultationFee,
			Rating:          doctor.Rating,
		},
		AvailableSlots:      grouped,
		TotalAvailableSlots: total,
	}, nil
}

// mutate runs a read-modify-write of the schedule under the doctor's lock.
// apply must be pure: on a version conflict it is called again with fresh data.
func (s *Store) mutate(ctx context.Context, userID string, apply func(current []models.TimeSlot) ([]models.TimeSlot, error)) error {
	doctor, err := s.doctorForUser(ctx, userID)
	if err != nil {
		return err
	}
	doctorID := doctor.ID

	err = s.Locker.WithDoctorLock(ctx, doctorID, func(ctx context.Context) error {
		for attempt := 1; ; attempt++ {
			current, err := s.Doctors.GetByID(ctx, doctorID)
			if err != nil {
				if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
					return &NotFoundError{Resource: "doctor profile"}
				}
				return &StorageError{Op: "load doctor", Err: err}
			}

			next, err := apply(current.TimeSlots)
			if err != nil {
				return err
			}

			_, err = s.Doctors.ReplaceSlots(ctx, doctorID, current.SlotsVersion, next)
			switch {
			case err == nil:
				return nil
			case errors.Is(err, doctorRepo.ErrDoctorNotFound):
				return &NotFoundError{Resource: "doctor profile"}
			case errors.Is(err, doctorRepo.ErrVersionConflict) && attempt < maxWriteAttempts:
				s.Logger.Warn("schedule version conflict, retrying",
					zap.String("doctorID", doctorID), zap.Int("attempt", attempt))
				continue
			case errors.Is(err, doctorRepo.ErrVersionConflict):
				return fmt.Errorf("save schedule after %d attempts: %w", attempt, err)
			default:
				return &StorageError{Op: "save schedule", Err: err}
			}
		}
	})
	if errors.Is(err, ErrLockNotAcquired) {
		s.Logger.Warn("doctor lock busy", zap.String("doctorID", doctorID))
	}
	return err
}

func (s *Store) doctorForUser(ctx context.Context, userID string) (*models.Doctor, error) {
	doctor, err := s.Doctors.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			return nil, &NotFoundError{Resource: "doctor profile"}
		}
		return nil, &StorageError{Op: "load doctor profile", Err: err}
	}
	return doctor, nil
}

func requireDoctor(actor models.Actor) error {
	if actor.Role != models.RoleDoctor {
		return &AuthorizationError{Role: actor.Role}
	}
	return nil
}

func indexOfSlot(slots []models.TimeSlot, id string) int {
	for i, slot := range slots {
		if slot.ID == id {
			return i
		}
	}
	return -1
}

func cloneSlots(slots []models.TimeSlot) []models.TimeSlot {
	out := make([]models.TimeSlot, len(slots))
	copy(out, slots)
	return out
}

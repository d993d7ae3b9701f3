package doctor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"

	"go.uber.org/zap"
)

// GetProfile returns the doctor profile owned by the calling account.
func (s *DefaultDoctorService) GetProfile(ctx context.Context, actor models.Actor) (*models.Doctor, error) {
	if actor.Role != models.RoleDoctor {
		return nil, ErrNotDoctorAccount
	}
	doc, err := s.Repo.GetByUserID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load doctor profile: %w", err)
	}
	return doc, nil
}

// UpsertProfile creates the caller's profile on first use and updates the editable
// fields afterwards. The boolean result is true when a profile was created.
// New profiles start unapproved with an empty schedule.
func (s *DefaultDoctorService) UpsertProfile(ctx context.Context, actor models.Actor, input models.DoctorProfileInput) (*models.Doctor, bool, error) {
	if actor.Role != models.RoleDoctor {
		return nil, false, ErrNotDoctorAccount
	}
	if err := validateProfile(input); err != nil {
		return nil, false, err
	}

	existing, err := s.Repo.GetByUserID(ctx, actor.ID)
	switch {
	case errors.Is(err, doctorRepo.ErrDoctorNotFound):
		return s.createProfile(ctx, actor.ID, input)
	case err != nil:
		return nil, false, fmt.Errorf("failed to load doctor profile: %w", err)
	}

	fields := doctorRepo.ProfileFields{
		Specialization:  existing.Specialization,
		ConsultationFee: existing.ConsultationFee,
		ExperienceYears: existing.ExperienceYears,
		Bio:             existing.Bio,
	}
	if v := strings.TrimSpace(input.Specialization); v != "" {
		fields.Specialization = v
	}
	if input.ConsultationFee != nil {
		fields.ConsultationFee = *input.ConsultationFee
	}
	if input.ExperienceYears != nil {
		fields.ExperienceYears = *input.ExperienceYears
	}
	if input.Bio != nil {
		fields.Bio = strings.TrimSpace(*input.Bio)
	}

	updated, err := s.Repo.UpdateProfile(ctx, existing.ID, fields)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update doctor profile: %w", err)
	}
	s.Logger.Info("doctor profile updated", zap.String("doctorID", existing.ID))
	return updated, false, nil
}

func (s *DefaultDoctorService) createProfile(ctx context.Context, userID string, input models.DoctorProfileInput) (*models.Doctor, bool, error) {
	specialization := strings.TrimSpace(input.Specialization)
	if specialization == "" {
		return nil, false, &ProfileError{Field: "specialization", Reason: "is required"}
	}

	now := time.Now().UTC()
	doc := &models.Doctor{
		ID:             s.NewID(),
		UserID:         userID,
		Specialization: specialization,
		TimeSlots:      []models.TimeSlot{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if input.ConsultationFee != nil {
		doc.ConsultationFee = *input.ConsultationFee
	}
	if input.ExperienceYears != nil {
		doc.ExperienceYears = *input.ExperienceYears
	}
	if input.Bio != nil {
		doc.Bio = strings.TrimSpace(*input.Bio)
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return nil, false, fmt.Errorf("failed to create doctor profile: %w", err)
	}
	s.Logger.Info("doctor profile created", zap.String("doctorID", doc.ID), zap.String("userID", userID))
	return doc, true, nil
}

func validateProfile(input models.DoctorProfileInput) error {
	if input.ConsultationFee != nil && *input.ConsultationFee < 0 {
		return &ProfileError{Field: "consultationFee", Reason: "must not be negative"}
	}
	if input.ExperienceYears != nil && (*input.ExperienceYears < 0 || *input.ExperienceYears > 80) {
		return &ProfileError{Field: "experienceYears", Reason: "must be between 0 and 80"}
	}
	if input.Bio != nil && len(*input.Bio) > 2000 {
		return &ProfileError{Field: "bio", Reason: "must be at most 2000 characters"}
	}
	return nil
}

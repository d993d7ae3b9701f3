package doctor

import (
	"context"
	"errors"
	"fmt"
	"time"

	doctorRepo "medibook/database/repository/doctor"
	userRepo "medibook/database/repository/user"
	"medibook/models"

	"go.uber.org/zap"
)

// ListDoctors joins every doctor profile with its account for the admin directory.
func (s *DefaultDoctorService) ListDoctors(ctx context.Context) ([]models.DoctorListing, error) {
	doctors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	ids := make([]string, 0, len(doctors))
	for _, d := range doctors {
		ids = append(ids, d.UserID)
	}
	accounts, err := s.Users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load doctor accounts: %w", err)
	}

	listings := make([]models.DoctorListing, 0, len(doctors))
	for _, d := range doctors {
		listings = append(listings, listingOf(d, accounts[d.UserID]))
	}
	return listings, nil
}

// SetApproval grants or revokes a doctor's approval. Unapproved doctors are
// hidden from patient availability queries.
func (s *DefaultDoctorService) SetApproval(ctx context.Context, doctorID string, approved bool) (*models.Doctor, error) {
	doc, err := s.Repo.SetApproval(ctx, doctorID, approved, time.Now().UTC())
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to update approval: %w", err)
	}
	s.Logger.Info("doctor approval changed", zap.String("doctorID", doctorID), zap.Bool("approved", approved))
	return doc, nil
}

// SetAccountActive toggles the account behind a doctor profile and returns the
// refreshed directory entry.
func (s *DefaultDoctorService) SetAccountActive(ctx context.Context, doctorID string, active bool) (*models.DoctorListing, error) {
	doc, err := s.Repo.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to load doctor: %w", err)
	}
	if err := s.Users.SetActive(ctx, doc.UserID, active); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to update account status: %w", err)
	}
	account, err := s.Users.GetByID(ctx, doc.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload account: %w", err)
	}
	s.Logger.Info("doctor account status changed", zap.String("doctorID", doctorID), zap.Bool("active", active))

	listing := listingOf(*doc, *account)
	return &listing, nil
}

func listingOf(d models.Doctor, account models.User) models.DoctorListing {
	return models.DoctorListing{
		ID:              d.ID,
		UserID:          d.UserID,
		Name:            account.Name,
		Email:           account.Email,
		IsActive:        account.IsActive,
		Specialization:  d.Specialization,
		ConsultationFee: d.ConsultationFee,
		Rating:          d.Rating,
		IsApproved:      d.IsApproved,
		TotalSlots:      len(d.TimeSlots),
	}
}

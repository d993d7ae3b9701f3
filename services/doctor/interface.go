package doctor

import (
	"context"

	doctorRepo "medibook/database/repository/doctor"
	userRepo "medibook/database/repository/user"
	"medibook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DoctorService interface {
	// Profile
	GetProfile(ctx context.Context, actor models.Actor) (*models.Doctor, error)
	UpsertProfile(ctx context.Context, actor models.Actor, input models.DoctorProfileInput) (*models.Doctor, bool, error)

	// Admin
	ListDoctors(ctx context.Context) ([]models.DoctorListing, error)
	SetApproval(ctx context.Context, doctorID string, approved bool) (*models.Doctor, error)
	SetAccountActive(ctx context.Context, doctorID string, active bool) (*models.DoctorListing, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo   doctorRepo.DoctorRepository
	Users  userRepo.UserRepository
	Logger *zap.Logger
	NewID  func() string
}

func NewDefaultDoctorService(repo doctorRepo.DoctorRepository, users userRepo.UserRepository, logger *zap.Logger) *DefaultDoctorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultDoctorService{
		Repo:   repo,
		Users:  users,
		Logger: logger,
		NewID:  uuid.NewString,
	}
}

// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"context"
	"errors"
	"time"

	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrDoctorNotFound is returned when no doctor profile matches the lookup.
	ErrDoctorNotFound = errors.New("doctor not found")
	// ErrVersionConflict is returned by ReplaceSlots when the schedule changed since it was read.
	ErrVersionConflict = errors.New("doctor schedule was modified concurrently")
)

// ProfileFields are the editable profile columns written by UpdateProfile.
type ProfileFields struct {
	Specialization  string
	ConsultationFee float64
	ExperienceYears int
	Bio             string
}

type DoctorRepository interface {
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetByUserID(ctx context.Context, userID string) (*models.Doctor, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) error
	UpdateProfile(ctx context.Context, id string, fields ProfileFields) (*models.Doctor, error)
	SetApproval(ctx context.Context, id string, approved bool, at time.Time) (*models.Doctor, error)
	// ReplaceSlots writes the whole schedule only if slotsVersion still equals
	// expectedVersion, and returns the new version.
	ReplaceSlots(ctx context.Context, id string, expectedVersion int, slots []models.TimeSlot) (int, error)
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a DoctorRepository on the "doctors" collection of db.
func NewMongoDoctorRepo(db *mongo.Database) DoctorRepository {
	return &mongoDoctorRepo{
		coll: db.Collection("doctors"),
	}
}

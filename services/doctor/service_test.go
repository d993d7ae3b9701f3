package doctor

import (
	"context"
	"errors"
	"testing"
	"time"

	doctorRepo "medibook/database/repository/doctor"
	userRepo "medibook/database/repository/user"
	"medibook/models"
)

type fakeDoctorRepo struct {
	doctors map[string]*models.Doctor
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, doctorRepo.ErrDoctorNotFound
	}
	out := *d
	return &out, nil
}

func (f *fakeDoctorRepo) GetByUserID(_ context.Context, userID string) (*models.Doctor, error) {
	for _, d := range f.doctors {
		if d.UserID == userID {
			out := *d
			return &out, nil
		}
	}
	return nil, doctorRepo.ErrDoctorNotFound
}

func (f *fakeDoctorRepo) GetAll(_ context.Context) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range f.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDoctorRepo) Create(_ context.Context, d *models.Doctor) error {
	stored := *d
	f.doctors[d.ID] = &stored
	return nil
}

func (f *fakeDoctorRepo) UpdateProfile(_ context.Context, id string, fields doctorRepo.ProfileFields) (*models.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, doctorRepo.ErrDoctorNotFound
	}
	d.Specialization = fields.Specialization
	d.ConsultationFee = fields.ConsultationFee
	d.ExperienceYears = fields.ExperienceYears
	d.Bio = fields.Bio
	out := *d
	return &out, nil
}

func (f *fakeDoctorRepo) SetApproval(_ context.Context, id string, approved bool, at time.Time) (*models.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, doctorRepo.ErrDoctorNotFound
	}
	d.IsApproved = approved
	d.ApprovedAt = nil
	if approved {
		d.ApprovedAt = &at
	}
	out := *d
	return &out, nil
}

func (f *fakeDoctorRepo) ReplaceSlots(_ context.Context, id string, expectedVersion int, slots []models.TimeSlot) (int, error) {
	return 0, errors.New("not used")
}

type fakeUserRepo struct {
	users map[string]models.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeUserRepo) GetByIDs(_ context.Context, ids []string) (map[string]models.User, error) {
	out := make(map[string]models.User)
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, id string, active bool) error {
	u, ok := f.users[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	u.IsActive = active
	f.users[id] = u
	return nil
}

func newTestService() (*DefaultDoctorService, *fakeDoctorRepo, *fakeUserRepo) {
	doctors := &fakeDoctorRepo{doctors: map[string]*models.Doctor{}}
	users := &fakeUserRepo{users: map[string]models.User{
		"u-1": {ID: "u-1", Name: "Dr. Lena Park", Email: "lena@example.com", Role: models.RoleDoctor, IsActive: true},
	}}
	svc := NewDefaultDoctorService(doctors, users, nil)
	svc.NewID = func() string { return "doc-1" }
	return svc, doctors, users
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }

var lena = models.Actor{ID: "u-1", Role: models.RoleDoctor}

func TestUpsertProfileCreatesThenUpdates(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, isNew, err := svc.UpsertProfile(ctx, lena, models.DoctorProfileInput{
		Specialization:  " Dermatology ",
		ConsultationFee: floatPtr(45),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !isNew || created.ID != "doc-1" || created.Specialization != "Dermatology" {
		t.Fatalf("unexpected created profile %+v (new=%v)", created, isNew)
	}
	if created.IsApproved || len(created.TimeSlots) != 0 {
		t.Error("new profiles start unapproved with no slots")
	}

	updated, isNew, err := svc.UpsertProfile(ctx, lena, models.DoctorProfileInput{
		ExperienceYears: intPtr(12),
		Bio:             strPtr("Skin health"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if isNew {
		t.Error("second upsert must update")
	}
	if updated.Specialization != "Dermatology" || updated.ConsultationFee != 45 || updated.ExperienceYears != 12 || updated.Bio != "Skin health" {
		t.Errorf("partial update lost fields: %+v", updated)
	}
}

func TestUpsertProfileValidation(t *testing.T) {
	tests := []struct {
		name  string
		input models.DoctorProfileInput
		field string
	}{
		{"missing specialization", models.DoctorProfileInput{}, "specialization"},
		{"negative fee", models.DoctorProfileInput{Specialization: "GP", ConsultationFee: floatPtr(-1)}, "consultationFee"},
		{"experience out of range", models.DoctorProfileInput{Specialization: "GP", ExperienceYears: intPtr(99)}, "experienceYears"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService()
			_, _, err := svc.UpsertProfile(context.Background(), lena, tt.input)
			var perr *ProfileError
			if !errors.As(err, &perr) || perr.Field != tt.field {
				t.Fatalf("expected ProfileError on %s, got %v", tt.field, err)
			}
		})
	}
}

func TestProfileRequiresDoctorAccount(t *testing.T) {
	svc, _, _ := newTestService()
	patient := models.Actor{ID: "u-2", Role: models.RolePatient}

	if _, err := svc.GetProfile(context.Background(), patient); !errors.Is(err, ErrNotDoctorAccount) {
		t.Errorf("GetProfile: expected ErrNotDoctorAccount, got %v", err)
	}
	if _, _, err := svc.UpsertProfile(context.Background(), patient, models.DoctorProfileInput{Specialization: "GP"}); !errors.Is(err, ErrNotDoctorAccount) {
		t.Errorf("UpsertProfile: expected ErrNotDoctorAccount, got %v", err)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.GetProfile(context.Background(), lena); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestAdminOperations(t *testing.T) {
	svc, doctors, users := newTestService()
	ctx := context.Background()
	doctors.doctors["doc-1"] = &models.Doctor{
		ID:             "doc-1",
		UserID:         "u-1",
		Specialization: "Neurology",
		TimeSlots:      []models.TimeSlot{{ID: "s1", Day: "Monday", StartTime: "09:00", EndTime: "10:00"}},
	}

	listings, err := svc.ListDoctors(ctx)
	if err != nil {
		t.Fatalf("ListDoctors: %v", err)
	}
	if len(listings) != 1 || listings[0].Name != "Dr. Lena Park" || listings[0].TotalSlots != 1 || listings[0].IsApproved {
		t.Fatalf("unexpected listings %+v", listings)
	}

	approved, err := svc.SetApproval(ctx, "doc-1", true)
	if err != nil {
		t.Fatalf("SetApproval: %v", err)
	}
	if !approved.IsApproved || approved.ApprovedAt == nil {
		t.Errorf("expected approval timestamp, got %+v", approved)
	}

	listing, err := svc.SetAccountActive(ctx, "doc-1", false)
	if err != nil {
		t.Fatalf("SetAccountActive: %v", err)
	}
	if users.users["u-1"].IsActive || listing.IsActive || listing.UserID != "u-1" {
		t.Errorf("expected account to be deactivated, got %+v", listing)
	}

	if _, err := svc.SetApproval(ctx, "missing", true); !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("expected ErrDoctorNotFound, got %v", err)
	}
	if _, err := svc.SetAccountActive(ctx, "missing", true); !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("expected ErrDoctorNotFound, got %v", err)
	}
}

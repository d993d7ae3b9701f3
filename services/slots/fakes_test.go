package slots

import (
	"context"
	"sync"
	"time"

	doctorRepo "medibook/database/repository/doctor"
	userRepo "medibook/database/repository/user"
	"medibook/models"
)

// -- In-memory repositories --

type fakeDoctorRepo struct {
	mu        sync.Mutex
	doctors   map[string]*models.Doctor
	conflicts int // number of upcoming ReplaceSlots calls forced to conflict
	writes    int
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[string]*models.Doctor)}
}

func (f *fakeDoctorRepo) put(d models.Doctor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if d.TimeSlots == nil {
		d.TimeSlots = []models.TimeSlot{}
	}
	f.doctors[d.ID] = &d
}

func (f *fakeDoctorRepo) copyOf(d *models.Doctor) *models.Doctor {
	out := *d
	out.TimeSlots = append([]models.TimeSlot{}, d.TimeSlots...)
	return &out
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.doctors[id]
	if !ok {
		return nil, doctorRepo.ErrDoctorNotFound
	}
	return f.copyOf(d), nil
}

func (f *fakeDoctorRepo) GetByUserID(_ context.Context, userID string) (*models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.doctors {
		if d.UserID == userID {
			return f.copyOf(d), nil
		}
	}
	return nil, doctorRepo.ErrDoctorNotFound
}

func (f *fakeDoctorRepo) GetAll(_ context.Context) ([]models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Doctor
	for _, d := range f.doctors {
		out = append(out, *f.copyOf(d))
	}
	return out, nil
}

func (f *fakeDoctorRepo) Create(_ context.Context, d *models.Doctor) error {
	f.put(*d)
	return nil
}

func (f *fakeDoctorRepo) UpdateProfile(_ context.Context, id string, fields doctorRepo.ProfileFields) (*models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.doctors[id]
	if !ok {
		return nil, doctorRepo.ErrDoctorNotFound
	}
	d.Specialization = fields.Specialization
	d.ConsultationFee = fields.ConsultationFee
	d.ExperienceYears = fields.ExperienceYears
	d.Bio = fields.Bio
	return f.copyOf(d), nil
}

func (f *fakeDoctorRepo) SetApproval(_ context.Context, id string, approved bool, at time.Time) (*models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.doctors[id]
	if !ok {
		return nil, doctorRepo.ErrDoctorNotFound
	}
	d.IsApproved = approved
	return f.copyOf(d), nil
}

func (f *fakeDoctorRepo) ReplaceSlots(_ context.Context, id string, expectedVersion int, slots []models.TimeSlot) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.doctors[id]
	if !ok {
		return 0, doctorRepo.ErrDoctorNotFound
	}
	if f.conflicts > 0 {
		f.conflicts--
		d.SlotsVersion++ // someone else wrote in between
		return 0, doctorRepo.ErrVersionConflict
	}
	if d.SlotsVersion != expectedVersion {
		return 0, doctorRepo.ErrVersionConflict
	}
	d.TimeSlots = append([]models.TimeSlot{}, slots...)
	d.SlotsVersion++
	f.writes++
	return d.SlotsVersion, nil
}

type fakeUserRepo struct {
	users map[string]models.User
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]models.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
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

// Command seed fills a development database with accounts, doctor profiles and
// weekly schedules, then prints bearer tokens for trying the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"medibook/config"
	"medibook/database"
	doctorRepoPkg "medibook/database/repository/doctor"
	userRepoPkg "medibook/database/repository/user"
	"medibook/models"
	"medibook/services/slots"
	"medibook/utils"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var specialties = []string{
	"Dermatology",
	"Cardiology",
	"General Practice",
	"Orthopedics",
	"Endocrinology",
	"Neurology",
	"Pediatrics",
	"Psychiatry",
	"Ophthalmology",
	"ENT",
}

// weekly templates a seeded doctor picks from; all windows are disjoint per day
var templates = [][]models.SlotInput{
	{
		{Day: "Monday", StartTime: "09:00", EndTime: "12:00"},
		{Day: "Monday", StartTime: "13:00", EndTime: "17:00"},
		{Day: "Wednesday", StartTime: "09:00", EndTime: "12:00"},
		{Day: "Friday", StartTime: "14:00", EndTime: "16:30"},
	},
	{
		{Day: "Tuesday", StartTime: "08:00", EndTime: "08:30"},
		{Day: "Tuesday", StartTime: "08:30", EndTime: "09:00"},
		{Day: "Thursday", StartTime: "10:00", EndTime: "14:00"},
		{Day: "Saturday", StartTime: "09:00", EndTime: "11:00"},
	},
	{
		{Day: "Monday", StartTime: "18:00", EndTime: "21:00"},
		{Day: "Sunday", StartTime: "10:00", EndTime: "12:00"},
	},
}

func main() {
	doctors := flag.Int("doctors", 20, "number of doctor accounts to create")
	patients := flag.Int("patients", 50, "number of patient accounts to create")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	config.LoadConfig()
	if config.AppConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required to print tokens")
	}
	utils.InitJWT(config.AppConfig.JWTSecret)

	database.InitDB()
	defer func() { _ = database.Close(context.Background()) }()

	db := database.Database()
	ctx := context.Background()
	if err := doctorRepoPkg.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("ensure doctor indexes: %v", err)
	}
	users := userRepoPkg.NewMongoUserRepo(db)
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo(db)
	store := slots.NewStore(doctorRepo, users, slots.NewMemoryLocker(), zap.NewNop())

	gofakeit.Seed(0)

	admin, err := seedUser(ctx, users, models.RoleAdmin)
	if err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	var firstDoctor, firstPatient *models.User
	for i := 0; i < *doctors; i++ {
		u, err := seedDoctor(ctx, users, doctorRepo, store, i)
		if err != nil {
			log.Fatalf("seed doctor %d: %v", i, err)
		}
		if firstDoctor == nil {
			firstDoctor = u
		}
	}
	for i := 0; i < *patients; i++ {
		u, err := seedUser(ctx, users, models.RolePatient)
		if err != nil {
			log.Fatalf("seed patient %d: %v", i, err)
		}
		if firstPatient == nil {
			firstPatient = u
		}
	}

	log.Printf("seeded 1 admin, %d doctors, %d patients", *doctors, *patients)
	for _, u := range []*models.User{admin, firstDoctor, firstPatient} {
		if u == nil {
			continue
		}
		token, err := utils.GenerateToken(u.ID, u.Role, config.AppConfig.TokenTTL)
		if err != nil {
			log.Fatalf("generate token: %v", err)
		}
		fmt.Printf("%-8s %s <%s>\n  Bearer %s\n", u.Role, u.Name, u.Email, token)
	}
	log.Println("seed complete")
}

func seedUser(ctx context.Context, users userRepoPkg.UserRepository, role string) (*models.User, error) {
	u := &models.User{
		ID:       uuid.NewString(),
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Role:     role,
		IsActive: true,
	}
	if err := users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// seedDoctor creates the account and profile, then adds the schedule through the
// slot store so seeded data passes the same validation as API writes.
func seedDoctor(ctx context.Context, users userRepoPkg.UserRepository, doctors doctorRepoPkg.DoctorRepository, store slots.SlotStore, i int) (*models.User, error) {
	u, err := seedUser(ctx, users, models.RoleDoctor)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	profile := &models.Doctor{
		ID:              uuid.NewString(),
		UserID:          u.ID,
		Specialization:  specialties[gofakeit.Number(0, len(specialties)-1)],
		ConsultationFee: float64(gofakeit.Number(30, 150)),
		Rating:          float64(gofakeit.Number(30, 50)) / 10,
		ExperienceYears: gofakeit.Number(1, 35),
		IsApproved:      i%4 != 3, // every fourth doctor awaits approval
		TimeSlots:       []models.TimeSlot{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if profile.IsApproved {
		profile.ApprovedAt = &now
	}
	if err := doctors.Create(ctx, profile); err != nil {
		return nil, err
	}

	actor := models.Actor{ID: u.ID, Role: models.RoleDoctor}
	if _, err := store.AddSlots(ctx, actor, templates[i%len(templates)]); err != nil {
		return nil, fmt.Errorf("add slots: %w", err)
	}
	return u, nil
}

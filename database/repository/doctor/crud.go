// File: database/repository/doctor/crud.go
package doctorRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if doctor.TimeSlots == nil {
		doctor.TimeSlots = []models.TimeSlot{}
	}
	if _, err := r.coll.InsertOne(ctx, doctor); err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

func (r *mongoDoctorRepo) UpdateProfile(ctx context.Context, id string, fields ProfileFields) (*models.Doctor, error) {
	update := bson.M{"$set": bson.M{
		"specialization":  fields.Specialization,
		"consultationFee": fields.ConsultationFee,
		"experienceYears": fields.ExperienceYears,
		"bio":             fields.Bio,
		"updatedAt":       time.Now().UTC(),
	}}
	return r.findOneAndUpdate(ctx, bson.M{"id": id}, update)
}

func (r *mongoDoctorRepo) SetApproval(ctx context.Context, id string, approved bool, at time.Time) (*models.Doctor, error) {
	var update bson.M
	if approved {
		update = bson.M{"$set": bson.M{"isApproved": true, "approvedAt": at, "updatedAt": at}}
	} else {
		update = bson.M{
			"$set":   bson.M{"isApproved": false, "updatedAt": at},
			"$unset": bson.M{"approvedAt": ""},
		}
	}
	return r.findOneAndUpdate(ctx, bson.M{"id": id}, update)
}

// ReplaceSlots is a compare-and-swap on slotsVersion: a writer holding a stale
// copy of the schedule matches nothing and gets ErrVersionConflict.
func (r *mongoDoctorRepo) ReplaceSlots(ctx context.Context, id string, expectedVersion int, slots []models.TimeSlot) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slots == nil {
		slots = []models.TimeSlot{}
	}

	filter := bson.M{
		"id":           id,
		"slotsVersion": expectedVersion,
	}
	update := bson.M{
		"$set": bson.M{
			"timeSlots": slots,
			"updatedAt": time.Now().UTC(),
		},
		"$inc": bson.M{"slotsVersion": 1},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to write doctor schedule: %w", err)
	}
	if res.MatchedCount == 0 {
		// Distinguish a deleted profile from a lost race.
		count, err := r.coll.CountDocuments(ctx, bson.M{"id": id})
		if err != nil {
			return 0, fmt.Errorf("failed to check doctor existence: %w", err)
		}
		if count == 0 {
			return 0, ErrDoctorNotFound
		}
		return 0, ErrVersionConflict
	}
	return expectedVersion + 1, nil
}

func (r *mongoDoctorRepo) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doctor models.Doctor
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doctor); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}
	if doctor.TimeSlots == nil {
		doctor.TimeSlots = []models.TimeSlot{}
	}
	return &doctor, nil
}

package models

import "time"

// Doctor is the doctor profile document. The weekly schedule is embedded so a
// profile and its slots are always read and written together.
type Doctor struct {
	ID              string     `bson:"id" json:"id"`
	UserID          string     `bson:"userId" json:"userId"`
	Specialization  string     `bson:"specialization" json:"specialization"`
	ConsultationFee float64    `bson:"consultationFee" json:"consultationFee"`
	Rating          float64    `bson:"rating" json:"rating"`
	ExperienceYears int        `bson:"experienceYears" json:"experienceYears,omitempty"`
	Bio             string     `bson:"bio,omitempty" json:"bio,omitempty"`
	IsApproved      bool       `bson:"isApproved" json:"isApproved"`
	ApprovedAt      *time.Time `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	TimeSlots       []TimeSlot `bson:"timeSlots" json:"timeSlots"`
	SlotsVersion    int        `bson:"slotsVersion" json:"-"` // bumped on every schedule write
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// DoctorProfileInput carries the editable profile fields.
type DoctorProfileInput struct {
	Specialization  string   `json:"specialization"`
	ConsultationFee *float64 `json:"consultationFee,omitempty"`
	ExperienceYears *int     `json:"experienceYears,omitempty"`
	Bio             *string  `json:"bio,omitempty"`
}

// ApprovalRequest is the admin payload for granting or revoking approval.
type ApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// AccountStatusRequest is the admin payload for activating or deactivating a doctor account.
type AccountStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// DoctorListing is one row of the admin doctor directory.
type DoctorListing struct {
	ID              string  `json:"id"`
	UserID          string  `json:"userId"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	IsActive        bool    `json:"isActive"`
	Specialization  string  `json:"specialization"`
	ConsultationFee float64 `json:"consultationFee"`
	Rating          float64 `json:"rating"`
	IsApproved      bool    `json:"isApproved"`
	TotalSlots      int     `json:"totalSlots"`
}

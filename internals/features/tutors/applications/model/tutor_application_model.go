// file: internals/features/tutors/applications/model/tutor_application_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"tutorku_backend/internals/constants"
)

type TutorApplicationModel struct {
	// PK & FK
	TutorApplicationID uuid.UUID `json:"tutor_application_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:tutor_application_id"`
	// Satu aplikasi hidup per user — unique index partial ini sumber
	// kebenaran anti duplikat, pre-check di controller cuma fast path.
	TutorApplicationUserID uuid.UUID `json:"tutor_application_user_id" gorm:"type:uuid;not null;column:tutor_application_user_id;uniqueIndex:uq_tutor_applications_user,where:tutor_application_deleted_at IS NULL"`

	// Data diri
	TutorApplicationName  string `json:"tutor_application_name" gorm:"type:varchar(100);not null;column:tutor_application_name"`
	TutorApplicationEmail string `json:"tutor_application_email" gorm:"type:varchar(255);not null;column:tutor_application_email"`
	TutorApplicationPhone string `json:"tutor_application_phone" gorm:"type:varchar(20);not null;column:tutor_application_phone"`

	// Data mengajar
	TutorApplicationSubjects      pq.StringArray `json:"tutor_application_subjects" gorm:"type:text[];not null;column:tutor_application_subjects"`
	TutorApplicationQualification string         `json:"tutor_application_qualification" gorm:"type:varchar(20);not null;column:tutor_application_qualification"`
	TutorApplicationExperience    string         `json:"tutor_application_experience" gorm:"type:varchar(10);not null;column:tutor_application_experience"`
	TutorApplicationHourlyRate    float64        `json:"tutor_application_hourly_rate" gorm:"not null;column:tutor_application_hourly_rate"`
	TutorApplicationPreferredMode string         `json:"tutor_application_preferred_mode" gorm:"type:varchar(10);not null;column:tutor_application_preferred_mode"`
	TutorApplicationAvailability  string         `json:"tutor_application_availability" gorm:"type:varchar(500);not null;column:tutor_application_availability"`
	TutorApplicationBio           *string        `json:"tutor_application_bio,omitempty" gorm:"type:varchar(1000);column:tutor_application_bio"`

	// Status approval
	TutorApplicationStatus     string     `json:"tutor_application_status" gorm:"type:varchar(10);not null;default:'pending';column:tutor_application_status;index:idx_tutor_applications_status"`
	TutorApplicationApprovedAt *time.Time `json:"tutor_application_approved_at,omitempty" gorm:"column:tutor_application_approved_at"`
	TutorApplicationReviewedBy *uuid.UUID `json:"tutor_application_reviewed_by,omitempty" gorm:"type:uuid;column:tutor_application_reviewed_by"`

	// Rating — diisi subsistem review, read-only di sini
	TutorApplicationAverageRating float64 `json:"tutor_application_average_rating" gorm:"not null;default:0;column:tutor_application_average_rating"`
	TutorApplicationTotalReviews  int     `json:"tutor_application_total_reviews" gorm:"not null;default:0;column:tutor_application_total_reviews"`

	// Audit
	TutorApplicationCreatedAt time.Time      `json:"tutor_application_created_at" gorm:"column:tutor_application_created_at;autoCreateTime"`
	TutorApplicationUpdatedAt time.Time      `json:"tutor_application_updated_at" gorm:"column:tutor_application_updated_at;autoUpdateTime"`
	TutorApplicationDeletedAt gorm.DeletedAt `json:"tutor_application_deleted_at,omitempty" gorm:"column:tutor_application_deleted_at;index"`
}

// TableName overrides the default pluralization.
func (TutorApplicationModel) TableName() string { return "tutor_applications" }

/* =======================================================
   Lifecycle
   ======================================================= */

var (
	ErrInvalidDecision = errors.New("decision harus 'approved' atau 'rejected'")
	ErrNotPending      = errors.New("hanya aplikasi pending yang bisa diubah")
	ErrNotApproved     = errors.New("hanya aplikasi approved yang bisa disuspend")
	ErrNotSuspended    = errors.New("hanya aplikasi suspended yang bisa diaktifkan lagi")
)

func (m *TutorApplicationModel) IsPending() bool {
	return m.TutorApplicationStatus == constants.ApplicationStatusPending
}

func (m *TutorApplicationModel) IsApproved() bool {
	return m.TutorApplicationStatus == constants.ApplicationStatusApproved
}

// ApplyReview: pending → approved/rejected. Re-review aplikasi yang sudah
// diputuskan sengaja diizinkan — admin boleh mengoreksi keputusan.
// approved_at & reviewed_by hanya terisi saat approved, selain itu dikosongkan.
func (m *TutorApplicationModel) ApplyReview(decision string, reviewerID uuid.UUID, now time.Time) error {
	if decision != constants.ApplicationStatusApproved && decision != constants.ApplicationStatusRejected {
		return ErrInvalidDecision
	}
	m.TutorApplicationStatus = decision
	m.TutorApplicationReviewedBy = &reviewerID
	if decision == constants.ApplicationStatusApproved {
		t := now
		m.TutorApplicationApprovedAt = &t
	} else {
		m.TutorApplicationApprovedAt = nil
	}
	return nil
}

// Suspend: approved → suspended (aksi admin di luar review normal)
func (m *TutorApplicationModel) Suspend() error {
	if !m.IsApproved() {
		return ErrNotApproved
	}
	m.TutorApplicationStatus = constants.ApplicationStatusSuspended
	return nil
}

// Unsuspend: suspended → approved
func (m *TutorApplicationModel) Unsuspend() error {
	if m.TutorApplicationStatus != constants.ApplicationStatusSuspended {
		return ErrNotSuspended
	}
	m.TutorApplicationStatus = constants.ApplicationStatusApproved
	return nil
}

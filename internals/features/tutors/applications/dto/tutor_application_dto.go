package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	tutorModel "tutorku_backend/internals/features/tutors/applications/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateTutorApplicationRequest — submit aplikasi tutor baru
type CreateTutorApplicationRequest struct {
	Name          string   `json:"name" validate:"required,min=2,max=100"`
	Email         string   `json:"email" validate:"required,email,max=255"`
	Phone         string   `json:"phone" validate:"required,min=7,max=20"`
	Subjects      []string `json:"subjects" validate:"required,min=1,dive,required"`
	Qualification string   `json:"qualification" validate:"required,oneof=high-school bachelor master phd other"`
	Experience    string   `json:"experience" validate:"required,oneof=0-1 1-3 3-5 5-10 10+"`
	HourlyRate    float64  `json:"hourly_rate" validate:"required,gte=10,lte=200"`
	PreferredMode string   `json:"preferred_mode" validate:"required,oneof=online in-person both"`
	Availability  string   `json:"availability" validate:"required,min=10,max=500"`
	Bio           *string  `json:"bio,omitempty" validate:"omitempty,max=1000"`
}

// Normalize — trim & normalisasi dasar
func (r *CreateTutorApplicationRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Availability = strings.TrimSpace(r.Availability)
	r.Subjects = trimNonEmpty(r.Subjects)
	if r.Bio != nil {
		v := strings.TrimSpace(*r.Bio)
		r.Bio = &v
	}
}

// ToModel — konversi ke model; status selalu mulai pending
func (r *CreateTutorApplicationRequest) ToModel(userID uuid.UUID) *tutorModel.TutorApplicationModel {
	return &tutorModel.TutorApplicationModel{
		TutorApplicationUserID:        userID,
		TutorApplicationName:          r.Name,
		TutorApplicationEmail:         r.Email,
		TutorApplicationPhone:         r.Phone,
		TutorApplicationSubjects:      pq.StringArray(r.Subjects),
		TutorApplicationQualification: r.Qualification,
		TutorApplicationExperience:    r.Experience,
		TutorApplicationHourlyRate:    r.HourlyRate,
		TutorApplicationPreferredMode: r.PreferredMode,
		TutorApplicationAvailability:  r.Availability,
		TutorApplicationBio:           r.Bio,
	}
}

// UpdateTutorApplicationRequest — patch parsial, HANYA field allow-list.
// Status, rating, dan identitas pemilik tidak pernah bisa lewat sini.
type UpdateTutorApplicationRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone         *string  `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Subjects      []string `json:"subjects,omitempty" validate:"omitempty,min=1,dive,required"`
	HourlyRate    *float64 `json:"hourly_rate,omitempty" validate:"omitempty,gte=10,lte=200"`
	Availability  *string  `json:"availability,omitempty" validate:"omitempty,min=10,max=500"`
	Bio           *string  `json:"bio,omitempty" validate:"omitempty,max=1000"`
	PreferredMode *string  `json:"preferred_mode,omitempty" validate:"omitempty,oneof=online in-person both"`
}

func (r *UpdateTutorApplicationRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Phone != nil {
		v := strings.TrimSpace(*r.Phone)
		r.Phone = &v
	}
	if r.Availability != nil {
		v := strings.TrimSpace(*r.Availability)
		r.Availability = &v
	}
	if r.Bio != nil {
		v := strings.TrimSpace(*r.Bio)
		r.Bio = &v
	}
	if r.Subjects != nil {
		r.Subjects = trimNonEmpty(r.Subjects)
	}
}

// ApplyToModel — terapkan patch ke model existing
func (r *UpdateTutorApplicationRequest) ApplyToModel(m *tutorModel.TutorApplicationModel) {
	if r.Name != nil {
		m.TutorApplicationName = *r.Name
	}
	if r.Phone != nil {
		m.TutorApplicationPhone = *r.Phone
	}
	if r.Subjects != nil {
		m.TutorApplicationSubjects = pq.StringArray(r.Subjects)
	}
	if r.HourlyRate != nil {
		m.TutorApplicationHourlyRate = *r.HourlyRate
	}
	if r.Availability != nil {
		m.TutorApplicationAvailability = *r.Availability
	}
	if r.Bio != nil {
		m.TutorApplicationBio = r.Bio
	}
	if r.PreferredMode != nil {
		m.TutorApplicationPreferredMode = *r.PreferredMode
	}
}

// ReviewTutorApplicationRequest — keputusan admin
type ReviewTutorApplicationRequest struct {
	Status string `json:"status" validate:"required"`
}

// SuspendTutorApplicationRequest — approved ⇄ suspended
type SuspendTutorApplicationRequest struct {
	Suspended bool `json:"suspended"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// TutorApplicationResponse — untuk pemilik & admin (lengkap)
type TutorApplicationResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Subjects      []string   `json:"subjects"`
	Qualification string     `json:"qualification"`
	Experience    string     `json:"experience"`
	HourlyRate    float64    `json:"hourly_rate"`
	PreferredMode string     `json:"preferred_mode"`
	Availability  string     `json:"availability"`
	Bio           *string    `json:"bio,omitempty"`
	Status        string     `json:"status"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	ReviewedBy    *uuid.UUID `json:"reviewed_by,omitempty"`
	AverageRating float64    `json:"average_rating"`
	TotalReviews  int        `json:"total_reviews"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromModel(m *tutorModel.TutorApplicationModel) *TutorApplicationResponse {
	if m == nil {
		return nil
	}
	return &TutorApplicationResponse{
		ID:            m.TutorApplicationID,
		UserID:        m.TutorApplicationUserID,
		Name:          m.TutorApplicationName,
		Email:         m.TutorApplicationEmail,
		Phone:         m.TutorApplicationPhone,
		Subjects:      []string(m.TutorApplicationSubjects),
		Qualification: m.TutorApplicationQualification,
		Experience:    m.TutorApplicationExperience,
		HourlyRate:    m.TutorApplicationHourlyRate,
		PreferredMode: m.TutorApplicationPreferredMode,
		Availability:  m.TutorApplicationAvailability,
		Bio:           m.TutorApplicationBio,
		Status:        m.TutorApplicationStatus,
		ApprovedAt:    m.TutorApplicationApprovedAt,
		ReviewedBy:    m.TutorApplicationReviewedBy,
		AverageRating: m.TutorApplicationAverageRating,
		TotalReviews:  m.TutorApplicationTotalReviews,
		CreatedAt:     m.TutorApplicationCreatedAt,
		UpdatedAt:     m.TutorApplicationUpdatedAt,
	}
}

func FromModelList(list []tutorModel.TutorApplicationModel) []TutorApplicationResponse {
	out := make([]TutorApplicationResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

// TutorPublicResponse — listing publik, kontak disembunyikan
type TutorPublicResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Subjects      []string  `json:"subjects"`
	Qualification string    `json:"qualification"`
	Experience    string    `json:"experience"`
	HourlyRate    float64   `json:"hourly_rate"`
	PreferredMode string    `json:"preferred_mode"`
	Availability  string    `json:"availability"`
	Bio           *string   `json:"bio,omitempty"`
	AverageRating float64   `json:"average_rating"`
	TotalReviews  int       `json:"total_reviews"`
	CreatedAt     time.Time `json:"created_at"`
}

func PublicFromModel(m *tutorModel.TutorApplicationModel) *TutorPublicResponse {
	if m == nil {
		return nil
	}
	return &TutorPublicResponse{
		ID:            m.TutorApplicationID,
		Name:          m.TutorApplicationName,
		Subjects:      []string(m.TutorApplicationSubjects),
		Qualification: m.TutorApplicationQualification,
		Experience:    m.TutorApplicationExperience,
		HourlyRate:    m.TutorApplicationHourlyRate,
		PreferredMode: m.TutorApplicationPreferredMode,
		Availability:  m.TutorApplicationAvailability,
		Bio:           m.TutorApplicationBio,
		AverageRating: m.TutorApplicationAverageRating,
		TotalReviews:  m.TutorApplicationTotalReviews,
		CreatedAt:     m.TutorApplicationCreatedAt,
	}
}

func PublicFromModelList(list []tutorModel.TutorApplicationModel) []TutorPublicResponse {
	out := make([]TutorPublicResponse, 0, len(list))
	for i := range list {
		out = append(out, *PublicFromModel(&list[i]))
	}
	return out
}

/* =======================================================
   Internal helpers
   ======================================================= */

func trimNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"tutorku_backend/internals/constants"
	tutorModel "tutorku_backend/internals/features/tutors/applications/model"
)

func TestCreateRequest_Normalize(t *testing.T) {
	bio := "  saya suka mengajar  "
	req := CreateTutorApplicationRequest{
		Name:     "  Budi Santoso ",
		Email:    " Budi@Example.COM ",
		Phone:    " +62812345678 ",
		Subjects: []string{" math ", "", "physics"},
		Bio:      &bio,
	}
	req.Normalize()

	assert.Equal(t, "Budi Santoso", req.Name)
	assert.Equal(t, "budi@example.com", req.Email)
	assert.Equal(t, "+62812345678", req.Phone)
	assert.Equal(t, []string{"math", "physics"}, req.Subjects)
	assert.Equal(t, "saya suka mengajar", *req.Bio)
}

func TestCreateRequest_ToModelStartsPending(t *testing.T) {
	userID := uuid.New()
	req := CreateTutorApplicationRequest{
		Name:          "Budi",
		Email:         "budi@example.com",
		Phone:         "+62812345678",
		Subjects:      []string{"math"},
		Qualification: "bachelor",
		Experience:    "3-5",
		HourlyRate:    35,
		PreferredMode: constants.ModeOnline,
		Availability:  "Senin-Jumat sore",
	}

	m := req.ToModel(userID)

	assert.Equal(t, userID, m.TutorApplicationUserID)
	// status tidak diisi DTO — default kolom 'pending' yang berlaku
	assert.Empty(t, m.TutorApplicationStatus)
	assert.Zero(t, m.TutorApplicationAverageRating)
	assert.Zero(t, m.TutorApplicationTotalReviews)
	assert.Nil(t, m.TutorApplicationApprovedAt)
}

// Patch hanya menyentuh field allow-list; status, rating, dan pemilik aman
func TestUpdateRequest_ApplyToModelAllowList(t *testing.T) {
	owner := uuid.New()
	reviewer := uuid.New()
	m := tutorModel.TutorApplicationModel{
		TutorApplicationUserID:        owner,
		TutorApplicationName:          "Budi",
		TutorApplicationPhone:         "+62800000000",
		TutorApplicationSubjects:      pq.StringArray{"math"},
		TutorApplicationHourlyRate:    30,
		TutorApplicationStatus:        constants.ApplicationStatusPending,
		TutorApplicationReviewedBy:    &reviewer,
		TutorApplicationAverageRating: 4.5,
		TutorApplicationTotalReviews:  7,
	}

	newRate := 45.0
	newName := "Budi Santoso"
	req := UpdateTutorApplicationRequest{
		Name:       &newName,
		HourlyRate: &newRate,
		Subjects:   []string{"math", "physics"},
	}
	req.ApplyToModel(&m)

	assert.Equal(t, "Budi Santoso", m.TutorApplicationName)
	assert.Equal(t, 45.0, m.TutorApplicationHourlyRate)
	assert.Equal(t, pq.StringArray{"math", "physics"}, m.TutorApplicationSubjects)

	// field di luar allow-list tidak tersentuh
	assert.Equal(t, owner, m.TutorApplicationUserID)
	assert.Equal(t, constants.ApplicationStatusPending, m.TutorApplicationStatus)
	assert.Equal(t, 4.5, m.TutorApplicationAverageRating)
	assert.Equal(t, 7, m.TutorApplicationTotalReviews)

	// field nil tidak menimpa nilai lama
	assert.Equal(t, "+62800000000", m.TutorApplicationPhone)
}

func TestPublicResponse_HidesContact(t *testing.T) {
	m := tutorModel.TutorApplicationModel{
		TutorApplicationID:    uuid.New(),
		TutorApplicationName:  "Budi",
		TutorApplicationEmail: "budi@example.com",
		TutorApplicationPhone: "+62812345678",
	}

	full := FromModel(&m)
	assert.Equal(t, "budi@example.com", full.Email)
	assert.Equal(t, "+62812345678", full.Phone)

	// respons publik tidak punya field kontak sama sekali
	pub := PublicFromModel(&m)
	assert.Equal(t, m.TutorApplicationID, pub.ID)
	assert.Equal(t, "Budi", pub.Name)
}

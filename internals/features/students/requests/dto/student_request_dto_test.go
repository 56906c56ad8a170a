package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorku_backend/internals/constants"
	studentModel "tutorku_backend/internals/features/students/requests/model"
)

func TestCreateRequest_ToModel(t *testing.T) {
	userID := uuid.New()
	budget := "25-40"
	req := CreateStudentRequestRequest{
		StudentName:   "Siti",
		Phone:         "+62812345678",
		Grade:         "high",
		Subjects:      []string{"math", "physics"},
		LearningGoals: "Persiapan ujian masuk universitas",
		Schedule:      "Sabtu-Minggu pagi",
		PreferredMode: constants.ModeOnline,
		Budget:        &budget,
		Urgency:       "soon",
	}

	m := req.ToModel(userID)

	assert.Equal(t, userID, m.StudentRequestUserID)
	assert.Equal(t, pq.StringArray{"math", "physics"}, m.StudentRequestSubjects)
	require.NotNil(t, m.StudentRequestBudget)
	assert.Equal(t, "25-40", *m.StudentRequestBudget)
	// status & snapshot bukan urusan DTO
	assert.Empty(t, m.StudentRequestStatus)
	assert.Empty(t, m.StudentRequestMatchedTutors)
}

// Patch hanya menyentuh field allow-list; status, snapshot, pemilik aman
func TestUpdateRequest_ApplyToModelAllowList(t *testing.T) {
	owner := uuid.New()
	m := studentModel.StudentRequestModel{
		StudentRequestUserID:        owner,
		StudentRequestStudentName:   "Siti",
		StudentRequestPhone:         "+62800000000",
		StudentRequestSubjects:      pq.StringArray{"math"},
		StudentRequestLearningGoals: "Naikkan nilai rapor",
		StudentRequestStatus:        constants.RequestStatusPending,
	}
	require.NoError(t, m.SetMatchRecords([]studentModel.MatchRecord{
		{TutorID: uuid.New(), MatchedAt: time.Now(), Status: constants.MatchStatusSuggested},
	}, 5))
	snapshotBefore := string(m.StudentRequestMatchedTutors)

	newGoals := "Persiapan olimpiade matematika"
	req := UpdateStudentRequestRequest{
		LearningGoals: &newGoals,
		Subjects:      []string{"math", "physics"},
	}
	req.ApplyToModel(&m)

	assert.Equal(t, "Persiapan olimpiade matematika", m.StudentRequestLearningGoals)
	assert.Equal(t, pq.StringArray{"math", "physics"}, m.StudentRequestSubjects)

	// di luar allow-list tidak tersentuh
	assert.Equal(t, owner, m.StudentRequestUserID)
	assert.Equal(t, constants.RequestStatusPending, m.StudentRequestStatus)
	assert.Equal(t, snapshotBefore, string(m.StudentRequestMatchedTutors))

	// field nil tidak menimpa
	assert.Equal(t, "Siti", m.StudentRequestStudentName)
	assert.Equal(t, "+62800000000", m.StudentRequestPhone)
}

func TestFromModel_IncludesMatchRecords(t *testing.T) {
	tutorID := uuid.New()
	matchedAt := time.Now().UTC().Truncate(time.Second)

	m := studentModel.StudentRequestModel{
		StudentRequestID:     uuid.New(),
		StudentRequestStatus: constants.RequestStatusPending,
	}
	require.NoError(t, m.SetMatchRecords([]studentModel.MatchRecord{
		{TutorID: tutorID, MatchedAt: matchedAt, Status: constants.MatchStatusSuggested},
	}, 5))

	resp := FromModel(&m)
	require.Len(t, resp.MatchedTutors, 1)
	assert.Equal(t, tutorID, resp.MatchedTutors[0].TutorID)
	assert.Equal(t, constants.MatchStatusSuggested, resp.MatchedTutors[0].Status)
	assert.True(t, matchedAt.Equal(resp.MatchedTutors[0].MatchedAt))
}

func TestNormalize_TrimsOptionalFields(t *testing.T) {
	parent := "  Ibu Ani "
	req := CreateStudentRequestRequest{
		StudentName: " Siti ",
		Subjects:    []string{" math ", ""},
		ParentName:  &parent,
	}
	req.Normalize()

	assert.Equal(t, "Siti", req.StudentName)
	assert.Equal(t, []string{"math"}, req.Subjects)
	assert.Equal(t, "Ibu Ani", *req.ParentName)
}

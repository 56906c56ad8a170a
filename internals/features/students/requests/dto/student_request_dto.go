package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	studentModel "tutorku_backend/internals/features/students/requests/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateStudentRequestRequest — submit kebutuhan les baru
type CreateStudentRequestRequest struct {
	StudentName    string   `json:"student_name" validate:"required,min=2,max=100"`
	ParentName     *string  `json:"parent_name,omitempty" validate:"omitempty,max=100"`
	Phone          string   `json:"phone" validate:"required,min=7,max=20"`
	Grade          string   `json:"grade" validate:"required,oneof=elementary middle high college adult"`
	Subjects       []string `json:"subjects" validate:"required,min=1,dive,required"`
	LearningGoals  string   `json:"learning_goals" validate:"required,min=10,max=1000"`
	Schedule       string   `json:"schedule" validate:"required,min=10,max=500"`
	PreferredMode  string   `json:"preferred_mode" validate:"required,oneof=online in-person both"`
	Budget         *string  `json:"budget,omitempty" validate:"omitempty,oneof=15-25 25-40 40-60 60+ discuss"`
	Urgency        string   `json:"urgency" validate:"required,oneof=asap soon flexible planning"`
	Location       *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	AdditionalInfo *string  `json:"additional_info,omitempty" validate:"omitempty,max=1000"`
}

func (r *CreateStudentRequestRequest) Normalize() {
	r.StudentName = strings.TrimSpace(r.StudentName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.LearningGoals = strings.TrimSpace(r.LearningGoals)
	r.Schedule = strings.TrimSpace(r.Schedule)
	r.Subjects = trimNonEmpty(r.Subjects)
	r.ParentName = trimPtr(r.ParentName)
	r.Location = trimPtr(r.Location)
	r.AdditionalInfo = trimPtr(r.AdditionalInfo)
}

// ToModel — status selalu mulai pending, snapshot diisi controller
func (r *CreateStudentRequestRequest) ToModel(userID uuid.UUID) *studentModel.StudentRequestModel {
	return &studentModel.StudentRequestModel{
		StudentRequestUserID:         userID,
		StudentRequestStudentName:    r.StudentName,
		StudentRequestParentName:     r.ParentName,
		StudentRequestPhone:          r.Phone,
		StudentRequestGrade:          r.Grade,
		StudentRequestSubjects:       pq.StringArray(r.Subjects),
		StudentRequestLearningGoals:  r.LearningGoals,
		StudentRequestSchedule:       r.Schedule,
		StudentRequestPreferredMode:  r.PreferredMode,
		StudentRequestBudget:         r.Budget,
		StudentRequestUrgency:        r.Urgency,
		StudentRequestLocation:       r.Location,
		StudentRequestAdditionalInfo: r.AdditionalInfo,
	}
}

// UpdateStudentRequestRequest — patch parsial, HANYA field allow-list.
// Status, snapshot matching, dan identitas pemilik tidak lewat sini.
type UpdateStudentRequestRequest struct {
	StudentName    *string  `json:"student_name,omitempty" validate:"omitempty,min=2,max=100"`
	ParentName     *string  `json:"parent_name,omitempty" validate:"omitempty,max=100"`
	Phone          *string  `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Subjects       []string `json:"subjects,omitempty" validate:"omitempty,min=1,dive,required"`
	LearningGoals  *string  `json:"learning_goals,omitempty" validate:"omitempty,min=10,max=1000"`
	Schedule       *string  `json:"schedule,omitempty" validate:"omitempty,min=10,max=500"`
	PreferredMode  *string  `json:"preferred_mode,omitempty" validate:"omitempty,oneof=online in-person both"`
	Budget         *string  `json:"budget,omitempty" validate:"omitempty,oneof=15-25 25-40 40-60 60+ discuss"`
	Urgency        *string  `json:"urgency,omitempty" validate:"omitempty,oneof=asap soon flexible planning"`
	Location       *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	AdditionalInfo *string  `json:"additional_info,omitempty" validate:"omitempty,max=1000"`
}

func (r *UpdateStudentRequestRequest) Normalize() {
	r.StudentName = trimPtr(r.StudentName)
	r.ParentName = trimPtr(r.ParentName)
	r.Phone = trimPtr(r.Phone)
	r.LearningGoals = trimPtr(r.LearningGoals)
	r.Schedule = trimPtr(r.Schedule)
	r.Location = trimPtr(r.Location)
	r.AdditionalInfo = trimPtr(r.AdditionalInfo)
	if r.Subjects != nil {
		r.Subjects = trimNonEmpty(r.Subjects)
	}
}

func (r *UpdateStudentRequestRequest) ApplyToModel(m *studentModel.StudentRequestModel) {
	if r.StudentName != nil {
		m.StudentRequestStudentName = *r.StudentName
	}
	if r.ParentName != nil {
		m.StudentRequestParentName = r.ParentName
	}
	if r.Phone != nil {
		m.StudentRequestPhone = *r.Phone
	}
	if r.Subjects != nil {
		m.StudentRequestSubjects = pq.StringArray(r.Subjects)
	}
	if r.LearningGoals != nil {
		m.StudentRequestLearningGoals = *r.LearningGoals
	}
	if r.Schedule != nil {
		m.StudentRequestSchedule = *r.Schedule
	}
	if r.PreferredMode != nil {
		m.StudentRequestPreferredMode = *r.PreferredMode
	}
	if r.Budget != nil {
		m.StudentRequestBudget = r.Budget
	}
	if r.Urgency != nil {
		m.StudentRequestUrgency = *r.Urgency
	}
	if r.Location != nil {
		m.StudentRequestLocation = r.Location
	}
	if r.AdditionalInfo != nil {
		m.StudentRequestAdditionalInfo = r.AdditionalInfo
	}
}

// AdminStatusRequest — admin menggerakkan lifecycle request
type AdminStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending matched in-progress completed cancelled"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// MatchRecordResponse — satu entri snapshot kandidat
type MatchRecordResponse struct {
	TutorID   uuid.UUID `json:"tutor_id"`
	MatchedAt time.Time `json:"matched_at"`
	Status    string    `json:"status"`
}

type StudentRequestResponse struct {
	ID             uuid.UUID             `json:"id"`
	UserID         uuid.UUID             `json:"user_id"`
	StudentName    string                `json:"student_name"`
	ParentName     *string               `json:"parent_name,omitempty"`
	Phone          string                `json:"phone"`
	Grade          string                `json:"grade"`
	Subjects       []string              `json:"subjects"`
	LearningGoals  string                `json:"learning_goals"`
	Schedule       string                `json:"schedule"`
	PreferredMode  string                `json:"preferred_mode"`
	Budget         *string               `json:"budget,omitempty"`
	Urgency        string                `json:"urgency"`
	Location       *string               `json:"location,omitempty"`
	AdditionalInfo *string               `json:"additional_info,omitempty"`
	Status         string                `json:"status"`
	MatchedTutors  []MatchRecordResponse `json:"matched_tutors"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

func FromModel(m *studentModel.StudentRequestModel) *StudentRequestResponse {
	if m == nil {
		return nil
	}
	records := m.MatchRecords()
	matched := make([]MatchRecordResponse, 0, len(records))
	for _, rec := range records {
		matched = append(matched, MatchRecordResponse{
			TutorID:   rec.TutorID,
			MatchedAt: rec.MatchedAt,
			Status:    rec.Status,
		})
	}
	return &StudentRequestResponse{
		ID:             m.StudentRequestID,
		UserID:         m.StudentRequestUserID,
		StudentName:    m.StudentRequestStudentName,
		ParentName:     m.StudentRequestParentName,
		Phone:          m.StudentRequestPhone,
		Grade:          m.StudentRequestGrade,
		Subjects:       []string(m.StudentRequestSubjects),
		LearningGoals:  m.StudentRequestLearningGoals,
		Schedule:       m.StudentRequestSchedule,
		PreferredMode:  m.StudentRequestPreferredMode,
		Budget:         m.StudentRequestBudget,
		Urgency:        m.StudentRequestUrgency,
		Location:       m.StudentRequestLocation,
		AdditionalInfo: m.StudentRequestAdditionalInfo,
		Status:         m.StudentRequestStatus,
		MatchedTutors:  matched,
		CreatedAt:      m.StudentRequestCreatedAt,
		UpdatedAt:      m.StudentRequestUpdatedAt,
	}
}

func FromModelList(list []studentModel.StudentRequestModel) []StudentRequestResponse {
	out := make([]StudentRequestResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
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

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}

// file: internals/features/students/requests/model/student_request_model.go
package model

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tutorku_backend/internals/constants"
)

// MatchRecord: satu entri snapshot hasil matching, disimpan di kolom
// jsonb milik request (bukan tabel sendiri) supaya snapshot + request
// selalu atomik satu row.
type MatchRecord struct {
	TutorID   uuid.UUID `json:"tutor_id"`
	MatchedAt time.Time `json:"matched_at"`
	Status    string    `json:"status"`
}

type StudentRequestModel struct {
	// PK & FK
	StudentRequestID     uuid.UUID `json:"student_request_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_request_id"`
	StudentRequestUserID uuid.UUID `json:"student_request_user_id" gorm:"type:uuid;not null;column:student_request_user_id;index:idx_student_requests_user"`

	// Data siswa
	StudentRequestStudentName string  `json:"student_request_student_name" gorm:"type:varchar(100);not null;column:student_request_student_name"`
	StudentRequestParentName  *string `json:"student_request_parent_name,omitempty" gorm:"type:varchar(100);column:student_request_parent_name"`
	StudentRequestPhone       string  `json:"student_request_phone" gorm:"type:varchar(20);not null;column:student_request_phone"`
	StudentRequestGrade       string  `json:"student_request_grade" gorm:"type:varchar(20);not null;column:student_request_grade"`

	// Kebutuhan belajar
	StudentRequestSubjects       pq.StringArray `json:"student_request_subjects" gorm:"type:text[];not null;column:student_request_subjects"`
	StudentRequestLearningGoals  string         `json:"student_request_learning_goals" gorm:"type:varchar(1000);not null;column:student_request_learning_goals"`
	StudentRequestSchedule       string         `json:"student_request_schedule" gorm:"type:varchar(500);not null;column:student_request_schedule"`
	StudentRequestPreferredMode  string         `json:"student_request_preferred_mode" gorm:"type:varchar(10);not null;column:student_request_preferred_mode"`
	StudentRequestBudget         *string        `json:"student_request_budget,omitempty" gorm:"type:varchar(10);column:student_request_budget"`
	StudentRequestUrgency        string         `json:"student_request_urgency" gorm:"type:varchar(10);not null;column:student_request_urgency"`
	StudentRequestLocation       *string        `json:"student_request_location,omitempty" gorm:"type:varchar(200);column:student_request_location"`
	StudentRequestAdditionalInfo *string        `json:"student_request_additional_info,omitempty" gorm:"type:varchar(1000);column:student_request_additional_info"`

	// Lifecycle
	StudentRequestStatus string `json:"student_request_status" gorm:"type:varchar(15);not null;default:'pending';column:student_request_status;index:idx_student_requests_status"`

	// Snapshot kandidat (terurut) hasil matching saat submit
	StudentRequestMatchedTutors datatypes.JSON `json:"student_request_matched_tutors" gorm:"type:jsonb;column:student_request_matched_tutors"`

	// Audit
	StudentRequestCreatedAt time.Time      `json:"student_request_created_at" gorm:"column:student_request_created_at;autoCreateTime"`
	StudentRequestUpdatedAt time.Time      `json:"student_request_updated_at" gorm:"column:student_request_updated_at;autoUpdateTime"`
	StudentRequestDeletedAt gorm.DeletedAt `json:"student_request_deleted_at,omitempty" gorm:"column:student_request_deleted_at;index"`
}

// TableName overrides the default pluralization.
func (StudentRequestModel) TableName() string { return "student_requests" }

/* =======================================================
   Lifecycle & snapshot
   ======================================================= */

var ErrRequestNotPending = errors.New("hanya request berstatus pending yang bisa diubah")

func (m *StudentRequestModel) IsPending() bool {
	return m.StudentRequestStatus == constants.RequestStatusPending
}

// MatchRecords: decode snapshot jsonb; kolom kosong = snapshot kosong.
// Snapshot rusak dianggap kosong juga — matching tidak boleh bikin
// request-nya ikut mati.
func (m *StudentRequestModel) MatchRecords() []MatchRecord {
	if len(m.StudentRequestMatchedTutors) == 0 {
		return nil
	}
	var records []MatchRecord
	if err := sonic.Unmarshal(m.StudentRequestMatchedTutors, &records); err != nil {
		return nil
	}
	return records
}

// SetMatchRecords: simpan snapshot terurut, dipotong maksimal limit entri
func (m *StudentRequestModel) SetMatchRecords(records []MatchRecord, limit int) error {
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	raw, err := sonic.Marshal(records)
	if err != nil {
		return err
	}
	m.StudentRequestMatchedTutors = datatypes.JSON(raw)
	return nil
}

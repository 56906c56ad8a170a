// file: internals/features/contact/inquiries/model/tutor_inquiry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	InquiryKindBecomeTutor = "become-tutor"
	InquiryKindNeedTutor   = "need-tutor"
)

// TutorInquiryModel: pesan masuk dari form publik (tanpa login).
// Append-only — tidak ada update/soft-delete di sini.
type TutorInquiryModel struct {
	TutorInquiryID      uuid.UUID `json:"tutor_inquiry_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:tutor_inquiry_id"`
	TutorInquiryKind    string    `json:"tutor_inquiry_kind" gorm:"type:varchar(15);not null;column:tutor_inquiry_kind;index:idx_tutor_inquiries_kind"`
	TutorInquiryName    string    `json:"tutor_inquiry_name" gorm:"type:varchar(100);not null;column:tutor_inquiry_name"`
	TutorInquiryEmail   string    `json:"tutor_inquiry_email" gorm:"type:varchar(255);not null;column:tutor_inquiry_email"`
	TutorInquiryPhone   *string   `json:"tutor_inquiry_phone,omitempty" gorm:"type:varchar(20);column:tutor_inquiry_phone"`
	TutorInquirySubject string    `json:"tutor_inquiry_subject" gorm:"type:varchar(200);not null;column:tutor_inquiry_subject"`
	TutorInquiryMessage *string   `json:"tutor_inquiry_message,omitempty" gorm:"type:varchar(2000);column:tutor_inquiry_message"`

	TutorInquiryCreatedAt time.Time `json:"tutor_inquiry_created_at" gorm:"column:tutor_inquiry_created_at;autoCreateTime"`
}

func (TutorInquiryModel) TableName() string { return "tutor_inquiries" }

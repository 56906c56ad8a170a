package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	inquiryModel "tutorku_backend/internals/features/contact/inquiries/model"
)

// CreateTutorInquiryRequest — form kontak publik; kind diisi dari route
type CreateTutorInquiryRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   string  `json:"email" validate:"required,email,max=255"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Subject string  `json:"subject" validate:"required,min=2,max=200"`
	Message *string `json:"message,omitempty" validate:"omitempty,max=2000"`
}

func (r *CreateTutorInquiryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Subject = strings.TrimSpace(r.Subject)
	if r.Phone != nil {
		v := strings.TrimSpace(*r.Phone)
		r.Phone = &v
	}
	if r.Message != nil {
		v := strings.TrimSpace(*r.Message)
		r.Message = &v
	}
}

func (r *CreateTutorInquiryRequest) ToModel(kind string) *inquiryModel.TutorInquiryModel {
	return &inquiryModel.TutorInquiryModel{
		TutorInquiryKind:    kind,
		TutorInquiryName:    r.Name,
		TutorInquiryEmail:   r.Email,
		TutorInquiryPhone:   r.Phone,
		TutorInquirySubject: r.Subject,
		TutorInquiryMessage: r.Message,
	}
}

type TutorInquiryResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   *string   `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModel(m *inquiryModel.TutorInquiryModel) *TutorInquiryResponse {
	if m == nil {
		return nil
	}
	return &TutorInquiryResponse{
		ID:        m.TutorInquiryID,
		Kind:      m.TutorInquiryKind,
		Name:      m.TutorInquiryName,
		Email:     m.TutorInquiryEmail,
		Phone:     m.TutorInquiryPhone,
		Subject:   m.TutorInquirySubject,
		Message:   m.TutorInquiryMessage,
		CreatedAt: m.TutorInquiryCreatedAt,
	}
}

func FromModelList(list []inquiryModel.TutorInquiryModel) []TutorInquiryResponse {
	out := make([]TutorInquiryResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

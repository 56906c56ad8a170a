// file: internals/features/tutors/applications/controller/tutor_public_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"tutorku_backend/internals/constants"
	tutorDTO "tutorku_backend/internals/features/tutors/applications/dto"
	tutorModel "tutorku_backend/internals/features/tutors/applications/model"
	helper "tutorku_backend/internals/helpers"
)

// List: katalog tutor approved dengan filter opsional + pagination.
// Filter: subjects (csv, overlap), min_rate, max_rate, mode, qualification, experience.
func (tc *TutorApplicationController) List(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, helper.PublicOpts)

	q := tc.DB.Model(&tutorModel.TutorApplicationModel{}).
		Where("tutor_application_status = ?", constants.ApplicationStatusApproved)

	if raw := strings.TrimSpace(c.Query("subjects")); raw != "" {
		subjects := splitCSV(raw)
		if len(subjects) > 0 {
			q = q.Where("tutor_application_subjects && ?", pq.Array(subjects))
		}
	}

	if raw := strings.TrimSpace(c.Query("min_rate")); raw != "" {
		minRate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter min_rate harus angka")
		}
		q = q.Where("tutor_application_hourly_rate >= ?", minRate)
	}
	if raw := strings.TrimSpace(c.Query("max_rate")); raw != "" {
		maxRate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter max_rate harus angka")
		}
		q = q.Where("tutor_application_hourly_rate <= ?", maxRate)
	}

	// mode=both artinya tanpa filter mode
	if mode := strings.TrimSpace(c.Query("mode")); mode != "" && mode != constants.ModeBoth {
		if !constants.InList(constants.TeachingModes, mode) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter mode tidak valid")
		}
		q = q.Where("tutor_application_preferred_mode IN ?", []string{mode, constants.ModeBoth})
	}

	if qual := strings.TrimSpace(c.Query("qualification")); qual != "" {
		if !constants.InList(constants.Qualifications, qual) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter qualification tidak valid")
		}
		q = q.Where("tutor_application_qualification = ?", qual)
	}
	if exp := strings.TrimSpace(c.Query("experience")); exp != "" {
		if !constants.InList(constants.ExperienceLevels, exp) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter experience tidak valid")
		}
		q = q.Where("tutor_application_experience = ?", exp)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonInternal(c, "tutor list: count", err)
	}

	var tutors []tutorModel.TutorApplicationModel
	if err := q.
		Order("tutor_application_average_rating DESC, tutor_application_created_at DESC").
		Limit(params.Limit()).
		Offset(params.Offset()).
		Find(&tutors).Error; err != nil {
		return helper.JsonInternal(c, "tutor list: find", err)
	}

	return helper.JsonList(c, "", tutorDTO.PublicFromModelList(tutors), helper.BuildMeta(total, params))
}

// GetByID: detail satu tutor — hanya yang approved yang terlihat publik
func (tc *TutorApplicationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tutor tidak valid")
	}

	var app tutorModel.TutorApplicationModel
	if err := tc.DB.
		Where("tutor_application_id = ? AND tutor_application_status = ?", id, constants.ApplicationStatusApproved).
		First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tutor tidak ditemukan")
		}
		return helper.JsonInternal(c, "tutor detail: ambil", err)
	}

	return helper.JsonOK(c, "", tutorDTO.PublicFromModel(&app))
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

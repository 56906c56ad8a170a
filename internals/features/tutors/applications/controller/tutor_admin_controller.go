// file: internals/features/tutors/applications/controller/tutor_admin_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorku_backend/internals/constants"
	tutorDTO "tutorku_backend/internals/features/tutors/applications/dto"
	tutorModel "tutorku_backend/internals/features/tutors/applications/model"
	helper "tutorku_backend/internals/helpers"
	helperAuth "tutorku_backend/internals/helpers/auth"
)

// AdminList: daftar aplikasi per status (default pending, "all" tanpa filter),
// terbaru dulu, dengan pagination admin.
func (tc *TutorApplicationController) AdminList(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c); err != nil {
		return err
	}

	params := helper.ParseFiber(c, helper.AdminOpts)
	status := strings.TrimSpace(c.Query("status", constants.ApplicationStatusPending))

	q := tc.DB.Model(&tutorModel.TutorApplicationModel{})
	if status != "all" {
		if !constants.InList(constants.ApplicationStatuses, status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter status tidak valid")
		}
		q = q.Where("tutor_application_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonInternal(c, "tutor admin list: count", err)
	}

	var apps []tutorModel.TutorApplicationModel
	if err := q.
		Order("tutor_application_created_at DESC").
		Limit(params.Limit()).
		Offset(params.Offset()).
		Find(&apps).Error; err != nil {
		return helper.JsonInternal(c, "tutor admin list: find", err)
	}

	return helper.JsonList(c, "", tutorDTO.FromModelList(apps), helper.BuildMeta(total, params))
}

// Review: approve/reject aplikasi. Admin boleh me-review ulang aplikasi yang
// sudah diputuskan (koreksi keputusan), jadi tidak ada guard transisi di sini.
func (tc *TutorApplicationController) Review(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c); err != nil {
		return err
	}
	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID aplikasi tidak valid")
	}

	var req tutorDTO.ReviewTutorApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var app tutorModel.TutorApplicationModel
	if err := tc.DB.Where("tutor_application_id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aplikasi tutor tidak ditemukan")
		}
		return helper.JsonInternal(c, "tutor review: ambil", err)
	}

	if err := app.ApplyReview(strings.TrimSpace(req.Status), reviewerID, time.Now().UTC()); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status harus 'approved' atau 'rejected'")
	}

	if err := tc.DB.Save(&app).Error; err != nil {
		return helper.JsonInternal(c, "tutor review: simpan", err)
	}

	return helper.JsonUpdated(c, "Aplikasi berhasil di-"+app.TutorApplicationStatus, tutorDTO.FromModel(&app))
}

// Suspend: approved ⇄ suspended, aksi admin di luar alur review
func (tc *TutorApplicationController) Suspend(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c); err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID aplikasi tidak valid")
	}

	var req tutorDTO.SuspendTutorApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var app tutorModel.TutorApplicationModel
	if err := tc.DB.Where("tutor_application_id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aplikasi tutor tidak ditemukan")
		}
		return helper.JsonInternal(c, "tutor suspend: ambil", err)
	}

	if req.Suspended {
		err = app.Suspend()
	} else {
		err = app.Unsuspend()
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := tc.DB.Save(&app).Error; err != nil {
		return helper.JsonInternal(c, "tutor suspend: simpan", err)
	}

	return helper.JsonUpdated(c, "Status tutor diperbarui", tutorDTO.FromModel(&app))
}

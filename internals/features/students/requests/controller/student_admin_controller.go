// file: internals/features/students/requests/controller/student_admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorku_backend/internals/constants"
	studentDTO "tutorku_backend/internals/features/students/requests/dto"
	studentModel "tutorku_backend/internals/features/students/requests/model"
	helper "tutorku_backend/internals/helpers"
	helperAuth "tutorku_backend/internals/helpers/auth"
)

// AdminList: semua request lintas user, filter status opsional, terbaru dulu
func (sc *StudentRequestController) AdminList(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c); err != nil {
		return err
	}

	params := helper.ParseFiber(c, helper.AdminOpts)

	q := sc.DB.Model(&studentModel.StudentRequestModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" && status != "all" {
		if !constants.InList(constants.RequestStatuses, status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter status tidak valid")
		}
		q = q.Where("student_request_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonInternal(c, "student admin list: count", err)
	}

	var requests []studentModel.StudentRequestModel
	if err := q.
		Order("student_request_created_at DESC").
		Limit(params.Limit()).
		Offset(params.Offset()).
		Find(&requests).Error; err != nil {
		return helper.JsonInternal(c, "student admin list: find", err)
	}

	return helper.JsonList(c, "", studentDTO.FromModelList(requests), helper.BuildMeta(total, params))
}

// PatchStatus: admin menggeser lifecycle request (pending → matched → ...)
func (sc *StudentRequestController) PatchStatus(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c); err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID request tidak valid")
	}

	var req studentDTO.AdminStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := sc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	var request studentModel.StudentRequestModel
	if err := sc.DB.Where("student_request_id = ?", id).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Request tidak ditemukan")
		}
		return helper.JsonInternal(c, "student admin status: ambil", err)
	}

	request.StudentRequestStatus = req.Status
	if err := sc.DB.Save(&request).Error; err != nil {
		return helper.JsonInternal(c, "student admin status: simpan", err)
	}

	return helper.JsonUpdated(c, "Status request diperbarui", studentDTO.FromModel(&request))
}

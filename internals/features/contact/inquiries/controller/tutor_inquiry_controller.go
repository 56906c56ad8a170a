// file: internals/features/contact/inquiries/controller/tutor_inquiry_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	inquiryDTO "tutorku_backend/internals/features/contact/inquiries/dto"
	inquiryModel "tutorku_backend/internals/features/contact/inquiries/model"
	helper "tutorku_backend/internals/helpers"
	helperAuth "tutorku_backend/internals/helpers/auth"
)

type TutorInquiryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTutorInquiryController(db *gorm.DB) *TutorInquiryController {
	return &TutorInquiryController{DB: db, Validate: validator.New()}
}

// SubmitBecomeTutor: form "mau jadi tutor" dari landing page
func (ic *TutorInquiryController) SubmitBecomeTutor(c *fiber.Ctx) error {
	return ic.submit(c, inquiryModel.InquiryKindBecomeTutor)
}

// SubmitNeedTutor: form "butuh tutor" dari landing page
func (ic *TutorInquiryController) SubmitNeedTutor(c *fiber.Ctx) error {
	return ic.submit(c, inquiryModel.InquiryKindNeedTutor)
}

func (ic *TutorInquiryController) submit(c *fiber.Ctx, kind string) error {
	var req inquiryDTO.CreateTutorInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ic.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	inquiry := req.ToModel(kind)
	if err := ic.DB.Create(inquiry).Error; err != nil {
		return helper.JsonInternal(c, "inquiry submit: create", err)
	}

	return helper.JsonCreated(c, "Pesan Anda sudah kami terima", inquiryDTO.FromModel(inquiry))
}

// AdminList: inbox inquiry untuk admin, filter kind opsional, terbaru dulu
func (ic *TutorInquiryController) AdminList(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c); err != nil {
		return err
	}

	params := helper.ParseFiber(c, helper.AdminOpts)

	q := ic.DB.Model(&inquiryModel.TutorInquiryModel{})
	if kind := strings.TrimSpace(c.Query("kind")); kind != "" {
		if kind != inquiryModel.InquiryKindBecomeTutor && kind != inquiryModel.InquiryKindNeedTutor {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter kind tidak valid")
		}
		q = q.Where("tutor_inquiry_kind = ?", kind)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonInternal(c, "inquiry admin list: count", err)
	}

	var inquiries []inquiryModel.TutorInquiryModel
	if err := q.
		Order("tutor_inquiry_created_at DESC").
		Limit(params.Limit()).
		Offset(params.Offset()).
		Find(&inquiries).Error; err != nil {
		return helper.JsonInternal(c, "inquiry admin list: find", err)
	}

	return helper.JsonList(c, "", inquiryDTO.FromModelList(inquiries), helper.BuildMeta(total, params))
}

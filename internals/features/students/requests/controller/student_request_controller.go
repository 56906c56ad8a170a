// file: internals/features/students/requests/controller/student_request_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorku_backend/internals/constants"
	matching "tutorku_backend/internals/features/matching/service"
	studentDTO "tutorku_backend/internals/features/students/requests/dto"
	studentModel "tutorku_backend/internals/features/students/requests/model"
	tutorDTO "tutorku_backend/internals/features/tutors/applications/dto"
	helper "tutorku_backend/internals/helpers"
)

type StudentRequestController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentRequestController(db *gorm.DB) *StudentRequestController {
	return &StudentRequestController{DB: db, Validate: validator.New()}
}

// Submit: buat request baru + snapshot kandidat awal.
// Matching fail-open: pool kosong / error = snapshot kosong, request tetap jadi.
func (sc *StudentRequestController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req studentDTO.CreateStudentRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := sc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	request := req.ToModel(userID)

	candidates := matching.Match(criteriaOf(request), matching.BuildApprovedPool(sc.DB), matching.SnapshotLimit)
	now := time.Now().UTC()
	records := make([]studentModel.MatchRecord, 0, len(candidates))
	for _, t := range candidates {
		records = append(records, studentModel.MatchRecord{
			TutorID:   t.TutorApplicationID,
			MatchedAt: now,
			Status:    constants.MatchStatusSuggested,
		})
	}
	if err := request.SetMatchRecords(records, matching.SnapshotLimit); err != nil {
		return helper.JsonInternal(c, "student submit: encode snapshot", err)
	}

	if err := sc.DB.Create(request).Error; err != nil {
		return helper.JsonInternal(c, "student submit: create", err)
	}

	return helper.JsonCreated(c, "Request les berhasil dikirim", studentDTO.FromModel(request))
}

// MyList: semua request milik user yang login, terbaru dulu
func (sc *StudentRequestController) MyList(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	params := helper.ParseFiber(c, helper.PublicOpts)

	q := sc.DB.Model(&studentModel.StudentRequestModel{}).
		Where("student_request_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonInternal(c, "student my list: count", err)
	}

	var requests []studentModel.StudentRequestModel
	if err := q.
		Order("student_request_created_at DESC").
		Limit(params.Limit()).
		Offset(params.Offset()).
		Find(&requests).Error; err != nil {
		return helper.JsonInternal(c, "student my list: find", err)
	}

	return helper.JsonList(c, "", studentDTO.FromModelList(requests), helper.BuildMeta(total, params))
}

// MyGet: detail satu request, scoped ke pemilik (punya orang lain = 404)
func (sc *StudentRequestController) MyGet(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	request, fail := sc.findOwned(c, userID)
	if fail != nil {
		return fail
	}

	return helper.JsonOK(c, "", studentDTO.FromModel(request))
}

// UpdateMine: patch allow-list, hanya saat status masih pending.
// Snapshot kandidat TIDAK dihitung ulang — pakai endpoint matches untuk itu.
func (sc *StudentRequestController) UpdateMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	request, fail := sc.findOwned(c, userID)
	if fail != nil {
		return fail
	}

	if !request.IsPending() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Hanya request berstatus pending yang bisa diubah")
	}

	var req studentDTO.UpdateStudentRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := sc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	req.ApplyToModel(request)
	if err := sc.DB.Save(request).Error; err != nil {
		return helper.JsonInternal(c, "student update: simpan", err)
	}

	return helper.JsonUpdated(c, "Request berhasil diperbarui", studentDTO.FromModel(request))
}

// Matches: hitung ulang kandidat dari kriteria request saat ini (maks 20).
// Hasilnya fresh view, snapshot di request tidak ikut berubah.
func (sc *StudentRequestController) Matches(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	request, fail := sc.findOwned(c, userID)
	if fail != nil {
		return fail
	}

	candidates := matching.Match(criteriaOf(request), matching.BuildApprovedPool(sc.DB), matching.BrowseLimit)
	return helper.JsonOK(c, "", tutorDTO.PublicFromModelList(candidates))
}

/* =======================================================
   Internal helpers
   ======================================================= */

// findOwned: ambil request by :id milik userID; selain itu 404/400.
// Return kedua sudah berupa response error siap kirim.
func (sc *StudentRequestController) findOwned(c *fiber.Ctx, userID uuid.UUID) (*studentModel.StudentRequestModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "ID request tidak valid")
	}

	var request studentModel.StudentRequestModel
	if err := sc.DB.
		Where("student_request_id = ? AND student_request_user_id = ?", id, userID).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Request tidak ditemukan")
		}
		return nil, helper.JsonInternal(c, "student request: ambil", err)
	}
	return &request, nil
}

func criteriaOf(m *studentModel.StudentRequestModel) matching.Criteria {
	budget := ""
	if m.StudentRequestBudget != nil {
		budget = *m.StudentRequestBudget
	}
	return matching.Criteria{
		Subjects:      []string(m.StudentRequestSubjects),
		PreferredMode: m.StudentRequestPreferredMode,
		Budget:        budget,
	}
}

// file: internals/features/tuitions/controller/tuition_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorx_backend/internals/features/tuitions/dto"
	"tutorx_backend/internals/features/tuitions/model"
	userModel "tutorx_backend/internals/features/users/user/model"
	helper "tutorx_backend/internals/helpers"
)

type TuitionController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewTuitionController(db *gorm.DB) *TuitionController {
	return &TuitionController{DB: db, validate: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /api/u/tuitions
func (h *TuitionController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateTuitionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := h.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Viewer harus salah satu pihak kesepakatan
	if req.TuitionTeacherID != userID && req.TuitionStudentID != userID {
		return fiber.NewError(fiber.StatusForbidden, "Tuition harus melibatkan akun Anda")
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat tuition")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tuition berhasil dibuat", m)
}

/* ======================= LIST ======================= */
// GET /api/u/tuitions — semua kesepakatan di mana viewer terlibat
func (h *TuitionController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role := h.resolveRole(c, userID)

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	var total int64
	if err := h.DB.WithContext(c.UserContext()).Model(&model.TuitionModel{}).
		Where("tuition_teacher_id = ? OR tuition_student_id = ?", userID, userID).
		Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung tuition")
	}

	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "tuition_created_at",
		"salary":     "tuition_salary",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Sort key tidak valid")
	}

	var rows []model.TuitionModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("tuition_teacher_id = ? OR tuition_student_id = ?", userID, userID).
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tuition")
	}

	today := time.Now()
	items := make([]dto.TuitionResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.ToTuitionResponse(&rows[i], role, nextClassDate(rows[i].TuitionScheduleDays, today)))
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": items,
		"meta":  helper.BuildMeta(total, p),
	})
}

/* ======================= DETAIL ======================= */
// GET /api/u/tuitions/:id
func (h *TuitionController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.TuitionModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("tuition_id = ? AND (tuition_teacher_id = ? OR tuition_student_id = ?)", id, userID, userID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tuition tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tuition")
	}

	role := h.resolveRole(c, userID)
	return helper.Success(c, "OK", dto.ToTuitionResponse(&m, role, nextClassDate(m.TuitionScheduleDays, time.Now())))
}

/* ======================= UPDATE ======================= */
// PUT /api/u/tuitions/:id
func (h *TuitionController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateTuitionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	up := req.BuildUpdateMap()
	if len(up) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := h.DB.WithContext(c.UserContext()).Model(&model.TuitionModel{}).
		Where("tuition_id = ? AND (tuition_teacher_id = ? OR tuition_student_id = ?)", id, userID, userID).
		Updates(up)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui tuition")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Tuition tidak ditemukan")
	}

	return helper.Success(c, "Tuition berhasil diperbarui", nil)
}

/* ======================= DELETE ======================= */
// DELETE /api/u/tuitions/:id (soft delete)
func (h *TuitionController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("tuition_id = ? AND (tuition_teacher_id = ? OR tuition_student_id = ?)", id, userID, userID).
		Delete(&model.TuitionModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus tuition")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Tuition tidak ditemukan")
	}

	return helper.Success(c, "Tuition berhasil dihapus", nil)
}

/* ======================= Helpers ======================= */

// resolveRole: role dari klaim token, fallback query tabel users.
func (h *TuitionController) resolveRole(c *fiber.Ctx, userID uuid.UUID) string {
	if role := helper.GetUserRoleFromToken(c); role != "" {
		return role
	}
	role, err := userModel.GetUserRole(h.DB, userID)
	if err != nil {
		return ""
	}
	return role
}

// nextClassDate: tanggal kelas terdekat (maks 7 hari ke depan)
// berdasarkan pola weekday. nil kalau scheduleDays kosong.
func nextClassDate(days []int64, from time.Time) *string {
	if len(days) == 0 {
		return nil
	}
	set := make(map[int64]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	for i := 0; i < 7; i++ {
		d := from.AddDate(0, 0, i)
		if _, ok := set[int64(d.Weekday())]; ok {
			s := d.Format("2006-01-02")
			return &s
		}
	}
	return nil
}

// file: internals/features/schedule/controller/schedule_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorx_backend/internals/features/schedule/dto"
	"tutorx_backend/internals/features/schedule/model"
	"tutorx_backend/internals/features/schedule/service"
	userModel "tutorx_backend/internals/features/users/user/model"
	helper "tutorx_backend/internals/helpers"
)

type ScheduleController struct {
	DB       *gorm.DB
	svc      *service.ScheduleService
	validate *validator.Validate
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{
		DB:       db,
		svc:      service.NewScheduleService(db),
		validate: validator.New(),
	}
}

/* ======================= GET MONTH ======================= */
// GET /api/u/schedule?month=2025-08
// Tanpa ?month → reconcile bulan berjalan. Dengan ?month → snapshot
// read-only (navigasi kalender tidak memicu tulis).
func (h *ScheduleController) GetSchedule(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	now := time.Now()
	reference, err := helper.ParseMonthQuery(c.Query("month"), now)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Format bulan tidak valid (pakai yyyy-mm)")
	}

	currentMonth := helper.MonthKey(reference) == helper.MonthKey(now)

	var degraded bool
	view, err := h.loadMonth(c, userID, reference, currentMonth)
	if err != nil {
		if errors.Is(err, service.ErrScheduleDegraded) {
			degraded = true
		} else {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat jadwal")
		}
	}

	cls := service.Classify(view, now, service.DefaultLookaheadDays, service.DefaultMissedPageSize)

	return helper.Success(c, "OK", dto.ScheduleMonthResponse{
		MonthKey:    helper.MonthKey(reference),
		Events:      view,
		Upcoming:    cls.Upcoming,
		Missed:      cls.Missed,
		MissedTotal: cls.MissedTotal,
		Marked:      service.Mark(view),
		Degraded:    degraded,
	})
}

/* ======================= MISSED (load-more) ======================= */
// GET /api/u/schedule/missed?month=2025-08&limit=40
func (h *ScheduleController) GetMissed(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	now := time.Now()
	reference, err := helper.ParseMonthQuery(c.Query("month"), now)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Format bulan tidak valid (pakai yyyy-mm)")
	}
	limit := c.QueryInt("limit", service.DefaultMissedPageSize)

	view, err := h.svc.MonthSnapshot(c.UserContext(), userID, reference)
	if err != nil && !errors.Is(err, service.ErrScheduleDegraded) {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat jadwal")
	}

	cls := service.Classify(view, now, service.DefaultLookaheadDays, limit)

	return helper.Success(c, "OK", dto.MissedListResponse{
		MonthKey: helper.MonthKey(reference),
		Missed:   cls.Missed,
		Total:    cls.MissedTotal,
	})
}

/* ======================= COMPLETE ======================= */
// POST /api/u/schedule/complete
func (h *ScheduleController) CompleteClass(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CompleteClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := h.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	tuitionID, err := uuid.Parse(req.TuitionID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tuition ID tidak valid")
	}

	if err := h.svc.MarkClassCompleted(c.UserContext(), userID, req.Date, tuitionID, req.ClassTime); err != nil {
		if errors.Is(err, service.ErrScheduleUnavailable) {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Jadwal sedang tidak tersedia, coba lagi")
		}
		return fiber.NewError(fiber.StatusBadRequest, "Gagal menandai kelas selesai")
	}

	return helper.Success(c, "Kelas ditandai selesai", fiber.Map{
		"date":                 req.Date,
		"tuition_id":           req.TuitionID,
		"class_time_formatted": service.FormatClassTime(req.ClassTime),
	})
}

/* ======================= Helpers ======================= */

// loadMonth: bulan berjalan = reconcile penuh; bulan lain = snapshot.
func (h *ScheduleController) loadMonth(c *fiber.Ctx, userID uuid.UUID, reference time.Time, currentMonth bool) (model.MonthEventMap, error) {
	if currentMonth {
		role := h.resolveRole(c, userID)
		return h.svc.Reconcile(c.UserContext(), userID, reference, nil, role)
	}
	return h.svc.MonthSnapshot(c.UserContext(), userID, reference)
}

func (h *ScheduleController) resolveRole(c *fiber.Ctx, userID uuid.UUID) string {
	if role := helper.GetUserRoleFromToken(c); role != "" {
		return role
	}
	role, err := userModel.GetUserRole(h.DB, userID)
	if err != nil {
		return ""
	}
	return role
}

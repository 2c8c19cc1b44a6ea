package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleRoute "tutorx_backend/internals/features/schedule/route"
	tuitionRoute "tutorx_backend/internals/features/tuitions/route"
)

// UserRoutes memasang semua fitur user login di bawah group /api/u.
func UserRoutes(user fiber.Router, db *gorm.DB) {
	// 👤 user login biasa: kesepakatan tuition + jadwal bulanan
	tuitionRoute.TuitionUserRoutes(user, db)
	scheduleRoute.ScheduleUserRoutes(user, db)
}

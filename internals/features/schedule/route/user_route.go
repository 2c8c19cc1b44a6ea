// file: internals/features/schedule/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schedulectl "tutorx_backend/internals/features/schedule/controller"
	"tutorx_backend/internals/middlewares"
)

// ScheduleUserRoutes mendaftarkan route jadwal untuk user login.
// GET /schedule memicu reconcile (tulis), jadi diberi rate limiter
// sendiri supaya pull-to-refresh beruntun tidak membanjiri DB.
func ScheduleUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := schedulectl.NewScheduleController(db)

	grp := user.Group("/schedule")
	grp.Get("/", middlewares.ScheduleRefreshRateLimiter(), ctl.GetSchedule)
	grp.Get("/missed", ctl.GetMissed)
	grp.Post("/complete", ctl.CompleteClass)
}

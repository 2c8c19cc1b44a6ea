// file: internals/features/tuitions/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tuitionctl "tutorx_backend/internals/features/tuitions/controller"
)

// TuitionUserRoutes mendaftarkan route tuition untuk user login
func TuitionUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := tuitionctl.NewTuitionController(db)

	grp := user.Group("/tuitions")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}

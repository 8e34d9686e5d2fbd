// file: internals/features/projects/holidays/route/holiday_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	holidayCtl "proyekku_backend/internals/features/projects/holidays/controller"
)

// ProjectHolidayAdminRoutes: operasi tulis (POST/PATCH/DELETE) — grup admin.
func ProjectHolidayAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := holidayCtl.New(db, validator.New())

	grp := admin.Group("/projects/:project_id")
	grp.Post("/holidays/recurring", ctl.CreateRecurring)
	grp.Post("/holidays/range", ctl.CreateRange)
	grp.Post("/holidays/move-tasks", ctl.MoveTasks)
	grp.Post("/holidays", ctl.CreateSpecific)

	admin.Patch("/holidays/:id", ctl.Patch)
	admin.Delete("/holidays/:id", ctl.Delete)
}

// ProjectHolidayUserRoutes: operasi baca — grup user.
func ProjectHolidayUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := holidayCtl.New(db, validator.New())

	grp := user.Group("/projects/:project_id")
	grp.Get("/holidays/conflicts", ctl.CheckConflicts)
	grp.Get("/holidays", ctl.List)
	grp.Get("/working-days", ctl.WorkingDays)
}

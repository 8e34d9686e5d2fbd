// file: internals/features/projects/tasks/route/task_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	taskCtl "proyekku_backend/internals/features/projects/tasks/controller"
)

// TaskAdminRoutes: CRUD tulis — grup admin.
func TaskAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := taskCtl.New(db, validator.New())

	admin.Post("/projects/:project_id/tasks", ctl.Create)
	admin.Patch("/tasks/:task_id", ctl.Patch)
	admin.Delete("/tasks/:task_id", ctl.Delete)
}

// TaskUserRoutes: baca — grup user.
func TaskUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := taskCtl.New(db, validator.New())

	user.Get("/projects/:project_id/tasks", ctl.ListByProject)
	user.Get("/tasks/:task_id", ctl.GetByID)
}

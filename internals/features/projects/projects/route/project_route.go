// file: internals/features/projects/projects/route/project_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	projectCtl "proyekku_backend/internals/features/projects/projects/controller"
)

// ProjectAdminRoutes: CRUD tulis — grup admin.
func ProjectAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := projectCtl.New(db, validator.New())

	admin.Post("/projects", ctl.Create)
	admin.Patch("/projects/:project_id", ctl.Patch)
	admin.Delete("/projects/:project_id", ctl.Delete)
}

// ProjectUserRoutes: baca — grup user.
func ProjectUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := projectCtl.New(db, validator.New())

	user.Get("/projects", ctl.List)
	user.Get("/projects/:project_id", ctl.GetByID)
}

// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "proyekku_backend/internals/middlewares/auth"

	holidayRoute "proyekku_backend/internals/features/projects/holidays/route"
	projectRoute "proyekku_backend/internals/features/projects/projects/route"
	taskRoute "proyekku_backend/internals/features/projects/tasks/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== USER (read-only, butuh login) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware())

	projectRoute.ProjectUserRoutes(user, db)
	taskRoute.TaskUserRoutes(user, db)
	holidayRoute.ProjectHolidayUserRoutes(user, db)

	// ===================== ADMIN (tulis, role admin/owner) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.AdminOnly(),
	)

	projectRoute.ProjectAdminRoutes(admin, db)
	taskRoute.TaskAdminRoutes(admin, db)
	holidayRoute.ProjectHolidayAdminRoutes(admin, db)
}

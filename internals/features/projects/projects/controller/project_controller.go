// file: internals/features/projects/projects/controller/project_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "proyekku_backend/internals/helpers"

	d "proyekku_backend/internals/features/projects/projects/dto"
	m "proyekku_backend/internals/features/projects/projects/model"
)

type ProjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ProjectController {
	return &ProjectController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* ========================= Create ========================= */

func (ctl *ProjectController) Create(c *fiber.Ctx) error {
	var req d.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Project.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	project := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(project).Error; err != nil {
		log.Printf("[Project.Create] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Project created", d.FromModelProject(project))
}

/* ========================= Get / List ========================= */

func (ctl *ProjectController) GetByID(c *fiber.Ctx) error {
	projectID, err := parseUUIDParam(c, "project_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var project m.ProjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("project_id = ?", projectID).
		Take(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Project tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromModelProject(&project))
}

func (ctl *ProjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&m.ProjectModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("project_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.ProjectModel
	if err := q.Order("project_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	resp := make([]*d.ProjectResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, d.FromModelProject(&rows[i]))
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", resp, &pagination)
}

/* ========================= Patch / Delete ========================= */

func (ctl *ProjectController) Patch(c *fiber.Ctx) error {
	projectID, err := parseUUIDParam(c, "project_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.PatchProjectRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Project.Patch] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonError(c, http.StatusBadRequest, "empty patch")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&m.ProjectModel{}).
		Where("project_id = ?", projectID).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[Project.Patch] DB error: %v", res.Error)
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Project tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Project updated", fiber.Map{"updated": true})
}

func (ctl *ProjectController) Delete(c *fiber.Ctx) error {
	projectID, err := parseUUIDParam(c, "project_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("project_id = ?", projectID).
		Delete(&m.ProjectModel{})
	if res.Error != nil {
		log.Printf("[Project.Delete] DB error: %v", res.Error)
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Project tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Project deleted", fiber.Map{"deleted": true})
}

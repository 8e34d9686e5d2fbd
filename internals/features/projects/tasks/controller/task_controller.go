// file: internals/features/projects/tasks/controller/task_controller.go
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

	d "proyekku_backend/internals/features/projects/tasks/dto"
	m "proyekku_backend/internals/features/projects/tasks/model"
)

type TaskController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *TaskController {
	return &TaskController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* ========================= Create ========================= */

// POST /projects/:project_id/tasks
func (ctl *TaskController) Create(c *fiber.Ctx) error {
	projectID, err := parseUUIDParam(c, "project_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Task.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	task, err := req.ToModel(projectID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(task).Error; err != nil {
		log.Printf("[Task.Create] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Task created", d.FromModelTask(task))
}

/* ========================= Get / List ========================= */

func (ctl *TaskController) GetByID(c *fiber.Ctx) error {
	taskID, err := parseUUIDParam(c, "task_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var task m.TaskModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("task_id = ?", taskID).
		Take(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Task tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromModelTask(&task))
}

// GET /projects/:project_id/tasks?status=&date=
func (ctl *TaskController) ListByProject(c *fiber.Ctx) error {
	projectID, err := parseUUIDParam(c, "project_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&m.TaskModel{}).
		Where("task_project_id = ?", projectID)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("task_status = ?", status)
	}
	if date := strings.TrimSpace(c.Query("date")); date != "" {
		q = q.Where("task_start_date = ?", date)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.TaskModel
	if err := q.Order("task_start_date ASC, task_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	resp := make([]*d.TaskResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, d.FromModelTask(&rows[i]))
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", resp, &pagination)
}

/* ========================= Patch / Delete ========================= */

func (ctl *TaskController) Patch(c *fiber.Ctx) error {
	taskID, err := parseUUIDParam(c, "task_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.PatchTaskRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Task.Patch] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	updates, err := req.ToUpdates()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if len(updates) == 0 {
		return helper.JsonError(c, http.StatusBadRequest, "empty patch")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&m.TaskModel{}).
		Where("task_id = ?", taskID).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[Task.Patch] DB error: %v", res.Error)
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Task tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Task updated", fiber.Map{"updated": true})
}

func (ctl *TaskController) Delete(c *fiber.Ctx) error {
	taskID, err := parseUUIDParam(c, "task_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("task_id = ?", taskID).
		Delete(&m.TaskModel{})
	if res.Error != nil {
		log.Printf("[Task.Delete] DB error: %v", res.Error)
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Task tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Task deleted", fiber.Map{"deleted": true})
}

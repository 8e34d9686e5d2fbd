// file: internals/features/projects/holidays/controller/project_holiday_controller.go
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

	d "proyekku_backend/internals/features/projects/holidays/dto"
	svc "proyekku_backend/internals/features/projects/holidays/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type ProjectHolidayController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *svc.HolidayService
}

func New(db *gorm.DB, v *validator.Validate) *ProjectHolidayController {
	return &ProjectHolidayController{
		DB:       db,
		Validate: v,
		Service:  svc.NewHolidayService(db),
	}
}

/* =========================
   Helpers
   ========================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// writeServiceError memetakan sentinel error service → status HTTP.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, svc.ErrInvalidInput), errors.Is(err, svc.ErrInvalidRange):
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, svc.ErrProjectNotFound), errors.Is(err, svc.ErrHolidayNotFound):
		return helper.JsonError(c, http.StatusNotFound, err.Error())
	default:
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
}

/* =========================
   Create (recurring / specific / range)
   ========================= */

// POST /:project_id/holidays/recurring
func (ctl *ProjectHolidayController) CreateRecurring(c *fiber.Ctx) error {
	projectID, err := parseUUIDParam(c, "project_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.CreateRecurringHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ProjectHoliday.CreateRecurring] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	weekdays, err := req.WeekdaySet()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	start, end, err := req.DateRange()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res, err := ctl.Service.CreateRecurring(c.UserContext(), projectID, weekdays, start, end, req.NonWaivable(), req.ProjectHolidayNotes)
	if err != nil {
		log.Printf("[ProjectHoliday.CreateRecurring] project=%s error: %v", projectID, err)
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "Recurring holidays generated", d.FromGenerateResult(res))
}

// POST /:project_id/holidays
func (ctl *ProjectHolidayController) CreateSpecific(c *fiber.Ctx) error {
	projectID, err := parseUUIDParam(c, "project_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.CreateSpecificHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ProjectHoliday.CreateSpecific] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	date, err := req.Date()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res, err := ctl.Service.CreateSpecific(c.UserContext(), projectID, date, req.NonWaivable(), req.ProjectHolidayNotes)
	if err != nil {
		log.Printf("[ProjectHoliday.CreateSpecific] project=%s error: %v", projectID, err)
		return writeServiceError(c, err)
	}
	if res.Action == "updated" {
		return helper.JsonUpdated(c, "Holiday updated", d.FromSpecificResult(res))
	}
	return helper.JsonCreated(c, "Holiday created", d.FromSpecificResult(res))
}

// POST /:project_id/holidays/range
func (ctl *ProjectHolidayController) CreateRange(c *fiber.Ctx) error {
	projectID, err := parseUUIDParam(c, "project_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.CreateRangeHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ProjectHoliday.CreateRange] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	start, end, err := req.DateRange()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res, err := ctl.Service.CreateRange(c.UserContext(), projectID, start, end, req.NonWaivable(), req.ProjectHolidayNotes)
	if err != nil {
		log.Printf("[ProjectHoliday.CreateRange] project=%s error: %v", projectID, err)
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "Range holidays generated", d.FromGenerateResult(res))
}

/* =========================
   List + stats
   ========================= */

// GET /:project_id/holidays
func (ctl *ProjectHolidayController) List(c *fiber.Ctx) error {
	projectID, err := parseUUIDParam(c, "project_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	rows, stats, err := ctl.Service.ListForProject(c.UserContext(), projectID)
	if err != nil {
		log.Printf("[ProjectHoliday.List] project=%s error: %v", projectID, err)
		return writeServiceError(c, err)
	}

	resp := make([]*d.ProjectHolidayResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, d.FromModelProjectHoliday(&rows[i]))
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"holidays": resp,
		"stats":    stats,
	})
}

/* =========================
   Patch / Delete
   ========================= */

// PATCH /holidays/:id
func (ctl *ProjectHolidayController) Patch(c *fiber.Ctx) error {
	holidayID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.PatchProjectHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ProjectHoliday.Patch] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	patch, err := req.ToPatch()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	ok, err := ctl.Service.Update(c.UserContext(), holidayID, patch)
	if err != nil {
		log.Printf("[ProjectHoliday.Patch] id=%s error: %v", holidayID, err)
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Holiday updated", fiber.Map{"updated": ok})
}

// DELETE /holidays/:id (soft delete)
func (ctl *ProjectHolidayController) Delete(c *fiber.Ctx) error {
	holidayID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	ok, err := ctl.Service.Delete(c.UserContext(), holidayID)
	if err != nil {
		log.Printf("[ProjectHoliday.Delete] id=%s error: %v", holidayID, err)
		return writeServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Holiday deleted", fiber.Map{"deleted": ok})
}

/* =========================
   Conflicts / Move / Working days
   ========================= */

// GET /:project_id/holidays/conflicts?dates=2025-02-10,2025-02-11
func (ctl *ProjectHolidayController) CheckConflicts(c *fiber.Ctx) error {
	projectID, err := parseUUIDParam(c, "project_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	raw := strings.TrimSpace(c.Query("dates"))
	if raw == "" {
		return helper.JsonError(c, http.StatusBadRequest, "dates query param is required (comma-separated YYYY-MM-DD)")
	}

	records, err := ctl.Service.CheckConflicts(c.UserContext(), projectID, strings.Split(raw, ","))
	if err != nil {
		log.Printf("[ProjectHoliday.CheckConflicts] project=%s error: %v", projectID, err)
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"conflicts": d.FromConflictRecords(records),
	})
}

// POST /:project_id/holidays/move-tasks
func (ctl *ProjectHolidayController) MoveTasks(c *fiber.Ctx) error {
	projectID, err := parseUUIDParam(c, "project_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.MoveTasksRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ProjectHoliday.MoveTasks] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	res, err := ctl.Service.MoveTasks(c.UserContext(), projectID, req.TaskIDs, req.DaysToMove)
	if err != nil {
		log.Printf("[ProjectHoliday.MoveTasks] project=%s error: %v", projectID, err)
		return writeServiceError(c, err)
	}
	if res.Moved < res.Requested {
		log.Printf("[ProjectHoliday.MoveTasks] project=%s partial: moved=%d requested=%d", projectID, res.Moved, res.Requested)
	}
	return helper.JsonOK(c, "ok", res)
}

// GET /:project_id/working-days?from=YYYY-MM-DD&to=YYYY-MM-DD
func (ctl *ProjectHolidayController) WorkingDays(c *fiber.Ctx) error {
	projectID, err := parseUUIDParam(c, "project_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	from, okFrom := svc.ParseDateYMD(strings.TrimSpace(c.Query("from")))
	to, okTo := svc.ParseDateYMD(strings.TrimSpace(c.Query("to")))
	if !okFrom || !okTo {
		return helper.JsonError(c, http.StatusBadRequest, "from & to query params are required (YYYY-MM-DD)")
	}

	days, err := ctl.Service.WorkingDays(c.UserContext(), projectID, from, to)
	if err != nil {
		log.Printf("[ProjectHoliday.WorkingDays] project=%s error: %v", projectID, err)
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", d.FromWorkingDays(days))
}

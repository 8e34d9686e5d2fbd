// file: internals/features/projects/tasks/dto/task_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "proyekku_backend/internals/features/projects/tasks/model"
)

const dateLayout = "2006-01-02"

func parseDateYMD(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateTaskRequest struct {
	TaskName      string `json:"task_name" validate:"required,max=200"`
	TaskStartDate string `json:"task_start_date" validate:"required,datetime=2006-01-02"`

	TaskStatus   *string        `json:"task_status" validate:"omitempty,oneof=scheduled ongoing completed canceled"`
	TaskMetadata map[string]any `json:"task_metadata"`
}

func (r *CreateTaskRequest) ToModel(projectID uuid.UUID) (*m.TaskModel, error) {
	start, ok := parseDateYMD(r.TaskStartDate)
	if !ok {
		return nil, errors.New("invalid task_start_date (expected YYYY-MM-DD)")
	}

	task := &m.TaskModel{
		TaskProjectID: projectID,
		TaskName:      strings.TrimSpace(r.TaskName),
		TaskStartDate: start,
		TaskStatus:    m.TaskScheduled,
	}
	if r.TaskStatus != nil {
		task.TaskStatus = m.TaskStatusEnum(*r.TaskStatus)
	}
	if r.TaskMetadata != nil {
		task.TaskMetadata = datatypes.JSONMap(r.TaskMetadata)
	}
	return task, nil
}

// Patch (partial update) — pointer = tidak diubah.
type PatchTaskRequest struct {
	TaskName      *string        `json:"task_name" validate:"omitempty,max=200"`
	TaskStartDate *string        `json:"task_start_date" validate:"omitempty,datetime=2006-01-02"`
	TaskStatus    *string        `json:"task_status" validate:"omitempty,oneof=scheduled ongoing completed canceled"`
	TaskMetadata  map[string]any `json:"task_metadata"`
}

func (p *PatchTaskRequest) ToUpdates() (map[string]any, error) {
	updates := map[string]any{}
	if p.TaskName != nil {
		name := strings.TrimSpace(*p.TaskName)
		if name == "" {
			return nil, errors.New("task_name cannot be empty when set")
		}
		updates["task_name"] = name
	}
	if p.TaskStartDate != nil {
		start, ok := parseDateYMD(*p.TaskStartDate)
		if !ok {
			return nil, errors.New("invalid task_start_date (expected YYYY-MM-DD)")
		}
		updates["task_start_date"] = start
	}
	if p.TaskStatus != nil {
		updates["task_status"] = m.TaskStatusEnum(*p.TaskStatus)
	}
	if p.TaskMetadata != nil {
		updates["task_metadata"] = datatypes.JSONMap(p.TaskMetadata)
	}
	return updates, nil
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type TaskResponse struct {
	TaskID        uuid.UUID      `json:"task_id"`
	TaskProjectID uuid.UUID      `json:"task_project_id"`
	TaskName      string         `json:"task_name"`
	TaskStartDate string         `json:"task_start_date"` // YYYY-MM-DD
	TaskStatus    string         `json:"task_status"`
	TaskMetadata  map[string]any `json:"task_metadata,omitempty"`
	TaskCreatedAt time.Time      `json:"task_created_at"`
	TaskUpdatedAt time.Time      `json:"task_updated_at"`
}

func FromModelTask(t *m.TaskModel) *TaskResponse {
	if t == nil {
		return nil
	}
	return &TaskResponse{
		TaskID:        t.TaskID,
		TaskProjectID: t.TaskProjectID,
		TaskName:      t.TaskName,
		TaskStartDate: t.TaskStartDate.Format(dateLayout),
		TaskStatus:    string(t.TaskStatus),
		TaskMetadata:  t.TaskMetadata,
		TaskCreatedAt: t.TaskCreatedAt,
		TaskUpdatedAt: t.TaskUpdatedAt,
	}
}

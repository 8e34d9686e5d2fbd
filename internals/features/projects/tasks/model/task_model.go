// file: internals/features/projects/tasks/model/task_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TaskStatusEnum merepresentasikan enum task_status_enum di Postgres.
type TaskStatusEnum string

const (
	TaskScheduled TaskStatusEnum = "scheduled"
	TaskOngoing   TaskStatusEnum = "ongoing"
	TaskCompleted TaskStatusEnum = "completed"
	TaskCanceled  TaskStatusEnum = "canceled"
)

// IsTerminal: task selesai/batal tidak ikut deteksi konflik kalender.
func (s TaskStatusEnum) IsTerminal() bool {
	return s == TaskCompleted || s == TaskCanceled
}

type TaskModel struct {
	TaskID uuid.UUID `gorm:"column:task_id;type:uuid;default:gen_random_uuid();primaryKey" json:"task_id"`

	// scope proyek
	TaskProjectID uuid.UUID `gorm:"column:task_project_id;type:uuid;not null;index" json:"task_project_id"`

	TaskName string `gorm:"column:task_name;type:varchar(200);not null" json:"task_name"`

	// jadwal mulai (tanggal sipil, tanpa jam)
	TaskStartDate time.Time `gorm:"column:task_start_date;type:date;not null" json:"task_start_date"`

	TaskStatus TaskStatusEnum `gorm:"column:task_status;type:task_status_enum;not null;default:'scheduled'" json:"task_status"`

	TaskMetadata datatypes.JSONMap `gorm:"column:task_metadata;type:jsonb" json:"task_metadata,omitempty"`

	TaskCreatedAt time.Time      `gorm:"column:task_created_at;type:timestamptz;not null;autoCreateTime" json:"task_created_at"`
	TaskUpdatedAt time.Time      `gorm:"column:task_updated_at;type:timestamptz;not null;autoUpdateTime" json:"task_updated_at"`
	TaskDeletedAt gorm.DeletedAt `gorm:"column:task_deleted_at;index" json:"task_deleted_at,omitempty"`
}

func (TaskModel) TableName() string { return "tasks" }

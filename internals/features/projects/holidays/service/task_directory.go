// file: internals/features/projects/holidays/service/task_directory.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	taskModel "proyekku_backend/internals/features/projects/tasks/model"
)

/* =========================
   Port (collaborator task)
   ========================= */

// TaskDirectory: akses baca/tulis minimal ke task milik proyek.
// Hanya field yang relevan penjadwalan; CRUD task penuh ada di feature tasks.
type TaskDirectory interface {
	// Task non-terminal yang scheduled start-nya jatuh di salah satu dates.
	FindTasksOnDates(ctx context.Context, projectID uuid.UUID, dates []time.Time) ([]TaskSummary, error)
	GetTaskStart(ctx context.Context, taskID uuid.UUID) (time.Time, error)
	SetTaskStart(ctx context.Context, taskID uuid.UUID, start time.Time) (bool, error)
}

/* =========================
   GORM adapter
   ========================= */

type GormTaskDirectory struct {
	DB *gorm.DB
}

func NewGormTaskDirectory(db *gorm.DB) *GormTaskDirectory {
	return &GormTaskDirectory{DB: db}
}

// FindTasksOnDates: satu query untuk seluruh batch tanggal (= ANY array),
// bukan satu query per tanggal.
func (d *GormTaskDirectory) FindTasksOnDates(ctx context.Context, projectID uuid.UUID, dates []time.Time) ([]TaskSummary, error) {
	if len(dates) == 0 {
		return nil, nil
	}
	dateStrs := make([]string, 0, len(dates))
	for _, dt := range dates {
		dateStrs = append(dateStrs, FormatDateYMD(dt))
	}

	type row struct {
		TaskID        uuid.UUID `gorm:"column:task_id"`
		TaskName      string    `gorm:"column:task_name"`
		TaskStartDate time.Time `gorm:"column:task_start_date"`
	}
	var rows []row
	q := `
SELECT task_id, task_name, task_start_date
FROM tasks
WHERE task_project_id = ?
  AND task_start_date = ANY(?::date[])
  AND task_status NOT IN ('completed', 'canceled')
  AND task_deleted_at IS NULL
ORDER BY task_start_date ASC, task_name ASC`
	if err := d.DB.WithContext(ctx).Raw(q, projectID, pq.Array(dateStrs)).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: find tasks on dates: %v", ErrStore, err)
	}

	out := make([]TaskSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, TaskSummary{
			TaskID:    r.TaskID,
			TaskName:  r.TaskName,
			StartDate: AtMidnightUTC(r.TaskStartDate),
		})
	}
	return out, nil
}

func (d *GormTaskDirectory) GetTaskStart(ctx context.Context, taskID uuid.UUID) (time.Time, error) {
	var task taskModel.TaskModel
	err := d.DB.WithContext(ctx).
		Select("task_id", "task_start_date").
		Where("task_id = ?", taskID).
		Take(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, fmt.Errorf("task %s: %w", taskID, gorm.ErrRecordNotFound)
		}
		return time.Time{}, fmt.Errorf("%w: get task start: %v", ErrStore, err)
	}
	return AtMidnightUTC(task.TaskStartDate), nil
}

func (d *GormTaskDirectory) SetTaskStart(ctx context.Context, taskID uuid.UUID, start time.Time) (bool, error) {
	res := d.DB.WithContext(ctx).
		Model(&taskModel.TaskModel{}).
		Where("task_id = ?", taskID).
		Update("task_start_date", AtMidnightUTC(start))
	if res.Error != nil {
		return false, fmt.Errorf("%w: set task start: %v", ErrStore, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// file: internals/features/projects/holidays/service/project_directory.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"proyekku_backend/internals/configs"
	projectModel "proyekku_backend/internals/features/projects/projects/model"
)

/* =========================
   Port (collaborator project)
   ========================= */

// ProjectDirectory: validasi keberadaan proyek + pembacaan weekend policy.
type ProjectDirectory interface {
	Exists(ctx context.Context, projectID uuid.UUID) (bool, error)
	WeekendPolicy(ctx context.Context, projectID uuid.UUID) (WeekendPolicy, error)
}

/* =========================
   GORM adapter
   ========================= */

type GormProjectDirectory struct {
	DB *gorm.DB
}

func NewGormProjectDirectory(db *gorm.DB) *GormProjectDirectory {
	return &GormProjectDirectory{DB: db}
}

func (d *GormProjectDirectory) Exists(ctx context.Context, projectID uuid.UUID) (bool, error) {
	var count int64
	if err := d.DB.WithContext(ctx).
		Model(&projectModel.ProjectModel{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// WeekendPolicy: setting per-proyek (project_settings.treat_weekend_as_holiday)
// menimpa default env WORKING_DAY_WEEKEND_POLICY.
func (d *GormProjectDirectory) WeekendPolicy(ctx context.Context, projectID uuid.UUID) (WeekendPolicy, error) {
	var project projectModel.ProjectModel
	err := d.DB.WithContext(ctx).
		Select("project_id", "project_settings").
		Where("project_id = ?", projectID).
		Take(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WeekendExplicitOnly, ErrProjectNotFound
		}
		return WeekendExplicitOnly, err
	}

	if raw, ok := project.ProjectSettings[projectModel.SettingTreatWeekendAsHoliday]; ok {
		if b, ok := raw.(bool); ok {
			if b {
				return WeekendOff, nil
			}
			return WeekendExplicitOnly, nil
		}
	}

	policy, _ := ParseWeekendPolicy(configs.DefaultWeekendPolicy())
	return policy, nil
}

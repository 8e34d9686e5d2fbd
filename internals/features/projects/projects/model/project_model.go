// file: internals/features/projects/projects/model/project_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectModel struct {
	ProjectID uuid.UUID `gorm:"column:project_id;type:uuid;default:gen_random_uuid();primaryKey" json:"project_id"`

	ProjectName string  `gorm:"column:project_name;type:varchar(200);not null" json:"project_name"`
	ProjectSlug *string `gorm:"column:project_slug;type:varchar(160)" json:"project_slug,omitempty"`

	ProjectDescription *string `gorm:"column:project_description;type:text" json:"project_description,omitempty"`

	// pengaturan bebas per proyek, a.l. "treat_weekend_as_holiday": bool
	ProjectSettings datatypes.JSONMap `gorm:"column:project_settings;type:jsonb" json:"project_settings,omitempty"`

	ProjectIsActive bool `gorm:"column:project_is_active;not null;default:true" json:"project_is_active"`

	ProjectCreatedAt time.Time      `gorm:"column:project_created_at;type:timestamptz;not null;autoCreateTime" json:"project_created_at"`
	ProjectUpdatedAt time.Time      `gorm:"column:project_updated_at;type:timestamptz;not null;autoUpdateTime" json:"project_updated_at"`
	ProjectDeletedAt gorm.DeletedAt `gorm:"column:project_deleted_at;index" json:"project_deleted_at,omitempty"`
}

func (ProjectModel) TableName() string { return "projects" }

// SettingTreatWeekendAsHoliday key di ProjectSettings
const SettingTreatWeekendAsHoliday = "treat_weekend_as_holiday"

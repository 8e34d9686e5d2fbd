// file: internals/features/projects/holidays/model/project_holiday_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HolidayKindEnum: asal-usul baris holiday — hanya untuk display/audit, bukan behavior.
type HolidayKindEnum string

const (
	HolidayKindRecurring HolidayKindEnum = "recurring" // hasil generate pola weekday
	HolidayKindSpecific  HolidayKindEnum = "specific"  // tanggal tunggal / range eksplisit
)

// HolidayStatusEnum: active ikut semua kalkulasi kalender, inactive tidak.
// Soft delete (deleted_at) dipisah supaya baris tetap ada untuk audit.
type HolidayStatusEnum string

const (
	HolidayStatusActive   HolidayStatusEnum = "active"
	HolidayStatusInactive HolidayStatusEnum = "inactive"
)

// Invariant: maksimal satu baris ACTIVE per (project_id, date).
// Penegakan ada di store.Upsert (transaksi + row lock), bukan di model.
type ProjectHolidayModel struct {
	ProjectHolidayID uuid.UUID `gorm:"column:project_holiday_id;type:uuid;default:gen_random_uuid();primaryKey" json:"project_holiday_id"`

	// scope proyek
	ProjectHolidayProjectID uuid.UUID `gorm:"column:project_holiday_project_id;type:uuid;not null;index:idx_project_holidays_project_date" json:"project_holiday_project_id"`

	// tanggal libur (tanggal sipil, tanpa jam/zona)
	ProjectHolidayDate time.Time `gorm:"column:project_holiday_date;type:date;not null;index:idx_project_holidays_project_date" json:"project_holiday_date"`

	ProjectHolidayKind HolidayKindEnum `gorm:"column:project_holiday_kind;type:holiday_kind_enum;not null;default:'specific'" json:"project_holiday_kind"`

	// "irrenunciable": tidak bisa ditimpa penjadwalan task (informasional di core ini)
	ProjectHolidayIsNonWaivable bool `gorm:"column:project_holiday_is_non_waivable;not null;default:false" json:"project_holiday_is_non_waivable"`

	ProjectHolidayNotes *string `gorm:"column:project_holiday_notes;type:text" json:"project_holiday_notes,omitempty"`

	ProjectHolidayStatus HolidayStatusEnum `gorm:"column:project_holiday_status;type:holiday_status_enum;not null;default:'active'" json:"project_holiday_status"`

	ProjectHolidayCreatedAt time.Time      `gorm:"column:project_holiday_created_at;type:timestamptz;not null;autoCreateTime" json:"project_holiday_created_at"`
	ProjectHolidayUpdatedAt time.Time      `gorm:"column:project_holiday_updated_at;type:timestamptz;not null;autoUpdateTime" json:"project_holiday_updated_at"`
	ProjectHolidayDeletedAt gorm.DeletedAt `gorm:"column:project_holiday_deleted_at;index" json:"project_holiday_deleted_at,omitempty"`
}

func (ProjectHolidayModel) TableName() string { return "project_holidays" }

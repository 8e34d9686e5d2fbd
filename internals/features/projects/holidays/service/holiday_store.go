// file: internals/features/projects/holidays/service/holiday_store.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "proyekku_backend/internals/features/projects/holidays/model"
)

/* =========================
   Port
   ========================= */

// HolidayStore: boundary persistence baris holiday per proyek.
// Upsert adalah satu-satunya titik penegakan invariant
// "maksimal satu holiday ACTIVE per (project, date)".
type HolidayStore interface {
	Upsert(ctx context.Context, projectID uuid.UUID, date time.Time, nonWaivable bool, notes *string, kind m.HolidayKindEnum) (*m.ProjectHolidayModel, bool, error)
	ListActive(ctx context.Context, projectID uuid.UUID) ([]m.ProjectHolidayModel, error)
	Update(ctx context.Context, holidayID uuid.UUID, patch HolidayPatch) (bool, error)
	SoftDelete(ctx context.Context, holidayID uuid.UUID) (bool, error)
	StatsFor(ctx context.Context, projectID uuid.UUID) (HolidayStats, error)
}

/* =========================
   GORM adapter
   ========================= */

type GormHolidayStore struct {
	DB *gorm.DB
}

func NewGormHolidayStore(db *gorm.DB) *GormHolidayStore {
	return &GormHolidayStore{DB: db}
}

// Upsert keyed (project_id, date) terbatas baris ACTIVE.
// Transaksi + SELECT ... FOR UPDATE supaya dua request generate yang
// overlap tidak menggandakan baris.
func (s *GormHolidayStore) Upsert(
	ctx context.Context,
	projectID uuid.UUID,
	date time.Time,
	nonWaivable bool,
	notes *string,
	kind m.HolidayKindEnum,
) (*m.ProjectHolidayModel, bool, error) {
	date = AtMidnightUTC(date)

	var (
		out     m.ProjectHolidayModel
		created bool
	)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing m.ProjectHolidayModel
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("project_holiday_project_id = ? AND project_holiday_date = ? AND project_holiday_status = ?",
				projectID, date, m.HolidayStatusActive).
			Take(&existing).Error

		switch {
		case err == nil:
			// sudah ada baris ACTIVE → timpa field mutable
			existing.ProjectHolidayIsNonWaivable = nonWaivable
			existing.ProjectHolidayNotes = trimPtr(notes)
			existing.ProjectHolidayKind = kind
			existing.ProjectHolidayStatus = m.HolidayStatusActive
			if er := tx.Save(&existing).Error; er != nil {
				return er
			}
			out = existing
			created = false
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			row := m.ProjectHolidayModel{
				ProjectHolidayProjectID:     projectID,
				ProjectHolidayDate:          date,
				ProjectHolidayKind:          kind,
				ProjectHolidayIsNonWaivable: nonWaivable,
				ProjectHolidayNotes:         trimPtr(notes),
				ProjectHolidayStatus:        m.HolidayStatusActive,
			}
			if er := tx.Create(&row).Error; er != nil {
				return er
			}
			out = row
			created = true
			return nil

		default:
			return err
		}
	})
	if err != nil {
		return nil, false, fmt.Errorf("%w: upsert %s: %v", ErrStore, FormatDateYMD(date), err)
	}
	return &out, created, nil
}

// ListActive: baris ACTIVE (belum soft-deleted), urut tanggal naik.
func (s *GormHolidayStore) ListActive(ctx context.Context, projectID uuid.UUID) ([]m.ProjectHolidayModel, error) {
	var rows []m.ProjectHolidayModel
	if err := s.DB.WithContext(ctx).
		Where("project_holiday_project_id = ? AND project_holiday_status = ?", projectID, m.HolidayStatusActive).
		Order("project_holiday_date ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: list active: %v", ErrStore, err)
	}
	return rows, nil
}

// Update field mutable by id. false bila baris tidak ada (atau sudah deleted).
// Reaktivasi (status → active) dijaga dalam transaksi: ditolak bila sudah ada
// baris ACTIVE lain untuk (project, date) yang sama, supaya invariant
// satu-active-per-tanggal tidak bisa dilanggar lewat jalur update.
func (s *GormHolidayStore) Update(ctx context.Context, holidayID uuid.UUID, patch HolidayPatch) (bool, error) {
	updates := map[string]any{}
	if patch.Kind != nil {
		updates["project_holiday_kind"] = *patch.Kind
	}
	if patch.NonWaivable != nil {
		updates["project_holiday_is_non_waivable"] = *patch.NonWaivable
	}
	if patch.Notes != nil {
		// notes kosong = clear → NULL, konsisten dengan trimPtr di Upsert
		if v := strings.TrimSpace(*patch.Notes); v == "" {
			updates["project_holiday_notes"] = nil
		} else {
			updates["project_holiday_notes"] = v
		}
	}
	if patch.Status != nil {
		updates["project_holiday_status"] = *patch.Status
	}
	if len(updates) == 0 {
		return false, fmt.Errorf("%w: empty patch", ErrInvalidInput)
	}

	reactivating := patch.Status != nil && *patch.Status == m.HolidayStatusActive

	var affected int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row m.ProjectHolidayModel
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("project_holiday_id = ?", holidayID).
			Take(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			affected = 0
			return nil
		}
		if err != nil {
			return err
		}

		if reactivating && row.ProjectHolidayStatus != m.HolidayStatusActive {
			var dup int64
			if er := tx.Model(&m.ProjectHolidayModel{}).
				Where("project_holiday_project_id = ? AND project_holiday_date = ? AND project_holiday_status = ? AND project_holiday_id <> ?",
					row.ProjectHolidayProjectID, row.ProjectHolidayDate, m.HolidayStatusActive, holidayID).
				Count(&dup).Error; er != nil {
				return er
			}
			if dup > 0 {
				return fmt.Errorf("%w: another active holiday exists for %s",
					ErrInvalidInput, FormatDateYMD(row.ProjectHolidayDate))
			}
		}

		res := tx.Model(&m.ProjectHolidayModel{}).
			Where("project_holiday_id = ?", holidayID).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return false, err
		}
		return false, fmt.Errorf("%w: update %s: %v", ErrStore, holidayID, err)
	}
	return affected > 0, nil
}

// SoftDelete: baris tetap ada untuk audit, keluar dari semua kalkulasi kalender.
func (s *GormHolidayStore) SoftDelete(ctx context.Context, holidayID uuid.UUID) (bool, error) {
	res := s.DB.WithContext(ctx).
		Where("project_holiday_id = ?", holidayID).
		Delete(&m.ProjectHolidayModel{})
	if res.Error != nil {
		return false, fmt.Errorf("%w: delete %s: %v", ErrStore, holidayID, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// StatsFor: agregat sekali jalan via FILTER.
func (s *GormHolidayStore) StatsFor(ctx context.Context, projectID uuid.UUID) (HolidayStats, error) {
	var stats HolidayStats
	q := `
SELECT
  COUNT(*)                                                       AS total_active,
  COUNT(*) FILTER (WHERE project_holiday_is_non_waivable)        AS non_waivable,
  COUNT(*) FILTER (WHERE project_holiday_kind = 'recurring')     AS recurring,
  COUNT(*) FILTER (WHERE project_holiday_kind = 'specific')      AS specific
FROM project_holidays
WHERE project_holiday_project_id = ?
  AND project_holiday_status = 'active'
  AND project_holiday_deleted_at IS NULL`
	if err := s.DB.WithContext(ctx).Raw(q, projectID).Scan(&stats).Error; err != nil {
		return HolidayStats{}, fmt.Errorf("%w: stats: %v", ErrStore, err)
	}
	return stats, nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

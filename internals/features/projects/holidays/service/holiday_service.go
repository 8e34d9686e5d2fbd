// file: internals/features/projects/holidays/service/holiday_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "proyekku_backend/internals/features/projects/holidays/model"
)

// HolidayService: lapisan komposisi tipis, satu method per operasi controller.
// Hanya normalisasi argumen + delegasi; tidak menyimpan state antar-request.
type HolidayService struct {
	Store      HolidayStore
	Projects   ProjectDirectory
	Generator  *HolidayGenerator
	Detector   *ConflictDetector
	Scheduler  *TaskRescheduler
	Calculator *WorkingDayCalculator
}

func NewHolidayService(db *gorm.DB) *HolidayService {
	store := NewGormHolidayStore(db)
	tasks := NewGormTaskDirectory(db)
	projects := NewGormProjectDirectory(db)
	detector := &ConflictDetector{Tasks: tasks}
	return &HolidayService{
		Store:      store,
		Projects:   projects,
		Generator:  &HolidayGenerator{Store: store, Detector: detector},
		Detector:   detector,
		Scheduler:  &TaskRescheduler{Tasks: tasks},
		Calculator: &WorkingDayCalculator{Store: store, Projects: projects},
	}
}

// NewHolidayServiceWith: wiring eksplisit (dipakai test dengan mock).
func NewHolidayServiceWith(store HolidayStore, tasks TaskDirectory, projects ProjectDirectory) *HolidayService {
	detector := &ConflictDetector{Tasks: tasks}
	return &HolidayService{
		Store:      store,
		Projects:   projects,
		Generator:  &HolidayGenerator{Store: store, Detector: detector},
		Detector:   detector,
		Scheduler:  &TaskRescheduler{Tasks: tasks},
		Calculator: &WorkingDayCalculator{Store: store, Projects: projects},
	}
}

/* =========================
   Creation flows
   ========================= */

func (s *HolidayService) CreateRecurring(
	ctx context.Context,
	projectID uuid.UUID,
	weekdays []time.Weekday,
	start, end time.Time,
	nonWaivable bool,
	notes *string,
) (*GenerateResult, error) {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.Generator.Recurring(ctx, projectID, weekdays, start, end, nonWaivable, notes)
}

func (s *HolidayService) CreateSpecific(
	ctx context.Context,
	projectID uuid.UUID,
	date time.Time,
	nonWaivable bool,
	notes *string,
) (*SpecificResult, error) {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.Generator.Specific(ctx, projectID, date, nonWaivable, notes)
}

func (s *HolidayService) CreateRange(
	ctx context.Context,
	projectID uuid.UUID,
	start, end time.Time,
	nonWaivable bool,
	notes *string,
) (*GenerateResult, error) {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.Generator.Range(ctx, projectID, start, end, nonWaivable, notes)
}

/* =========================
   Listing & mutation
   ========================= */

func (s *HolidayService) ListForProject(ctx context.Context, projectID uuid.UUID) ([]m.ProjectHolidayModel, HolidayStats, error) {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return nil, HolidayStats{}, err
	}
	rows, err := s.Store.ListActive(ctx, projectID)
	if err != nil {
		return nil, HolidayStats{}, err
	}
	stats, err := s.Store.StatsFor(ctx, projectID)
	if err != nil {
		return nil, HolidayStats{}, err
	}
	return rows, stats, nil
}

func (s *HolidayService) Update(ctx context.Context, holidayID uuid.UUID, patch HolidayPatch) (bool, error) {
	ok, err := s.Store.Update(ctx, holidayID, patch)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrHolidayNotFound
	}
	return true, nil
}

func (s *HolidayService) Delete(ctx context.Context, holidayID uuid.UUID) (bool, error) {
	ok, err := s.Store.SoftDelete(ctx, holidayID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrHolidayNotFound
	}
	return true, nil
}

/* =========================
   Conflict / reschedule / working days
   ========================= */

// CheckConflicts menerima daftar tanggal "YYYY-MM-DD" (umumnya dari query
// comma-separated) dan mendelegasikan ke detector.
func (s *HolidayService) CheckConflicts(ctx context.Context, projectID uuid.UUID, dateStrs []string) ([]ConflictRecord, error) {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return nil, err
	}
	if len(dateStrs) == 0 {
		return nil, fmt.Errorf("%w: empty date list", ErrInvalidInput)
	}
	dates := make([]time.Time, 0, len(dateStrs))
	for _, raw := range dateStrs {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		d, ok := ParseDateYMD(raw)
		if !ok {
			return nil, fmt.Errorf("%w: bad date %q (expected YYYY-MM-DD)", ErrInvalidInput, raw)
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: empty date list", ErrInvalidInput)
	}
	return s.Detector.Detect(ctx, projectID, dates)
}

func (s *HolidayService) MoveTasks(ctx context.Context, projectID uuid.UUID, taskIDs []uuid.UUID, days int) (*MoveResult, error) {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.Scheduler.MoveForward(ctx, projectID, taskIDs, days)
}

func (s *HolidayService) WorkingDays(ctx context.Context, projectID uuid.UUID, start, end time.Time) ([]time.Time, error) {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.Calculator.Enumerate(ctx, projectID, start, end)
}

/* ========================= */

func (s *HolidayService) ensureProject(ctx context.Context, projectID uuid.UUID) error {
	if projectID == uuid.Nil {
		return fmt.Errorf("%w: missing project id", ErrInvalidInput)
	}
	ok, err := s.Projects.Exists(ctx, projectID)
	if err != nil {
		return fmt.Errorf("%w: project lookup: %v", ErrStore, err)
	}
	if !ok {
		return ErrProjectNotFound
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	m "proyekku_backend/internals/features/projects/holidays/model"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockHolidayStore implements HolidayStore in-memory. Baris ACTIVE di-key
// (projectID, date) sehingga invariant satu-active-per-tanggal struktural.
type mockHolidayStore struct {
	rows map[string]*m.ProjectHolidayModel // key: projectID|YYYY-MM-DD (active rows)
	byID map[uuid.UUID]*m.ProjectHolidayModel

	upsertErrOn map[string]error // key: YYYY-MM-DD → error injeksi per tanggal
	upsertErr   error
	listErr     error
	updateErr   error
	deleteErr   error
	statsErr    error
}

func newMockHolidayStore() *mockHolidayStore {
	return &mockHolidayStore{
		rows:        make(map[string]*m.ProjectHolidayModel),
		byID:        make(map[uuid.UUID]*m.ProjectHolidayModel),
		upsertErrOn: make(map[string]error),
	}
}

func storeKey(projectID uuid.UUID, date time.Time) string {
	return projectID.String() + "|" + FormatDateYMD(date)
}

func (s *mockHolidayStore) Upsert(ctx context.Context, projectID uuid.UUID, date time.Time, nonWaivable bool, notes *string, kind m.HolidayKindEnum) (*m.ProjectHolidayModel, bool, error) {
	if s.upsertErr != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrStore, s.upsertErr)
	}
	date = AtMidnightUTC(date)
	if err, ok := s.upsertErrOn[FormatDateYMD(date)]; ok {
		return nil, false, fmt.Errorf("%w: %v", ErrStore, err)
	}

	key := storeKey(projectID, date)
	if existing, ok := s.rows[key]; ok {
		existing.ProjectHolidayIsNonWaivable = nonWaivable
		existing.ProjectHolidayNotes = notes
		existing.ProjectHolidayKind = kind
		existing.ProjectHolidayStatus = m.HolidayStatusActive
		existing.ProjectHolidayUpdatedAt = time.Now()
		return existing, false, nil
	}

	row := &m.ProjectHolidayModel{
		ProjectHolidayID:            uuid.New(),
		ProjectHolidayProjectID:     projectID,
		ProjectHolidayDate:          date,
		ProjectHolidayKind:          kind,
		ProjectHolidayIsNonWaivable: nonWaivable,
		ProjectHolidayNotes:         notes,
		ProjectHolidayStatus:        m.HolidayStatusActive,
		ProjectHolidayCreatedAt:     time.Now(),
		ProjectHolidayUpdatedAt:     time.Now(),
	}
	s.rows[key] = row
	s.byID[row.ProjectHolidayID] = row
	return row, true, nil
}

func (s *mockHolidayStore) ListActive(ctx context.Context, projectID uuid.UUID) ([]m.ProjectHolidayModel, error) {
	if s.listErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, s.listErr)
	}
	var out []m.ProjectHolidayModel
	for _, row := range s.rows {
		if row.ProjectHolidayProjectID == projectID && row.ProjectHolidayStatus == m.HolidayStatusActive {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ProjectHolidayDate.Before(out[j].ProjectHolidayDate)
	})
	return out, nil
}

func (s *mockHolidayStore) Update(ctx context.Context, holidayID uuid.UUID, patch HolidayPatch) (bool, error) {
	if s.updateErr != nil {
		return false, fmt.Errorf("%w: %v", ErrStore, s.updateErr)
	}
	row, ok := s.byID[holidayID]
	if !ok {
		return false, nil
	}
	key := storeKey(row.ProjectHolidayProjectID, row.ProjectHolidayDate)
	// reaktivasi dijaga seperti adapter GORM: tolak bila key sudah
	// ditempati baris ACTIVE lain
	if patch.Status != nil {
		switch *patch.Status {
		case m.HolidayStatusActive:
			if row.ProjectHolidayStatus != m.HolidayStatusActive {
				if other, taken := s.rows[key]; taken && other.ProjectHolidayID != row.ProjectHolidayID {
					return false, fmt.Errorf("%w: another active holiday exists for %s",
						ErrInvalidInput, FormatDateYMD(row.ProjectHolidayDate))
				}
				s.rows[key] = row
			}
		case m.HolidayStatusInactive:
			if cur, taken := s.rows[key]; taken && cur.ProjectHolidayID == row.ProjectHolidayID {
				delete(s.rows, key)
			}
		}
		row.ProjectHolidayStatus = *patch.Status
	}
	if patch.Kind != nil {
		row.ProjectHolidayKind = *patch.Kind
	}
	if patch.NonWaivable != nil {
		row.ProjectHolidayIsNonWaivable = *patch.NonWaivable
	}
	if patch.Notes != nil {
		// kosong = clear → nil, sama dengan adapter
		if v := strings.TrimSpace(*patch.Notes); v == "" {
			row.ProjectHolidayNotes = nil
		} else {
			row.ProjectHolidayNotes = &v
		}
	}
	return true, nil
}

func (s *mockHolidayStore) SoftDelete(ctx context.Context, holidayID uuid.UUID) (bool, error) {
	if s.deleteErr != nil {
		return false, fmt.Errorf("%w: %v", ErrStore, s.deleteErr)
	}
	row, ok := s.byID[holidayID]
	if !ok {
		return false, nil
	}
	delete(s.byID, holidayID)
	key := storeKey(row.ProjectHolidayProjectID, row.ProjectHolidayDate)
	if cur, taken := s.rows[key]; taken && cur.ProjectHolidayID == row.ProjectHolidayID {
		delete(s.rows, key)
	}
	return true, nil
}

func (s *mockHolidayStore) StatsFor(ctx context.Context, projectID uuid.UUID) (HolidayStats, error) {
	if s.statsErr != nil {
		return HolidayStats{}, fmt.Errorf("%w: %v", ErrStore, s.statsErr)
	}
	var stats HolidayStats
	for _, row := range s.rows {
		if row.ProjectHolidayProjectID != projectID || row.ProjectHolidayStatus != m.HolidayStatusActive {
			continue
		}
		stats.TotalActive++
		if row.ProjectHolidayIsNonWaivable {
			stats.NonWaivable++
		}
		if row.ProjectHolidayKind == m.HolidayKindRecurring {
			stats.Recurring++
		} else {
			stats.Specific++
		}
	}
	return stats, nil
}

// activeCount: helper assert invariant satu-active-per-(project,date).
func (s *mockHolidayStore) activeCount(projectID uuid.UUID, date time.Time) int {
	n := 0
	for _, row := range s.rows {
		if row.ProjectHolidayProjectID == projectID &&
			FormatDateYMD(row.ProjectHolidayDate) == FormatDateYMD(date) &&
			row.ProjectHolidayStatus == m.HolidayStatusActive {
			n++
		}
	}
	return n
}

// mockTaskDirectory implements TaskDirectory for testing.
type mockTaskDirectory struct {
	tasks map[uuid.UUID]*mockTask

	findErr     error
	getErr      error
	setErr      error
	setErrOnIDs map[uuid.UUID]error
}

type mockTask struct {
	id      uuid.UUID
	name    string
	start   time.Time
	status  string
	project uuid.UUID
}

func newMockTaskDirectory() *mockTaskDirectory {
	return &mockTaskDirectory{
		tasks:       make(map[uuid.UUID]*mockTask),
		setErrOnIDs: make(map[uuid.UUID]error),
	}
}

func (d *mockTaskDirectory) addTask(projectID uuid.UUID, name, start, status string) uuid.UUID {
	id := uuid.New()
	startDate, _ := ParseDateYMD(start)
	d.tasks[id] = &mockTask{id: id, name: name, start: startDate, status: status, project: projectID}
	return id
}

func (d *mockTaskDirectory) FindTasksOnDates(ctx context.Context, projectID uuid.UUID, dates []time.Time) ([]TaskSummary, error) {
	if d.findErr != nil {
		return nil, d.findErr
	}
	wanted := make(map[string]bool, len(dates))
	for _, dt := range dates {
		wanted[FormatDateYMD(dt)] = true
	}
	var out []TaskSummary
	for _, t := range d.tasks {
		if t.project != projectID {
			continue
		}
		if t.status == "completed" || t.status == "canceled" {
			continue
		}
		if wanted[FormatDateYMD(t.start)] {
			out = append(out, TaskSummary{TaskID: t.id, TaskName: t.name, StartDate: t.start})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].TaskName < out[j].TaskName
		}
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}

func (d *mockTaskDirectory) GetTaskStart(ctx context.Context, taskID uuid.UUID) (time.Time, error) {
	if d.getErr != nil {
		return time.Time{}, d.getErr
	}
	t, ok := d.tasks[taskID]
	if !ok {
		return time.Time{}, fmt.Errorf("task %s not found", taskID)
	}
	return t.start, nil
}

func (d *mockTaskDirectory) SetTaskStart(ctx context.Context, taskID uuid.UUID, start time.Time) (bool, error) {
	if d.setErr != nil {
		return false, d.setErr
	}
	if err, ok := d.setErrOnIDs[taskID]; ok {
		return false, err
	}
	t, ok := d.tasks[taskID]
	if !ok {
		return false, nil
	}
	t.start = AtMidnightUTC(start)
	return true, nil
}

// mockProjectDirectory implements ProjectDirectory for testing.
type mockProjectDirectory struct {
	existing  map[uuid.UUID]bool
	policy    WeekendPolicy
	existsErr error
	policyErr error
}

func newMockProjectDirectory(ids ...uuid.UUID) *mockProjectDirectory {
	existing := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		existing[id] = true
	}
	return &mockProjectDirectory{existing: existing, policy: WeekendExplicitOnly}
}

func (d *mockProjectDirectory) Exists(ctx context.Context, projectID uuid.UUID) (bool, error) {
	if d.existsErr != nil {
		return false, d.existsErr
	}
	return d.existing[projectID], nil
}

func (d *mockProjectDirectory) WeekendPolicy(ctx context.Context, projectID uuid.UUID) (WeekendPolicy, error) {
	if d.policyErr != nil {
		return WeekendExplicitOnly, d.policyErr
	}
	return d.policy, nil
}

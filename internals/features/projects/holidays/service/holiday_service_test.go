package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	m "proyekku_backend/internals/features/projects/holidays/model"
)

func newService(store *mockHolidayStore, tasks *mockTaskDirectory, projects *mockProjectDirectory) *HolidayService {
	return NewHolidayServiceWith(store, tasks, projects)
}

func TestServiceRejectsUnknownProject(t *testing.T) {
	svc := newService(newMockHolidayStore(), newMockTaskDirectory(), newMockProjectDirectory())
	ghost := uuid.New()
	ctx := context.Background()

	if _, err := svc.CreateSpecific(ctx, ghost, mustDate(t, "2025-05-01"), false, nil); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("CreateSpecific err = %v, want ErrProjectNotFound", err)
	}
	if _, err := svc.CreateRecurring(ctx, ghost, []time.Weekday{time.Monday}, mustDate(t, "2025-01-01"), mustDate(t, "2025-01-31"), false, nil); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("CreateRecurring err = %v, want ErrProjectNotFound", err)
	}
	if _, _, err := svc.ListForProject(ctx, ghost); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("ListForProject err = %v, want ErrProjectNotFound", err)
	}
	if _, err := svc.WorkingDays(ctx, ghost, mustDate(t, "2025-01-01"), mustDate(t, "2025-01-05")); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("WorkingDays err = %v, want ErrProjectNotFound", err)
	}
}

func TestServiceCreateAndList(t *testing.T) {
	store := newMockHolidayStore()
	projectID := uuid.New()
	svc := newService(store, newMockTaskDirectory(), newMockProjectDirectory(projectID))
	ctx := context.Background()

	if _, err := svc.CreateRange(ctx, projectID, mustDate(t, "2025-06-02"), mustDate(t, "2025-06-04"), true, nil); err != nil {
		t.Fatalf("CreateRange: %v", err)
	}
	if _, err := svc.CreateSpecific(ctx, projectID, mustDate(t, "2025-06-10"), false, nil); err != nil {
		t.Fatalf("CreateSpecific: %v", err)
	}

	rows, stats, err := svc.ListForProject(ctx, projectID)
	if err != nil {
		t.Fatalf("ListForProject: %v", err)
	}
	if len(rows) != 4 {
		t.Errorf("rows = %d, want 4", len(rows))
	}
	if stats.TotalActive != 4 || stats.NonWaivable != 3 || stats.Specific != 4 {
		t.Errorf("stats = %+v, want total=4 nonWaivable=3 specific=4", stats)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].ProjectHolidayDate.Before(rows[i-1].ProjectHolidayDate) {
			t.Errorf("rows not in ascending date order at index %d", i)
		}
	}
}

func TestServiceCheckConflictsParsesDates(t *testing.T) {
	store := newMockHolidayStore()
	tasks := newMockTaskDirectory()
	projectID := uuid.New()
	tasks.addTask(projectID, "retro", "2025-07-01", "scheduled")
	svc := newService(store, tasks, newMockProjectDirectory(projectID))
	ctx := context.Background()

	conflicts, err := svc.CheckConflicts(ctx, projectID, []string{" 2025-07-01 ", "2025-07-02"})
	if err != nil {
		t.Fatalf("CheckConflicts: %v", err)
	}
	if len(conflicts) != 1 || FormatDateYMD(conflicts[0].Date) != "2025-07-01" {
		t.Errorf("conflicts = %+v, want single hit on 2025-07-01", conflicts)
	}

	if _, err := svc.CheckConflicts(ctx, projectID, []string{"07/01/2025"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad format err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.CheckConflicts(ctx, projectID, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty list err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.CheckConflicts(ctx, projectID, []string{"  ", ""}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank-only list err = %v, want ErrInvalidInput", err)
	}
}

func TestServiceUpdateNotFound(t *testing.T) {
	svc := newService(newMockHolidayStore(), newMockTaskDirectory(), newMockProjectDirectory())
	inactive := m.HolidayStatusInactive

	_, err := svc.Update(context.Background(), uuid.New(), HolidayPatch{Status: &inactive})
	if !errors.Is(err, ErrHolidayNotFound) {
		t.Fatalf("err = %v, want ErrHolidayNotFound", err)
	}
}

func TestServiceDeleteLifecycle(t *testing.T) {
	store := newMockHolidayStore()
	projectID := uuid.New()
	svc := newService(store, newMockTaskDirectory(), newMockProjectDirectory(projectID))
	ctx := context.Background()

	res, err := svc.CreateSpecific(ctx, projectID, mustDate(t, "2025-08-17"), true, nil)
	if err != nil {
		t.Fatalf("CreateSpecific: %v", err)
	}

	if _, err := svc.Delete(ctx, res.Record.ProjectHolidayID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	// delete kedua: baris sudah tidak ada
	if _, err := svc.Delete(ctx, res.Record.ProjectHolidayID); !errors.Is(err, ErrHolidayNotFound) {
		t.Errorf("second delete err = %v, want ErrHolidayNotFound", err)
	}

	rows, _, err := svc.ListForProject(ctx, projectID)
	if err != nil {
		t.Fatalf("ListForProject: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %d after delete, want 0", len(rows))
	}
}

func TestServiceReactivationKeepsSingleActiveRow(t *testing.T) {
	store := newMockHolidayStore()
	projectID := uuid.New()
	svc := newService(store, newMockTaskDirectory(), newMockProjectDirectory(projectID))
	ctx := context.Background()
	date := mustDate(t, "2025-09-01")
	active, inactive := m.HolidayStatusActive, m.HolidayStatusInactive

	first, err := svc.CreateSpecific(ctx, projectID, date, false, nil)
	if err != nil {
		t.Fatalf("CreateSpecific: %v", err)
	}
	if _, err := svc.Update(ctx, first.Record.ProjectHolidayID, HolidayPatch{Status: &inactive}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	// tanggal yang sama di-upsert ulang → baris baru mengambil alih key
	second, err := svc.CreateSpecific(ctx, projectID, date, false, nil)
	if err != nil {
		t.Fatalf("second CreateSpecific: %v", err)
	}
	if second.Action != "created" || second.Record.ProjectHolidayID == first.Record.ProjectHolidayID {
		t.Fatalf("second upsert should create a fresh row, got action=%q", second.Action)
	}

	// reaktivasi baris lama harus ditolak selama baris baru masih ACTIVE
	if _, err := svc.Update(ctx, first.Record.ProjectHolidayID, HolidayPatch{Status: &active}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("reactivate err = %v, want ErrInvalidInput", err)
	}
	if n := store.activeCount(projectID, date); n != 1 {
		t.Errorf("active rows for date = %d, want 1", n)
	}

	// setelah baris baru nonaktif, reaktivasi baris lama boleh
	if _, err := svc.Update(ctx, second.Record.ProjectHolidayID, HolidayPatch{Status: &inactive}); err != nil {
		t.Fatalf("deactivate second: %v", err)
	}
	if _, err := svc.Update(ctx, first.Record.ProjectHolidayID, HolidayPatch{Status: &active}); err != nil {
		t.Fatalf("reactivate after takeover gone: %v", err)
	}
	if n := store.activeCount(projectID, date); n != 1 {
		t.Errorf("active rows after swap = %d, want 1", n)
	}
}

func TestServiceUpdateClearsNotesToNull(t *testing.T) {
	store := newMockHolidayStore()
	projectID := uuid.New()
	svc := newService(store, newMockTaskDirectory(), newMockProjectDirectory(projectID))
	ctx := context.Background()
	notes := "libur dadakan"

	res, err := svc.CreateSpecific(ctx, projectID, mustDate(t, "2025-10-06"), false, &notes)
	if err != nil {
		t.Fatalf("CreateSpecific: %v", err)
	}

	// patch notes "" (hasil mapping explicit null di DTO) → tersimpan NULL,
	// sama dengan normalisasi trimPtr di jalur upsert
	empty := ""
	if _, err := svc.Update(ctx, res.Record.ProjectHolidayID, HolidayPatch{Notes: &empty}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	rows, _, err := svc.ListForProject(ctx, projectID)
	if err != nil {
		t.Fatalf("ListForProject: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].ProjectHolidayNotes != nil {
		t.Errorf("notes = %q, want nil after clearing", *rows[0].ProjectHolidayNotes)
	}
}

func TestServiceMoveTasksChecksProject(t *testing.T) {
	svc := newService(newMockHolidayStore(), newMockTaskDirectory(), newMockProjectDirectory())

	_, err := svc.MoveTasks(context.Background(), uuid.New(), []uuid.UUID{uuid.New()}, 2)
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("err = %v, want ErrProjectNotFound", err)
	}
}

func TestServiceWrapsProjectLookupFailure(t *testing.T) {
	projects := newMockProjectDirectory()
	projects.existsErr = errors.New("timeout")
	svc := newService(newMockHolidayStore(), newMockTaskDirectory(), projects)

	_, err := svc.CreateSpecific(context.Background(), uuid.New(), mustDate(t, "2025-05-01"), false, nil)
	if !errors.Is(err, ErrStore) {
		t.Fatalf("err = %v, want ErrStore", err)
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDetectReportsOnlyHitDates(t *testing.T) {
	tasks := newMockTaskDirectory()
	projectID := uuid.New()
	tasks.addTask(projectID, "kickoff meeting", "2025-02-10", "scheduled")
	tasks.addTask(projectID, "sprint review", "2025-02-10", "ongoing")
	cd := &ConflictDetector{Tasks: tasks}

	conflicts, err := cd.Detect(context.Background(), projectID,
		[]time.Time{mustDate(t, "2025-02-10"), mustDate(t, "2025-02-11")})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(conflicts) != 1 {
		t.Fatalf("conflicts = %d, want 1 (tanggal tanpa task tidak muncul)", len(conflicts))
	}
	if FormatDateYMD(conflicts[0].Date) != "2025-02-10" {
		t.Errorf("date = %s, want 2025-02-10", FormatDateYMD(conflicts[0].Date))
	}
	if len(conflicts[0].Tasks) != 2 {
		t.Errorf("tasks = %d, want 2", len(conflicts[0].Tasks))
	}
}

func TestDetectSkipsTerminalTasks(t *testing.T) {
	tasks := newMockTaskDirectory()
	projectID := uuid.New()
	tasks.addTask(projectID, "done already", "2025-02-10", "completed")
	tasks.addTask(projectID, "never mind", "2025-02-10", "canceled")
	cd := &ConflictDetector{Tasks: tasks}

	conflicts, err := cd.Detect(context.Background(), projectID, []time.Time{mustDate(t, "2025-02-10")})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(conflicts) != 0 {
		t.Errorf("conflicts = %d, want 0 (completed/canceled never conflict)", len(conflicts))
	}
}

func TestDetectDeduplicatesAndSortsDates(t *testing.T) {
	tasks := newMockTaskDirectory()
	projectID := uuid.New()
	tasks.addTask(projectID, "later task", "2025-03-05", "scheduled")
	tasks.addTask(projectID, "earlier task", "2025-03-01", "scheduled")
	cd := &ConflictDetector{Tasks: tasks}

	conflicts, err := cd.Detect(context.Background(), projectID, []time.Time{
		mustDate(t, "2025-03-05"),
		mustDate(t, "2025-03-01"),
		mustDate(t, "2025-03-05"), // duplikat
	})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(conflicts) != 2 {
		t.Fatalf("conflicts = %d, want 2", len(conflicts))
	}
	if FormatDateYMD(conflicts[0].Date) != "2025-03-01" || FormatDateYMD(conflicts[1].Date) != "2025-03-05" {
		t.Errorf("conflicts not in ascending date order: %s, %s",
			FormatDateYMD(conflicts[0].Date), FormatDateYMD(conflicts[1].Date))
	}
	if len(conflicts[1].Tasks) != 1 {
		t.Errorf("duplicate input date must not duplicate tasks, got %d", len(conflicts[1].Tasks))
	}
}

func TestDetectEmptyInputReturnsNothing(t *testing.T) {
	cd := &ConflictDetector{Tasks: newMockTaskDirectory()}
	conflicts, err := cd.Detect(context.Background(), uuid.New(), nil)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(conflicts) != 0 {
		t.Errorf("conflicts = %d, want 0", len(conflicts))
	}
}

func TestDetectPropagatesDirectoryError(t *testing.T) {
	tasks := newMockTaskDirectory()
	boom := errors.New("connection reset")
	tasks.findErr = boom
	cd := &ConflictDetector{Tasks: tasks}

	_, err := cd.Detect(context.Background(), uuid.New(), []time.Time{mustDate(t, "2025-02-10")})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
}

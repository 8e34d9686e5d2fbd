package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestMoveForwardShiftsStartDates(t *testing.T) {
	tasks := newMockTaskDirectory()
	projectID := uuid.New()
	id := tasks.addTask(projectID, "deploy", "2025-02-10", "scheduled")
	tr := &TaskRescheduler{Tasks: tasks}

	res, err := tr.MoveForward(context.Background(), projectID, []uuid.UUID{id}, 3)
	if err != nil {
		t.Fatalf("MoveForward: %v", err)
	}
	if res.Requested != 1 || res.Moved != 1 || len(res.FailedIDs) != 0 {
		t.Fatalf("result = %+v, want requested=1 moved=1 failed=0", res)
	}

	got, err := tasks.GetTaskStart(context.Background(), id)
	if err != nil {
		t.Fatalf("GetTaskStart: %v", err)
	}
	if FormatDateYMD(got) != "2025-02-13" {
		t.Errorf("start = %s, want 2025-02-13", FormatDateYMD(got))
	}
}

func TestMoveForwardPartialFailure(t *testing.T) {
	tasks := newMockTaskDirectory()
	projectID := uuid.New()
	okID := tasks.addTask(projectID, "fine", "2025-02-10", "scheduled")
	badID := tasks.addTask(projectID, "broken", "2025-02-10", "scheduled")
	tasks.setErrOnIDs[badID] = errors.New("row locked")
	tr := &TaskRescheduler{Tasks: tasks}

	res, err := tr.MoveForward(context.Background(), projectID, []uuid.UUID{okID, badID}, 1)
	if err != nil {
		t.Fatalf("MoveForward: %v", err)
	}
	if res.Requested != 2 || res.Moved != 1 {
		t.Errorf("requested=%d moved=%d, want 2/1", res.Requested, res.Moved)
	}
	if len(res.FailedIDs) != 1 || res.FailedIDs[0] != badID {
		t.Errorf("failedIDs = %v, want [%s]", res.FailedIDs, badID)
	}

	// task yang sukses tetap tergeser
	got, _ := tasks.GetTaskStart(context.Background(), okID)
	if FormatDateYMD(got) != "2025-02-11" {
		t.Errorf("ok task start = %s, want 2025-02-11", FormatDateYMD(got))
	}
}

func TestMoveForwardUnknownTaskCountsAsFailed(t *testing.T) {
	tr := &TaskRescheduler{Tasks: newMockTaskDirectory()}
	ghost := uuid.New()

	res, err := tr.MoveForward(context.Background(), uuid.New(), []uuid.UUID{ghost}, 2)
	if err != nil {
		t.Fatalf("MoveForward: %v", err)
	}
	if res.Moved != 0 || len(res.FailedIDs) != 1 {
		t.Errorf("result = %+v, want moved=0 failed=1", res)
	}
}

func TestMoveForwardRejectsNonPositiveDays(t *testing.T) {
	tr := &TaskRescheduler{Tasks: newMockTaskDirectory()}
	for _, days := range []int{0, -3} {
		_, err := tr.MoveForward(context.Background(), uuid.New(), []uuid.UUID{uuid.New()}, days)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("days=%d: err = %v, want ErrInvalidInput", days, err)
		}
	}
}

func TestMoveForwardRejectsEmptyIDList(t *testing.T) {
	tr := &TaskRescheduler{Tasks: newMockTaskDirectory()}
	_, err := tr.MoveForward(context.Background(), uuid.New(), nil, 1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

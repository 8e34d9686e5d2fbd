// file: internals/features/projects/holidays/service/task_rescheduler.go
package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// TaskRescheduler menggeser scheduled start task ke depan N hari kalender.
//
// Shift tunggal, non-rekursif: tanggal tujuan TIDAK dicek ulang terhadap
// kalender libur atau task lain. Operator me-review daftar konflik dan
// memutuskan sendiri — known limitation yang dipertahankan.
type TaskRescheduler struct {
	Tasks TaskDirectory
}

// MoveForward: gagal per-task tidak membatalkan batch; Moved <= Requested
// dan pemanggil membandingkan keduanya.
func (tr *TaskRescheduler) MoveForward(ctx context.Context, projectID uuid.UUID, taskIDs []uuid.UUID, days int) (*MoveResult, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be > 0 (got %d)", ErrInvalidInput, days)
	}
	if len(taskIDs) == 0 {
		return nil, fmt.Errorf("%w: empty task id list", ErrInvalidInput)
	}

	res := &MoveResult{Requested: len(taskIDs)}
	for _, id := range taskIDs {
		start, err := tr.Tasks.GetTaskStart(ctx, id)
		if err != nil {
			log.Printf("[TaskRescheduler.MoveForward] project=%s task=%s read error: %v", projectID, id, err)
			res.FailedIDs = append(res.FailedIDs, id)
			continue
		}
		ok, err := tr.Tasks.SetTaskStart(ctx, id, start.AddDate(0, 0, days))
		if err != nil || !ok {
			log.Printf("[TaskRescheduler.MoveForward] project=%s task=%s write failed: %v", projectID, id, err)
			res.FailedIDs = append(res.FailedIDs, id)
			continue
		}
		res.Moved++
	}
	return res, nil
}

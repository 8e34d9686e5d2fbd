// file: internals/features/projects/holidays/service/conflict_detector.go
package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ConflictDetector: cross-reference tanggal kandidat libur vs task terjadwal.
// Pure read; tidak pernah memutasi holiday maupun task.
type ConflictDetector struct {
	Tasks TaskDirectory
}

// Detect mengembalikan satu ConflictRecord per tanggal yang punya minimal
// satu task non-terminal; tanggal tanpa task tidak muncul. Task per entry
// urut scheduled-start (lalu nama, dari directory).
func (cd *ConflictDetector) Detect(ctx context.Context, projectID uuid.UUID, dates []time.Time) ([]ConflictRecord, error) {
	if len(dates) == 0 {
		return nil, nil
	}

	// dedup + normalisasi tanggal
	seen := make(map[string]time.Time, len(dates))
	for _, d := range dates {
		d = AtMidnightUTC(d)
		seen[FormatDateYMD(d)] = d
	}
	unique := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		unique = append(unique, d)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].Before(unique[j]) })

	tasks, err := cd.Tasks.FindTasksOnDates(ctx, projectID, unique)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, nil
	}

	byDate := make(map[string][]TaskSummary, len(unique))
	for _, t := range tasks {
		key := FormatDateYMD(t.StartDate)
		byDate[key] = append(byDate[key], t)
	}

	out := make([]ConflictRecord, 0, len(byDate))
	for _, d := range unique {
		if hits, ok := byDate[FormatDateYMD(d)]; ok {
			out = append(out, ConflictRecord{Date: d, Tasks: hits})
		}
	}
	return out, nil
}

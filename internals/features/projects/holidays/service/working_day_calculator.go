// file: internals/features/projects/holidays/service/working_day_calculator.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WorkingDayCalculator: enumerasi/hitung hari kerja holiday-aware.
// Read-only terhadap store.
type WorkingDayCalculator struct {
	Store    HolidayStore
	Projects ProjectDirectory
}

// Enumerate: semua hari di [start, end] yang tidak tertutup holiday ACTIVE,
// urut naik. Perlakuan Sabtu/Minggu mengikuti WeekendPolicy proyek
// (setting proyek > default env).
func (w *WorkingDayCalculator) Enumerate(ctx context.Context, projectID uuid.UUID, start, end time.Time) ([]time.Time, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: missing date range", ErrInvalidInput)
	}
	start = AtMidnightUTC(start)
	end = AtMidnightUTC(end)
	if start.After(end) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, FormatDateYMD(start), FormatDateYMD(end))
	}

	policy, err := w.Projects.WeekendPolicy(ctx, projectID)
	if err != nil {
		return nil, err
	}

	rows, err := w.Store.ListActive(ctx, projectID)
	if err != nil {
		return nil, err
	}
	holidaySet := make(map[string]bool, len(rows))
	for _, h := range rows {
		holidaySet[FormatDateYMD(h.ProjectHolidayDate)] = true
	}

	days := make([]time.Time, 0, 32)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if holidaySet[FormatDateYMD(d)] {
			continue
		}
		if policy == WeekendOff && (d.Weekday() == time.Saturday || d.Weekday() == time.Sunday) {
			continue
		}
		days = append(days, d)
	}
	return days, nil
}

func (w *WorkingDayCalculator) Count(ctx context.Context, projectID uuid.UUID, start, end time.Time) (int, error) {
	days, err := w.Enumerate(ctx, projectID, start, end)
	if err != nil {
		return 0, err
	}
	return len(days), nil
}

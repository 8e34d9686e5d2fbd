// file: internals/features/projects/holidays/service/holiday_generator.go
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	m "proyekku_backend/internals/features/projects/holidays/model"
)

// Guard: range generate maksimal 2 tahun.
const maxHolidaySpanDays = 366 * 2

// HolidayGenerator mengekspansi rule (pola weekday / tanggal tunggal / range)
// menjadi baris holiday via store.Upsert per tanggal, lalu melampirkan hasil
// deteksi konflik atas tanggal yang tersentuh.
type HolidayGenerator struct {
	Store    HolidayStore
	Detector *ConflictDetector
}

/* =========================
   Recurring (pola weekday)
   ========================= */

// Recurring: iterasi setiap hari [start, end] urut naik; hari yang weekday-nya
// ada di set di-upsert dengan kind=recurring. Upsert per tanggal independen,
// jadi pengulangan call yang sama idempotent (created → updated).
func (g *HolidayGenerator) Recurring(
	ctx context.Context,
	projectID uuid.UUID,
	weekdays []time.Weekday,
	start, end time.Time,
	nonWaivable bool,
	notes *string,
) (*GenerateResult, error) {
	if len(weekdays) == 0 {
		return nil, fmt.Errorf("%w: weekday set is empty", ErrInvalidInput)
	}
	set := make(map[time.Weekday]bool, len(weekdays))
	for _, wd := range weekdays {
		if wd < time.Sunday || wd > time.Saturday {
			return nil, fmt.Errorf("%w: weekday %d out of range", ErrInvalidInput, wd)
		}
		set[wd] = true
	}
	return g.generate(ctx, projectID, start, end, nonWaivable, notes, m.HolidayKindRecurring, set)
}

/* =========================
   Specific (tanggal tunggal)
   ========================= */

func (g *HolidayGenerator) Specific(
	ctx context.Context,
	projectID uuid.UUID,
	date time.Time,
	nonWaivable bool,
	notes *string,
) (*SpecificResult, error) {
	if projectID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing project id", ErrInvalidInput)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: missing date", ErrInvalidInput)
	}
	date = AtMidnightUTC(date)

	rec, created, err := g.Store.Upsert(ctx, projectID, date, nonWaivable, notes, m.HolidayKindSpecific)
	if err != nil {
		return nil, err
	}

	res := &SpecificResult{Record: rec}
	if created {
		res.Action = "created"
	} else {
		res.Action = "updated"
	}

	conflicts, err := g.Detector.Detect(ctx, projectID, []time.Time{date})
	if err != nil {
		// holiday sudah tersimpan; kegagalan deteksi cukup dicatat
		log.Printf("[HolidayGenerator.Specific] project=%s conflict detect error: %v", projectID, err)
	} else {
		res.Conflicts = conflicts
	}
	return res, nil
}

/* =========================
   Range (semua hari, tanpa filter weekday)
   ========================= */

func (g *HolidayGenerator) Range(
	ctx context.Context,
	projectID uuid.UUID,
	start, end time.Time,
	nonWaivable bool,
	notes *string,
) (*GenerateResult, error) {
	return g.generate(ctx, projectID, start, end, nonWaivable, notes, m.HolidayKindSpecific, nil)
}

/* =========================
   Loop bersama
   ========================= */

// generate memproses tanggal urut naik; kegagalan store ditangkap per-iterasi
// supaya batch lanjut dan agregat parsial tetap terlapor.
// filter == nil berarti semua hari ikut.
func (g *HolidayGenerator) generate(
	ctx context.Context,
	projectID uuid.UUID,
	start, end time.Time,
	nonWaivable bool,
	notes *string,
	kind m.HolidayKindEnum,
	filter map[time.Weekday]bool,
) (*GenerateResult, error) {
	if projectID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing project id", ErrInvalidInput)
	}
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: missing date range", ErrInvalidInput)
	}
	start = AtMidnightUTC(start)
	end = AtMidnightUTC(end)
	if start.After(end) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, FormatDateYMD(start), FormatDateYMD(end))
	}
	if span := int(end.Sub(start).Hours()/24) + 1; span > maxHolidaySpanDays {
		return nil, fmt.Errorf("%w: span %d days exceeds max %d", ErrInvalidRange, span, maxHolidaySpanDays)
	}

	res := &GenerateResult{}
	touched := make([]time.Time, 0, 32)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if filter != nil && !filter[d.Weekday()] {
			continue
		}
		_, created, err := g.Store.Upsert(ctx, projectID, d, nonWaivable, notes, kind)
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, err.Error())
			continue
		}
		if created {
			res.Created++
		} else {
			res.Updated++
		}
		touched = append(touched, d)
	}

	if len(touched) > 0 {
		conflicts, err := g.Detector.Detect(ctx, projectID, touched)
		if err != nil {
			log.Printf("[HolidayGenerator.generate] project=%s conflict detect error: %v", projectID, err)
			res.Errors = append(res.Errors, err.Error())
		} else {
			res.Conflicts = conflicts
		}
	}
	return res, nil
}

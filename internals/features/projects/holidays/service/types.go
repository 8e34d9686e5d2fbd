// file: internals/features/projects/holidays/service/types.go
package service

import (
	"time"

	"github.com/google/uuid"

	m "proyekku_backend/internals/features/projects/holidays/model"
)

/* =========================================================
   Hasil operasi (ephemeral, tidak dipersist)
   ========================================================= */

// TaskSummary: ringkasan task yang bentrok dengan tanggal libur.
type TaskSummary struct {
	TaskID    uuid.UUID `json:"task_id"`
	TaskName  string    `json:"task_name"`
	StartDate time.Time `json:"start_date"`
}

// ConflictRecord: satu tanggal libur + daftar task terjadwal di tanggal itu
// (urut scheduled-start) pada saat pembuatan holiday.
type ConflictRecord struct {
	Date  time.Time     `json:"date"`
	Tasks []TaskSummary `json:"tasks"`
}

// GenerateResult: agregat Recurring/Range. Loop per-tanggal menangkap
// kegagalan store per-iterasi, jadi Created/Updated tetap terisi walau
// sebagian tanggal gagal (Errors berisi pesannya).
type GenerateResult struct {
	Created   int              `json:"created"`
	Updated   int              `json:"updated"`
	Failed    int              `json:"failed"`
	Conflicts []ConflictRecord `json:"conflicts"`
	Errors    []string         `json:"errors,omitempty"`
}

// SpecificResult: hasil upsert satu tanggal.
type SpecificResult struct {
	Action    string                 `json:"action"` // "created" | "updated"
	Record    *m.ProjectHolidayModel `json:"record"`
	Conflicts []ConflictRecord       `json:"conflicts"`
}

// MoveResult: Moved <= Requested; pemanggil membandingkan keduanya
// untuk mendeteksi partial failure.
type MoveResult struct {
	Requested int         `json:"requested"`
	Moved     int         `json:"moved"`
	FailedIDs []uuid.UUID `json:"failed_ids,omitempty"`
}

// HolidayStats: agregat listing.
type HolidayStats struct {
	TotalActive int64 `json:"total_active"`
	NonWaivable int64 `json:"non_waivable"`
	Recurring   int64 `json:"recurring"`
	Specific    int64 `json:"specific"`
}

// HolidayPatch: field mutable untuk update by id (pointer = tidak diubah).
type HolidayPatch struct {
	Kind        *m.HolidayKindEnum
	NonWaivable *bool
	Notes       *string
	Status      *m.HolidayStatusEnum
}

/* =========================================================
   Weekend policy (configurable: env default + override per proyek)
   ========================================================= */

// WeekendPolicy menentukan apakah Sabtu/Minggu otomatis non-working
// walau tanpa baris holiday eksplisit.
type WeekendPolicy string

const (
	// hanya baris holiday ACTIVE yang dihitung non-working (default)
	WeekendExplicitOnly WeekendPolicy = "explicit-only"
	// Sabtu/Minggu selalu non-working
	WeekendOff WeekendPolicy = "weekend-off"
)

func ParseWeekendPolicy(s string) (WeekendPolicy, bool) {
	switch WeekendPolicy(s) {
	case WeekendExplicitOnly, WeekendOff:
		return WeekendPolicy(s), true
	}
	return WeekendExplicitOnly, false
}

/* =========================================================
   Util tanggal (kalender sipil, timezone-naive: semua UTC midnight)
   ========================================================= */

const DateLayout = "2006-01-02"

// AtMidnightUTC menormalkan nilai apa pun ke tanggal sipil.
func AtMidnightUTC(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

// ParseDateYMD: "YYYY-MM-DD" → tanggal sipil.
func ParseDateYMD(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return AtMidnightUTC(t), true
}

func FormatDateYMD(t time.Time) string { return t.Format(DateLayout) }

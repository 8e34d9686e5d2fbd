// file: internals/features/projects/holidays/dto/project_holiday_dto.go
package dto

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	m "proyekku_backend/internals/features/projects/holidays/model"
	svc "proyekku_backend/internals/features/projects/holidays/service"
)

/* =========================================================
   Patch types (tri-state)
   - Patch[T]           : not-set | set(value)
   - PatchNullable[T]   : not-set | set(null) | set(value)
   ========================================================= */

type Patch[T any] struct {
	Set   bool
	Value T
}

func (p *Patch[T]) UnmarshalJSON(b []byte) error {
	// Any presence in JSON means Set=true (even if zero value)
	p.Set = true
	return json.Unmarshal(b, &p.Value)
}

func (p Patch[T]) IsSet() bool { return p.Set }

type PatchNullable[T any] struct {
	Set   bool // field key present?
	Valid bool // true => has Value, false => explicit null
	Value T
}

func (p *PatchNullable[T]) UnmarshalJSON(b []byte) error {
	p.Set = true
	if string(b) == "null" {
		p.Valid = false
		return nil
	}
	p.Valid = true
	return json.Unmarshal(b, &p.Value)
}

func (p PatchNullable[T]) IsSet() bool { return p.Set }

/* =========================================================
   1) REQUESTS
   ========================================================= */

// Weekday selector: enum tertutup 0..6 (0=Minggu, mengikuti time.Weekday),
// divalidasi di boundary — bukan integer bebas dari form.
type CreateRecurringHolidayRequest struct {
	ProjectHolidayWeekdays []int `json:"project_holiday_weekdays" validate:"required,min=1,dive,min=0,max=6"`

	// Dates in "YYYY-MM-DD"
	ProjectHolidayStartDate string `json:"project_holiday_start_date" validate:"required,datetime=2006-01-02"`
	ProjectHolidayEndDate   string `json:"project_holiday_end_date"   validate:"required,datetime=2006-01-02"`

	ProjectHolidayIsNonWaivable *bool   `json:"project_holiday_is_non_waivable"` // default false
	ProjectHolidayNotes         *string `json:"project_holiday_notes" validate:"omitempty,max=10000"`
}

func (r *CreateRecurringHolidayRequest) WeekdaySet() ([]time.Weekday, error) {
	if len(r.ProjectHolidayWeekdays) == 0 {
		return nil, errors.New("project_holiday_weekdays cannot be empty")
	}
	seen := map[int]bool{}
	out := make([]time.Weekday, 0, len(r.ProjectHolidayWeekdays))
	for _, raw := range r.ProjectHolidayWeekdays {
		if raw < 0 || raw > 6 {
			return nil, errors.New("project_holiday_weekdays entries must be 0..6 (0=Sunday)")
		}
		if seen[raw] {
			continue
		}
		seen[raw] = true
		out = append(out, time.Weekday(raw))
	}
	return out, nil
}

func (r *CreateRecurringHolidayRequest) DateRange() (start, end time.Time, err error) {
	start, ok := svc.ParseDateYMD(r.ProjectHolidayStartDate)
	if !ok {
		return start, end, errors.New("invalid project_holiday_start_date (expected YYYY-MM-DD)")
	}
	end, ok = svc.ParseDateYMD(r.ProjectHolidayEndDate)
	if !ok {
		return start, end, errors.New("invalid project_holiday_end_date (expected YYYY-MM-DD)")
	}
	return start, end, nil
}

func (r *CreateRecurringHolidayRequest) NonWaivable() bool {
	return r.ProjectHolidayIsNonWaivable != nil && *r.ProjectHolidayIsNonWaivable
}

type CreateSpecificHolidayRequest struct {
	ProjectHolidayDate string `json:"project_holiday_date" validate:"required,datetime=2006-01-02"`

	ProjectHolidayIsNonWaivable *bool   `json:"project_holiday_is_non_waivable"`
	ProjectHolidayNotes         *string `json:"project_holiday_notes" validate:"omitempty,max=10000"`
}

func (r *CreateSpecificHolidayRequest) Date() (time.Time, error) {
	d, ok := svc.ParseDateYMD(r.ProjectHolidayDate)
	if !ok {
		return time.Time{}, errors.New("invalid project_holiday_date (expected YYYY-MM-DD)")
	}
	return d, nil
}

func (r *CreateSpecificHolidayRequest) NonWaivable() bool {
	return r.ProjectHolidayIsNonWaivable != nil && *r.ProjectHolidayIsNonWaivable
}

type CreateRangeHolidayRequest struct {
	ProjectHolidayStartDate string `json:"project_holiday_start_date" validate:"required,datetime=2006-01-02"`
	ProjectHolidayEndDate   string `json:"project_holiday_end_date"   validate:"required,datetime=2006-01-02"`

	ProjectHolidayIsNonWaivable *bool   `json:"project_holiday_is_non_waivable"`
	ProjectHolidayNotes         *string `json:"project_holiday_notes" validate:"omitempty,max=10000"`
}

func (r *CreateRangeHolidayRequest) DateRange() (start, end time.Time, err error) {
	start, ok := svc.ParseDateYMD(r.ProjectHolidayStartDate)
	if !ok {
		return start, end, errors.New("invalid project_holiday_start_date (expected YYYY-MM-DD)")
	}
	end, ok = svc.ParseDateYMD(r.ProjectHolidayEndDate)
	if !ok {
		return start, end, errors.New("invalid project_holiday_end_date (expected YYYY-MM-DD)")
	}
	return start, end, nil
}

func (r *CreateRangeHolidayRequest) NonWaivable() bool {
	return r.ProjectHolidayIsNonWaivable != nil && *r.ProjectHolidayIsNonWaivable
}

// Patch (partial update)
// Catatan: notes nullable → PatchNullable supaya bisa bedakan
// set null vs kosong vs tidak diubah.
type PatchProjectHolidayRequest struct {
	ProjectHolidayKind          Patch[string]         `json:"project_holiday_kind"`
	ProjectHolidayIsNonWaivable Patch[bool]           `json:"project_holiday_is_non_waivable"`
	ProjectHolidayNotes         PatchNullable[string] `json:"project_holiday_notes"`
	ProjectHolidayStatus        Patch[string]         `json:"project_holiday_status"`
}

// ToPatch membangun patch layer service. Validasi enum ringan di sini.
func (p *PatchProjectHolidayRequest) ToPatch() (svc.HolidayPatch, error) {
	var out svc.HolidayPatch

	if p.ProjectHolidayKind.IsSet() {
		kind := m.HolidayKindEnum(p.ProjectHolidayKind.Value)
		if kind != m.HolidayKindRecurring && kind != m.HolidayKindSpecific {
			return out, errors.New("project_holiday_kind must be 'recurring' or 'specific'")
		}
		out.Kind = &kind
	}
	if p.ProjectHolidayIsNonWaivable.IsSet() {
		v := p.ProjectHolidayIsNonWaivable.Value
		out.NonWaivable = &v
	}
	if p.ProjectHolidayNotes.IsSet() {
		if p.ProjectHolidayNotes.Valid {
			v := p.ProjectHolidayNotes.Value
			out.Notes = &v
		} else {
			// explicit null → kosongkan
			empty := ""
			out.Notes = &empty
		}
	}
	if p.ProjectHolidayStatus.IsSet() {
		status := m.HolidayStatusEnum(p.ProjectHolidayStatus.Value)
		if status != m.HolidayStatusActive && status != m.HolidayStatusInactive {
			return out, errors.New("project_holiday_status must be 'active' or 'inactive'")
		}
		out.Status = &status
	}

	if out.Kind == nil && out.NonWaivable == nil && out.Notes == nil && out.Status == nil {
		return out, errors.New("empty patch")
	}
	return out, nil
}

type MoveTasksRequest struct {
	TaskIDs    []uuid.UUID `json:"task_ids" validate:"required,min=1"`
	DaysToMove int         `json:"days_to_move" validate:"required,min=1"`
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type ProjectHolidayResponse struct {
	ProjectHolidayID        uuid.UUID `json:"project_holiday_id"`
	ProjectHolidayProjectID uuid.UUID `json:"project_holiday_project_id"`

	ProjectHolidayDate string `json:"project_holiday_date"` // YYYY-MM-DD
	ProjectHolidayKind string `json:"project_holiday_kind"`

	ProjectHolidayIsNonWaivable bool    `json:"project_holiday_is_non_waivable"`
	ProjectHolidayNotes         *string `json:"project_holiday_notes,omitempty"`
	ProjectHolidayStatus        string  `json:"project_holiday_status"`

	ProjectHolidayCreatedAt time.Time `json:"project_holiday_created_at"`
	ProjectHolidayUpdatedAt time.Time `json:"project_holiday_updated_at"`
}

func FromModelProjectHoliday(h *m.ProjectHolidayModel) *ProjectHolidayResponse {
	if h == nil {
		return nil
	}
	return &ProjectHolidayResponse{
		ProjectHolidayID:            h.ProjectHolidayID,
		ProjectHolidayProjectID:     h.ProjectHolidayProjectID,
		ProjectHolidayDate:          svc.FormatDateYMD(h.ProjectHolidayDate),
		ProjectHolidayKind:          string(h.ProjectHolidayKind),
		ProjectHolidayIsNonWaivable: h.ProjectHolidayIsNonWaivable,
		ProjectHolidayNotes:         h.ProjectHolidayNotes,
		ProjectHolidayStatus:        string(h.ProjectHolidayStatus),
		ProjectHolidayCreatedAt:     h.ProjectHolidayCreatedAt,
		ProjectHolidayUpdatedAt:     h.ProjectHolidayUpdatedAt,
	}
}

type TaskSummaryResponse struct {
	TaskID        uuid.UUID `json:"task_id"`
	TaskName      string    `json:"task_name"`
	TaskStartDate string    `json:"task_start_date"` // YYYY-MM-DD
}

type ConflictRecordResponse struct {
	Date  string                `json:"date"` // YYYY-MM-DD
	Tasks []TaskSummaryResponse `json:"tasks"`
}

func FromConflictRecords(records []svc.ConflictRecord) []ConflictRecordResponse {
	out := make([]ConflictRecordResponse, 0, len(records))
	for _, rec := range records {
		tasks := make([]TaskSummaryResponse, 0, len(rec.Tasks))
		for _, t := range rec.Tasks {
			tasks = append(tasks, TaskSummaryResponse{
				TaskID:        t.TaskID,
				TaskName:      t.TaskName,
				TaskStartDate: svc.FormatDateYMD(t.StartDate),
			})
		}
		out = append(out, ConflictRecordResponse{
			Date:  svc.FormatDateYMD(rec.Date),
			Tasks: tasks,
		})
	}
	return out
}

type GenerateHolidayResponse struct {
	Created   int                      `json:"created"`
	Updated   int                      `json:"updated"`
	Failed    int                      `json:"failed"`
	Conflicts []ConflictRecordResponse `json:"conflicts"`
	Errors    []string                 `json:"errors,omitempty"`
}

func FromGenerateResult(res *svc.GenerateResult) *GenerateHolidayResponse {
	if res == nil {
		return nil
	}
	return &GenerateHolidayResponse{
		Created:   res.Created,
		Updated:   res.Updated,
		Failed:    res.Failed,
		Conflicts: FromConflictRecords(res.Conflicts),
		Errors:    res.Errors,
	}
}

type SpecificHolidayResponse struct {
	Action    string                   `json:"action"` // created | updated
	Record    *ProjectHolidayResponse  `json:"record"`
	Conflicts []ConflictRecordResponse `json:"conflicts"`
}

func FromSpecificResult(res *svc.SpecificResult) *SpecificHolidayResponse {
	if res == nil {
		return nil
	}
	return &SpecificHolidayResponse{
		Action:    res.Action,
		Record:    FromModelProjectHoliday(res.Record),
		Conflicts: FromConflictRecords(res.Conflicts),
	}
}

type WorkingDaysResponse struct {
	Days       []string `json:"days"` // YYYY-MM-DD, urut naik
	TotalCount int      `json:"total_count"`
}

func FromWorkingDays(days []time.Time) *WorkingDaysResponse {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, svc.FormatDateYMD(d))
	}
	return &WorkingDaysResponse{Days: out, TotalCount: len(out)}
}

// file: internals/features/projects/projects/dto/project_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "proyekku_backend/internals/features/projects/projects/model"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateProjectRequest struct {
	ProjectName        string  `json:"project_name" validate:"required,max=200"`
	ProjectSlug        *string `json:"project_slug" validate:"omitempty,max=160"`
	ProjectDescription *string `json:"project_description" validate:"omitempty,max=10000"`

	ProjectSettings map[string]any `json:"project_settings"`
	ProjectIsActive *bool          `json:"project_is_active"` // default true (db)
}

func (r *CreateProjectRequest) ToModel() *m.ProjectModel {
	p := &m.ProjectModel{
		ProjectName:        strings.TrimSpace(r.ProjectName),
		ProjectSlug:        trimPtr(r.ProjectSlug),
		ProjectDescription: trimPtr(r.ProjectDescription),
	}
	if r.ProjectSettings != nil {
		p.ProjectSettings = datatypes.JSONMap(r.ProjectSettings)
	}
	if r.ProjectIsActive != nil {
		p.ProjectIsActive = *r.ProjectIsActive
	} else {
		p.ProjectIsActive = true
	}
	return p
}

// Patch (partial update) — pointer = tidak diubah.
type PatchProjectRequest struct {
	ProjectName        *string        `json:"project_name" validate:"omitempty,max=200"`
	ProjectSlug        *string        `json:"project_slug" validate:"omitempty,max=160"`
	ProjectDescription *string        `json:"project_description" validate:"omitempty,max=10000"`
	ProjectSettings    map[string]any `json:"project_settings"`
	ProjectIsActive    *bool          `json:"project_is_active"`
}

func (p *PatchProjectRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if p.ProjectName != nil {
		updates["project_name"] = strings.TrimSpace(*p.ProjectName)
	}
	if p.ProjectSlug != nil {
		updates["project_slug"] = strings.TrimSpace(*p.ProjectSlug)
	}
	if p.ProjectDescription != nil {
		updates["project_description"] = strings.TrimSpace(*p.ProjectDescription)
	}
	if p.ProjectSettings != nil {
		updates["project_settings"] = datatypes.JSONMap(p.ProjectSettings)
	}
	if p.ProjectIsActive != nil {
		updates["project_is_active"] = *p.ProjectIsActive
	}
	return updates
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type ProjectResponse struct {
	ProjectID          uuid.UUID      `json:"project_id"`
	ProjectName        string         `json:"project_name"`
	ProjectSlug        *string        `json:"project_slug,omitempty"`
	ProjectDescription *string        `json:"project_description,omitempty"`
	ProjectSettings    map[string]any `json:"project_settings,omitempty"`
	ProjectIsActive    bool           `json:"project_is_active"`
	ProjectCreatedAt   time.Time      `json:"project_created_at"`
	ProjectUpdatedAt   time.Time      `json:"project_updated_at"`
}

func FromModelProject(p *m.ProjectModel) *ProjectResponse {
	if p == nil {
		return nil
	}
	return &ProjectResponse{
		ProjectID:          p.ProjectID,
		ProjectName:        p.ProjectName,
		ProjectSlug:        p.ProjectSlug,
		ProjectDescription: p.ProjectDescription,
		ProjectSettings:    p.ProjectSettings,
		ProjectIsActive:    p.ProjectIsActive,
		ProjectCreatedAt:   p.ProjectCreatedAt,
		ProjectUpdatedAt:   p.ProjectUpdatedAt,
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

package model

import (
	"time"

	"github.com/festy23/teamboard/pkg/optional"
)

// TeamSummary is the denormalized team view embedded in project responses.
type TeamSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateProjectRequest represents the request to create a project.
type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	TeamID      string  `json:"teamId"`
}

// UpdateProjectRequest represents a partial update. Absent fields are
// left unchanged; an explicit null description clears it.
type UpdateProjectRequest struct {
	Name        *string                `json:"name"`
	Description optional.Field[string] `json:"description"`
	Status      *string                `json:"status"`
}

// ProjectResponse represents a fully hydrated project in API responses
// and broadcast events.
type ProjectResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	Status      string      `json:"status"`
	TeamID      string      `json:"teamId"`
	CreatedAt   time.Time   `json:"createdAt"`
	Team        TeamSummary `json:"team"`
}

// DeletedPayload is the broadcast payload for a delete event.
type DeletedPayload struct {
	ID string `json:"id"`
}

// ToResponse builds the hydrated response from a project with a
// preloaded team.
func (p *Project) ToResponse() *ProjectResponse {
	return &ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		TeamID:      p.TeamID,
		CreatedAt:   p.CreatedAt,
		Team:        TeamSummary{ID: p.Team.ID, Name: p.Team.Name},
	}
}

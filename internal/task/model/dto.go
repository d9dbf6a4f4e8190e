package model

import (
	"time"

	userModel "github.com/festy23/teamboard/internal/user/model"
	"github.com/festy23/teamboard/pkg/optional"
)

// ProjectSummary is the denormalized project view embedded in task responses.
type ProjectSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	TeamID string `json:"teamId"`
}

// CreateTaskRequest represents the request to create a task.
// Status and priority fall back to TODO and medium when absent.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	ProjectID   string     `json:"projectId"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	AssigneeID  *string    `json:"assigneeId"`
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateTaskRequest represents a partial update. Absent fields are left
// unchanged; explicit null clears description, assignee, and due date.
type UpdateTaskRequest struct {
	Title       *string                   `json:"title"`
	Description optional.Field[string]    `json:"description"`
	Status      *string                   `json:"status"`
	Priority    *string                   `json:"priority"`
	AssigneeID  optional.Field[string]    `json:"assigneeId"`
	DueDate     optional.Field[time.Time] `json:"dueDate"`
}

// ListFilter narrows a project task listing. Nil fields match everything.
type ListFilter struct {
	Status     *string
	AssigneeID *string
	Priority   *string
}

// TaskResponse represents a fully hydrated task in API responses and
// broadcast events.
type TaskResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	Status      string             `json:"status"`
	Priority    string             `json:"priority"`
	ProjectID   string             `json:"projectId"`
	AssigneeID  *string            `json:"assigneeId"`
	Assignee    *userModel.Summary `json:"assignee"`
	DueDate     *time.Time         `json:"dueDate"`
	CreatedAt   time.Time          `json:"createdAt"`
	Project     ProjectSummary     `json:"project"`
}

// BoardResponse groups a project's tasks by status column.
type BoardResponse struct {
	Todo       []TaskResponse `json:"TODO"`
	InProgress []TaskResponse `json:"IN_PROGRESS"`
	Done       []TaskResponse `json:"DONE"`
}

// DeletedPayload is the broadcast payload for a delete event.
type DeletedPayload struct {
	ID string `json:"id"`
}

// ToResponse builds the hydrated response from a task with preloaded
// project and assignee.
func (t *Task) ToResponse() *TaskResponse {
	resp := &TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		ProjectID:   t.ProjectID,
		AssigneeID:  t.AssigneeID,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		Project: ProjectSummary{
			ID:     t.Project.ID,
			Name:   t.Project.Name,
			TeamID: t.Project.TeamID,
		},
	}
	if t.Assignee != nil {
		summary := t.Assignee.Summary()
		resp.Assignee = &summary
	}
	return resp
}

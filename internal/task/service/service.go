// Package service provides business logic layer for task module.
package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/festy23/teamboard/internal/authz"
	projectRepository "github.com/festy23/teamboard/internal/project/repository"
	"github.com/festy23/teamboard/internal/realtime"
	taskModel "github.com/festy23/teamboard/internal/task/model"
	"github.com/festy23/teamboard/internal/task/repository"
)

// Service defines the interface for task business logic operations.
type Service interface {
	// Create creates a task in a project the actor can access.
	Create(ctx context.Context, actorID string, req *taskModel.CreateTaskRequest) (*taskModel.TaskResponse, error)

	// ListByProject returns a project's tasks matching the filter.
	ListByProject(ctx context.Context, actorID, projectID string, filter *taskModel.ListFilter) ([]taskModel.TaskResponse, error)

	// Board returns a project's tasks grouped by status column.
	Board(ctx context.Context, actorID, projectID string) (*taskModel.BoardResponse, error)

	// Get returns a single task visible to the actor.
	Get(ctx context.Context, actorID, taskID string) (*taskModel.TaskResponse, error)

	// Update applies a partial update to a task.
	Update(ctx context.Context, actorID, taskID string, req *taskModel.UpdateTaskRequest) (*taskModel.TaskResponse, error)

	// Delete removes a task and its comments. Admin only.
	Delete(ctx context.Context, actorID, taskID string) error
}

type service struct {
	repo      repository.Repository
	projects  projectRepository.Repository
	resolver  authz.Resolver
	publisher realtime.Publisher
	logger    *zap.SugaredLogger
}

// New creates a new task service instance.
func New(
	repo repository.Repository,
	projects projectRepository.Repository,
	resolver authz.Resolver,
	publisher realtime.Publisher,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:      repo,
		projects:  projects,
		resolver:  resolver,
		publisher: publisher,
		logger:    logger,
	}
}

// normalizeDescription trims a description and maps empty to absent.
func normalizeDescription(description *string) *string {
	if description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// checkAssignee verifies the assignee belongs to the owning team.
func (s *service) checkAssignee(ctx context.Context, assigneeID, teamID string) error {
	role, err := s.resolver.RoleInTeam(ctx, assigneeID, teamID)
	if err != nil {
		return err
	}
	if role.None() {
		return taskModel.ErrAssigneeNotMember
	}
	return nil
}

// Create creates a task in a project the actor can access.
func (s *service) Create(ctx context.Context, actorID string, req *taskModel.CreateTaskRequest) (*taskModel.TaskResponse, error) {
	title := strings.TrimSpace(req.Title)
	if utf8.RuneCountInString(title) < 3 {
		return nil, taskModel.ErrInvalidTitle
	}
	if strings.TrimSpace(req.ProjectID) == "" {
		return nil, taskModel.ErrMissingProjectID
	}

	project, err := s.projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	role, err := s.resolver.RoleInTeam(ctx, actorID, project.TeamID)
	if err != nil {
		return nil, err
	}
	if role.None() {
		return nil, taskModel.ErrAccessDenied
	}

	status := taskModel.StatusTodo
	if req.Status != nil {
		if !taskModel.ValidStatus(*req.Status) {
			return nil, taskModel.ErrInvalidStatus
		}
		status = *req.Status
	}

	priority := taskModel.PriorityMedium
	if req.Priority != nil {
		if !taskModel.ValidPriority(*req.Priority) {
			return nil, taskModel.ErrInvalidPriority
		}
		priority = *req.Priority
	}

	if req.AssigneeID != nil {
		if err := s.checkAssignee(ctx, *req.AssigneeID, project.TeamID); err != nil {
			return nil, err
		}
	}

	task := &taskModel.Task{
		Title:       title,
		Description: normalizeDescription(req.Description),
		Status:      status,
		Priority:    priority,
		ProjectID:   req.ProjectID,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	created, err := s.repo.GetByID(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	resp := created.ToResponse()
	s.publisher.Publish(realtime.ProjectScope(created.ProjectID), realtime.EventTaskCreated, resp)

	s.logger.Infow("task created", "task_id", task.ID, "project_id", task.ProjectID)
	return resp, nil
}

// accessProject loads the project and checks team membership.
func (s *service) accessProject(ctx context.Context, actorID, projectID string) error {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}

	role, err := s.resolver.RoleInTeam(ctx, actorID, project.TeamID)
	if err != nil {
		return err
	}
	if role.None() {
		return taskModel.ErrAccessDenied
	}
	return nil
}

// ListByProject returns a project's tasks matching the filter.
func (s *service) ListByProject(ctx context.Context, actorID, projectID string, filter *taskModel.ListFilter) ([]taskModel.TaskResponse, error) {
	if err := s.accessProject(ctx, actorID, projectID); err != nil {
		return nil, err
	}

	if filter != nil {
		if filter.Status != nil && !taskModel.ValidStatus(*filter.Status) {
			return nil, taskModel.ErrInvalidStatus
		}
		if filter.Priority != nil && !taskModel.ValidPriority(*filter.Priority) {
			return nil, taskModel.ErrInvalidPriority
		}
	}

	tasks, err := s.repo.ListByProject(ctx, projectID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]taskModel.TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, *tasks[i].ToResponse())
	}
	return responses, nil
}

// Board returns a project's tasks grouped by status column. Every column
// is present even when empty.
func (s *service) Board(ctx context.Context, actorID, projectID string) (*taskModel.BoardResponse, error) {
	tasks, err := s.ListByProject(ctx, actorID, projectID, nil)
	if err != nil {
		return nil, err
	}

	board := &taskModel.BoardResponse{
		Todo:       []taskModel.TaskResponse{},
		InProgress: []taskModel.TaskResponse{},
		Done:       []taskModel.TaskResponse{},
	}
	for _, task := range tasks {
		switch task.Status {
		case taskModel.StatusInProgress:
			board.InProgress = append(board.InProgress, task)
		case taskModel.StatusDone:
			board.Done = append(board.Done, task)
		default:
			board.Todo = append(board.Todo, task)
		}
	}
	return board, nil
}

// Get returns a single task visible to the actor.
func (s *service) Get(ctx context.Context, actorID, taskID string) (*taskModel.TaskResponse, error) {
	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	role, err := s.resolver.RoleInTeam(ctx, actorID, task.Project.TeamID)
	if err != nil {
		return nil, err
	}
	if role.None() {
		return nil, taskModel.ErrAccessDenied
	}

	return task.ToResponse(), nil
}

// Update applies a partial update to a task. Absent fields stay
// untouched; explicit null clears description, assignee, and due date.
func (s *service) Update(ctx context.Context, actorID, taskID string, req *taskModel.UpdateTaskRequest) (*taskModel.TaskResponse, error) {
	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	role, err := s.resolver.RoleInTeam(ctx, actorID, task.Project.TeamID)
	if err != nil {
		return nil, err
	}
	if role.None() {
		return nil, taskModel.ErrAccessDenied
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if utf8.RuneCountInString(title) < 3 {
			return nil, taskModel.ErrInvalidTitle
		}
		task.Title = title
	}

	if req.Status != nil {
		if !taskModel.ValidStatus(*req.Status) {
			return nil, taskModel.ErrInvalidStatus
		}
		task.Status = *req.Status
	}

	if req.Priority != nil {
		if !taskModel.ValidPriority(*req.Priority) {
			return nil, taskModel.ErrInvalidPriority
		}
		task.Priority = *req.Priority
	}

	if req.Description.Present() {
		if req.Description.IsNull() {
			task.Description = nil
		} else {
			value, _ := req.Description.Value()
			task.Description = normalizeDescription(&value)
		}
	}

	if req.AssigneeID.Present() {
		if req.AssigneeID.IsNull() {
			task.AssigneeID = nil
		} else {
			assigneeID, _ := req.AssigneeID.Value()
			if err := s.checkAssignee(ctx, assigneeID, task.Project.TeamID); err != nil {
				return nil, err
			}
			task.AssigneeID = &assigneeID
		}
	}

	if req.DueDate.Present() {
		if req.DueDate.IsNull() {
			task.DueDate = nil
		} else {
			dueDate, _ := req.DueDate.Value()
			task.DueDate = &dueDate
		}
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	resp := updated.ToResponse()
	s.publisher.Publish(realtime.ProjectScope(updated.ProjectID), realtime.EventTaskUpdated, resp)

	return resp, nil
}

// Delete removes a task and its comments. Admin only.
func (s *service) Delete(ctx context.Context, actorID, taskID string) error {
	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}

	role, err := s.resolver.RoleInTeam(ctx, actorID, task.Project.TeamID)
	if err != nil {
		return err
	}
	if role.None() {
		return taskModel.ErrAccessDenied
	}
	if !role.Admin() {
		return taskModel.ErrDeleteAdminOnly
	}

	if err := s.repo.Delete(ctx, taskID); err != nil {
		return err
	}

	s.publisher.Publish(realtime.ProjectScope(task.ProjectID), realtime.EventTaskDeleted, &taskModel.DeletedPayload{ID: taskID})

	s.logger.Infow("task deleted", "task_id", taskID, "project_id", task.ProjectID)
	return nil
}

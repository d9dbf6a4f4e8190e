// Package service provides business logic layer for project module.
package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/festy23/teamboard/internal/authz"
	projectModel "github.com/festy23/teamboard/internal/project/model"
	"github.com/festy23/teamboard/internal/project/repository"
	"github.com/festy23/teamboard/internal/realtime"
)

// Service defines the interface for project business logic operations.
type Service interface {
	// Create creates a project inside a team the actor belongs to.
	Create(ctx context.Context, actorID string, req *projectModel.CreateProjectRequest) (*projectModel.ProjectResponse, error)

	// ListByTeam returns all projects of a team visible to the actor.
	ListByTeam(ctx context.Context, actorID, teamID string) ([]projectModel.ProjectResponse, error)

	// Get returns a single project visible to the actor.
	Get(ctx context.Context, actorID, projectID string) (*projectModel.ProjectResponse, error)

	// Update applies a partial update. Status changes require admin role.
	Update(ctx context.Context, actorID, projectID string, req *projectModel.UpdateProjectRequest) (*projectModel.ProjectResponse, error)

	// Delete removes a project and everything under it. Admin only.
	Delete(ctx context.Context, actorID, projectID string) error
}

type service struct {
	repo      repository.Repository
	resolver  authz.Resolver
	publisher realtime.Publisher
	logger    *zap.SugaredLogger
}

// New creates a new project service instance.
func New(
	repo repository.Repository,
	resolver authz.Resolver,
	publisher realtime.Publisher,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:      repo,
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

// Create creates a project inside a team the actor belongs to.
func (s *service) Create(ctx context.Context, actorID string, req *projectModel.CreateProjectRequest) (*projectModel.ProjectResponse, error) {
	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) < 3 {
		return nil, projectModel.ErrInvalidProjectName
	}
	if strings.TrimSpace(req.TeamID) == "" {
		return nil, projectModel.ErrMissingTeamID
	}

	role, err := s.resolver.RoleInTeam(ctx, actorID, req.TeamID)
	if err != nil {
		return nil, err
	}
	if role.None() {
		return nil, projectModel.ErrCreateMembersOnly
	}

	project := &projectModel.Project{
		Name:        name,
		Description: normalizeDescription(req.Description),
		Status:      projectModel.StatusActive,
		TeamID:      req.TeamID,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	created, err := s.repo.GetByID(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	resp := created.ToResponse()
	s.publisher.Publish(realtime.TeamScope(created.TeamID), realtime.EventProjectCreated, resp)

	s.logger.Infow("project created", "project_id", project.ID, "team_id", project.TeamID)
	return resp, nil
}

// ListByTeam returns all projects of a team visible to the actor.
func (s *service) ListByTeam(ctx context.Context, actorID, teamID string) ([]projectModel.ProjectResponse, error) {
	ok, err := s.resolver.CanAccessTeam(ctx, actorID, teamID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, projectModel.ErrAccessDenied
	}

	projects, err := s.repo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	responses := make([]projectModel.ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, *projects[i].ToResponse())
	}
	return responses, nil
}

// Get returns a single project visible to the actor.
func (s *service) Get(ctx context.Context, actorID, projectID string) (*projectModel.ProjectResponse, error) {
	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	ok, err := s.resolver.CanAccessTeam(ctx, actorID, project.TeamID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, projectModel.ErrAccessDenied
	}

	return project.ToResponse(), nil
}

// Update applies a partial update. Absent fields stay untouched, a null
// description clears it, and a status change requires admin role.
func (s *service) Update(ctx context.Context, actorID, projectID string, req *projectModel.UpdateProjectRequest) (*projectModel.ProjectResponse, error) {
	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	role, err := s.resolver.RoleInTeam(ctx, actorID, project.TeamID)
	if err != nil {
		return nil, err
	}
	if role.None() {
		return nil, projectModel.ErrAccessDenied
	}

	if req.Status != nil && *req.Status != project.Status {
		if !role.Admin() {
			return nil, projectModel.ErrStatusAdminOnly
		}
		if !projectModel.ValidStatus(*req.Status) {
			return nil, projectModel.ErrInvalidStatus
		}
		project.Status = *req.Status
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if utf8.RuneCountInString(name) < 3 {
			return nil, projectModel.ErrInvalidProjectName
		}
		project.Name = name
	}

	if req.Description.Present() {
		if req.Description.IsNull() {
			project.Description = nil
		} else {
			value, _ := req.Description.Value()
			project.Description = normalizeDescription(&value)
		}
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	resp := updated.ToResponse()
	s.publisher.Publish(realtime.TeamScope(updated.TeamID), realtime.EventProjectUpdated, resp)

	return resp, nil
}

// Delete removes a project and everything under it. Admin only.
func (s *service) Delete(ctx context.Context, actorID, projectID string) error {
	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}

	role, err := s.resolver.RoleInTeam(ctx, actorID, project.TeamID)
	if err != nil {
		return err
	}
	if role.None() {
		return projectModel.ErrAccessDenied
	}
	if !role.Admin() {
		return projectModel.ErrDeleteAdminOnly
	}

	if err := s.repo.Delete(ctx, projectID); err != nil {
		return err
	}

	s.publisher.Publish(realtime.TeamScope(project.TeamID), realtime.EventProjectDeleted, &projectModel.DeletedPayload{ID: projectID})

	s.logger.Infow("project deleted", "project_id", projectID, "team_id", project.TeamID)
	return nil
}

// Package service provides business logic layer for comment module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/festy23/teamboard/internal/authz"
	commentModel "github.com/festy23/teamboard/internal/comment/model"
	"github.com/festy23/teamboard/internal/comment/repository"
	"github.com/festy23/teamboard/internal/realtime"
	taskRepository "github.com/festy23/teamboard/internal/task/repository"
)

// Service defines the interface for comment business logic operations.
type Service interface {
	// Create adds a comment to a task the actor can access.
	Create(ctx context.Context, actorID, taskID string, req *commentModel.CreateCommentRequest) (*commentModel.CommentResponse, error)

	// ListByTask returns a task's comments, oldest first.
	ListByTask(ctx context.Context, actorID, taskID string) ([]commentModel.CommentResponse, error)

	// Delete removes a comment. Author or team admin only.
	Delete(ctx context.Context, actorID, commentID string) error
}

type service struct {
	repo      repository.Repository
	tasks     taskRepository.Repository
	resolver  authz.Resolver
	publisher realtime.Publisher
	logger    *zap.SugaredLogger
}

// New creates a new comment service instance.
func New(
	repo repository.Repository,
	tasks taskRepository.Repository,
	resolver authz.Resolver,
	publisher realtime.Publisher,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:      repo,
		tasks:     tasks,
		resolver:  resolver,
		publisher: publisher,
		logger:    logger,
	}
}

// accessTask loads the task and checks team membership, returning the
// actor's role in the owning team.
func (s *service) accessTask(ctx context.Context, actorID, taskID string) (authz.Role, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return authz.RoleNone, err
	}

	role, err := s.resolver.RoleInTeam(ctx, actorID, task.Project.TeamID)
	if err != nil {
		return authz.RoleNone, err
	}
	if role.None() {
		return authz.RoleNone, commentModel.ErrAccessDenied
	}
	return role, nil
}

// Create adds a comment to a task the actor can access.
func (s *service) Create(ctx context.Context, actorID, taskID string, req *commentModel.CreateCommentRequest) (*commentModel.CommentResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, commentModel.ErrEmptyContent
	}

	if _, err := s.accessTask(ctx, actorID, taskID); err != nil {
		return nil, err
	}

	comment := &commentModel.Comment{
		Content:  content,
		TaskID:   taskID,
		AuthorID: actorID,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	created, err := s.repo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}

	resp := created.ToResponse()
	s.publisher.Publish(realtime.TaskScope(taskID), realtime.EventCommentCreated, resp)

	s.logger.Infow("comment created", "comment_id", comment.ID, "task_id", taskID)
	return resp, nil
}

// ListByTask returns a task's comments, oldest first.
func (s *service) ListByTask(ctx context.Context, actorID, taskID string) ([]commentModel.CommentResponse, error) {
	if _, err := s.accessTask(ctx, actorID, taskID); err != nil {
		return nil, err
	}

	comments, err := s.repo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	responses := make([]commentModel.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *comments[i].ToResponse())
	}
	return responses, nil
}

// Delete removes a comment. Allowed for the comment's author and for
// admins of the owning team.
func (s *service) Delete(ctx context.Context, actorID, commentID string) error {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	role, err := s.resolver.RoleInTeam(ctx, actorID, comment.Task.Project.TeamID)
	if err != nil {
		return err
	}
	if role.None() {
		return commentModel.ErrAccessDenied
	}
	if comment.AuthorID != actorID && !role.Admin() {
		return commentModel.ErrDeleteAuthorOrAdmin
	}

	if err := s.repo.Delete(ctx, commentID); err != nil {
		return err
	}

	s.publisher.Publish(realtime.TaskScope(comment.TaskID), realtime.EventCommentDeleted, &commentModel.DeletedPayload{ID: commentID})

	s.logger.Infow("comment deleted", "comment_id", commentID, "task_id", comment.TaskID)
	return nil
}

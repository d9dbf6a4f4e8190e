// Package service provides business logic layer for team module.
package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamboard/internal/authz"
	teamModel "github.com/festy23/teamboard/internal/team/model"
	"github.com/festy23/teamboard/internal/team/repository"
	userModel "github.com/festy23/teamboard/internal/user/model"
	userRepository "github.com/festy23/teamboard/internal/user/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// Create creates a team and adds the creator as admin.
	Create(ctx context.Context, actorID string, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error)

	// ListMine returns all teams the actor belongs to.
	ListMine(ctx context.Context, actorID string) ([]teamModel.TeamResponse, error)

	// Get returns a team visible to the actor.
	Get(ctx context.Context, actorID, teamID string) (*teamModel.TeamResponse, error)

	// AddMember adds a user to the team by email. Admin only.
	AddMember(ctx context.Context, actorID, teamID string, req *teamModel.AddMemberRequest) (*teamModel.MemberResponse, error)
}

type service struct {
	repo     repository.Repository
	users    userRepository.Repository
	resolver authz.Resolver
	db       *gorm.DB
	logger   *zap.SugaredLogger
}

// New creates a new team service instance.
func New(
	repo repository.Repository,
	users userRepository.Repository,
	resolver authz.Resolver,
	db *gorm.DB,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:     repo,
		users:    users,
		resolver: resolver,
		db:       db,
		logger:   logger,
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

// Create creates a team and adds the creator as admin in one transaction.
func (s *service) Create(ctx context.Context, actorID string, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error) {
	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) < 3 {
		return nil, teamModel.ErrInvalidTeamName
	}

	team := &teamModel.Team{
		Name:        name,
		Description: normalizeDescription(req.Description),
		CreatorID:   actorID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if err := txRepo.Create(ctx, team); err != nil {
			return err
		}

		member := &teamModel.TeamMember{
			TeamID: team.ID,
			UserID: actorID,
			Role:   string(authz.RoleAdmin),
		}
		return txRepo.AddMember(ctx, member)
	})
	if err != nil {
		return nil, err
	}

	created, err := s.repo.GetByID(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_id", team.ID, "creator_id", actorID)
	return created.ToResponse(), nil
}

// ListMine returns all teams the actor belongs to.
func (s *service) ListMine(ctx context.Context, actorID string) ([]teamModel.TeamResponse, error) {
	teams, err := s.repo.ListForUser(ctx, actorID)
	if err != nil {
		return nil, err
	}

	responses := make([]teamModel.TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *teams[i].ToResponse())
	}
	return responses, nil
}

// Get returns a team visible to the actor. Non-members get not-found so
// team existence is not leaked.
func (s *service) Get(ctx context.Context, actorID, teamID string) (*teamModel.TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	ok, err := s.resolver.CanAccessTeam(ctx, actorID, teamID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, teamModel.ErrTeamNotFound
	}

	return team.ToResponse(), nil
}

// AddMember adds a user to the team by email. Admin only.
func (s *service) AddMember(ctx context.Context, actorID, teamID string, req *teamModel.AddMemberRequest) (*teamModel.MemberResponse, error) {
	if _, err := s.repo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}

	role, err := s.resolver.RoleInTeam(ctx, actorID, teamID)
	if err != nil {
		return nil, err
	}
	if !role.Admin() {
		return nil, teamModel.ErrAddMemberAdminOnly
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, userModel.ErrInvalidEmail
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.HasMember(ctx, teamID, user.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, teamModel.ErrMemberExists
	}

	member := &teamModel.TeamMember{
		TeamID: teamID,
		UserID: user.ID,
		Role:   string(authz.RoleMember),
	}
	if err := s.repo.AddMember(ctx, member); err != nil {
		return nil, err
	}

	s.logger.Infow("team member added", "team_id", teamID, "user_id", user.ID)
	return &teamModel.MemberResponse{
		ID:     member.ID,
		UserID: member.UserID,
		TeamID: member.TeamID,
		Role:   member.Role,
		User:   user.Summary(),
	}, nil
}

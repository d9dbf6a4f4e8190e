package model

import (
	"time"

	userModel "github.com/festy23/teamboard/internal/user/model"
)

// CreateTeamRequest represents the request to create a team.
type CreateTeamRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// AddMemberRequest represents the request to add a member by email.
type AddMemberRequest struct {
	Email string `json:"email"`
}

// MemberResponse represents a membership row in API responses.
type MemberResponse struct {
	ID     string            `json:"id"`
	UserID string            `json:"userId"`
	TeamID string            `json:"teamId"`
	Role   string            `json:"role"`
	User   userModel.Summary `json:"user"`
}

// TeamResponse represents a fully hydrated team in API responses.
type TeamResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	CreatorID   string            `json:"creatorId"`
	CreatedAt   time.Time         `json:"createdAt"`
	Creator     userModel.Summary `json:"creator"`
	Members     []MemberResponse  `json:"members"`
}

// ToResponse builds the hydrated response from a team with preloaded
// creator and members.
func (t *Team) ToResponse() *TeamResponse {
	members := make([]MemberResponse, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, MemberResponse{
			ID:     m.ID,
			UserID: m.UserID,
			TeamID: m.TeamID,
			Role:   m.Role,
			User:   m.User.Summary(),
		})
	}
	return &TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatorID:   t.CreatorID,
		CreatedAt:   t.CreatedAt,
		Creator:     t.Creator.Summary(),
		Members:     members,
	}
}

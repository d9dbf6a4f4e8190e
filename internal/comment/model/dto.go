package model

import (
	"time"

	userModel "github.com/festy23/teamboard/internal/user/model"
)

// CreateCommentRequest represents the request to create a comment.
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// CommentResponse represents a hydrated comment in API responses and
// broadcast events.
type CommentResponse struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	TaskID    string            `json:"taskId"`
	AuthorID  string            `json:"authorId"`
	CreatedAt time.Time         `json:"createdAt"`
	Author    userModel.Summary `json:"author"`
}

// DeletedPayload is the broadcast payload for a delete event.
type DeletedPayload struct {
	ID string `json:"id"`
}

// ToResponse builds the hydrated response from a comment with a
// preloaded author.
func (c *Comment) ToResponse() *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		TaskID:    c.TaskID,
		AuthorID:  c.AuthorID,
		CreatedAt: c.CreatedAt,
		Author:    c.Author.Summary(),
	}
}

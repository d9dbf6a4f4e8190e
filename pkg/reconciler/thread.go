package reconciler

import (
	"encoding/json"
	"time"
)

// CommentView is the slice of a comment event payload the thread cares
// about.
type CommentView struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentThread is a client-side cache of one task's comments, oldest
// first. Not safe for concurrent use.
type CommentThread struct {
	comments []CommentView
}

// NewCommentThread creates an empty thread.
func NewCommentThread() *CommentThread {
	return &CommentThread{comments: []CommentView{}}
}

// Apply folds a comment event into the thread. Unknown events are
// ignored.
func (t *CommentThread) Apply(event string, data json.RawMessage) error {
	switch parseAction(event) {
	case actionUpsert:
		var comment CommentView
		if err := json.Unmarshal(data, &comment); err != nil {
			return err
		}
		t.Upsert(comment)
	case actionDelete:
		id, err := decodeDeletedID(data)
		if err != nil {
			return err
		}
		t.Delete(id)
	}
	return nil
}

// Upsert inserts the comment in creation order, replacing any cached
// copy with the same id first.
func (t *CommentThread) Upsert(comment CommentView) {
	t.Delete(comment.ID)

	at := len(t.comments)
	for i, existing := range t.comments {
		if comment.CreatedAt.Before(existing.CreatedAt) {
			at = i
			break
		}
	}
	t.comments = append(t.comments, CommentView{})
	copy(t.comments[at+1:], t.comments[at:])
	t.comments[at] = comment
}

// Delete removes the comment if present.
func (t *CommentThread) Delete(id string) {
	for i, comment := range t.comments {
		if comment.ID == id {
			t.comments = append(t.comments[:i:i], t.comments[i+1:]...)
			return
		}
	}
}

// Comments returns the cached comments, oldest first.
func (t *CommentThread) Comments() []CommentView {
	return t.comments
}

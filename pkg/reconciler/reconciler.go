// Package reconciler folds live events into locally cached views. Every
// apply is remove-if-present then insert, so duplicate delivery of the
// same event is safe and first appearance and transitions share one
// code path.
package reconciler

import (
	"encoding/json"
	"strings"
)

// Event action suffixes shared by all entity event names
// (task-created, project-updated, comment-deleted, ...).
const (
	suffixCreated = "-created"
	suffixUpdated = "-updated"
	suffixDeleted = "-deleted"
)

type action int

const (
	actionUnknown action = iota
	actionUpsert
	actionDelete
)

// parseAction classifies an event name by its suffix. Created and
// updated collapse into a single upsert.
func parseAction(event string) action {
	switch {
	case strings.HasSuffix(event, suffixCreated), strings.HasSuffix(event, suffixUpdated):
		return actionUpsert
	case strings.HasSuffix(event, suffixDeleted):
		return actionDelete
	default:
		return actionUnknown
	}
}

// deletedPayload is the wire shape of every delete event.
type deletedPayload struct {
	ID string `json:"id"`
}

func decodeDeletedID(data json.RawMessage) (string, error) {
	var payload deletedPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", err
	}
	return payload.ID, nil
}

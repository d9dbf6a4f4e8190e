// Package realtime provides scope-based subscriptions and event fan-out
// for live connections.
package realtime

import "strings"

// Scope key prefixes. A scope names a broadcast channel for one entity.
const (
	scopeTeamPrefix    = "team:"
	scopeProjectPrefix = "project:"
	scopeTaskPrefix    = "task:"
)

// Event names delivered to subscribers.
const (
	EventTaskCreated    = "task-created"
	EventTaskUpdated    = "task-updated"
	EventTaskDeleted    = "task-deleted"
	EventProjectCreated = "project-created"
	EventProjectUpdated = "project-updated"
	EventProjectDeleted = "project-deleted"
	EventCommentCreated = "comment-created"
	EventCommentDeleted = "comment-deleted"
)

// TeamScope returns the scope key for a team.
func TeamScope(teamID string) string {
	return scopeTeamPrefix + teamID
}

// ProjectScope returns the scope key for a project.
func ProjectScope(projectID string) string {
	return scopeProjectPrefix + projectID
}

// TaskScope returns the scope key for a task.
func TaskScope(taskID string) string {
	return scopeTaskPrefix + taskID
}

// ValidScope reports whether a scope key names a known entity channel
// with a non-empty id.
func ValidScope(scope string) bool {
	for _, prefix := range []string{scopeTeamPrefix, scopeProjectPrefix, scopeTaskPrefix} {
		if strings.HasPrefix(scope, prefix) && len(scope) > len(prefix) {
			return true
		}
	}
	return false
}

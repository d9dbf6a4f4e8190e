package reconciler

import (
	"encoding/json"
	"time"
)

// ProjectView is the slice of a project event payload the list cares
// about.
type ProjectView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProjectList is a client-side cache of a team's projects, newest
// first. Not safe for concurrent use.
type ProjectList struct {
	projects []ProjectView
}

// NewProjectList creates an empty project list.
func NewProjectList() *ProjectList {
	return &ProjectList{projects: []ProjectView{}}
}

// Apply folds a project event into the list. Unknown events are
// ignored.
func (l *ProjectList) Apply(event string, data json.RawMessage) error {
	switch parseAction(event) {
	case actionUpsert:
		var project ProjectView
		if err := json.Unmarshal(data, &project); err != nil {
			return err
		}
		l.Upsert(project)
	case actionDelete:
		id, err := decodeDeletedID(data)
		if err != nil {
			return err
		}
		l.Delete(id)
	}
	return nil
}

// Upsert inserts the project in reverse creation order, replacing any
// cached copy with the same id first.
func (l *ProjectList) Upsert(project ProjectView) {
	l.Delete(project.ID)

	at := len(l.projects)
	for i, existing := range l.projects {
		if project.CreatedAt.After(existing.CreatedAt) {
			at = i
			break
		}
	}
	l.projects = append(l.projects, ProjectView{})
	copy(l.projects[at+1:], l.projects[at:])
	l.projects[at] = project
}

// Delete removes the project if present.
func (l *ProjectList) Delete(id string) {
	for i, project := range l.projects {
		if project.ID == id {
			l.projects = append(l.projects[:i:i], l.projects[i+1:]...)
			return
		}
	}
}

// Projects returns the cached projects, newest first.
func (l *ProjectList) Projects() []ProjectView {
	return l.projects
}

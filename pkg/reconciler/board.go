package reconciler

import "encoding/json"

// Board statuses are the three fixed columns.
const (
	StatusTodo       = "TODO"
	StatusInProgress = "IN_PROGRESS"
	StatusDone       = "DONE"
)

// TaskView is the slice of a task event payload the board cares about.
// Unknown payload fields are ignored.
type TaskView struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Status     string  `json:"status"`
	Priority   string  `json:"priority"`
	AssigneeID *string `json:"assigneeId"`
}

// Board is a client-side cache of one project's tasks bucketed by
// status. Not safe for concurrent use; a connection applies its events
// from a single goroutine.
type Board struct {
	columns map[string][]TaskView
	detail  string
}

// NewBoard creates an empty board with all three columns present.
func NewBoard() *Board {
	return &Board{
		columns: map[string][]TaskView{
			StatusTodo:       {},
			StatusInProgress: {},
			StatusDone:       {},
		},
	}
}

// Apply folds a task event into the board. Unknown events are ignored.
func (b *Board) Apply(event string, data json.RawMessage) error {
	switch parseAction(event) {
	case actionUpsert:
		var task TaskView
		if err := json.Unmarshal(data, &task); err != nil {
			return err
		}
		b.Upsert(task)
	case actionDelete:
		id, err := decodeDeletedID(data)
		if err != nil {
			return err
		}
		b.Delete(id)
	}
	return nil
}

// Upsert removes the task from whichever column holds it, then inserts
// it into the column matching its current status. Handles both first
// appearance and status transitions.
func (b *Board) Upsert(task TaskView) {
	b.removeEverywhere(task.ID)

	status := task.Status
	if _, ok := b.columns[status]; !ok {
		status = StatusTodo
	}
	b.columns[status] = append(b.columns[status], task)
}

// Delete removes the task from every column. If the task is open in the
// detail view, the view closes.
func (b *Board) Delete(id string) {
	b.removeEverywhere(id)
	if b.detail == id {
		b.detail = ""
	}
}

func (b *Board) removeEverywhere(id string) {
	for status, tasks := range b.columns {
		for i, task := range tasks {
			if task.ID == id {
				b.columns[status] = append(tasks[:i:i], tasks[i+1:]...)
				break
			}
		}
	}
}

// Column returns the tasks currently in a status column.
func (b *Board) Column(status string) []TaskView {
	return b.columns[status]
}

// OpenDetail marks a task as open in the detail view.
func (b *Board) OpenDetail(id string) {
	b.detail = id
}

// OpenDetailID returns the task currently open in the detail view, or
// empty when none is.
func (b *Board) OpenDetailID() string {
	return b.detail
}

// Len returns the total number of tasks on the board.
func (b *Board) Len() int {
	n := 0
	for _, tasks := range b.columns {
		n += len(tasks)
	}
	return n
}

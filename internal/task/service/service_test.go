package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/festy23/teamboard/internal/authz"
	projectRepository "github.com/festy23/teamboard/internal/project/repository"
	taskModel "github.com/festy23/teamboard/internal/task/model"
	"github.com/festy23/teamboard/internal/task/repository"
	"github.com/festy23/teamboard/pkg/optional"
)

type publishedEvent struct {
	scope   string
	event   string
	payload interface{}
}

type capturePublisher struct {
	events []publishedEvent
}

func (p *capturePublisher) Publish(scope, event string, payload interface{}) {
	p.events = append(p.events, publishedEvent{scope: scope, event: event, payload: payload})
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Create tables
	type User struct {
		ID           string `gorm:"primaryKey;column:id"`
		Name         string `gorm:"column:name"`
		Email        string `gorm:"column:email"`
		PasswordHash string `gorm:"column:password_hash"`
		CreatedAt    time.Time
		UpdatedAt    time.Time
	}
	type Team struct {
		ID          string  `gorm:"primaryKey;column:id"`
		Name        string  `gorm:"column:name"`
		Description *string `gorm:"column:description"`
		CreatorID   string  `gorm:"column:creator_id"`
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}
	type TeamMember struct {
		ID        string `gorm:"primaryKey;column:id"`
		TeamID    string `gorm:"column:team_id"`
		UserID    string `gorm:"column:user_id"`
		Role      string `gorm:"column:role"`
		CreatedAt time.Time
	}
	type Project struct {
		ID          string  `gorm:"primaryKey;column:id"`
		Name        string  `gorm:"column:name"`
		Description *string `gorm:"column:description"`
		Status      string  `gorm:"column:status"`
		TeamID      string  `gorm:"column:team_id"`
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}
	type Task struct {
		ID          string  `gorm:"primaryKey;column:id"`
		Title       string  `gorm:"column:title"`
		Description *string `gorm:"column:description"`
		Status      string  `gorm:"column:status"`
		Priority    string  `gorm:"column:priority"`
		ProjectID   string  `gorm:"column:project_id"`
		AssigneeID  *string `gorm:"column:assignee_id"`
		DueDate     *time.Time
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}
	type Comment struct {
		ID        string `gorm:"primaryKey;column:id"`
		Content   string `gorm:"column:content"`
		TaskID    string `gorm:"column:task_id"`
		AuthorID  string `gorm:"column:author_id"`
		CreatedAt time.Time
	}
	err = db.AutoMigrate(&User{}, &Team{}, &TeamMember{}, &Project{}, &Task{}, &Comment{})
	require.NoError(t, err)

	db.Exec("INSERT INTO users (id, name, email, password_hash) VALUES ('alice', 'Alice', 'alice@example.com', 'x')")
	db.Exec("INSERT INTO users (id, name, email, password_hash) VALUES ('bob', 'Bob', 'bob@example.com', 'x')")
	db.Exec("INSERT INTO users (id, name, email, password_hash) VALUES ('carol', 'Carol', 'carol@example.com', 'x')")
	db.Exec("INSERT INTO teams (id, name, creator_id) VALUES ('team-1', 'Engineering Team', 'alice')")
	db.Exec("INSERT INTO team_members (id, team_id, user_id, role) VALUES ('m1', 'team-1', 'alice', 'admin')")
	db.Exec("INSERT INTO team_members (id, team_id, user_id, role) VALUES ('m2', 'team-1', 'bob', 'member')")
	db.Exec("INSERT INTO projects (id, name, status, team_id) VALUES ('proj-1', 'Mobile App Development', 'active', 'team-1')")

	return db
}

func newService(t *testing.T) (Service, *capturePublisher, *gorm.DB) {
	db := setupTestDB(t)
	publisher := &capturePublisher{}
	svc := New(repository.New(db), projectRepository.New(db), authz.New(db), publisher, zap.NewNop().Sugar())
	return svc, publisher, db
}

func strPtr(s string) *string { return &s }

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults apply when status and priority are absent", func(t *testing.T) {
		svc, publisher, _ := newService(t)

		resp, err := svc.Create(ctx, "bob", &taskModel.CreateTaskRequest{
			Title:     "Design landing page",
			ProjectID: "proj-1",
		})
		require.NoError(t, err)

		assert.Equal(t, taskModel.StatusTodo, resp.Status)
		assert.Equal(t, taskModel.PriorityMedium, resp.Priority)
		assert.Nil(t, resp.AssigneeID)
		assert.Equal(t, "Mobile App Development", resp.Project.Name)
		assert.Equal(t, "team-1", resp.Project.TeamID)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, "project:proj-1", publisher.events[0].scope)
		assert.Equal(t, "task-created", publisher.events[0].event)
		assert.Equal(t, resp, publisher.events[0].payload)
	})

	t.Run("assignee must belong to the team", func(t *testing.T) {
		svc, publisher, _ := newService(t)

		_, err := svc.Create(ctx, "alice", &taskModel.CreateTaskRequest{
			Title:      "Design landing page",
			ProjectID:  "proj-1",
			AssigneeID: strPtr("carol"),
		})

		assert.ErrorIs(t, err, taskModel.ErrAssigneeNotMember)
		assert.Empty(t, publisher.events)
	})

	t.Run("member assignee is accepted and hydrated", func(t *testing.T) {
		svc, _, _ := newService(t)

		resp, err := svc.Create(ctx, "alice", &taskModel.CreateTaskRequest{
			Title:      "Design landing page",
			ProjectID:  "proj-1",
			AssigneeID: strPtr("bob"),
		})
		require.NoError(t, err)

		require.NotNil(t, resp.Assignee)
		assert.Equal(t, "Bob", resp.Assignee.Name)
	})

	t.Run("non-member cannot create", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Create(ctx, "carol", &taskModel.CreateTaskRequest{
			Title:     "Design landing page",
			ProjectID: "proj-1",
		})

		assert.ErrorIs(t, err, taskModel.ErrAccessDenied)
	})

	t.Run("short title is rejected", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Create(ctx, "alice", &taskModel.CreateTaskRequest{
			Title:     " ab ",
			ProjectID: "proj-1",
		})

		assert.ErrorIs(t, err, taskModel.ErrInvalidTitle)
	})

	t.Run("title length counts characters, not bytes", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Create(ctx, "alice", &taskModel.CreateTaskRequest{
			Title:     "日本",
			ProjectID: "proj-1",
		})

		assert.ErrorIs(t, err, taskModel.ErrInvalidTitle)
	})

	t.Run("status outside the closed set is rejected", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Create(ctx, "alice", &taskModel.CreateTaskRequest{
			Title:     "Design landing page",
			ProjectID: "proj-1",
			Status:    strPtr("BLOCKED"),
		})

		assert.ErrorIs(t, err, taskModel.ErrInvalidStatus)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	create := func(t *testing.T, svc Service) *taskModel.TaskResponse {
		resp, err := svc.Create(ctx, "alice", &taskModel.CreateTaskRequest{
			Title:      "Design landing page",
			ProjectID:  "proj-1",
			AssigneeID: strPtr("bob"),
		})
		require.NoError(t, err)
		return resp
	}

	t.Run("member moves the task across the board", func(t *testing.T) {
		svc, publisher, _ := newService(t)
		created := create(t, svc)
		publisher.events = nil

		resp, err := svc.Update(ctx, "bob", created.ID, &taskModel.UpdateTaskRequest{
			Status: strPtr(taskModel.StatusInProgress),
		})
		require.NoError(t, err)

		assert.Equal(t, taskModel.StatusInProgress, resp.Status)
		require.Len(t, publisher.events, 1)
		assert.Equal(t, "project:proj-1", publisher.events[0].scope)
		assert.Equal(t, "task-updated", publisher.events[0].event)
		assert.Equal(t, resp, publisher.events[0].payload)
	})

	t.Run("null assignee clears the assignment", func(t *testing.T) {
		svc, _, _ := newService(t)
		created := create(t, svc)

		resp, err := svc.Update(ctx, "alice", created.ID, &taskModel.UpdateTaskRequest{
			AssigneeID: optional.Null[string](),
		})
		require.NoError(t, err)

		assert.Nil(t, resp.AssigneeID)
		assert.Nil(t, resp.Assignee)
	})

	t.Run("absent assignee stays unchanged", func(t *testing.T) {
		svc, _, _ := newService(t)
		created := create(t, svc)

		resp, err := svc.Update(ctx, "alice", created.ID, &taskModel.UpdateTaskRequest{
			Title: strPtr("Design landing page v2"),
		})
		require.NoError(t, err)

		require.NotNil(t, resp.AssigneeID)
		assert.Equal(t, "bob", *resp.AssigneeID)
	})

	t.Run("reassignment to a non-member is rejected", func(t *testing.T) {
		svc, _, _ := newService(t)
		created := create(t, svc)

		_, err := svc.Update(ctx, "alice", created.ID, &taskModel.UpdateTaskRequest{
			AssigneeID: optional.Of("carol"),
		})

		assert.ErrorIs(t, err, taskModel.ErrAssigneeNotMember)
	})

	t.Run("null due date clears it", func(t *testing.T) {
		svc, _, _ := newService(t)
		due := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		created, err := svc.Create(ctx, "alice", &taskModel.CreateTaskRequest{
			Title:     "Design landing page",
			ProjectID: "proj-1",
			DueDate:   &due,
		})
		require.NoError(t, err)
		require.NotNil(t, created.DueDate)

		resp, err := svc.Update(ctx, "alice", created.ID, &taskModel.UpdateTaskRequest{
			DueDate: optional.Null[time.Time](),
		})
		require.NoError(t, err)

		assert.Nil(t, resp.DueDate)
	})

	t.Run("non-member cannot update", func(t *testing.T) {
		svc, _, _ := newService(t)
		created := create(t, svc)

		_, err := svc.Update(ctx, "carol", created.ID, &taskModel.UpdateTaskRequest{
			Status: strPtr(taskModel.StatusDone),
		})

		assert.ErrorIs(t, err, taskModel.ErrAccessDenied)
	})

	t.Run("unknown task is not found", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Update(ctx, "alice", "missing", &taskModel.UpdateTaskRequest{})

		assert.ErrorIs(t, err, taskModel.ErrTaskNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("admin delete cascades comments and emits id payload", func(t *testing.T) {
		svc, publisher, db := newService(t)
		created, err := svc.Create(ctx, "alice", &taskModel.CreateTaskRequest{
			Title:     "Design landing page",
			ProjectID: "proj-1",
		})
		require.NoError(t, err)

		db.Exec("INSERT INTO comments (id, content, task_id, author_id) VALUES ('c1', 'looks good', ?, 'bob')", created.ID)
		publisher.events = nil

		require.NoError(t, svc.Delete(ctx, "alice", created.ID))

		var comments int64
		db.Table("comments").Where("task_id = ?", created.ID).Count(&comments)
		assert.Zero(t, comments)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, "project:proj-1", publisher.events[0].scope)
		assert.Equal(t, "task-deleted", publisher.events[0].event)
		assert.Equal(t, &taskModel.DeletedPayload{ID: created.ID}, publisher.events[0].payload)
	})

	t.Run("member cannot delete", func(t *testing.T) {
		svc, publisher, _ := newService(t)
		created, err := svc.Create(ctx, "alice", &taskModel.CreateTaskRequest{
			Title:     "Design landing page",
			ProjectID: "proj-1",
		})
		require.NoError(t, err)
		publisher.events = nil

		err = svc.Delete(ctx, "bob", created.ID)

		assert.ErrorIs(t, err, taskModel.ErrDeleteAdminOnly)
		assert.Empty(t, publisher.events)
	})
}

func TestService_ListAndBoard(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, svc Service) {
		for _, task := range []taskModel.CreateTaskRequest{
			{Title: "Design landing page", ProjectID: "proj-1", AssigneeID: strPtr("bob")},
			{Title: "Set up CI", ProjectID: "proj-1", Status: strPtr(taskModel.StatusInProgress), Priority: strPtr(taskModel.PriorityHigh)},
			{Title: "Write release notes", ProjectID: "proj-1", Status: strPtr(taskModel.StatusDone)},
		} {
			req := task
			_, err := svc.Create(ctx, "alice", &req)
			require.NoError(t, err)
		}
	}

	t.Run("filters narrow the listing", func(t *testing.T) {
		svc, _, _ := newService(t)
		seed(t, svc)

		all, err := svc.ListByProject(ctx, "bob", "proj-1", nil)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		todo, err := svc.ListByProject(ctx, "bob", "proj-1", &taskModel.ListFilter{Status: strPtr(taskModel.StatusTodo)})
		require.NoError(t, err)
		require.Len(t, todo, 1)
		assert.Equal(t, "Design landing page", todo[0].Title)

		high, err := svc.ListByProject(ctx, "bob", "proj-1", &taskModel.ListFilter{Priority: strPtr(taskModel.PriorityHigh)})
		require.NoError(t, err)
		require.Len(t, high, 1)
		assert.Equal(t, "Set up CI", high[0].Title)

		mine, err := svc.ListByProject(ctx, "bob", "proj-1", &taskModel.ListFilter{AssigneeID: strPtr("bob")})
		require.NoError(t, err)
		assert.Len(t, mine, 1)
	})

	t.Run("invalid filter value is rejected", func(t *testing.T) {
		svc, _, _ := newService(t)
		seed(t, svc)

		_, err := svc.ListByProject(ctx, "bob", "proj-1", &taskModel.ListFilter{Status: strPtr("BLOCKED")})

		assert.ErrorIs(t, err, taskModel.ErrInvalidStatus)
	})

	t.Run("board groups tasks by status", func(t *testing.T) {
		svc, _, _ := newService(t)
		seed(t, svc)

		board, err := svc.Board(ctx, "bob", "proj-1")
		require.NoError(t, err)

		assert.Len(t, board.Todo, 1)
		assert.Len(t, board.InProgress, 1)
		assert.Len(t, board.Done, 1)
	})

	t.Run("non-member cannot list", func(t *testing.T) {
		svc, _, _ := newService(t)
		seed(t, svc)

		_, err := svc.ListByProject(ctx, "carol", "proj-1", nil)

		assert.ErrorIs(t, err, taskModel.ErrAccessDenied)
	})
}

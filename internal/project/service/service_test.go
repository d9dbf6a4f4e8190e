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
	projectModel "github.com/festy23/teamboard/internal/project/model"
	"github.com/festy23/teamboard/internal/project/repository"
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

	return db
}

func newService(t *testing.T) (Service, *capturePublisher, *gorm.DB) {
	db := setupTestDB(t)
	publisher := &capturePublisher{}
	svc := New(repository.New(db), authz.New(db), publisher, zap.NewNop().Sugar())
	return svc, publisher, db
}

func strPtr(s string) *string { return &s }

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("member creates project and one event fires", func(t *testing.T) {
		svc, publisher, _ := newService(t)

		resp, err := svc.Create(ctx, "bob", &projectModel.CreateProjectRequest{
			Name:   "Mobile App Development",
			TeamID: "team-1",
		})
		require.NoError(t, err)

		assert.Equal(t, "Mobile App Development", resp.Name)
		assert.Equal(t, projectModel.StatusActive, resp.Status)
		assert.Equal(t, "team-1", resp.TeamID)
		assert.Equal(t, "Engineering Team", resp.Team.Name)
		assert.Nil(t, resp.Description)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, "team:team-1", publisher.events[0].scope)
		assert.Equal(t, "project-created", publisher.events[0].event)
		assert.Equal(t, resp, publisher.events[0].payload)
	})

	t.Run("non-member is rejected", func(t *testing.T) {
		svc, publisher, _ := newService(t)

		_, err := svc.Create(ctx, "carol", &projectModel.CreateProjectRequest{
			Name:   "Mobile App Development",
			TeamID: "team-1",
		})

		assert.ErrorIs(t, err, projectModel.ErrCreateMembersOnly)
		assert.Empty(t, publisher.events)
	})

	t.Run("short name after trim is rejected", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Create(ctx, "alice", &projectModel.CreateProjectRequest{
			Name:   "  ab  ",
			TeamID: "team-1",
		})

		assert.ErrorIs(t, err, projectModel.ErrInvalidProjectName)
	})

	t.Run("length counts characters, not bytes", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Create(ctx, "alice", &projectModel.CreateProjectRequest{
			Name:   "日本",
			TeamID: "team-1",
		})

		assert.ErrorIs(t, err, projectModel.ErrInvalidProjectName)
	})

	t.Run("missing team id is rejected", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Create(ctx, "alice", &projectModel.CreateProjectRequest{Name: "Website"})

		assert.ErrorIs(t, err, projectModel.ErrMissingTeamID)
	})

	t.Run("empty description is stored as absent", func(t *testing.T) {
		svc, _, _ := newService(t)

		resp, err := svc.Create(ctx, "alice", &projectModel.CreateProjectRequest{
			Name:        "Website Redesign",
			Description: strPtr("   "),
			TeamID:      "team-1",
		})
		require.NoError(t, err)

		assert.Nil(t, resp.Description)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	create := func(t *testing.T, svc Service) *projectModel.ProjectResponse {
		resp, err := svc.Create(ctx, "alice", &projectModel.CreateProjectRequest{
			Name:   "Mobile App Development",
			TeamID: "team-1",
		})
		require.NoError(t, err)
		return resp
	}

	t.Run("member renames and one event fires", func(t *testing.T) {
		svc, publisher, _ := newService(t)
		created := create(t, svc)
		publisher.events = nil

		resp, err := svc.Update(ctx, "bob", created.ID, &projectModel.UpdateProjectRequest{
			Name: strPtr("Mobile App v2"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Mobile App v2", resp.Name)
		require.Len(t, publisher.events, 1)
		assert.Equal(t, "project-updated", publisher.events[0].event)
		assert.Equal(t, resp, publisher.events[0].payload)
	})

	t.Run("member cannot change status", func(t *testing.T) {
		svc, publisher, _ := newService(t)
		created := create(t, svc)
		publisher.events = nil

		_, err := svc.Update(ctx, "bob", created.ID, &projectModel.UpdateProjectRequest{
			Status: strPtr(projectModel.StatusArchived),
		})

		assert.ErrorIs(t, err, projectModel.ErrStatusAdminOnly)
		assert.Empty(t, publisher.events)
	})

	t.Run("member may resend the unchanged status", func(t *testing.T) {
		svc, _, _ := newService(t)
		created := create(t, svc)

		resp, err := svc.Update(ctx, "bob", created.ID, &projectModel.UpdateProjectRequest{
			Name:   strPtr("Mobile App v2"),
			Status: strPtr(projectModel.StatusActive),
		})
		require.NoError(t, err)

		assert.Equal(t, projectModel.StatusActive, resp.Status)
	})

	t.Run("admin changes status", func(t *testing.T) {
		svc, _, _ := newService(t)
		created := create(t, svc)

		resp, err := svc.Update(ctx, "alice", created.ID, &projectModel.UpdateProjectRequest{
			Status: strPtr(projectModel.StatusCompleted),
		})
		require.NoError(t, err)

		assert.Equal(t, projectModel.StatusCompleted, resp.Status)
	})

	t.Run("status outside the closed set is rejected", func(t *testing.T) {
		svc, _, _ := newService(t)
		created := create(t, svc)

		_, err := svc.Update(ctx, "alice", created.ID, &projectModel.UpdateProjectRequest{
			Status: strPtr("paused"),
		})

		assert.ErrorIs(t, err, projectModel.ErrInvalidStatus)
	})

	t.Run("null description clears it", func(t *testing.T) {
		svc, _, _ := newService(t)
		created, err := svc.Create(ctx, "alice", &projectModel.CreateProjectRequest{
			Name:        "Website Redesign",
			Description: strPtr("old text"),
			TeamID:      "team-1",
		})
		require.NoError(t, err)
		require.NotNil(t, created.Description)

		resp, err := svc.Update(ctx, "alice", created.ID, &projectModel.UpdateProjectRequest{
			Description: optional.Null[string](),
		})
		require.NoError(t, err)

		assert.Nil(t, resp.Description)
	})

	t.Run("absent description stays unchanged", func(t *testing.T) {
		svc, _, _ := newService(t)
		created, err := svc.Create(ctx, "alice", &projectModel.CreateProjectRequest{
			Name:        "Website Redesign",
			Description: strPtr("keep me"),
			TeamID:      "team-1",
		})
		require.NoError(t, err)

		resp, err := svc.Update(ctx, "alice", created.ID, &projectModel.UpdateProjectRequest{
			Name: strPtr("Website Redesign v2"),
		})
		require.NoError(t, err)

		require.NotNil(t, resp.Description)
		assert.Equal(t, "keep me", *resp.Description)
	})

	t.Run("non-member is denied", func(t *testing.T) {
		svc, _, _ := newService(t)
		created := create(t, svc)

		_, err := svc.Update(ctx, "carol", created.ID, &projectModel.UpdateProjectRequest{
			Name: strPtr("Hijacked"),
		})

		assert.ErrorIs(t, err, projectModel.ErrAccessDenied)
	})

	t.Run("unknown project is not found", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Update(ctx, "alice", "missing", &projectModel.UpdateProjectRequest{})

		assert.ErrorIs(t, err, projectModel.ErrProjectNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("admin delete cascades and emits id payload", func(t *testing.T) {
		svc, publisher, db := newService(t)
		created, err := svc.Create(ctx, "alice", &projectModel.CreateProjectRequest{
			Name:   "Mobile App Development",
			TeamID: "team-1",
		})
		require.NoError(t, err)

		db.Exec("INSERT INTO tasks (id, title, status, priority, project_id) VALUES ('task-1', 'Design landing page', 'TODO', 'medium', ?)", created.ID)
		db.Exec("INSERT INTO comments (id, content, task_id, author_id) VALUES ('c1', 'looks good', 'task-1', 'bob')")
		publisher.events = nil

		require.NoError(t, svc.Delete(ctx, "alice", created.ID))

		var tasks, comments int64
		db.Table("tasks").Where("project_id = ?", created.ID).Count(&tasks)
		db.Table("comments").Where("task_id = ?", "task-1").Count(&comments)
		assert.Zero(t, tasks)
		assert.Zero(t, comments)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, "team:team-1", publisher.events[0].scope)
		assert.Equal(t, "project-deleted", publisher.events[0].event)
		assert.Equal(t, &projectModel.DeletedPayload{ID: created.ID}, publisher.events[0].payload)

		_, err = svc.Get(ctx, "alice", created.ID)
		assert.ErrorIs(t, err, projectModel.ErrProjectNotFound)
	})

	t.Run("member cannot delete", func(t *testing.T) {
		svc, publisher, _ := newService(t)
		created, err := svc.Create(ctx, "alice", &projectModel.CreateProjectRequest{
			Name:   "Mobile App Development",
			TeamID: "team-1",
		})
		require.NoError(t, err)
		publisher.events = nil

		err = svc.Delete(ctx, "bob", created.ID)

		assert.ErrorIs(t, err, projectModel.ErrDeleteAdminOnly)
		assert.Empty(t, publisher.events)
	})
}

func TestService_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("list is scoped to members", func(t *testing.T) {
		svc, _, _ := newService(t)
		_, err := svc.Create(ctx, "alice", &projectModel.CreateProjectRequest{
			Name:   "Mobile App Development",
			TeamID: "team-1",
		})
		require.NoError(t, err)

		projects, err := svc.ListByTeam(ctx, "bob", "team-1")
		require.NoError(t, err)
		assert.Len(t, projects, 1)

		_, err = svc.ListByTeam(ctx, "carol", "team-1")
		assert.ErrorIs(t, err, projectModel.ErrAccessDenied)
	})

	t.Run("get denies non-members", func(t *testing.T) {
		svc, _, _ := newService(t)
		created, err := svc.Create(ctx, "alice", &projectModel.CreateProjectRequest{
			Name:   "Mobile App Development",
			TeamID: "team-1",
		})
		require.NoError(t, err)

		_, err = svc.Get(ctx, "carol", created.ID)
		assert.ErrorIs(t, err, projectModel.ErrAccessDenied)
	})
}

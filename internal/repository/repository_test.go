package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/testutil"
	"gorm.io/gorm"
)

// RepositoryTestSuite runs the repositories against in-memory SQLite
type RepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	users UserRepository
	todos TodoRepository
	ctx   context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.db = testutil.NewSQLiteDB(s.T())
	s.users = NewUserRepository(s.db)
	s.todos = NewTodoRepository(s.db)
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) createUser(username, email string) *models.User {
	user := &models.User{Username: username, Email: email, PasswordHash: "hash"}
	s.Require().NoError(s.users.Create(s.ctx, user))
	return user
}

func (s *RepositoryTestSuite) createTodo(userID, title string, completed bool, createdAt time.Time) *models.Todo {
	todo := &models.Todo{UserID: userID, Title: title, CreatedAt: createdAt}
	s.Require().NoError(s.todos.Create(s.ctx, todo))
	if completed {
		done := true
		s.Require().NoError(s.todos.Update(s.ctx, todo.ID, userID, TodoChanges{Completed: &done}))
		todo.Completed = true
	}
	return todo
}

func (s *RepositoryTestSuite) TestUserCreate_AssignsID() {
	user := s.createUser("alice", "alice@example.com")

	s.NotEmpty(user.ID)
	s.False(user.CreatedAt.IsZero())

	found, err := s.users.FindByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("alice", found.Username)
	s.Equal("hash", found.PasswordHash)
}

func (s *RepositoryTestSuite) TestUserCreate_DuplicateEmail() {
	s.createUser("alice", "alice@example.com")

	err := s.users.Create(s.ctx, &models.User{Username: "bob", Email: "alice@example.com", PasswordHash: "hash"})
	s.ErrorIs(err, ErrDuplicate)
}

func (s *RepositoryTestSuite) TestUserCreate_DuplicateUsername() {
	s.createUser("alice", "alice@example.com")

	err := s.users.Create(s.ctx, &models.User{Username: "alice", Email: "other@example.com", PasswordHash: "hash"})
	s.ErrorIs(err, ErrDuplicate)
}

func (s *RepositoryTestSuite) TestUserFinders() {
	user := s.createUser("alice", "alice@example.com")

	byEmail, err := s.users.FindByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(user.ID, byEmail.ID)

	byName, err := s.users.FindByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(user.ID, byName.ID)

	_, err = s.users.FindByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = s.users.FindByID(s.ctx, "missing")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *RepositoryTestSuite) TestTodoList_OrderAndScope() {
	alice := s.createUser("alice", "alice@example.com")
	bob := s.createUser("bob", "bob@example.com")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	s.createTodo(alice.ID, "first", false, base)
	s.createTodo(alice.ID, "second", true, base.Add(time.Minute))
	s.createTodo(alice.ID, "third", false, base.Add(2*time.Minute))
	s.createTodo(bob.ID, "bob's", false, base)

	todos, err := s.todos.List(s.ctx, TodoFilter{UserID: alice.ID})
	s.Require().NoError(err)
	s.Require().Len(todos, 3)
	s.Equal("third", todos[0].Title)
	s.Equal("second", todos[1].Title)
	s.Equal("first", todos[2].Title)

	completed := true
	todos, err = s.todos.List(s.ctx, TodoFilter{UserID: alice.ID, Completed: &completed})
	s.Require().NoError(err)
	s.Require().Len(todos, 1)
	s.Equal("second", todos[0].Title)

	active := false
	todos, err = s.todos.List(s.ctx, TodoFilter{UserID: alice.ID, Completed: &active})
	s.Require().NoError(err)
	s.Len(todos, 2)
}

func (s *RepositoryTestSuite) TestTodoList_EmptyIsNotNil() {
	todos, err := s.todos.List(s.ctx, TodoFilter{UserID: "nobody"})
	s.Require().NoError(err)
	s.NotNil(todos)
	s.Empty(todos)
}

func (s *RepositoryTestSuite) TestTodoFindByID_Ownership() {
	alice := s.createUser("alice", "alice@example.com")
	bob := s.createUser("bob", "bob@example.com")
	todo := s.createTodo(alice.ID, "mine", false, time.Now())

	found, err := s.todos.FindByID(s.ctx, todo.ID, alice.ID)
	s.Require().NoError(err)
	s.Equal("mine", found.Title)
	s.False(found.Completed)

	_, err = s.todos.FindByID(s.ctx, todo.ID, bob.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *RepositoryTestSuite) TestTodoUpdate_PartialAndScoped() {
	alice := s.createUser("alice", "alice@example.com")
	bob := s.createUser("bob", "bob@example.com")
	todo := s.createTodo(alice.ID, "draft", false, time.Now())

	title := "final"
	s.Require().NoError(s.todos.Update(s.ctx, todo.ID, alice.ID, TodoChanges{Title: &title}))

	found, err := s.todos.FindByID(s.ctx, todo.ID, alice.ID)
	s.Require().NoError(err)
	s.Equal("final", found.Title)
	s.False(found.Completed)

	// Another user's update touches nothing
	hijack := "hijacked"
	s.Require().NoError(s.todos.Update(s.ctx, todo.ID, bob.ID, TodoChanges{Title: &hijack}))
	found, err = s.todos.FindByID(s.ctx, todo.ID, alice.ID)
	s.Require().NoError(err)
	s.Equal("final", found.Title)

	s.NoError(s.todos.Update(s.ctx, todo.ID, alice.ID, TodoChanges{}))
}

func (s *RepositoryTestSuite) TestTodoDelete() {
	alice := s.createUser("alice", "alice@example.com")
	bob := s.createUser("bob", "bob@example.com")
	todo := s.createTodo(alice.ID, "doomed", false, time.Now())

	s.ErrorIs(s.todos.Delete(s.ctx, todo.ID, bob.ID), gorm.ErrRecordNotFound)
	s.Require().NoError(s.todos.Delete(s.ctx, todo.ID, alice.ID))
	s.ErrorIs(s.todos.Delete(s.ctx, todo.ID, alice.ID), gorm.ErrRecordNotFound)

	_, err := s.todos.FindByID(s.ctx, todo.ID, alice.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *RepositoryTestSuite) TestTodoCountByUser() {
	alice := s.createUser("alice", "alice@example.com")
	now := time.Now()
	s.createTodo(alice.ID, "a", true, now)
	s.createTodo(alice.ID, "b", false, now)
	s.createTodo(alice.ID, "c", true, now)

	total, completed, err := s.todos.CountByUser(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Equal(int64(2), completed)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func TestTodoChanges_IsEmpty(t *testing.T) {
	title := "x"
	assert.True(t, TodoChanges{}.IsEmpty())
	assert.False(t, TodoChanges{Title: &title}.IsEmpty())
	require.False(t, TodoChanges{Completed: new(bool)}.IsEmpty())
}

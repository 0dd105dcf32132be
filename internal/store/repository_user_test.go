package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bloglist/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestPostgresDB(t)
	repo := NewUserRepository(db, fixedIDFormat{id: testUserID}).(*userRepository)
	return repo, mock
}

var userRowColumns = []string{"id", "username", "name", "password_hash", "created_at"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	createdAt := freezeTime(t)

	mock.ExpectExec(`INSERT INTO users \(id,username,name,password_hash,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5\)`).
		WithArgs(testUserID, "root1", "root alpha", "hash", createdAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), models.User{
		Username:     "root1",
		Name:         "root alpha",
		PasswordHash: "hash",
	})

	require.NoError(t, err)
	assert.Equal(t, testUserID, created.ID)
	assert.Equal(t, "root1", created.Username)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.NotNil(t, created.Blogs)
	assert.Empty(t, created.Blogs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "root1"})

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCreateUser_SQLiteUniqueViolation(t *testing.T) {
	db, mock := newTestSQLiteDB(t)
	repo := NewUserRepository(db, fixedIDFormat{id: testUserID})

	mock.ExpectExec(`INSERT INTO users \(id,username,name,password_hash,created_at\) VALUES \(\?,\?,\?,\?,\?\)`).
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

	_, err := repo.CreateUser(context.Background(), models.User{Username: "root1"})

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "root1"})

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrUsernameTaken)
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	createdAt := freezeTime(t)

	mock.ExpectQuery(`SELECT id, username, name, password_hash, created_at FROM users WHERE username = \$1`).
		WithArgs("root1").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(testUserID, "root1", "root alpha", "hash", createdAt))

	found, err := repo.FindUserByUsername(context.Background(), "root1")

	require.NoError(t, err)
	assert.Equal(t, testUserID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByID(context.Background(), testUserID)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByID_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByID(context.Background(), testUserID)

	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestListUsers_AssemblesBlogs(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	createdAt := freezeTime(t)
	const otherUserID = "0190a7b2-7000-7aaa-8bbb-cccccccccccc"

	mock.ExpectQuery(`SELECT id, username, name, password_hash, created_at FROM users ORDER BY created_at, id`).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(testUserID, "root1", "root alpha", "h1", createdAt).
			AddRow(otherUserID, "root2", "root beta", "h2", createdAt))

	mock.ExpectQuery(`SELECT ub.user_id, b.id, b.title, b.author, b.url, b.likes FROM user_blogs ub JOIN blogs b ON b.id = ub.blog_id`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "id", "title", "author", "url", "likes"}).
			AddRow(testUserID, testBlogID, "Env Variables", "Muia", "https://env.dev", 1029))

	users, err := repo.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Len(t, users[0].Blogs, 1)
	assert.Equal(t, models.BlogRef{
		ID: testBlogID, Title: "Env Variables", Author: "Muia", URL: "https://env.dev", Likes: 1029,
	}, users[0].Blogs[0])
	assert.NotNil(t, users[1].Blogs)
	assert.Empty(t, users[1].Blogs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users").WillReturnError(errors.New("boom"))

	users, err := repo.ListUsers(context.Background())

	assert.Nil(t, users)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListUsers_RowError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(testUserID, "root1", "", "h", freezeTime(t)).
			RowError(0, errors.New("row broke")))

	_, err := repo.ListUsers(context.Background())

	assert.ErrorIs(t, err, ErrScanningRows)
}

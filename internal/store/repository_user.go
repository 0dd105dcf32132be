package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/models"
)

// userRepository is the SQL implementation of [UserRepository] shared by
// the PostgreSQL and SQLite backends.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	ids IDFormat
}

// NewUserRepository constructs a [UserRepository] backed by db. New users
// receive identifiers from ids.
func NewUserRepository(db *DB, ids IDFormat) UserRepository {
	db.logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:  db,
		ids: ids,
	}
}

// CreateUser assigns an ID and creation time to user and inserts it.
//
// Error handling:
//   - unique violation on username → [ErrUsernameTaken].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ID = r.ids.NewID()
	user.CreatedAt = now()

	query, args, err := buildInsertUserQuery(r.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if r.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username already taken")
			return models.User{}, ErrUsernameTaken
		}

		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user.Blogs = []models.BlogRef{}
	return user, nil
}

// FindUserByID returns the user with id or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"id": id})
}

// FindUserByUsername returns the user with username or [ErrUserNotFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"username": username})
}

func (r *userRepository) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.builder, where)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.findUser").
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("failed to find user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ListUsers returns all users ordered by creation time. Each user's Blogs
// holds the referenced blogs' fields; users without blogs get an empty
// slice.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := r.listUsers(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(users))
	for i := range users {
		index[users[i].ID] = i
	}

	query, args, err := buildListUserBlogsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to query user blogs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		var ref models.BlogRef
		if err = rows.Scan(&userID, &ref.ID, &ref.Title, &ref.Author, &ref.URL, &ref.Likes); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to scan user blog row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if i, ok := index[userID]; ok {
			users[i].Blogs = append(users[i].Blogs, ref)
		}
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) listUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.listUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.listUsers").Msg("failed to query users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		user := models.User{Blogs: []models.BlogRef{}}
		if err = rows.Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.listUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.listUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

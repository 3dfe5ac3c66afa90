package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ddenisov/go-contact-keeper/internal/logger"
	"github.com/ddenisov/go-contact-keeper/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup and credential updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record.
//
// The username is the primary key, so a duplicate registration surfaces as a
// unique-constraint violation, which is classified and returned as
// [ErrUsernameAlreadyExists]. Any other driver-level error is wrapped as an
// unexpected DB error.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert(user.TableName()).
		Columns("username", "password", "name").
		Values(user.Username, user.PasswordHash, user.Name).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassifier.IsUniqueViolation(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error executing insert")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByUsername retrieves the account with the given username,
// including the password hash and the currently stored session token.
//
// An empty result set is returned as [ErrNoUserWasFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("username", "password", "name", "token").
		From(models.User{}.TableName()).
		Where("username = ?", username).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&foundUser.Username, &foundUser.PasswordHash, &foundUser.Name, &foundUser.Token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// UpdateUser overwrites the mutable columns of an existing account.
// The username (primary key) never changes.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update(user.TableName()).
		Set("name", user.Name).
		Set("password", user.PasswordHash).
		Set("token", user.Token).
		Where("username = ?", user.Username).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error executing update")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}

// UpdateToken sets the stored session token, or clears it when token is nil.
// A cleared token marks the user as logged out.
func (r *userRepository) UpdateToken(ctx context.Context, username string, token *string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update(models.User{}.TableName()).
		Set("token", token).
		Where("username = ?", username).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateToken").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateToken").Msg("error executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/models"
)

// userRepository is the SQL implementation of [UserRepository] for both the
// PostgreSQL and the SQLite backends. Dialect differences are confined to the
// query builder and the error classifier held by [DB].
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

// CreateUser inserts the user row and returns user unchanged.
//
// Error handling:
//   - UNIQUE violation on login → [ErrLoginAlreadyExists].
//   - UNIQUE violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if column, ok := r.db.uniqueViolation(err); ok {
			switch column {
			case "email":
				return models.User{}, ErrEmailAlreadyExists
			default:
				return models.User{}, ErrLoginAlreadyExists
			}
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByLogin implements [UserRepository].
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByLogin", func(b sq.StatementBuilderType) (string, []any, error) {
		return buildSelectUserQuery(b, sq.Eq{"login": login})
	})
}

// FindUserByEmail implements [UserRepository].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", func(b sq.StatementBuilderType) (string, []any, error) {
		return buildSelectUserQuery(b, sq.Eq{"email": email})
	})
}

// FindUserByLoginOrEmail implements [UserRepository].
func (r *userRepository) FindUserByLoginOrEmail(ctx context.Context, value string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByLoginOrEmail", func(b sq.StatementBuilderType) (string, []any, error) {
		return buildSelectUserByLoginOrEmailQuery(b, value, value)
	})
}

// FindUserByLoginOrEmailPair implements [UserRepository].
func (r *userRepository) FindUserByLoginOrEmailPair(ctx context.Context, login, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByLoginOrEmailPair", func(b sq.StatementBuilderType) (string, []any, error) {
		return buildSelectUserByLoginOrEmailQuery(b, login, email)
	})
}

// FindUserByConfirmationCode implements [UserRepository].
func (r *userRepository) FindUserByConfirmationCode(ctx context.Context, code string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByConfirmationCode", func(b sq.StatementBuilderType) (string, []any, error) {
		return buildSelectUserQuery(b, sq.Eq{"confirmation_code": code})
	})
}

// FindLatestUser implements [UserRepository].
func (r *userRepository) FindLatestUser(ctx context.Context) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindLatestUser", buildSelectLatestUserQuery)
}

// UpdateConfirmation implements [UserRepository]. The WHERE clause carries
// the expected code, so a concurrent confirm or resend makes this a no-op.
func (r *userRepository) UpdateConfirmation(ctx context.Context, userID, expectedCode string, state models.ConfirmationState) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateConfirmationQuery(r.db.builder, userID, expectedCode, state)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateConfirmation").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffected(ctx, "*userRepository.UpdateConfirmation", query, args)
}

// DeleteUser implements [UserRepository].
func (r *userRepository) DeleteUser(ctx context.Context, userID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffected(ctx, "*userRepository.DeleteUser", query, args)
}

// DeleteAllUsers implements [UserRepository].
func (r *userRepository) DeleteAllUsers(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAllUsersQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteAllUsers").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteAllUsers").Msg("error deleting users")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// findOne runs a single-row SELECT built by build and scans the result.
// Reads are retried on transient errors; sql.ErrNoRows → [ErrNoUserWasFound].
func (r *userRepository) findOne(ctx context.Context, funcName string, build func(sq.StatementBuilderType) (string, []any, error)) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := build(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// execAffected executes a DML statement and reports whether any row changed.
func (r *userRepository) execAffected(ctx context.Context, funcName, query string, args []any) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

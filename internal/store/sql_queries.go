package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-blog-platform/models"
)

const usersTable = "users"

// userColumns is the column order shared by every SELECT and scanUser.
var userColumns = []string{
	"id",
	"login",
	"email",
	"password_hash",
	"created_at",
	"confirmation_code",
	"confirmation_expires_at",
	"is_confirmed",
}

// buildInsertUserQuery builds the INSERT of a complete user row.
func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.ID,
			user.Login,
			user.Email,
			user.PasswordHash,
			user.CreatedAt.UTC(),
			user.Confirmation.Code,
			user.Confirmation.ExpiresAt.UTC(),
			user.Confirmation.IsConfirmed,
		).
		ToSql()
}

// buildSelectUserQuery builds a single-row SELECT filtered by where.
func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

// buildSelectUserByLoginOrEmailQuery matches login or email and ranks a
// login match first.
func buildSelectUserByLoginOrEmailQuery(b sq.StatementBuilderType, login, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Or{sq.Eq{"login": login}, sq.Eq{"email": email}}).
		OrderByClause("CASE WHEN login = ? THEN 0 ELSE 1 END", login).
		Limit(1).
		ToSql()
}

// buildSelectLatestUserQuery selects the newest user. Ids are UUIDv7, so
// they break created_at ties in creation order.
func buildSelectLatestUserQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
}

// buildUpdateConfirmationQuery replaces the confirmation columns of an
// unconfirmed user whose code still equals expectedCode.
func buildUpdateConfirmationQuery(b sq.StatementBuilderType, userID, expectedCode string, state models.ConfirmationState) (string, []any, error) {
	return b.Update(usersTable).
		Set("confirmation_code", state.Code).
		Set("confirmation_expires_at", state.ExpiresAt.UTC()).
		Set("is_confirmed", state.IsConfirmed).
		Where(sq.And{
			sq.Eq{"id": userID},
			sq.Eq{"confirmation_code": expectedCode},
			sq.Eq{"is_confirmed": false},
		}).
		ToSql()
}

// buildDeleteUserQuery deletes one user by id.
func buildDeleteUserQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// buildDeleteAllUsersQuery deletes every user.
func buildDeleteAllUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Delete(usersTable).ToSql()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one row laid out as userColumns.
func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Login,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.Confirmation.Code,
		&user.Confirmation.ExpiresAt,
		&user.Confirmation.IsConfirmed,
	)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ductran2702/code-challenge-backend/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError(t *testing.T) {
	t.Run("http errors pass through", func(t *testing.T) {
		in := errs.NewNotFoundError("Item not found", nil)
		assert.Same(t, in, HandleError(in))
	})

	t.Run("check violation becomes bad request", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           "23514",
			Severity:       "ERROR",
			Message:        "new row violates check constraint",
			TableName:      "items",
			ColumnName:     "name",
			ConstraintName: "items_name_check",
		}

		httpErr := asHTTPError(t, HandleError(fmt.Errorf("insert item: %w", pgErr)))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "ITEM_INVALID", httpErr.Code)
		assert.Equal(t, "The Name value does not meet required conditions", httpErr.Message)
	})

	t.Run("not null violation carries field details", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23502", TableName: "items", ColumnName: "name"}

		httpErr := asHTTPError(t, HandleError(pgErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "ITEM_REQUIRED", httpErr.Code)
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, errs.FieldError{Field: "name", Error: "is required"}, httpErr.Errors[0])
	})

	t.Run("unique violation names the column", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", TableName: "items", ConstraintName: "items_name_key"}

		httpErr := asHTTPError(t, HandleError(pgErr))
		assert.Equal(t, "ITEM_ALREADY_EXISTS", httpErr.Code)
		assert.Equal(t, "A Item with this Name already exists", httpErr.Message)
	})

	t.Run("unknown postgres errors stay generic", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "08006", Message: "connection failure"}

		httpErr := asHTTPError(t, HandleError(pgErr))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Internal Server Error", httpErr.Message)
	})

	t.Run("no rows becomes not found", func(t *testing.T) {
		httpErr := asHTTPError(t, HandleError(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})

	t.Run("anything else is a 500", func(t *testing.T) {
		httpErr := asHTTPError(t, HandleError(context.DeadlineExceeded))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	})
}

func TestErrCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}

	assert.Equal(t, UniqueViolation, ErrCode(pgErr))
	assert.Equal(t, UniqueViolation, ErrCode(ConvertPgError(pgErr)))
	assert.Equal(t, Other, ErrCode(errors.New("boom")))
}

func TestConvertPgError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23514", Severity: "ERROR", Message: "bad", TableName: "items"}

	sqlErr := ConvertPgError(pgErr)
	assert.Equal(t, CheckViolation, sqlErr.Code)
	assert.Equal(t, SeverityError, sqlErr.Severity)
	assert.ErrorIs(t, sqlErr, pgErr)
	assert.Equal(t, "ERROR 23514: bad", sqlErr.Error())
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("WHATEVER"))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("users_email_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("items_pkey"))

	assert.Equal(t, "User", getEntityName("items", "user_id"))
	assert.Equal(t, "Item", getEntityName("items", ""))
	assert.Equal(t, "record", getEntityName("", ""))

	assert.Equal(t, "Created At", humanizeText("created_at"))
	assert.Equal(t, "RECORD_ERROR", generateErrorCode("", Other))
}

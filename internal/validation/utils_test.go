package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ductran2702/code-challenge-backend/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	ID    int64  `param:"id" json:"-" validate:"gt=0"`
	Title string `json:"title" validate:"required,max=5"`
	Kind  string `json:"kind" validate:"omitempty,oneof=a b"`
}

func (p *samplePayload) Validate() error {
	if err := Validator().Struct(p); err != nil {
		return err
	}
	if p.Title == "nope" {
		return CustomValidationErrors{{Field: "title", Message: "is reserved"}}
	}
	return nil
}

func newContext(method, body, id string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/samples/"+id, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/samples/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		payload := &samplePayload{}
		err := BindAndValidate(newContext(http.MethodPut, `{"title":"ok","id":99}`, "7"), payload)

		require.NoError(t, err)
		assert.Equal(t, int64(7), payload.ID, "body must not override the path id")
		assert.Equal(t, "ok", payload.Title)
	})

	t.Run("tag violations are reported per field", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPut, `{"title":"too long","kind":"c"}`, "0"), &samplePayload{})

		httpErr := requireHTTPError(t, err)
		assert.Equal(t, "Validation failed", httpErr.Message)
		assert.ElementsMatch(t, []errs.FieldError{
			{Field: "id", Error: "must be a positive integer"},
			{Field: "title", Error: "must not exceed 5 characters"},
			{Field: "kind", Error: "must be one of: a b"},
		}, httpErr.Errors)
	})

	t.Run("required field", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPut, `{}`, "1"), &samplePayload{})

		httpErr := requireHTTPError(t, err)
		assert.Equal(t, []errs.FieldError{{Field: "title", Error: "is required"}}, httpErr.Errors)
	})

	t.Run("custom violations", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPut, `{"title":"nope"}`, "1"), &samplePayload{})

		httpErr := requireHTTPError(t, err)
		assert.Equal(t, []errs.FieldError{{Field: "title", Error: "is reserved"}}, httpErr.Errors)
	})

	t.Run("malformed json", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPut, `{"title":`, "1"), &samplePayload{})

		httpErr := requireHTTPError(t, err)
		assert.Empty(t, httpErr.Errors)
		assert.NotEmpty(t, httpErr.Message)
	})

	t.Run("non numeric id", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPut, `{"title":"ok"}`, "abc"), &samplePayload{})

		requireHTTPError(t, err)
	})
}

func TestExtractValidationErrorFallback(t *testing.T) {
	msg, fieldErrors := extractValidationError(errors.New("odd"))

	assert.Equal(t, "Validation failed", msg)
	assert.Equal(t, []errs.FieldError{{Field: "body", Error: "odd"}}, fieldErrors)
}

package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "meatmarket/internal/errors"
)

func TestErrorHandler(t *testing.T) {
	type sample struct {
		Name string `validate:"required"`
	}
	validationErr := validator.New().Struct(sample{})
	require.Error(t, validationErr)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", apperr.NotFound("No user: %s", "ghost"), http.StatusNotFound, "No user: ghost"},
		{"wrapped unauthorized", fmt.Errorf("verify: %w", apperr.Unauthorized("Invalid token")), http.StatusUnauthorized, "Invalid token"},
		{"echo http error", echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"untagged", errors.New("db is down"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body apperr.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Error.Status)
			assert.Equal(t, tt.wantMsg, body.Error.Message)
		})
	}

	t.Run("validation", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

		ErrorHandler(validationErr, c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Name")
	})

	t.Run("head request has no body", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec)

		ErrorHandler(apperr.NotFound("gone"), c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestPathID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("orderId")

	c.SetParamValues("42")
	id, err := pathID(c, "orderId")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, bad := range []string{"0", "abc", "-1"} {
		c.SetParamValues(bad)
		_, err := pathID(c, "orderId")
		assert.True(t, apperr.IsBadRequest(err), bad)
	}
}

func TestCurrentClaimsMissing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := currentClaims(c)
	assert.True(t, apperr.IsUnauthorized(err))
}

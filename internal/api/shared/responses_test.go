package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cards", nil)

	RespondWithJSON(rec, req, http.StatusCreated, map[string]int{"id": 4})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":4}`, rec.Body.String())
}

func TestRespondWithErrorIncludesLabel(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cards/99", nil)

	RespondWithError(rec, req, http.StatusNotFound, "Card not found", "No card found with ID 99")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t,
		`{"error":"Card not found","message":"No card found with ID 99"}`,
		rec.Body.String())
}

func TestRespondWithErrorOmitsEmptyLabel(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cards/suit/Clubs", nil)

	RespondWithError(rec, req, http.StatusNotFound, "", "No cards found with suit Clubs")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "error", "empty label must omit the error key entirely")
	assert.Equal(t, "No cards found with suit Clubs", body["message"])
}

func TestRespondWithErrorAndLogSanitizes(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cards", nil)

	RespondWithErrorAndLog(rec, req, http.StatusInternalServerError,
		"Internal server error", "An unexpected error occurred",
		assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error(),
		"internal error text must not reach the client")
}

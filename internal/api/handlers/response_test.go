package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"deep"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "deep", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(r, &v), ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, DecodeJSON(r, &v))
}

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusCreated, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1}`, w.Body.String())
}

func TestRespondErrors(t *testing.T) {
	tests := []struct {
		name   string
		write  func(w http.ResponseWriter)
		status int
		body   string
	}{
		{"bad request", func(w http.ResponseWriter) { RespondBadRequest(w, "bad") }, http.StatusBadRequest, `{"error":"bad"}`},
		{"unauthorized", func(w http.ResponseWriter) { RespondUnauthorized(w, "who") }, http.StatusUnauthorized, `{"error":"who"}`},
		{"forbidden", func(w http.ResponseWriter) { RespondForbidden(w, "no") }, http.StatusForbidden, `{"error":"no"}`},
		{"not found", func(w http.ResponseWriter) { RespondNotFound(w, "gone") }, http.StatusNotFound, `{"error":"gone"}`},
		{"conflict", func(w http.ResponseWriter) { RespondConflict(w, "dup") }, http.StatusConflict, `{"error":"dup"}`},
		{"unprocessable", func(w http.ResponseWriter) { RespondUnprocessable(w, "late") }, http.StatusUnprocessableEntity, `{"error":"late"}`},
		{"internal", RespondInternalError, http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.write(w)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

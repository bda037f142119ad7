package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		status int
		body   string
	}{
		{"struct", models.FeeResponse{Fee: 7}, http.StatusOK, `{"fee":7}`},
		{"error response", models.ErrorResponse{Kind: "NotFound", Reason: "record not found"}, http.StatusNotFound, `{"kind":"NotFound","reason":"record not found"}`},
		{"nil", nil, http.StatusCreated, `null`},
		{"empty slice", []models.RecordResponse{}, http.StatusOK, `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.body), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}

func TestWriteText(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteText(w, "1.0.0", http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
	assert.Equal(t, "1.0.0", w.Body.String())
}

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/pinvent/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		status int
		body   string
	}{
		{"message", models.MessageResponse{Message: "User logged out"}, http.StatusOK, `{"message":"User logged out"}`},
		{"error status", models.ErrorResponse{Message: "Product not found"}, http.StatusNotFound, `{"message":"Product not found"}`},
		{"bool", true, http.StatusOK, `true`},
		{"empty list", []models.Product{}, http.StatusOK, `[]`},
		{"nil", nil, http.StatusOK, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.body), n)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestWriteJSON_MarshalFailure(t *testing.T) {
	rec := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	n, err := WriteJSON(rec, make(chan int), http.StatusCreated)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, marshalFailureBody, rec.Body.String())
}

func TestWriteText(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteText(rec, "ok", http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "ok", rec.Body.String())
}

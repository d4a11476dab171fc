package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// marshalFailureBody keeps the {"message"} error shape even when the payload
// itself could not be encoded.
const marshalFailureBody = `{"message":"Internal server error"}`

// WriteJSON serializes data and writes it with the given status and a JSON
// content type. It returns the number of body bytes written.
//
// If data cannot be marshaled, the response becomes a 500 with the generic
// error body and the marshal error is returned to the caller for logging.
//
//	utils.WriteJSON(w, models.MessageResponse{Message: "User logged out"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteText writes a plain-text body, used by the version and health
// endpoints.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(statusCode)

	return w.Write([]byte(text))
}

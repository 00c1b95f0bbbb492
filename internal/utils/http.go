package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// MaxRequestBody bounds a JSON request body. Envelopes of large tables are
// the biggest bodies the API accepts.
const MaxRequestBody = 64 << 20

// WriteJSON marshals data and writes it with statusCode and a JSON content
// type. A marshalling failure answers 500 instead.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON decodes the request body into v, reading at most
// MaxRequestBody bytes.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, MaxRequestBody)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("error decoding JSON body: %w", err)
	}
	return nil
}

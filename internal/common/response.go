package common

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type ErrorResponse struct {
	Detail string `json:"detail"`
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, ErrorResponse{Detail: message})
}

// RespondWithDomainError picks the status from err. Classified upstream
// failures expose their detail; anything unclassified is logged and hidden.
func RespondWithDomainError(w http.ResponseWriter, err error) {
	code := HTTPStatusFromError(err)

	var upstreamErr *UpstreamError
	switch {
	case errors.As(err, &upstreamErr):
		RespondWithError(w, code, upstreamErr.Detail)
	case code == http.StatusInternalServerError:
		log.Printf("ERROR: unhandled error: %v", err)
		RespondWithError(w, code, "Internal Server Error")
	default:
		RespondWithError(w, code, err.Error())
	}
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

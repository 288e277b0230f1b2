// Package handlers implements the HTTP surface of the dealership service.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// newID returns a record id derived from the creation timestamp, as the
// record ids of this system have always been. Two inserts in the same
// millisecond collide; Mongo's unique _id index turns that into an insert
// error rather than a silent overwrite.
func newID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package types carries the JSON envelope every HTTP endpoint answers with,
// so kiosk and admin UI clients parse one shape for data and errors alike.
package types

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status"`
}

func WriteResponse(w http.ResponseWriter, status int, data any) {
	write(w, status, Response{Data: data, Status: status})
}

func WriteErrorResponse(w http.ResponseWriter, status int, message string) {
	write(w, status, Response{Message: message, Status: status})
}

func write(w http.ResponseWriter, status int, r Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(r)
}

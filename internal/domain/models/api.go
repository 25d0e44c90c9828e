package models

import "time"

// Envelope is the common GET response shape. Stale marks payloads served from
// an expired cache entry after a failed refresh.
type Envelope[T any] struct {
	Data      T         `json:"data"`
	UpdatedAt time.Time `json:"updatedAt"`
	Stale     bool      `json:"stale,omitempty"`
}

// ErrorBody is the localized GET error shape.
type ErrorBody struct {
	Error string `json:"error"`
}

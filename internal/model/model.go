// Package model holds the persisted entities and the request payloads
// (DTOs) that travel between the handler, service and repository layers.
package model

import "time"

// Base carries the columns every table in this service has: a
// store-assigned identifier and the two lifecycle timestamps.
//
// Embedded structs are flattened by encoding/json, so an entity that
// embeds Base serializes as {id, createdAt, updatedAt, ...}.
type Base struct {
	ID        int64     `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

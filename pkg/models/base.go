// Package models contains domain types for policyradar-engine.
package models

import "time"

// Base holds the record shape shared by every entity: a server-assigned
// integer identifier, audit timestamps, optional attribution, and an
// optional free-form metadata payload.
type Base struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy *string   `json:"created_by,omitempty"`
	UpdatedBy *string   `json:"updated_by,omitempty"`
	Metadata  *string   `json:"metadata,omitempty"`
}

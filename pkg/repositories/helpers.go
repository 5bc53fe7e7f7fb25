// Package repositories provides PostgreSQL data access for policyradar-engine.
package repositories

import "encoding/json"

// nullString returns nil if the string is empty, otherwise returns the string pointer.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// jsonbValue converts a slice to JSONB format for database insertion.
// Returns nil for nil/empty slices to store NULL in the database.
func jsonbValue(v []string) any {
	if len(v) == 0 {
		return nil
	}
	return v
}

// jsonUnmarshal unmarshals JSONB data from the database, treating empty
// and literal-null payloads as absent.
func jsonUnmarshal(data []byte, v any) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, v)
}

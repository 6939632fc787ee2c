// Package uuid generates the time-ordered identifiers used for persisted rows.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. Its leading 48 bits carry the Unix time in
// milliseconds, so rows sort by creation time.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Random source failure; a v4 id still keeps rows unique.
		return googleuuid.New().String()
	}
	return id.String()
}

// Version reports the UUID version of s, or 0 when s is not a UUID.
func Version(s string) int {
	id, err := googleuuid.Parse(s)
	if err != nil {
		return 0
	}
	return int(id.Version())
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a local account. Several external identities may resolve to the same user.
type User struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email       string    // Unique, taken from the first provider profile that reported it.
	DisplayName *string   // Optional display name reported by the provider.
	CreatedAt   time.Time // Timestamp of when this user account was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this user's data.
}

// Package models defines the records persisted by the catalog application.
package models

// User is the authoritative account record stored in the users collection.
//
// Passwords are stored in plaintext. This mirrors the documented behavior of
// the reference application and is unsuitable for production use.
type User struct {
	// ID is assigned at registration. Records from the bundled seed dataset
	// predate id assignment and may leave it empty.
	ID       string `json:"id,omitempty"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

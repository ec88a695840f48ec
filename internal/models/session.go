package models

// SessionUser is the authenticated identity held for the current session.
// It exists iff a successful login, signup, or session restore has occurred
// and no logout or restore failure has cleared it since.
type SessionUser struct {
	// ID comes from the account record when present, otherwise it is a
	// timestamp-derived string assigned at login time.
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

package domain

import "time"

// Session is the live, authenticated context for one logged-in user. The role
// is resolved once at login and never re-derived; navigation state is a single
// current section, starting at the dashboard.
type Session struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Role           Role      `json:"role"`
	CurrentSection Section   `json:"current_section"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewSession binds a fresh session to a user and role with the default
// navigation state.
func NewSession(id, username string, role Role) *Session {
	return &Session{
		ID:             id,
		Username:       username,
		Role:           role,
		CurrentSection: SectionDashboard,
		CreatedAt:      time.Now().UTC(),
	}
}

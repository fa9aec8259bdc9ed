package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyCredentials is returned before any lookup when the username or
	// secret is blank (or still holds the UI placeholder text).
	ErrEmptyCredentials = errors.New("username and password are required")
	// ErrUnknownUser means the username is not in the credential store.
	ErrUnknownUser = errors.New("unknown user")
	// ErrWrongPassword means the username exists but the secret did not match.
	ErrWrongPassword = errors.New("wrong password")
	// ErrSessionRevoked is returned for any operation on a session that has
	// been logged out; a fresh login is required.
	ErrSessionRevoked = errors.New("session is no longer active")
)

// AccessDeniedError is the structured denial an authorize call returns when a
// session's role may not enter the requested section. It carries everything
// the caller needs to compose the denial message.
type AccessDeniedError struct {
	Section  Section
	Role     Role
	Required []Role
}

func (e *AccessDeniedError) Error() string {
	names := make([]string, len(e.Required))
	for i, r := range e.Required {
		names[i] = r.String()
	}
	return fmt.Sprintf("access to %s is restricted: your role is %s, required: %s",
		e.Section.Title(), e.Role, strings.Join(names, ", "))
}

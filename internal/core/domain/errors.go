package domain

import "errors"

// Failure taxonomy shared by every registry. Callers match with errors.Is;
// services wrap these with context where it helps.
var (
	// ErrValidation covers empty required fields and conflicting assignment
	// targets.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateName is returned on group or status name collisions.
	ErrDuplicateName = errors.New("name already in use")

	// ErrNotFound is returned for unknown group, task, or status references.
	ErrNotFound = errors.New("not found")

	// ErrProtectedGroup is returned when deleting the default administrative
	// group.
	ErrProtectedGroup = errors.New("group is protected")

	// ErrInvalidLogin is deliberately undifferentiated: it does not reveal
	// whether the username is unknown or the password is wrong.
	ErrInvalidLogin = errors.New("invalid username or password")
)

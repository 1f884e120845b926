package session

import "errors"

// ErrSessionNotFound is returned when an operation references a session id
// that does not exist or was deleted.
var ErrSessionNotFound = errors.New("session not found")

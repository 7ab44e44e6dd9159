package usecase

import "errors"

// ErrNotFound covers both genuinely absent resources and resources the
// actor is not allowed to see or mutate. Conflating the two keeps hidden
// posts and masked authorization denials indistinguishable from absence.
var ErrNotFound = errors.New("not found")

// ErrConflict signals a uniqueness violation (username or email taken).
var ErrConflict = errors.New("already exists")

// ErrInvalidInput signals a semantically invalid request body, such as a
// reference to an unknown category.
var ErrInvalidInput = errors.New("invalid input")

// ErrForbidden signals a failed staff gate on the admin surface. Unlike
// post and comment mutations, these denials are not masked.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidCredentials signals a failed login.
var ErrInvalidCredentials = errors.New("invalid credentials")

package utils

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")

	ErrEntryNotFound    = errors.New("entry not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrTagNotFound      = errors.New("tag not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrInvalidKind   = errors.New("invalid organization kind")
	ErrInvalidRole   = errors.New("invalid role")
	ErrSelfDemotion  = errors.New("admins cannot demote themselves")
	ErrCategoryInUse = errors.New("category still referenced by entries")
	ErrSlugTaken     = errors.New("slug already in use")
	ErrLabelTaken    = errors.New("label already in use")

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmptyQuery   = errors.New("query is required")
	ErrQueryTooLong = errors.New("query too long (max 500 characters)")
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)

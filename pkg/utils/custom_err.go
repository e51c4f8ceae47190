package utils

import "errors"

var (
	ErrPackageNotFound     = errors.New("package not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrInvalidPage         = errors.New("invalid page parameter")
	ErrInvalidPageSize     = errors.New("invalid page size parameter")
	ErrDatabaseError       = errors.New("database error")

	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidDayCount    = errors.New("unsupported day count")
	ErrInvalidGroupType   = errors.New("unrecognized group type")
	ErrInvalidExploreType = errors.New("unrecognized explore type")
	ErrInvalidBudget      = errors.New("unrecognized budget range")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

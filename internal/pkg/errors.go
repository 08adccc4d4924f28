package pkg

import "errors"

// Domain error taxonomy. Handlers map these to 4xx responses; any other error
// is an internal fault and surfaces as a bare 500.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicateIdentity = errors.New("username or email already exist")
	ErrNotFound          = errors.New("not found")
	ErrBadCredentials    = errors.New("bad credentials")
	ErrAlreadyExists     = errors.New("already exists")
	ErrNotOwner          = errors.New("not the author")
)

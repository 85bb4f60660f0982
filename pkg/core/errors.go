package core

import "errors"

// Common errors.
var (
	ErrRootNotFound  = errors.New("root directory does not exist")
	ErrMissingMember = errors.New("bundle member file is missing")
	ErrUnknownKind   = errors.New("unknown asset kind")
)

package domain

import "errors"

// ErrInvalidInput is returned when a draft fails validation.
var ErrInvalidInput = errors.New("invalid input")

// ErrProjectNotFound is returned when an ID does not reference a registered project.
var ErrProjectNotFound = errors.New("project not found")

// ErrInvalidStatus is returned for a Status outside the known enumeration.
var ErrInvalidStatus = errors.New("invalid status")

// ErrIdentityCollision is returned when the ID generator cannot produce an unused ID.
var ErrIdentityCollision = errors.New("identity collision")

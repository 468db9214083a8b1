package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an unexpected failure inside the application.
var ErrInternal = errors.New("internal error")

// ErrOverAssignment indicates that an assignment would exceed the remaining
// unassigned amount of its source or of its clearing transaction. Raised at
// the repository layer, where the capacity check is atomic.
var ErrOverAssignment = errors.New("assignment exceeds remaining unassigned amount")

package attendance

import "errors"

// Roster transition errors. A failed transition leaves the roster unchanged.
var (
	ErrEmptyName     = errors.New("worker name is empty")
	ErrDuplicateName = errors.New("worker with this name already exists")
	ErrWorkerIndex   = errors.New("worker index out of range")
)

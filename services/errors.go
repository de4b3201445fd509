package services

import "errors"

// ErrPlanExists is returned when a project already has a communication plan
// and a second creation is attempted.
var ErrPlanExists = errors.New("communication plan already exists for this project")

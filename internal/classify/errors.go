package classify

import "errors"

// Domain errors for classification payload validation. These never surface to
// the transport layer; they trigger the documented fallback instead.
var (
	ErrInvalidCategory = errors.New("category must be savings_goal, budget, fitness, project, note, or question")
	ErrInvalidFolder   = errors.New("folder_type must be finance, fitness, project, or notes")
	ErrMissingTasks    = errors.New("fitness and project classifications require tasks")
)

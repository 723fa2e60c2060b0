package resolve

import "errors"

// Resolution misses. Remote failures are not wrapped into these; a
// transport error during a scan propagates as the ticktick error it is.
var (
	// ErrTaskNotFound means the full directory scan found no task matching
	// the identifier in any project.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskNotFoundInProject means the hinted project does not contain a
	// matching task. An explicit hint is authoritative scope: there is no
	// fallback search of other projects.
	ErrTaskNotFoundInProject = errors.New("task not found in project")

	// ErrProjectNotFound means no project matched the given name.
	ErrProjectNotFound = errors.New("project not found")
)
